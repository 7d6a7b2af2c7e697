package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRootCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommandDispatch(t *testing.T) {
	out, err := runRootCommand(t, "sum", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestRootCommandInvalidFormat(t *testing.T) {
	_, err := runRootCommand(t, "--format", "xml", "sum", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRootCommandMintsTraceID(t *testing.T) {
	out, err := runRootCommand(t, "--format", "json", "sum", "1", "2")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp.TraceID)

	// Minted ids are UUIDv7, so they parse and carry the version bits.
	parsed, err := uuid.Parse(resp.TraceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestRootCommandHonorsPinnedTraceID(t *testing.T) {
	out, err := runRootCommand(t, "--format", "json", "--trace-id", "pinned-42", "sum", "1")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "pinned-42", resp.TraceID)
}

func TestRootCommandGlobalInputFlags(t *testing.T) {
	// --input/--series are global: any subcommand can read a series file.
	dir := t.TempDir()
	path := writeEmptySeries(t, dir)

	out, err := runRootCommand(t, "all", "> 0", "--input", path, "--series", "empty")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestValidFormats(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("yaml"))
	assert.False(t, isValidFormat(""))
}
