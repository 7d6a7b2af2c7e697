package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/seqlab/internal/vec"
)

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitCommandError, "bad input")
	assert.Equal(t, "bad input", plain.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(plain))

	wrapped := WrapExitError(ExitFailure, "check failed", assert.AnError)
	assert.Contains(t, wrapped.Error(), "check failed")
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))

	// Non-ExitError defaults to ExitFailure.
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))

	// Wrapping an ExitError deeper still resolves the code.
	deep := fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner"))
	assert.Equal(t, ExitCommandError, GetExitCode(deep))
}

func TestFormatterSuccessText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Success("15"))
	assert.Equal(t, "15\n", buf.String())
}

func TestFormatterSuccessJSONIncludesTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf, TraceID: "trace-123"}

	require.NoError(t, f.Success(map[string]int{"n": 1}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "trace-123", resp.TraceID)
	assert.Nil(t, resp.Error)
}

func TestFormatterErrorText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Error("E002", "not a number", nil))
	assert.Contains(t, buf.String(), "Error [E002]: not a number")
}

func TestFormatterErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error("E005", "file not found", map[string]string{"path": "x.yaml"}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E005", resp.Error.Code)
	assert.Equal(t, "file not found", resp.Error.Message)
}

func TestVerboseLogGoesToErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}

	f.VerboseLog("loaded %d element(s)", 5)

	assert.Empty(t, out.String())
	assert.Equal(t, "loaded 5 element(s)\n", errOut.String())
}

func TestVerboseLogSilentWhenDisabled(t *testing.T) {
	out := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: out, Verbose: false}

	f.VerboseLog("should not appear")
	assert.Empty(t, out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "15", formatScalar(15))
	assert.Equal(t, "1.5", formatScalar(1.5))
	assert.Equal(t, "-0.25", formatScalar(-0.25))

	assert.Equal(t, "1 3 6 10 15", formatVector(vec.Vector{1, 3, 6, 10, 15}))
	assert.Equal(t, "", formatVector(vec.Vector{}))

	assert.Equal(t, "false true true", formatMask(vec.Mask{false, true, true}))
	assert.Equal(t, "", formatMask(vec.Mask{}))

	assert.Equal(t, "2 3 4", formatIndices(vec.Indices{2, 3, 4}))
	assert.Equal(t, "", formatIndices(vec.Indices{}))
}
