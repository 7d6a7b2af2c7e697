package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mkarlsen/seqlab/internal/vec"
)

func TestWriteSeriesFile(t *testing.T) {
	dir := t.TempDir()
	path := WriteSeriesFile(t, dir, "series.yaml", map[string][]float64{
		"ramp": {1, 2, 3},
	})

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string][]float64
	require.NoError(t, yaml.Unmarshal(raw, &parsed))
	assert.Equal(t, []float64{1, 2, 3}, parsed["ramp"])
}

func TestRamp(t *testing.T) {
	assert.Equal(t, vec.Vector{1, 2, 3, 4, 5}, Ramp(5))
	assert.Equal(t, vec.Vector{}, Ramp(0))
	assert.NotNil(t, Ramp(0))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, vec.Vector{7, 7, 7}, Repeat(7, 3))
	assert.Empty(t, Repeat(1, 0))
}
