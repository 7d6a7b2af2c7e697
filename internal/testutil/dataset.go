// Package testutil provides shared helpers for deterministic tests:
// YAML series fixtures written to temp dirs and small sequence builders.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mkarlsen/seqlab/internal/vec"
)

// WriteSeriesFile marshals the given series to YAML and writes it into
// dir, returning the file path. Fails the test on any I/O error.
func WriteSeriesFile(t *testing.T, dir, name string, series map[string][]float64) string {
	t.Helper()

	raw, err := yaml.Marshal(series)
	if err != nil {
		t.Fatalf("marshaling series fixture: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("writing series fixture: %v", err)
	}
	return path
}

// Ramp returns the sequence 1, 2, ..., n.
// Ramp(0) is an empty (non-nil) Vector.
func Ramp(n int) vec.Vector {
	v := make(vec.Vector, n)
	for i := range v {
		v[i] = float64(i + 1)
	}
	return v
}

// Repeat returns a sequence of n copies of x.
func Repeat(x float64, n int) vec.Vector {
	v := make(vec.Vector, n)
	for i := range v {
		v[i] = x
	}
	return v
}
