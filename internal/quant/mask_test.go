package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/seqlab/internal/vec"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		input    vec.Vector
		pred     vec.Predicate
		expected vec.Mask
	}{
		{"empty", vec.Vector{}, positive, vec.Mask{}},
		{
			"book example",
			vec.Vector{-3, -2, -1, 0, 1, 2, 3},
			positive,
			vec.Mask{false, false, false, false, true, true, true},
		},
		{
			"greater than two",
			vec.Vector{1, 2, 3, 4, 5},
			func(x float64) bool { return x > 2 },
			vec.Mask{false, false, true, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.input, tt.pred)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, len(tt.input))
		})
	}
}

func TestTrueIndices(t *testing.T) {
	tests := []struct {
		name     string
		input    vec.Mask
		expected vec.Indices
	}{
		{"empty mask", vec.Mask{}, vec.Indices{}},
		{"all false is empty not nil", vec.Mask{false, false}, vec.Indices{}},
		{"all true", vec.Mask{true, true, true}, vec.Indices{0, 1, 2}},
		{"mixed ascending", vec.Mask{true, false, true, false, true}, vec.Indices{0, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrueIndices(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.NotNil(t, got)
		})
	}
}

func TestTrueIndicesBookExamples(t *testing.T) {
	x := vec.Vector{1, 2, 3, 4, 5}

	assert.Equal(t, vec.Indices{2, 3, 4},
		TrueIndices(Apply(x, func(v float64) bool { return v > 2 })))

	assert.Equal(t, vec.Indices{},
		TrueIndices(Apply(x, func(v float64) bool { return v > 10 })))
}

func TestSelect(t *testing.T) {
	x := vec.Vector{1, 2, 3, 4, 5}

	got, err := Select(x, vec.Mask{false, false, true, true, true})
	require.NoError(t, err)
	assert.Equal(t, vec.Vector{3, 4, 5}, got)

	got, err = Select(x, vec.Mask{false, false, false, false, false})
	require.NoError(t, err)
	assert.Equal(t, vec.Vector{}, got)

	got, err = Select(vec.Vector{}, vec.Mask{})
	require.NoError(t, err)
	assert.Equal(t, vec.Vector{}, got)
}

func TestSelectLengthMismatch(t *testing.T) {
	got, err := Select(vec.Vector{1, 2, 3}, vec.Mask{true})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, vec.IsLengthMismatchError(err))

	var de *vec.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.Want)
	assert.Equal(t, 1, de.Got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(vec.Mask{}))
	assert.Equal(t, 0, Count(vec.Mask{false, false}))
	assert.Equal(t, 2, Count(vec.Mask{true, false, true}))
	assert.Equal(t, 3, Count(Apply(vec.Vector{-3, -2, -1, 0, 1, 2, 3}, positive)))
}
