package quant

import "github.com/mkarlsen/seqlab/internal/vec"

// Apply evaluates p at every position of v and returns the resulting
// mask. The mask always has the same length as v, so it can be paired
// with v in Select and friends without further checks.
func Apply(v vec.Vector, p vec.Predicate) vec.Mask {
	m := make(vec.Mask, len(v))
	for i, x := range v {
		m[i] = p(x)
	}
	return m
}

// TrueIndices returns the positions where m is true, in ascending order.
// An all-false or empty mask yields an empty (non-nil) result.
func TrueIndices(m vec.Mask) vec.Indices {
	idx := make(vec.Indices, 0, len(m))
	for i, ok := range m {
		if ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// Select returns the elements of v at the true positions of m, in order.
//
// The mask must describe v exactly: a length mismatch is a
// LENGTH_MISMATCH domain error, never a silent truncation or padding.
func Select(v vec.Vector, m vec.Mask) (vec.Vector, error) {
	if len(v) != len(m) {
		return nil, vec.NewLengthMismatchError(len(v), len(m))
	}
	out := make(vec.Vector, 0, len(v))
	for i, ok := range m {
		if ok {
			out = append(out, v[i])
		}
	}
	return out, nil
}

// Count returns the number of true positions in m.
func Count(m vec.Mask) int {
	n := 0
	for _, ok := range m {
		if ok {
			n++
		}
	}
	return n
}
