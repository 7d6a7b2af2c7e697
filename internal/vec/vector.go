package vec

// Vector is an ordered, 0-indexed sequence of real numbers.
// Operations treat a Vector as immutable: they read it and return fresh
// results, never writing back through it.
type Vector []float64

// Mask holds positionwise predicate results for a source Vector.
// A well-formed Mask has the same length as the Vector it describes;
// operations that pair the two validate this rather than truncate.
type Mask []bool

// Indices is an ascending sequence of positions into a Vector.
type Indices []int

// Predicate reports whether a single element satisfies a condition.
type Predicate func(float64) bool

// FromScalar wraps a single value into a length-1 Vector.
//
// There are deliberately no scalar overloads anywhere in this package:
// callers that have a scalar wrap it explicitly, so the scalar/sequence
// distinction stays visible at every call site.
func FromScalar(x float64) Vector {
	return Vector{x}
}

// Clone returns an independent copy of v.
// The copy is never nil, so Clone(nil) is a safe way to obtain an empty
// Vector that can be appended to.
func (v Vector) Clone() Vector {
	return append(Vector{}, v...)
}
