package quant

import "github.com/mkarlsen/seqlab/internal/vec"

// Any reports whether at least one element of v satisfies p.
//
// Elements are scanned in order and the scan stops at the first witness,
// so at most len(v) predicate calls are made. An empty sequence has no
// witness: Any of nothing is false.
func Any(v vec.Vector, p vec.Predicate) bool {
	for _, x := range v {
		if p(x) {
			return true
		}
	}
	return false
}

// All reports whether every element of v satisfies p.
// An empty sequence satisfies All vacuously.
//
// All is the De Morgan dual of Any: no element fails p exactly when all
// elements satisfy it. Composing the two keeps a single scan loop in the
// package and makes the equivalence a tested invariant rather than a
// coincidence of two implementations.
func All(v vec.Vector, p vec.Predicate) bool {
	return !Any(v, func(x float64) bool { return !p(x) })
}
