// Package vec provides the foundational numeric-sequence types for seqlab.
//
// This package contains the core types (Vector, Mask, Indices, Predicate)
// and the arithmetic operations over them: reductions, elementwise maps,
// cumulative aggregates and their exact inverses. All other internal
// packages import vec; vec imports nothing internal. This keeps it the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Every operation is a pure function: inputs are never mutated, results
//     are freshly allocated. Concurrent callers need no coordination.
//   - Empty input is a value, not an error, wherever an identity exists
//     (Sum of nothing is 0, Product of nothing is 1, CumSum of nothing is
//     an empty Vector).
//   - There is no scalar/vector duck typing. A scalar becomes a sequence
//     only through the explicit FromScalar wrapper.
//   - Partial operations (InvCumProd, Mean) reject bad input with a
//     structured DomainError; they never return NaN or Inf silently.
package vec
