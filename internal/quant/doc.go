// Package quant provides quantifiers and logical-mask operations over
// numeric sequences.
//
// A quantifier answers a yes/no question about a whole sequence: Any
// (existential, "does at least one element satisfy this?") and All
// (universal, "do they all?"). A mask records the per-position answers
// instead, and TrueIndices/Select turn a mask back into positions or
// values.
//
// Conventions, fixed here because they are classic off-by-semantics traps:
//   - Any over an empty sequence is false (there is no witness).
//   - All over an empty sequence is true (vacuous truth).
//   - TrueIndices of an all-false or empty mask is an empty sequence,
//     never nil and never an error.
//
// All functions are pure and scan in element order; Any stops at the
// first witness.
package quant
