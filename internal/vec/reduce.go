package vec

// Sum returns the arithmetic sum of all elements.
// The sum of an empty Vector is 0, the additive identity.
func Sum(v Vector) float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}
	return total
}

// Product returns the product of all elements.
// The product of an empty Vector is 1, the multiplicative identity. This
// keeps Product consistent with CumProd over prefixes: the product of the
// empty prefix is the value a running product starts from.
func Product(v Vector) float64 {
	total := 1.0
	for _, x := range v {
		total *= x
	}
	return total
}

// Mean returns the arithmetic mean of all elements.
// Unlike Sum, Mean has no identity for empty input: rather than leak a
// NaN from 0/0, it returns an EMPTY_INPUT domain error.
func Mean(v Vector) (float64, error) {
	if len(v) == 0 {
		return 0, NewEmptyInputError("mean")
	}
	return Sum(v) / float64(len(v)), nil
}

// Square returns a new Vector where element i is v[i] squared.
// Length and order are preserved exactly; an empty input yields an empty
// (non-nil) output.
func Square(v Vector) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * x
	}
	return out
}
