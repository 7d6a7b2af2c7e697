package vec

// CumSum returns the inclusive prefix sums of v: out[i] is the sum of
// v[0..i]. The result always has the same length as the input.
func CumSum(v Vector) Vector {
	out := make(Vector, len(v))
	total := 0.0
	for i, x := range v {
		total += x
		out[i] = total
	}
	return out
}

// CumProd returns the inclusive prefix products of v: out[i] is the
// product of v[0..i]. The result always has the same length as the input.
func CumProd(v Vector) Vector {
	out := make(Vector, len(v))
	total := 1.0
	for i, x := range v {
		total *= x
		out[i] = total
	}
	return out
}

// InvCumSum is the exact two-sided inverse of CumSum:
//
//	CumSum(InvCumSum(c)) == c  and  InvCumSum(CumSum(v)) == v
//
// out[0] recovers as c[0], out[i] as c[i]-c[i-1]. Unlike a successive-
// difference operator, the first element is kept, so the output length
// equals the input length and the round trip is lossless.
func InvCumSum(c Vector) Vector {
	out := make(Vector, len(c))
	for i, x := range c {
		if i == 0 {
			out[i] = x
			continue
		}
		out[i] = x - c[i-1]
	}
	return out
}

// InvCumProd is the multiplicative analogue of InvCumSum: out[0] is p[0],
// out[i] is p[i]/p[i-1], and round trips with CumProd hold within
// floating-point tolerance.
//
// A zero element makes the inverse undefined (every later division would
// be by a zero prefix product), so any zero input element is rejected
// with a ZERO_ELEMENT error carrying its index. Division is used
// directly rather than a logarithm formulation: logs would additionally
// rule out negative elements for no gain.
func InvCumProd(p Vector) (Vector, error) {
	for i, x := range p {
		if x == 0 {
			return nil, NewZeroElementError(i)
		}
	}
	out := make(Vector, len(p))
	for i, x := range p {
		if i == 0 {
			out[i] = x
			continue
		}
		out[i] = x / p[i-1]
	}
	return out, nil
}
