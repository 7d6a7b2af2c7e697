package quant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mkarlsen/seqlab/internal/vec"
)

// ParsePredicate compiles a comparison expression into a Predicate.
//
// The grammar is deliberately tiny: an operator followed by a number,
// e.g. "> 2", ">= 0", "!= 1.5". Whitespace between the two is optional.
// Supported operators: > >= < <= == !=.
//
// This is the whole predicate surface of the CLI; anything richer belongs
// in the caller's code as a vec.Predicate closure.
func ParsePredicate(expr string) (vec.Predicate, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil, &ParseError{Code: ParseErrCodeEmpty, Message: "empty predicate expression", Expr: expr}
	}

	op, rest := splitOperator(s)
	if op == "" {
		return nil, &ParseError{
			Code:    ParseErrCodeOperator,
			Message: "expected one of > >= < <= == !=",
			Expr:    expr,
		}
	}

	threshold, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return nil, &ParseError{
			Code:    ParseErrCodeNumber,
			Message: fmt.Sprintf("invalid comparison value %q", strings.TrimSpace(rest)),
			Expr:    expr,
		}
	}

	switch op {
	case ">":
		return func(x float64) bool { return x > threshold }, nil
	case ">=":
		return func(x float64) bool { return x >= threshold }, nil
	case "<":
		return func(x float64) bool { return x < threshold }, nil
	case "<=":
		return func(x float64) bool { return x <= threshold }, nil
	case "==":
		return func(x float64) bool { return x == threshold }, nil
	default: // "!="
		return func(x float64) bool { return x != threshold }, nil
	}
}

// splitOperator peels a comparison operator off the front of s.
// Two-character operators are matched before their one-character prefixes
// so ">=" never parses as ">" followed by "= n".
func splitOperator(s string) (op, rest string) {
	for _, candidate := range []string{">=", "<=", "==", "!=", ">", "<"} {
		if strings.HasPrefix(s, candidate) {
			return candidate, s[len(candidate):]
		}
	}
	return "", s
}

// ParseError represents a malformed predicate expression.
type ParseError struct {
	// Code identifies the error category.
	Code ParseErrorCode

	// Message is a human-readable description.
	Message string

	// Expr is the offending expression as given.
	Expr string
}

// ParseErrorCode categorizes predicate parse errors.
type ParseErrorCode string

const (
	// ParseErrCodeEmpty indicates a blank expression.
	ParseErrCodeEmpty ParseErrorCode = "EMPTY_EXPR"

	// ParseErrCodeOperator indicates a missing or unknown operator.
	ParseErrCodeOperator ParseErrorCode = "BAD_OPERATOR"

	// ParseErrCodeNumber indicates an unparseable comparison value.
	ParseErrCodeNumber ParseErrorCode = "BAD_NUMBER"
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (expr=%q)", e.Code, e.Message, e.Expr)
}

// IsParseError returns true if the error is a predicate parse error.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
