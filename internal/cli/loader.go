package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/mkarlsen/seqlab/internal/vec"
)

// LoadError represents an error that occurred while resolving the input
// sequence (series file problems, malformed numbers, missing input).
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeBadNumber     = "E002" // Positional argument is not a number
	ErrCodeNoInput       = "E003" // Neither args nor --input given
	ErrCodeParseFailed   = "E004" // Series file is not valid YAML
	ErrCodeNotFound      = "E005" // Series file not found
	ErrCodeUnknownSeries = "E006" // Named series missing from file
	ErrCodeConflict      = "E007" // Both args and --input given

	// Evaluation errors
	ErrCodeBadPredicate = "E101" // Malformed predicate expression
	ErrCodeZeroElement  = "E102" // Zero element in inverse cumulative product
)

// LoadSeries reads a YAML series file: a top-level mapping from series
// name to a list of numbers.
//
// Series names are NFC-normalized on load, so a name typed on the command
// line matches a visually identical name in the file regardless of how
// either was composed.
func LoadSeries(path string) (map[string]vec.Vector, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("series file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading series file: %v", err)}
	}

	var parsed map[string][]float64
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing series file %s: %v", path, err)}
	}
	if len(parsed) == 0 {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("no series found in %s", path)}
	}

	series := make(map[string]vec.Vector, len(parsed))
	for name, values := range parsed {
		series[norm.NFC.String(name)] = vec.Vector(values)
	}
	return series, nil
}

// LookupSeries finds a named series, normalizing the queried name the same
// way LoadSeries normalized the keys. Unknown names report the available
// series in sorted order.
func LookupSeries(series map[string]vec.Vector, name string) (vec.Vector, error) {
	v, ok := series[norm.NFC.String(name)]
	if !ok {
		names := make([]string, 0, len(series))
		for k := range series {
			names = append(names, k)
		}
		sort.Strings(names)
		return nil, &LoadError{
			Code:    ErrCodeUnknownSeries,
			Message: fmt.Sprintf("series %q not found (available: %v)", name, names),
		}
	}
	return v, nil
}

// ResolveVector turns the command input into a Vector: either the
// positional arguments parsed as numbers, or a named series from the
// --input file. Exactly one source must be used; mixing or omitting both
// is an error rather than a guess.
func ResolveVector(opts *RootOptions, args []string) (vec.Vector, error) {
	fromFile := opts.Input != ""

	switch {
	case fromFile && len(args) > 0:
		return nil, &LoadError{Code: ErrCodeConflict, Message: "use positional values or --input, not both"}
	case !fromFile && len(args) == 0:
		return nil, &LoadError{Code: ErrCodeNoInput, Message: "no sequence given: pass values or --input/--series"}
	}

	if fromFile {
		if opts.Series == "" {
			return nil, &LoadError{Code: ErrCodeUnknownSeries, Message: "--input requires --series to name the sequence"}
		}
		series, err := LoadSeries(opts.Input)
		if err != nil {
			return nil, err
		}
		return LookupSeries(series, opts.Series)
	}

	v := make(vec.Vector, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeBadNumber, Message: fmt.Sprintf("argument %d: %q is not a number", i, arg)}
		}
		v[i] = x
	}
	return v, nil
}

// outputLoadError reports an input-resolution failure and converts it to
// a command-level exit error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	code, message := ErrCodeGeneric, err.Error()
	var le *LoadError
	if errors.As(err, &le) {
		code, message = le.Code, le.Message
	}
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}
