package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/seqlab/internal/quant"
	"github.com/mkarlsen/seqlab/internal/vec"
)

// WhereOptions holds flags specific to the where command.
type WhereOptions struct {
	Show string // "mask" | "indices" | "values"
}

// ValidShowModes defines the allowed projections of a predicate mask.
var ValidShowModes = []string{"mask", "indices", "values"}

// WhereResult is the JSON payload of the where command.
type WhereResult struct {
	Predicate string      `json:"predicate"`
	Count     int         `json:"count"`
	Mask      vec.Mask    `json:"mask,omitempty"`
	Indices   vec.Indices `json:"indices,omitempty"`
	Values    vec.Vector  `json:"values,omitempty"`
}

// NewWhereCommand creates the where command.
func NewWhereCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WhereOptions{}

	cmd := &cobra.Command{
		Use:   "where <predicate> [values...]",
		Short: "Build a logical mask and project it",
		Long: `Evaluate a comparison predicate at every position of a sequence and
show the result, e.g. seqlab where "> 2" 1 2 3 4 5.

--show picks the projection: the boolean mask itself, the positions where
it is true (ascending, 0-based), or the matching values. Nothing matching
is an empty result, not an error.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhere(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Show, "show", "mask", "projection to print (mask|indices|values)")

	return cmd
}

func runWhere(rootOpts *RootOptions, opts *WhereOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if !isValidShowMode(opts.Show) {
		message := fmt.Sprintf("invalid projection %q: must be one of %v", opts.Show, ValidShowModes)
		_ = formatter.Error(ErrCodeGeneric, message, nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeGeneric, message))
	}

	p, err := quant.ParsePredicate(args[0])
	if err != nil {
		return outputPredicateError(formatter, err)
	}

	v, err := ResolveVector(rootOpts, args[1:])
	if err != nil {
		return outputLoadError(formatter, err)
	}

	mask := quant.Apply(v, p)
	formatter.VerboseLog("where %q matched %d of %d element(s)", args[0], quant.Count(mask), len(v))

	if formatter.Format == "json" {
		return formatter.Success(whereResult(args[0], v, mask, opts.Show))
	}

	switch opts.Show {
	case "indices":
		return formatter.Success(formatIndices(quant.TrueIndices(mask)))
	case "values":
		selected, err := quant.Select(v, mask)
		if err != nil {
			// Mask came from Apply over v, so lengths always agree.
			return NewExitError(ExitCommandError, err.Error())
		}
		return formatter.Success(formatVector(selected))
	default:
		return formatter.Success(formatMask(mask))
	}
}

// whereResult builds the JSON payload carrying only the requested
// projection alongside the match count.
func whereResult(expr string, v vec.Vector, mask vec.Mask, show string) WhereResult {
	result := WhereResult{
		Predicate: expr,
		Count:     quant.Count(mask),
	}
	switch show {
	case "indices":
		result.Indices = quant.TrueIndices(mask)
	case "values":
		selected, err := quant.Select(v, mask)
		if err == nil {
			result.Values = selected
		}
	default:
		result.Mask = mask
	}
	return result
}

// isValidShowMode checks if the projection is one of the allowed values.
func isValidShowMode(show string) bool {
	for _, s := range ValidShowModes {
		if s == show {
			return true
		}
	}
	return false
}
