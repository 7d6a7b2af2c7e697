package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/seqlab/internal/quant"
)

// QuantifyOptions holds flags shared by the any and all commands.
type QuantifyOptions struct {
	Fail bool // exit 1 when the check does not hold
}

// QuantifyResult is the JSON payload of the any and all commands.
type QuantifyResult struct {
	Quantifier string `json:"quantifier"` // "any" or "all"
	Predicate  string `json:"predicate"`
	Holds      bool   `json:"holds"`
	Length     int    `json:"length"`
}

// NewAnyCommand creates the any command.
func NewAnyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QuantifyOptions{}

	cmd := &cobra.Command{
		Use:   "any <predicate> [values...]",
		Short: "Check whether any element satisfies a predicate",
		Long: `Check whether at least one element satisfies a comparison predicate,
e.g. seqlab any "> 2" 1 2 3.

The scan stops at the first match. An empty sequence never satisfies any.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuantify(rootOpts, opts, "any", args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Fail, "fail", false, "exit with code 1 when the check does not hold")

	return cmd
}

// NewAllCommand creates the all command.
func NewAllCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QuantifyOptions{}

	cmd := &cobra.Command{
		Use:   "all <predicate> [values...]",
		Short: "Check whether every element satisfies a predicate",
		Long: `Check whether every element satisfies a comparison predicate,
e.g. seqlab all ">= 0" 1 2 3.

An empty sequence satisfies all vacuously.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuantify(rootOpts, opts, "all", args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Fail, "fail", false, "exit with code 1 when the check does not hold")

	return cmd
}

func runQuantify(rootOpts *RootOptions, opts *QuantifyOptions, quantifier string, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	expr := args[0]
	p, err := quant.ParsePredicate(expr)
	if err != nil {
		return outputPredicateError(formatter, err)
	}

	v, err := ResolveVector(rootOpts, args[1:])
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("%s %q over %d element(s)", quantifier, expr, len(v))

	var holds bool
	if quantifier == "any" {
		holds = quant.Any(v, p)
	} else {
		holds = quant.All(v, p)
	}

	var outErr error
	if formatter.Format == "json" {
		outErr = formatter.Success(QuantifyResult{
			Quantifier: quantifier,
			Predicate:  expr,
			Holds:      holds,
			Length:     len(v),
		})
	} else {
		outErr = formatter.Success(holds)
	}
	if outErr != nil {
		return outErr
	}

	if opts.Fail && !holds {
		return NewExitError(ExitFailure, fmt.Sprintf("%s %q does not hold", quantifier, expr))
	}
	return nil
}

// outputPredicateError reports a malformed predicate expression.
func outputPredicateError(formatter *OutputFormatter, err error) error {
	_ = formatter.Error(ErrCodeBadPredicate, err.Error(), nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeBadPredicate, err.Error()))
}
