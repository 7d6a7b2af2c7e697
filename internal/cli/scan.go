package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/seqlab/internal/vec"
)

// ScanOptions holds flags specific to the scan command.
type ScanOptions struct {
	Op     string // "sum" | "prod"
	Invert bool   // apply the inverse scan instead
}

// ValidScanOps defines the allowed cumulative operations.
var ValidScanOps = []string{"sum", "prod"}

// ScanResult is the JSON payload of the scan command.
type ScanResult struct {
	Op     string     `json:"op"`
	Invert bool       `json:"invert,omitempty"`
	Values vec.Vector `json:"values"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [values...]",
		Short: "Cumulative sum/product of a sequence, or its inverse",
		Long: `Compute the inclusive cumulative sum or product of a sequence.

With --invert, apply the exact inverse instead: scan --invert of a
cumulative result recovers the original sequence, at the same length.
The inverse product rejects sequences containing a zero element, since
dividing by a zero prefix product is undefined.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", "sum", "cumulative operation (sum|prod)")
	cmd.Flags().BoolVar(&opts.Invert, "invert", false, "apply the inverse scan")

	return cmd
}

func runScan(rootOpts *RootOptions, opts *ScanOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if !isValidScanOp(opts.Op) {
		message := fmt.Sprintf("invalid op %q: must be one of %v", opts.Op, ValidScanOps)
		_ = formatter.Error(ErrCodeGeneric, message, nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeGeneric, message))
	}

	v, err := ResolveVector(rootOpts, args)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("scan op=%s invert=%t over %d element(s)", opts.Op, opts.Invert, len(v))

	var out vec.Vector
	switch {
	case opts.Op == "sum" && !opts.Invert:
		out = vec.CumSum(v)
	case opts.Op == "sum" && opts.Invert:
		out = vec.InvCumSum(v)
	case opts.Op == "prod" && !opts.Invert:
		out = vec.CumProd(v)
	default: // prod, inverted
		out, err = vec.InvCumProd(v)
		if err != nil {
			return outputScanError(formatter, err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(ScanResult{Op: opts.Op, Invert: opts.Invert, Values: out})
	}
	return formatter.Success(formatVector(out))
}

// outputScanError reports a domain error from the inverse scan.
func outputScanError(formatter *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	var details interface{}

	var de *vec.DomainError
	if errors.As(err, &de) && de.Code == vec.ErrCodeZeroElement {
		code = ErrCodeZeroElement
		details = map[string]int{"index": de.Index}
	}

	_ = formatter.Error(code, err.Error(), details)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, err.Error()))
}

// isValidScanOp checks if the op is one of the allowed values.
func isValidScanOp(op string) bool {
	for _, o := range ValidScanOps {
		if o == op {
			return true
		}
	}
	return false
}
