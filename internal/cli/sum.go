package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkarlsen/seqlab/internal/vec"
)

// SumResult is the JSON payload of the sum command.
type SumResult struct {
	Sum    float64 `json:"sum"`
	Length int     `json:"length"`
}

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [values...]",
		Short: "Sum a sequence",
		Long: `Sum the elements of a sequence.

The sum of an empty sequence is 0.`,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runSum(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	v, err := ResolveVector(opts, args)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("summing %d element(s)", len(v))

	total := vec.Sum(v)
	if formatter.Format == "json" {
		return formatter.Success(SumResult{Sum: total, Length: len(v)})
	}
	return formatter.Success(formatScalar(total))
}
