package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkarlsen/seqlab/internal/vec"
)

// SquareResult is the JSON payload of the square command.
type SquareResult struct {
	Values vec.Vector `json:"values"`
}

// NewSquareCommand creates the square command.
func NewSquareCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "square [values...]",
		Short: "Square each element of a sequence",
		Long: `Square each element of a sequence.

Output has the same length and order as the input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSquare(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runSquare(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	v, err := ResolveVector(opts, args)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("squaring %d element(s)", len(v))

	squared := vec.Square(v)
	if formatter.Format == "json" {
		return formatter.Success(SquareResult{Values: squared})
	}
	return formatter.Success(formatVector(squared))
}
