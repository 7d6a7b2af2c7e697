package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	TraceID string // correlation id; minted when not supplied
	Input   string // optional YAML series file
	Series  string // series name within --input
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the seqlab CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "seqlab",
		Short: "seqlab - sequence reductions, scans and quantifiers",
		Long: `A toolkit for one-dimensional numeric sequences: sums and squares,
cumulative aggregates and their exact inverses, and existential/universal
checks with logical masks.

Sequences come from positional arguments or from a named series in a YAML
file (--input data.yaml --series prices). Put "--" before negative values
so they are not read as flags: seqlab sum -- -3 -2 -1.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			// Mint a correlation id unless the caller pinned one
			if opts.TraceID == "" {
				opts.TraceID = uuid.Must(uuid.NewV7()).String()
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.TraceID, "trace-id", "", "trace correlation id (generated when empty)")
	cmd.PersistentFlags().StringVar(&opts.Input, "input", "", "YAML series file to read the sequence from")
	cmd.PersistentFlags().StringVar(&opts.Series, "series", "", "series name within --input")

	// Add subcommands
	cmd.AddCommand(NewSumCommand(opts))
	cmd.AddCommand(NewSquareCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewAnyCommand(opts))
	cmd.AddCommand(NewAllCommand(opts))
	cmd.AddCommand(NewWhereCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
