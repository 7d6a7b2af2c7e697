package main

import (
	"os"

	"github.com/mkarlsen/seqlab/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own error output; only the exit code
		// remains to be propagated.
		os.Exit(cli.GetExitCode(err))
	}
}
