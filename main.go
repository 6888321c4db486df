package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/leadboard/cmd"
	"github.com/thenoetrevino/leadboard/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Command errors were already reported by the output formatter.
		var exitErr *cli.CodeError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
