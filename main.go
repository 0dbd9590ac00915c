package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/focup/cmd"
	"github.com/thenoetrevino/focup/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
