// Package main is the entry point for the agentdocs CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/agentdocs/cmd/agentdocs/commands"
	"github.com/thoreinstein/agentdocs/internal/errors"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code.
func run() int {
	err := commands.Execute()
	if err == nil {
		return errors.ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	if s := errors.Suggestion(err); s != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", s)
	}
	return errors.ExitCode(err)
}
