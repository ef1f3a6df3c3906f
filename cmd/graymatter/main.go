// Package main is the entry point for the graymatter CLI.
package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/graymatter/cmd/graymatter/commands"
	"github.com/thoreinstein/graymatter/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)

		var exitErr *errors.ExitError
		if stderrors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "%s\n", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(errors.ExitUser)
	}
}
