// Package main is the entry point for the cfgctl CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/cfgctl/cmd/cfgctl/commands"
	cfgerrors "github.com/thoreinstein/cfgctl/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *cfgerrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
			}
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cfgerrors.ExitUser)
	}
}
