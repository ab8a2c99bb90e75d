// Package main is the entry point for the shardc CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/contractshard/shardc/internal/cmd"
	oerrors "github.com/contractshard/shardc/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
