// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	oerrors "github.com/contractshard/shardc/internal/errors"
)

// Exit codes, re-exported from internal/errors so command files need only
// import this package.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitStructuralError = oerrors.ExitStructuralError
	ExitNotFound        = oerrors.ExitNotFound
)

// NewExitError creates an error carrying the exit code Execute should return.
func NewExitError(err error, code int) *oerrors.ExitError {
	return oerrors.NewExitError(err, code)
}

// ExitCodeFromError maps an error to the appropriate exit code.
func ExitCodeFromError(err error) int {
	return oerrors.ExitCodeFromError(err)
}

// Exit terminates the program with the appropriate exit code for the error.
func Exit(err error) {
	os.Exit(ExitCodeFromError(err))
}
