// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contractshard/shardc/internal/output"
	"github.com/contractshard/shardc/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show shardc version information.

Displays the shardc version, commit, and build date, plus the embedded
CUE SDK version used to validate host configuration documents.`,
		RunE: runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	info := version.Get()

	output.Println(fmt.Sprintf("shardc version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:    %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:     %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:        %s", info.GoVersion))
	output.Println(fmt.Sprintf("  CUE SDK:   %s", info.CUESDKVersion))

	return nil
}
