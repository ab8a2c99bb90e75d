// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contractshard/shardc/internal/analyzer"
	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/hostconfig"
	"github.com/contractshard/shardc/internal/output"
	"github.com/contractshard/shardc/internal/pcm"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old.json> <new.json>",
		Short: "Diff two contract modules' sharding analysis",
		Long: `Analyze two contract module ASTs and show how their synthesized
constraints differ, transition by transition. Useful for reviewing whether
a contract change altered its sharding requirements.`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}
}

func runDiff(command *cobra.Command, args []string) error {
	cfg := GetConfig()

	host := hostconfig.Default()
	if cfg.HostConfigDir != "" {
		var err error
		host, err = hostconfig.Load(cfg.HostConfigDir)
		if err != nil {
			return NewExitError(err, ExitCodeFromError(err))
		}
	}

	az := analyzer.New(pcm.Default(), host)

	oldYAML, err := analyzeToYAML(command, az, args[0])
	if err != nil {
		return err
	}
	newYAML, err := analyzeToYAML(command, az, args[1])
	if err != nil {
		return err
	}

	report, err := output.DiffYAML(args[0], oldYAML, args[1], newYAML)
	if err != nil {
		return fmt.Errorf("computing diff: %w", err)
	}

	output.Print(report)
	return nil
}

func analyzeToYAML(command *cobra.Command, az *analyzer.Analyzer, path string) ([]byte, error) {
	mod, err := cast.LoadFile(path)
	if err != nil {
		return nil, NewExitError(err, ExitCodeFromError(err))
	}
	result, err := az.AnalyzeModule(command.Context(), mod)
	if err != nil {
		return nil, NewExitError(err, ExitCodeFromError(err))
	}
	return output.ToYAML(result.Transitions)
}
