// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contractshard/shardc/internal/analyzer"
	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/digest"
	"github.com/contractshard/shardc/internal/hostconfig"
	"github.com/contractshard/shardc/internal/output"
	"github.com/contractshard/shardc/internal/pcm"
)

var analyzeOutputFile string

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "analyze <module.json>",
		Short: "Synthesize sharding constraints for a contract module",
		Long: `Analyze a type-checked contract module AST and synthesize, for each
transition, the sharding constraints a host must satisfy to place it safely.

The module file is the JSON-encoded contract AST produced by the external
type checker (see internal/cast.Module). Host-specific implicit parameters
and field metadata come from --host-config, falling back to
hostconfig.Default when unset.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	c.Flags().StringVar(&analyzeOutputFile, "write", "", "write rendered output to this file instead of stdout")

	return c
}

func runAnalyze(command *cobra.Command, args []string) error {
	cfg := GetConfig()

	mod, err := cast.LoadFile(args[0])
	if err != nil {
		return NewExitError(err, ExitCodeFromError(err))
	}

	host := hostconfig.Default()
	if cfg.HostConfigDir != "" {
		host, err = hostconfig.Load(cfg.HostConfigDir)
		if err != nil {
			return NewExitError(err, ExitCodeFromError(err))
		}
	}

	az := analyzer.New(pcm.Default(), host)
	var result *analyzer.Result
	runErr := output.RunWithSpinner(command.Context(), func() error {
		r, analyzeErr := az.AnalyzeModule(command.Context(), mod)
		result = r
		return analyzeErr
	}, output.WithTitle(fmt.Sprintf("Analyzing %s...", mod.Name)))
	if runErr != nil {
		return NewExitError(runErr, ExitCodeFromError(runErr))
	}

	output.Debug("analysis complete", "module", mod.Name, "transitions", len(result.Transitions), "digest", result.Digest)

	rendered, err := renderAnalysis(cfg.OutputFormat, result.Transitions)
	if err != nil {
		return fmt.Errorf("rendering analysis output: %w", err)
	}

	if analyzeOutputFile != "" {
		return writeOutputFile(analyzeOutputFile, rendered)
	}
	output.Print(rendered)
	if len(rendered) == 0 || rendered[len(rendered)-1] != '\n' {
		output.Print("\n")
	}
	return nil
}

func renderAnalysis(format string, transitions []digest.TransitionResult) (string, error) {
	switch format {
	case "json":
		data, err := output.ToJSON(transitions)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return output.RenderTransitions(transitions), nil
	}
}

func writeOutputFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}
