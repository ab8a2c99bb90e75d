// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/contractshard/shardc/internal/config"
	"github.com/contractshard/shardc/internal/output"
)

var (
	// Global flags
	configFlag        string
	hostConfigDirFlag string
	outputFormatFlag  string
	verboseFlag       bool
	noColorFlag       bool

	// loadedConfig is resolved during PersistentPreRunE and read by
	// subcommands through GetConfig.
	loadedConfig *config.Config
)

// NewRootCmd creates the root command for the shardc CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "shardc",
		Short:         "Static sharding analysis for contract modules",
		Long:          `shardc analyzes a type-checked contract module and synthesizes, for each transition, the constraints a sharded host must satisfy to place it safely.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to shardc config file (env: SHARDC_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&hostConfigDirFlag, "host-config", "", "directory containing the host configuration CUE document")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", `output format: "text" or "json"`)
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable styled terminal output")

	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging before any
// subcommand runs.
func initializeGlobals(_ *cobra.Command) error {
	cfg, err := config.Load(config.LoaderOptions{
		ConfigFlag:        configFlag,
		HostConfigDirFlag: hostConfigDirFlag,
		OutputFormatFlag:  outputFormatFlag,
		Verbose:           verboseFlag,
		NoColorFlag:       noColorFlag,
	})
	if err != nil {
		return err
	}
	loadedConfig = cfg

	output.SetupLogging(output.LogConfig{
		Verbose: cfg.Verbose,
		NoColor: cfg.NoColor,
	})

	return nil
}

// GetConfig returns the resolved shardc configuration.
func GetConfig() *config.Config {
	return loadedConfig
}
