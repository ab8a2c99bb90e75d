// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contractshard/shardc/internal/config"
)

func newConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the shardc configuration file",
		Long: `Validate the shardc configuration file.

The command validates the configuration file at ~/.shardc/config.yaml by
default. Use --config to specify a different location.`,
		RunE: runConfigVet,
	}
}

func runConfigVet(command *cobra.Command, _ []string) error {
	configFile, err := resolveConfigFilePath(command)
	if err != nil {
		return err
	}

	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) {
			return NewExitError(fmt.Errorf("config file not found: %s", configFile), ExitNotFound)
		}
		return fmt.Errorf("checking config file: %w", err)
	}

	if _, err := config.Load(config.LoaderOptions{ConfigFlag: configFile}); err != nil {
		return NewExitError(fmt.Errorf("config file is invalid: %w", err), ExitValidationError)
	}

	fmt.Fprintf(command.OutOrStdout(), "Config file is valid: %s\n", configFile)
	return nil
}
