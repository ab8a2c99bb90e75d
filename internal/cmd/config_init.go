// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/contractshard/shardc/internal/config"
)

var configInitForce bool

func newConfigInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new shardc configuration file",
		Long: `Create a new shardc configuration file with default values.

The configuration file is created at ~/.shardc/config.yaml by default.
Use --config to specify a different location.`,
		RunE: runConfigInit,
	}

	initCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	return initCmd
}

func runConfigInit(command *cobra.Command, _ []string) error {
	configFile, err := resolveConfigFilePath(command)
	if err != nil {
		return err
	}

	if _, err := os.Stat(configFile); err == nil && !configInitForce {
		return NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", configFile),
			ExitGeneralError,
		)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	header := []byte("# shardc configuration\n\n")
	data = append(header, data...)

	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(command.OutOrStdout(), "Config file created: %s\n", configFile)
	return nil
}

func resolveConfigFilePath(_ *cobra.Command) (string, error) {
	if configFlag != "" {
		return config.ExpandPath(configFlag)
	}
	paths, err := config.PathsFromEnv()
	if err != nil {
		return "", fmt.Errorf("resolving default config path: %w", err)
	}
	return paths.ConfigFile, nil
}
