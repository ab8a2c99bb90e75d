// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	oerrors "github.com/contractshard/shardc/internal/errors"
)

// LoaderOptions carries the CLI flag values Load should treat as the
// highest-precedence source.
type LoaderOptions struct {
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string
	// HostConfigDirFlag is the --host-config flag value.
	HostConfigDirFlag string
	// OutputFormatFlag is the --output flag value.
	OutputFormatFlag string
	// Verbose is the --verbose flag value.
	Verbose bool
	// NoColorFlag is the --no-color flag value.
	NoColorFlag bool
}

// Load resolves a Config from, in increasing precedence: defaults, a YAML
// config file (~/.shardc/config.yaml unless opts.ConfigFlag overrides the
// path), SHARDC_-prefixed environment variables, and finally opts' flag
// values — layered with viper rather than the hand-rolled regex bootstrap
// a CUE-registry resolution would need, since these are plain scalar
// settings with no import graph to resolve first.
func Load(opts LoaderOptions) (*Config, error) {
	paths, err := PathsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("resolving default config paths: %w", err)
	}
	configFile := paths.ConfigFile
	if opts.ConfigFlag != "" {
		configFile = opts.ConfigFlag
	}

	v := viper.New()
	v.SetDefault("output_format", "text")
	v.SetDefault("host_config_dir", "")
	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("SHARDC")
	v.AutomaticEnv()

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !os.IsNotExist(err) {
			return nil, oerrors.NewValidationError(err.Error(), configFile, "",
				"check the shardc config file's YAML syntax, or run `shardc config init`")
		}
	}

	if opts.HostConfigDirFlag != "" {
		v.Set("host_config_dir", opts.HostConfigDirFlag)
	}
	if opts.OutputFormatFlag != "" {
		v.Set("output_format", opts.OutputFormatFlag)
	}
	if opts.Verbose {
		v.Set("verbose", true)
	}
	if opts.NoColorFlag {
		v.Set("no_color", true)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding shardc configuration: %w", err)
	}
	if cfg.OutputFormat != "text" && cfg.OutputFormat != "json" {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unsupported output format %q", cfg.OutputFormat),
			"output_format", "output_format", `use "text" or "json"`)
	}

	if cfg.Verbose {
		resolved := []ResolvedValue{
			resolveString("host_config_dir", opts.HostConfigDirFlag, os.Getenv("SHARDC_HOST_CONFIG_DIR"),
				v.GetString("host_config_dir"), ""),
			resolveString("output_format", opts.OutputFormatFlag, os.Getenv("SHARDC_OUTPUT_FORMAT"),
				v.GetString("output_format"), "text"),
		}
		LogResolvedValues(resolved)
	}

	return &cfg, nil
}
