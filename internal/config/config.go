// Package config loads shardc's own CLI configuration (distinct from
// internal/hostconfig, which loads the schema-validated, module-facing
// host configuration): output format, verbosity, and where to find the
// host configuration document.
package config

// Config is shardc's resolved CLI configuration.
type Config struct {
	// HostConfigDir is the directory internal/hostconfig.Load reads the
	// host configuration CUE document from. Empty means use
	// hostconfig.Default().
	HostConfigDir string `mapstructure:"host_config_dir" yaml:"host_config_dir"`

	// OutputFormat selects the renderer: "text" or "json".
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`

	// Verbose enables debug-level logging.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`

	// NoColor disables styled terminal output.
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
}

// DefaultConfig returns a Config with every field at its zero-configuration
// value. Used by `shardc config init` to generate an initial config file.
func DefaultConfig() *Config {
	return &Config{OutputFormat: "text"}
}

// ResolvedValue tracks a configuration value and its resolution chain, for
// logging config resolution with --verbose.
type ResolvedValue struct {
	// Key is the configuration key (e.g. "output_format").
	Key string

	// Value is the resolved value.
	Value any

	// Source indicates where the value came from: "flag", "env", "config", "default".
	Source string

	// Shadowed contains lower-precedence sources that were overridden.
	Shadowed map[string]any
}
