// Package config provides configuration loading and management.
package config

import (
	"github.com/contractshard/shardc/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	SourceFlag    ConfigSource = "flag"
	SourceEnv     ConfigSource = "env"
	SourceConfig  ConfigSource = "config"
	SourceDefault ConfigSource = "default"
)

// resolveString resolves a single string setting using precedence: flag >
// env > config file > default, recording shadowed alternatives for
// verbose diagnostic logging. This mirrors what Load asks viper to do
// internally; it exists separately so Load can explain, after the fact,
// which source actually won for each field.
func resolveString(key, flagValue, envValue, fileValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: map[string]any{}}
	switch {
	case flagValue != "":
		rv.Value, rv.Source = flagValue, string(SourceFlag)
	case envValue != "":
		rv.Value, rv.Source = envValue, string(SourceEnv)
	case fileValue != "":
		rv.Value, rv.Source = fileValue, string(SourceConfig)
	default:
		rv.Value, rv.Source = defaultValue, string(SourceDefault)
	}
	for src, v := range map[string]string{
		string(SourceFlag): flagValue, string(SourceEnv): envValue,
		string(SourceConfig): fileValue, string(SourceDefault): defaultValue,
	} {
		if src != rv.Source && v != "" {
			rv.Shadowed[src] = v
		}
	}
	return rv
}

// LogResolvedValues logs each configuration value's resolution chain at
// debug level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved", "key", v.Key, "value", v.Value, "source", v.Source)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence", "key", v.Key,
				"shadowed_source", source, "shadowed_value", shadowed)
		}
	}
}
