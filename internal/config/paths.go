// Package config provides configuration loading and management.
package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for the CLI.
type Paths struct {
	// ConfigFile is the path to the config file (~/.shardc/config.yaml).
	ConfigFile string

	// HomeDir is the path to shardc's home directory (~/.shardc).
	HomeDir string
}

// DefaultPaths returns the default paths, rooted at the user's home directory.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	shardcHome := filepath.Join(homeDir, ".shardc")
	return &Paths{
		ConfigFile: filepath.Join(shardcHome, "config.yaml"),
		HomeDir:    shardcHome,
	}, nil
}

// PathsFromEnv returns paths considering the SHARDC_CONFIG override.
func PathsFromEnv() (*Paths, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	if configPath := os.Getenv("SHARDC_CONFIG"); configPath != "" {
		paths.ConfigFile = configPath
	}
	return paths, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if len(path) == 1 {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[1:]), nil
}

// EnsureDir ensures a directory exists with the given permissions.
func EnsureDir(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
