// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for shardc's own CLI settings.`,
	}

	c.AddCommand(newConfigInitCmd())
	c.AddCommand(newConfigVetCmd())

	return c
}
