// Package cmd provides CLI command implementations.
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["analyze"])
	assert.True(t, names["diff"])
	assert.True(t, names["config"])
	assert.True(t, names["version"])
}

func TestNewRootCmd_PersistentFlags(t *testing.T) {
	root := NewRootCmd()

	for _, flag := range []string{"config", "host-config", "output", "verbose", "no-color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}
