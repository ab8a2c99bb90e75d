// Package cmd provides CLI command implementations.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigVetCmd(t *testing.T) {
	cmd := newConfigVetCmd()
	assert.Equal(t, "vet", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestConfigVet_ValidFile(t *testing.T) {
	t.Cleanup(func() { configFlag = "" })
	configFlag = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFlag, []byte("output_format: json\n"), 0o644))

	cmd := newConfigVetCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
}

func TestConfigVet_MissingFile(t *testing.T) {
	t.Cleanup(func() { configFlag = "" })
	configFlag = filepath.Join(t.TempDir(), "missing.yaml")

	cmd := newConfigVetCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestConfigVet_InvalidOutputFormat(t *testing.T) {
	t.Cleanup(func() { configFlag = "" })
	configFlag = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFlag, []byte("output_format: xml\n"), 0o644))

	cmd := newConfigVetCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
