// Package cmd provides CLI command implementations.
package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/testutil"
)

func incrementModule() *cast.Module {
	ptr := func(e cast.Expr) *cast.Expr { return &e }
	body := []cast.Stmt{
		{Kind: cast.StmtLoad, Binder: "v", Field: "counter"},
		{Kind: cast.StmtBind, Binder: "one", Value: ptr(testutil.Literal("1"))},
		{Kind: cast.StmtBind, Binder: "v2", Value: ptr(testutil.Builtin("add", testutil.Var("v"), testutil.Var("one")))},
		{Kind: cast.StmtStore, Field: "counter", Value: ptr(testutil.Var("v2"))},
	}
	return testutil.Module("Counter", nil, testutil.Transition("Increment", nil, body...))
}

func TestRunAnalyze_TextOutput(t *testing.T) {
	t.Cleanup(func() { configFlag = "" })
	dir := t.TempDir()
	modPath := testutil.WriteModuleFile(t, dir, "module.json", incrementModule())
	configFlag = filepath.Join(dir, "config.yaml")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"analyze", modPath})

	require.NoError(t, cmd.Execute())
}

func TestRunAnalyze_JSONOutput(t *testing.T) {
	t.Cleanup(func() { configFlag = "" })
	dir := t.TempDir()
	modPath := testutil.WriteModuleFile(t, dir, "module.json", incrementModule())
	configFlag = filepath.Join(dir, "config.yaml")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--output", "json", "analyze", modPath})

	require.NoError(t, cmd.Execute())
}

func TestRunAnalyze_MissingModuleFile(t *testing.T) {
	t.Cleanup(func() { configFlag = "" })
	configFlag = filepath.Join(t.TempDir(), "config.yaml")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"analyze", "/nonexistent/module.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))
}
