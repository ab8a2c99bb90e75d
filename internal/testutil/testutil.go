// Package testutil provides test helpers for building contract-module
// fixtures and exercising file-based module loading.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/contractshard/shardc/internal/cast"
)

// TempDir creates a temporary directory for tests and returns a cleanup function.
func TempDir(t *testing.T) (string, func()) {
	t.Helper()
	dir, err := os.MkdirTemp("", "shardc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Logf("warning: failed to remove temp dir %s: %v", dir, err)
		}
	}
}

// FixturePath returns the absolute path to a test fixture, walking up from
// the working directory to find tests/fixtures.
func FixturePath(t *testing.T, parts ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	dir := wd
	for {
		fixturesPath := filepath.Join(dir, "tests", "fixtures")
		if _, err := os.Stat(fixturesPath); err == nil {
			return filepath.Join(append([]string{fixturesPath}, parts...)...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find tests/fixtures directory from %s", wd)
		}
		dir = parent
	}
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteModuleFile encodes a Module as JSON into dir/name and returns the
// written path, for tests exercising cast.LoadFile against a module built
// with this package's AST helpers.
func WriteModuleFile(t *testing.T, dir, name string, mod *cast.Module) string {
	t.Helper()
	data, err := json.Marshal(mod)
	if err != nil {
		t.Fatalf("failed to marshal module fixture: %v", err)
	}
	return WriteFile(t, dir, name, string(data))
}

// Literal builds a literal-value expression.
func Literal(value string) cast.Expr {
	return cast.Expr{Kind: cast.ExprLiteral, Literal: value}
}

// Var builds a variable-reference expression.
func Var(name string) cast.Expr {
	return cast.Expr{Kind: cast.ExprVar, Name: name}
}

// Builtin builds a builtin-application expression.
func Builtin(name string, args ...cast.Expr) cast.Expr {
	return cast.Expr{Kind: cast.ExprBuiltin, Builtin: name, Args: args}
}

// Message builds a message-literal expression with the given fields.
func Message(fields ...cast.MessageField) cast.Expr {
	return cast.Expr{Kind: cast.ExprMessage, MessageFields: fields}
}

// Field builds one `label: expr` message field.
func Field(label string, value cast.Expr) cast.MessageField {
	return cast.MessageField{Label: label, Value: value}
}

// BasicType builds a non-function, non-map type annotation.
func BasicType(name string) cast.Type {
	return cast.Type{Name: name}
}

// MapType builds a map-typed annotation with the given key nesting depth.
func MapType(name string, keyDepth int) cast.Type {
	return cast.Type{Name: name, MapKeyDepth: keyDepth}
}

// Param builds a named, typed contract or component parameter.
func Param(name string, typ cast.Type) cast.ContractParam {
	return cast.ContractParam{Name: name, Type: typ}
}

// Transition builds a transition component with the given parameters and body.
func Transition(name string, params []cast.ContractParam, body ...cast.Stmt) cast.Component {
	return cast.Component{Name: name, Kind: cast.KindTransition, Params: params, Body: body}
}

// Procedure builds a procedure component with the given parameters and body.
func Procedure(name string, params []cast.ContractParam, body ...cast.Stmt) cast.Component {
	return cast.Component{Name: name, Kind: cast.KindProcedure, Params: params, Body: body}
}

// Module builds a minimal module with the given construction parameters and components.
func Module(name string, params []cast.ContractParam, components ...cast.Component) *cast.Module {
	return &cast.Module{Name: name, Params: params, Components: components}
}
