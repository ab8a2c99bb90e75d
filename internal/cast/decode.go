package cast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrModuleNotFound is returned when the AST file doesn't exist.
var ErrModuleNotFound = errors.New("module AST not found")

// ErrInvalidModule is returned when the AST file fails to decode.
var ErrInvalidModule = errors.New("invalid module AST")

// LoadFile decodes a type-checked contract module from a JSON file on disk.
// The JSON is produced by the (external) type checker; this is deliberately
// a thin encoding/json layer with no semantic validation beyond "does it
// decode" — the analysis itself is where structural assumptions get
// checked.
func LoadFile(path string) (*Module, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
		}
		return nil, fmt.Errorf("opening module AST: %w", err)
	}
	defer f.Close()

	mod, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidModule, path, err)
	}
	return mod, nil
}

// Decode decodes a type-checked contract module from JSON.
func Decode(r io.Reader) (*Module, error) {
	var mod Module
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&mod); err != nil {
		return nil, err
	}
	return &mod, nil
}
