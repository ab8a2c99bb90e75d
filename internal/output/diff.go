package output

import (
	"bytes"
	"fmt"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff"
)

// DiffYAML computes a human-readable, colorized diff between two YAML
// documents — used by `shardc diff` to compare two analysis runs' rendered
// output.
func DiffYAML(oldName string, oldYAML []byte, newName string, newYAML []byte) (string, error) {
	oldInput, err := parseYAMLInput(oldName, oldYAML)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", oldName, err)
	}
	newInput, err := parseYAMLInput(newName, newYAML)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", newName, err)
	}

	report, err := dyff.CompareInputFiles(oldInput, newInput)
	if err != nil {
		return "", fmt.Errorf("comparing analysis output: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("rendering diff report: %w", err)
	}
	return buf.String(), nil
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}
	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
