package output

// Dyff integration: computes a semantic YAML diff between two compiled
// pipeline dumps (internal/pipeline.Dump, marshaled to YAML), used by
// `sfxgraph diff` to compare DAG shape and arena placement across two
// compiles instead of a line-oriented text diff.

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffYAML computes a human-readable semantic diff between two YAML
// documents. useColor enables dyff's ANSI table styling; callers pass
// IsTTY() so piped output stays plain.
func DiffYAML(nameA string, a []byte, nameB string, b []byte, useColor bool) (string, error) {
	inputA, err := parseYAMLInput(nameA, a)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", nameA, err)
	}
	inputB, err := parseYAMLInput(nameB, b)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", nameB, err)
	}

	report, err := dyff.CompareInputFiles(inputA, inputB)
	if err != nil {
		return "", fmt.Errorf("comparing pipeline dumps: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}
	return renderDyffReport(report, useColor)
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

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing dyff report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n"), nil
}

// DiffRenderer renders structural diff sections (added/removed/modified DAG
// nodes) for contexts that want a simple name-list summary alongside the
// full dyff report.
type DiffRenderer struct {
	styles *Styles
}

// NewDiffRenderer creates a new DiffRenderer with default styles.
func NewDiffRenderer() *DiffRenderer {
	return &DiffRenderer{styles: GetStyles()}
}

// NewDiffRendererWithStyles creates a DiffRenderer with custom styles.
func NewDiffRendererWithStyles(styles *Styles) *DiffRenderer {
	return &DiffRenderer{styles: styles}
}

// RenderAdded renders an added node line.
func (r *DiffRenderer) RenderAdded(name string) string {
	return "  + " + r.styles.Success.Render(name)
}

// RenderRemoved renders a removed node line.
func (r *DiffRenderer) RenderRemoved(name string) string {
	return "  - " + r.styles.Error.Render(name)
}

// RenderModified renders a modified node header.
func (r *DiffRenderer) RenderModified(name string) string {
	return "  ~ " + r.styles.Warning.Render(name)
}
