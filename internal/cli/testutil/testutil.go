// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stencil-labs/stencil/internal/cli/output"
)

// SetupTestStencil creates a temporary directory containing a valid stencil:
// a settings document declaring one file, plus that file on disk.
func SetupTestStencil(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	settings := `id: svc
name: Service
version: 1.0.0
type: service
description: A test stencil
files:
  - files/a.txt
`
	if err := os.WriteFile(filepath.Join(tmpDir, "stencil-settings.yaml"),
		[]byte(settings), 0644); err != nil {
		t.Fatalf("failed to create stencil-settings.yaml: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(tmpDir, "files"), 0755); err != nil {
		t.Fatalf("failed to create files directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "files", "a.txt"),
		[]byte("template content\n"), 0644); err != nil {
		t.Fatalf("failed to create files/a.txt: %v", err)
	}

	return tmpDir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererText creates a new test renderer in text mode (simulated TTY).
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, true)
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the captured stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the captured stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}
