package stencil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReferencesMixedExistence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "files/a.txt", "a")
	writeFile(t, dir, "files/c.txt", "c")

	s := &Settings{Files: []string{"files/a.txt", "files/b.txt", "files/c.txt"}}
	findings := checkReferences(context.Background(), dir, s)

	require.Len(t, findings, 3)
	assert.Equal(t, SeverityInfo, findings[0].Severity)
	assert.Equal(t, SeverityError, findings[1].Severity)
	assert.Equal(t, SeverityInfo, findings[2].Severity)
	assert.Equal(t, "files/b.txt", findings[1].Path)
}

func TestCheckReferencesManyFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 50; i++ {
		files = append(files, fmt.Sprintf("files/f%02d.txt", i))
	}
	// Concurrent stat calls must still come back in declaration order.
	findings := checkReferences(context.Background(), dir, &Settings{Files: files})

	require.Len(t, findings, 50)
	for i, f := range findings {
		assert.Equal(t, files[i], f.Path)
	}
}

func TestCheckReferencesDirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "files", "sub"), 0755))

	findings := checkReferences(context.Background(), dir, &Settings{Files: []string{"files/sub"}})
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityError, findings[0].Severity)
}

func TestReportCrossReferencesNone(t *testing.T) {
	assert.Empty(t, reportCrossReferences(&Settings{}))
}

func TestReportCrossReferencesExtendAndIncludes(t *testing.T) {
	s := &Settings{
		Extend:  "base-template",
		Include: []string{"headers", "footers"},
	}

	findings := reportCrossReferences(s)
	require.Len(t, findings, 3)
	assert.Equal(t, "extend", findings[0].Path)
	assert.Contains(t, findings[0].Message, "base-template")
	assert.Equal(t, "include.0", findings[1].Path)
	assert.Contains(t, findings[1].Message, "headers")
	assert.Equal(t, "include.1", findings[2].Path)
	assert.Contains(t, findings[2].Message, "footers")
	for _, f := range findings {
		assert.Equal(t, SeverityWarning, f.Severity)
	}
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "a")
	writeFile(t, dir, "files/b.txt", "b")
	writeFile(t, dir, "files/deep/c.txt", "c")

	assert.Equal(t, 3, countFiles(dir, nil))
}

func TestCountFilesIgnore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "a")
	writeFile(t, dir, "a.tmp", "t")
	writeFile(t, dir, "node_modules/pkg/index.js", "j")
	writeFile(t, dir, "files/b.txt", "b")

	assert.Equal(t, 2, countFiles(dir, []string{"*.tmp", "node_modules"}))
}
