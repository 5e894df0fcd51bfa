package stencil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// maxExistenceChecks bounds how many file existence checks run at once.
const maxExistenceChecks = 8

// checkReferences verifies that every file the settings document declares
// exists under root. Existence checks run concurrently but results are
// re-merged in declaration order, so the output sequence always matches the
// manifest. Only existence is inspected, never contents.
//
// When the document declares no files, the implicit convention directory is
// consulted instead: its presence is informational, its absence a warning —
// an unconventional layout is not necessarily wrong.
func checkReferences(ctx context.Context, root string, s *Settings) []Finding {
	if len(s.Files) == 0 {
		dir := filepath.Join(root, FilesDirName)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return []Finding{infof(FilesDirName, fmt.Sprintf("Convention directory %s/ exists", FilesDirName))}
		}
		return []Finding{warningf(FilesDirName,
			fmt.Sprintf("No files declared and no %s/ directory found", FilesDirName))}
	}

	findings := make([]Finding, len(s.Files))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxExistenceChecks)
	for i, rel := range s.Files {
		g.Go(func() error {
			if info, err := os.Stat(filepath.Join(root, rel)); err == nil && !info.IsDir() {
				findings[i] = infof(rel, fmt.Sprintf("Referenced file exists: %s", rel))
			} else {
				findings[i] = errorf(rel, fmt.Sprintf("Referenced file does not exist: %s", rel))
			}
			return nil
		})
	}
	// The workers never return errors; findings carry the outcomes.
	_ = g.Wait()
	return findings
}

// reportCrossReferences emits one warning per extend/include declaration.
// Cross-project references are deliberately unresolved in this phase, so
// this performs no file system or network access and never escalates to an
// error regardless of whether the target is resolvable.
func reportCrossReferences(s *Settings) []Finding {
	var findings []Finding
	if s.Extend != "" {
		findings = append(findings, warningf("extend",
			fmt.Sprintf("Cross-project reference '%s' cannot be validated in this phase", s.Extend)))
	}
	for i, inc := range s.Include {
		findings = append(findings, warningf(fmt.Sprintf("include.%d", i),
			fmt.Sprintf("Cross-project reference '%s' cannot be validated in this phase", inc)))
	}
	return findings
}
