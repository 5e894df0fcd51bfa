package stencil

import (
	"fmt"
	"regexp"
)

var (
	idPattern      = regexp.MustCompile(`^[a-z0-9\-_]+$`)
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+`)
)

// checkConventions applies the strict-mode convention checks to a
// schema-valid settings record. Each check is independent and produces at
// most one warning; strict mode elevates attention, never severity.
func checkConventions(s *Settings) []Finding {
	var findings []Finding

	if !idPattern.MatchString(s.ID) {
		findings = append(findings, warningf("id",
			fmt.Sprintf("Field 'id' should match [a-z0-9-_]+, got %q", s.ID)))
	}
	if !versionPattern.MatchString(s.Version) {
		findings = append(findings, warningf("version",
			fmt.Sprintf("Field 'version' should start with <major>.<minor>.<patch>, got %q", s.Version)))
	}
	if s.Description == "" {
		findings = append(findings, warningf("description",
			"Field 'description' is empty; a description is recommended"))
	}

	return findings
}
