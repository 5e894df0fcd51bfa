package stencil

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// findSettingsFile locates the settings document in the root directory.
// Returns empty string if not found.
func findSettingsFile(root string) string {
	for _, name := range []string{SettingsFileName, SettingsFileNameAlt} {
		candidate := filepath.Join(root, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}

// loadRawSettings reads and parses the settings document under root.
//
// The root directory is a hard precondition: if it is missing, not a
// directory, or holds no settings document, exactly one error finding is
// returned and the raw value is nil. A parse failure likewise yields one
// error finding carrying the parser message as details. On success the
// untyped parsed document is returned for schema validation.
func loadRawSettings(root string) (map[string]any, []Finding) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, []Finding{errorf(root, fmt.Sprintf("Root path does not exist: %s", root))}
	}
	if !info.IsDir() {
		return nil, []Finding{errorf(root, fmt.Sprintf("Root path is not a directory: %s", root))}
	}

	path := findSettingsFile(root)
	if path == "" {
		return nil, []Finding{errorf(SettingsFileName, fmt.Sprintf("Required file %s not found in %s", SettingsFileName, root))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []Finding{{
			Path:     filepath.Base(path),
			Severity: SeverityError,
			Message:  fmt.Sprintf("Failed to read %s", filepath.Base(path)),
			Details:  err.Error(),
		}}
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, []Finding{{
			Path:     filepath.Base(path),
			Severity: SeverityError,
			Message:  fmt.Sprintf("Failed to parse %s", filepath.Base(path)),
			Details:  err.Error(),
		}}
	}
	if raw == nil {
		return nil, []Finding{errorf(filepath.Base(path), fmt.Sprintf("Settings document %s is empty", filepath.Base(path)))}
	}
	return raw, nil
}
