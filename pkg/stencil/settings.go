package stencil

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Settings document file names, checked in order.
const (
	// SettingsFileName is the canonical name of the settings document.
	SettingsFileName = "stencil-settings.yaml"
	// SettingsFileNameAlt is the alternate name of the settings document.
	SettingsFileNameAlt = "stencil-settings.yml"
)

// FilesDirName is the implicit convention directory consulted when the
// settings document declares no files.
const FilesDirName = "files"

// Settings is the typed, validated form of a stencil settings document.
// It is produced exactly once, after schema validation succeeds; all later
// checks consume this record rather than the raw parsed value.
type Settings struct {
	ID          string         `mapstructure:"id"`
	Name        string         `mapstructure:"name"`
	Version     string         `mapstructure:"version"`
	Type        string         `mapstructure:"type"`
	Description string         `mapstructure:"description"`
	Files       []string       `mapstructure:"files"`
	Include     []string       `mapstructure:"include"`
	Extend      string         `mapstructure:"extend"`
	Variables   map[string]any `mapstructure:"variables"`
	Metadata    map[string]any `mapstructure:"metadata"`
}

// decodeSettings converts a schema-valid raw document into a Settings record.
func decodeSettings(raw map[string]any) (*Settings, error) {
	var s Settings
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &s,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build settings decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}
