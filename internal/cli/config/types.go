// Package config provides configuration management for the stencil CLI.
//
// Configuration merges four layers with fixed precedence:
// flags > environment variables > config file > defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	// OutputFormat selects the rendering mode (auto|text|markdown|json).
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`
	// Strict enables the convention checks during validation.
	Strict bool `koanf:"strict"`
	// FailOn selects the exit-code policy (none|warn|error).
	FailOn string `koanf:"fail_on"`
	// IgnorePatterns excludes matching paths from the file-count scan.
	IgnorePatterns []string `koanf:"ignore"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultFailOn = "error"
)

// ConfigFileName is the name of the CLI config file.
const ConfigFileName = "stencil.yaml"

// ConfigFileNameAlt is the alternate name of the CLI config file.
const ConfigFileNameAlt = "stencil.yml"
