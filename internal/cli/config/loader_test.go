package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultFailOn, cfg.FailOn)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.IgnorePatterns)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `output: json
strict: true
fail_on: warn
ignore:
  - "*.tmp"
  - node_modules
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "warn", cfg.FailOn)
	assert.Equal(t, []string{"*.tmp", "node_modules"}, cfg.IgnorePatterns)
	assert.Equal(t, ConfigFileName, filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfigFindsFileUpward(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt), []byte("strict: true\n"), 0644))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("fail_on: warn\n"), 0644))
	t.Chdir(dir)
	t.Setenv("STENCIL_FAIL_ON", "none")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.FailOn)
}

func TestLoadConfigFlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output: json\n"), 0644))
	t.Chdir(dir)
	t.Setenv("STENCIL_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--output", "text"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat)
}

func TestLoadConfigUnchangedFlagsAreSkipped(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat, "defaulted flag must not clobber config default")
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadConfig("nope.yaml", nil)
	assert.Error(t, err)
}
