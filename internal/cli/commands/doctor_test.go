package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-labs/stencil/internal/cli/testutil"
	"github.com/stencil-labs/stencil/pkg/stencil"
)

func TestNewDoctorCommand(t *testing.T) {
	cmd := NewDoctorCommand()

	assert.Equal(t, "doctor [path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}

func execDoctor(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewDoctorCommand()
	// Match the root command's silencing so usage text does not corrupt stdout.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDoctorHealthyStencil(t *testing.T) {
	dir := testutil.SetupTestStencil(t)

	stdout, err := execDoctor(t, dir, "--format", "json")
	require.NoError(t, err)

	var out DoctorOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.True(t, out.Healthy)
	require.Len(t, out.Checks, 4)
	for _, check := range out.Checks {
		assert.NotEqual(t, "fail", check.Status, "check %q should not fail", check.Name)
	}
}

func TestDoctorMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	stdout, err := execDoctor(t, missing, "--format", "json")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, stencil.ExitErrors, exitErr.Code)

	var out DoctorOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.False(t, out.Healthy)
}

func TestDoctorMissingSettings(t *testing.T) {
	dir := t.TempDir()

	stdout, err := execDoctor(t, dir, "--format", "json")
	require.Error(t, err)

	var out DoctorOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.False(t, out.Healthy)

	found := false
	for _, check := range out.Checks {
		if check.Name == "settings document" {
			found = true
			assert.Equal(t, "fail", check.Status)
		}
	}
	assert.True(t, found)
}

func TestDoctorUnparseableSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stencil.SettingsFileName),
		[]byte("id: [broken\n"), 0644))

	stdout, err := execDoctor(t, dir, "--format", "json")
	require.Error(t, err)

	var out DoctorOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.False(t, out.Healthy)
}
