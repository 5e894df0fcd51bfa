package stencil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
}

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, SeverityError, SeverityWarning)
	assert.Less(t, SeverityWarning, SeverityInfo)
}

func TestParseSeverity(t *testing.T) {
	sev, ok := ParseSeverity("ERROR")
	assert.True(t, ok)
	assert.Equal(t, SeverityError, sev)

	_, ok = ParseSeverity("hint")
	assert.False(t, ok, "the severity set is closed")
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Finding{Path: "id", Severity: SeverityWarning, Message: "m"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"warning"`)

	var f Finding
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Equal(t, SeverityWarning, f.Severity)
}

func TestFindingOmitsEmptyDetails(t *testing.T) {
	data, err := json.Marshal(Finding{Path: "p", Severity: SeverityInfo, Message: "m"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "details")
}

func TestParseFailOn(t *testing.T) {
	for _, valid := range []string{"none", "warn", "error"} {
		p, ok := ParseFailOn(valid)
		assert.True(t, ok)
		assert.Equal(t, FailOn(valid), p)
	}

	p, ok := ParseFailOn("sometimes")
	assert.False(t, ok)
	assert.Equal(t, FailOnError, p)
}

func TestReportPartitions(t *testing.T) {
	r := &Report{Findings: []Finding{
		infof("a", "one"),
		errorf("b", "two"),
		warningf("c", "three"),
		errorf("d", "four"),
	}}

	require.Len(t, r.Errors(), 2)
	assert.Equal(t, "b", r.Errors()[0].Path)
	assert.Equal(t, "d", r.Errors()[1].Path)
	require.Len(t, r.Warnings(), 1)
	require.Len(t, r.Infos(), 1)
	assert.False(t, r.Success())
}

func TestReportSuccessIgnoresWarnings(t *testing.T) {
	r := &Report{Findings: []Finding{warningf("a", "w"), infof("b", "i")}}
	assert.True(t, r.Success())
}

func TestEmptyReportSucceeds(t *testing.T) {
	r := &Report{}
	assert.True(t, r.Success())
	assert.Equal(t, ExitOK, r.ExitCode(FailOnWarn))
}
