package stencil

import "time"

// FailOn selects which finding severity causes a non-zero exit code.
type FailOn string

// FailOn policies.
const (
	// FailOnNone never fails the run on findings alone.
	FailOnNone FailOn = "none"
	// FailOnWarn fails the run when warnings or errors are present.
	FailOnWarn FailOn = "warn"
	// FailOnError fails the run only when errors are present. This is the default.
	FailOnError FailOn = "error"
)

// ParseFailOn converts a string to a FailOn policy.
// Returns the policy and true if valid, or FailOnError and false if invalid.
func ParseFailOn(s string) (FailOn, bool) {
	switch FailOn(s) {
	case FailOnNone, FailOnWarn, FailOnError:
		return FailOn(s), true
	default:
		return FailOnError, false
	}
}

// Exit codes returned by the validator. External tools can check these
// symbolically rather than using magic numbers.
const (
	// ExitOK indicates validation succeeded.
	ExitOK = 0
	// ExitWarnings indicates warnings were found and the caller asked to
	// fail on warnings.
	ExitWarnings = 1
	// ExitErrors indicates error findings or a fatal precondition failure
	// (missing root, missing settings document, parse failure).
	ExitErrors = 2
)

// Report is the aggregate result of validating one stencil root.
// It is constructed once per run and read-only afterward.
type Report struct {
	// RunID uniquely identifies this validation run.
	RunID string `json:"run_id"`
	// RootPath is the absolute path that was validated.
	RootPath string `json:"root_path"`
	// Timestamp records when the run started.
	Timestamp time.Time `json:"timestamp"`
	// TotalFilesScanned counts all files under the root, informational only.
	// It is zero when the root itself does not exist or is not a directory.
	TotalFilesScanned int `json:"total_files_scanned"`
	// Findings holds all findings in pipeline order.
	Findings []Finding `json:"findings"`
}

// Success reports whether the run produced zero error-severity findings.
// Warnings do not affect success.
func (r *Report) Success() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns the error-severity findings in order.
func (r *Report) Errors() []Finding { return r.filter(SeverityError) }

// Warnings returns the warning-severity findings in order.
func (r *Report) Warnings() []Finding { return r.filter(SeverityWarning) }

// Infos returns the info-severity findings in order.
func (r *Report) Infos() []Finding { return r.filter(SeverityInfo) }

func (r *Report) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// ExitCode computes the process exit code for this report under the given
// fail-on policy. Errors always win; warnings only matter under FailOnWarn.
func (r *Report) ExitCode(failOn FailOn) int {
	if len(r.Errors()) > 0 {
		return ExitErrors
	}
	if failOn == FailOnWarn && len(r.Warnings()) > 0 {
		return ExitWarnings
	}
	return ExitOK
}
