package stencil

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Options configures a Validator.
type Options struct {
	// Strict enables the convention checks after schema validation succeeds.
	Strict bool
	// IgnorePatterns excludes matching paths from the file-count walk.
	// Patterns never suppress schema or reference-existence findings.
	IgnorePatterns []string
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Validator runs the validation pipeline over a stencil root directory.
// It is read-only: no stage writes to disk or touches the network.
type Validator struct {
	opts   Options
	logger *slog.Logger
}

// New creates a validator with the given options.
func New(opts Options) *Validator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Validator{opts: opts, logger: logger}
}

// Validate runs the full pipeline against root and returns the report.
//
// Stages run strictly in order: loader, schema validation, strict checks,
// reference checks, cross-reference reporting. A loader or schema failure
// short-circuits everything downstream, so a fatal report carries exactly
// the findings describing the failure. The method itself never fails; every
// failure mode becomes a finding.
func (v *Validator) Validate(ctx context.Context, root string) *Report {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = filepath.Clean(root)
	}

	report := &Report{
		RunID:     uuid.NewString(),
		RootPath:  absRoot,
		Timestamp: time.Now().UTC(),
	}

	v.logger.Debug("starting validation", "root", absRoot, "strict", v.opts.Strict)

	raw, findings := loadRawSettings(absRoot)
	if raw == nil {
		report.Findings = findings
		// The file count is still useful when only the document is at
		// fault, but impossible when the root itself is missing.
		if rootIsDir(absRoot) {
			report.TotalFilesScanned = countFiles(absRoot, v.opts.IgnorePatterns)
		}
		v.logger.Debug("validation short-circuited", "findings", len(report.Findings))
		return report
	}

	report.TotalFilesScanned = countFiles(absRoot, v.opts.IgnorePatterns)

	if schemaFindings := validateSchema(raw); len(schemaFindings) > 0 {
		report.Findings = schemaFindings
		v.logger.Debug("schema validation failed", "violations", len(schemaFindings))
		return report
	}

	settings, err := decodeSettings(raw)
	if err != nil {
		// Schema validation guarantees a decodable shape; reaching this
		// means the two disagree and the run must fail closed.
		report.Findings = append(report.Findings, Finding{
			Path:     SettingsFileName,
			Severity: SeverityError,
			Message:  "Failed to decode settings document",
			Details:  err.Error(),
		})
		return report
	}

	report.Findings = append(report.Findings, infof(SettingsFileName, "Settings file is valid"))

	if v.opts.Strict {
		report.Findings = append(report.Findings, checkConventions(settings)...)
	}

	report.Findings = append(report.Findings, checkReferences(ctx, absRoot, settings)...)
	report.Findings = append(report.Findings, reportCrossReferences(settings)...)

	v.logger.Debug("validation complete",
		"errors", len(report.Errors()),
		"warnings", len(report.Warnings()),
		"files_scanned", report.TotalFilesScanned)

	return report
}

func rootIsDir(root string) bool {
	info, err := os.Stat(root)
	return err == nil && info.IsDir()
}
