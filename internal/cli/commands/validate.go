package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stencil-labs/stencil/internal/cli/output"
	"github.com/stencil-labs/stencil/internal/watch"
	"github.com/stencil-labs/stencil/pkg/stencil"
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Path   string   // Stencil root directory
	Format string   // Output format: text, markdown, json
	FailOn string   // Exit-code policy: none, warn, error
	Strict bool     // Enable convention checks
	Ignore []string // Glob patterns excluded from the file scan
	Watch  bool     // Re-validate on file system changes
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a stencil definition",
		Long: `Validate a stencil definition directory.

Checks the stencil-settings.yaml document against its schema, verifies that
every referenced file exists, and reports extend/include cross-references.
The command is read-only: nothing is generated or modified.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Validate the current directory
  stencil validate

  # Validate a specific stencil
  stencil validate ./templates/service

  # Enable convention checks and fail on warnings
  stencil validate --strict --fail-on warn

  # Machine-readable output
  stencil validate --format json

  # Re-validate whenever files change
  stencil validate --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = "."
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringVar(&opts.FailOn, "fail-on", "", "Exit-code policy: none, warn, error")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Enable convention checks")
	cmd.Flags().StringSliceVar(&opts.Ignore, "ignore", nil, "Glob patterns excluded from the file scan")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-validate on file system changes")

	_ = cmd.RegisterFlagCompletionFunc("fail-on", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"none", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runValidate(cmd *cobra.Command, opts *ValidateOptions) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := GetLogger(ctx)
	r := GetRenderer(ctx)

	// Command flags override the loaded config
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}
	failOnValue := cfg.FailOn
	if cmd.Flags().Changed("fail-on") {
		failOnValue = opts.FailOn
	}
	failOn, ok := stencil.ParseFailOn(failOnValue)
	if !ok {
		return fmt.Errorf("invalid --fail-on value %q (want none, warn, or error)", failOnValue)
	}
	strict := cfg.Strict || opts.Strict
	ignore := cfg.IgnorePatterns
	if len(opts.Ignore) > 0 {
		ignore = opts.Ignore
	}

	v := stencil.New(stencil.Options{
		Strict:         strict,
		IgnorePatterns: ignore,
		Logger:         logger,
	})

	runOnce := func() int {
		report := v.Validate(ctx, opts.Path)
		renderReport(r, report)
		return report.ExitCode(failOn)
	}

	if opts.Watch {
		// Watch mode runs until interrupted; intermediate exit codes are
		// rendered but do not terminate the process.
		w, err := watch.New(opts.Path, logger)
		if err != nil {
			return fmt.Errorf("failed to start watch mode: %w", err)
		}
		defer func() { _ = w.Close() }()
		runOnce()
		return w.Run(ctx, func() { runOnce() })
	}

	if code := runOnce(); code != stencil.ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}

// reportJSON is the stable machine-readable form of a validation report.
// The key set never changes, even on fatal short-circuit, so consumers can
// parse it unconditionally.
type reportJSON struct {
	RunID             string            `json:"run_id"`
	RootPath          string            `json:"root_path"`
	Timestamp         string            `json:"timestamp"`
	TotalFilesScanned int               `json:"total_files_scanned"`
	Success           bool              `json:"success"`
	Summary           reportSummary     `json:"summary"`
	Findings          []stencil.Finding `json:"findings"`
}

type reportSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

func renderReport(r *output.Renderer, report *stencil.Report) {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		renderReportJSON(r, report)
	case output.ModeMarkdown:
		renderReportMarkdown(r, report)
	default:
		renderReportText(r, report)
	}
}

func renderReportJSON(r *output.Renderer, report *stencil.Report) {
	findings := report.Findings
	if findings == nil {
		findings = []stencil.Finding{}
	}
	_ = r.JSON(reportJSON{
		RunID:             report.RunID,
		RootPath:          report.RootPath,
		Timestamp:         report.Timestamp.Format(time.RFC3339),
		TotalFilesScanned: report.TotalFilesScanned,
		Success:           report.Success(),
		Summary: reportSummary{
			Errors:   len(report.Errors()),
			Warnings: len(report.Warnings()),
			Info:     len(report.Infos()),
		},
		Findings: findings,
	})
}

// sortedFindings returns findings ordered by severity, preserving the
// engine's emission order within each severity.
func sortedFindings(report *stencil.Report) []stencil.Finding {
	findings := make([]stencil.Finding, len(report.Findings))
	copy(findings, report.Findings)
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity < findings[j].Severity
	})
	return findings
}

func renderReportText(r *output.Renderer, report *stencil.Report) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Stencil Validation Report"))
	r.Println(styles.Muted.Render(report.RootPath))
	r.Println("")

	if len(report.Findings) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Severity", "Path", "Message"})
		for _, f := range sortedFindings(report) {
			msg := f.Message
			if f.Details != "" {
				msg += "\n" + styles.Muted.Render(f.Details)
			}
			t.AppendRow(table.Row{severityCell(styles, f.Severity), f.Path, msg})
		}
		t.Render()
		r.Println("")
	}

	r.Printf("Scanned %d files: %s\n",
		report.TotalFilesScanned,
		summaryLine(report))

	if report.Success() {
		r.Success("Stencil is valid")
	} else {
		r.Println(styles.StatusFailed.String() + " " + styles.Error.Render("Stencil is invalid"))
	}
}

func renderReportMarkdown(r *output.Renderer, report *stencil.Report) {
	r.Println("# Stencil Validation Report")
	r.Println("")
	r.Printf("- **Root**: %s\n", report.RootPath)
	r.Printf("- **Files scanned**: %d\n", report.TotalFilesScanned)
	r.Printf("- **Result**: %s\n", map[bool]string{true: "valid", false: "invalid"}[report.Success()])
	r.Println("")

	titleCaser := cases.Title(language.English)
	currentSeverity := stencil.Severity(-1)
	for _, f := range sortedFindings(report) {
		if f.Severity != currentSeverity {
			currentSeverity = f.Severity
			r.Println("## " + titleCaser.String(f.Severity.String()))
			r.Println("")
		}
		line := fmt.Sprintf("- `%s` — %s", f.Path, f.Message)
		if f.Details != "" {
			line += " (" + f.Details + ")"
		}
		r.Println(line)
	}
	if len(report.Findings) > 0 {
		r.Println("")
	}
	r.Printf("Summary: %s\n", summaryLine(report))
}

func summaryLine(report *stencil.Report) string {
	parts := []string{}
	if n := len(report.Errors()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", n))
	}
	if n := len(report.Warnings()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", n))
	}
	if n := len(report.Infos()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d info", n))
	}
	if len(parts) == 0 {
		return "no findings"
	}
	return strings.Join(parts, ", ")
}

func severityCell(styles output.StyleSet, sev stencil.Severity) string {
	switch sev {
	case stencil.SeverityError:
		return styles.Error.Render("error")
	case stencil.SeverityWarning:
		return styles.Warning.Render("warning")
	case stencil.SeverityInfo:
		return styles.Info.Render("info")
	default:
		return styles.Muted.Render("unknown")
	}
}
