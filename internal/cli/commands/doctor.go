package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stencil-labs/stencil/internal/cli/output"
	"github.com/stencil-labs/stencil/pkg/stencil"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Path   string // Stencil root directory
	Format string // Output format: text, json
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor [path]",
		Short: "Run environment diagnostics for a stencil directory",
		Long: `Check that a directory is set up as a usable stencil.

The doctor command inspects the environment without running the full
validation pipeline: it checks that the root exists, that a settings
document is present and parseable, and that the files directory convention
is followed.`,
		Example: `  # Check the current directory
  stencil doctor

  # Output as JSON
  stencil doctor --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = "."
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// DoctorCheck represents a single diagnostic result.
type DoctorCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "pass", "warn", "fail"
	Detail string `json:"detail,omitempty"`
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	RootPath string        `json:"root_path"`
	Checks   []DoctorCheck `json:"checks"`
	Healthy  bool          `json:"healthy"`
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	r := GetRenderer(cmd.Context())
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	root, err := filepath.Abs(opts.Path)
	if err != nil {
		root = filepath.Clean(opts.Path)
	}

	out := &DoctorOutput{RootPath: root, Healthy: true}
	add := func(name, status, detail string) {
		out.Checks = append(out.Checks, DoctorCheck{Name: name, Status: status, Detail: detail})
		if status == "fail" {
			out.Healthy = false
		}
	}

	info, err := os.Stat(root)
	switch {
	case err != nil:
		add("root directory", "fail", fmt.Sprintf("%s does not exist", root))
	case !info.IsDir():
		add("root directory", "fail", fmt.Sprintf("%s is not a directory", root))
	default:
		add("root directory", "pass", "")
	}

	if out.Healthy {
		settingsPath := ""
		for _, name := range []string{stencil.SettingsFileName, stencil.SettingsFileNameAlt} {
			if _, err := os.Stat(filepath.Join(root, name)); err == nil {
				settingsPath = filepath.Join(root, name)
				break
			}
		}
		if settingsPath == "" {
			add("settings document", "fail", fmt.Sprintf("%s not found", stencil.SettingsFileName))
		} else {
			add("settings document", "pass", filepath.Base(settingsPath))

			data, err := os.ReadFile(settingsPath)
			if err != nil {
				add("settings parse", "fail", err.Error())
			} else {
				var doc map[string]any
				if err := yaml.Unmarshal(data, &doc); err != nil {
					add("settings parse", "fail", err.Error())
				} else {
					add("settings parse", "pass", "")
				}
			}
		}

		if info, err := os.Stat(filepath.Join(root, stencil.FilesDirName)); err == nil && info.IsDir() {
			add("files directory", "pass", "")
		} else {
			add("files directory", "warn", fmt.Sprintf("no %s/ directory", stencil.FilesDirName))
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		renderDoctorText(r, out)
	}

	if !out.Healthy {
		return &ExitError{Code: stencil.ExitErrors}
	}
	return nil
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Stencil Environment Check"))
	r.Println(styles.Muted.Render(out.RootPath))
	r.Println("")

	for _, check := range out.Checks {
		icon := styles.StatusSuccess.String()
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "fail":
			icon = styles.StatusFailed.String()
		}
		line := fmt.Sprintf("%s %s", icon, check.Name)
		if check.Detail != "" {
			line += styles.Muted.Render(" (" + check.Detail + ")")
		}
		r.Println("  " + line)
	}
	r.Println("")

	if out.Healthy {
		r.Success("Environment looks good")
	} else {
		r.Println(styles.StatusFailed.String() + " " + styles.Error.Render("Environment has problems"))
	}
}
