package output

import "github.com/charmbracelet/lipgloss"

// StyleSet holds the lipgloss styles used for terminal output.
type StyleSet struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	FilePath lipgloss.Style

	// StatusSuccess and StatusFailed render as fixed status glyphs.
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

// defaultStyles returns the standard style set.
func defaultStyles() StyleSet {
	return StyleSet{
		Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		FilePath: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),

		StatusSuccess: lipgloss.NewStyle().SetString("✓").Foreground(lipgloss.Color("10")),
		StatusFailed:  lipgloss.NewStyle().SetString("✗").Foreground(lipgloss.Color("9")),
	}
}

// plainStyles returns a style set with no colors or decoration, used when
// output is not a terminal.
func plainStyles() StyleSet {
	plain := lipgloss.NewStyle()
	return StyleSet{
		Header1:       plain,
		Header2:       plain,
		Bold:          plain,
		Muted:         plain,
		Success:       plain,
		Warning:       plain,
		Error:         plain,
		Info:          plain,
		FilePath:      plain,
		StatusSuccess: lipgloss.NewStyle().SetString("OK"),
		StatusFailed:  lipgloss.NewStyle().SetString("FAIL"),
	}
}
