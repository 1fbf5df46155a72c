package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for terminal output.
type Theme struct {
	Primary lipgloss.Color // Main accent color
	Dim     lipgloss.Color // Dimmed/help text color
	Error   lipgloss.Color
	Warning lipgloss.Color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
	Error:   lipgloss.Color("#ff5f5f"),
	Warning: lipgloss.Color("#ffaf00"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label:   lipgloss.NewStyle().Foreground(t.Primary),
		Help:    lipgloss.NewStyle().Foreground(t.Dim),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// defaultStyles is used by the Print helpers.
var defaultStyles = NewStyles(DefaultTheme)

// UsageCommand is one row of a usage listing.
type UsageCommand struct {
	Use   string // e.g. "video <prompt>"
	Short string
}

// Usage is a short usage message: a synopsis line and a command table.
type Usage struct {
	Styles   Styles
	Synopsis string
	Commands []UsageCommand
}

// Render renders the usage text, aligning command descriptions.
func (u Usage) Render() string {
	width := 0
	for _, c := range u.Commands {
		width = max(width, lipgloss.Width(c.Use))
	}

	var lines []string
	lines = append(lines, u.Styles.Title.Render("Usage:")+" "+u.Synopsis)
	if len(u.Commands) > 0 {
		lines = append(lines, u.Styles.Title.Render("Commands:"))
		for _, c := range u.Commands {
			pad := strings.Repeat(" ", width-lipgloss.Width(c.Use))
			lines = append(lines, "  "+u.Styles.Label.Render(c.Use)+pad+"  "+u.Styles.Help.Render("- "+c.Short))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// Print helpers for terminal output

// PrintSuccess prints a success message with checkmark
func PrintSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, defaultStyles.Label.Render("✓")+" "+fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, defaultStyles.Error.Render("Error:")+" "+fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, defaultStyles.Warning.Render("⚠")+" "+fmt.Sprintf(format, args...))
}
