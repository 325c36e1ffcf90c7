package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Summary is what a finished conversion reports to the user.
type Summary struct {
	Input             string
	Output            string
	Masterlist        string
	Plugins           int
	GroupRules        int
	PluginRules       int
	DryRun            bool
	MasterlistCleared bool
}

// Renderer defines the interface for rendering user-facing messages
type Renderer interface {
	RenderSummary(s Summary) string
	RenderError(err error) string
}

// NewRenderer returns the renderer for a concrete format. FormatAuto is
// treated as FormatText; resolve it first.
func NewRenderer(f Format, out io.Writer) Renderer {
	if f == FormatTerminal {
		return NewTerminalRenderer(out)
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	errorStyle lipgloss.Style
	pathStyle  lipgloss.Style
}

// NewTerminalRenderer creates a renderer whose colors match out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	r := lipgloss.NewRenderer(out)
	return &TerminalRenderer{
		errorStyle: r.NewStyle().Foreground(ErrorColor).Bold(true),
		pathStyle:  r.NewStyle().Foreground(SecondaryColor).Italic(true),
	}
}

// RenderSummary renders the result of a conversion
func (r *TerminalRenderer) RenderSummary(s Summary) string {
	var b strings.Builder

	if s.DryRun {
		b.WriteString(pterm.Warning.Sprintfln("Dry run: %s was not written", r.pathStyle.Render(s.Output)))
	} else {
		b.WriteString(pterm.Success.Sprintfln("Wrote %d group rules and %d plugin rules to %s",
			s.GroupRules, s.PluginRules, r.pathStyle.Render(s.Output)))
	}
	b.WriteString(pterm.Info.Sprintfln("%d plugins read from %s", s.Plugins, r.pathStyle.Render(s.Input)))
	if s.MasterlistCleared {
		b.WriteString(pterm.Info.Sprintfln("Cleared %s", r.pathStyle.Render(s.Masterlist)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %v", r.errorStyle.Render("Error:"), err)
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderSummary renders the result of a conversion
func (r *PlainRenderer) RenderSummary(s Summary) string {
	var lines []string
	if s.DryRun {
		lines = append(lines, fmt.Sprintf("Dry run: %s was not written", s.Output))
	} else {
		lines = append(lines, fmt.Sprintf("Wrote %d group rules and %d plugin rules to %s",
			s.GroupRules, s.PluginRules, s.Output))
	}
	lines = append(lines, fmt.Sprintf("%d plugins read from %s", s.Plugins, s.Input))
	if s.MasterlistCleared {
		lines = append(lines, fmt.Sprintf("Cleared %s", s.Masterlist))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}
