// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"fsh-cli/internal/config"
	"fsh-cli/internal/shell"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette shared by every styled fsh output.
const (
	// ColorPrimary is purple, used for titles and the prompt.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for the banner and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, used for configuration values.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red, used for failed command output.
	ColorError = lipgloss.Color("#EF4444")

	// ColorHighlight is blue, used for keys and command names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for values and positive outcomes.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// CmdStyle is for command names and keys.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorEnabled decides whether output written to out is styled. In auto
// mode NO_COLOR turns styling off, as does a non-terminal out.
func colorEnabled(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !termenv.EnvNoColor() && isTerminal(out)
	}
}

// newRenderer returns a lipgloss renderer for out whose color profile
// follows mode.
func newRenderer(mode config.ColorMode, out io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	switch {
	case !colorEnabled(mode, out):
		r.SetColorProfile(termenv.Ascii)
	case mode == config.ColorAlways && !isTerminal(out):
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

// shellStyles builds the loop styles, or nil for plain output.
func shellStyles(mode config.ColorMode, out io.Writer) *shell.Styles {
	if !colorEnabled(mode, out) {
		return nil
	}
	r := newRenderer(mode, out)
	return &shell.Styles{
		Prompt:  r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Failure: r.NewStyle().Foreground(ColorError),
		Banner:  r.NewStyle().Foreground(ColorMuted),
	}
}
