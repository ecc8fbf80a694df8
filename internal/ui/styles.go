// Package ui provides styled terminal output for the trellis CLI.
package ui

import (
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft green #34D399): file paths, keys, highlights
// - Muted (gray): secondary info, hints
// - No colored success/error - unicode symbols carry the status.

var (
	// Accent style for paths, note keys, highlights.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))

	// Muted style for secondary info and hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

var accentColorRe = regexp.MustCompile(`^(#[0-9A-Fa-f]{6}|[0-9]{1,3})$`)

// ConfigureAccent overrides the accent color with an ANSI code ("0"-"255")
// or a hex color ("#RRGGBB"). Unrecognized values are ignored.
func ConfigureAccent(color string) {
	if !accentColorRe.MatchString(color) {
		return
	}
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
