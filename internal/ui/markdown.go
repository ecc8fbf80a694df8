package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultTermWidth is the fallback width when the terminal cannot be probed.
const DefaultTermWidth = 100

// RenderMarkdown renders markdown content for terminal display.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single one.
	return strings.TrimRight(rendered, "\n") + "\n", nil
}
