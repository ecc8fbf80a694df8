package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willow/trellis/internal/craft"
	"github.com/willow/trellis/internal/slugs"
	"github.com/willow/trellis/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <note>",
	Short: "Render one converted note in the terminal",
	Long: `Preview converts the export in memory and renders a single note's
rewritten body without writing anything.

The note is addressed by its relative key (source path without extension),
e.g. "Cryptography/TLS". Slugified forms are accepted too.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	input, err := resolveInput()
	if err != nil {
		return err
	}

	ex, err := convert(input)
	if err != nil {
		return err
	}

	note, err := findNote(ex, args[0])
	if err != nil {
		return err
	}

	if !ui.IsTerminal() {
		fmt.Print(note.Body)
		return nil
	}

	rendered, err := ui.RenderMarkdown(note.Body, 0)
	if err != nil {
		return fmt.Errorf("render %s: %w", note.RelativeKey, err)
	}
	fmt.Print(rendered)
	return nil
}

// findNote resolves a note by exact relative key, falling back to slug-path
// matching so already-slugged keys work.
func findNote(ex *craft.Export, ref string) (*craft.Note, error) {
	if note, ok := ex.Lookup(ref); ok {
		return note, nil
	}

	want := slugs.NotePath(ref)
	for _, note := range ex.Notes {
		if note.SlugPath == want || slugs.NotePath(note.RelativeKey) == want {
			return note, nil
		}
	}
	return nil, fmt.Errorf("note not found: %q is not a relative key in the export", ref)
}
