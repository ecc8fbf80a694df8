// Package zola materializes a converted export as a Zola content tree:
// rewritten note bodies at their slug paths, bound media copied beside them,
// and synthetic section index files marking every destination directory.
package zola

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/willow/trellis/internal/atomicfile"
	"github.com/willow/trellis/internal/craft"
)

// sectionGlyph prefixes every generated section title.
const sectionGlyph = "🌳"

// sectionFrontMatter is the TOML front matter of a generated _index.md.
// Field order here is the order Zola users expect to read.
type sectionFrontMatter struct {
	Title             string `toml:"title"`
	SortBy            string `toml:"sort_by"`
	Template          string `toml:"template,omitempty"`
	InsertAnchorLinks string `toml:"insert_anchor_links"`
}

// Writer writes a finalized export under an output root, which should be the
// destination section directory inside Zola's content/ tree.
type Writer struct {
	OutputDir string
}

// NewWriter creates a Writer for the given output root.
func NewWriter(outputDir string) *Writer {
	return &Writer{OutputDir: outputDir}
}

// WriteAll writes every note body, copies bound assets next to their notes,
// and generates one _index.md per destination directory that does not already
// hold a directory-index note, plus exactly one for the output root itself.
func (w *Writer) WriteAll(ex *craft.Export) error {
	keys := make([]string, 0, len(ex.Notes))
	for key := range ex.Notes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := w.writeNote(ex.Notes[key]); err != nil {
			return err
		}
	}

	return w.writeRootSection(ex.RootName)
}

func (w *Writer) writeNote(note *craft.Note) error {
	outPath := filepath.Join(w.OutputDir, filepath.FromSlash(note.SlugPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", note.SlugPath, err)
	}
	if err := atomicfile.WriteFile(outPath, []byte(note.Body)); err != nil {
		return fmt.Errorf("write note %s: %w", note.SlugPath, err)
	}

	for _, asset := range note.Assets {
		src := filepath.Join(note.AssetsSourceDir, asset)
		dst := filepath.Join(filepath.Dir(outPath), asset)
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("copy asset %s for %s: %w", asset, note.RelativeKey, err)
		}
	}

	// A directory-index note is its own section marker.
	if path.Base(note.SlugPath) == "index.md" {
		return nil
	}
	return w.writeSection(note)
}

// writeSection generates the _index.md marking the note's destination
// directory as a navigable section, unless one exists already.
func (w *Writer) writeSection(note *craft.Note) error {
	dir := path.Dir(note.SlugPath)
	if dir == "." {
		// A top-level note's section marker is the root _index.md.
		return nil
	}

	sectionPath := filepath.Join(w.OutputDir, filepath.FromSlash(dir), "_index.md")
	if _, err := os.Stat(sectionPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("check section file %s: %w", sectionPath, err)
	}

	// The section title keeps the source directory's display name,
	// Unicode and all; only paths get slugified.
	title := path.Base(path.Dir(note.RelativeKey))
	body, err := sectionBody(sectionFrontMatter{
		Title:             fmt.Sprintf("%s %s", sectionGlyph, title),
		SortBy:            "weight",
		InsertAnchorLinks: "left",
	})
	if err != nil {
		return err
	}
	if err := atomicfile.WriteFile(sectionPath, body); err != nil {
		return fmt.Errorf("write section file %s: %w", sectionPath, err)
	}
	return nil
}

// writeRootSection marks the output root itself as a section. Craft exports
// keep every note inside a folder, so no note ever claims this path.
func (w *Writer) writeRootSection(rootName string) error {
	body, err := sectionBody(sectionFrontMatter{
		Title:             fmt.Sprintf("%s %s", sectionGlyph, rootName),
		SortBy:            "weight",
		Template:          "garden.html",
		InsertAnchorLinks: "left",
	})
	if err != nil {
		return err
	}
	rootPath := filepath.Join(w.OutputDir, "_index.md")
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output root %s: %w", w.OutputDir, err)
	}
	if err := atomicfile.WriteFile(rootPath, body); err != nil {
		return fmt.Errorf("write root section file %s: %w", rootPath, err)
	}
	return nil
}

func sectionBody(fm sectionFrontMatter) ([]byte, error) {
	var b strings.Builder
	b.WriteString("+++\n")
	if err := toml.NewEncoder(&b).Encode(fm); err != nil {
		return nil, fmt.Errorf("encode section front matter: %w", err)
	}
	b.WriteString("+++\n")
	return []byte(b.String()), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
