// Package rewrite resolves the embedded reference dialects in note bodies
// against the export index and produces destination-ready text.
//
// It is effectively a small linker: every symbolic cross-document reference
// is resolved to a concrete destination address, and anything unresolvable
// aborts the whole run.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/willow/trellis/internal/craft"
	"github.com/willow/trellis/internal/dates"
	"github.com/willow/trellis/internal/slugs"
)

// inertTarget is the non-navigable destination given to calendar pseudo-links;
// the daily notes they point at are private and never part of the export.
const inertTarget = "javascript:;"

// Documents rewrites every note body in the export.
//
// Resolution needs read access to every note's final slug path while only the
// current note's body changes, so this runs in two phases: all new bodies are
// computed against the index as-is, then committed in a single write pass.
// Nothing is committed if any document fails.
func Documents(ex *craft.Export) error {
	keys := make([]string, 0, len(ex.Notes))
	for key := range ex.Notes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bodies := make(map[string]string, len(keys))
	for _, key := range keys {
		body, err := document(ex, ex.Notes[key])
		if err != nil {
			return err
		}
		bodies[key] = body
	}

	for key, body := range bodies {
		ex.Notes[key].Body = body
	}
	return nil
}

// document runs the ordered rewrite passes over one note's body; each pass
// operates on the text the previous pass produced.
func document(ex *craft.Export, note *craft.Note) (string, error) {
	body := note.Body

	// A link into the source tool's private block-addressing scheme means
	// the export is incomplete; nothing downstream can represent it.
	if m := reCraftBlockLink.FindString(body); m != "" {
		return "", fmt.Errorf("invalid document %s: contains a link to a private application block: %q", note.SourcePath, m)
	}

	// The destination front matter carries the title, and the renderer
	// prints it as a top-level heading; keeping the source H1 would render
	// the title twice.
	body = stripLeadingTitle(body)

	fm, err := frontMatter(note)
	if err != nil {
		return "", fmt.Errorf("front matter for %s: %w", note.SourcePath, err)
	}
	body = fm + body

	body, err = replaceAllFunc(reWikiLink, body, func(groups map[string]string, match string) (string, error) {
		return wikiLink(ex, note, groups, match)
	})
	if err != nil {
		return "", err
	}

	body, err = replaceAllFunc(reDayLink, body, func(groups map[string]string, match string) (string, error) {
		return dayLink(note, groups, match)
	})
	if err != nil {
		return "", err
	}

	body, err = replaceAllFunc(reAssetImage, body, func(groups map[string]string, match string) (string, error) {
		return assetImage(note, groups, match)
	})
	if err != nil {
		return "", err
	}

	// The destination renderer does not know the "other" fence tag; an
	// untagged fence renders the same content without the warning.
	body = reOtherFence.ReplaceAllString(body, "```")

	return body, nil
}

// wikiLink resolves one [[double-bracket]] reference against the index and
// emits the destination-style link.
func wikiLink(ex *craft.Export, note *craft.Note, groups map[string]string, match string) (string, error) {
	target, ok := groups["target"]
	if !ok || target == "" {
		return "", fmt.Errorf("invalid wiki link %q in %s: matched without a target", match, note.SourcePath)
	}

	// Block anchors address sub-document blocks inside the source tool and
	// have no destination representation; drop them silently.
	target = reBlockAnchor.ReplaceAllString(target, "")

	// A trailing #fragment is a heading anchor: slug it and carry it over,
	// and look up only the part before it.
	anchor := ""
	if m := reHeadingAnchor.FindStringSubmatch(target); m != nil {
		target = m[reHeadingAnchor.SubexpIndex("target")]
		anchor = "#" + slugs.Heading(m[reHeadingAnchor.SubexpIndex("heading")])
	}

	dest, ok := ex.Lookup(target)
	if !ok {
		return "", fmt.Errorf(
			"unresolved reference %q in %s: no note with key %q exists in the export (a reference to a block rather than a whole note cannot be converted)",
			match, note.SourcePath, target)
	}

	return fmt.Sprintf("[%s](@/%s/%s%s)", dest.DisplayName, ex.RootSlug(), dest.SlugPath, anchor), nil
}

// dayLink reformats one calendar pseudo-link into an inert, display-only
// reference. The daily note it addressed is private and never exported.
func dayLink(note *craft.Note, groups map[string]string, match string) (string, error) {
	raw, ok := groups["date"]
	if !ok {
		return "", fmt.Errorf("invalid day link %q in %s: matched without a date", match, note.SourcePath)
	}
	day, err := dates.ParseDay(raw)
	if err != nil {
		return "", fmt.Errorf("invalid day link %q in %s: %w", match, note.SourcePath, err)
	}
	return fmt.Sprintf("[%s](%s)", dates.FormatShort(day), inertTarget), nil
}

// assetImage flattens one image reference that traverses a media directory.
// Destination media always sits directly beside its note.
func assetImage(note *craft.Note, groups map[string]string, match string) (string, error) {
	file, ok := groups["file"]
	if !ok {
		return "", fmt.Errorf("invalid image link %q in %s: matched without a file name", match, note.SourcePath)
	}
	return fmt.Sprintf("![%s](%s)", groups["alt"], file), nil
}

// noteFrontMatter is the structured metadata block prepended to every
// rewritten note.
type noteFrontMatter struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Updated string `yaml:"updated"`
	Weight  int    `yaml:"weight"`
	Extra   struct {
		NoteType string `yaml:"note_type"`
	} `yaml:"extra"`
}

func frontMatter(note *craft.Note) (string, error) {
	fm := noteFrontMatter{
		Title:   note.DisplayName,
		Date:    note.CreatedAt,
		Updated: note.ModifiedAt,
		Weight:  note.Classification.Weight(),
	}
	fm.Extra.NoteType = note.Classification.Glyph()

	out, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(out)
	b.WriteString("---\n")
	return b.String(), nil
}
