// Package craft models a Craft markdown export: the notes and media found on
// disk, keyed by their logical identity, plus the discovery walker and the
// asset binder that populate that index.
package craft

import "strings"

// Classification is the priority tier a note signals through a marker glyph
// in its display name.
type Classification int

const (
	Evergreen Classification = iota
	Potted
	Seedling
	Unclassified
)

// classificationMarkers is evaluated in order; the first glyph present in the
// display name wins, regardless of its position. Lower weight sorts higher in
// the destination renderer.
var classificationMarkers = []struct {
	glyph string
	class Classification
}{
	{"🌲", Evergreen},
	{"🪴", Potted},
	{"🌱", Seedling},
}

// Classify derives a note's classification from its display name.
//
// If two marker glyphs ever appear in the same name only the higher-priority
// one is honored; the losing glyph stays in the displayed title uncleaned.
func Classify(displayName string) Classification {
	for _, m := range classificationMarkers {
		if strings.Contains(displayName, m.glyph) {
			return m.class
		}
	}
	return Unclassified
}

// Weight returns the destination sort weight; lower values sort first.
func (c Classification) Weight() int {
	switch c {
	case Evergreen:
		return 1
	case Potted:
		return 2
	case Seedling:
		return 3
	default:
		return 4
	}
}

// Glyph returns the display glyph carried into the destination metadata.
func (c Classification) Glyph() string {
	switch c {
	case Evergreen:
		return "🌲"
	case Potted:
		return "🪴"
	case Seedling:
		return "🌱"
	default:
		return " "
	}
}

func (c Classification) String() string {
	switch c {
	case Evergreen:
		return "evergreen"
	case Potted:
		return "potted"
	case Seedling:
		return "seedling"
	default:
		return "none"
	}
}

// Note is one source document and everything the writer needs to materialize
// it at its destination.
type Note struct {
	// Classification is derived once from marker glyphs in the display name.
	Classification Classification

	// SourcePath is the absolute path of the original file. Immutable.
	SourcePath string

	// RelativeKey is the source path relative to the input root with the
	// extension removed. It is the unique identity used for all lookups.
	//
	// Example: "Cryptography/TLS"
	RelativeKey string

	// SlugPath is the destination-relative, extension-bearing path, derived
	// from RelativeKey. It is mutated exactly once more if the note owns a
	// media directory, becoming ".../index.md".
	//
	// Example: "woodworking/joinery-techniques/dovetail-joint.md"
	SlugPath string

	// DisplayName is the file name without extension, Unicode preserved.
	// It is never slugified; it becomes the destination title and link text.
	DisplayName string

	// Assets holds the bare file names of bound media, in discovery order.
	// The destination co-locates media with its note, so no directory
	// component is ever needed.
	Assets []string

	// AssetsSourceDir is the absolute path of the source media directory,
	// set when the note owns one. Assets may still be empty if every file
	// in the directory was discarded as non-renderable.
	AssetsSourceDir string

	// Body is the raw source text until the rewrite pass replaces it with
	// the finished destination text.
	Body string

	// CreatedAt and ModifiedAt are pre-formatted interchange timestamps
	// supplied by the stamper collaborator.
	CreatedAt  string
	ModifiedAt string
}
