package craft

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/willow/trellis/internal/slugs"
)

// assetsDirSuffix marks a directory as holding a sibling note's media.
// A note with relative key K owns the directory named K + assetsDirSuffix.
const assetsDirSuffix = ".assets"

// binPreviewMarker appears in the name of preview images that Craft generates
// for binary-container (".bin") payloads. Those previews are the only
// renderable representative of their payload; previews of anything else are
// redundant copies of an asset we already keep.
const binPreviewMarker = "_bin_preview"

// Export is the in-memory index of a Craft export tree.
//
// Notes is keyed by each note's RelativeKey; keys are unique by construction
// since they derive from real filesystem paths. Directories is bookkeeping
// only: the set of non-media directories seen during discovery.
type Export struct {
	// Root is the absolute path of the input tree.
	Root string

	// RootName is the base name of the input directory; its slug becomes the
	// top-level destination section every rewritten link is rooted under.
	RootName string

	Notes       map[string]*Note
	Directories map[string]struct{}
}

// New creates an empty Export for the given input root.
func New(root string) (*Export, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve input root %q: %w", root, err)
	}
	return &Export{
		Root:        abs,
		RootName:    filepath.Base(abs),
		Notes:       make(map[string]*Note),
		Directories: make(map[string]struct{}),
	}, nil
}

// RootSlug returns the slugified input root name used as the destination
// section prefix in rewritten links.
func (e *Export) RootSlug() string {
	return slugs.Component(e.RootName)
}

// Lookup returns the note with the given relative key.
func (e *Export) Lookup(key string) (*Note, bool) {
	n, ok := e.Notes[key]
	return n, ok
}

// addNote indexes a newly discovered markdown file. Identity, classification,
// slug path, and display name are all fixed here; only the binder and the
// rewriter mutate the record afterwards.
func (e *Export) addNote(sourcePath, relPath, body, createdAt, modifiedAt string) {
	key := strings.TrimSuffix(filepath.ToSlash(relPath), ".md")
	displayName := path.Base(key)

	e.Notes[key] = &Note{
		Classification: Classify(displayName),
		SourcePath:     sourcePath,
		RelativeKey:    key,
		SlugPath:       slugs.NotePath(key),
		DisplayName:    displayName,
		Body:           body,
		CreatedAt:      createdAt,
		ModifiedAt:     modifiedAt,
	}
}

// bindMediaDir attaches a media directory to its owning note and moves the
// note's destination to the directory-index form, so the note and its media
// end up co-located under one slugged directory name.
//
// An orphan media directory is a structural violation of the export format.
func (e *Export) bindMediaDir(relDir string) error {
	key := strings.TrimSuffix(relDir, assetsDirSuffix)
	note, ok := e.Notes[key]
	if !ok {
		return fmt.Errorf("orphan media directory %q: no note with key %q exists in the export", relDir, key)
	}

	// "cryptography/aes.md" + "Cryptography/AES.assets/" collapse to
	// "cryptography/aes/index.md"; the slugged directory carries both.
	note.SlugPath = strings.TrimSuffix(note.SlugPath, ".md") + "/index.md"
	note.AssetsSourceDir = filepath.Join(e.Root, filepath.FromSlash(relDir))
	return nil
}

// bindAssetFile routes one loose media file to its owning note, or discards
// it when the destination has no use for it.
func (e *Export) bindAssetFile(relPath string) error {
	name := path.Base(relPath)
	ext := strings.TrimPrefix(path.Ext(name), ".")

	// A ".bin" payload always ships with a generated preview image; the
	// preview is the renderable representative, so the payload is dropped.
	if ext == "bin" {
		return nil
	}
	// Previews of non-bin assets duplicate media we already keep.
	if ext == "png" && !strings.Contains(name, binPreviewMarker) {
		return nil
	}

	key := strings.TrimSuffix(path.Dir(relPath), assetsDirSuffix)
	note, ok := e.Notes[key]
	if !ok {
		return fmt.Errorf("loose asset %q: no owning note with key %q exists in the export", relPath, key)
	}
	note.Assets = append(note.Assets, name)
	return nil
}
