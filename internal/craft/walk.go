package craft

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// metadataArtifact is the macOS Finder artifact Craft exports drag along.
const metadataArtifact = ".DS_Store"

// Stamper supplies pre-formatted creation/modification timestamps for a
// source file. The conversion itself never talks to the clock; the caller
// decides where stamps come from.
type Stamper func(path string) (createdAt, modifiedAt string, err error)

// OSStamper stamps a file from its filesystem metadata, formatted as RFC3339.
// Birth time is not portably available, so the modification time stands in
// for both stamps.
func OSStamper(path string) (string, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("stat %s: %w", path, err)
	}
	stamp := info.ModTime().UTC().Format(time.RFC3339)
	return stamp, stamp, nil
}

// Discover traverses the input tree once, indexing every markdown note and
// binding every media directory and loose asset file.
//
// Within each directory, files are visited before subdirectories. This
// ordering is load-bearing: a media directory is a sibling of the note that
// owns it, so visiting files first guarantees the owning note is already
// indexed when its ".assets" directory (and anything inside it) arrives at
// the binder. Any change to the traversal strategy must preserve this
// guarantee explicitly.
func (e *Export) Discover(stamp Stamper) error {
	return e.walkDir(e.Root, stamp)
}

func (e *Export) walkDir(dir string, stamp Stamper) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	var subdirs []os.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
			continue
		}
		if entry.Name() == metadataArtifact {
			continue
		}
		if err := e.visitFile(filepath.Join(dir, entry.Name()), stamp); err != nil {
			return err
		}
	}

	for _, entry := range subdirs {
		full := filepath.Join(dir, entry.Name())
		rel, err := e.relativize(full)
		if err != nil {
			return err
		}
		if strings.HasSuffix(entry.Name(), assetsDirSuffix) {
			if err := e.bindMediaDir(rel); err != nil {
				return err
			}
		} else {
			e.Directories[rel] = struct{}{}
		}
		if err := e.walkDir(full, stamp); err != nil {
			return err
		}
	}
	return nil
}

func (e *Export) visitFile(full string, stamp Stamper) error {
	rel, err := e.relativize(full)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(full, ".md") {
		return e.bindAssetFile(rel)
	}

	body, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("read note %s: %w", full, err)
	}
	createdAt, modifiedAt, err := stamp(full)
	if err != nil {
		return err
	}
	e.addNote(full, rel, string(body), createdAt, modifiedAt)
	return nil
}

func (e *Export) relativize(full string) (string, error) {
	rel, err := filepath.Rel(e.Root, full)
	if err != nil {
		return "", fmt.Errorf("relativize %s against %s: %w", full, e.Root, err)
	}
	return filepath.ToSlash(rel), nil
}
