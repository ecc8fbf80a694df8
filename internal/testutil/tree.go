// Package testutil provides reusable filesystem fixtures for trellis tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Tree is a temporary directory tree used both to lay out export fixtures and
// to assert on written output.
type Tree struct {
	Root string
	t    *testing.T
}

// NewTree creates an empty temporary tree, removed when the test finishes.
func NewTree(t *testing.T) *Tree {
	t.Helper()
	return &Tree{Root: t.TempDir(), t: t}
}

// NewTreeNamed creates a temporary tree whose root directory has the given
// base name, for tests that care about the input root's display name.
func NewTreeNamed(t *testing.T, name string) *Tree {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("create tree root: %v", err)
	}
	return &Tree{Root: root, t: t}
}

// Write creates a file (and any parent directories) at a tree-relative path.
func (tr *Tree) Write(rel, content string) {
	tr.t.Helper()
	full := filepath.Join(tr.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		tr.t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		tr.t.Fatalf("write %s: %v", rel, err)
	}
}

// Mkdir creates a directory at a tree-relative path.
func (tr *Tree) Mkdir(rel string) {
	tr.t.Helper()
	if err := os.MkdirAll(filepath.Join(tr.Root, filepath.FromSlash(rel)), 0o755); err != nil {
		tr.t.Fatalf("mkdir %s: %v", rel, err)
	}
}

// Read returns a file's content, failing the test if it cannot be read.
func (tr *Tree) Read(rel string) string {
	tr.t.Helper()
	data, err := os.ReadFile(filepath.Join(tr.Root, filepath.FromSlash(rel)))
	if err != nil {
		tr.t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether a tree-relative path exists.
func (tr *Tree) Exists(rel string) bool {
	tr.t.Helper()
	_, err := os.Stat(filepath.Join(tr.Root, filepath.FromSlash(rel)))
	return err == nil
}

// AssertExists fails the test if the path does not exist.
func (tr *Tree) AssertExists(rel string) {
	tr.t.Helper()
	if !tr.Exists(rel) {
		tr.t.Errorf("expected %s to exist", rel)
	}
}

// AssertNotExists fails the test if the path exists.
func (tr *Tree) AssertNotExists(rel string) {
	tr.t.Helper()
	if tr.Exists(rel) {
		tr.t.Errorf("expected %s to not exist", rel)
	}
}

// AssertContains fails the test if the file does not contain the substring.
func (tr *Tree) AssertContains(rel, substr string) {
	tr.t.Helper()
	content := tr.Read(rel)
	if !strings.Contains(content, substr) {
		tr.t.Errorf("expected %s to contain %q, got:\n%s", rel, substr, content)
	}
}
