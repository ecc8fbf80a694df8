package craft

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/willow/trellis/internal/testutil"
)

func fixedStamper(string) (string, string, error) {
	return "2023-11-01T09:00:00Z", "2023-12-01T09:00:00Z", nil
}

func discover(t *testing.T, tr *testutil.Tree) *Export {
	t.Helper()
	ex, err := New(tr.Root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ex.Discover(fixedStamper); err != nil {
		t.Fatalf("Discover: %v", err)
	}
	return ex
}

func TestDiscoverIndexesNotes(t *testing.T) {
	tr := testutil.NewTreeNamed(t, "Garden")
	tr.Write("Cryptography/TLS.md", "# TLS\n\nbody\n")
	tr.Write("🌲 Woodworking/Joinery Techniques/Dovetail Joint.md", "# joint\n")
	tr.Write("Cryptography/.DS_Store", "junk")

	ex := discover(t, tr)

	if len(ex.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d: %v", len(ex.Notes), ex.Notes)
	}

	tls, ok := ex.Lookup("Cryptography/TLS")
	if !ok {
		t.Fatal("missing note Cryptography/TLS")
	}
	if tls.SlugPath != "cryptography/tls.md" {
		t.Errorf("SlugPath = %q", tls.SlugPath)
	}
	if tls.DisplayName != "TLS" {
		t.Errorf("DisplayName = %q", tls.DisplayName)
	}
	if tls.Body != "# TLS\n\nbody\n" {
		t.Errorf("Body = %q", tls.Body)
	}
	if tls.CreatedAt != "2023-11-01T09:00:00Z" || tls.ModifiedAt != "2023-12-01T09:00:00Z" {
		t.Errorf("stamps = %q / %q", tls.CreatedAt, tls.ModifiedAt)
	}
	if tls.SourcePath != filepath.Join(tr.Root, "Cryptography", "TLS.md") {
		t.Errorf("SourcePath = %q", tls.SourcePath)
	}

	joint, ok := ex.Lookup("🌲 Woodworking/Joinery Techniques/Dovetail Joint")
	if !ok {
		t.Fatal("missing dovetail joint note")
	}
	if joint.Classification != Evergreen {
		t.Errorf("Classification = %v", joint.Classification)
	}
	if joint.SlugPath != "woodworking/joinery-techniques/dovetail-joint.md" {
		t.Errorf("SlugPath = %q", joint.SlugPath)
	}
}

func TestDiscoverRecordsDirectories(t *testing.T) {
	tr := testutil.NewTreeNamed(t, "Garden")
	tr.Write("Cryptography/TLS.md", "x")
	tr.Write("Cryptography/AES.md", "y")
	tr.Write("Cryptography/AES.assets/diagram.jpeg", "img")

	ex := discover(t, tr)

	if _, ok := ex.Directories["Cryptography"]; !ok {
		t.Errorf("Cryptography missing from directory set: %v", ex.Directories)
	}
	if _, ok := ex.Directories["Cryptography/AES.assets"]; ok {
		t.Error("media directory must not enter the directory set")
	}
}

func TestDiscoverBindsMediaDirectory(t *testing.T) {
	tr := testutil.NewTreeNamed(t, "Garden")
	tr.Write("Cryptography/AES.md", "# AES\n")
	tr.Write("Cryptography/AES.assets/diagram.jpeg", "img")
	tr.Write("Cryptography/AES.assets/payload.bin", "blob")
	tr.Write("Cryptography/AES.assets/payload_bin_preview.png", "preview")
	tr.Write("Cryptography/AES.assets/photo_jpeg_preview.png", "redundant")

	ex := discover(t, tr)

	aes, ok := ex.Lookup("Cryptography/AES")
	if !ok {
		t.Fatal("missing note Cryptography/AES")
	}

	// Owning a media directory moves the note to the directory-index form.
	if aes.SlugPath != "cryptography/aes/index.md" {
		t.Errorf("SlugPath = %q, want cryptography/aes/index.md", aes.SlugPath)
	}
	wantDir := filepath.Join(tr.Root, "Cryptography", "AES.assets")
	if aes.AssetsSourceDir != wantDir {
		t.Errorf("AssetsSourceDir = %q, want %q", aes.AssetsSourceDir, wantDir)
	}

	// bin payloads and previews of non-bin assets are discarded; the bin
	// preview is kept as the payload's renderable representative.
	want := []string{"diagram.jpeg", "payload_bin_preview.png"}
	if len(aes.Assets) != len(want) {
		t.Fatalf("Assets = %v, want %v", aes.Assets, want)
	}
	for i := range want {
		if aes.Assets[i] != want[i] {
			t.Errorf("Assets[%d] = %q, want %q", i, aes.Assets[i], want[i])
		}
	}
}

func TestDiscoverMediaDirectoryAllDiscarded(t *testing.T) {
	// Every file in the media directory is filtered out, yet the note still
	// owns the directory: index-form slug, source dir recorded, no assets.
	tr := testutil.NewTreeNamed(t, "Garden")
	tr.Write("Cryptography/AES.md", "# AES\n")
	tr.Write("Cryptography/AES.assets/payload.bin", "blob")
	tr.Write("Cryptography/AES.assets/photo_jpeg_preview.png", "redundant")

	ex := discover(t, tr)

	aes, ok := ex.Lookup("Cryptography/AES")
	if !ok {
		t.Fatal("missing note Cryptography/AES")
	}
	if aes.SlugPath != "cryptography/aes/index.md" {
		t.Errorf("SlugPath = %q, want cryptography/aes/index.md", aes.SlugPath)
	}
	if aes.AssetsSourceDir == "" {
		t.Error("AssetsSourceDir should be set even when nothing survives filtering")
	}
	if len(aes.Assets) != 0 {
		t.Errorf("Assets = %v, want empty", aes.Assets)
	}
}

func TestDiscoverFilesBeforeSiblingDirectories(t *testing.T) {
	// The media directory sorts lexically before the note file; binding
	// still succeeds because files are visited before sibling directories.
	tr := testutil.NewTreeNamed(t, "Garden")
	tr.Write("Zoo/Aardvark.assets/pic.jpeg", "img")
	tr.Write("Zoo/Aardvark.md", "# Aardvark\n")

	ex := discover(t, tr)

	note, ok := ex.Lookup("Zoo/Aardvark")
	if !ok {
		t.Fatal("missing note Zoo/Aardvark")
	}
	if note.SlugPath != "zoo/aardvark/index.md" {
		t.Errorf("SlugPath = %q", note.SlugPath)
	}
}

func TestDiscoverOrphanMediaDirectoryFatal(t *testing.T) {
	tr := testutil.NewTreeNamed(t, "Garden")
	tr.Write("Cryptography/TLS.md", "x")
	tr.Write("Cryptography/Missing.assets/pic.jpeg", "img")

	ex, err := New(tr.Root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = ex.Discover(fixedStamper)
	if err == nil {
		t.Fatal("expected error for orphan media directory")
	}
	if !strings.Contains(err.Error(), "Cryptography/Missing") {
		t.Errorf("error should name the offending directory: %v", err)
	}
}

func TestDiscoverUnownedLooseAssetFatal(t *testing.T) {
	tr := testutil.NewTreeNamed(t, "Garden")
	tr.Write("Cryptography/stray.jpeg", "img")

	ex, err := New(tr.Root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ex.Discover(fixedStamper); err == nil {
		t.Fatal("expected error for loose asset without an owning note")
	}
}

func TestRootSlug(t *testing.T) {
	tr := testutil.NewTreeNamed(t, "My Garden")
	ex := discover(t, tr)
	if got := ex.RootSlug(); got != "my-garden" {
		t.Errorf("RootSlug() = %q", got)
	}
}
