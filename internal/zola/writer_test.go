package zola

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/willow/trellis/internal/craft"
	"github.com/willow/trellis/internal/testutil"
)

func writeFixture(t *testing.T) (*testutil.Tree, *testutil.Tree) {
	t.Helper()

	src := testutil.NewTreeNamed(t, "Garden")
	src.Write("Cryptography/AES.assets/diagram.jpeg", "imagebytes")

	ex := &craft.Export{
		Root:        src.Root,
		RootName:    "Garden",
		Notes:       make(map[string]*craft.Note),
		Directories: map[string]struct{}{"Cryptography": {}},
	}
	ex.Notes["Cryptography/TLS"] = &craft.Note{
		RelativeKey: "Cryptography/TLS",
		SlugPath:    "cryptography/tls.md",
		DisplayName: "TLS",
		Body:        "tls body\n",
	}
	ex.Notes["Cryptography/AES"] = &craft.Note{
		RelativeKey:     "Cryptography/AES",
		SlugPath:        "cryptography/aes/index.md",
		DisplayName:     "AES",
		Body:            "aes body\n",
		Assets:          []string{"diagram.jpeg"},
		AssetsSourceDir: filepath.Join(src.Root, "Cryptography", "AES.assets"),
	}

	out := testutil.NewTree(t)
	if err := NewWriter(out.Root).WriteAll(ex); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	return src, out
}

func TestWriteAllWritesBodies(t *testing.T) {
	_, out := writeFixture(t)

	out.AssertContains("cryptography/tls.md", "tls body")
	out.AssertContains("cryptography/aes/index.md", "aes body")
}

func TestWriteAllCopiesAssetsBesideNote(t *testing.T) {
	_, out := writeFixture(t)

	out.AssertExists("cryptography/aes/diagram.jpeg")
	if got := out.Read("cryptography/aes/diagram.jpeg"); got != "imagebytes" {
		t.Errorf("asset content = %q", got)
	}
}

func TestWriteAllGeneratesSectionFiles(t *testing.T) {
	_, out := writeFixture(t)

	out.AssertExists("cryptography/_index.md")
	section := out.Read("cryptography/_index.md")
	for _, want := range []string{
		"+++\n",
		`title = "🌳 Cryptography"`,
		`sort_by = "weight"`,
		`insert_anchor_links = "left"`,
	} {
		if !strings.Contains(section, want) {
			t.Errorf("section file missing %q:\n%s", want, section)
		}
	}
	if strings.Contains(section, "template") {
		t.Errorf("per-directory section must not set a template:\n%s", section)
	}

	// A directory-index note marks its own directory; no _index.md there.
	out.AssertNotExists("cryptography/aes/_index.md")
}

func TestWriteAllGeneratesRootSection(t *testing.T) {
	_, out := writeFixture(t)

	out.AssertExists("_index.md")
	root := out.Read("_index.md")
	for _, want := range []string{
		`title = "🌳 Garden"`,
		`template = "garden.html"`,
		`sort_by = "weight"`,
	} {
		if !strings.Contains(root, want) {
			t.Errorf("root section missing %q:\n%s", want, root)
		}
	}
}
