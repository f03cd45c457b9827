package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dbmrq/depdoc/internal/errors"
	"github.com/dbmrq/depdoc/internal/readme"
)

// Compile-time check that the OS clipboard satisfies Clipboard.
var _ Clipboard = SystemClipboard{}

func TestSaveReadme(t *testing.T) {
	dir := t.TempDir()
	content := "\n# My Awesome Project\n\n## Dependencies\n- axios\n"

	path, err := SaveReadme(dir, "", content)
	if err != nil {
		t.Fatalf("SaveReadme() error = %v", err)
	}
	if filepath.Base(path) != readme.DefaultFilename {
		t.Errorf("expected default filename README.md, got %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != content {
		t.Errorf("saved content = %q, want %q", string(data), content)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files should be cleaned up, found %d entries", len(entries))
	}
}

func TestSaveReadme_Overwrites(t *testing.T) {
	dir := t.TempDir()
	if _, err := SaveReadme(dir, "DEPS.md", "first"); err != nil {
		t.Fatal(err)
	}
	path, err := SaveReadme(dir, "DEPS.md", "second")
	if err != nil {
		t.Fatalf("SaveReadme() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("expected overwritten content, got %q", string(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
	}
}

func TestSaveReadme_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	_, err := SaveReadme(dir, "", "content")
	if !errors.Is(err, errors.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}
