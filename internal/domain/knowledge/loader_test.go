package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_ManifestWithListAndSingleObjectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestFile, `files:
  - path: hausa.json
    language: ha
  - path: single.json
    language: all
  - path: gone.json
    language: yo
`)
	writeFile(t, dir, "hausa.json", `[{"title":"a","text":"x","source":"s"},{"title":"b","text":"y","source":"s"}]`)
	writeFile(t, dir, "single.json", `{"title":"only","text":"z","source":"s"}`)

	base, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sizes := base.Sizes()
	if sizes["ha"] != 2 {
		t.Errorf("ha partition = %d documents, want 2", sizes["ha"])
	}
	if sizes[PartitionAll] != 1 {
		t.Errorf("all partition = %d documents, want 1 (single-object file)", sizes[PartitionAll])
	}
	// Missing file is skipped, not fatal.
	if sizes["yo"] != 0 {
		t.Errorf("yo partition = %d documents, want 0", sizes["yo"])
	}
}

func TestLoad_NoManifestUsesDefaultFilenames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bbc_pidgin_scraped.json", `[{"title":"p","text":"q","source":"bbc"}]`)

	base, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := base.Sizes()["pcm"]; got != 1 {
		t.Errorf("pcm partition = %d documents, want 1", got)
	}
}

func TestLoad_MalformedManifestIsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestFile, "files: [unclosed")

	if _, err := Load(dir); err == nil {
		t.Fatal("Load with malformed manifest: want error, got nil")
	}
}

func TestLoad_MalformedDocumentFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestFile, `files:
  - path: bad.json
    language: ha
  - path: good.json
    language: ha
`)
	writeFile(t, dir, "bad.json", `{{not json`)
	writeFile(t, dir, "good.json", `[{"title":"ok","text":"fine","source":"s"}]`)

	base, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := base.Sizes()["ha"]; got != 1 {
		t.Errorf("ha partition = %d documents, want 1 (bad file skipped)", got)
	}
}

func TestDocs_PartitionFallback(t *testing.T) {
	base := NewBase(map[string][]Document{
		"ha":         {{Title: "h"}},
		PartitionAll: {{Title: "c1"}, {Title: "c2"}},
	})

	if got := base.Docs("ha"); len(got) != 1 {
		t.Errorf("ha docs = %d, want 1", len(got))
	}
	if got := base.Docs("pcm"); len(got) != 2 {
		t.Errorf("pcm docs = %d, want 2 (combined fallback)", len(got))
	}
}
