package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeTestArchive builds a small ZIP with the given entries
func writeTestArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer out.Close()

	writer := zip.NewWriter(out)
	for name, content := range entries {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write entry %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close archive: %v", err)
	}
}

func TestExtractAll(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "model.aivis")
	writeTestArchive(t, zipPath, map[string]string{
		"config.json":      `{"name":"test"}`,
		"assets/model.bin": "binary payload",
	})

	destDir := filepath.Join(dir, "extracted")
	if err := ExtractAll(zipPath, destDir); err != nil {
		t.Fatalf("ExtractAll failed: %v", err)
	}

	config, err := os.ReadFile(filepath.Join(destDir, "config.json"))
	if err != nil {
		t.Fatalf("config.json not extracted: %v", err)
	}
	if string(config) != `{"name":"test"}` {
		t.Errorf("unexpected config content: %s", config)
	}

	asset, err := os.ReadFile(filepath.Join(destDir, "assets", "model.bin"))
	if err != nil {
		t.Fatalf("nested asset not extracted: %v", err)
	}
	if string(asset) != "binary payload" {
		t.Errorf("unexpected asset content: %s", asset)
	}
}

func TestExtractAllRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "evil.aivis")
	writeTestArchive(t, zipPath, map[string]string{
		"../escape.txt": "should not land outside",
	})

	destDir := filepath.Join(dir, "extracted")
	if err := ExtractAll(zipPath, destDir); err == nil {
		t.Fatal("expected error for traversal entry, got nil")
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); !os.IsNotExist(err) {
		t.Error("traversal entry must not be written outside destination")
	}
}

func TestCreateFromDirectoryRoundTrip(t *testing.T) {
	dir := t.TempDir()

	srcDir := filepath.Join(dir, "staging")
	if err := os.MkdirAll(filepath.Join(srcDir, "assets"), 0755); err != nil {
		t.Fatalf("failed to create staging dir: %v", err)
	}
	files := map[string]string{
		"config.json":      `{"styles":{}}`,
		"assets/model.bin": "\x00\x01\x02 raw bytes",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(srcDir, filepath.FromSlash(name)), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	zipPath := filepath.Join(dir, "out.aivis")
	if err := CreateFromDirectory(srcDir, zipPath); err != nil {
		t.Fatalf("CreateFromDirectory failed: %v", err)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("output is not a readable archive: %v", err)
	}
	defer reader.Close()

	seen := map[string][]byte{}
	for _, entry := range reader.File {
		src, err := entry.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", entry.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(src); err != nil {
			t.Fatalf("failed to read entry %s: %v", entry.Name, err)
		}
		src.Close()
		seen[entry.Name] = buf.Bytes()
	}

	if len(seen) != len(files) {
		t.Fatalf("expected %d entries, got %d", len(files), len(seen))
	}
	for name, content := range files {
		got, ok := seen[name]
		if !ok {
			t.Errorf("entry %s missing from archive", name)
			continue
		}
		if !bytes.Equal(got, []byte(content)) {
			t.Errorf("entry %s content mismatch", name)
		}
	}
}

func TestCreateFromDirectoryUsesDeflate(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "staging")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatalf("failed to create staging dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "config.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	zipPath := filepath.Join(dir, "out.aivis")
	if err := CreateFromDirectory(srcDir, zipPath); err != nil {
		t.Fatalf("CreateFromDirectory failed: %v", err)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer reader.Close()

	for _, entry := range reader.File {
		if entry.Method != zip.Deflate {
			t.Errorf("entry %s uses method %d, expected deflate", entry.Name, entry.Method)
		}
	}
}
