package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	var d Document
	err := d.Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if d.Text() != "" || d.Path() != "" {
		t.Error("failed load must leave the buffer untouched")
	}
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var d Document
	if err := d.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Text() != "hello world\n" {
		t.Errorf("unexpected text %q", d.Text())
	}
	if d.Modified() {
		t.Error("freshly loaded document should not be modified")
	}

	d.SetText("edited")
	if !d.Modified() {
		t.Error("SetText should mark the document modified")
	}
	d.Insert("\n")
	if d.Text() != "edited\n" {
		t.Errorf("Insert should append, got %q", d.Text())
	}
	if err := d.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if d.Modified() {
		t.Error("Save should clear the modified flag")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "edited\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	var d Document
	d.SetText("unsaved")
	if err := d.Save(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "saved.txt")
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if d.Path() != path {
		t.Errorf("SaveAs should bind the path, got %q", d.Path())
	}
}

func TestLoadRefusesBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	// PNG magic followed by junk; detected as image, not text.
	data := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x01, 0x02}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	var d Document
	if err := d.Load(path); !errors.Is(err, ErrBinaryFile) {
		t.Fatalf("expected ErrBinaryFile, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var d Document
	if err := d.Load(path); err != nil {
		t.Fatalf("empty files are text enough: %v", err)
	}
}
