// Package editor holds the headless text-editor demo core: a document
// with plain file I/O and a window model that persists its session
// through the session store.
package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrFileNotFound reports an open on a path that does not exist. The
	// operation is aborted; callers surface it as a user-visible warning.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrBinaryFile reports an open on a non-text file.
	ErrBinaryFile = errors.New("refusing to open binary file")

	// ErrNoPath reports a save on a document that was never given a path.
	ErrNoPath = errors.New("document has no file path")
)

// Document is a plain-text buffer bound to an optional file path.
type Document struct {
	path     string
	text     string
	modified bool
}

// Load replaces the buffer with the contents of path. Missing files and
// binary files abort the load, leaving the buffer untouched.
func (d *Document) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if info.Size() > 0 {
		if err := checkText(path); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	d.path = path
	d.text = string(data)
	d.modified = false
	return nil
}

// Save writes the buffer back to its path.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(d.path, []byte(d.text), 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}
	d.modified = false
	return nil
}

// SaveAs binds the document to a new path and saves it there.
func (d *Document) SaveAs(path string) error {
	d.path = path
	return d.Save()
}

// SetText replaces the buffer and marks the document modified.
func (d *Document) SetText(text string) {
	d.text = text
	d.modified = true
}

// Insert appends text to the buffer and marks the document modified.
func (d *Document) Insert(text string) {
	d.text += text
	d.modified = true
}

// Text returns the buffer contents.
func (d *Document) Text() string { return d.text }

// Path returns the bound file path, empty for unsaved documents.
func (d *Document) Path() string { return d.path }

// Modified reports unsaved changes.
func (d *Document) Modified() bool { return d.modified }

// checkText rejects files whose detected type is not in the text tree.
func checkText(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("failed to detect type of %s: %w", path, err)
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is %s", ErrBinaryFile, path, mtype.String())
}
