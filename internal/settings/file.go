package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// File is a Backend persisted as one TOML document per namespace, laid out
// as <dir>/<company>/<tool>.toml. Writes go to a temp file first and are
// renamed into place, so a crashed flush never truncates the previous
// record.
type File struct {
	path  string
	store *kv
}

// OpenFile opens (or lazily creates) the TOML-backed namespace for the
// given company and tool under dir.
func OpenFile(dir, company, tool string) (*File, error) {
	path := filepath.Join(dir, sanitize(company), sanitize(tool)+".toml")

	f := &File{path: path, store: newKV()}
	if err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

// Group returns a scoped view rooted at the slash-joined path.
func (f *File) Group(path ...string) Group {
	return &group{store: f.store, prefix: joinPath(path)}
}

// Flush writes the namespace to disk atomically.
func (f *File) Flush() error {
	tree := nest(f.store.snapshot())
	data, err := toml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

// Clear removes every key and deletes the backing file.
func (f *File) Clear() error {
	f.store.clearPrefix("")
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove settings file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only held open during load and flush.
func (f *File) Close() error { return nil }

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}
	f.store.replace(flatten("", tree))
	return nil
}

// nest converts slash-joined keys into nested tables for TOML.
func nest(flat map[string]any) map[string]any {
	tree := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, "/")
		node := tree
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return tree
}

// flatten converts nested tables back into slash-joined keys.
func flatten(prefix string, tree map[string]any) map[string]any {
	flat := make(map[string]any)
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "/" + key
		}
		if child, ok := value.(map[string]any); ok {
			for k, v := range flatten(full, child) {
				flat[k] = v
			}
			continue
		}
		flat[full] = value
	}
	return flat
}

// sanitize keeps namespace components usable as path segments.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, string(filepath.Separator), "_")
	s = strings.ReplaceAll(s, "..", "_")
	if s == "" {
		return "_"
	}
	return s
}
