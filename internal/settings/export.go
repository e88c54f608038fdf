package settings

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Export writes the full key set of a backend as YAML. Keys keep their
// slash-joined form so an export round-trips without loss.
func Export(b Backend, w io.Writer) error {
	flat := make(map[string]any)
	collect(b, nil, flat)

	data, err := yaml.Marshal(flat)
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Import merges YAML produced by Export into a backend. Existing keys are
// overwritten; the result is not flushed.
func Import(b Backend, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}

	var flat map[string]any
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("failed to parse import: %w", err)
	}

	root := b.Group()
	for key, value := range flat {
		root.SetValue(key, value)
	}
	return nil
}

// collect walks the group tree depth-first. A key is a leaf when it holds
// a value at its own path; it names a subgroup when keys nest below it.
func collect(b Backend, path []string, out map[string]any) {
	g := b.Group(path...)
	sentinel := &struct{}{}

	for _, key := range g.Keys() {
		sub := append(append([]string(nil), path...), key)

		if v := g.Value(key, sentinel); v != any(sentinel) {
			out[strings.Join(sub, "/")] = v
		}
		if len(b.Group(sub...).Keys()) > 0 {
			collect(b, sub, out)
		}
	}
}
