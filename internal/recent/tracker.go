// Package recent maintains a bounded most-recently-used list of file
// paths, plus the fixed-slot menu model demo windows hang off it.
package recent

import "path/filepath"

// DefaultMax is the bound applied when a tracker is created without one.
const DefaultMax = 4

// Entry is one recent file as shown in a menu: the basename as label, the
// full path as payload.
type Entry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Tracker keeps the N most recently opened paths, most recent first.
type Tracker struct {
	max   int
	paths []string
}

// NewTracker creates a tracker bounded to max entries. Non-positive max
// falls back to DefaultMax.
func NewTracker(max int) *Tracker {
	if max <= 0 {
		max = DefaultMax
	}
	return &Tracker{max: max}
}

// Record notes that path was opened: any existing occurrence is removed,
// the path moves to the front, and the list is truncated to the bound.
func (t *Tracker) Record(path string) {
	kept := make([]string, 0, len(t.paths)+1)
	kept = append(kept, path)
	for _, p := range t.paths {
		if p != path {
			kept = append(kept, p)
		}
	}
	if len(kept) > t.max {
		kept = kept[:t.max]
	}
	t.paths = kept
}

// Paths returns the current ordered list, most recent first.
func (t *Tracker) Paths() []string {
	out := make([]string, len(t.paths))
	copy(out, t.paths)
	return out
}

// Entries returns the current list as menu entries.
func (t *Tracker) Entries() []Entry {
	entries := make([]Entry, len(t.paths))
	for i, p := range t.paths {
		entries[i] = Entry{Label: filepath.Base(p), Path: p}
	}
	return entries
}

// Len reports how many paths are tracked.
func (t *Tracker) Len() int { return len(t.paths) }

// Max reports the configured bound.
func (t *Tracker) Max() int { return t.max }

// Reset drops all tracked paths.
func (t *Tracker) Reset() { t.paths = nil }
