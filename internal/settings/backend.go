package settings

import (
	"sort"
	"strings"
	"sync"
)

// Backend is the key-value contract session persistence depends on.
// Writes are buffered in memory; Flush makes them durable. Last writer
// wins; no cross-process coordination is attempted.
type Backend interface {
	// Group returns a scoped view rooted at the slash-joined path.
	Group(path ...string) Group

	// Flush persists buffered writes. In-memory backends treat it as a no-op.
	Flush() error

	// Clear removes every key in the namespace.
	Clear() error

	// Close releases backend resources. Buffered writes are not flushed.
	Close() error
}

// Group is a scoped view over a Backend.
type Group interface {
	// Value returns the stored value for key, or def when absent.
	Value(key string, def any) any

	// SetValue stores value under key within this group.
	SetValue(key string, value any)

	// Keys lists the keys directly visible under this group, sorted.
	Keys() []string

	// Clear removes every key under this group.
	Clear()
}

// kv is the in-memory core shared by all backends. Keys are full
// slash-joined paths.
type kv struct {
	mu     sync.RWMutex
	values map[string]any
	dirty  bool
}

func newKV() *kv {
	return &kv{values: make(map[string]any)}
}

func (s *kv) get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *kv) set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.dirty = true
}

func (s *kv) clearPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.values {
		if prefix == "" || k == prefix || strings.HasPrefix(k, prefix+"/") {
			delete(s.values, k)
		}
	}
	s.dirty = true
}

func (s *kv) keysUnder(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for k := range s.values {
		if prefix != "" {
			if !strings.HasPrefix(k, prefix+"/") {
				continue
			}
			k = strings.TrimPrefix(k, prefix+"/")
		}
		// Only the first segment is directly visible at this level.
		if i := strings.IndexByte(k, '/'); i >= 0 {
			k = k[:i]
		}
		seen[k] = true
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// snapshot copies the full key set for persistence.
func (s *kv) snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *kv) replace(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
	s.dirty = false
}

// group implements Group over a kv core.
type group struct {
	store  *kv
	prefix string
}

func joinPath(path []string) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

func (g *group) full(key string) string {
	if g.prefix == "" {
		return key
	}
	return g.prefix + "/" + key
}

func (g *group) Value(key string, def any) any {
	if v, ok := g.store.get(g.full(key)); ok {
		return v
	}
	return def
}

func (g *group) SetValue(key string, value any) {
	g.store.set(g.full(key), value)
}

func (g *group) Keys() []string {
	return g.store.keysUnder(g.prefix)
}

func (g *group) Clear() {
	g.store.clearPrefix(g.prefix)
}
