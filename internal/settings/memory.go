package settings

// Memory is an in-memory Backend. It is the default for tests and the
// embedded core the file backend builds on.
type Memory struct {
	store *kv
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{store: newKV()}
}

// Group returns a scoped view rooted at the slash-joined path.
func (m *Memory) Group(path ...string) Group {
	return &group{store: m.store, prefix: joinPath(path)}
}

// Flush is a no-op for the in-memory backend.
func (m *Memory) Flush() error { return nil }

// Clear removes every key.
func (m *Memory) Clear() error {
	m.store.clearPrefix("")
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }
