package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/glintlab/glint/internal/infrastructure/logging"
	"github.com/glintlab/glint/internal/settings"
)

// Settings keys within a tool's namespace. Geometry and state live under
// the tool version so versions never read each other's records.
const (
	keyWidth  = "size/width"
	keyHeight = "size/height"
	keyPosX   = "pos/x"
	keyPosY   = "pos/y"

	stateGroup = "widgetState"
	stateKey   = "state"
)

// Store persists and restores one window's settings.
type Store struct {
	window  Window
	key     Key
	backend settings.Backend
	logger  *logging.Logger
}

// NewStore creates a session store for the window identified by key.
func NewStore(window Window, key Key, backend settings.Backend, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{
		window:  window,
		key:     key,
		backend: backend,
		logger:  logger,
	}
}

// Key returns the tool identity this store persists under.
func (s *Store) Key() Key { return s.key }

// ReadSettings applies stored (or default) geometry to the window, then
// hands the decoded state blob to the window's RestoreState hook when the
// window is Persistable. Blob failures are logged and reported as false;
// geometry restoration succeeds independently.
func (s *Store) ReadSettings() bool {
	g := s.backend.Group(s.key.Version)
	def := DefaultGeometry()

	s.window.SetGeometry(Geometry{
		Size: Size{
			Width:  intValue(g.Value(keyWidth, nil), def.Size.Width),
			Height: intValue(g.Value(keyHeight, nil), def.Size.Height),
		},
		Position: Position{
			X: intValue(g.Value(keyPosX, nil), def.Position.X),
			Y: intValue(g.Value(keyPosY, nil), def.Position.Y),
		},
	})

	p, ok := s.window.(Persistable)
	if !ok {
		return true
	}

	blob, _ := s.backend.Group(s.key.Version, stateGroup).Value(stateKey, "").(string)
	if blob == "" {
		return true
	}

	state, err := decodeState(blob)
	if err != nil {
		s.logger.Error("failed to restore window state",
			zap.String("tool", s.key.Tool),
			zap.String("version", s.key.Version),
			zap.Error(err))
		return false
	}

	if err := p.RestoreState(state); err != nil {
		s.logger.Error("window rejected restored state",
			zap.String("tool", s.key.Tool),
			zap.Error(err))
		return false
	}

	return true
}

// WriteSettings reads current geometry from the window and writes it,
// together with the encoded SaveState result when the window is
// Persistable. Blob failures are logged and reported as false; the
// geometry write still lands within the same flush.
func (s *Store) WriteSettings() bool {
	g := s.backend.Group(s.key.Version)
	geo := s.window.Geometry()

	g.SetValue(keyWidth, geo.Size.Width)
	g.SetValue(keyHeight, geo.Size.Height)
	g.SetValue(keyPosX, geo.Position.X)
	g.SetValue(keyPosY, geo.Position.Y)

	ok := true
	if p, isPersistable := s.window.(Persistable); isPersistable {
		ok = s.writeState(p)
	}

	if err := s.backend.Flush(); err != nil {
		s.logger.Error("failed to flush settings",
			zap.String("tool", s.key.Tool),
			zap.Error(err))
		return false
	}

	return ok
}

func (s *Store) writeState(p Persistable) bool {
	state, err := p.SaveState()
	if err != nil {
		s.logger.Error("window failed to report state",
			zap.String("tool", s.key.Tool),
			zap.Error(err))
		return false
	}

	blob, err := encodeState(state)
	if err != nil {
		s.logger.Error("failed to save window state",
			zap.String("tool", s.key.Tool),
			zap.Error(err))
		return false
	}

	s.backend.Group(s.key.Version, stateGroup).SetValue(stateKey, blob)
	return true
}

// ClearSettings deletes the entire namespace for this store's key.
func (s *Store) ClearSettings() error {
	if err := s.backend.Clear(); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	return nil
}

// Save writes settings, then closes the window. Returns the write result.
func (s *Store) Save() bool {
	result := s.WriteSettings()
	s.window.Close()
	return result
}

// Restore resets the window to an empty state, closes it, and clears the
// persisted record.
func (s *Store) Restore() error {
	if p, ok := s.window.(Persistable); ok {
		if err := p.RestoreState(map[string]any{}); err != nil {
			s.logger.Warn("window rejected state reset",
				zap.String("tool", s.key.Tool),
				zap.Error(err))
		}
	}
	s.window.Close()
	return s.ClearSettings()
}

// Cancel closes the window, then re-reads and reapplies the last-saved
// settings, discarding in-session changes.
func (s *Store) Cancel() bool {
	s.window.Close()
	return s.ReadSettings()
}

// intValue coerces a stored numeric value. Backends differ on number
// types: memory keeps int, TOML yields int64, sqlite round-trips through
// JSON as float64.
func intValue(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case uint64:
		return int(n)
	}
	return def
}
