package session

import (
	"errors"
	"testing"

	"github.com/glintlab/glint/internal/settings"
)

// fakeWindow implements Window without the Persistable capability.
type fakeWindow struct {
	geometry Geometry
	closed   bool
}

func (w *fakeWindow) Geometry() Geometry     { return w.geometry }
func (w *fakeWindow) SetGeometry(g Geometry) { w.geometry = g }
func (w *fakeWindow) Close()                 { w.closed = true }

// statefulWindow adds the Persistable capability.
type statefulWindow struct {
	fakeWindow
	state      map[string]any
	saveErr    error
	restoreErr error
	restored   []any
}

func (w *statefulWindow) SaveState() (any, error) {
	if w.saveErr != nil {
		return nil, w.saveErr
	}
	return w.state, nil
}

func (w *statefulWindow) RestoreState(data any) error {
	w.restored = append(w.restored, data)
	if w.restoreErr != nil {
		return w.restoreErr
	}
	if m, ok := data.(map[string]any); ok {
		w.state = m
	}
	return nil
}

func testKey() Key {
	return Key{Company: "XYZ-Company", Tool: "TestTool", Version: "0.0.1"}
}

func TestGeometryRoundTrip(t *testing.T) {
	backend := settings.NewMemory()
	w := &fakeWindow{geometry: Geometry{
		Size:     Size{Width: 640, Height: 480},
		Position: Position{X: 10, Y: 20},
	}}

	store := NewStore(w, testKey(), backend, nil)
	if !store.WriteSettings() {
		t.Fatal("WriteSettings failed")
	}

	reopened := &fakeWindow{}
	if !NewStore(reopened, testKey(), backend, nil).ReadSettings() {
		t.Fatal("ReadSettings failed")
	}

	if reopened.geometry.Size.Width != 640 || reopened.geometry.Size.Height != 480 {
		t.Errorf("size not round-tripped: %+v", reopened.geometry.Size)
	}
	if reopened.geometry.Position.X != 10 || reopened.geometry.Position.Y != 20 {
		t.Errorf("position not round-tripped: %+v", reopened.geometry.Position)
	}
}

func TestDefaultsWhenEmpty(t *testing.T) {
	w := &fakeWindow{}
	store := NewStore(w, testKey(), settings.NewMemory(), nil)

	if !store.ReadSettings() {
		t.Fatal("ReadSettings failed on empty record")
	}

	def := DefaultGeometry()
	if w.geometry != def {
		t.Errorf("expected defaults %+v, got %+v", def, w.geometry)
	}
	if def.Size.Width != 400 || def.Size.Height != 200 {
		t.Errorf("unexpected default size: %+v", def.Size)
	}
	if def.Position.X != 200 || def.Position.Y != 200 {
		t.Errorf("unexpected default position: %+v", def.Position)
	}
}

func TestStateRoundTrip(t *testing.T) {
	backend := settings.NewMemory()
	w := &statefulWindow{state: map[string]any{
		"lastFile": "/tmp/notes.txt",
		"zoom":     float64(2),
	}}
	w.geometry = DefaultGeometry()

	if !NewStore(w, testKey(), backend, nil).WriteSettings() {
		t.Fatal("WriteSettings failed")
	}

	reopened := &statefulWindow{}
	if !NewStore(reopened, testKey(), backend, nil).ReadSettings() {
		t.Fatal("ReadSettings failed")
	}

	if reopened.state["lastFile"] != "/tmp/notes.txt" {
		t.Errorf("expected lastFile to round-trip, got %v", reopened.state["lastFile"])
	}
	if reopened.state["zoom"] != float64(2) {
		t.Errorf("expected zoom 2, got %v", reopened.state["zoom"])
	}
}

func TestCorruptStateBlob(t *testing.T) {
	blobs := map[string]string{
		"not base64":   "%%%not-base64%%%",
		"not gzip":     "aGVsbG8gd29ybGQ=", // valid base64, not a gzip stream
		"empty object": "",                 // treated as absent, read succeeds
	}

	for name, blob := range blobs {
		t.Run(name, func(t *testing.T) {
			backend := settings.NewMemory()
			key := testKey()

			// Seed valid geometry plus the broken blob.
			seed := &fakeWindow{geometry: Geometry{
				Size:     Size{Width: 800, Height: 600},
				Position: Position{X: 1, Y: 2},
			}}
			if !NewStore(seed, key, backend, nil).WriteSettings() {
				t.Fatal("seeding failed")
			}
			backend.Group(key.Version, "widgetState").SetValue("state", blob)

			w := &statefulWindow{}
			got := NewStore(w, key, backend, nil).ReadSettings()

			wantOK := blob == ""
			if got != wantOK {
				t.Errorf("ReadSettings = %v, want %v", got, wantOK)
			}

			// Geometry restoration succeeds independently.
			if w.geometry.Size.Width != 800 {
				t.Errorf("geometry not applied despite blob failure: %+v", w.geometry)
			}
		})
	}
}

func TestRestoreStateErrorIsNonFatal(t *testing.T) {
	backend := settings.NewMemory()
	key := testKey()

	seed := &statefulWindow{state: map[string]any{"k": "v"}}
	seed.geometry = DefaultGeometry()
	if !NewStore(seed, key, backend, nil).WriteSettings() {
		t.Fatal("seeding failed")
	}

	w := &statefulWindow{restoreErr: errors.New("bad state")}
	if NewStore(w, key, backend, nil).ReadSettings() {
		t.Error("expected false when RestoreState rejects the blob")
	}
	if w.geometry != DefaultGeometry() {
		t.Errorf("geometry should still be applied, got %+v", w.geometry)
	}
}

func TestSaveStateFailureStillWritesGeometry(t *testing.T) {
	backend := settings.NewMemory()
	key := testKey()

	w := &statefulWindow{saveErr: errors.New("cannot collect state")}
	w.geometry = Geometry{Size: Size{Width: 321, Height: 123}, Position: Position{X: 7, Y: 8}}

	if NewStore(w, key, backend, nil).WriteSettings() {
		t.Error("expected false when SaveState fails")
	}

	reopened := &fakeWindow{}
	if !NewStore(reopened, key, backend, nil).ReadSettings() {
		t.Fatal("ReadSettings failed")
	}
	if reopened.geometry.Size.Width != 321 {
		t.Errorf("geometry write should land despite state failure: %+v", reopened.geometry)
	}
}

func TestClearThenRead(t *testing.T) {
	backend := settings.NewMemory()
	key := testKey()

	w := &fakeWindow{geometry: Geometry{
		Size:     Size{Width: 1000, Height: 900},
		Position: Position{X: 5, Y: 6},
	}}
	store := NewStore(w, key, backend, nil)
	if !store.WriteSettings() {
		t.Fatal("WriteSettings failed")
	}

	if err := store.ClearSettings(); err != nil {
		t.Fatalf("ClearSettings: %v", err)
	}

	if !store.ReadSettings() {
		t.Fatal("ReadSettings failed after clear")
	}
	if w.geometry != DefaultGeometry() {
		t.Errorf("expected defaults after clear, got %+v", w.geometry)
	}
}

func TestSaveClosesWindow(t *testing.T) {
	w := &fakeWindow{geometry: DefaultGeometry()}
	store := NewStore(w, testKey(), settings.NewMemory(), nil)

	if !store.Save() {
		t.Error("Save should report the write result")
	}
	if !w.closed {
		t.Error("Save should close the window")
	}
}

func TestRestoreResetsClosesClears(t *testing.T) {
	backend := settings.NewMemory()
	key := testKey()

	w := &statefulWindow{state: map[string]any{"k": "v"}}
	w.geometry = DefaultGeometry()
	store := NewStore(w, key, backend, nil)
	if !store.WriteSettings() {
		t.Fatal("WriteSettings failed")
	}

	if err := store.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !w.closed {
		t.Error("Restore should close the window")
	}
	if len(w.restored) == 0 {
		t.Fatal("Restore should reset the window state")
	}
	if m, ok := w.restored[len(w.restored)-1].(map[string]any); !ok || len(m) != 0 {
		t.Errorf("expected empty-state reset, got %v", w.restored[len(w.restored)-1])
	}

	fresh := &fakeWindow{}
	NewStore(fresh, key, backend, nil).ReadSettings()
	if fresh.geometry != DefaultGeometry() {
		t.Errorf("settings should be cleared, got %+v", fresh.geometry)
	}
}

func TestCancelReappliesSavedSettings(t *testing.T) {
	backend := settings.NewMemory()
	key := testKey()

	w := &fakeWindow{geometry: Geometry{
		Size:     Size{Width: 500, Height: 300},
		Position: Position{X: 50, Y: 60},
	}}
	store := NewStore(w, key, backend, nil)
	if !store.WriteSettings() {
		t.Fatal("WriteSettings failed")
	}

	// In-session change that should be discarded.
	w.geometry = Geometry{Size: Size{Width: 1, Height: 1}, Position: Position{X: 0, Y: 0}}

	if !store.Cancel() {
		t.Error("Cancel should succeed")
	}
	if !w.closed {
		t.Error("Cancel should close the window")
	}
	if w.geometry.Size.Width != 500 || w.geometry.Position.Y != 60 {
		t.Errorf("Cancel should reapply saved geometry, got %+v", w.geometry)
	}
}

func TestGeometryOnlyWindow(t *testing.T) {
	backend := settings.NewMemory()
	key := testKey()

	w := &fakeWindow{geometry: DefaultGeometry()}
	store := NewStore(w, key, backend, nil)

	if !store.WriteSettings() {
		t.Error("WriteSettings should succeed for non-persistable windows")
	}
	if !store.ReadSettings() {
		t.Error("ReadSettings should succeed for non-persistable windows")
	}

	// No state key should have been written.
	if v := backend.Group(key.Version, "widgetState").Value("state", nil); v != nil {
		t.Errorf("unexpected state blob for geometry-only window: %v", v)
	}
}
