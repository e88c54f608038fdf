package session

// Key identifies a settings namespace for one tool.
type Key struct {
	Company string `json:"company"`
	Tool    string `json:"tool"`
	Version string `json:"version"`
}

// Size represents window dimensions.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Position represents window position on screen.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Geometry aggregates a window's size and position.
type Geometry struct {
	Size     Size     `json:"size"`
	Position Position `json:"position"`
}

// DefaultGeometry returns the geometry applied when no record exists.
func DefaultGeometry() Geometry {
	return Geometry{
		Size:     Size{Width: 400, Height: 200},
		Position: Position{X: 200, Y: 200},
	}
}

// Window is the host window collaborator. Implementations are expected to
// be driven from a single UI goroutine; the store adds no locking.
type Window interface {
	Geometry() Geometry
	SetGeometry(Geometry)
	Close()
}

// Persistable is the optional capability a window implements to carry
// internal state across sessions. The store checks for it with a type
// assertion; windows without it get geometry-only persistence.
type Persistable interface {
	// SaveState collects internal data to save.
	SaveState() (any, error)

	// RestoreState loads previously saved internal data. An empty map
	// means "reset to a blank state".
	RestoreState(data any) error
}
