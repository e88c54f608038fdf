package editor

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/glintlab/glint/internal/infrastructure/logging"
	"github.com/glintlab/glint/internal/recent"
	"github.com/glintlab/glint/internal/session"
)

// Tool identity for the editor demo's settings namespace.
const (
	CompanyName = "XYZ-Company"
	ToolName    = "TextEditExample"
	ToolVersion = "0.0.1"
)

// CloseAnswer is the user's decision when closing with unsaved changes.
type CloseAnswer int

const (
	AnswerSave CloseAnswer = iota
	AnswerDiscard
	AnswerCancel
)

// PromptFunc asks the user what to do with unsaved changes.
type PromptFunc func() CloseAnswer

// Window is the headless main-window model of the editor demo. It
// implements session.Window and session.Persistable: geometry goes into
// the settings record directly, while the recent-files list, last file,
// and font travel in the opaque state blob.
type Window struct {
	id       string
	geometry session.Geometry
	doc      Document
	recent   *recent.Tracker
	menu     *recent.MenuModel
	font     string
	prompt   PromptFunc
	closed   bool
	logger   *logging.Logger
}

// NewWindow creates an editor window with an empty document.
func NewWindow(maxRecent int, logger *logging.Logger) *Window {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Window{
		id:       uuid.New().String(),
		geometry: session.DefaultGeometry(),
		recent:   recent.NewTracker(maxRecent),
		menu:     recent.NewMenuModel(maxRecent),
		font:     "",
		logger:   logger,
	}
}

// ID returns the window's instance ID.
func (w *Window) ID() string { return w.id }

// Geometry returns the current window geometry.
func (w *Window) Geometry() session.Geometry { return w.geometry }

// SetGeometry moves and resizes the window.
func (w *Window) SetGeometry(g session.Geometry) { w.geometry = g }

// SetPrompt installs the unsaved-changes prompt.
func (w *Window) SetPrompt(p PromptFunc) { w.prompt = p }

// Close closes the window. With unsaved changes and a prompt installed,
// the user decides: save first, discard, or keep the window open.
func (w *Window) Close() {
	if w.doc.Modified() && w.prompt != nil {
		switch w.prompt() {
		case AnswerSave:
			if err := w.doc.Save(); err != nil {
				w.logger.Error("failed to save on close",
					zap.String("path", w.doc.Path()),
					zap.Error(err))
			}
		case AnswerCancel:
			return
		}
	}
	w.closed = true
}

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool { return w.closed }

// Document returns the window's document.
func (w *Window) Document() *Document { return &w.doc }

// Recent returns the window's recent-files tracker.
func (w *Window) Recent() *recent.Tracker { return w.recent }

// Menu returns the recent-files menu model.
func (w *Window) Menu() *recent.MenuModel { return w.menu }

// SetFont selects the editor font family.
func (w *Window) SetFont(family string) { w.font = family }

// Font returns the selected font family.
func (w *Window) Font() string { return w.font }

// OpenFile loads a file into the document and records it as recently
// opened. Missing or binary files abort the open and the recent list is
// left unchanged.
func (w *Window) OpenFile(path string) error {
	if err := w.doc.Load(path); err != nil {
		return err
	}
	w.recent.Record(path)
	w.menu.Sync(w.recent)
	return nil
}

// OpenRecent opens the i-th entry of the recent-files list.
func (w *Window) OpenRecent(i int) error {
	entries := w.recent.Entries()
	if i < 0 || i >= len(entries) {
		return fmt.Errorf("no recent file at index %d", i)
	}
	return w.OpenFile(entries[i].Path)
}

// SaveState collects internal data for the session blob.
func (w *Window) SaveState() (any, error) {
	return map[string]any{
		"recentFiles": w.recent.Paths(),
		"lastFile":    w.doc.Path(),
		"fontFamily":  w.font,
	}, nil
}

// RestoreState rehydrates internal data from the session blob. An empty
// map resets the window to a blank state.
func (w *Window) RestoreState(data any) error {
	w.recent.Reset()
	w.font = ""

	if data == nil {
		w.menu.Sync(w.recent)
		return nil
	}

	state, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected state shape %T", data)
	}

	// Decoded blobs carry []any; state handed back unserialized keeps []string.
	var paths []string
	switch v := state["recentFiles"].(type) {
	case []string:
		paths = v
	case []any:
		for _, item := range v {
			if p, ok := item.(string); ok {
				paths = append(paths, p)
			}
		}
	}
	// Recorded most recent first; replay oldest first to rebuild order.
	for i := len(paths) - 1; i >= 0; i-- {
		if paths[i] != "" {
			w.recent.Record(paths[i])
		}
	}
	if font, ok := state["fontFamily"].(string); ok {
		w.font = font
	}
	if last, ok := state["lastFile"].(string); ok && last != "" {
		// The file may have moved since the last session; keep the blank
		// document in that case.
		if err := w.doc.Load(last); err != nil {
			w.logger.Warn("could not reopen last file",
				zap.String("path", last),
				zap.Error(err))
		}
	}

	w.menu.Sync(w.recent)
	return nil
}
