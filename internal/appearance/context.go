package appearance

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/glintlab/glint/internal/infrastructure/logging"
)

// Widget is a plain description of a widget for styling purposes. The
// context stamps styling onto it; no layout or rendering is implied.
type Widget struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"` // "button", "lineedit", "combobox", ...
	ObjectName string         `json:"object_name,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// errorObjectName is stamped onto widgets flagged for error styling so
// stylesheet selectors can target them.
const errorObjectName = "ErrorWidget"

// Context holds the active style and per-widget error flags for one
// application. It replaces process-wide style state: whichever component
// needs to apply or query styling is handed a *Context.
type Context struct {
	mu      sync.RWMutex
	styles  map[string]Style
	current string
	errored map[string]bool
	logger  *logging.Logger
}

// NewContext creates a context with the default style registered and
// active.
func NewContext(logger *logging.Logger) *Context {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Context{
		styles:  map[string]Style{"default": Default()},
		current: "default",
		errored: make(map[string]bool),
		logger:  logger,
	}
}

// Register adds (or replaces) a named style.
func (c *Context) Register(name string, s Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.styles[name] = s
}

// Names lists the registered style names, sorted.
func (c *Context) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.styles))
	for n := range c.styles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Activate makes the named style current.
func (c *Context) Activate(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.styles[name]; !ok {
		return fmt.Errorf("unknown style: %s", name)
	}
	c.current = name
	c.logger.Info("style activated", zap.String("style", name))
	return nil
}

// Current returns the active style name and variant.
func (c *Context) Current() (string, Style) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.styles[c.current]
}

// MarkError flags a widget for error styling until cleared.
func (c *Context) MarkError(widgetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errored[widgetID] = true
}

// ClearError removes a widget's error flag.
func (c *Context) ClearError(widgetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.errored, widgetID)
}

// HasError reports whether a widget is flagged.
func (c *Context) HasError(widgetID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errored[widgetID]
}

// Apply stamps the active style and any error flag onto the widget
// description. Error marking sets the hasError property and retargets the
// object name so stylesheet selectors pick the widget up.
func (c *Context) Apply(w *Widget) {
	c.mu.RLock()
	style := c.styles[c.current]
	flagged := c.errored[w.ID]
	c.mu.RUnlock()

	if w.Properties == nil {
		w.Properties = make(map[string]any)
	}

	switch style.Kind() {
	case KindDefault:
		delete(w.Properties, "stylesheet")
		delete(w.Properties, "palette")
		delete(w.Properties, "nativeStyle")
	case KindStyleSheet:
		w.Properties["stylesheet"] = style.Sheet()
	case KindPalette:
		w.Properties["palette"] = style.Palette().ID
	case KindNative:
		w.Properties["nativeStyle"] = style.NativeName()
	case KindCustomPaint:
		// Nothing to stamp; Paint draws at render time.
	}

	if flagged {
		w.Properties["hasError"] = true
		w.ObjectName = errorObjectName
	}
}

// Repolish re-applies the active style to widgets whose flags changed
// while visible, the analog of an unpolish/polish cycle.
func (c *Context) Repolish(ws ...*Widget) {
	for _, w := range ws {
		c.Apply(w)
	}
}

// Render runs the active style's paint routine over the widgets,
// returning the recorded canvas. Non-paint styles record nothing.
func (c *Context) Render(ws ...Widget) *Canvas {
	_, style := c.Current()
	canvas := &Canvas{}
	if style.Kind() != KindCustomPaint || style.Paint() == nil {
		return canvas
	}
	for _, w := range ws {
		style.Paint()(canvas, w)
	}
	return canvas
}
