package appearance

import (
	"fmt"
	"os"
)

// Kind discriminates the style variants.
type Kind int

const (
	KindDefault Kind = iota
	KindStyleSheet
	KindPalette
	KindNative
	KindCustomPaint
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindStyleSheet:
		return "stylesheet"
	case KindPalette:
		return "palette"
	case KindNative:
		return "native"
	case KindCustomPaint:
		return "custompaint"
	}
	return "unknown"
}

// PaintFunc is a custom paint routine drawing into a recording canvas.
type PaintFunc func(c *Canvas, w Widget)

// Style is a tagged variant describing one visual treatment. The variant
// is fixed at construction; only the payload matching the kind is set.
type Style struct {
	kind    Kind
	sheet   string
	palette Palette
	native  string
	paint   PaintFunc
}

// Default returns the no-op style: the platform look, untouched.
func Default() Style {
	return Style{kind: KindDefault}
}

// StyleSheet returns a style carrying stylesheet text.
func StyleSheet(text string) Style {
	return Style{kind: KindStyleSheet, sheet: text}
}

// PaletteStyle returns a style carrying a palette.
func PaletteStyle(p Palette) Style {
	return Style{kind: KindPalette, palette: p}
}

// Native returns a style naming a native style factory, e.g. "fusion".
func Native(name string) Style {
	return Style{kind: KindNative, native: name}
}

// CustomPaint returns a style carrying a custom paint routine.
func CustomPaint(fn PaintFunc) Style {
	return Style{kind: KindCustomPaint, paint: fn}
}

// Kind reports the variant.
func (s Style) Kind() Kind { return s.kind }

// Sheet returns the stylesheet text; empty unless KindStyleSheet.
func (s Style) Sheet() string { return s.sheet }

// Palette returns the palette; zero unless KindPalette.
func (s Style) Palette() Palette { return s.palette }

// NativeName returns the native factory name; empty unless KindNative.
func (s Style) NativeName() string { return s.native }

// Paint returns the paint routine; nil unless KindCustomPaint.
func (s Style) Paint() PaintFunc { return s.paint }

// LoadSheet reads stylesheet text from disk. A missing file is an error;
// the caller decides whether to fall back to the default style.
func LoadSheet(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read stylesheet %s: %w", path, err)
	}
	return string(data), nil
}
