// Package appearance manages visual treatments for widget descriptions.
//
// A Style is a tagged variant selected at construction time: no styling,
// stylesheet text, a palette, a native style factory name, or a custom
// paint routine. Styles are applied through an explicit Context rather
// than process-wide application state, so components that need to apply
// or query styling receive the context they should use.
//
// No rendering happens here; widgets are plain descriptions and custom
// paint routines draw into a recording canvas.
package appearance
