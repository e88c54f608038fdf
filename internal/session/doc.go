// Package session persists and restores a window's geometry together with
// an opaque, window-supplied state blob, keyed by tool identity
// (company + tool + version).
//
// The store never interprets blob contents: windows that implement
// Persistable hand it an arbitrary serializable value, which is JSON
// encoded, gzip compressed, and written next to the geometry. Blob
// failures are non-fatal; geometry handling always proceeds and the
// failure is reported through the logger, with callers receiving only a
// boolean result.
package session
