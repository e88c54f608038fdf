// Package settings provides the scoped key-value store that backs session
// persistence. A Backend holds one namespace (company + tool); groups nest
// by slash-joined path the way desktop settings stores scope keys.
//
// Three backends are available: an in-memory store for tests, a TOML file
// per namespace, and a shared sqlite database. The session layer depends
// only on the key-value contract, not on the storage format.
package settings
