// Package store provides file-based persistence for trychooser.
//
// StateFileStore keeps the selection state of every definition the user has
// worked with in a single states.json under the configured home directory,
// keyed by definition fingerprint. SessionFileStore maps chooserd server URLs
// to the session the CLI last drove there (sessions.json).
//
// Writes go through a temp file and an atomic rename; all methods are
// concurrency-safe via internal locking.
package store
