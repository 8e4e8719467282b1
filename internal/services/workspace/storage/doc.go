// Package storage declares persistence contracts for the project workspace.
//
// Workspace data lives only for the process lifetime; the contracts exist so
// the app layer can be tested without SQLite and so the backing store can
// change without touching callers.
package storage
