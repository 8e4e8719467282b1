// Package sqlite provides the workspace store backed by SQLite.
//
// The default path is an in-memory database, so workspace edits last as long
// as the process. A file path may be supplied for local experimentation.
package sqlite
