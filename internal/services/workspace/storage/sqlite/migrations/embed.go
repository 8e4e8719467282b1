// Package migrations embeds the workspace schema.
package migrations

import "embed"

// FS holds the workspace migration files.
//
//go:embed *.sql
var FS embed.FS
