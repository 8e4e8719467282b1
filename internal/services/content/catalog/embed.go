package catalog

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed data/*.yaml
var dataFS embed.FS

//go:embed schemas/*.json
var schemaFS embed.FS

var defaultCatalog = mustLoadDefault()

// DefaultFS exposes the compiled-in YAML files, e.g. to seed a content
// directory.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(fmt.Sprintf("catalog: sub data fs: %v", err))
	}
	return sub
}

func mustLoadDefault() *Catalog {
	c, err := Load(DefaultFS())
	if err != nil {
		panic(fmt.Sprintf("catalog: load default: %v", err))
	}
	return c
}
