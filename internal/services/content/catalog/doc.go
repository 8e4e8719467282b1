// Package catalog loads the static MAN.3 reference content: the base
// practices and the decision simulation scenarios.
//
// Content is authored as YAML, checked against an embedded JSON Schema, and
// decoded into typed values. A compiled-in default catalog is always
// available; Load reads an alternative copy from any fs.FS so content can be
// edited without a rebuild.
package catalog
