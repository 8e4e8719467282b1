package mcp

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ContentDir != "" {
		t.Fatalf("expected empty content dir, got %q", cfg.ContentDir)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("MAN3_CONTENT_DIR", "/env/content")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ContentDir != "/env/content" {
		t.Fatalf("expected env content dir, got %q", cfg.ContentDir)
	}

	fs = flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"-content-dir", "/flag/content"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ContentDir != "/flag/content" {
		t.Fatalf("expected flag content dir, got %q", cfg.ContentDir)
	}
}

func TestLoadCatalogWithoutDirUsesDefault(t *testing.T) {
	holder, err := loadCatalog(context.Background(), "")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(holder.Current().Practices()) != 10 {
		t.Fatalf("practices = %d, want 10", len(holder.Current().Practices()))
	}
}

func TestLoadCatalogRejectsInvalidDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "practices.yaml"), []byte("practices: []\n"), 0o600); err != nil {
		t.Fatalf("write practices: %v", err)
	}
	if _, err := loadCatalog(context.Background(), dir); err == nil {
		t.Fatal("expected error for missing scenarios file")
	}
}
