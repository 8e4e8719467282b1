// Package mcp parses MCP command configuration and runs the stdio server.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	platformcmd "github.com/louisbranch/man3/internal/platform/cmd"
	"github.com/louisbranch/man3/internal/services/content/watch"
	mcpservice "github.com/louisbranch/man3/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	// ContentDir holds practices.yaml and scenarios.yaml; empty serves the
	// compiled-in catalog.
	ContentDir string `env:"MAN3_CONTENT_DIR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "directory with practices.yaml and scenarios.yaml, watched for changes")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the MCP tools on stdio until the client disconnects or ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		holder, err := loadCatalog(ctx, cfg.ContentDir)
		if err != nil {
			return err
		}
		return mcpservice.Run(ctx, mcpservice.Config{Catalog: holder})
	})
}

func loadCatalog(ctx context.Context, dir string) (*watch.Holder, error) {
	holder := watch.NewHolder(nil)
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return holder, nil
	}
	if err := holder.Reload(dir); err != nil {
		return nil, fmt.Errorf("load content from %s: %w", dir, err)
	}
	go func() {
		if err := watch.Watch(ctx, holder, dir, watch.Options{}); err != nil {
			log.Printf("content watch stopped dir=%s err=%v", dir, err)
		}
	}()
	return holder, nil
}
