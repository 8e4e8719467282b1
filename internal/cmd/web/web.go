// Package web parses web command configuration and wires the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/man3/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/man3/internal/platform/grpc"
	"github.com/louisbranch/man3/internal/platform/timeouts"
	"github.com/louisbranch/man3/internal/services/assessor"
	"github.com/louisbranch/man3/internal/services/content/watch"
	"github.com/louisbranch/man3/internal/services/simulation/runs"
	"github.com/louisbranch/man3/internal/services/web"
	"github.com/louisbranch/man3/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/man3/internal/services/workspace/app"
	"github.com/louisbranch/man3/internal/services/workspace/storage/sqlite"
)

const probeTimeout = 3 * time.Second

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string `env:"MAN3_WEB_HTTP_ADDR"        envDefault:"localhost:8080"`
	GRPCHealthAddr string `env:"MAN3_WEB_GRPC_HEALTH_ADDR"`
	// ContentDir holds practices.yaml and scenarios.yaml; empty serves the
	// compiled-in catalog without watching.
	ContentDir string `env:"MAN3_CONTENT_DIR"`
	MaxRuns    int    `env:"MAN3_WEB_MAX_RUNS"         envDefault:"256"`
	// WorkspaceDBPath is empty for an in-memory workspace.
	WorkspaceDBPath     string `env:"MAN3_WORKSPACE_DB_PATH"`
	TrustForwardedProto bool   `env:"MAN3_WEB_TRUST_FORWARDED_PROTO"`

	AssessorProvider string        `env:"MAN3_ASSESSOR_PROVIDER" envDefault:"gemini"`
	AssessorModel    string        `env:"MAN3_ASSESSOR_MODEL"`
	AssessorAPIKey   string        `env:"MAN3_ASSESSOR_API_KEY"`
	AssessorBaseURL  string        `env:"MAN3_ASSESSOR_BASE_URL"`
	AssessorTimeout  time.Duration `env:"MAN3_ASSESSOR_TIMEOUT"`

	// Probe checks the gRPC health endpoint of a running server and exits.
	Probe bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.AssessorTimeout <= 0 {
		cfg.AssessorTimeout = timeouts.AssessorRequest
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCHealthAddr, "grpc-health-addr", cfg.GRPCHealthAddr, "gRPC health listen address (disabled when empty)")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "directory with practices.yaml and scenarios.yaml, watched for changes")
	fs.IntVar(&cfg.MaxRuns, "max-runs", cfg.MaxRuns, "maximum concurrent simulation runs")
	fs.StringVar(&cfg.WorkspaceDBPath, "workspace-db", cfg.WorkspaceDBPath, "workspace SQLite path (in-memory when empty)")
	fs.StringVar(&cfg.AssessorProvider, "assessor-provider", cfg.AssessorProvider, "assessor provider: gemini or openai")
	fs.StringVar(&cfg.AssessorModel, "assessor-model", cfg.AssessorModel, "assessor model name")
	fs.BoolVar(&cfg.Probe, "probe", false, "check the gRPC health endpoint of a running server and exit")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run wires content, workspace, simulation and assessor services and serves
// the web surface until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		return serve(ctx, cfg)
	})
}

// Probe waits briefly for the web gRPC health endpoint to report SERVING.
func Probe(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.GRPCHealthAddr) == "" {
		return fmt.Errorf("probe needs MAN3_WEB_GRPC_HEALTH_ADDR or -grpc-health-addr")
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return platformgrpc.Probe(ctx, cfg.GRPCHealthAddr, web.HealthService)
}

func serve(ctx context.Context, cfg Config) error {
	logger := log.Default()

	holder := watch.NewHolder(nil)
	if dir := strings.TrimSpace(cfg.ContentDir); dir != "" {
		if err := holder.Reload(dir); err != nil {
			return fmt.Errorf("load content from %s: %w", dir, err)
		}
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := watch.Watch(watchCtx, holder, dir, watch.Options{Logger: logger}); err != nil {
				logger.Printf("content watch stopped dir=%s err=%v", dir, err)
			}
		}()
	}

	store, err := sqlite.Open(ctx, strings.TrimSpace(cfg.WorkspaceDBPath))
	if err != nil {
		return fmt.Errorf("open workspace store: %w", err)
	}
	defer store.Close()

	asker, err := newAssessor(cfg, logger)
	if err != nil {
		return err
	}

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		GRPCHealthAddr:      cfg.GRPCHealthAddr,
		Catalog:             holder,
		Runs:                runs.NewRegistry(cfg.MaxRuns),
		Workspace:           app.NewService(store),
		Assessor:            asker,
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:              logger,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func newAssessor(cfg Config, logger *log.Logger) (*assessor.Assessor, error) {
	provider, err := assessor.NewProvider(assessor.ProviderConfig{
		Name:    cfg.AssessorProvider,
		APIKey:  cfg.AssessorAPIKey,
		BaseURL: cfg.AssessorBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init assessor: %w", err)
	}
	a := assessor.New(assessor.Config{
		Provider: provider,
		Model:    cfg.AssessorModel,
		Timeout:  cfg.AssessorTimeout,
		Logger:   logger,
	})
	if !a.Available() {
		logger.Printf("assessor unavailable provider=%s: set MAN3_ASSESSOR_API_KEY to enable answers", a.ProviderName())
	}
	return a, nil
}
