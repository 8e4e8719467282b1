package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	platformgrpc "github.com/louisbranch/man3/internal/platform/grpc"
	"github.com/louisbranch/man3/internal/platform/timeouts"
	"github.com/louisbranch/man3/internal/services/simulation/runs"
	webapp "github.com/louisbranch/man3/internal/services/web/app"
	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/modules"
	"github.com/louisbranch/man3/internal/services/web/modules/copilot"
	"github.com/louisbranch/man3/internal/services/web/modules/practices"
	"github.com/louisbranch/man3/internal/services/web/modules/workspace"
	"github.com/louisbranch/man3/internal/services/web/platform/httpx"
	"github.com/louisbranch/man3/internal/services/web/platform/observability"
	"github.com/louisbranch/man3/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/man3/internal/services/web/routepath"
	webstatic "github.com/louisbranch/man3/internal/services/web/static"
)

// HealthService is the gRPC health service name reported by the web server.
const HealthService = "man3.web"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// GRPCHealthAddr enables a gRPC health endpoint when set.
	GRPCHealthAddr string

	Catalog   practices.CatalogSource
	Runs      *runs.Registry
	Workspace workspace.Editor
	Assessor  copilot.Asker

	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server

	grpcListener net.Listener
	grpcServer   *grpc.Server
	health     *health.Server
	logger     *log.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	shared := module.Dependencies{ResolveManager: managerResolver(cfg.Workspace)}
	appModules := modules.DefaultAppModules(modules.Dependencies{
		Catalog:             cfg.Catalog,
		Runs:                cfg.Runs,
		Workspace:           cfg.Workspace,
		Assessor:            cfg.Assessor,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	}, shared)
	h, err := webapp.BuildRootHandler(webapp.Config{
		PublicModules:       modules.DefaultPublicModules(appModules, shared),
		AppModules:          appModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.Compress(),
	), nil
}

// managerResolver labels the sidebar with the workspace project manager.
func managerResolver(editor workspace.Editor) module.ResolveManager {
	if editor == nil {
		return nil
	}
	return func(r *http.Request) string {
		project, err := editor.Project(r.Context())
		if err != nil {
			return ""
		}
		return project.Info.Manager
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	server := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logger,
	}
	if grpcAddr := strings.TrimSpace(cfg.GRPCHealthAddr); grpcAddr != "" {
		listener, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			return nil, fmt.Errorf("listen grpc health on %s: %w", grpcAddr, err)
		}
		server.grpcListener = listener
		server.grpcServer, server.health = platformgrpc.NewHealthServer(HealthService)
	}
	return server, nil
}

// HealthAddr returns the bound gRPC health address, or "" when disabled.
func (s *Server) HealthAddr() string {
	if s == nil || s.grpcListener == nil {
		return ""
	}
	return s.grpcListener.Addr().String()
}

// ListenAndServe serves HTTP traffic, and gRPC health when configured, until
// context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 2)
	if s.grpcServer != nil {
		s.logger.Printf("grpc health listening addr=%s", s.HealthAddr())
		go func() {
			if err := s.grpcServer.Serve(s.grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				serveErr <- fmt.Errorf("serve grpc health: %w", err)
			}
		}()
	}
	s.logger.Printf("web listening addr=%s", s.httpAddr)
	go func() {
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			serveErr <- nil
			return
		}
		serveErr <- fmt.Errorf("serve web http: %w", err)
	}()

	select {
	case <-ctx.Done():
		s.stopHealth()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		s.stopHealth()
		_ = s.httpServer.Close()
		return err
	}
}

func (s *Server) stopHealth() {
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.grpcListener != nil {
		_ = s.grpcListener.Close()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
}
