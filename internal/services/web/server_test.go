package web

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	platformgrpc "github.com/louisbranch/man3/internal/platform/grpc"
	"github.com/louisbranch/man3/internal/services/content/catalog"
	"github.com/louisbranch/man3/internal/services/content/watch"
	"github.com/louisbranch/man3/internal/services/simulation/runs"
	"github.com/louisbranch/man3/internal/services/workspace/app"
	"github.com/louisbranch/man3/internal/services/workspace/storage/sqlite"
)

func newTestConfig(t *testing.T) Config {
	t.Helper()
	store, err := sqlite.Open(context.Background(), "")
	if err != nil {
		t.Fatalf("open workspace store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return Config{
		HTTPAddr:  "127.0.0.1:0",
		Catalog:   watch.NewHolder(catalog.Default()),
		Runs:      runs.NewRegistry(8),
		Workspace: app.NewService(store),
		Logger:    log.New(io.Discard, "", 0),
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(newTestConfig(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestStaticAssetsServed(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	for _, tc := range []struct {
		path        string
		contentType string
	}{
		{path: "/static/app.css", contentType: "text/css"},
		{path: "/static/app.js", contentType: "javascript"},
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", tc.path, rr.Code, http.StatusOK)
		}
		if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, tc.contentType) {
			t.Fatalf("%s content-type = %q, want %q", tc.path, ct, tc.contentType)
		}
	}
}

func TestRootRedirectsToDashboard(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/app/dashboard" {
		t.Fatalf("location = %q, want %q", got, "/app/dashboard")
	}
}

func TestDashboardShowsWorkspaceManager(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/dashboard", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "John Doe") {
		t.Fatalf("dashboard missing manager badge: %s", body)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestHealthListsDegradedAssessor(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var payload struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if payload.Status != "ok" {
		t.Fatalf("status = %q, want ok", payload.Status)
	}
	if payload.Components["workspace"] != "ok" || payload.Components["copilot"] != "degraded" {
		t.Fatalf("components = %v", payload.Components)
	}
}

func TestResponsesAreGzippedWhenAccepted(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/app/practices", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("content-encoding = %q, want gzip", got)
	}
}

func TestSimulationRoundTripThroughRootHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/app/simulation/start", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `data-phase="awaiting_choice"`) {
		t.Fatalf("expected a scenario stage: %s", rr.Body.String())
	}
	if len(rr.Result().Cookies()) == 0 {
		t.Fatal("expected run cookie")
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for missing http address")
	}
}

func TestServerServesGRPCHealth(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.GRPCHealthAddr = "127.0.0.1:0"
	server, err := NewServer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(server.Close)
	if server.HealthAddr() == "" {
		t.Fatal("expected bound health address")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()

	probeCtx, probeCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer probeCancel()
	if err := platformgrpc.Probe(probeCtx, server.HealthAddr(), HealthService); err != nil {
		t.Fatalf("probe health: %v", err)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), newTestConfig(t))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

func TestNilServerListenAndServe(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	server.Close()
}
