package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func startHealthServer(t *testing.T, services ...string) (string, func(string, grpc_health_v1.HealthCheckResponse_ServingStatus)) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server, healthServer := NewHealthServer(services...)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()
	t.Cleanup(func() {
		server.GracefulStop()
		select {
		case <-serveErr:
		case <-time.After(2 * time.Second):
		}
	})
	return listener.Addr().String(), healthServer.SetServingStatus
}

func TestProbeServing(t *testing.T) {
	addr, _ := startHealthServer(t, "man3.test")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, service := range []string{"", "man3.test"} {
		if err := Probe(ctx, addr, service); err != nil {
			t.Fatalf("probe %q: %v", service, err)
		}
	}
}

func TestProbeWaitsForTransition(t *testing.T) {
	addr, setStatus := startHealthServer(t)
	setStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	go func() {
		time.Sleep(200 * time.Millisecond)
		setStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Probe(ctx, addr, ""); err != nil {
		t.Fatalf("probe after transition: %v", err)
	}
}

func TestProbeRespectsContext(t *testing.T) {
	addr, _ := startHealthServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	if err := Probe(ctx, addr, "unknown.service"); err == nil {
		t.Fatal("expected context error, got nil")
	}
}

func TestProbeRequiresAddress(t *testing.T) {
	if err := Probe(context.Background(), " ", ""); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestWaitForHealthRequiresConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}
