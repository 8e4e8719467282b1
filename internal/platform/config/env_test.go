package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Addr     string        `env:"MAN3_TEST_ADDR" envDefault:"localhost:8080"`
	MaxRuns  int           `env:"MAN3_TEST_MAX_RUNS" envDefault:"256"`
	Timeout  time.Duration `env:"MAN3_TEST_TIMEOUT" envDefault:"30s"`
	Disabled bool          `env:"MAN3_TEST_DISABLED"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:8080" {
		t.Fatalf("addr = %q, want %q", cfg.Addr, "localhost:8080")
	}
	if cfg.MaxRuns != 256 {
		t.Fatalf("max runs = %d, want 256", cfg.MaxRuns)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %s, want 30s", cfg.Timeout)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("MAN3_TEST_ADDR", "0.0.0.0:9000")
	t.Setenv("MAN3_TEST_DISABLED", "true")
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "0.0.0.0:9000" {
		t.Fatalf("addr = %q, want %q", cfg.Addr, "0.0.0.0:9000")
	}
	if !cfg.Disabled {
		t.Fatal("expected disabled flag from env")
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MAN3_TEST_MAX_RUNS", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestEnvName(t *testing.T) {
	tests := map[string]string{
		"otel_endpoint":     "MAN3_OTEL_ENDPOINT",
		" WEB_HTTP_ADDR ":   "MAN3_WEB_HTTP_ADDR",
		"MAN3_OTEL_ENABLED": "MAN3_OTEL_ENABLED",
	}
	for input, want := range tests {
		if got := EnvName(input); got != want {
			t.Fatalf("EnvName(%q) = %q, want %q", input, got, want)
		}
	}
}
