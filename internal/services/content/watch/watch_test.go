package watch

import (
	"bytes"
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/louisbranch/man3/internal/services/content/catalog"
)

func writeDefaultContent(t *testing.T, dir string) {
	t.Helper()
	for _, name := range []string{catalog.PracticesFile, catalog.ScenariosFile} {
		data, err := fs.ReadFile(catalog.DefaultFS(), name)
		if err != nil {
			t.Fatalf("read default %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestNewHolderDefaultsToCompiledCatalog(t *testing.T) {
	h := NewHolder(nil)
	if h.Current() != catalog.Default() {
		t.Fatal("expected default catalog")
	}
}

func TestReloadSwapsCatalog(t *testing.T) {
	dir := t.TempDir()
	writeDefaultContent(t, dir)
	h := NewHolder(nil)

	if err := h.Reload(dir); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if h.Current() == catalog.Default() {
		t.Fatal("expected freshly loaded catalog")
	}
	if got := len(h.Current().Scenarios()); got != 5 {
		t.Fatalf("scenarios = %d, want 5", got)
	}
}

func TestReloadKeepsPreviousOnInvalidContent(t *testing.T) {
	dir := t.TempDir()
	writeDefaultContent(t, dir)
	if err := os.WriteFile(filepath.Join(dir, catalog.ScenariosFile), []byte("scenarios: []\n"), 0o644); err != nil {
		t.Fatalf("write scenarios: %v", err)
	}
	h := NewHolder(nil)
	before := h.Current()

	if err := h.Reload(dir); err == nil {
		t.Fatal("expected reload error")
	}
	if h.Current() != before {
		t.Fatal("expected previous catalog to remain active")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	writeDefaultContent(t, dir)
	h := NewHolder(nil)
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, h, dir, Options{Debounce: 20 * time.Millisecond, Logger: logger})
	}()

	data, err := os.ReadFile(filepath.Join(dir, catalog.ScenariosFile))
	if err != nil {
		t.Fatalf("read scenarios: %v", err)
	}
	renamed := strings.Replace(string(data), "title: Project Kick-off Strategy", "title: Renamed Kick-off", 1)

	deadline := time.Now().Add(5 * time.Second)
	for {
		// Rewrite until the watcher has registered the directory.
		if err := os.WriteFile(filepath.Join(dir, catalog.ScenariosFile), []byte(renamed), 0o644); err != nil {
			t.Fatalf("write scenarios: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
		if scenario, ok := h.Current().Scenario("S1"); ok && scenario.Title == "Renamed Kick-off" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("catalog not reloaded; logs:\n%s", logs.String())
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchRequiresHolder(t *testing.T) {
	if err := Watch(context.Background(), nil, t.TempDir(), Options{}); err == nil {
		t.Fatal("expected error for nil holder")
	}
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{event: fsnotify.Event{Name: "/c/scenarios.yaml", Op: fsnotify.Write}, want: true},
		{event: fsnotify.Event{Name: "/c/practices.yaml", Op: fsnotify.Create}, want: true},
		{event: fsnotify.Event{Name: "/c/practices.yaml", Op: fsnotify.Chmod}, want: false},
		{event: fsnotify.Event{Name: "/c/notes.txt", Op: fsnotify.Write}, want: false},
	}
	for _, tc := range tests {
		if got := relevant(tc.event); got != tc.want {
			t.Fatalf("relevant(%v) = %v, want %v", tc.event, got, tc.want)
		}
	}
}
