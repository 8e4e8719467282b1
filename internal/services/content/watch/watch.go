// Package watch keeps the active content catalog and swaps it when the
// content directory changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/louisbranch/man3/internal/services/content/catalog"
)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 250 * time.Millisecond

// Holder publishes the current catalog to concurrent readers.
type Holder struct {
	current atomic.Pointer[catalog.Catalog]
}

// NewHolder returns a holder serving initial, or the default catalog when
// initial is nil.
func NewHolder(initial *catalog.Catalog) *Holder {
	if initial == nil {
		initial = catalog.Default()
	}
	h := &Holder{}
	h.current.Store(initial)
	return h
}

// Current returns the active catalog.
func (h *Holder) Current() *catalog.Catalog {
	return h.current.Load()
}

// Reload loads dir and swaps it in. On error the active catalog is kept.
func (h *Holder) Reload(dir string) error {
	c, err := catalog.Load(os.DirFS(dir))
	if err != nil {
		return err
	}
	h.current.Store(c)
	return nil
}

// Options tunes Watch.
type Options struct {
	// Debounce delays a reload until events stop arriving; zero means
	// DefaultDebounce.
	Debounce time.Duration
	// Logger receives reload results; nil means log.Default().
	Logger *log.Logger
}

// Watch reloads the catalog from dir whenever a content file is written,
// created, or renamed into place. It blocks until ctx is done.
func Watch(ctx context.Context, h *Holder, dir string, opts Options) error {
	if h == nil {
		return errors.New("catalog holder is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch content dir %s: %w", dir, err)
	}
	logger.Printf("content watcher started dir=%s", dir)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("content watcher error: %v", err)
		case <-timer.C:
			if err := h.Reload(dir); err != nil {
				logger.Printf("content reload rejected dir=%s err=%v", dir, err)
				continue
			}
			logger.Printf("content reloaded dir=%s scenarios=%d practices=%d",
				dir, len(h.Current().Scenarios()), len(h.Current().Practices()))
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Base(event.Name) {
	case catalog.PracticesFile, catalog.ScenariosFile:
		return true
	default:
		return false
	}
}
