// Package runs keeps one simulation engine per player, addressed by an
// opaque run ID that the web layer stores in a cookie.
package runs

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"

	"github.com/louisbranch/man3/internal/platform/id"
	"github.com/louisbranch/man3/internal/services/simulation/engine"
)

// DefaultCapacity bounds the number of live runs when none is configured.
const DefaultCapacity = 256

// ErrRunNotFound indicates an unknown or evicted run ID.
var ErrRunNotFound = errors.New("simulation run not found")

// Run wraps one engine with the lock that serializes access to it.
type Run struct {
	id        string
	createdAt time.Time

	mu     sync.Mutex
	engine *engine.Engine
}

// ID returns the opaque run identifier.
func (r *Run) ID() string {
	return r.id
}

// CreatedAt returns when the run was created.
func (r *Run) CreatedAt() time.Time {
	return r.createdAt
}

// Do runs fn with exclusive access to the engine and returns a snapshot taken
// under the same lock.
func (r *Run) Do(fn func(*engine.Engine) error) (engine.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := fn(r.engine)
	return r.engine.Snapshot(), err
}

// Snapshot returns the current engine view.
func (r *Run) Snapshot() engine.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engine.Snapshot()
}

// Registry holds live runs, evicting the least recently used run once
// capacity is reached.
type Registry struct {
	mu    sync.Mutex
	cache *lru.Cache

	now   func() time.Time
	newID func() (string, error)
}

// NewRegistry builds a registry bounded to capacity runs.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		cache: lru.New(capacity),
		now:   time.Now,
		newID: id.NewID,
	}
}

// Create starts tracking a new run over its own copy of scenarios. The run
// is not started; callers decide when to call Start.
func (r *Registry) Create(scenarios []engine.Scenario) (*Run, error) {
	runID, err := r.newID()
	if err != nil {
		return nil, fmt.Errorf("create run id: %w", err)
	}
	run := &Run{id: runID, createdAt: r.now().UTC(), engine: engine.New(scenarios)}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Add(runID, run)
	return run, nil
}

// Get returns a live run and marks it recently used.
func (r *Registry) Get(runID string) (*Run, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, ErrRunNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.cache.Get(runID)
	if !ok {
		return nil, ErrRunNotFound
	}
	return value.(*Run), nil
}

// Restart replaces the run stored under runID with a fresh engine over
// scenarios, keeping the ID. Unknown IDs get a newly created run instead.
func (r *Registry) Restart(runID string, scenarios []engine.Scenario) (*Run, error) {
	runID = strings.TrimSpace(runID)
	r.mu.Lock()
	_, known := r.cache.Get(runID)
	r.mu.Unlock()
	if runID == "" || !known {
		return r.Create(scenarios)
	}

	run := &Run{id: runID, createdAt: r.now().UTC(), engine: engine.New(scenarios)}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Add(runID, run)
	return run, nil
}

// Remove forgets a run. Unknown IDs are ignored.
func (r *Registry) Remove(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Remove(runID)
}

// Len returns the number of live runs.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}
