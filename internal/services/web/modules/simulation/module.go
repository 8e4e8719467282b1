// Package simulation serves the Proving Grounds: one decision simulation run
// per browser, bound through the run cookie.
package simulation

import (
	"net/http"

	"github.com/louisbranch/man3/internal/services/content/catalog"
	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// CatalogSource yields the current content catalog.
type CatalogSource interface {
	Current() *catalog.Catalog
}

// Module provides simulation routes.
type Module struct {
	runs   RunStore
	source CatalogSource
	policy requestmeta.SchemePolicy
	deps   module.Dependencies
}

// New returns a simulation module storing runs in store.
func New(store RunStore, source CatalogSource, policy requestmeta.SchemePolicy, deps module.Dependencies) Module {
	return Module{runs: store, source: source, policy: policy, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "simulation" }

// Mount wires simulation route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.runs, m.source), m.policy, m.deps))
	return module.Mount{Prefix: routepath.SimulationPrefix, Handler: mux}, nil
}
