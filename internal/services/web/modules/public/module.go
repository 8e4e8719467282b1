// Package public serves the routes outside /app/: the root redirect and the
// health probe.
package public

import (
	"net/http"

	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// Module provides public routes.
type Module struct {
	deps    module.Dependencies
	reports map[string]module.HealthReporter
}

// New returns the public module. reports name the components listed by the
// health endpoint.
func New(deps module.Dependencies, reports map[string]module.HealthReporter) Module {
	return Module{deps: deps, reports: reports}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.reports), m.deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
