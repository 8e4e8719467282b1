// Package practices serves the Process Academy: the MAN.3 base practice
// reference cards.
package practices

import (
	"net/http"

	"github.com/louisbranch/man3/internal/services/content/catalog"
	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// CatalogSource yields the current content catalog. watch.Holder satisfies
// it, so edits on disk show up without a restart.
type CatalogSource interface {
	Current() *catalog.Catalog
}

// Module provides practice reference routes.
type Module struct {
	source CatalogSource
	deps   module.Dependencies
}

// New returns a practices module.
func New(source CatalogSource, deps module.Dependencies) Module {
	return Module{source: source, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "practices" }

// Mount wires practice route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.source), m.deps))
	return module.Mount{Prefix: routepath.PracticesPrefix, Handler: mux}, nil
}
