// Package dashboard serves the MAN.3 command center.
package dashboard

import (
	"net/http"

	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// Module provides dashboard routes.
type Module struct {
	reader ProjectReader
	deps   module.Dependencies
}

// New returns a dashboard module reading the workspace through reader.
func New(reader ProjectReader, deps module.Dependencies) Module {
	return Module{reader: reader, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.reader), m.deps))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
