// Package copilot serves the AI Assessor chat: a page, an HTMX ask endpoint,
// and a websocket for clients that stay connected.
package copilot

import (
	"net/http"

	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// Module provides copilot routes.
type Module struct {
	asker  Asker
	policy requestmeta.SchemePolicy
	deps   module.Dependencies
}

// New returns a copilot module answering through asker.
func New(asker Asker, policy requestmeta.SchemePolicy, deps module.Dependencies) Module {
	return Module{asker: asker, policy: policy, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "copilot" }

// Mount wires copilot route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.asker), m.policy, m.deps))
	return module.Mount{Prefix: routepath.CopilotPrefix, Handler: mux}, nil
}

// Healthy reports whether a real assessor provider is configured.
func (m Module) Healthy() bool {
	return m.asker != nil && m.asker.Available()
}
