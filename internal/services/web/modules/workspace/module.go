// Package workspace serves the project data editor: project info, work
// products, the risk register, and the schedule.
package workspace

import (
	"net/http"

	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// Module provides workspace routes.
type Module struct {
	editor Editor
	deps   module.Dependencies
}

// New returns a workspace module editing through editor.
func New(editor Editor, deps module.Dependencies) Module {
	return Module{editor: editor, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "workspace" }

// Mount wires workspace route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.editor), m.deps))
	return module.Mount{Prefix: routepath.WorkspacePrefix, Handler: mux}, nil
}

// Healthy reports whether a workspace editor is wired.
func (m Module) Healthy() bool {
	return m.editor != nil
}
