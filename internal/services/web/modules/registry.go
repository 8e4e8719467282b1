package modules

import (
	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/modules/copilot"
	"github.com/louisbranch/man3/internal/services/web/modules/dashboard"
	"github.com/louisbranch/man3/internal/services/web/modules/practices"
	"github.com/louisbranch/man3/internal/services/web/modules/public"
	"github.com/louisbranch/man3/internal/services/web/modules/simulation"
	"github.com/louisbranch/man3/internal/services/web/modules/workspace"
)

// DefaultAppModules returns the modules mounted under /app/.
func DefaultAppModules(deps Dependencies, shared module.Dependencies) []Module {
	var store simulation.RunStore
	if deps.Runs != nil {
		store = deps.Runs
	}
	var reader dashboard.ProjectReader
	if deps.Workspace != nil {
		reader = deps.Workspace
	}
	return []Module{
		dashboard.New(reader, shared),
		workspace.New(deps.Workspace, shared),
		practices.New(deps.Catalog, shared),
		simulation.New(store, deps.Catalog, deps.RequestSchemePolicy, shared),
		copilot.New(deps.Assessor, deps.RequestSchemePolicy, shared),
	}
}

// DefaultPublicModules returns the modules mounted outside /app/. Health
// lists every app module that can report degradation.
func DefaultPublicModules(appModules []Module, shared module.Dependencies) []Module {
	reports := make(map[string]module.HealthReporter)
	for _, m := range appModules {
		if reporter, ok := m.(module.HealthReporter); ok {
			reports[m.ID()] = reporter
		}
	}
	return []Module{public.New(shared, reports)}
}
