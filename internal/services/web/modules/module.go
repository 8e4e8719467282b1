// Package modules assembles the web feature modules.
package modules

import (
	"github.com/louisbranch/man3/internal/services/simulation/runs"
	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/modules/copilot"
	"github.com/louisbranch/man3/internal/services/web/modules/practices"
	"github.com/louisbranch/man3/internal/services/web/modules/workspace"
	"github.com/louisbranch/man3/internal/services/web/platform/requestmeta"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the services the web modules are composed from. Each
// field is typed as the narrow interface the consuming module declares.
type Dependencies struct {
	// Catalog serves practices and simulation scenarios.
	Catalog practices.CatalogSource
	// Runs keeps simulation runs.
	Runs *runs.Registry
	// Workspace edits the project data behind the workspace and dashboard.
	Workspace workspace.Editor
	// Assessor answers copilot questions.
	Assessor copilot.Asker

	RequestSchemePolicy requestmeta.SchemePolicy
}
