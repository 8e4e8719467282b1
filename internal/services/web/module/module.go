// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"strings"
)

// ResolveManager returns the project manager name shown in app chrome.
type ResolveManager func(*http.Request) string

// Dependencies carries request-scoped resolvers shared by all modules.
type Dependencies struct {
	ResolveManager ResolveManager
}

// ResolveRequestManager returns the manager label for r, or "" when no
// resolver is wired.
func (d Dependencies) ResolveRequestManager(r *http.Request) string {
	if d.ResolveManager == nil || r == nil {
		return ""
	}
	return strings.TrimSpace(d.ResolveManager(r))
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is implemented by modules whose backing service can be
// degraded. The health endpoint reports their state.
type HealthReporter interface {
	Healthy() bool
}
