package public

import (
	"sort"

	module "github.com/louisbranch/man3/internal/services/web/module"
)

type service struct {
	names   []string
	reports map[string]module.HealthReporter
}

func newService(reports map[string]module.HealthReporter) service {
	names := make([]string, 0, len(reports))
	for name, report := range reports {
		if report != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return service{names: names, reports: reports}
}

// Health is the health endpoint payload.
type Health struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// health reports "ok" overall; degraded components are listed but never fail
// the probe, since every page still renders without them.
func (s service) health() Health {
	out := Health{Status: "ok"}
	if len(s.names) == 0 {
		return out
	}
	out.Components = make(map[string]string, len(s.names))
	for _, name := range s.names {
		state := "ok"
		if !s.reports[name].Healthy() {
			state = "degraded"
		}
		out.Components[name] = state
	}
	return out
}
