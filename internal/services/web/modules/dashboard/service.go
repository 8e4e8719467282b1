package dashboard

import (
	"context"

	"github.com/louisbranch/man3/internal/services/dashboard/analytics"
	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
	webtemplates "github.com/louisbranch/man3/internal/services/web/templates"
	"github.com/louisbranch/man3/internal/services/workspace/domain"
)

// ProjectReader loads the workspace the dashboard summarizes.
type ProjectReader interface {
	Project(context.Context) (domain.Project, error)
}

type unavailableReader struct{}

func (unavailableReader) Project(context.Context) (domain.Project, error) {
	return domain.Project{}, apperrors.E(apperrors.KindUnavailable, "workspace service is not configured")
}

type service struct {
	reader ProjectReader
}

func newService(reader ProjectReader) service {
	if reader == nil {
		reader = unavailableReader{}
	}
	return service{reader: reader}
}

func (s service) loadDashboard(ctx context.Context) (webtemplates.DashboardView, error) {
	project, err := s.reader.Project(ctx)
	if err != nil {
		return webtemplates.DashboardView{}, err
	}
	return webtemplates.DashboardView{
		Info:    project.Info,
		Summary: analytics.Compute(project),
	}, nil
}
