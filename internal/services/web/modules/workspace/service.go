package workspace

import (
	"context"
	"errors"

	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
	"github.com/louisbranch/man3/internal/services/workspace/app"
	"github.com/louisbranch/man3/internal/services/workspace/domain"
)

// Editor is the workspace use-case surface the module drives.
type Editor interface {
	Project(context.Context) (domain.Project, error)
	UpdateInfo(context.Context, domain.ProjectInfo) (domain.ProjectInfo, error)
	AddWorkProduct(context.Context) (domain.WorkProduct, error)
	UpdateWorkProduct(context.Context, domain.WorkProduct) (domain.WorkProduct, error)
	DeleteWorkProduct(context.Context, string) error
	AddRisk(context.Context) (domain.Risk, error)
	UpdateRisk(context.Context, domain.Risk) (domain.Risk, error)
	DeleteRisk(context.Context, string) error
	AddTask(context.Context) (domain.ScheduleTask, error)
	UpdateTask(context.Context, domain.ScheduleTask) (domain.ScheduleTask, error)
	DeleteTask(context.Context, string) error
}

var _ Editor = (*app.Service)(nil)

var errUnavailable = apperrors.E(apperrors.KindUnavailable, "workspace service is not configured")

type service struct {
	editor Editor
}

func newService(editor Editor) service {
	return service{editor: editor}
}

func (s service) project(ctx context.Context) (domain.Project, error) {
	if s.editor == nil {
		return domain.Project{}, errUnavailable
	}
	project, err := s.editor.Project(ctx)
	return project, mapError(err)
}

// apply runs one mutation and maps storage failures to web error kinds.
func (s service) apply(fn func(Editor) error) error {
	if s.editor == nil {
		return errUnavailable
	}
	return mapError(fn(s.editor))
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, app.ErrNotFound) {
		return apperrors.Wrap(apperrors.KindNotFound, "workspace row not found", err)
	}
	return err
}
