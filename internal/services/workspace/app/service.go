// Package app implements the workspace use cases on top of a storage.Store.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/man3/internal/platform/id"
	"github.com/louisbranch/man3/internal/services/workspace/domain"
	"github.com/louisbranch/man3/internal/services/workspace/storage"
)

// ErrNotFound indicates the edited row does not exist.
var ErrNotFound = storage.ErrNotFound

// Service edits the single project workspace.
type Service struct {
	store storage.Store
	now   func() time.Time
	newID func() (string, error)

	seedMu sync.Mutex
	seeded bool
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the clock used for default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides row ID generation.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService builds a workspace service over store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now, newID: id.NewID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ensureSeeded loads the sample project the first time an empty store is
// used. A failed seed is retried on the next call.
func (s *Service) ensureSeeded(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	if s.seeded {
		return nil
	}
	if err := s.seed(ctx); err != nil {
		return err
	}
	s.seeded = true
	return nil
}

func (s *Service) seed(ctx context.Context) error {
	if s.store == nil {
		return errors.New("workspace store is not configured")
	}
	_, ok, err := s.store.GetInfo(ctx)
	if err != nil {
		return fmt.Errorf("check workspace seed: %w", err)
	}
	if ok {
		return nil
	}
	sample := domain.SampleProject(s.now())
	for _, wp := range sample.WorkProducts {
		if err := s.store.PutWorkProduct(ctx, wp); err != nil {
			return fmt.Errorf("seed work product: %w", err)
		}
	}
	for _, risk := range sample.Risks {
		if err := s.store.PutRisk(ctx, risk); err != nil {
			return fmt.Errorf("seed risk: %w", err)
		}
	}
	for _, task := range sample.Schedule {
		if err := s.store.PutTask(ctx, task); err != nil {
			return fmt.Errorf("seed task: %w", err)
		}
	}
	// Info last: its presence marks the seed as complete.
	if err := s.store.PutInfo(ctx, sample.Info); err != nil {
		return fmt.Errorf("seed project info: %w", err)
	}
	return nil
}

// Project returns the whole workspace.
func (s *Service) Project(ctx context.Context) (domain.Project, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return domain.Project{}, err
	}
	info, _, err := s.store.GetInfo(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	workProducts, err := s.store.ListWorkProducts(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	risks, err := s.store.ListRisks(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	return domain.Project{Info: info, WorkProducts: workProducts, Risks: risks, Schedule: tasks}, nil
}

// UpdateInfo replaces the project info.
func (s *Service) UpdateInfo(ctx context.Context, info domain.ProjectInfo) (domain.ProjectInfo, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return domain.ProjectInfo{}, err
	}
	if err := s.store.PutInfo(ctx, info); err != nil {
		return domain.ProjectInfo{}, err
	}
	return info, nil
}

// AddWorkProduct appends a default work product owned by the manager.
func (s *Service) AddWorkProduct(ctx context.Context) (domain.WorkProduct, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return domain.WorkProduct{}, err
	}
	rowID, err := s.newID()
	if err != nil {
		return domain.WorkProduct{}, err
	}
	info, _, err := s.store.GetInfo(ctx)
	if err != nil {
		return domain.WorkProduct{}, err
	}
	wp := domain.NewWorkProduct(rowID, info)
	if err := s.store.PutWorkProduct(ctx, wp); err != nil {
		return domain.WorkProduct{}, err
	}
	return wp, nil
}

// UpdateWorkProduct replaces an existing work product.
func (s *Service) UpdateWorkProduct(ctx context.Context, wp domain.WorkProduct) (domain.WorkProduct, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return domain.WorkProduct{}, err
	}
	wp = domain.NormalizeWorkProduct(wp)
	if _, err := s.store.GetWorkProduct(ctx, wp.ID); err != nil {
		return domain.WorkProduct{}, err
	}
	if err := s.store.PutWorkProduct(ctx, wp); err != nil {
		return domain.WorkProduct{}, err
	}
	return wp, nil
}

// DeleteWorkProduct removes a work product.
func (s *Service) DeleteWorkProduct(ctx context.Context, wpID string) error {
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}
	return s.store.DeleteWorkProduct(ctx, wpID)
}

// AddRisk appends a default open risk.
func (s *Service) AddRisk(ctx context.Context) (domain.Risk, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return domain.Risk{}, err
	}
	rowID, err := s.newID()
	if err != nil {
		return domain.Risk{}, err
	}
	risk := domain.NewRisk(rowID)
	if err := s.store.PutRisk(ctx, risk); err != nil {
		return domain.Risk{}, err
	}
	return risk, nil
}

// UpdateRisk replaces an existing risk.
func (s *Service) UpdateRisk(ctx context.Context, risk domain.Risk) (domain.Risk, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return domain.Risk{}, err
	}
	risk = domain.NormalizeRisk(risk)
	if _, err := s.store.GetRisk(ctx, risk.ID); err != nil {
		return domain.Risk{}, err
	}
	if err := s.store.PutRisk(ctx, risk); err != nil {
		return domain.Risk{}, err
	}
	return risk, nil
}

// DeleteRisk removes a risk.
func (s *Service) DeleteRisk(ctx context.Context, riskID string) error {
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}
	return s.store.DeleteRisk(ctx, riskID)
}

// AddTask appends a default task spanning today.
func (s *Service) AddTask(ctx context.Context) (domain.ScheduleTask, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return domain.ScheduleTask{}, err
	}
	rowID, err := s.newID()
	if err != nil {
		return domain.ScheduleTask{}, err
	}
	task := domain.NewTask(rowID, s.now())
	if err := s.store.PutTask(ctx, task); err != nil {
		return domain.ScheduleTask{}, err
	}
	return task, nil
}

// UpdateTask replaces an existing task, clamping progress values.
func (s *Service) UpdateTask(ctx context.Context, task domain.ScheduleTask) (domain.ScheduleTask, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return domain.ScheduleTask{}, err
	}
	task = domain.NormalizeTask(task)
	if _, err := s.store.GetTask(ctx, task.ID); err != nil {
		return domain.ScheduleTask{}, err
	}
	if err := s.store.PutTask(ctx, task); err != nil {
		return domain.ScheduleTask{}, err
	}
	return task, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}
	return s.store.DeleteTask(ctx, taskID)
}
