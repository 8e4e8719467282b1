package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/man3/internal/services/workspace/domain"
)

// ErrNotFound indicates a row that does not exist.
var ErrNotFound = errors.New("workspace record not found")

// InfoStore persists the single project info record.
type InfoStore interface {
	// GetInfo reports false when no project has been stored yet.
	GetInfo(ctx context.Context) (domain.ProjectInfo, bool, error)
	PutInfo(ctx context.Context, info domain.ProjectInfo) error
}

// WorkProductStore persists work products in insertion order.
type WorkProductStore interface {
	ListWorkProducts(ctx context.Context) ([]domain.WorkProduct, error)
	GetWorkProduct(ctx context.Context, id string) (domain.WorkProduct, error)
	PutWorkProduct(ctx context.Context, wp domain.WorkProduct) error
	DeleteWorkProduct(ctx context.Context, id string) error
}

// RiskStore persists risks in insertion order.
type RiskStore interface {
	ListRisks(ctx context.Context) ([]domain.Risk, error)
	GetRisk(ctx context.Context, id string) (domain.Risk, error)
	PutRisk(ctx context.Context, risk domain.Risk) error
	DeleteRisk(ctx context.Context, id string) error
}

// TaskStore persists schedule tasks in insertion order.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]domain.ScheduleTask, error)
	GetTask(ctx context.Context, id string) (domain.ScheduleTask, error)
	PutTask(ctx context.Context, task domain.ScheduleTask) error
	DeleteTask(ctx context.Context, id string) error
}

// Store is the full workspace persistence contract.
type Store interface {
	InfoStore
	WorkProductStore
	RiskStore
	TaskStore
	Close() error
}
