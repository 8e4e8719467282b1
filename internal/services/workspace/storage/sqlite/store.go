package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/man3/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/man3/internal/services/workspace/domain"
	"github.com/louisbranch/man3/internal/services/workspace/storage"
	"github.com/louisbranch/man3/internal/services/workspace/storage/sqlite/migrations"
)

// MemoryPath opens a process-lifetime in-memory database.
const MemoryPath = ":memory:"

// Store provides SQLite-backed persistence for the workspace.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens and migrates a workspace store. An empty path means MemoryPath.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = MemoryPath
	}

	dsn := MemoryPath
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == MemoryPath {
		// Every connection to :memory: is a distinct database.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// GetInfo loads the project info record.
func (s *Store) GetInfo(ctx context.Context) (domain.ProjectInfo, bool, error) {
	if err := s.ready(); err != nil {
		return domain.ProjectInfo{}, false, err
	}
	var info domain.ProjectInfo
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT name, manager, customer, start_date, description FROM project_info WHERE singleton = 1`,
	).Scan(&info.Name, &info.Manager, &info.Customer, &info.StartDate, &info.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ProjectInfo{}, false, nil
	}
	if err != nil {
		return domain.ProjectInfo{}, false, fmt.Errorf("get project info: %w", err)
	}
	return info, true, nil
}

// PutInfo upserts the project info record.
func (s *Store) PutInfo(ctx context.Context, info domain.ProjectInfo) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO project_info (singleton, name, manager, customer, start_date, description)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(singleton) DO UPDATE SET
		    name = excluded.name,
		    manager = excluded.manager,
		    customer = excluded.customer,
		    start_date = excluded.start_date,
		    description = excluded.description`,
		info.Name, info.Manager, info.Customer, info.StartDate, info.Description,
	)
	if err != nil {
		return fmt.Errorf("put project info: %w", err)
	}
	return nil
}

const workProductColumns = `id, name, type, status, owner`

// ListWorkProducts returns work products in insertion order.
func (s *Store) ListWorkProducts(ctx context.Context) ([]domain.WorkProduct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+workProductColumns+` FROM work_products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list work products: %w", err)
	}
	defer rows.Close()

	var out []domain.WorkProduct
	for rows.Next() {
		wp, err := scanWorkProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work product: %w", err)
		}
		out = append(out, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work products: %w", err)
	}
	return out, nil
}

// GetWorkProduct loads one work product.
func (s *Store) GetWorkProduct(ctx context.Context, id string) (domain.WorkProduct, error) {
	if err := s.ready(); err != nil {
		return domain.WorkProduct{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+workProductColumns+` FROM work_products WHERE id = ?`, strings.TrimSpace(id))
	wp, err := scanWorkProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.WorkProduct{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.WorkProduct{}, fmt.Errorf("get work product: %w", err)
	}
	return wp, nil
}

// PutWorkProduct inserts or updates a work product, keeping its position.
func (s *Store) PutWorkProduct(ctx context.Context, wp domain.WorkProduct) error {
	if err := s.ready(); err != nil {
		return err
	}
	wp = domain.NormalizeWorkProduct(wp)
	if wp.ID == "" {
		return fmt.Errorf("work product id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO work_products (`+workProductColumns+`) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    name = excluded.name,
		    type = excluded.type,
		    status = excluded.status,
		    owner = excluded.owner`,
		wp.ID, wp.Name, string(wp.Type), string(wp.Status), wp.Owner,
	)
	if err != nil {
		return fmt.Errorf("put work product: %w", err)
	}
	return nil
}

// DeleteWorkProduct removes a work product.
func (s *Store) DeleteWorkProduct(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "work_products", id)
}

const riskColumns = `id, description, impact, probability, status, mitigation_plan`

// ListRisks returns risks in insertion order.
func (s *Store) ListRisks(ctx context.Context) ([]domain.Risk, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+riskColumns+` FROM risks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	defer rows.Close()

	var out []domain.Risk
	for rows.Next() {
		risk, err := scanRisk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan risk: %w", err)
		}
		out = append(out, risk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate risks: %w", err)
	}
	return out, nil
}

// GetRisk loads one risk.
func (s *Store) GetRisk(ctx context.Context, id string) (domain.Risk, error) {
	if err := s.ready(); err != nil {
		return domain.Risk{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+riskColumns+` FROM risks WHERE id = ?`, strings.TrimSpace(id))
	risk, err := scanRisk(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Risk{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Risk{}, fmt.Errorf("get risk: %w", err)
	}
	return risk, nil
}

// PutRisk inserts or updates a risk, keeping its position.
func (s *Store) PutRisk(ctx context.Context, risk domain.Risk) error {
	if err := s.ready(); err != nil {
		return err
	}
	risk = domain.NormalizeRisk(risk)
	if risk.ID == "" {
		return fmt.Errorf("risk id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO risks (`+riskColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    description = excluded.description,
		    impact = excluded.impact,
		    probability = excluded.probability,
		    status = excluded.status,
		    mitigation_plan = excluded.mitigation_plan`,
		risk.ID, risk.Description, string(risk.Impact), string(risk.Probability), string(risk.Status), risk.MitigationPlan,
	)
	if err != nil {
		return fmt.Errorf("put risk: %w", err)
	}
	return nil
}

// DeleteRisk removes a risk.
func (s *Store) DeleteRisk(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "risks", id)
}

const taskColumns = `id, name, start_date, end_date, expected_progress, actual_progress, delay_reason, assigned_to`

// ListTasks returns schedule tasks in insertion order.
func (s *Store) ListTasks(ctx context.Context) ([]domain.ScheduleTask, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+taskColumns+` FROM schedule_tasks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var out []domain.ScheduleTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

// GetTask loads one schedule task.
func (s *Store) GetTask(ctx context.Context, id string) (domain.ScheduleTask, error) {
	if err := s.ready(); err != nil {
		return domain.ScheduleTask{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM schedule_tasks WHERE id = ?`, strings.TrimSpace(id))
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ScheduleTask{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.ScheduleTask{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// PutTask inserts or updates a schedule task, keeping its position.
func (s *Store) PutTask(ctx context.Context, task domain.ScheduleTask) error {
	if err := s.ready(); err != nil {
		return err
	}
	task = domain.NormalizeTask(task)
	if task.ID == "" {
		return fmt.Errorf("task id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO schedule_tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    name = excluded.name,
		    start_date = excluded.start_date,
		    end_date = excluded.end_date,
		    expected_progress = excluded.expected_progress,
		    actual_progress = excluded.actual_progress,
		    delay_reason = excluded.delay_reason,
		    assigned_to = excluded.assigned_to`,
		task.ID, task.Name, task.StartDate, task.EndDate, task.ExpectedProgress, task.ActualProgress, task.DelayReason, task.AssignedTo,
	)
	if err != nil {
		return fmt.Errorf("put task: %w", err)
	}
	return nil
}

// DeleteTask removes a schedule task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "schedule_tasks", id)
}

// deleteByID is only called with the fixed table names above.
func (s *Store) deleteByID(ctx context.Context, table, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkProduct(row rowScanner) (domain.WorkProduct, error) {
	var wp domain.WorkProduct
	var wpType, status string
	if err := row.Scan(&wp.ID, &wp.Name, &wpType, &status, &wp.Owner); err != nil {
		return domain.WorkProduct{}, err
	}
	wp.Type = domain.ParseWorkProductType(wpType)
	wp.Status = domain.ParseWorkProductStatus(status)
	return wp, nil
}

func scanRisk(row rowScanner) (domain.Risk, error) {
	var risk domain.Risk
	var impact, probability, status string
	if err := row.Scan(&risk.ID, &risk.Description, &impact, &probability, &status, &risk.MitigationPlan); err != nil {
		return domain.Risk{}, err
	}
	risk.Impact = domain.ParseRiskImpact(impact)
	risk.Probability = domain.ParseRiskProbability(probability)
	risk.Status = domain.ParseRiskStatus(status)
	return risk, nil
}

func scanTask(row rowScanner) (domain.ScheduleTask, error) {
	var task domain.ScheduleTask
	if err := row.Scan(&task.ID, &task.Name, &task.StartDate, &task.EndDate, &task.ExpectedProgress, &task.ActualProgress, &task.DelayReason, &task.AssignedTo); err != nil {
		return domain.ScheduleTask{}, err
	}
	return task, nil
}
