package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/louisbranch/man3/internal/services/workspace/domain"
	"github.com/louisbranch/man3/internal/services/workspace/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), "")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestInfoRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.GetInfo(ctx); err != nil || ok {
		t.Fatalf("get info on empty store = ok %v, err %v", ok, err)
	}
	info := domain.ProjectInfo{Name: "Cluster", Manager: "Ana", Customer: "OEM", StartDate: "2026-01-02", Description: "d"}
	if err := store.PutInfo(ctx, info); err != nil {
		t.Fatalf("put info: %v", err)
	}
	info.Manager = "Bo"
	if err := store.PutInfo(ctx, info); err != nil {
		t.Fatalf("update info: %v", err)
	}
	got, ok, err := store.GetInfo(ctx)
	if err != nil || !ok {
		t.Fatalf("get info = ok %v, err %v", ok, err)
	}
	if got != info {
		t.Fatalf("info = %+v, want %+v", got, info)
	}
}

func TestWorkProductsKeepInsertionOrderOnUpdate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		if err := store.PutWorkProduct(ctx, domain.WorkProduct{ID: id, Name: "WP " + id, Type: domain.WorkProductPlan, Status: domain.WorkProductDraft}); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	if err := store.PutWorkProduct(ctx, domain.WorkProduct{ID: "b", Name: "Renamed", Type: "specification", Status: "bogus"}); err != nil {
		t.Fatalf("update b: %v", err)
	}

	list, err := store.ListWorkProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].ID != "b" || list[1].ID != "a" || list[2].ID != "c" {
		t.Fatalf("order = %+v", list)
	}
	if list[0].Name != "Renamed" || list[0].Type != domain.WorkProductSpecification || list[0].Status != domain.WorkProductDraft {
		t.Fatalf("updated row = %+v", list[0])
	}
}

func TestWorkProductNotFound(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	if _, err := store.GetWorkProduct(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get error = %v, want %v", err, storage.ErrNotFound)
	}
	if err := store.DeleteWorkProduct(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("delete error = %v, want %v", err, storage.ErrNotFound)
	}
	if err := store.PutWorkProduct(ctx, domain.WorkProduct{ID: " "}); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestRiskCRUD(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	risk := domain.Risk{ID: "r1", Description: "Chip shortage", Impact: domain.RiskImpactCritical, Probability: domain.RiskProbabilityHigh, Status: domain.RiskOpen, MitigationPlan: "Second source"}
	if err := store.PutRisk(ctx, risk); err != nil {
		t.Fatalf("put risk: %v", err)
	}
	got, err := store.GetRisk(ctx, "r1")
	if err != nil {
		t.Fatalf("get risk: %v", err)
	}
	if got != risk {
		t.Fatalf("risk = %+v, want %+v", got, risk)
	}
	if err := store.DeleteRisk(ctx, "r1"); err != nil {
		t.Fatalf("delete risk: %v", err)
	}
	list, err := store.ListRisks(ctx)
	if err != nil {
		t.Fatalf("list risks: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("risks = %d, want 0", len(list))
	}
}

func TestTaskProgressIsClamped(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	task := domain.ScheduleTask{ID: "t1", Name: "Freeze", StartDate: "2026-01-01", EndDate: "2026-02-01", ExpectedProgress: 180, ActualProgress: -20, AssignedTo: "Sys"}
	if err := store.PutTask(ctx, task); err != nil {
		t.Fatalf("put task: %v", err)
	}
	got, err := store.GetTask(ctx, "t1")
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.ExpectedProgress != 100 || got.ActualProgress != 0 {
		t.Fatalf("progress = %d/%d, want 100/0", got.ExpectedProgress, got.ActualProgress)
	}
	if err := store.DeleteTask(ctx, "t1"); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := store.GetTask(ctx, "t1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted task error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestOpenFilePathPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.db")
	ctx := context.Background()

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.PutTask(ctx, domain.ScheduleTask{ID: "t1", Name: "Kickoff"}); err != nil {
		t.Fatalf("put task: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	tasks, err := reopened.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Kickoff" {
		t.Fatalf("tasks = %+v", tasks)
	}
}

func TestNilStoreIsNotConfigured(t *testing.T) {
	var store *Store
	if _, err := store.ListRisks(context.Background()); err == nil {
		t.Fatal("expected error from nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}
