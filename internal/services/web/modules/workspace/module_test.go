package workspace

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/routepath"
	"github.com/louisbranch/man3/internal/services/workspace/app"
	"github.com/louisbranch/man3/internal/services/workspace/storage/sqlite"
)

func newTestEditor(t *testing.T) *app.Service {
	t.Helper()
	store, err := sqlite.Open(context.Background(), "")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	next := 0
	return app.NewService(store,
		app.WithClock(func() time.Time { return time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC) }),
		app.WithIDGenerator(func() (string, error) {
			next++
			return fmt.Sprintf("row-%d", next), nil
		}),
	)
}

func newTestHandler(t *testing.T, editor Editor) http.Handler {
	t.Helper()
	mount, err := New(editor, module.Dependencies{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.WorkspacePrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.WorkspacePrefix)
	}
	return mount.Handler
}

func postForm(path string, values url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestModuleIDReturnsWorkspace(t *testing.T) {
	t.Parallel()

	if got := New(nil, module.Dependencies{}).ID(); got != "workspace" {
		t.Fatalf("ID() = %q, want %q", got, "workspace")
	}
}

func TestIndexRendersSampleProjectOnRequestedTab(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newTestEditor(t))
	rr := serve(h, httptest.NewRequest(http.MethodGet, routepath.AppWorkspace+"?section=risks", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Supplier delay on chipset delivery") {
		t.Fatalf("body missing sample risk")
	}
}

func TestAddWorkProductReturnsRefreshedFragmentForHTMX(t *testing.T) {
	t.Parallel()

	editor := newTestEditor(t)
	h := newTestHandler(t, editor)
	rr := serve(h, postForm(routepath.WorkspaceWorkProducts, nil, true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "New Work Product") {
		t.Fatalf("body missing new work product")
	}
	if strings.Contains(body, "<!doctype html>") {
		t.Fatalf("htmx response should be a fragment")
	}
	project, err := editor.Project(context.Background())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if len(project.WorkProducts) != 4 {
		t.Fatalf("work products = %d, want 4", len(project.WorkProducts))
	}
	if got := project.WorkProducts[3].Owner; got != "John Doe" {
		t.Fatalf("owner = %q, want manager", got)
	}
}

func TestAddRiskRedirectsPlainFormPostToTab(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newTestEditor(t))
	rr := serve(h, postForm(routepath.WorkspaceRisks, nil, false))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.AppWorkspace+"?section=risks" {
		t.Fatalf("Location = %q", got)
	}
}

func TestUpdateInfoPersistsFields(t *testing.T) {
	t.Parallel()

	editor := newTestEditor(t)
	h := newTestHandler(t, editor)
	rr := serve(h, postForm(routepath.WorkspaceInfo, url.Values{
		"name":       {" Body Controller "},
		"manager":    {"Ana"},
		"customer":   {"OEM"},
		"start_date": {"2026-02-01"},
	}, true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	project, err := editor.Project(context.Background())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if project.Info.Name != "Body Controller" || project.Info.Manager != "Ana" || project.Info.StartDate != "2026-02-01" {
		t.Fatalf("info = %+v", project.Info)
	}
}

func TestUpdateTaskClampsProgressAndRejectsNonNumbers(t *testing.T) {
	t.Parallel()

	editor := newTestEditor(t)
	h := newTestHandler(t, editor)

	rr := serve(h, postForm(routepath.Task("1"), url.Values{"name": {"Kickoff"}, "actual_progress": {"abc"}}, true))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}

	rr = serve(h, postForm(routepath.Task("1"), url.Values{
		"name":              {"Kickoff"},
		"expected_progress": {"150"},
		"actual_progress":   {"40"},
		"delay_reason":      {"Late hardware"},
	}, true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	project, err := editor.Project(context.Background())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	task := project.Schedule[0]
	if task.ExpectedProgress != 100 || task.ActualProgress != 40 || !task.Delayed() {
		t.Fatalf("task = %+v", task)
	}
}

func TestUnknownRowsMapToNotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newTestEditor(t))
	tests := []*http.Request{
		postForm(routepath.Risk("missing"), url.Values{"description": {"x"}}, false),
		postForm(routepath.WorkProductDelete("missing"), nil, false),
		postForm(routepath.TaskDelete("missing"), nil, true),
	}
	for _, req := range tests {
		rr := serve(h, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s status = %d, want %d", req.URL.Path, rr.Code, http.StatusNotFound)
		}
	}
}

func TestDeleteWorkProductRemovesRow(t *testing.T) {
	t.Parallel()

	editor := newTestEditor(t)
	h := newTestHandler(t, editor)
	rr := serve(h, postForm(routepath.WorkProductDelete("2"), nil, true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if strings.Contains(rr.Body.String(), "Risk Management Plan") {
		t.Fatalf("deleted row still rendered")
	}
}

func TestUnconfiguredEditorReportsUnavailable(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, routepath.AppWorkspace, nil),
		postForm(routepath.WorkspaceTasks, nil, true),
	} {
		if rr := serve(h, req); rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s %s status = %d, want %d", req.Method, req.URL.Path, rr.Code, http.StatusServiceUnavailable)
		}
	}
}

func TestUnknownWorkspacePathIsNotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newTestEditor(t))
	if rr := serve(h, httptest.NewRequest(http.MethodGet, routepath.WorkspacePrefix+"nope", nil)); rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
