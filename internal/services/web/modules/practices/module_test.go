package practices

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/man3/internal/services/content/catalog"
	"github.com/louisbranch/man3/internal/services/content/watch"
	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

func newTestHandler(t *testing.T, source CatalogSource) http.Handler {
	t.Helper()
	mount, err := New(source, module.Dependencies{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func TestModuleIDReturnsPractices(t *testing.T) {
	t.Parallel()

	if got := New(nil, module.Dependencies{}).ID(); got != "practices" {
		t.Fatalf("ID() = %q, want %q", got, "practices")
	}
}

func TestIndexListsEveryPractice(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, watch.NewHolder(catalog.Default()))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.AppPractices, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, practice := range catalog.Default().Practices() {
		if !strings.Contains(body, `id="`+practice.ID+`"`) {
			t.Fatalf("body missing practice %s", practice.ID)
		}
	}
	if !strings.Contains(body, "Process Academy") {
		t.Fatalf("body missing heading")
	}
}

func TestPracticeDetailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Practice("bp1"), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Define the Scope of Work") || !strings.Contains(body, "Common Pitfalls") {
		t.Fatalf("body missing detail content")
	}
	if !strings.Contains(body, "<title>BP1 Define the Scope of Work") {
		t.Fatalf("body missing page title")
	}
}

func TestPracticeRoutesNotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	for _, path := range []string{routepath.Practice("BP99"), routepath.PracticesPrefix + "BP1/extra"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusNotFound)
		}
	}
}

func TestPracticesRejectsPost(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.AppPractices, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
