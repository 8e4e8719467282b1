package workspace

import (
	"log"
	"net/http"
	"strings"

	module "github.com/louisbranch/man3/internal/services/web/module"
	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
	"github.com/louisbranch/man3/internal/services/web/platform/httpx"
	"github.com/louisbranch/man3/internal/services/web/platform/pagerender"
	"github.com/louisbranch/man3/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/man3/internal/services/web/templates"
	"github.com/louisbranch/man3/internal/services/workspace/domain"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderSection(w, r, webtemplates.ParseWorkspaceSection(r.URL.Query().Get("section")))
}

func (h handlers) handleInfoUpdate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}
	info := parseInfo(r)
	h.mutate(w, r, webtemplates.SectionInfo, func(e Editor) error {
		_, err := e.UpdateInfo(r.Context(), info)
		return err
	})
}

func (h handlers) handleWorkProductAdd(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, webtemplates.SectionWorkProducts, func(e Editor) error {
		_, err := e.AddWorkProduct(r.Context())
		return err
	})
}

func (h handlers) handleWorkProductUpdate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}
	wp := parseWorkProduct(r, rowID(r))
	h.mutate(w, r, webtemplates.SectionWorkProducts, func(e Editor) error {
		_, err := e.UpdateWorkProduct(r.Context(), wp)
		return err
	})
}

func (h handlers) handleWorkProductDelete(w http.ResponseWriter, r *http.Request) {
	id := rowID(r)
	h.mutate(w, r, webtemplates.SectionWorkProducts, func(e Editor) error {
		return e.DeleteWorkProduct(r.Context(), id)
	})
}

func (h handlers) handleRiskAdd(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, webtemplates.SectionRisks, func(e Editor) error {
		_, err := e.AddRisk(r.Context())
		return err
	})
}

func (h handlers) handleRiskUpdate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}
	risk := parseRisk(r, rowID(r))
	h.mutate(w, r, webtemplates.SectionRisks, func(e Editor) error {
		_, err := e.UpdateRisk(r.Context(), risk)
		return err
	})
}

func (h handlers) handleRiskDelete(w http.ResponseWriter, r *http.Request) {
	id := rowID(r)
	h.mutate(w, r, webtemplates.SectionRisks, func(e Editor) error {
		return e.DeleteRisk(r.Context(), id)
	})
}

func (h handlers) handleTaskAdd(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, webtemplates.SectionSchedule, func(e Editor) error {
		_, err := e.AddTask(r.Context())
		return err
	})
}

func (h handlers) handleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}
	task, err := parseTask(r, rowID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.mutate(w, r, webtemplates.SectionSchedule, func(e Editor) error {
		_, err := e.UpdateTask(r.Context(), task)
		return err
	})
}

func (h handlers) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	id := rowID(r)
	h.mutate(w, r, webtemplates.SectionSchedule, func(e Editor) error {
		return e.DeleteTask(r.Context(), id)
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

// mutate applies fn and then shows section. HTMX callers get the refreshed
// page fragment; plain form posts are redirected back to the tab.
func (h handlers) mutate(w http.ResponseWriter, r *http.Request, section webtemplates.WorkspaceSection, fn func(Editor) error) {
	if err := h.service.apply(fn); err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnknown {
			log.Printf("workspace mutation failed path=%s err=%v", r.URL.Path, err)
		}
		h.writeError(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, webtemplates.WorkspaceSectionURL(section))
		return
	}
	h.renderSection(w, r, section)
}

func (h handlers) renderSection(w http.ResponseWriter, r *http.Request, section webtemplates.WorkspaceSection) {
	project, err := h.service.project(r.Context())
	if err != nil {
		log.Printf("workspace load failed err=%v", err)
		h.writeError(w, r, err)
		return
	}
	h.writePage(w, r, project, section)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, project domain.Project, section webtemplates.WorkspaceSection) {
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    "Project Workspace",
		Active:   webtemplates.NavWorkspace,
		Fragment: webtemplates.WorkspacePage(webtemplates.WorkspaceView{Project: project, Section: section}),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}

func rowID(r *http.Request) string {
	return strings.TrimSpace(r.PathValue("id"))
}
