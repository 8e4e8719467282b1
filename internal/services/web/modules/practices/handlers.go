package practices

import (
	"net/http"

	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/platform/pagerender"
	"github.com/louisbranch/man3/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/man3/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    "Process Academy",
		Active:   webtemplates.NavPractices,
		Fragment: webtemplates.PracticesPage(h.service.list()),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handlePractice(w http.ResponseWriter, r *http.Request) {
	practice, err := h.service.practice(r.PathValue("practiceID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    practice.ID + " " + practice.Name,
		Active:   webtemplates.NavPractices,
		Fragment: webtemplates.PracticeDetail(practice),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
