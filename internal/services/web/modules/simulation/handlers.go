package simulation

import (
	"net/http"
	"strconv"
	"strings"

	module "github.com/louisbranch/man3/internal/services/web/module"
	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
	"github.com/louisbranch/man3/internal/services/web/platform/httpx"
	"github.com/louisbranch/man3/internal/services/web/platform/pagerender"
	"github.com/louisbranch/man3/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/man3/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/man3/internal/services/web/platform/weberror"
	"github.com/louisbranch/man3/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/man3/internal/services/web/templates"
)

type handlers struct {
	service service
	policy  requestmeta.SchemePolicy
	deps    module.Dependencies
}

func newHandlers(s service, policy requestmeta.SchemePolicy, deps module.Dependencies) handlers {
	return handlers{service: s, policy: policy, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	runID, _ := sessioncookie.Read(r)
	res := h.service.view(runID)
	if res.Expired {
		sessioncookie.Clear(w, r, h.policy)
	}
	h.writePage(w, r, res)
}

func (h handlers) handleStart(w http.ResponseWriter, r *http.Request) {
	runID, _ := sessioncookie.Read(r)
	res, err := h.service.start(runID)
	h.respond(w, r, res, err)
}

func (h handlers) handleChoose(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "failed to parse choice form", err))
		return
	}
	option, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("option")))
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "option must be a number", err))
		return
	}
	runID, _ := sessioncookie.Read(r)
	res, err := h.service.choose(runID, option)
	h.respond(w, r, res, err)
}

func (h handlers) handleAdvance(w http.ResponseWriter, r *http.Request) {
	runID, _ := sessioncookie.Read(r)
	res, err := h.service.advance(runID)
	h.respond(w, r, res, err)
}

func (h handlers) handleRestart(w http.ResponseWriter, r *http.Request) {
	runID, _ := sessioncookie.Read(r)
	res, err := h.service.restart(runID)
	h.respond(w, r, res, err)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

// respond binds the run cookie and shows the result. Plain form posts are
// redirected back to the simulation page unless there is a notice to show.
func (h handlers) respond(w http.ResponseWriter, r *http.Request, res result, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	switch {
	case res.Expired:
		sessioncookie.Clear(w, r, h.policy)
	case res.RunID != "":
		sessioncookie.Write(w, r, res.RunID, h.policy)
	}
	if !httpx.IsHTMXRequest(r) && res.Notice == "" {
		httpx.WriteRedirect(w, r, routepath.AppSimulation)
		return
	}
	h.writePage(w, r, res)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, res result) {
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    "Proving Grounds",
		Active:   webtemplates.NavSimulation,
		Fragment: webtemplates.SimulationPage(webtemplates.SimulationView{Run: res.Snapshot, Notice: res.Notice}),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
