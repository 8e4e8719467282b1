package copilot

import (
	"net/http"

	"github.com/louisbranch/man3/internal/services/assessor"
	module "github.com/louisbranch/man3/internal/services/web/module"
	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
	"github.com/louisbranch/man3/internal/services/web/platform/httpx"
	"github.com/louisbranch/man3/internal/services/web/platform/pagerender"
	"github.com/louisbranch/man3/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/man3/internal/services/web/platform/weberror"
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
	query := r.URL.Query()
	h.writePage(w, r, webtemplates.CopilotView{
		Messages: []assessor.Message{h.service.asker.Greeting()},
		Query:    query.Get("q"),
		Context:  query.Get("context"),
	})
}

// handleAsk answers one question. HTMX appends the two returned bubbles to
// the transcript; plain posts get a page holding the exchange.
func (h handlers) handleAsk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "failed to parse ask form", err))
		return
	}
	q, err := question{Query: r.PostFormValue("query"), Context: r.PostFormValue("context")}.normalize()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	userMsg, answer := h.service.ask(r.Context(), q)
	if httpx.IsHTMXRequest(r) {
		if err := pagerender.WriteFragment(w, r, http.StatusOK, webtemplates.CopilotMessage(userMsg), webtemplates.CopilotMessage(answer)); err != nil {
			h.writeError(w, r, err)
		}
		return
	}
	h.writePage(w, r, webtemplates.CopilotView{
		Messages: []assessor.Message{h.service.asker.Greeting(), userMsg, answer},
		Context:  q.Context,
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, view webtemplates.CopilotView) {
	view.Model = h.service.asker.Model()
	view.Available = h.service.asker.Available()
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    "AI Assessor",
		Active:   webtemplates.NavCopilot,
		Fragment: webtemplates.CopilotPage(view),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
