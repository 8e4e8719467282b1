package public

import (
	"net/http"

	module "github.com/louisbranch/man3/internal/services/web/module"
	"github.com/louisbranch/man3/internal/services/web/platform/httpx"
	"github.com/louisbranch/man3/internal/services/web/platform/weberror"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.AppDashboard, http.StatusFound)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, h.service.health())
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
