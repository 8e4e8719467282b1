package copilot

import (
	"net/http"

	"github.com/louisbranch/man3/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCopilot, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CopilotPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.CopilotAsk, h.handleAsk)
	mux.HandleFunc(http.MethodGet+" "+routepath.CopilotSocket, h.handleSocket)
	mux.HandleFunc(routepath.CopilotRestPattern, h.handleNotFound)
}
