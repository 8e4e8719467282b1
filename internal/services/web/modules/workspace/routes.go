package workspace

import (
	"net/http"

	"github.com/louisbranch/man3/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppWorkspace, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.WorkspacePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceInfo, h.handleInfoUpdate)

	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceWorkProducts, h.handleWorkProductAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceWorkProductPattern, h.handleWorkProductUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceWorkProductDeletePattern, h.handleWorkProductDelete)

	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceRisks, h.handleRiskAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceRiskPattern, h.handleRiskUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceRiskDeletePattern, h.handleRiskDelete)

	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceTasks, h.handleTaskAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceTaskPattern, h.handleTaskUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.WorkspaceTaskDeletePattern, h.handleTaskDelete)

	mux.HandleFunc(routepath.WorkspaceRestPattern, h.handleNotFound)
}
