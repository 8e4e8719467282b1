package simulation

import (
	"net/http"

	"github.com/louisbranch/man3/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppSimulation, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SimulationPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.SimulationStart, h.handleStart)
	mux.HandleFunc(http.MethodPost+" "+routepath.SimulationChoose, h.handleChoose)
	mux.HandleFunc(http.MethodPost+" "+routepath.SimulationAdvance, h.handleAdvance)
	mux.HandleFunc(http.MethodPost+" "+routepath.SimulationRestart, h.handleRestart)
	mux.HandleFunc(routepath.SimulationRestPattern, h.handleNotFound)
}
