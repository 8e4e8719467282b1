package practices

import (
	"net/http"

	"github.com/louisbranch/man3/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPractices, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PracticesPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PracticePattern, h.handlePractice)
	mux.HandleFunc(http.MethodGet+" "+routepath.PracticeRestPattern, h.handleNotFound)
}
