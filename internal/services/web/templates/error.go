package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// AppErrorPageTitle returns the browser title for app error pages.
func AppErrorPageTitle(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "Not found"
	}
	return "Something went wrong"
}

// AppErrorState renders the error panel for 404 and 5xx responses.
func AppErrorState(statusCode int) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		heading := "Something went wrong"
		message := "The request could not be completed. Try again in a moment."
		if statusCode == http.StatusNotFound {
			heading = "Page not found"
			message = "The page you requested does not exist."
		}
		h.rawf(`<section id="app-error-state" class="panel error-state" data-status="%d">`, statusCode)
		h.rawf(`<h1>%s</h1><p>%s</p>`, heading, message)
		h.rawf(`<a class="btn" href="%s">Back to dashboard</a></section>`, routepath.AppDashboard)
	})
}
