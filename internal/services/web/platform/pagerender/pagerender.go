// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/man3/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/man3/internal/services/web/templates"
)

// RequestResolver resolves chrome state from a request.
type RequestResolver interface {
	ResolveRequestManager(r *http.Request) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Active     webtemplates.NavItem
	Fragment   templ.Component
}

// WriteModulePage writes a module page. HTMX requests receive only the
// main fragment; everything else gets the full app shell.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var root templ.Component
	if httpx.IsHTMXRequest(r) {
		root = webtemplates.MainContent()
	} else {
		opts := webtemplates.LayoutOptions{Title: page.Title, Active: page.Active}
		if resolver != nil {
			opts.Manager = resolver.ResolveRequestManager(r)
		}
		root = webtemplates.AppLayout(opts)
	}

	// Render to a buffer so a template failure can still become an error
	// response instead of a truncated page.
	var buf bytes.Buffer
	if err := root.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteFragment writes a bare component, used for HTMX partial swaps such
// as appended chat messages.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragments ...templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	var buf bytes.Buffer
	for _, fragment := range fragments {
		if fragment == nil {
			continue
		}
		if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
