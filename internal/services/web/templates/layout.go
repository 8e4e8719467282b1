// Package templates renders the MAN.3 web pages as templ components.
package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// AppName is the product name shown in page chrome.
const AppName = "ASPICE MAN.3"

// HTMXScriptURL is the pinned HTMX build loaded by every page.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// NavItem identifies one sidebar section.
type NavItem string

const (
	NavNone       NavItem = ""
	NavDashboard  NavItem = "dashboard"
	NavWorkspace  NavItem = "workspace"
	NavPractices  NavItem = "practices"
	NavSimulation NavItem = "simulation"
	NavCopilot    NavItem = "copilot"
)

type navLink struct {
	item  NavItem
	href  string
	label string
}

var navLinks = []navLink{
	{item: NavDashboard, href: routepath.AppDashboard, label: "Dashboard"},
	{item: NavWorkspace, href: routepath.AppWorkspace, label: "My Project"},
	{item: NavPractices, href: routepath.AppPractices, label: "Process Academy"},
	{item: NavSimulation, href: routepath.AppSimulation, label: "Proving Grounds"},
	{item: NavCopilot, href: routepath.AppCopilot, label: "AI Assessor"},
}

// LayoutOptions carries page chrome state.
type LayoutOptions struct {
	Title  string
	Active NavItem
	// Manager labels the sidebar user badge.
	Manager string
}

// AppLayout renders the full document around the children in ctx.
func AppLayout(opts LayoutOptions) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		title := AppName
		if opts.Title != "" {
			title = opts.Title + " | " + AppName
		}
		manager := opts.Manager
		if manager == "" {
			manager = "User"
		}
		h.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.rawf(`<title>%s</title>`, title)
		h.rawf(`<link rel="stylesheet" href="%sapp.css">`, routepath.StaticPrefix)
		h.rawf(`<script src="%s" defer></script>`, HTMXScriptURL)
		h.rawf(`<script src="%sapp.js" defer></script>`, routepath.StaticPrefix)
		h.raw(`</head><body><div class="shell">`)
		h.raw(`<aside class="sidebar"><div class="brand"><span class="brand-mark">M3</span><span class="brand-name">Command Ctr</span></div><nav>`)
		for _, link := range navLinks {
			class := "nav-link"
			if link.item == opts.Active {
				class += " active"
			}
			h.rawf(`<a class="%s" href="%s">%s</a>`, class, link.href, link.label)
		}
		h.raw(`</nav><div class="user-badge"><span class="avatar">PM</span><span>`)
		h.text(manager)
		h.raw(`</span></div></aside>`)
		h.raw(`<main id="main" class="main">`)
		h.render(ctx, MainContent())
		h.raw(`</main></div></body></html>`)
	})
}

// MainContent renders only the children in ctx; HTMX requests receive this
// fragment in place of the full document.
func MainContent() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.render(ctx, templ.GetChildren(ctx))
	})
}
