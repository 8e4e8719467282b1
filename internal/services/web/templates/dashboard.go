package templates

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/louisbranch/man3/internal/services/dashboard/analytics"
	"github.com/louisbranch/man3/internal/services/workspace/domain"
)

// DashboardView is the data behind the command center page.
type DashboardView struct {
	Info    domain.ProjectInfo
	Summary analytics.Summary
}

// DashboardPage renders the analytics summary.
func DashboardPage(view DashboardView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		s := view.Summary
		h.raw(`<header class="page-header"><div><h1 class="gradient">MAN.3 Command Center</h1><p class="muted">`)
		h.rawf(`Project: <strong>%s</strong> | Manager: <strong>%s</strong>`,
			orDefault(view.Info.Name, "Untitled"), orDefault(view.Info.Manager, "Unassigned"))
		h.rawf(`</p></div><div class="customer"><span class="eyebrow">Customer</span><strong>%s</strong></div></header>`,
			orDefault(view.Info.Customer, "Internal"))

		h.raw(`<div class="stats">`)
		statCard(h, "Process Capability", s.Capability.String(), capabilityClass(s.Capability), "Target: Level 3")
		riskClass := "ok"
		if s.Risks.OpenSevere > 0 {
			riskClass = "bad"
		}
		statCard(h, "Open Risks", fmt.Sprint(s.Risks.Open), riskClass, fmt.Sprintf("%d Critical/High", s.Risks.OpenSevere))
		statCard(h, "WP Completion", fmt.Sprintf("%d%%", s.WorkProducts.ReleasedPc), "info",
			fmt.Sprintf("%d/%d Released", s.WorkProducts.Released, s.WorkProducts.Total))
		delayClass := "info"
		if s.Schedule.Delayed > 0 {
			delayClass = "warn"
		}
		statCard(h, "Delayed Tasks", fmt.Sprint(s.Schedule.Delayed), delayClass, fmt.Sprintf("%d Tasks Done", s.Schedule.Completed))
		h.raw(`</div><div class="grid-3">`)

		h.raw(`<section class="panel"><h3>Work Product Status</h3>`)
		if s.WorkProducts.Total == 0 {
			h.raw(`<p class="empty">No Work Products.<br>Go to Workspace to add data.</p>`)
		} else {
			h.raw(`<ul class="bars">`)
			for _, status := range domain.WorkProductStatuses {
				count := s.WorkProducts.ByStatus[status]
				bar(h, string(status), count, s.WorkProducts.Total)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</section>`)

		h.raw(`<section class="panel"><h3>Risk Exposure</h3>`)
		if s.Risks.Open == 0 {
			h.raw(`<p class="empty">No Open Risks.<br>Great job or missing data?</p>`)
		} else {
			h.raw(`<ul class="bars">`)
			for _, impact := range domain.RiskImpacts {
				bar(h, string(impact), s.Risks.OpenByImpact[impact], s.Risks.Open)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</section>`)

		h.raw(`<section class="panel"><h3>Upcoming Deadlines</h3>`)
		if len(s.Schedule.Upcoming) == 0 {
			h.raw(`<p class="empty">No tasks scheduled.</p>`)
		}
		for _, task := range s.Schedule.Upcoming {
			class := "task"
			if task.Delayed() {
				class += " delayed"
			}
			h.rawf(`<div class="%s"><div class="task-head"><div><strong>%s</strong><span class="muted">Due: %s</span>`,
				class, task.Name, task.EndDate)
			if task.Delayed() && task.DelayReason != "" {
				h.rawf(` <span class="warn" title="%s">Delayed</span>`, task.DelayReason)
			}
			h.rawf(`</div><span class="mono">%d%% / %d%%</span></div>`, task.ActualProgress, task.ExpectedProgress)
			h.rawf(`<div class="progress"><span class="expected" style="width:%d%%"></span><span class="actual" style="width:%d%%"></span></div>`,
				task.ExpectedProgress, task.ActualProgress)
			if task.Delayed() && task.DelayReason != "" {
				h.rawf(`<p class="delay-reason">"%s"</p>`, task.DelayReason)
			}
			h.raw(`</div>`)
		}
		h.raw(`</section></div>`)

		h.rawf(`<aside class="insight"><h4>Assessor Insight</h4><p>%s</p></aside>`, s.Insight())
	})
}

func statCard(h *htmlWriter, label, value, class, sub string) {
	h.rawf(`<div class="stat %s"><span class="sub">%s</span><div class="value">%s</div><div class="label">%s</div></div>`,
		class, sub, value, label)
}

func bar(h *htmlWriter, label string, count, total int) {
	width := 0
	if total > 0 {
		width = count * 100 / total
	}
	h.rawf(`<li><span>%s</span><span class="bar"><span style="width:%d%%"></span></span><span class="mono">%d</span></li>`,
		label, width, count)
}

func capabilityClass(level analytics.CapabilityLevel) string {
	switch level {
	case analytics.Level3:
		return "ok"
	case analytics.Level2:
		return "warn"
	default:
		return "bad"
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
