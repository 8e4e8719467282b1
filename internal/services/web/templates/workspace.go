package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/man3/internal/services/web/routepath"
	"github.com/louisbranch/man3/internal/services/workspace/domain"
)

// WorkspaceSection selects one tab of the workspace page.
type WorkspaceSection string

const (
	SectionInfo         WorkspaceSection = "info"
	SectionWorkProducts WorkspaceSection = "wps"
	SectionRisks        WorkspaceSection = "risks"
	SectionSchedule     WorkspaceSection = "schedule"
)

// ParseWorkspaceSection falls back to the info tab for unknown values.
func ParseWorkspaceSection(value string) WorkspaceSection {
	switch WorkspaceSection(value) {
	case SectionWorkProducts, SectionRisks, SectionSchedule:
		return WorkspaceSection(value)
	default:
		return SectionInfo
	}
}

// WorkspaceView is the data behind the project workspace page.
type WorkspaceView struct {
	Project domain.Project
	Section WorkspaceSection
}

var workspaceTabs = []struct {
	section WorkspaceSection
	label   string
}{
	{SectionInfo, "Details"},
	{SectionWorkProducts, "Work Products"},
	{SectionRisks, "Risk Register"},
	{SectionSchedule, "Schedule"},
}

// WorkspaceSectionURL returns the workspace page opened on section.
func WorkspaceSectionURL(section WorkspaceSection) string {
	return routepath.AppWorkspace + "?section=" + string(section)
}

// WorkspacePage renders the project data editor.
func WorkspacePage(view WorkspaceView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<header class="page-header"><h2>Project Workspace</h2><nav class="tabs">`)
		for _, tab := range workspaceTabs {
			class := "tab"
			if tab.section == view.Section {
				class += " active"
			}
			h.rawf(`<a class="%s" href="%s" hx-get="%s" hx-target="#main" hx-push-url="true">%s</a>`,
				class, WorkspaceSectionURL(tab.section), WorkspaceSectionURL(tab.section), tab.label)
		}
		h.raw(`</nav></header><section class="panel">`)
		switch view.Section {
		case SectionWorkProducts:
			workProductsSection(h, view.Project.WorkProducts)
		case SectionRisks:
			risksSection(h, view.Project.Risks)
		case SectionSchedule:
			scheduleSection(h, view.Project.Schedule)
		default:
			infoSection(h, view.Project.Info)
		}
		h.raw(`</section>`)
	})
}

// formAttrs posts the form with HTMX and swaps the main region, while
// keeping a plain POST fallback.
// formAttrs is the shared post-and-swap attribute set of every form.
func formAttrs(action string) markup {
	action = templ.EscapeString(action)
	return markup(`method="post" action="` + action + `" hx-post="` + action + `" hx-target="#main"`)
}

func infoSection(h *htmlWriter, info domain.ProjectInfo) {
	h.raw(`<h3>Project Charter</h3>`)
	h.rawf(`<form class="form-grid" %s hx-trigger="change">`, formAttrs(routepath.WorkspaceInfo))
	textField(h, "Project Name", "name", info.Name, "")
	textField(h, "Project Manager", "manager", info.Manager, "")
	textField(h, "Customer / OEM", "customer", info.Customer, "")
	h.rawf(`<label>Start Date<input type="date" name="start_date" value="%s"></label>`, info.StartDate)
	h.rawf(`<label class="wide">Project Description / Scope<textarea name="description" rows="4" placeholder="Define the scope boundaries...">%s</textarea></label>`,
		info.Description)
	h.raw(`<noscript><button class="btn" type="submit">Save</button></noscript></form>`)
}

func workProductsSection(h *htmlWriter, items []domain.WorkProduct) {
	h.raw(`<div class="section-head"><h3>Work Product Management</h3>`)
	h.rawf(`<form %s><button class="btn" type="submit">Add WP</button></form></div>`, formAttrs(routepath.WorkspaceWorkProducts))
	h.raw(`<div class="rows"><div class="row head"><span>Name</span><span>Type</span><span>Owner</span><span>Status</span><span class="right">Action</span></div>`)
	for _, wp := range items {
		h.raw(`<div class="row">`)
		h.rawf(`<form class="row-fields" %s hx-trigger="change">`, formAttrs(routepath.WorkProduct(wp.ID)))
		h.rawf(`<input name="name" value="%s">`, wp.Name)
		selectField(h, "type", string(wp.Type), stringsOf(domain.WorkProductTypes))
		h.rawf(`<input name="owner" value="%s">`, wp.Owner)
		selectField(h, "status", string(wp.Status), stringsOf(domain.WorkProductStatuses))
		h.raw(`</form>`)
		h.rawf(`<form class="right" %s><button class="link danger" type="submit">Delete</button></form></div>`,
			formAttrs(routepath.WorkProductDelete(wp.ID)))
	}
	if len(items) == 0 {
		h.raw(`<p class="empty">No work products yet.</p>`)
	}
	h.raw(`</div>`)
}

func risksSection(h *htmlWriter, items []domain.Risk) {
	h.raw(`<div class="section-head"><h3>Risk Register</h3>`)
	h.rawf(`<form %s><button class="btn danger" type="submit">Add Risk</button></form></div>`, formAttrs(routepath.WorkspaceRisks))
	for _, risk := range items {
		h.rawf(`<div class="card"><form class="form-grid" %s hx-trigger="change">`, formAttrs(routepath.Risk(risk.ID)))
		h.rawf(`<label class="wide">Description<textarea name="description" rows="2">%s</textarea></label>`, risk.Description)
		h.raw(`<label>Impact`)
		selectField(h, "impact", string(risk.Impact), stringsOf(domain.RiskImpacts))
		h.raw(`</label><label>Probability`)
		selectField(h, "probability", string(risk.Probability), stringsOf(domain.RiskProbabilities))
		h.raw(`</label><label>Status`)
		selectField(h, "status", string(risk.Status), stringsOf(domain.RiskStatuses))
		h.rawf(`</label><label class="wide">Mitigation<input name="mitigation_plan" value="%s" placeholder="Mitigation Plan..."></label></form>`,
			risk.MitigationPlan)
		h.rawf(`<form %s><button class="link danger" type="submit">Delete</button></form></div>`, formAttrs(routepath.RiskDelete(risk.ID)))
	}
	if len(items) == 0 {
		h.raw(`<p class="empty">No risks recorded.</p>`)
	}
}

func scheduleSection(h *htmlWriter, items []domain.ScheduleTask) {
	h.raw(`<div class="section-head"><h3>Schedule &amp; Progress Tracking</h3>`)
	h.rawf(`<form %s><button class="btn" type="submit">Add Task</button></form></div>`, formAttrs(routepath.WorkspaceTasks))
	for _, task := range items {
		class := "card"
		placeholder := "Optional notes..."
		if task.Delayed() {
			class += " delayed"
			placeholder = "Why is this task behind schedule?"
		}
		h.rawf(`<div class="%s"><form class="form-grid" %s hx-trigger="change">`, class, formAttrs(routepath.Task(task.ID)))
		textField(h, "Task Name", "name", task.Name, "Task Name")
		textField(h, "Assigned To", "assigned_to", task.AssignedTo, "")
		h.rawf(`<label>Start<input type="date" name="start_date" value="%s"></label>`, task.StartDate)
		h.rawf(`<label>End<input type="date" name="end_date" value="%s"></label>`, task.EndDate)
		h.rawf(`<label>Expected %%<input type="number" min="0" max="100" name="expected_progress" value="%d"></label>`, task.ExpectedProgress)
		h.rawf(`<label>Actual %%<input type="number" min="0" max="100" name="actual_progress" value="%d"></label>`, task.ActualProgress)
		h.rawf(`<label class="wide">Delay Reason<input name="delay_reason" value="%s" placeholder="%s"></label></form>`,
			task.DelayReason, placeholder)
		h.rawf(`<form %s><button class="link danger" type="submit">Delete</button></form></div>`, formAttrs(routepath.TaskDelete(task.ID)))
	}
	if len(items) == 0 {
		h.raw(`<div class="empty"><h3>No Tasks Defined</h3></div>`)
	}
}

func textField(h *htmlWriter, label, name, value, placeholder string) {
	h.rawf(`<label>%s<input name="%s" value="%s"`, label, name, value)
	if placeholder != "" {
		h.rawf(` placeholder="%s"`, placeholder)
	}
	h.raw(`></label>`)
}

func selectField(h *htmlWriter, name, selected string, options []string) {
	h.rawf(`<select name="%s">`, name)
	for _, option := range options {
		if option == selected {
			h.rawf(`<option selected>%s</option>`, option)
			continue
		}
		h.rawf(`<option>%s</option>`, option)
	}
	h.raw(`</select>`)
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = string(value)
	}
	return out
}
