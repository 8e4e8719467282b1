package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/man3/internal/services/content/catalog"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

// PracticesPage renders the Process Academy list. Cards expand with a
// native details element.
func PracticesPage(practices []catalog.BasePractice) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<header class="page-header"><div><h2>Process Academy</h2>`)
		h.raw(`<p class="muted">Master the 10 Base Practices of MAN.3. Click a card to reveal L3 details.</p></div></header>`)
		h.raw(`<div class="practices">`)
		for _, practice := range practices {
			h.rawf(`<details class="card practice" id="%s"><summary>`, practice.ID)
			practiceHeading(h, practice)
			h.raw(`</summary>`)
			practiceBody(h, practice)
			h.raw(`</details>`)
		}
		h.raw(`</div>`)
	})
}

// PracticeDetail renders one practice fully expanded.
func PracticeDetail(practice catalog.BasePractice) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.rawf(`<p><a class="link" href="%s">&larr; Process Academy</a></p>`, routepath.AppPractices)
		h.rawf(`<article class="card practice" id="%s">`, practice.ID)
		practiceHeading(h, practice)
		practiceBody(h, practice)
		if len(practice.L2Criteria) > 0 {
			listBlock(h, "Level 2 Focus (Managed)", "l2", practice.L2Criteria)
		}
		if len(practice.CommonPitfalls) > 0 {
			listBlock(h, "Common Pitfalls", "pitfalls", practice.CommonPitfalls)
		}
		if len(practice.AssessorQuestions) > 1 {
			listBlock(h, "Assessor Questions", "questions", practice.AssessorQuestions)
		}
		h.raw(`</article>`)
	})
}

func practiceHeading(h *htmlWriter, practice catalog.BasePractice) {
	h.rawf(`<div class="practice-head"><span class="badge">%s</span><div><h3><a href="%s">%s</a></h3><p class="muted">%s</p></div></div>`,
		practice.ID, routepath.Practice(practice.ID), practice.Name, practice.ShortName)
}

func practiceBody(h *htmlWriter, practice catalog.BasePractice) {
	h.rawf(`<div class="practice-body"><p>%s</p><div class="grid-2">`, practice.Description)
	listBlock(h, "Inputs", "inputs", practice.Inputs)
	listBlock(h, "Outputs", "outputs", practice.Outputs)
	h.raw(`</div>`)
	listBlock(h, "Level 3 Focus (Institutionalization)", "l3", practice.L3Criteria)
	ask := routepath.CopilotQuery(practice.AskPrompt(), "MAN.3 "+practice.ID+" ("+practice.ShortName+"): "+practice.Description)
	h.rawf(`<a class="btn wide" href="%s">Ask AI Assessor</a>`, ask)
	if len(practice.AssessorQuestions) > 0 {
		h.rawf(`<p class="assessor-asks"><strong>Assessor asks:</strong> %s</p>`, practice.AssessorQuestions[0])
	}
	h.raw(`</div>`)
}

func listBlock(h *htmlWriter, title, class string, items []string) {
	h.rawf(`<div class="list-block %s"><h4>%s</h4><ul>`, class, title)
	for _, item := range items {
		h.rawf(`<li>%s</li>`, item)
	}
	h.raw(`</ul></div>`)
}
