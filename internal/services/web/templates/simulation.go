package templates

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/louisbranch/man3/internal/services/simulation/engine"
	"github.com/louisbranch/man3/internal/services/web/routepath"
)

const (
	// OutcomeWonLabel and OutcomeLostLabel head the final report.
	OutcomeWonLabel  = "LEVEL 3 ESTABLISHED"
	OutcomeLostLabel = "PROCESS FAILED"

	outcomeWonReport  = "Outstanding performance. You demonstrated that process adherence helps, rather than hinders, project success. Your ability to document tailoring decisions while maintaining traceability is exemplary."
	outcomeLostReport = "The project suffered due to lack of process discipline. While you may have tried to save time or money, the lack of evidence and traceability means you failed the audit. Remember: If it isn't documented, it didn't happen."
)

// SimulationView is the data behind the Proving Grounds page.
type SimulationView struct {
	Run engine.Snapshot
	// Notice is shown above the stage, for example after an expired run.
	Notice string
}

// SimulationPage renders the view matching the run phase.
func SimulationPage(view SimulationView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.rawf(`<section class="simulation" data-phase="%s">`, string(view.Run.Phase))
		if view.Notice != "" {
			h.rawf(`<p class="notice">%s</p>`, view.Notice)
		}
		switch view.Run.Phase {
		case engine.PhaseAwaitingChoice, engine.PhaseAwaitingAdvance:
			simulationStage(h, view.Run)
		case engine.PhaseTerminated:
			simulationReport(h, view.Run)
		default:
			simulationIntro(h, view.Run)
		}
		h.raw(`</section>`)
	})
}

func simulationIntro(h *htmlWriter, run engine.Snapshot) {
	h.raw(`<div class="intro"><h1>ASPICE <span class="accent">PROVING GROUNDS</span></h1>`)
	h.raw(`<p class="lead">Step into the shoes of a Project Manager. You will face real-world scenarios requiring you to balance `)
	h.raw(`<strong class="budget">Cost</strong>, <strong class="schedule">Schedule</strong>, and <strong class="quality">Quality</strong> `)
	h.raw(`while strictly adhering to the <strong class="compliance">Level 3 Standard Process</strong>.</p>`)
	h.raw(`<ul class="rules"><li>One fatal mistake can end the project.</li><li>Assessor watches every move.</li>`)
	h.rawf(`<li>Tailoring is encouraged, cheating is not.</li><li>%d Scenarios to prove your worth.</li></ul>`, run.ScenarioCount)
	h.rawf(`<form %s><button class="btn big" type="submit">INITIALIZE SIMULATION</button></form></div>`, formAttrs(routepath.SimulationStart))
}

func simulationStage(h *htmlWriter, run engine.Snapshot) {
	meterHUD(h, run.Meters)
	if run.Scenario == nil {
		return
	}
	scenario := run.Scenario
	h.rawf(`<div class="stage"><span class="scenario-tag">SCENARIO %d / %d</span>`, run.TurnIndex+1, run.ScenarioCount)
	h.rawf(`<h2>%s</h2><p class="lead">%s</p><div class="options">`, scenario.Title, scenario.Description)
	for idx, option := range scenario.Options {
		letter := string(rune('A' + idx))
		if run.Pending != nil {
			class := "option"
			if run.Pending.OptionIndex == idx {
				class += " chosen"
			}
			h.rawf(`<div class="%s"><span class="letter">%s</span><span>%s</span></div>`, class, letter, option.Text)
			continue
		}
		h.rawf(`<form %s><input type="hidden" name="option" value="%d">`, formAttrs(routepath.SimulationChoose), idx)
		h.rawf(`<button class="option" type="submit"><span class="letter">%s</span><span>%s</span></button></form>`, letter, option.Text)
	}
	h.raw(`</div></div>`)

	if run.Pending != nil {
		pending := run.Pending
		h.raw(`<div class="feedback" role="dialog"><h3>Result Analysis</h3>`)
		h.rawf(`<blockquote>"%s"</blockquote><div class="impacts">`, pending.Feedback)
		impactMetric(h, "Budget", pending.Impact.Budget)
		impactMetric(h, "Time", pending.Impact.Schedule)
		impactMetric(h, "Quality", pending.Impact.Quality)
		impactMetric(h, "L3", pending.Impact.ComplianceL3)
		h.rawf(`</div><form %s><button class="btn wide" type="submit">NEXT MISSION</button></form></div>`, formAttrs(routepath.SimulationAdvance))
	}
}

func simulationReport(h *htmlWriter, run engine.Snapshot) {
	won := run.Outcome != nil && run.Outcome.Won
	label, report, class := OutcomeLostLabel, outcomeLostReport, "lost"
	if won {
		label, report, class = OutcomeWonLabel, outcomeWonReport, "won"
	}
	h.rawf(`<div class="report %s"><h2>SIMULATION COMPLETE</h2><h3 class="mono">STATUS: %s</h3><div class="scores">`, class, label)
	scoreCard(h, "Budget", run.Meters.Budget)
	scoreCard(h, "Schedule", run.Meters.Schedule)
	scoreCard(h, "Quality", run.Meters.Quality)
	scoreCard(h, "L3 Score", run.Meters.ComplianceL3)
	h.rawf(`</div><div class="panel"><h4>Assessor's Final Report</h4><p>%s</p></div>`, report)
	if len(run.History) > 0 {
		h.raw(`<div class="panel"><h4>Run Log</h4><ol class="log">`)
		for _, entry := range run.History {
			h.rawf(`<li>%s</li>`, entry.String())
		}
		h.raw(`</ol></div>`)
	}
	h.rawf(`<form %s><button class="btn" type="submit">Restart Simulation</button></form></div>`, formAttrs(routepath.SimulationRestart))
}

func meterHUD(h *htmlWriter, m engine.Meters) {
	h.raw(`<div class="hud">`)
	meterBar(h, "Budget", "budget", m.Budget)
	meterBar(h, "Schedule", "schedule", m.Schedule)
	meterBar(h, "Quality", "quality", m.Quality)
	meterBar(h, "L3 Compliance", "compliance", m.ComplianceL3)
	h.raw(`</div>`)
}

func meterBar(h *htmlWriter, label, class string, value int) {
	h.rawf(`<div class="meter %s"><div class="meter-head"><span>%s</span><span class="mono">%d%%</span></div>`, class, label, value)
	h.rawf(`<div class="meter-track"><span style="width:%d%%"></span></div></div>`, value)
}

func impactMetric(h *htmlWriter, label string, value int) {
	class := "neutral"
	text := fmt.Sprint(value)
	switch {
	case value > 0:
		class = "positive"
		text = "+" + text
	case value < 0:
		class = "negative"
	}
	h.rawf(`<div class="impact %s"><span>%s</span><strong>%s</strong></div>`, class, label, text)
}

func scoreCard(h *htmlWriter, label string, value int) {
	h.rawf(`<div class="score"><span>%s</span><strong>%d</strong></div>`, label, value)
}
