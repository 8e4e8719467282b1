package engine

import (
	"fmt"
	"unicode/utf8"
)

// Phase is the state-machine position of one play-through.
type Phase string

const (
	PhaseNotStarted      Phase = "not_started"
	PhaseAwaitingChoice  Phase = "awaiting_choice"
	PhaseAwaitingAdvance Phase = "awaiting_advance"
	PhaseTerminated      Phase = "terminated"
)

const (
	// MeterMin is the lower bound of every meter.
	MeterMin = 0
	// MeterMax is the upper bound of every meter and the value each meter
	// starts at.
	MeterMax = 100
	// WinComplianceThreshold is the minimum L3 compliance for a winning run.
	WinComplianceThreshold = 70
	// summaryRunes caps the feedback excerpt stored in each log entry.
	summaryRunes = 50
)

// Impact is the per-meter delta applied when an option is committed.
type Impact struct {
	Budget       int `json:"budget" yaml:"budget"`
	Schedule     int `json:"schedule" yaml:"schedule"`
	Quality      int `json:"quality" yaml:"quality"`
	ComplianceL3 int `json:"compliance_l3" yaml:"compliance_l3"`
}

// Option is one selectable answer of a scenario.
type Option struct {
	Text     string `json:"text" yaml:"text"`
	Impact   Impact `json:"impact" yaml:"impact"`
	Feedback string `json:"feedback" yaml:"feedback"`
}

// Scenario is one decision point in the simulation.
type Scenario struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Options     []Option `json:"options" yaml:"options"`
}

func (s Scenario) clone() Scenario {
	options := make([]Option, len(s.Options))
	copy(options, s.Options)
	s.Options = options
	return s
}

// Meters are the four bounded counters tracking run health.
type Meters struct {
	Budget       int `json:"budget"`
	Schedule     int `json:"schedule"`
	Quality      int `json:"quality"`
	ComplianceL3 int `json:"compliance_l3"`
}

// Apply returns the meters after adding impact, clamping each meter
// independently after the delta.
func (m Meters) Apply(impact Impact) Meters {
	return Meters{
		Budget:       clamp(m.Budget + impact.Budget),
		Schedule:     clamp(m.Schedule + impact.Schedule),
		Quality:      clamp(m.Quality + impact.Quality),
		ComplianceL3: clamp(m.ComplianceL3 + impact.ComplianceL3),
	}
}

func fullMeters() Meters {
	return Meters{Budget: MeterMax, Schedule: MeterMax, Quality: MeterMax, ComplianceL3: MeterMax}
}

func clamp(value int) int {
	if value < MeterMin {
		return MeterMin
	}
	if value > MeterMax {
		return MeterMax
	}
	return value
}

// LogEntry records one resolved scenario.
type LogEntry struct {
	// ScenarioIndex is the 0-based catalog position of the resolved scenario.
	ScenarioIndex int `json:"scenario_index"`
	// ScenarioID is the catalog identifier of the resolved scenario.
	ScenarioID string `json:"scenario_id"`
	// OptionIndex is the option that was committed.
	OptionIndex int `json:"option_index"`
	// Summary is the feedback text truncated to a short excerpt.
	Summary string `json:"summary"`
}

// String renders the entry the way the run log displays it.
func (e LogEntry) String() string {
	return fmt.Sprintf("Scenario %d: %s...", e.ScenarioIndex+1, e.Summary)
}

// Pending is the resolution captured by ChooseOption and committed by
// Advance.
type Pending struct {
	ScenarioIndex int    `json:"scenario_index"`
	OptionIndex   int    `json:"option_index"`
	Feedback      string `json:"feedback"`
	Impact        Impact `json:"impact"`
}

// RunState is the mutable state of one play-through.
type RunState struct {
	// TurnIndex is the 0-based index of the current scenario; it equals the
	// scenario count once every scenario has been resolved.
	TurnIndex int `json:"turn_index"`
	// Meters hold the clamped run counters.
	Meters Meters `json:"meters"`
	// History is append-only; one entry per committed scenario.
	History []LogEntry `json:"history"`
	// Terminated is set once no further choices are accepted.
	Terminated bool `json:"terminated"`
}

// Outcome is the derived result of a terminated run.
type Outcome struct {
	Won    bool   `json:"won"`
	Meters Meters `json:"meters"`
}

// OutcomeFor classifies final meters. Only budget and schedule exhaustion
// fail a run; quality is not considered.
func OutcomeFor(m Meters) Outcome {
	return Outcome{
		Won:    m.ComplianceL3 >= WinComplianceThreshold && m.Budget > 0 && m.Schedule > 0,
		Meters: m,
	}
}

func summarize(feedback string) string {
	if utf8.RuneCountInString(feedback) <= summaryRunes {
		return feedback
	}
	runes := []rune(feedback)
	return string(runes[:summaryRunes])
}
