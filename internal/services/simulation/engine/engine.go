package engine

import "errors"

var (
	// ErrEmptyCatalog indicates Start was called without any scenarios.
	ErrEmptyCatalog = errors.New("scenario catalog is empty")
	// ErrOutOfPhase indicates a transition that is not valid in the current phase.
	ErrOutOfPhase = errors.New("transition not allowed in current phase")
	// ErrInvalidOption indicates an option index outside the current scenario.
	ErrInvalidOption = errors.New("option index is out of range")
)

// Engine drives one play-through over a fixed scenario catalog.
type Engine struct {
	scenarios []Scenario
	phase     Phase
	state     RunState
	pending   *Pending
}

// New builds an engine over a private copy of scenarios. The caller's slice
// is never read again or modified.
func New(scenarios []Scenario) *Engine {
	copied := make([]Scenario, len(scenarios))
	for i, scenario := range scenarios {
		copied[i] = scenario.clone()
	}
	return &Engine{
		scenarios: copied,
		phase:     PhaseNotStarted,
		state:     RunState{Meters: fullMeters()},
	}
}

// Start resets the run and presents the first scenario. It is valid before
// the first run and after termination.
func (e *Engine) Start() error {
	if e.phase != PhaseNotStarted && e.phase != PhaseTerminated {
		return ErrOutOfPhase
	}
	if len(e.scenarios) == 0 {
		return ErrEmptyCatalog
	}
	e.state = RunState{Meters: fullMeters()}
	e.pending = nil
	e.phase = PhaseAwaitingChoice
	return nil
}

// ChooseOption records the feedback and impact of an option of the current
// scenario without touching the meters.
func (e *Engine) ChooseOption(index int) error {
	if e.phase != PhaseAwaitingChoice {
		return ErrOutOfPhase
	}
	scenario := e.scenarios[e.state.TurnIndex]
	if index < 0 || index >= len(scenario.Options) {
		return ErrInvalidOption
	}
	option := scenario.Options[index]
	e.pending = &Pending{
		ScenarioIndex: e.state.TurnIndex,
		OptionIndex:   index,
		Feedback:      option.Feedback,
		Impact:        option.Impact,
	}
	e.phase = PhaseAwaitingAdvance
	return nil
}

// Advance commits the pending resolution and moves to the next scenario or
// terminates the run.
func (e *Engine) Advance() error {
	if e.phase != PhaseAwaitingAdvance || e.pending == nil {
		return ErrOutOfPhase
	}
	pending := *e.pending
	scenario := e.scenarios[pending.ScenarioIndex]

	e.state.Meters = e.state.Meters.Apply(pending.Impact)
	e.state.History = append(e.state.History, LogEntry{
		ScenarioIndex: pending.ScenarioIndex,
		ScenarioID:    scenario.ID,
		OptionIndex:   pending.OptionIndex,
		Summary:       summarize(pending.Feedback),
	})
	e.state.TurnIndex++
	e.pending = nil

	if e.state.TurnIndex >= len(e.scenarios) || e.state.Meters.Budget <= 0 || e.state.Meters.Schedule <= 0 {
		e.state.Terminated = true
		e.phase = PhaseTerminated
		return nil
	}
	e.phase = PhaseAwaitingChoice
	return nil
}

// Phase returns the current state-machine phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// ScenarioCount returns the number of scenarios in the run's catalog.
func (e *Engine) ScenarioCount() int {
	return len(e.scenarios)
}

// TurnIndex returns the 0-based index of the current scenario.
func (e *Engine) TurnIndex() int {
	return e.state.TurnIndex
}

// CurrentScenario returns the scenario awaiting a choice or an advance.
func (e *Engine) CurrentScenario() (Scenario, bool) {
	if e.phase != PhaseAwaitingChoice && e.phase != PhaseAwaitingAdvance {
		return Scenario{}, false
	}
	return e.scenarios[e.state.TurnIndex].clone(), true
}

// Meters returns the current meter values.
func (e *Engine) Meters() Meters {
	return e.state.Meters
}

// Pending returns the uncommitted resolution, if any.
func (e *Engine) Pending() (Pending, bool) {
	if e.pending == nil {
		return Pending{}, false
	}
	return *e.pending, true
}

// History returns a copy of the run log. It is never nil, so an empty log
// encodes as [].
func (e *Engine) History() []LogEntry {
	out := make([]LogEntry, len(e.state.History))
	copy(out, e.state.History)
	return out
}

// State returns a copy of the run state.
func (e *Engine) State() RunState {
	state := e.state
	state.History = e.History()
	return state
}

// Outcome classifies the final meters once the run has terminated.
func (e *Engine) Outcome() (Outcome, bool) {
	if e.phase != PhaseTerminated {
		return Outcome{}, false
	}
	return OutcomeFor(e.state.Meters), true
}

// Snapshot is a read-only view of every accessor at one instant.
type Snapshot struct {
	Phase         Phase      `json:"phase"`
	TurnIndex     int        `json:"turn_index"`
	ScenarioCount int        `json:"scenario_count"`
	Scenario      *Scenario  `json:"scenario,omitempty"`
	Meters        Meters     `json:"meters"`
	Pending       *Pending   `json:"pending,omitempty"`
	History       []LogEntry `json:"history"`
	Outcome       *Outcome   `json:"outcome,omitempty"`
}

// Snapshot captures the current run for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         e.phase,
		TurnIndex:     e.state.TurnIndex,
		ScenarioCount: len(e.scenarios),
		Meters:        e.state.Meters,
		History:       e.History(),
	}
	if scenario, ok := e.CurrentScenario(); ok {
		snap.Scenario = &scenario
	}
	if pending, ok := e.Pending(); ok {
		snap.Pending = &pending
	}
	if outcome, ok := e.Outcome(); ok {
		snap.Outcome = &outcome
	}
	return snap
}
