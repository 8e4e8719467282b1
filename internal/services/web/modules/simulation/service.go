package simulation

import (
	"errors"
	"log"

	"github.com/louisbranch/man3/internal/services/content/catalog"
	"github.com/louisbranch/man3/internal/services/simulation/engine"
	"github.com/louisbranch/man3/internal/services/simulation/runs"
	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
)

// ExpiredRunNotice is shown when the run cookie names a run the registry no
// longer holds.
const ExpiredRunNotice = "Your previous simulation expired. Start a new one to continue."

// RunStore keeps live runs by ID.
type RunStore interface {
	Create(scenarios []engine.Scenario) (*runs.Run, error)
	Get(runID string) (*runs.Run, error)
	Restart(runID string, scenarios []engine.Scenario) (*runs.Run, error)
}

var _ RunStore = (*runs.Registry)(nil)

// result is what a handler renders after an operation.
type result struct {
	RunID    string
	Snapshot engine.Snapshot
	Notice   string
	// Expired is set when the cookie must be cleared.
	Expired bool
}

type service struct {
	runs   RunStore
	source CatalogSource
}

func newService(store RunStore, source CatalogSource) service {
	return service{runs: store, source: source}
}

func (s service) scenarios() []engine.Scenario {
	if s.source != nil {
		if c := s.source.Current(); c != nil {
			return c.Scenarios()
		}
	}
	return catalog.Default().Scenarios()
}

func (s service) preview(notice string, expired bool) result {
	return result{Snapshot: engine.New(s.scenarios()).Snapshot(), Notice: notice, Expired: expired}
}

// view shows the run behind runID, or the intro when there is none.
func (s service) view(runID string) result {
	if runID == "" || s.runs == nil {
		return s.preview("", false)
	}
	run, err := s.runs.Get(runID)
	if err != nil {
		return s.preview(ExpiredRunNotice, true)
	}
	return result{RunID: run.ID(), Snapshot: run.Snapshot()}
}

// start begins the run behind runID, creating one when the cookie is absent
// or stale. A finished run is replaced so the new play-through uses the
// current catalog.
func (s service) start(runID string) (result, error) {
	if s.runs == nil {
		return result{}, errUnavailable
	}
	run, err := s.runs.Get(runID)
	if err == nil && run.Snapshot().Phase == engine.PhaseTerminated {
		run, err = s.runs.Restart(runID, s.scenarios())
		if err != nil {
			return result{}, err
		}
	} else if err != nil {
		run, err = s.runs.Create(s.scenarios())
		if err != nil {
			return result{}, err
		}
		log.Printf("simulation run created run_id=%s", run.ID())
	}
	snap, err := run.Do(func(e *engine.Engine) error { return e.Start() })
	if err != nil {
		return result{}, mapEngineError(err)
	}
	return result{RunID: run.ID(), Snapshot: snap}, nil
}

func (s service) choose(runID string, option int) (result, error) {
	return s.do(runID, func(e *engine.Engine) error { return e.ChooseOption(option) })
}

func (s service) advance(runID string) (result, error) {
	return s.do(runID, func(e *engine.Engine) error { return e.Advance() })
}

// restart replaces the run with a fresh engine over the current catalog and
// starts it.
func (s service) restart(runID string) (result, error) {
	if s.runs == nil {
		return result{}, errUnavailable
	}
	run, err := s.runs.Restart(runID, s.scenarios())
	if err != nil {
		return result{}, err
	}
	snap, err := run.Do(func(e *engine.Engine) error { return e.Start() })
	if err != nil {
		return result{}, mapEngineError(err)
	}
	return result{RunID: run.ID(), Snapshot: snap}, nil
}

func (s service) do(runID string, fn func(*engine.Engine) error) (result, error) {
	if s.runs == nil {
		return result{}, errUnavailable
	}
	run, err := s.runs.Get(runID)
	if errors.Is(err, runs.ErrRunNotFound) {
		if runID == "" {
			return s.preview("", false), nil
		}
		return s.preview(ExpiredRunNotice, true), nil
	}
	if err != nil {
		return result{}, err
	}
	snap, err := run.Do(fn)
	if err != nil {
		return result{}, mapEngineError(err)
	}
	return result{RunID: run.ID(), Snapshot: snap}, nil
}

var errUnavailable = apperrors.E(apperrors.KindUnavailable, "simulation runs are not configured")

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrOutOfPhase):
		return apperrors.Wrap(apperrors.KindConflict, "simulation step is out of order", err)
	case errors.Is(err, engine.ErrInvalidOption):
		return apperrors.Wrap(apperrors.KindInvalidInput, "unknown option", err)
	case errors.Is(err, engine.ErrEmptyCatalog):
		return apperrors.Wrap(apperrors.KindUnavailable, "no scenarios loaded", err)
	default:
		return err
	}
}
