package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/man3/internal/services/simulation/engine"
)

// Simulation owns the single play-through of one MCP server process.
type Simulation struct {
	mu     sync.Mutex
	source CatalogSource
	engine *engine.Engine
}

// NewSimulation returns a simulation that snapshots scenarios from source
// whenever a fresh run begins.
func NewSimulation(source CatalogSource) *Simulation {
	return &Simulation{source: source, engine: engine.New(currentCatalog(source).Scenarios())}
}

// do applies fn under the lock and returns the resulting snapshot. A failed
// transition leaves the run untouched.
func (s *Simulation) do(fn func(*engine.Engine) error) (engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.engine); err != nil {
		return s.engine.Snapshot(), describeEngineError(err)
	}
	return s.engine.Snapshot(), nil
}

func (s *Simulation) start(restart bool) (engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	phase := s.engine.Phase()
	if restart || phase == engine.PhaseNotStarted || phase == engine.PhaseTerminated {
		// Fresh runs pick up catalog reloads; an in-flight run never does.
		s.engine = engine.New(currentCatalog(s.source).Scenarios())
	}
	if err := s.engine.Start(); err != nil {
		return s.engine.Snapshot(), describeEngineError(err)
	}
	return s.engine.Snapshot(), nil
}

func describeEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrOutOfPhase):
		return fmt.Errorf("%w; call simulation_state to see the current phase", err)
	case errors.Is(err, engine.ErrInvalidOption):
		return fmt.Errorf("%w; pick an option index listed in the current scenario", err)
	default:
		return err
	}
}

// SimulationResult is the output of every simulation tool.
type SimulationResult struct {
	Run engine.Snapshot `json:"run" jsonschema:"simulation state after the call"`
}

// SimulationStartInput is the simulation_start tool input.
type SimulationStartInput struct {
	Restart bool `json:"restart,omitempty" jsonschema:"discard an in-flight run and start over"`
}

// SimulationStartTool defines the simulation_start tool.
func SimulationStartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "simulation_start",
		Description: "Starts the ASPICE decision simulation with full meters. Rejected mid-run unless restart is set.",
	}
}

// SimulationStartHandler starts or restarts the run.
func SimulationStartHandler(sim *Simulation) mcp.ToolHandlerFor[SimulationStartInput, SimulationResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SimulationStartInput) (*mcp.CallToolResult, SimulationResult, error) {
		snap, err := sim.start(input.Restart)
		if err != nil {
			return nil, SimulationResult{}, err
		}
		return nil, SimulationResult{Run: snap}, nil
	}
}

// SimulationChooseInput is the simulation_choose tool input.
type SimulationChooseInput struct {
	Option int `json:"option" jsonschema:"0-based index of the option to commit"`
}

// SimulationChooseTool defines the simulation_choose tool.
func SimulationChooseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "simulation_choose",
		Description: "Chooses an option for the current scenario and returns its feedback and impact. Meters change on advance.",
	}
}

// SimulationChooseHandler records a choice.
func SimulationChooseHandler(sim *Simulation) mcp.ToolHandlerFor[SimulationChooseInput, SimulationResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SimulationChooseInput) (*mcp.CallToolResult, SimulationResult, error) {
		snap, err := sim.do(func(e *engine.Engine) error { return e.ChooseOption(input.Option) })
		if err != nil {
			return nil, SimulationResult{}, err
		}
		return nil, SimulationResult{Run: snap}, nil
	}
}

// SimulationAdvanceInput is the simulation_advance tool input.
type SimulationAdvanceInput struct{}

// SimulationAdvanceTool defines the simulation_advance tool.
func SimulationAdvanceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "simulation_advance",
		Description: "Commits the chosen option to the meters and moves to the next scenario or the final report.",
	}
}

// SimulationAdvanceHandler commits the pending choice.
func SimulationAdvanceHandler(sim *Simulation) mcp.ToolHandlerFor[SimulationAdvanceInput, SimulationResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ SimulationAdvanceInput) (*mcp.CallToolResult, SimulationResult, error) {
		snap, err := sim.do(func(e *engine.Engine) error { return e.Advance() })
		if err != nil {
			return nil, SimulationResult{}, err
		}
		return nil, SimulationResult{Run: snap}, nil
	}
}

// SimulationStateInput is the simulation_state tool input.
type SimulationStateInput struct{}

// SimulationStateTool defines the simulation_state tool.
func SimulationStateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "simulation_state",
		Description: "Returns the current simulation phase, scenario, meters, pending feedback, history and outcome.",
	}
}

// SimulationStateHandler reads the run without changing it.
func SimulationStateHandler(sim *Simulation) mcp.ToolHandlerFor[SimulationStateInput, SimulationResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ SimulationStateInput) (*mcp.CallToolResult, SimulationResult, error) {
		snap, _ := sim.do(func(*engine.Engine) error { return nil })
		return nil, SimulationResult{Run: snap}, nil
	}
}
