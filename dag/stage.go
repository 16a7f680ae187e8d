package dag

import "context"

// Capability describes what a stage needs to run. Pure stages are
// deterministic transformations of state; reasoning stages call an external
// reasoning service and own their retry policy.
type Capability string

const (
	CapabilityPure      Capability = "pure"
	CapabilityReasoning Capability = "reasoning"
)

// Input declares one slot a stage reads. Optional inputs create ordering
// edges but do not propagate skips: the stage still runs when the producer
// failed, and must tolerate the slot being absent.
type Input struct {
	Slot     string
	Optional bool
}

// Req declares a required input slot.
func Req(slot string) Input { return Input{Slot: slot} }

// Opt declares an optional input slot.
func Opt(slot string) Input { return Input{Slot: slot, Optional: true} }

// Stage is the execution unit in a graph.
type Stage interface {
	// ID returns the unique stage identifier.
	ID() string
	// Reads declares the slots this stage consumes.
	Reads() []Input
	// Writes declares the slots this stage produces. A slot has exactly one
	// producer in a valid graph.
	Writes() []string
	// Capability reports whether the stage is pure or calls a reasoning service.
	Capability() Capability
	// Run executes the stage against shared state.
	Run(ctx context.Context, state *State) error
}

// StageConfig configures a function-backed stage.
type StageConfig struct {
	ID         string
	Reads      []Input
	Writes     []string
	Capability Capability
	Run        func(ctx context.Context, state *State) error
}

// New creates a Stage from a config.
func New(cfg StageConfig) Stage {
	if cfg.Capability == "" {
		cfg.Capability = CapabilityPure
	}
	return &funcStage{cfg: cfg}
}

type funcStage struct {
	cfg StageConfig
}

func (s *funcStage) ID() string             { return s.cfg.ID }
func (s *funcStage) Reads() []Input         { return s.cfg.Reads }
func (s *funcStage) Writes() []string       { return s.cfg.Writes }
func (s *funcStage) Capability() Capability { return s.cfg.Capability }

func (s *funcStage) Run(ctx context.Context, state *State) error {
	return s.cfg.Run(ctx, state)
}
