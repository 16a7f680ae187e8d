// Package workflow wires the content generation pipeline: a fixed stage
// graph that turns one raw product record into an FAQ page, a product
// description page and a comparison page, persisted as JSON artifacts.
package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/dag"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/llm"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/logger"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/observability"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/sink"
)

// Config tunes the pipeline.
type Config struct {
	// MinQuestions is the minimum size of the generated question set.
	MinQuestions int
	// FAQSize is the number of questions selected for the FAQ page.
	FAQSize int
	// MaxParallel limits concurrent stages per level (0 = unlimited).
	MaxParallel int
	// Metrics enables per-stage metric recording when set.
	Metrics *observability.Metrics
}

func (c *Config) applyDefaults() {
	if c.MinQuestions <= 0 {
		c.MinQuestions = 15
	}
	if c.FAQSize <= 0 {
		c.FAQSize = 5
	}
}

// Workflow is a reusable pipeline instance. One Workflow can run many
// records; each run gets its own state.
type Workflow struct {
	cfg    Config
	graph  *dag.Graph
	engine *dag.Engine
	log    *logger.Logger
}

// RunResult is the outcome of one pipeline run.
type RunResult struct {
	RunID     string                     `json:"run_id"`
	Artifacts []sink.Artifact            `json:"artifacts"`
	Errors    []dag.StageError           `json:"errors"`
	Stages    map[string]dag.StageResult `json:"-"`
	Duration  time.Duration              `json:"duration"`
}

// HasArtifact reports whether an artifact with the given name was written.
func (r *RunResult) HasArtifact(name string) bool {
	for _, a := range r.Artifacts {
		if a.Name == name {
			return true
		}
	}
	return false
}

// New builds the pipeline graph. The graph is validated here, so a slot
// wiring mistake fails construction instead of a run.
func New(cfg Config, provider llm.Provider, store sink.Sink, log *logger.Logger) (*Workflow, error) {
	cfg.applyDefaults()
	if log == nil {
		log = logger.NewDefault("workflow")
	}

	stages := []dag.Stage{
		parseStage(provider),
		blocksStage(),
		questionsStage(provider, cfg.MinQuestions),
		faqStage(cfg.FAQSize),
		productPageStage(),
		comparisonStage(provider),
		sinkStage(store),
	}

	wrapped := make([]dag.Stage, len(stages))
	for i, st := range stages {
		s := dag.WithLogging(st, log)
		if cfg.Metrics != nil {
			s = dag.WithMetrics(s, cfg.Metrics)
		}
		wrapped[i] = dag.WithTracing(s, "pipeline")
	}

	graph, err := dag.NewGraph([]string{SlotRawRecord}, wrapped...)
	if err != nil {
		return nil, err
	}

	return &Workflow{
		cfg:    cfg,
		graph:  graph,
		engine: &dag.Engine{MaxParallel: cfg.MaxParallel},
		log:    log,
	}, nil
}

// Run executes the pipeline for one record and returns the artifacts
// written, the error ledger and per-stage outcomes.
func (w *Workflow) Run(ctx context.Context, record map[string]any) (*RunResult, error) {
	if len(record) == 0 {
		return nil, errors.InvalidInput("raw_record", "no product record provided")
	}

	runID := uuid.NewString()
	log := w.log.WithFields(logger.Fields(logger.FieldRunID, runID))
	log.Info("pipeline run started")

	state := dag.NewState(map[string]any{SlotRawRecord: record})

	result, err := w.engine.Execute(ctx, w.graph, state)
	if err != nil {
		return nil, err
	}

	artifacts, _, err := dag.ReadOptional(state, portArtifacts)
	if err != nil {
		return nil, err
	}

	run := &RunResult{
		RunID:     runID,
		Artifacts: artifacts,
		Errors:    state.Errors(),
		Stages:    result.StageResults,
		Duration:  result.Duration,
	}

	log.Info("pipeline run finished", logger.Fields(
		"artifacts", len(run.Artifacts),
		"errors", len(run.Errors),
		logger.FieldDuration, run.Duration.Milliseconds(),
	))
	return run, nil
}
