package dag

import (
	"context"
	"sync"
	"time"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

// Engine executes a graph in dependency order.
type Engine struct {
	// MaxParallel limits concurrent stages per level (0 = unlimited).
	MaxParallel int
}

// Execute runs all stages level by level. Stages within one level run
// concurrently, bounded by MaxParallel.
//
// A stage failure does not stop the run: the failure is recorded in the
// state's error ledger and downstream stages that require one of the failed
// stage's outputs are skipped, each with its own ledger entry naming the
// upstream cause. Stages on independent branches keep running.
//
// Execute itself returns an error only for context cancellation or a fatal
// invariant violation (a duplicate write or dependency read that slipped
// past construction), since those indicate a bug rather than a data failure.
func (e *Engine) Execute(ctx context.Context, g *Graph, state *State) (*Result, error) {
	start := time.Now()

	result := &Result{
		StageResults: make(map[string]StageResult, len(g.Stages())),
	}

	for _, level := range g.Levels() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var toRun []Stage
		for _, id := range level {
			st := g.Stage(id)
			if upstream, blocked := e.blockedBy(g, st, result); blocked {
				skipErr := errors.StageSkipped(id, upstream)
				state.AppendError(id, skipErr)
				result.StageResults[id] = StageResult{
					ID:        id,
					Status:    StatusSkipped,
					Error:     skipErr,
					SkippedOn: upstream,
				}
				continue
			}
			toRun = append(toRun, st)
		}

		if len(toRun) == 0 {
			continue
		}

		e.executeLevel(ctx, state, toRun, result)

		for _, st := range toRun {
			sr := result.StageResults[st.ID()]
			if sr.Error != nil && errors.IsFatalCode(errors.CodeOf(sr.Error)) {
				result.Duration = time.Since(start)
				return result, sr.Error
			}
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

// blockedBy returns the first upstream stage whose failure or skip prevents
// this stage from running. Optional inputs never block.
func (e *Engine) blockedBy(g *Graph, st Stage, result *Result) (string, bool) {
	for _, in := range st.Reads() {
		if in.Optional {
			continue
		}
		prod, ok := g.Producer(in.Slot)
		if !ok {
			continue // seed
		}
		if sr, done := result.StageResults[prod]; done && sr.Status != StatusCompleted {
			return prod, true
		}
	}
	return "", false
}

func (e *Engine) executeLevel(ctx context.Context, state *State, stages []Stage, result *Result) {
	var mu sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, e.concurrency(len(stages)))

	for _, st := range stages {
		wg.Add(1)
		go func(st Stage) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			sr := e.executeStage(ctx, st, state)
			mu.Lock()
			result.StageResults[st.ID()] = sr
			mu.Unlock()
		}(st)
	}

	wg.Wait()
}

func (e *Engine) executeStage(ctx context.Context, st Stage, state *State) StageResult {
	start := time.Now()
	err := st.Run(ctx, state)
	duration := time.Since(start)

	if err != nil {
		state.AppendError(st.ID(), err)
		return StageResult{
			ID:       st.ID(),
			Status:   StatusFailed,
			Duration: duration,
			Error:    err,
		}
	}

	return StageResult{
		ID:       st.ID(),
		Status:   StatusCompleted,
		Duration: duration,
	}
}

func (e *Engine) concurrency(levelSize int) int {
	if e.MaxParallel <= 0 || e.MaxParallel > levelSize {
		return levelSize
	}
	return e.MaxParallel
}
