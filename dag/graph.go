package dag

import (
	"fmt"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

// Graph is a validated stage graph. It records which stage produces each
// slot and groups stages into dependency levels for execution.
type Graph struct {
	stages   []Stage          // declaration order
	byID     map[string]Stage
	producer map[string]string // slot -> producing stage id
	seeds    map[string]bool   // slots provided as run inputs
	levels   [][]string
}

// NewGraph validates stage declarations and builds execution levels.
//
// Construction fails when:
//   - two stages share an ID
//   - two stages (or a stage and a seed) write the same slot (DuplicateWrite)
//   - a stage reads a slot no stage or seed produces
//   - the dependency relation contains a cycle (CyclicGraph)
func NewGraph(seeds []string, stages ...Stage) (*Graph, error) {
	g := &Graph{
		stages:   stages,
		byID:     make(map[string]Stage, len(stages)),
		producer: make(map[string]string),
		seeds:    make(map[string]bool, len(seeds)),
	}
	for _, slot := range seeds {
		g.seeds[slot] = true
	}

	for _, st := range stages {
		if _, ok := g.byID[st.ID()]; ok {
			return nil, fmt.Errorf("dag: duplicate stage id %q", st.ID())
		}
		g.byID[st.ID()] = st

		for _, slot := range st.Writes() {
			if g.seeds[slot] {
				return nil, errors.DuplicateWrite(slot, st.ID())
			}
			if prev, ok := g.producer[slot]; ok {
				return nil, errors.DuplicateWrite(slot, prev, st.ID())
			}
			g.producer[slot] = st.ID()
		}
	}

	for _, st := range stages {
		for _, in := range st.Reads() {
			if g.seeds[in.Slot] {
				continue
			}
			if _, ok := g.producer[in.Slot]; !ok {
				return nil, fmt.Errorf("dag: stage %q reads slot %q which no stage or seed produces", st.ID(), in.Slot)
			}
		}
	}

	levels, err := g.buildLevels()
	if err != nil {
		return nil, err
	}
	g.levels = levels
	return g, nil
}

// Stage returns the stage with the given id, or nil.
func (g *Graph) Stage(id string) Stage { return g.byID[id] }

// Stages returns all stages in declaration order.
func (g *Graph) Stages() []Stage { return g.stages }

// Producer returns the stage id that writes the given slot. Seeds have no
// producer.
func (g *Graph) Producer(slot string) (string, bool) {
	id, ok := g.producer[slot]
	return id, ok
}

// Levels returns the dependency levels. Stages within one level have no
// dependencies on each other and may run concurrently. Ordering within a
// level follows declaration order, so levels are deterministic for a given
// set of declarations.
func (g *Graph) Levels() [][]string {
	return g.levels
}

// dependencies returns the ids of stages whose outputs this stage reads.
// Optional inputs still create ordering edges.
func (g *Graph) dependencies(st Stage) []string {
	seen := make(map[string]bool)
	var deps []string
	for _, in := range st.Reads() {
		prod, ok := g.producer[in.Slot]
		if !ok || seen[prod] {
			continue
		}
		seen[prod] = true
		deps = append(deps, prod)
	}
	return deps
}

// buildLevels uses Kahn's algorithm to group stages by dependency level,
// visiting stages in declaration order for deterministic output.
func (g *Graph) buildLevels() ([][]string, error) {
	inDegree := make(map[string]int, len(g.stages))
	dependents := make(map[string][]string)

	for _, st := range g.stages {
		inDegree[st.ID()] = 0
	}
	for _, st := range g.stages {
		for _, dep := range g.dependencies(st) {
			inDegree[st.ID()]++
			dependents[dep] = append(dependents[dep], st.ID())
		}
	}

	var queue []string
	for _, st := range g.stages {
		if inDegree[st.ID()] == 0 {
			queue = append(queue, st.ID())
		}
	}

	var levels [][]string
	visited := 0

	for len(queue) > 0 {
		levels = append(levels, queue)
		visited += len(queue)

		ready := make(map[string]bool)
		for _, id := range queue {
			for _, dep := range dependents[id] {
				inDegree[dep]--
				if inDegree[dep] == 0 {
					ready[dep] = true
				}
			}
		}

		// Rebuild in declaration order to keep levels deterministic.
		var next []string
		for _, st := range g.stages {
			if ready[st.ID()] {
				next = append(next, st.ID())
			}
		}
		queue = next
	}

	if visited != len(g.stages) {
		var stuck []string
		for _, st := range g.stages {
			if inDegree[st.ID()] > 0 {
				stuck = append(stuck, st.ID())
			}
		}
		return nil, errors.CyclicGraph(fmt.Sprintf("stages %v form a dependency cycle", stuck))
	}

	return levels, nil
}
