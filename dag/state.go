package dag

import (
	"fmt"
	"sync"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

// StageError is one entry in the run's error ledger. Every failure is tagged
// with the stage that produced it.
type StageError struct {
	StageID string           `json:"stage_id"`
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
	Err     error            `json:"-"`
}

// State is a thread-safe slot store shared by all stages of one run.
// Each slot is written exactly once; a second write is rejected. Reads of
// unwritten slots are rejected so a stage can never observe a partially
// produced input.
//
// State also carries the append-only error ledger for the run.
type State struct {
	mu    sync.RWMutex
	slots map[string]any
	errs  []StageError
}

// NewState creates a State pre-populated with seed slots (the run inputs).
func NewState(seeds map[string]any) *State {
	slots := make(map[string]any, len(seeds))
	for k, v := range seeds {
		slots[k] = v
	}
	return &State{slots: slots}
}

// Get retrieves a slot value. Reading a slot that has not been written
// returns a MissingDependency error.
func (s *State) Get(slot string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[slot]
	if !ok {
		return nil, errors.MissingDependency(slot)
	}
	return v, nil
}

// Has reports whether a slot has been written.
func (s *State) Has(slot string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.slots[slot]
	return ok
}

// Set writes a slot value. Writing a slot twice returns a DuplicateWrite
// error and leaves the original value untouched.
func (s *State) Set(slot string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[slot]; ok {
		return errors.DuplicateWrite(slot)
	}
	s.slots[slot] = value
	return nil
}

// Slots returns the names of all written slots.
func (s *State) Slots() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.slots))
	for name := range s.slots {
		names = append(names, name)
	}
	return names
}

// AppendError records a failure in the run's error ledger, tagged with the
// stage it belongs to.
func (s *State) AppendError(stageID string, err error) {
	entry := StageError{
		StageID: stageID,
		Code:    errors.CodeOf(err),
		Message: err.Error(),
		Err:     err,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, entry)
}

// Errors returns a copy of the error ledger in append order.
func (s *State) Errors() []StageError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StageError, len(s.errs))
	copy(out, s.errs)
	return out
}

// ErrorsFor returns the ledger entries tagged with the given stage.
func (s *State) ErrorsFor(stageID string) []StageError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []StageError
	for _, e := range s.errs {
		if e.StageID == stageID {
			out = append(out, e)
		}
	}
	return out
}

// Port is a compile-time typed accessor for a State slot.
// It prevents type mismatches between stages at compile time.
type Port[T any] struct {
	Slot string
}

// Read retrieves a typed value from state using a Port.
// A missing slot yields a MissingDependency error; a type mismatch is an
// internal error since the graph should make it impossible.
func Read[T any](state *State, port Port[T]) (T, error) {
	var zero T
	raw, err := state.Get(port.Slot)
	if err != nil {
		return zero, err
	}
	val, ok := raw.(T)
	if !ok {
		return zero, errors.Internal(fmt.Errorf("slot %q: expected %T, got %T", port.Slot, zero, raw))
	}
	return val, nil
}

// ReadOptional retrieves a typed value, reporting absence instead of failing.
// Used for optional inputs where the producer may have failed.
func ReadOptional[T any](state *State, port Port[T]) (T, bool, error) {
	var zero T
	if !state.Has(port.Slot) {
		return zero, false, nil
	}
	val, err := Read(state, port)
	if err != nil {
		return zero, false, err
	}
	return val, true, nil
}

// Write stores a typed value into state using a Port.
func Write[T any](state *State, port Port[T], value T) error {
	return state.Set(port.Slot, value)
}
