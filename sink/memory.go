package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

// MemorySink keeps artifacts in memory. Used in tests and dry runs.
type MemorySink struct {
	mu   sync.Mutex
	docs map[string][]byte

	// FailOn makes writes for the named artifact fail, for exercising
	// partial persistence.
	FailOn map[string]bool
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{docs: make(map[string][]byte)}
}

// Write stores the marshaled document under name.
func (s *MemorySink) Write(_ context.Context, name string, doc any) (Artifact, error) {
	if s.FailOn[name] {
		return Artifact{}, errors.SinkWrite(name, fmt.Errorf("write refused"))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Artifact{}, errors.SinkWrite(name, fmt.Errorf("encode: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = data

	return Artifact{
		ID:   newArtifactID(),
		Name: name,
		Size: int64(len(data)),
	}, nil
}

// Get returns the stored document bytes for name.
func (s *MemorySink) Get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.docs[name]
	return data, ok
}

// Len returns the number of stored artifacts.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
