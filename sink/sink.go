// Package sink persists generated pages as artifacts. Each page is written
// independently so one failed write never blocks the others.
package sink

import (
	"context"

	"github.com/google/uuid"
)

// Artifact describes one persisted page.
type Artifact struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Size int64  `json:"size"`
}

// Sink stores one document per artifact name.
type Sink interface {
	// Write persists doc under name and returns the artifact record.
	Write(ctx context.Context, name string, doc any) (Artifact, error)
}

func newArtifactID() string {
	return uuid.NewString()
}
