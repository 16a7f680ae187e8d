package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

// FileSink writes artifacts as pretty-printed JSON files under a base
// directory.
type FileSink struct {
	basePath string
}

// NewFileSink creates a FileSink rooted at basePath, creating the directory
// if needed.
func NewFileSink(basePath string) (*FileSink, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("sink: resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("sink: create base directory: %w", err)
	}
	return &FileSink{basePath: abs}, nil
}

// BasePath returns the resolved output directory.
func (s *FileSink) BasePath() string { return s.basePath }

// Write marshals doc and writes it to "{basePath}/{name}.json".
func (s *FileSink) Write(ctx context.Context, name string, doc any) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Artifact{}, errors.SinkWrite(name, fmt.Errorf("encode: %w", err))
	}

	path := filepath.Join(s.basePath, filepath.Clean(name)+".json")
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return Artifact{}, errors.SinkWrite(name, err)
	}

	return Artifact{
		ID:   newArtifactID(),
		Name: name,
		Path: path,
		Size: int64(len(data)),
	}, nil
}
