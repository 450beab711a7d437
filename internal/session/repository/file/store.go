// Package file implements the session repository on top of one JSON
// document per session, with an advisory markdown transcript mirror.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dashgen/internal/model"
	"dashgen/internal/session"
	pkgLog "dashgen/pkg/log"
)

// Store is a file-backed session repository. One <id>.json document per
// session, plus an optional <id>.md mirror for humans.
type Store struct {
	dir           string
	mirrorEnabled bool
	l             pkgLog.Logger
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(l pkgLog.Logger, dir string, mirrorEnabled bool) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("session dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session dir %q: %w", dir, err)
	}
	return &Store{dir: dir, mirrorEnabled: mirrorEnabled, l: l}, nil
}

// Load reads and validates the session document for id.
func (s *Store) Load(ctx context.Context, id string) (model.SessionContext, error) {
	data, err := os.ReadFile(s.jsonPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.SessionContext{}, session.ErrNotFound
		}
		return model.SessionContext{}, fmt.Errorf("failed to read session %s: %w", id, err)
	}

	var sc model.SessionContext
	if err := json.Unmarshal(data, &sc); err != nil {
		return model.SessionContext{}, fmt.Errorf("%w: session %s: %v", session.ErrCorruptState, id, err)
	}
	if err := sc.Validate(); err != nil {
		return model.SessionContext{}, fmt.Errorf("%w: session %s: %v", session.ErrCorruptState, id, err)
	}

	return sc, nil
}

// Save validates sc and atomically replaces the session document:
// write to a temp file in the same directory, then rename over the
// target. A failed write never leaves a half-written document.
func (s *Store) Save(ctx context.Context, id string, sc model.SessionContext) error {
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("refusing to persist invalid session %s: %w", id, err)
	}

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", id, err)
	}

	target := s.jsonPath(id)
	tmp, err := os.CreateTemp(s.dir, id+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for session %s: %w", id, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for session %s: %w", id, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace session %s: %w", id, err)
	}

	s.writeMirror(ctx, id, sc)

	return nil
}

// Delete removes the session document and its mirror. Deleting an
// unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.jsonPath(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if err := os.Remove(s.markdownPath(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.l.Warnf(ctx, "failed to delete session mirror %s: %v", id, err)
	}
	return nil
}

func (s *Store) jsonPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *Store) markdownPath(id string) string {
	return filepath.Join(s.dir, id+".md")
}
