// Package profilejson loads statistical-profiler output from disk into
// validated DatasetProfile values.
package profilejson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dashgen/internal/model"
	"dashgen/internal/session"
)

// Loader reads profile JSON documents produced by the profiling
// collaborator. Every load goes through schema validation; a document
// that does not validate never becomes a typed value.
type Loader struct{}

// New creates a profile JSON loader.
func New() *Loader {
	return &Loader{}
}

// Profile loads, decodes, and validates the profile document at
// filePath.
func (l *Loader) Profile(ctx context.Context, filePath string) (model.DatasetProfile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return model.DatasetProfile{}, fmt.Errorf("failed to read profile %q: %w", filePath, err)
	}

	var p model.DatasetProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return model.DatasetProfile{}, fmt.Errorf("%w: %q is not valid profile JSON: %v", session.ErrInvalidProfile, filePath, err)
	}
	if err := p.Validate(); err != nil {
		return model.DatasetProfile{}, fmt.Errorf("%w: %q: %v", session.ErrInvalidProfile, filePath, err)
	}

	return p, nil
}
