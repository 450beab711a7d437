package session

import (
	"context"

	"dashgen/internal/model"
)

// UseCase is the context manager for analysis sessions. Every mutating
// operation persists a full, re-validated snapshot before returning.
//
// Calls against one session id are expected to arrive sequentially from
// a single logical caller; concurrent writers to the same id are
// undefined (last writer wins on the persisted file). Independent
// sessions are fully isolated.
type UseCase interface {
	// Initialize loads the session with the given id, or creates a fresh
	// one at turn 1 if none exists. A stored document that fails
	// validation yields ErrCorruptState.
	Initialize(ctx context.Context, id string) (model.SessionContext, error)

	// UpdateDatasetProfile validates and stores the profile, setting the
	// session's dataset name from the profile title. Re-setting replaces
	// the previous profile.
	UpdateDatasetProfile(ctx context.Context, id string, profile model.DatasetProfile) error

	// AddUserInput appends a timestamped input entry. Any text is
	// accepted, including the empty string.
	AddUserInput(ctx context.Context, id, text, command string) error

	// AddAnalysisResult appends a timestamped analysis entry. The payload
	// is marshaled to JSON as-is.
	AddAnalysisResult(ctx context.Context, id, resultType string, payload any, command string) error

	// AdvanceTurn moves the conversation forward: below the turn cap it
	// increments the turn counter, at the cap it marks the conversation
	// complete. Calls on an already-complete session are no-ops.
	AdvanceTurn(ctx context.Context, id string) (model.SessionContext, error)

	// RecordTurn appends the user's reply and advances the turn in one
	// persisted mutation. A failed write leaves neither behind.
	RecordTurn(ctx context.Context, id, text, command string) (model.SessionContext, error)

	// Profile returns the stored profile, or nil when none is set.
	// Absence is not an error.
	Profile(ctx context.Context, id string) (*model.DatasetProfile, error)

	// Snapshot returns a read-only deep copy of the session context.
	Snapshot(ctx context.Context, id string) (model.SessionContext, error)

	// Delete removes the session's durable state.
	Delete(ctx context.Context, id string) error
}
