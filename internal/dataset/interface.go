package dataset

import (
	"context"

	"dashgen/internal/model"
)

// Profiler is the statistical-profiling collaborator: given a dataset
// artifact on disk it produces a validated profile. The profiling
// computation itself happens outside this service.
type Profiler interface {
	Profile(ctx context.Context, filePath string) (model.DatasetProfile, error)
}

// UseCase handles dataset intake: turning a collaborator-produced
// profile into session-bound state.
type UseCase interface {
	// Ingest validates the provided profile (inline or by path) and
	// binds it to the given session, creating the session when no id is
	// supplied.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)

	// Sample returns the canned demo profile.
	Sample() model.DatasetProfile
}
