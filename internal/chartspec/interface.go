package chartspec

import "context"

// UseCase turns a completed conversation into a dashboard
// configuration.
type UseCase interface {
	// Generate builds the dashboard prompt from the session's profile
	// and conversation, calls the model, and stores the parsed
	// configuration in the session history.
	Generate(ctx context.Context, sessionID string) (DashboardConfig, error)

	// Export returns the most recently generated configuration, or
	// ErrNoConfig when the session has none.
	Export(ctx context.Context, sessionID string) (DashboardConfig, error)
}
