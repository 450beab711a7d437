package conversation

import (
	"context"

	"dashgen/internal/model"
)

// UseCase drives the turn-bounded clarification conversation.
type UseCase interface {
	// Initialize starts a conversation for the given profile: it
	// generates the full insight/question batch up front, creates a new
	// session, and returns the turn-1 message. A failed generation
	// leaves no session behind.
	Initialize(ctx context.Context, p model.DatasetProfile) (InitializeOutput, error)

	// Send records the user's reply, advances the turn, and returns
	// either the next turn's message or the closing message once the
	// conversation is complete. Sending to a complete conversation
	// returns the closing message again.
	Send(ctx context.Context, sessionID, message string) (SendOutput, error)

	// End discards the conversation's session state.
	End(ctx context.Context, sessionID string) error
}
