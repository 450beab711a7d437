package conversation

import "errors"

// Domain-specific errors for the conversation package.
var (
	// ErrInsightGeneration is returned when the insight source cannot
	// produce the full batch of insight/question pairs. No session state
	// is stored when this happens.
	ErrInsightGeneration = errors.New("insight generation failed")
)
