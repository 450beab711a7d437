package chartspec

import "errors"

// Domain-specific errors for the chartspec package.
var (
	// ErrConversationIncomplete is returned when a dashboard is
	// requested before both clarification turns are consumed.
	ErrConversationIncomplete = errors.New("conversation is not complete")

	// ErrConfigParse is returned when the model response carries no
	// valid dashboard configuration. Parsing is all-or-nothing.
	ErrConfigParse = errors.New("failed to parse dashboard configuration")

	// ErrNoConfig is returned when a session has no stored dashboard
	// configuration to export.
	ErrNoConfig = errors.New("no dashboard configuration generated yet")
)
