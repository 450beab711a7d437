package conversation

// InitializeOutput is the result of starting a conversation: a new
// session id and the formatted message for turn 1.
type InitializeOutput struct {
	SessionID string
	Message   string
}

// SendOutput is the result of processing one user reply. Done mirrors
// the session's conversation_complete flag exactly.
type SendOutput struct {
	Message string
	Done    bool
}
