package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// MaxConversationTurns caps the clarification conversation. After this
// many turns the orchestrator marks the conversation complete.
const MaxConversationTurns = 2

// Analysis result types recorded in a session's history.
const (
	AnalysisTypeInsightBatch    = "insight_batch"
	AnalysisTypeDashboardConfig = "dashboard_config"
)

// SessionInfo is the session's bookkeeping record.
type SessionInfo struct {
	CreatedAt            time.Time `json:"created_at"`
	LastUpdated          time.Time `json:"last_updated"`
	DatasetName          string    `json:"dataset_name,omitempty"`
	CurrentTurn          int       `json:"current_turn"`
	ConversationComplete bool      `json:"conversation_complete"`
}

// UserInput is one recorded user message.
type UserInput struct {
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"input"`
	Command   string    `json:"command,omitempty"`
}

// AnalysisResult is one recorded analysis artifact (insight batch,
// dashboard config, turn transcript, ...).
type AnalysisResult struct {
	Timestamp time.Time       `json:"timestamp"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Command   string          `json:"command,omitempty"`
}

// SessionContext is the durable state of one analysis session.
// It is persisted as a whole, re-validated snapshot after every mutation.
type SessionContext struct {
	SessionInfo     SessionInfo      `json:"session_info"`
	DatasetProfile  *DatasetProfile  `json:"dataset_profile,omitempty"`
	UserInputs      []UserInput      `json:"user_inputs"`
	AnalysisHistory []AnalysisResult `json:"analysis_history"`
}

// NewSessionContext constructs a fresh context at turn 1.
func NewSessionContext(now time.Time) SessionContext {
	return SessionContext{
		SessionInfo: SessionInfo{
			CreatedAt:   now,
			LastUpdated: now,
			CurrentTurn: 1,
		},
		UserInputs:      []UserInput{},
		AnalysisHistory: []AnalysisResult{},
	}
}

// Validate checks the structural invariants of a session context.
// Both loads and saves go through this check.
func (s *SessionContext) Validate() error {
	if s.SessionInfo.CreatedAt.IsZero() {
		return fmt.Errorf("session_info.created_at is required")
	}
	if s.SessionInfo.CurrentTurn < 1 || s.SessionInfo.CurrentTurn > MaxConversationTurns {
		return fmt.Errorf("session_info.current_turn out of range: %d", s.SessionInfo.CurrentTurn)
	}
	if s.DatasetProfile != nil {
		if err := s.DatasetProfile.Validate(); err != nil {
			return fmt.Errorf("dataset_profile: %w", err)
		}
	}
	for i, in := range s.UserInputs {
		if in.Timestamp.IsZero() {
			return fmt.Errorf("user_inputs[%d]: timestamp is required", i)
		}
	}
	for i, ar := range s.AnalysisHistory {
		if ar.Timestamp.IsZero() {
			return fmt.Errorf("analysis_history[%d]: timestamp is required", i)
		}
		if ar.Type == "" {
			return fmt.Errorf("analysis_history[%d]: type is required", i)
		}
	}
	return nil
}

// Clone returns a deep copy, so callers can hand out snapshots without
// exposing internal state to mutation.
func (s SessionContext) Clone() SessionContext {
	out := s
	if s.DatasetProfile != nil {
		profile := s.DatasetProfile.Clone()
		out.DatasetProfile = &profile
	}
	out.UserInputs = append([]UserInput(nil), s.UserInputs...)
	out.AnalysisHistory = make([]AnalysisResult, len(s.AnalysisHistory))
	for i, ar := range s.AnalysisHistory {
		cp := ar
		cp.Payload = append(json.RawMessage(nil), ar.Payload...)
		out.AnalysisHistory[i] = cp
	}
	return out
}
