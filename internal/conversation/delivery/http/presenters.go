package http

import (
	"errors"
	"time"

	"dashgen/internal/conversation"
	"dashgen/internal/dataset"
	"dashgen/internal/model"
)

// --- Request DTOs ---

type initializeReq struct {
	Profile   *model.DatasetProfile `json:"profile"`
	UseSample bool                  `json:"use_sample"`
}

func (r initializeReq) validate() error {
	if r.Profile == nil && !r.UseSample {
		return errors.New("either profile or use_sample is required")
	}
	return nil
}

func (r initializeReq) toProfile() model.DatasetProfile {
	if r.Profile != nil {
		return *r.Profile
	}
	return dataset.SampleProfile()
}

type sendReq struct {
	SessionID string `json:"-"`
	Message   string `json:"message"`
}

// --- Response DTOs ---

type initializeResp struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (h *handler) newInitializeResp(out conversation.InitializeOutput) initializeResp {
	return initializeResp{
		SessionID: out.SessionID,
		Message:   out.Message,
	}
}

type sendResp struct {
	Message string `json:"message"`
	Done    bool   `json:"done"`
}

func (h *handler) newSendResp(out conversation.SendOutput) sendResp {
	return sendResp{
		Message: out.Message,
		Done:    out.Done,
	}
}

type userInputResp struct {
	Timestamp time.Time `json:"timestamp"`
	Input     string    `json:"input"`
	Command   string    `json:"command,omitempty"`
}

type snapshotResp struct {
	SessionID            string          `json:"session_id"`
	CreatedAt            time.Time       `json:"created_at"`
	LastUpdated          time.Time       `json:"last_updated"`
	DatasetName          string          `json:"dataset_name,omitempty"`
	CurrentTurn          int             `json:"current_turn"`
	ConversationComplete bool            `json:"conversation_complete"`
	UserInputs           []userInputResp `json:"user_inputs"`
}

func (h *handler) newSnapshotResp(id string, sc model.SessionContext) snapshotResp {
	inputs := make([]userInputResp, len(sc.UserInputs))
	for i, in := range sc.UserInputs {
		inputs[i] = userInputResp{
			Timestamp: in.Timestamp,
			Input:     in.Text,
			Command:   in.Command,
		}
	}
	return snapshotResp{
		SessionID:            id,
		CreatedAt:            sc.SessionInfo.CreatedAt,
		LastUpdated:          sc.SessionInfo.LastUpdated,
		DatasetName:          sc.SessionInfo.DatasetName,
		CurrentTurn:          sc.SessionInfo.CurrentTurn,
		ConversationComplete: sc.SessionInfo.ConversationComplete,
		UserInputs:           inputs,
	}
}
