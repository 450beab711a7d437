package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewSessionContext(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sc := NewSessionContext(now)

	if sc.SessionInfo.CurrentTurn != 1 {
		t.Errorf("CurrentTurn = %d, want 1", sc.SessionInfo.CurrentTurn)
	}
	if sc.SessionInfo.ConversationComplete {
		t.Error("fresh context already complete")
	}
	if sc.UserInputs == nil || sc.AnalysisHistory == nil {
		t.Error("history slices not initialized")
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("fresh context fails validation: %v", err)
	}
}

func TestSessionContextValidate(t *testing.T) {
	now := time.Now()

	sc := NewSessionContext(now)
	sc.SessionInfo.CurrentTurn = MaxConversationTurns + 1
	if err := sc.Validate(); err == nil {
		t.Error("out-of-range turn accepted")
	}

	sc = NewSessionContext(now)
	sc.UserInputs = append(sc.UserInputs, UserInput{Text: "no timestamp"})
	if err := sc.Validate(); err == nil {
		t.Error("untimestamped input accepted")
	}

	sc = NewSessionContext(now)
	sc.AnalysisHistory = append(sc.AnalysisHistory, AnalysisResult{Timestamp: now})
	if err := sc.Validate(); err == nil {
		t.Error("untyped analysis result accepted")
	}
}

func TestSessionContextClone(t *testing.T) {
	now := time.Now()
	sc := NewSessionContext(now)
	minAmount := 1.5
	sc.DatasetProfile = &DatasetProfile{
		Analysis: Analysis{Title: "orders"},
		Table:    Table{NVar: 2, Types: map[string]int{VarTypeNumeric: 1, VarTypeCategorical: 1}},
		Variables: map[string]Variable{
			"amount": {Type: VarTypeNumeric, Min: &minAmount},
			"region": {Type: VarTypeCategorical, ValueCounts: map[string]int{"north": 10}},
		},
		Alerts: []string{"a"},
	}
	sc.UserInputs = append(sc.UserInputs, UserInput{Timestamp: now, Text: "original"})
	sc.AnalysisHistory = append(sc.AnalysisHistory, AnalysisResult{
		Timestamp: now, Type: "insight_batch", Payload: json.RawMessage(`{"k":1}`),
	})

	cp := sc.Clone()
	cp.DatasetProfile.Variables["injected"] = Variable{Type: VarTypeText}
	cp.DatasetProfile.Variables["region"].ValueCounts["north"] = 99
	*cp.DatasetProfile.Variables["amount"].Min = 42
	cp.DatasetProfile.Table.Types[VarTypeNumeric] = 99
	cp.DatasetProfile.Alerts[0] = "tampered"
	cp.UserInputs[0].Text = "tampered"
	cp.AnalysisHistory[0].Payload[2] = 'x'

	if len(sc.DatasetProfile.Variables) != 2 {
		t.Error("clone shares the variable map")
	}
	if sc.DatasetProfile.Variables["region"].ValueCounts["north"] != 10 {
		t.Error("clone shares a variable's value counts")
	}
	if *sc.DatasetProfile.Variables["amount"].Min != 1.5 {
		t.Error("clone shares a variable's numeric stats")
	}
	if sc.DatasetProfile.Table.Types[VarTypeNumeric] != 1 {
		t.Error("clone shares the type histogram")
	}
	if sc.DatasetProfile.Alerts[0] != "a" {
		t.Error("clone shares the alerts slice")
	}
	if sc.UserInputs[0].Text != "original" {
		t.Error("clone shares the inputs slice")
	}
	if string(sc.AnalysisHistory[0].Payload) != `{"k":1}` {
		t.Error("clone shares payload bytes")
	}
}
