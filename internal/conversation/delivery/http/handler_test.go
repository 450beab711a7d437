package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"dashgen/internal/conversation"
	"dashgen/internal/model"
	"dashgen/internal/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockConversationUC struct {
	initOut conversation.InitializeOutput
	initErr error
	sendOut conversation.SendOutput
	sendErr error
	endErr  error

	lastMessage string
}

func (m *mockConversationUC) Initialize(ctx context.Context, p model.DatasetProfile) (conversation.InitializeOutput, error) {
	return m.initOut, m.initErr
}

func (m *mockConversationUC) Send(ctx context.Context, sessionID, message string) (conversation.SendOutput, error) {
	m.lastMessage = message
	return m.sendOut, m.sendErr
}

func (m *mockConversationUC) End(ctx context.Context, sessionID string) error {
	return m.endErr
}

type mockSessionUC struct {
	snapshot model.SessionContext
	err      error
}

func (m *mockSessionUC) Initialize(ctx context.Context, id string) (model.SessionContext, error) {
	return m.snapshot, m.err
}
func (m *mockSessionUC) UpdateDatasetProfile(ctx context.Context, id string, p model.DatasetProfile) error {
	return m.err
}
func (m *mockSessionUC) AddUserInput(ctx context.Context, id, text, command string) error {
	return m.err
}
func (m *mockSessionUC) AddAnalysisResult(ctx context.Context, id, resultType string, payload any, command string) error {
	return m.err
}
func (m *mockSessionUC) AdvanceTurn(ctx context.Context, id string) (model.SessionContext, error) {
	return m.snapshot, m.err
}
func (m *mockSessionUC) RecordTurn(ctx context.Context, id, text, command string) (model.SessionContext, error) {
	return m.snapshot, m.err
}
func (m *mockSessionUC) Profile(ctx context.Context, id string) (*model.DatasetProfile, error) {
	return nil, m.err
}
func (m *mockSessionUC) Snapshot(ctx context.Context, id string) (model.SessionContext, error) {
	return m.snapshot, m.err
}
func (m *mockSessionUC) Delete(ctx context.Context, id string) error {
	return m.err
}

func newTestRouter(uc conversation.UseCase, sessions session.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc, sessions)

	api := r.Group("/api/v1")
	conversations := api.Group("/conversations")
	conversations.POST("", h.Initialize)
	conversations.POST("/:id/messages", h.Send)
	conversations.GET("/:id", h.Snapshot)
	conversations.DELETE("/:id", h.End)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInitializeHandler(t *testing.T) {
	uc := &mockConversationUC{
		initOut: conversation.InitializeOutput{SessionID: "s1", Message: "turn one"},
	}
	r := newTestRouter(uc, &mockSessionUC{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/conversations", map[string]any{"use_sample": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data initializeResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.SessionID != "s1" || resp.Data.Message != "turn one" {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestInitializeHandlerRequiresProfile(t *testing.T) {
	r := newTestRouter(&mockConversationUC{}, &mockSessionUC{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/conversations", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestInitializeHandlerMapsInsightFailure(t *testing.T) {
	uc := &mockConversationUC{initErr: conversation.ErrInsightGeneration}
	r := newTestRouter(uc, &mockSessionUC{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/conversations", map[string]any{"use_sample": true})
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestSendHandler(t *testing.T) {
	uc := &mockConversationUC{
		sendOut: conversation.SendOutput{Message: "turn two", Done: false},
	}
	r := newTestRouter(uc, &mockSessionUC{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/conversations/s1/messages", map[string]any{"message": "weekends mostly"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.lastMessage != "weekends mostly" {
		t.Errorf("forwarded message = %q", uc.lastMessage)
	}

	var resp struct {
		Data sendResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Message != "turn two" || resp.Data.Done {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestSendHandlerUnknownSession(t *testing.T) {
	uc := &mockConversationUC{sendErr: session.ErrNotFound}
	r := newTestRouter(uc, &mockSessionUC{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/conversations/missing/messages", map[string]any{"message": "hi"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSnapshotHandler(t *testing.T) {
	sc := model.SessionContext{
		SessionInfo: model.SessionInfo{CurrentTurn: 2, DatasetName: "orders"},
		UserInputs: []model.UserInput{
			{Text: "first reply"},
		},
	}
	r := newTestRouter(&mockConversationUC{}, &mockSessionUC{snapshot: sc})

	w := doJSON(t, r, http.MethodGet, "/api/v1/conversations/s1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data snapshotResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.SessionID != "s1" || resp.Data.CurrentTurn != 2 || len(resp.Data.UserInputs) != 1 {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestEndHandler(t *testing.T) {
	r := newTestRouter(&mockConversationUC{}, &mockSessionUC{})

	w := doJSON(t, r, http.MethodDelete, "/api/v1/conversations/s1", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
