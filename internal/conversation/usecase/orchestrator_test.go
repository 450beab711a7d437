package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"dashgen/internal/conversation"
	"dashgen/internal/insight"
	"dashgen/internal/model"
	"dashgen/internal/session"
	sessionrepo "dashgen/internal/session/repository/file"
	sessionuc "dashgen/internal/session/usecase"
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

// stubSource returns a fixed batch, or an error, and records the last
// summary it was asked about.
type stubSource struct {
	pairs       []insight.Pair
	err         error
	lastSummary string
	lastCount   int
	calls       int
}

func (s *stubSource) Generate(ctx context.Context, profileSummary string, count int) ([]insight.Pair, error) {
	s.calls++
	s.lastSummary = profileSummary
	s.lastCount = count
	if s.err != nil {
		return nil, s.err
	}
	return s.pairs, nil
}

func testPairs() []insight.Pair {
	return []insight.Pair{
		{Insight: "About 20% of rows are duplicates.", Question: insight.QuestionGoal},
		{Insight: "Order amounts range widely.", Question: insight.QuestionKeyMetrics},
	}
}

func testProfile() model.DatasetProfile {
	return model.DatasetProfile{
		Analysis: model.Analysis{Title: "orders", DateStart: "2023-01-01", DateEnd: "2023-12-31"},
		Table: model.Table{
			N:           250,
			NVar:        2,
			NDuplicates: 50,
			PDuplicates: 0.2,
			Types:       map[string]int{model.VarTypeNumeric: 1, model.VarTypeDateTime: 1},
		},
		Variables: map[string]model.Variable{
			"amount":     {Type: model.VarTypeNumeric},
			"order_date": {Type: model.VarTypeDateTime},
		},
	}
}

func newTestUseCase(t *testing.T, source insight.Source) (*implUseCase, session.UseCase) {
	t.Helper()
	store, err := sessionrepo.New(&mockLogger{}, t.TempDir(), false)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	sessions := sessionuc.New(&mockLogger{}, store, 16, time.Minute)
	uc := New(&mockLogger{}, sessions, source)
	uc.newID = func() string { return "fixed-session-id" }
	return uc, sessions
}

func TestConversationFlow(t *testing.T) {
	source := &stubSource{pairs: testPairs()}
	uc, sessions := newTestUseCase(t, source)
	ctx := context.Background()

	out, err := uc.Initialize(ctx, testProfile())
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if out.SessionID != "fixed-session-id" {
		t.Errorf("SessionID = %q", out.SessionID)
	}
	wantTurn1 := "Here's what I found in your data:\nAbout 20% of rows are duplicates.\n\n" + insight.QuestionGoal
	if out.Message != wantTurn1 {
		t.Errorf("turn 1 message = %q, want %q", out.Message, wantTurn1)
	}
	if source.lastCount != model.MaxConversationTurns {
		t.Errorf("requested pair count = %d, want %d", source.lastCount, model.MaxConversationTurns)
	}
	if !strings.Contains(source.lastSummary, "Dataset: orders") {
		t.Error("profile summary missing from generation request")
	}
	if !strings.Contains(source.lastSummary, "duplicate") {
		t.Error("turn-1 duplication framing missing from generation request")
	}

	reply1, err := uc.Send(ctx, out.SessionID, "I want to track revenue.")
	if err != nil {
		t.Fatalf("Send() turn 1 error = %v", err)
	}
	if reply1.Done {
		t.Error("conversation complete after one reply")
	}
	wantTurn2 := "Here's what I found in your data:\nOrder amounts range widely.\n\n" + insight.QuestionKeyMetrics
	if reply1.Message != wantTurn2 {
		t.Errorf("turn 2 message = %q, want %q", reply1.Message, wantTurn2)
	}

	reply2, err := uc.Send(ctx, out.SessionID, "Totals and averages per region.")
	if err != nil {
		t.Fatalf("Send() turn 2 error = %v", err)
	}
	if !reply2.Done {
		t.Error("conversation not complete after both turns")
	}
	if reply2.Message != closingMessage {
		t.Errorf("closing message = %q", reply2.Message)
	}

	// A third send is terminal and returns the closing message again.
	reply3, err := uc.Send(ctx, out.SessionID, "one more thing")
	if err != nil {
		t.Fatalf("Send() after completion error = %v", err)
	}
	if !reply3.Done || reply3.Message != closingMessage {
		t.Errorf("post-completion send = %+v", reply3)
	}

	sc, err := sessions.Snapshot(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(sc.UserInputs) != 3 {
		t.Errorf("recorded inputs = %d, want 3", len(sc.UserInputs))
	}
	if sc.SessionInfo.DatasetName != "orders" {
		t.Errorf("DatasetName = %q, want %q", sc.SessionInfo.DatasetName, "orders")
	}
}

func TestInitializeRejectsInvalidProfile(t *testing.T) {
	source := &stubSource{pairs: testPairs()}
	uc, _ := newTestUseCase(t, source)

	bad := testProfile()
	bad.Analysis.Title = ""
	_, err := uc.Initialize(context.Background(), bad)
	if !errors.Is(err, session.ErrInvalidProfile) {
		t.Fatalf("Initialize() error = %v, want ErrInvalidProfile", err)
	}
	if source.calls != 0 {
		t.Error("insight source called for an invalid profile")
	}
}

func TestInitializeFailureLeavesNoSession(t *testing.T) {
	source := &stubSource{err: fmt.Errorf("missing QUESTION marker")}
	uc, sessions := newTestUseCase(t, source)
	ctx := context.Background()

	_, err := uc.Initialize(ctx, testProfile())
	if !errors.Is(err, conversation.ErrInsightGeneration) {
		t.Fatalf("Initialize() error = %v, want ErrInsightGeneration", err)
	}
	if _, err := sessions.Snapshot(ctx, "fixed-session-id"); !errors.Is(err, session.ErrNotFound) {
		t.Error("failed initialization stored session state")
	}
}

func TestSendUnknownSession(t *testing.T) {
	uc, _ := newTestUseCase(t, &stubSource{pairs: testPairs()})

	_, err := uc.Send(context.Background(), "no-such-session", "hi")
	if !errors.Is(err, session.ErrNotFound) {
		t.Errorf("Send() error = %v, want ErrNotFound", err)
	}
}

func TestEndDeletesSession(t *testing.T) {
	uc, sessions := newTestUseCase(t, &stubSource{pairs: testPairs()})
	ctx := context.Background()

	out, err := uc.Initialize(ctx, testProfile())
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := uc.End(ctx, out.SessionID); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if _, err := sessions.Snapshot(ctx, out.SessionID); !errors.Is(err, session.ErrNotFound) {
		t.Error("End() left session state behind")
	}

	if err := uc.End(ctx, out.SessionID); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("End() on unknown session error = %v, want ErrNotFound", err)
	}
}
