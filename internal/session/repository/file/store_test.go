package file

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dashgen/internal/model"
	"dashgen/internal/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func testProfile() *model.DatasetProfile {
	return &model.DatasetProfile{
		Analysis: model.Analysis{Title: "orders"},
		Table: model.Table{
			N:     100,
			NVar:  1,
			Types: map[string]int{model.VarTypeNumeric: 1},
		},
		Variables: map[string]model.Variable{
			"amount": {Type: model.VarTypeNumeric},
		},
	}
}

func testContext(t *testing.T) model.SessionContext {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sc := model.NewSessionContext(now)
	sc.SessionInfo.DatasetName = "orders"
	sc.DatasetProfile = testProfile()
	sc.UserInputs = append(sc.UserInputs, model.UserInput{
		Timestamp: now,
		Text:      "mostly weekends",
	})
	sc.AnalysisHistory = append(sc.AnalysisHistory, model.AnalysisResult{
		Timestamp: now,
		Type:      "insight_batch",
		Payload:   json.RawMessage(`{"turn":1}`),
	})
	return sc
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := New(&mockLogger{}, t.TempDir(), false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	want := testContext(t)
	if err := store.Save(ctx, "sess-1", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("round trip mismatch\ngot:  %s\nwant: %s", gotJSON, wantJSON)
	}
}

func TestStoreLoadUnknownID(t *testing.T) {
	store, err := New(&mockLogger{}, t.TempDir(), false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := store.Load(context.Background(), "missing"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestStoreLoadCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := New(&mockLogger{}, dir, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := store.Load(context.Background(), "bad"); !errors.Is(err, session.ErrCorruptState) {
		t.Errorf("Load() error = %v, want ErrCorruptState", err)
	}
}

func TestStoreLoadInvalidState(t *testing.T) {
	dir := t.TempDir()
	store, err := New(&mockLogger{}, dir, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Valid JSON but an out-of-range turn.
	sc := testContext(t)
	sc.SessionInfo.CurrentTurn = 5
	data, _ := json.Marshal(sc)
	if err := os.WriteFile(filepath.Join(dir, "odd.json"), data, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if _, err := store.Load(context.Background(), "odd"); !errors.Is(err, session.ErrCorruptState) {
		t.Errorf("Load() error = %v, want ErrCorruptState", err)
	}
}

func TestStoreSaveRejectsInvalidState(t *testing.T) {
	dir := t.TempDir()
	store, err := New(&mockLogger{}, dir, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sc := testContext(t)
	sc.SessionInfo.CurrentTurn = 0
	if err := store.Save(context.Background(), "sess-1", sc); err == nil {
		t.Fatal("Save() accepted an invalid context")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "sess-1.json")); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("Save() left a document behind for an invalid context")
	}
}

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := New(&mockLogger{}, dir, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := store.Save(context.Background(), "sess-1", testContext(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestStoreMirror(t *testing.T) {
	dir := t.TempDir()
	store, err := New(&mockLogger{}, dir, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := store.Save(context.Background(), "sess-1", testContext(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sess-1.md"))
	if err != nil {
		t.Fatalf("mirror not written: %v", err)
	}
	text := string(data)
	for _, want := range []string{"# Session sess-1", "## Dataset Information", "mostly weekends", "insight_batch"} {
		if !strings.Contains(text, want) {
			t.Errorf("mirror missing %q\n%s", want, text)
		}
	}
	if !strings.Contains(text, "```json\n{\n  \"turn\": 1\n}\n```") {
		t.Errorf("mirror payload not indented\n%s", text)
	}
}

func TestStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := New(&mockLogger{}, dir, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "sess-1", testContext(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load(ctx, "sess-1"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("Load() after delete error = %v, want ErrNotFound", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sess-1.md")); !errors.Is(err, os.ErrNotExist) {
		t.Error("mirror survived delete")
	}

	// Deleting an unknown id is a no-op.
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}
