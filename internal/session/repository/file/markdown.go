package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"dashgen/internal/model"
)

const mirrorTimeFormat = "2006-01-02 15:04:05"

// The markdown mirror is advisory. It is rewritten in full on every
// save so it always matches the JSON document; any failure here is
// logged and swallowed, the JSON document stays the source of truth.
func (s *Store) writeMirror(ctx context.Context, id string, sc model.SessionContext) {
	if !s.mirrorEnabled {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Session %s\n\n", id)
	fmt.Fprintf(&b, "- Created: %s\n", sc.SessionInfo.CreatedAt.Format(mirrorTimeFormat))
	fmt.Fprintf(&b, "- Last updated: %s\n", sc.SessionInfo.LastUpdated.Format(mirrorTimeFormat))
	fmt.Fprintf(&b, "- Turn: %d/%d\n", sc.SessionInfo.CurrentTurn, model.MaxConversationTurns)
	fmt.Fprintf(&b, "- Complete: %t\n", sc.SessionInfo.ConversationComplete)

	b.WriteString("\n## Dataset Information\n\n")
	if sc.DatasetProfile != nil {
		fmt.Fprintf(&b, "- Name: %s\n", sc.SessionInfo.DatasetName)
		fmt.Fprintf(&b, "- Rows: %d\n", sc.DatasetProfile.Table.N)
		fmt.Fprintf(&b, "- Columns: %d\n", sc.DatasetProfile.Table.NVar)
	} else {
		b.WriteString("No dataset profile attached.\n")
	}

	b.WriteString("\n## User Inputs\n\n")
	if len(sc.UserInputs) == 0 {
		b.WriteString("None.\n")
	}
	for _, in := range sc.UserInputs {
		fmt.Fprintf(&b, "- [%s]", in.Timestamp.Format(mirrorTimeFormat))
		if in.Command != "" {
			fmt.Fprintf(&b, " (%s)", in.Command)
		}
		fmt.Fprintf(&b, " %s\n", in.Text)
	}

	b.WriteString("\n## Analysis History\n\n")
	if len(sc.AnalysisHistory) == 0 {
		b.WriteString("None.\n")
	}
	for _, ar := range sc.AnalysisHistory {
		fmt.Fprintf(&b, "### %s at %s\n\n", ar.Type, ar.Timestamp.Format(mirrorTimeFormat))
		if ar.Command != "" {
			fmt.Fprintf(&b, "Command: %s\n\n", ar.Command)
		}
		fmt.Fprintf(&b, "```json\n%s\n```\n\n", indentJSON(ar.Payload))
	}

	if err := os.WriteFile(s.markdownPath(id), []byte(b.String()), 0o644); err != nil {
		s.l.Warnf(ctx, "failed to write session mirror %s: %v", id, err)
	}
}

func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
