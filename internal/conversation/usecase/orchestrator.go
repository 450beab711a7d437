package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"dashgen/internal/conversation"
	"dashgen/internal/insight"
	"dashgen/internal/model"
	"dashgen/internal/profile"
	"dashgen/internal/session"
)

// insightPairCount is the batch size requested from the insight source,
// one pair per conversation turn.
const insightPairCount = model.MaxConversationTurns

// closingMessage ends the conversation once both turns are consumed.
const closingMessage = "Thank you for your responses! Would you like me to generate a dashboard configuration based on our discussion?"

func (uc *implUseCase) Initialize(ctx context.Context, p model.DatasetProfile) (conversation.InitializeOutput, error) {
	if err := p.Validate(); err != nil {
		return conversation.InitializeOutput{}, fmt.Errorf("%w: %v", session.ErrInvalidProfile, err)
	}

	// The full batch is generated before any state is created, so a
	// failed generation leaves nothing behind.
	pairs, err := uc.source.Generate(ctx, uc.renderSummary(p), insightPairCount)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Initialize: insight generation failed: %v", err)
		return conversation.InitializeOutput{}, fmt.Errorf("%w: %v", conversation.ErrInsightGeneration, err)
	}

	id := uc.newID()
	if _, err := uc.sessions.Initialize(ctx, id); err != nil {
		return conversation.InitializeOutput{}, err
	}
	if err := uc.sessions.UpdateDatasetProfile(ctx, id, p); err != nil {
		return conversation.InitializeOutput{}, err
	}
	if err := uc.sessions.AddAnalysisResult(ctx, id, model.AnalysisTypeInsightBatch, pairs, "initialize_conversation"); err != nil {
		return conversation.InitializeOutput{}, err
	}

	uc.l.Infof(ctx, "conversation.usecase.Initialize: session %s started for dataset %q", id, p.Analysis.Title)

	return conversation.InitializeOutput{
		SessionID: id,
		Message:   formatTurnMessage(pairs[0]),
	}, nil
}

func (uc *implUseCase) Send(ctx context.Context, sessionID, message string) (conversation.SendOutput, error) {
	// Reply and turn advance land in one persisted mutation, so a write
	// failure never records one without the other.
	sc, err := uc.sessions.RecordTurn(ctx, sessionID, message, "process_response")
	if err != nil {
		return conversation.SendOutput{}, err
	}

	if sc.SessionInfo.ConversationComplete {
		return conversation.SendOutput{Message: closingMessage, Done: true}, nil
	}

	pairs, err := uc.insightBatch(sc)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Send: session %s: %v", sessionID, err)
		return conversation.SendOutput{}, err
	}

	return conversation.SendOutput{
		Message: formatTurnMessage(pairs[sc.SessionInfo.CurrentTurn-1]),
	}, nil
}

func (uc *implUseCase) End(ctx context.Context, sessionID string) error {
	if _, err := uc.sessions.Snapshot(ctx, sessionID); err != nil {
		return err
	}
	return uc.sessions.Delete(ctx, sessionID)
}

// renderSummary extends the profile summary with the per-turn framing
// hints, so the generated pairs line up with the turn selection rules.
func (uc *implUseCase) renderSummary(p model.DatasetProfile) string {
	return fmt.Sprintf("%s\nGuidance:\n- For pair 1, %s.\n- For pair 2, %s.\n",
		profile.Summary(p),
		framingHint(TurnOneFraming(p)),
		framingHint(TurnTwoFraming(p)))
}

// insightBatch recovers the stored batch from the session history.
func (uc *implUseCase) insightBatch(sc model.SessionContext) ([]insight.Pair, error) {
	for i := len(sc.AnalysisHistory) - 1; i >= 0; i-- {
		entry := sc.AnalysisHistory[i]
		if entry.Type != model.AnalysisTypeInsightBatch {
			continue
		}
		var pairs []insight.Pair
		if err := json.Unmarshal(entry.Payload, &pairs); err != nil {
			return nil, fmt.Errorf("%w: undecodable insight batch: %v", session.ErrCorruptState, err)
		}
		if len(pairs) != insightPairCount {
			return nil, fmt.Errorf("%w: insight batch has %d pairs, want %d", session.ErrCorruptState, len(pairs), insightPairCount)
		}
		return pairs, nil
	}
	return nil, fmt.Errorf("%w: session has no insight batch", session.ErrCorruptState)
}

func formatTurnMessage(p insight.Pair) string {
	return fmt.Sprintf("Here's what I found in your data:\n%s\n\n%s", p.Insight, p.Question)
}
