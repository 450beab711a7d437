package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dashgen/internal/chartspec"
	"dashgen/internal/insight"
	"dashgen/internal/model"
	"dashgen/pkg/llmprovider"
)

const (
	generateTemperature = 0.3
	generateMaxTokens   = 4096
)

func (uc *implUseCase) Generate(ctx context.Context, sessionID string) (chartspec.DashboardConfig, error) {
	sc, err := uc.sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sc.SessionInfo.ConversationComplete {
		return nil, chartspec.ErrConversationIncomplete
	}
	if sc.DatasetProfile == nil {
		return nil, fmt.Errorf("session %s has no dataset profile", sessionID)
	}

	prompt := chartspec.BuildPrompt(*sc.DatasetProfile, renderRequirements(sc))

	resp, err := uc.manager.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chartspec.usecase.Generate: session %s: %v", sessionID, err)
		return nil, fmt.Errorf("dashboard generation call failed: %w", err)
	}

	cfg, err := chartspec.ParseConfig(resp.Content)
	if err != nil {
		uc.l.Errorf(ctx, "chartspec.usecase.Generate: session %s: undecodable response from %s/%s: %v",
			sessionID, resp.ProviderName, resp.ModelName, err)
		return nil, err
	}

	if err := uc.sessions.AddAnalysisResult(ctx, sessionID, model.AnalysisTypeDashboardConfig, cfg, "generate_dashboard"); err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "chartspec.usecase.Generate: session %s: stored %d-chart configuration", sessionID, len(cfg))

	return cfg, nil
}

func (uc *implUseCase) Export(ctx context.Context, sessionID string) (chartspec.DashboardConfig, error) {
	sc, err := uc.sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := len(sc.AnalysisHistory) - 1; i >= 0; i-- {
		entry := sc.AnalysisHistory[i]
		if entry.Type != model.AnalysisTypeDashboardConfig {
			continue
		}
		var cfg chartspec.DashboardConfig
		if err := json.Unmarshal(entry.Payload, &cfg); err != nil {
			return nil, fmt.Errorf("stored configuration is undecodable: %w", err)
		}
		return cfg, nil
	}

	return nil, chartspec.ErrNoConfig
}

// renderRequirements flattens the conversation into the requirements
// block of the prompt: each turn's question paired with the user's
// reply, plus any trailing input.
func renderRequirements(sc model.SessionContext) string {
	var pairs []insight.Pair
	for i := len(sc.AnalysisHistory) - 1; i >= 0; i-- {
		entry := sc.AnalysisHistory[i]
		if entry.Type != model.AnalysisTypeInsightBatch {
			continue
		}
		if err := json.Unmarshal(entry.Payload, &pairs); err != nil {
			pairs = nil
		}
		break
	}

	var b strings.Builder
	for i, in := range sc.UserInputs {
		if i < len(pairs) {
			fmt.Fprintf(&b, "Q: %s\n", pairs[i].Question)
		}
		fmt.Fprintf(&b, "A: %s\n", in.Text)
	}
	if b.Len() == 0 {
		return "No specific requirements were collected."
	}
	return b.String()
}
