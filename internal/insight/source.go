package insight

import (
	"context"
	"fmt"
	"strings"

	"dashgen/pkg/llmprovider"
	pkgLog "dashgen/pkg/log"
)

// Source produces insight/question pairs from a rendered profile
// summary. Implementations must return exactly count pairs or an error,
// never a short batch.
type Source interface {
	Generate(ctx context.Context, profileSummary string, count int) ([]Pair, error)
}

const (
	generateTemperature = 0.6
	generateMaxTokens   = 2048
)

type llmSource struct {
	l       pkgLog.Logger
	manager *llmprovider.Manager
}

// NewSource creates an LLM-backed Source on top of the provider manager.
func NewSource(l pkgLog.Logger, manager *llmprovider.Manager) *llmSource {
	return &llmSource{l: l, manager: manager}
}

func (s *llmSource) Generate(ctx context.Context, profileSummary string, count int) ([]Pair, error) {
	resp, err := s.manager.GenerateContent(ctx, &llmprovider.Request{
		System: systemPrompt(count),
		Messages: []llmprovider.Message{
			{Role: "user", Content: userPrompt(profileSummary, count)},
		},
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("insight generation call failed: %w", err)
	}

	pairs, err := DecodePairs(resp.Content, count)
	if err != nil {
		s.l.Warnf(ctx, "insight.source: undecodable response from %s/%s: %v",
			resp.ProviderName, resp.ModelName, err)
		return nil, fmt.Errorf("failed to decode insight response: %w", err)
	}
	return pairs, nil
}

func systemPrompt(count int) string {
	var b strings.Builder
	b.WriteString("You are an expert data analyst. Your task is to:\n")
	fmt.Fprintf(&b, "1. Generate %d meaningful insights from the dataset profile summary\n", count)
	fmt.Fprintf(&b, "2. For each insight, choose ONE relevant question from this list of critical questions:\n")
	for _, q := range CanonicalQuestions {
		fmt.Fprintf(&b, "   - %s\n", q)
	}
	b.WriteString("\nEach question you choose should be relevant to its insight, and the questions should cover distinct topics.\n")
	b.WriteString("\nFormat your response EXACTLY as:\n")
	for i := 1; i <= count; i++ {
		b.WriteString("INSIGHT: <insight>\n")
		b.WriteString("QUESTION: <selected question>\n")
	}
	return b.String()
}

func userPrompt(profileSummary string, count int) string {
	return fmt.Sprintf(
		"Based on this dataset profile summary, generate %d insights and choose one relevant question for each:\n\n%s",
		count, profileSummary)
}
