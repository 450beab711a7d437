package insight

import (
	"fmt"
	"strings"
)

// Markers the generation contract requires, one pair per line group.
const (
	insightMarker  = "INSIGHT:"
	questionMarker = "QUESTION:"
)

// Pair is one insight with its clarifying question.
type Pair struct {
	Insight  string `json:"insight"`
	Question string `json:"question"`
}

// DecodePairs extracts exactly count insight/question pairs from raw
// model output. The contract is strict: a response missing a marker, or
// carrying the wrong number of either marker, is a decode error, never
// a partial result.
func DecodePairs(content string, count int) ([]Pair, error) {
	if count < 1 {
		return nil, fmt.Errorf("pair count must be positive, got %d", count)
	}

	var insights, questions []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, insightMarker):
			insights = append(insights, strings.TrimSpace(strings.TrimPrefix(line, insightMarker)))
		case strings.HasPrefix(line, questionMarker):
			questions = append(questions, strings.TrimSpace(strings.TrimPrefix(line, questionMarker)))
		}
	}

	if len(insights) != count || len(questions) != count {
		return nil, fmt.Errorf("expected %d insight and %d question markers, found %d and %d",
			count, count, len(insights), len(questions))
	}
	for i, in := range insights {
		if in == "" {
			return nil, fmt.Errorf("insight %d is empty", i+1)
		}
		if questions[i] == "" {
			return nil, fmt.Errorf("question %d is empty", i+1)
		}
	}

	pairs := make([]Pair, count)
	for i := range pairs {
		pairs[i] = Pair{
			Insight:  insights[i],
			Question: NormalizeQuestion(questions[i]),
		}
	}
	return pairs, nil
}
