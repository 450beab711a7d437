package insight

import "strings"

// The seven canonical clarification questions. Every question surfaced
// to the user is one of these, verbatim.
const (
	QuestionGoal          = "What is the main goal of the dashboard? (Understand their objective)"
	QuestionDataType      = "What type of data have they uploaded? (Understand the data structure: list, timeline, reviews, etc.)"
	QuestionAnalysisType  = "What kind of analysis do they want? (See what happened, understand why, predict future, or suggest actions)"
	QuestionKeyMetrics    = "What numbers or facts matter most? (Key metrics or facts they want to track)"
	QuestionVisualization = "How do they want to see the information? (Charts, tables, timelines: visual preferences)"
	QuestionFilters       = "Do they want filters to focus on certain products, regions, or time periods?"
	QuestionAudience      = "Who will use this dashboard? (Just them, their team, their manager: audience matters)"
)

// CanonicalQuestions lists the clarification questions in presentation
// order, as fed to the generation prompt.
var CanonicalQuestions = []string{
	QuestionGoal,
	QuestionDataType,
	QuestionAnalysisType,
	QuestionKeyMetrics,
	QuestionVisualization,
	QuestionFilters,
	QuestionAudience,
}

// questionKeywords maps a distinguishing phrase to its canonical
// question. Models paraphrase; the lead phrase survives.
var questionKeywords = []struct {
	phrase    string
	canonical string
}{
	{"main goal", QuestionGoal},
	{"type of data", QuestionDataType},
	{"kind of analysis", QuestionAnalysisType},
	{"numbers or facts", QuestionKeyMetrics},
	{"see the information", QuestionVisualization},
	{"filters", QuestionFilters},
	{"who will use", QuestionAudience},
}

// NormalizeQuestion maps a model-produced question back onto the
// canonical set. Unrecognized questions pass through trimmed; the
// caller never deduplicates or rejects based on topic.
func NormalizeQuestion(q string) string {
	trimmed := strings.TrimSpace(q)
	lower := strings.ToLower(trimmed)
	for _, kw := range questionKeywords {
		if strings.Contains(lower, kw.phrase) {
			return kw.canonical
		}
	}
	return trimmed
}
