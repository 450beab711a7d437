package chartspec

import (
	"fmt"
	"sort"
	"strings"

	"dashgen/internal/model"
)

const promptTemplate = `You are a Dashboard Configuration Agent responsible for generating ECharts configurations for interactive dashboards based on data analysis and user requirements.

Your task is to generate a JSON configuration that defines %d complementary chart components using ECharts.

Dataset Profile:
%s

User Requirements:
%s

Generate exactly %d complementary charts that address the user's requirements and highlight key insights from the dataset. Respond with a single JSON object whose keys are "chart1" through "chart%d"; each chart must carry "chart_type", "description", "echart_data_format", "chart_Xaxis", "chart_Yaxis", "prompt_used" and "extra_options".`

// BuildPrompt renders the dashboard-generation prompt from the profile
// and the collected user requirements.
func BuildPrompt(p model.DatasetProfile, userRequirements string) string {
	return fmt.Sprintf(promptTemplate,
		DashboardChartCount,
		formatDatasetProfile(p),
		userRequirements,
		DashboardChartCount,
		DashboardChartCount)
}

func formatDatasetProfile(p model.DatasetProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset: %s\n", p.Analysis.Title)
	fmt.Fprintf(&b, "Rows: %d\n", p.Table.N)
	fmt.Fprintf(&b, "Columns: %d\n", p.Table.NVar)
	if p.Analysis.DateStart != "" || p.Analysis.DateEnd != "" {
		fmt.Fprintf(&b, "Date Range: %s to %s\n", p.Analysis.DateStart, p.Analysis.DateEnd)
	}
	b.WriteString("\nKey Variables:\n")
	names := make([]string, 0, len(p.Variables))
	for name := range p.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s (%s)\n", name, p.Variables[name].Type)
	}
	return b.String()
}
