package chartspec

import "fmt"

// DashboardChartCount is the number of complementary charts one
// dashboard configuration carries.
const DashboardChartCount = 4

// ChartConfig describes one ECharts component of the dashboard. Field
// names mirror the JSON contract consumed by the front-end generator.
type ChartConfig struct {
	ChartType        string         `json:"chart_type"`
	Description      string         `json:"description"`
	EChartDataFormat string         `json:"echart_data_format"`
	ChartXAxis       string         `json:"chart_Xaxis"`
	ChartYAxis       string         `json:"chart_Yaxis"`
	ExampleFunction  string         `json:"example_function,omitempty"`
	PromptUsed       string         `json:"prompt_used,omitempty"`
	ExtraOptions     map[string]any `json:"extra_options,omitempty"`
}

// DashboardConfig maps slot keys ("chart1".."chart4") to their chart
// configurations.
type DashboardConfig map[string]ChartConfig

// Validate checks the structural contract of a parsed configuration.
func (d DashboardConfig) Validate() error {
	if len(d) != DashboardChartCount {
		return fmt.Errorf("expected %d charts, got %d", DashboardChartCount, len(d))
	}
	for i := 1; i <= DashboardChartCount; i++ {
		key := fmt.Sprintf("chart%d", i)
		cfg, ok := d[key]
		if !ok {
			return fmt.Errorf("missing chart slot %q", key)
		}
		if cfg.ChartType == "" {
			return fmt.Errorf("%s: chart_type is required", key)
		}
		if cfg.Description == "" {
			return fmt.Errorf("%s: description is required", key)
		}
	}
	return nil
}
