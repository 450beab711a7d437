package chartspec

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"dashgen/internal/model"
)

func validConfigJSON() string {
	charts := make([]string, 0, DashboardChartCount)
	types := []string{"Line", "Bar", "Pie", "Pie"}
	for i := 1; i <= DashboardChartCount; i++ {
		charts = append(charts, fmt.Sprintf(`"chart%d": {
			"chart_type": %q,
			"description": "chart %d",
			"echart_data_format": "list of objects",
			"chart_Xaxis": "x",
			"chart_Yaxis": "y",
			"extra_options": {"tooltip": true}
		}`, i, types[i-1], i))
	}
	return "{" + strings.Join(charts, ",") + "}"
}

func TestParseConfigBareJSON(t *testing.T) {
	cfg, err := ParseConfig(validConfigJSON())
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if len(cfg) != DashboardChartCount {
		t.Fatalf("len(cfg) = %d, want %d", len(cfg), DashboardChartCount)
	}
	if cfg["chart1"].ChartType != "Line" {
		t.Errorf("chart1.ChartType = %q, want Line", cfg["chart1"].ChartType)
	}
}

func TestParseConfigFencedJSON(t *testing.T) {
	response := "Here is the configuration:\n\n```json\n" + validConfigJSON() + "\n```\n\nLet me know if you need adjustments."
	cfg, err := ParseConfig(response)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if len(cfg) != DashboardChartCount {
		t.Errorf("len(cfg) = %d, want %d", len(cfg), DashboardChartCount)
	}
}

func TestParseConfigRejectsProse(t *testing.T) {
	_, err := ParseConfig("I am unable to generate charts for this dataset.")
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("ParseConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestParseConfigRejectsWrongChartCount(t *testing.T) {
	_, err := ParseConfig(`{"chart1": {"chart_type": "Line", "description": "only one"}}`)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("ParseConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestParseConfigRejectsMissingFields(t *testing.T) {
	broken := strings.Replace(validConfigJSON(), `"chart_type": "Line",`, `"chart_type": "",`, 1)
	if _, err := ParseConfig(broken); !errors.Is(err, ErrConfigParse) {
		t.Errorf("ParseConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := model.DatasetProfile{
		Analysis: model.Analysis{Title: "orders", DateStart: "2023-01-01", DateEnd: "2023-12-31"},
		Table:    model.Table{N: 1000, NVar: 2},
		Variables: map[string]model.Variable{
			"amount":     {Type: model.VarTypeNumeric},
			"order_date": {Type: model.VarTypeDateTime},
		},
	}

	prompt := BuildPrompt(p, "Q: What is the main goal?\nA: Track revenue.")
	for _, want := range []string{
		"Dataset: orders",
		"Rows: 1000",
		"Date Range: 2023-01-01 to 2023-12-31",
		"- amount (Numeric)",
		"A: Track revenue.",
		`"chart1" through "chart4"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
