package profile

import (
	"strings"
	"testing"

	"dashgen/internal/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestSummary(t *testing.T) {
	p := model.DatasetProfile{
		Analysis: model.Analysis{Title: "orders", DateStart: "2023-01-01", DateEnd: "2023-12-31"},
		Table: model.Table{
			N: 1000, NVar: 4,
			NCellsMissing: 40, PCellsMissing: 0.01,
			NDuplicates: 12, PDuplicates: 0.012,
			Types: map[string]int{
				model.VarTypeNumeric:     1,
				model.VarTypeCategorical: 1,
				model.VarTypeDateTime:    1,
				model.VarTypeText:        1,
			},
		},
		Variables: map[string]model.Variable{
			"amount": {Type: model.VarTypeNumeric, Min: floatPtr(1.5), Max: floatPtr(999)},
			"region": {Type: model.VarTypeCategorical, NDistinct: 3, ValueCounts: map[string]int{
				"north": 500, "south": 300, "east": 200,
			}},
			"order_date": {Type: model.VarTypeDateTime, NInvalidDates: intPtr(2)},
			"note":       {Type: model.VarTypeText, MeanLength: floatPtr(42.5)},
		},
		Alerts: []string{"amount has outliers"},
	}

	s := Summary(p)
	for _, want := range []string{
		"Dataset: orders",
		"Rows: 1000",
		"Columns: 4",
		"Date Range: 2023-01-01 to 2023-12-31",
		"Overall completeness: 99.0%",
		"Duplicate rows: 12 (1.2%)",
		"- amount (Numeric): ranges from 1.50 to 999.00",
		"- region (Categorical): 3 distinct values, most common are north (500), south (300), east (200)",
		"- order_date (DateTime): 2 invalid dates",
		"- note (Text): average length 42.5 characters",
		"Alerts:\n- amount has outliers",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q\n%s", want, s)
		}
	}
}

func TestSummaryColumnOrderIsDeterministic(t *testing.T) {
	p := model.DatasetProfile{
		Analysis: model.Analysis{Title: "d"},
		Table:    model.Table{NVar: 3},
		Variables: map[string]model.Variable{
			"charlie": {Type: model.VarTypeNumeric},
			"alpha":   {Type: model.VarTypeNumeric},
			"bravo":   {Type: model.VarTypeNumeric},
		},
	}

	s := Summary(p)
	a := strings.Index(s, "- alpha")
	b := strings.Index(s, "- bravo")
	c := strings.Index(s, "- charlie")
	if !(a < b && b < c) {
		t.Errorf("columns out of order: alpha=%d bravo=%d charlie=%d\n%s", a, b, c, s)
	}
}

func TestSummaryOmitsEmptySections(t *testing.T) {
	p := model.DatasetProfile{
		Analysis:  model.Analysis{Title: "d"},
		Table:     model.Table{NVar: 0},
		Variables: map[string]model.Variable{},
	}

	s := Summary(p)
	if strings.Contains(s, "Date Range") {
		t.Error("empty date range rendered")
	}
	if strings.Contains(s, "Alerts") {
		t.Error("empty alerts section rendered")
	}
}
