package model

import (
	"fmt"
)

// Variable type tags produced by the statistical-profiling collaborator.
const (
	VarTypeNumeric     = "Numeric"
	VarTypeCategorical = "Categorical"
	VarTypeDateTime    = "DateTime"
	VarTypeText        = "Text"
	VarTypeBoolean     = "Boolean"
	VarTypeUnsupported = "Unsupported"
)

// Analysis identifies the dataset and its temporal extent.
type Analysis struct {
	Title     string `json:"title"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

// Table holds table-level statistics.
type Table struct {
	N             int            `json:"n"`
	NVar          int            `json:"n_var"`
	MemorySize    int64          `json:"memory_size"`
	NCellsMissing int            `json:"n_cells_missing"`
	PCellsMissing float64        `json:"p_cells_missing"`
	Types         map[string]int `json:"types"`
	NDuplicates   int            `json:"n_duplicates"`
	PDuplicates   float64        `json:"p_duplicates"`
}

// Variable holds per-column statistics. Type-specific fields are pointers
// so absent values survive a JSON round trip unchanged.
type Variable struct {
	Type       string  `json:"type"`
	NDistinct  int     `json:"n_distinct"`
	PDistinct  float64 `json:"p_distinct"`
	IsUnique   bool    `json:"is_unique"`
	NMissing   int     `json:"n_missing"`
	PMissing   float64 `json:"p_missing"`
	N          int     `json:"n"`
	Count      int     `json:"count"`
	MemorySize int64   `json:"memory_size"`

	// Numeric
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Mean *float64 `json:"mean,omitempty"`

	// Categorical
	ValueCounts map[string]int `json:"value_counts,omitempty"`
	Imbalance   *float64       `json:"imbalance,omitempty"`

	// Text
	MinLength  *int     `json:"min_length,omitempty"`
	MaxLength  *int     `json:"max_length,omitempty"`
	MeanLength *float64 `json:"mean_length,omitempty"`

	// DateTime
	NInvalidDates *int     `json:"n_invalid_dates,omitempty"`
	PInvalidDates *float64 `json:"p_invalid_dates,omitempty"`
}

// DatasetProfile is the statistical snapshot of an uploaded dataset.
// Produced once by the profiling collaborator and read-only afterward.
type DatasetProfile struct {
	Analysis  Analysis            `json:"analysis"`
	Table     Table               `json:"table"`
	Variables map[string]Variable `json:"variables"`
	Alerts    []string            `json:"alerts"`
}

// Validate checks the structural invariants of a profile. A profile that
// fails validation is never stored.
func (p *DatasetProfile) Validate() error {
	if p.Analysis.Title == "" {
		return fmt.Errorf("analysis.title is required")
	}
	if p.Table.N < 0 {
		return fmt.Errorf("table.n must be non-negative, got %d", p.Table.N)
	}
	if p.Table.NVar != len(p.Variables) {
		return fmt.Errorf("table.n_var (%d) does not match variable count (%d)", p.Table.NVar, len(p.Variables))
	}
	if p.Table.PCellsMissing < 0 || p.Table.PCellsMissing > 1 {
		return fmt.Errorf("table.p_cells_missing out of range: %f", p.Table.PCellsMissing)
	}
	if p.Table.PDuplicates < 0 || p.Table.PDuplicates > 1 {
		return fmt.Errorf("table.p_duplicates out of range: %f", p.Table.PDuplicates)
	}
	if p.Table.NDuplicates < 0 {
		return fmt.Errorf("table.n_duplicates must be non-negative, got %d", p.Table.NDuplicates)
	}
	for name, v := range p.Variables {
		if v.Type == "" {
			return fmt.Errorf("variable %q has no type tag", name)
		}
		if v.PMissing < 0 || v.PMissing > 1 {
			return fmt.Errorf("variable %q: p_missing out of range: %f", name, v.PMissing)
		}
		if v.NDistinct < 0 {
			return fmt.Errorf("variable %q: n_distinct must be non-negative, got %d", name, v.NDistinct)
		}
	}
	return nil
}

// Clone returns a deep copy of the profile. No maps, slices, or
// pointer-valued statistics are shared with the receiver.
func (p DatasetProfile) Clone() DatasetProfile {
	out := p
	out.Table.Types = cloneIntMap(p.Table.Types)
	if p.Variables != nil {
		out.Variables = make(map[string]Variable, len(p.Variables))
		for k, v := range p.Variables {
			out.Variables[k] = v.clone()
		}
	}
	if p.Alerts != nil {
		out.Alerts = append([]string(nil), p.Alerts...)
	}
	return out
}

func (v Variable) clone() Variable {
	out := v
	out.ValueCounts = cloneIntMap(v.ValueCounts)
	out.Min = cloneFloatPtr(v.Min)
	out.Max = cloneFloatPtr(v.Max)
	out.Mean = cloneFloatPtr(v.Mean)
	out.Imbalance = cloneFloatPtr(v.Imbalance)
	out.MinLength = cloneIntPtr(v.MinLength)
	out.MaxLength = cloneIntPtr(v.MaxLength)
	out.MeanLength = cloneFloatPtr(v.MeanLength)
	out.NInvalidDates = cloneIntPtr(v.NInvalidDates)
	out.PInvalidDates = cloneFloatPtr(v.PInvalidDates)
	return out
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// VariablesOfType returns the column names with the given type tag,
// in no particular order.
func (p *DatasetProfile) VariablesOfType(typeTag string) []string {
	var names []string
	for name, v := range p.Variables {
		if v.Type == typeTag {
			names = append(names, name)
		}
	}
	return names
}

// TypeCount returns the number of columns with the given type tag.
// It prefers the table-level histogram and falls back to counting
// variables when the histogram is absent.
func (p *DatasetProfile) TypeCount(typeTag string) int {
	if p.Table.Types != nil {
		if n, ok := p.Table.Types[typeTag]; ok {
			return n
		}
	}
	return len(p.VariablesOfType(typeTag))
}
