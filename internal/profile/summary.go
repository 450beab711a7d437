// Package profile renders DatasetProfile values into the plain-text
// summaries consumed by LLM prompts.
package profile

import (
	"fmt"
	"sort"
	"strings"

	"dashgen/internal/model"
)

// Summary renders a profile into the plain-text form handed to the
// insight source: dataset identity, shape, data quality, and one line
// per column.
func Summary(p model.DatasetProfile) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Dataset: %s\n", p.Analysis.Title))
	sb.WriteString(fmt.Sprintf("Rows: %d\n", p.Table.N))
	sb.WriteString(fmt.Sprintf("Columns: %d\n", p.Table.NVar))
	if p.Analysis.DateStart != "" || p.Analysis.DateEnd != "" {
		sb.WriteString(fmt.Sprintf("Date Range: %s to %s\n", p.Analysis.DateStart, p.Analysis.DateEnd))
	}

	sb.WriteString("\nData Quality:\n")
	sb.WriteString(fmt.Sprintf("- Overall completeness: %.1f%%\n", (1-p.Table.PCellsMissing)*100))
	sb.WriteString(fmt.Sprintf("- Missing cells: %d (%.1f%%)\n", p.Table.NCellsMissing, p.Table.PCellsMissing*100))
	sb.WriteString(fmt.Sprintf("- Duplicate rows: %d (%.1f%%)\n", p.Table.NDuplicates, p.Table.PDuplicates*100))

	sb.WriteString("\nColumns:\n")
	for _, name := range sortedNames(p.Variables) {
		v := p.Variables[name]
		sb.WriteString(fmt.Sprintf("- %s (%s)%s\n", name, v.Type, columnDetail(v)))
	}

	if len(p.Alerts) > 0 {
		sb.WriteString("\nAlerts:\n")
		for _, alert := range p.Alerts {
			sb.WriteString(fmt.Sprintf("- %s\n", alert))
		}
	}

	return sb.String()
}

// columnDetail renders the type-specific fragment of a column line.
func columnDetail(v model.Variable) string {
	switch v.Type {
	case model.VarTypeNumeric:
		if v.Min != nil && v.Max != nil {
			return fmt.Sprintf(": ranges from %.2f to %.2f", *v.Min, *v.Max)
		}
	case model.VarTypeCategorical:
		if len(v.ValueCounts) > 0 {
			return fmt.Sprintf(": %d distinct values, most common are %s", v.NDistinct, topValues(v.ValueCounts, 3))
		}
		return fmt.Sprintf(": %d distinct values", v.NDistinct)
	case model.VarTypeText:
		if v.MeanLength != nil {
			return fmt.Sprintf(": average length %.1f characters", *v.MeanLength)
		}
	case model.VarTypeDateTime:
		if v.NInvalidDates != nil && *v.NInvalidDates > 0 {
			return fmt.Sprintf(": %d invalid dates", *v.NInvalidDates)
		}
	}
	return ""
}

// topValues renders the n most frequent values as "a (10), b (7)".
// Ties break alphabetically so output is deterministic.
func topValues(counts map[string]int, n int) string {
	type vc struct {
		value string
		count int
	}
	entries := make([]vc, 0, len(counts))
	for value, count := range counts {
		entries = append(entries, vc{value, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].value < entries[j].value
	})
	if n > len(entries) {
		n = len(entries)
	}
	parts := make([]string, 0, n)
	for _, e := range entries[:n] {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.value, e.count))
	}
	return strings.Join(parts, ", ")
}

func sortedNames(vars map[string]model.Variable) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
