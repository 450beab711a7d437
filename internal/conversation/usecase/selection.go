package usecase

import (
	"dashgen/internal/model"
)

// Framing names the angle an insight/question pair should take for a
// given turn.
type Framing string

const (
	FramingDuplication          Framing = "duplication"
	FramingMissingData          Framing = "missing_data"
	FramingTemporal             Framing = "temporal"
	FramingNumericRelationships Framing = "numeric_relationships"
	FramingCategoricalFilters   Framing = "categorical_filters"
	FramingMetricCount          Framing = "metric_count"
)

// Fractions above this threshold make data-quality problems the lead
// topic of turn 1.
const qualityThreshold = 0.10

// TurnOneFraming picks the turn-1 angle by a fixed priority order:
// duplication beats missing data beats the temporal default.
func TurnOneFraming(p model.DatasetProfile) Framing {
	if p.Table.PDuplicates > qualityThreshold {
		return FramingDuplication
	}
	if p.Table.PCellsMissing > qualityThreshold {
		return FramingMissingData
	}
	return FramingTemporal
}

// TurnTwoFraming picks the turn-2 angle: numeric relationships when any
// numeric column exists, else categorical filters, else metric count.
func TurnTwoFraming(p model.DatasetProfile) Framing {
	if p.TypeCount(model.VarTypeNumeric) > 0 {
		return FramingNumericRelationships
	}
	if p.TypeCount(model.VarTypeCategorical) > 0 {
		return FramingCategoricalFilters
	}
	return FramingMetricCount
}

// framingHint renders the instruction appended to the profile summary
// for one turn's pair.
func framingHint(f Framing) string {
	switch f {
	case FramingDuplication:
		return "focus on data completeness and the duplicate rows"
	case FramingMissingData:
		return "focus on the missing data and its impact"
	case FramingTemporal:
		return "focus on the temporal coverage and trends over time"
	case FramingNumericRelationships:
		return "focus on relationships between the numeric columns"
	case FramingCategoricalFilters:
		return "focus on the categorical columns as candidate filters"
	case FramingMetricCount:
		return "focus on which of the available fields should become dashboard metrics"
	default:
		return ""
	}
}
