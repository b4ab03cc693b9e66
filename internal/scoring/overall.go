package scoring

import (
	"errors"
	"fmt"

	"beamx-scorecard/backend/internal/survey"
)

// Tier labels, ordered from lowest to highest total.
const (
	LabelFoundationStage   = "Foundation Stage"
	LabelScalingCautiously = "Scaling Cautiously"
	LabelGrowthReady       = "Growth Ready"
	LabelBuiltForScale     = "Built for Scale"
)

// ErrTotalOutOfRange signals a defect in the weight tables, never bad user
// input: valid surveys cannot produce a total outside [0, 100].
var ErrTotalOutOfRange = errors.New("total score out of range")

// SubScores holds the four category scores, each in [0, 11].
type SubScores struct {
	Financial  int `json:"financial"`
	Growth     int `json:"growth"`
	Digital    int `json:"digital"`
	Operations int `json:"operations"`
}

// Result is the aggregated scorecard outcome.
type Result struct {
	Total int
	Label string
	Sub   SubScores
}

// Evaluate runs all four category scorers over a validated survey.
func Evaluate(s survey.Survey) SubScores {
	return SubScores{
		Financial:  FinancialHealth(s),
		Growth:     GrowthReadiness(s),
		Digital:    DigitalMaturity(s),
		Operations: OperationalEfficiency(s),
	}
}

// Aggregate sums the sub-scores into the total and classifies it. The total
// is always the exact sum; a total outside [0, 100] is an internal invariant
// violation.
func Aggregate(sub SubScores) (Result, error) {
	total := sub.Financial + sub.Growth + sub.Digital + sub.Operations
	if total < 0 || total > 100 {
		return Result{}, fmt.Errorf("%w: %d", ErrTotalOutOfRange, total)
	}
	return Result{
		Total: total,
		Label: Classify(total),
		Sub:   sub,
	}, nil
}

// Classify maps a total score onto its tier label.
func Classify(total int) string {
	switch {
	case total < 40:
		return LabelFoundationStage
	case total < 60:
		return LabelScalingCautiously
	case total < 80:
		return LabelGrowthReady
	default:
		return LabelBuiltForScale
	}
}
