package scoring

import (
	"testing"

	"beamx-scorecard/backend/internal/survey"
)

func TestFinancialHealth(t *testing.T) {
	tests := []struct {
		name     string
		revenue  survey.RevenueBracket
		burn     survey.BurnBracket
		cac      bool
		expected int
	}{
		{"max everything", survey.RevenueOver1M, survey.BurnOver20K, true, 11},
		{"minimum answers", survey.RevenueUnder10K, survey.BurnUnknown, false, 2},
		{"mid band with cac", survey.Revenue50KTo250K, survey.Burn1KTo5K, true, 7},
		{"high revenue no cac", survey.RevenueOver1M, survey.BurnOver20K, false, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := survey.Survey{Revenue: tc.revenue, MonthlyBurn: tc.burn, CACTracked: tc.cac}
			if got := FinancialHealth(s); got != tc.expected {
				t.Fatalf("expected %d got %d", tc.expected, got)
			}
		})
	}
}

func TestFinancialHealthStaysInBand(t *testing.T) {
	for revenue := range revenueWeights {
		for burn := range burnWeights {
			for _, cac := range []bool{true, false} {
				s := survey.Survey{Revenue: revenue, MonthlyBurn: burn, CACTracked: cac}
				if got := FinancialHealth(s); got < 0 || got > 11 {
					t.Fatalf("score %d out of band for %+v", got, s)
				}
			}
		}
	}
}
