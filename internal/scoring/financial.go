package scoring

import "beamx-scorecard/backend/internal/survey"

const financialMax = 12

var revenueWeights = map[survey.RevenueBracket]int{
	survey.RevenueUnder10K:  1,
	survey.Revenue10KTo50K:  2,
	survey.Revenue50KTo250K: 3,
	survey.Revenue250KTo1M:  4,
	survey.RevenueOver1M:    5,
}

var burnWeights = map[survey.BurnBracket]int{
	survey.BurnUnknown: 1,
	survey.BurnUnder1K: 2,
	survey.Burn1KTo5K:  3,
	survey.Burn5KTo20K: 4,
	survey.BurnOver20K: 5,
}

// FinancialHealth scores revenue scale, burn awareness, and CAC tracking
// into the 0-11 band.
func FinancialHealth(s survey.Survey) int {
	raw := revenueWeights[s.Revenue] + burnWeights[s.MonthlyBurn]
	if s.CACTracked {
		raw += 2
	}
	return rescale(raw, financialMax)
}
