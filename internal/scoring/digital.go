package scoring

import "beamx-scorecard/backend/internal/survey"

const digitalMax = 12

var analyticsWeights = map[survey.AnalyticsLevel]int{
	survey.AnalyticsNone:     1,
	survey.AnalyticsBasic:    3,
	survey.AnalyticsAdvanced: 5,
}

var dataWeights = map[survey.DataPractice]int{
	survey.DataScattered:          1,
	survey.DataSomewhatStructured: 3,
	survey.DataCentralized:        5,
}

// DigitalMaturity scores analytics tooling, CRM adoption, and data
// management practice into the 0-11 band.
func DigitalMaturity(s survey.Survey) int {
	raw := analyticsWeights[s.AnalyticsTools] + dataWeights[s.DataManagement]
	if s.CRMUsed {
		raw += 2
	}
	return rescale(raw, digitalMax)
}
