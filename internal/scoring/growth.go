package scoring

import "beamx-scorecard/backend/internal/survey"

const growthMax = 12

var retentionWeights = map[survey.RetentionBucket]int{
	survey.RetentionUnder10: 1,
	survey.Retention10To25:  2,
	survey.Retention25To50:  3,
	survey.Retention50To75:  4,
	survey.RetentionOver75:  5,
}

var campaignWeights = map[survey.CampaignCadence]int{
	survey.CampaignsNone:       1,
	survey.CampaignsSometimes:  3,
	survey.CampaignsConsistent: 5,
}

// GrowthReadiness scores retention, campaign cadence, and CAC tracking into
// the 0-11 band.
func GrowthReadiness(s survey.Survey) int {
	raw := retentionWeights[s.RetentionRate] + campaignWeights[s.DigitalCampaigns]
	if s.CACTracked {
		raw += 2
	}
	return rescale(raw, growthMax)
}
