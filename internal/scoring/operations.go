package scoring

import "beamx-scorecard/backend/internal/survey"

// The operational tables sum to a 15-point raw scale instead of 12, so this
// category divides by 15 to land on the same 0-11 ceiling. Inherited
// behavior; confirm with stakeholders before normalizing the divisor.
const operationsMax = 15

var sopWeights = map[survey.SOPLevel]int{
	survey.SOPNone:    1,
	survey.SOPPartial: 3,
	survey.SOPFull:    5,
}

var teamWeights = map[survey.TeamBracket]int{
	survey.TeamSolo:   1,
	survey.Team1To3:   2,
	survey.Team4To10:  3,
	survey.Team11To50: 4,
	survey.TeamOver50: 5,
}

var painWeights = map[survey.PainPoint]int{
	survey.PainNotGrowing:        1,
	survey.PainChaoticSystems:    2,
	survey.PainUnclearPriorities: 3,
	survey.PainNeedFunding:       4,
	survey.PainScalingFast:       5,
}

// OperationalEfficiency scores SOP documentation, team size, and the
// dominant pain point into the 0-11 band.
func OperationalEfficiency(s survey.Survey) int {
	raw := sopWeights[s.SOPsDocumented] + teamWeights[s.TeamSize] + painWeights[s.PainPoint]
	return rescale(raw, operationsMax)
}
