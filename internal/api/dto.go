package api

import (
	"beamx-scorecard/backend/internal/scoring"
	"beamx-scorecard/backend/internal/survey"
)

// ScorecardRequest is the wire payload for one questionnaire submission.
// Values are carried as strings and validated against the closed
// enumerations in the survey package before any scoring runs.
type ScorecardRequest struct {
	Revenue           string `json:"revenue" binding:"required"`
	ProfitMarginKnown string `json:"profit_margin_known" binding:"required"`
	MonthlyBurn       string `json:"monthly_burn" binding:"required"`
	CACTracked        string `json:"cac_tracked" binding:"required"`
	RetentionRate     string `json:"retention_rate" binding:"required"`
	DigitalCampaigns  string `json:"digital_campaigns" binding:"required"`
	AnalyticsTools    string `json:"analytics_tools" binding:"required"`
	CRMUsed           string `json:"crm_used" binding:"required"`
	DataMgmt          string `json:"data_mgmt" binding:"required"`
	SOPsDoc           string `json:"sops_doc" binding:"required"`
	TeamSize          string `json:"team_size" binding:"required"`
	PainPoint         string `json:"pain_point" binding:"required"`
	Industry          string `json:"industry" binding:"required"`
}

// ToSurvey validates the request against the enumeration contract.
func (r ScorecardRequest) ToSurvey() (survey.Survey, error) {
	return survey.Parse(survey.Input{
		Revenue:           r.Revenue,
		ProfitMarginKnown: r.ProfitMarginKnown,
		MonthlyBurn:       r.MonthlyBurn,
		CACTracked:        r.CACTracked,
		RetentionRate:     r.RetentionRate,
		DigitalCampaigns:  r.DigitalCampaigns,
		AnalyticsTools:    r.AnalyticsTools,
		CRMUsed:           r.CRMUsed,
		DataMgmt:          r.DataMgmt,
		SOPsDoc:           r.SOPsDoc,
		TeamSize:          r.TeamSize,
		PainPoint:         r.PainPoint,
		Industry:          r.Industry,
	})
}

// ScorecardResponse is the API representation of a completed evaluation.
type ScorecardResponse struct {
	Score          int               `json:"score"`
	Label          string            `json:"label"`
	SubScores      scoring.SubScores `json:"sub_scores"`
	Narrative      string            `json:"narrative"`
	RenderedReport string            `json:"rendered_report"`
}
