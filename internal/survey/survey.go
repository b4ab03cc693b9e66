package survey

import (
	"errors"
	"fmt"
	"strings"
)

// Survey is a validated questionnaire submission. Every enumerated field is
// a closed type that can only be produced by the Parse functions in this
// package, so downstream scoring never sees an out-of-range value.
type Survey struct {
	Revenue           RevenueBracket
	ProfitMarginKnown bool
	MonthlyBurn       BurnBracket
	CACTracked        bool
	RetentionRate     RetentionBucket
	DigitalCampaigns  CampaignCadence
	AnalyticsTools    AnalyticsLevel
	CRMUsed           bool
	DataManagement    DataPractice
	SOPsDocumented    SOPLevel
	TeamSize          TeamBracket
	PainPoint         PainPoint
	Industry          string
}

// RevenueBracket is the monthly revenue band reported by the business.
type RevenueBracket int

const (
	RevenueUnder10K RevenueBracket = iota
	Revenue10KTo50K
	Revenue50KTo250K
	Revenue250KTo1M
	RevenueOver1M
)

// BurnBracket is the monthly burn band. Unknown is a legitimate answer, not
// a validation failure.
type BurnBracket int

const (
	BurnUnknown BurnBracket = iota
	BurnUnder1K
	Burn1KTo5K
	Burn5KTo20K
	BurnOver20K
)

// RetentionBucket is the customer retention rate band.
type RetentionBucket int

const (
	RetentionUnder10 RetentionBucket = iota
	Retention10To25
	Retention25To50
	Retention50To75
	RetentionOver75
)

// CampaignCadence describes how consistently digital campaigns run.
type CampaignCadence int

const (
	CampaignsNone CampaignCadence = iota
	CampaignsSometimes
	CampaignsConsistent
)

// AnalyticsLevel describes analytics tooling sophistication.
type AnalyticsLevel int

const (
	AnalyticsNone AnalyticsLevel = iota
	AnalyticsBasic
	AnalyticsAdvanced
)

// DataPractice describes how business data is managed.
type DataPractice int

const (
	DataScattered DataPractice = iota
	DataSomewhatStructured
	DataCentralized
)

// SOPLevel describes how thoroughly operating procedures are documented.
type SOPLevel int

const (
	SOPNone SOPLevel = iota
	SOPPartial
	SOPFull
)

// TeamBracket is the headcount band.
type TeamBracket int

const (
	TeamSolo TeamBracket = iota
	Team1To3
	Team4To10
	Team11To50
	TeamOver50
)

// PainPoint is the dominant growth obstacle reported by the business.
type PainPoint int

const (
	PainNotGrowing PainPoint = iota
	PainChaoticSystems
	PainUnclearPriorities
	PainNeedFunding
	PainScalingFast
)

var revenueValues = map[string]RevenueBracket{
	"Under $10K":  RevenueUnder10K,
	"$10K–$50K":   Revenue10KTo50K,
	"$50K–$250K":  Revenue50KTo250K,
	"$250K–$1M":   Revenue250KTo1M,
	"Over $1M":    RevenueOver1M,
}

var burnValues = map[string]BurnBracket{
	"Unknown":   BurnUnknown,
	"≤$1K":      BurnUnder1K,
	"$1K–$5K":   Burn1KTo5K,
	"$5K–$20K":  Burn5KTo20K,
	"$20K+":     BurnOver20K,
}

var retentionValues = map[string]RetentionBucket{
	"<10%":   RetentionUnder10,
	"10–25%": Retention10To25,
	"25–50%": Retention25To50,
	"50–75%": Retention50To75,
	"75%+":   RetentionOver75,
}

var campaignValues = map[string]CampaignCadence{
	"No":           CampaignsNone,
	"Sometimes":    CampaignsSometimes,
	"Consistently": CampaignsConsistent,
}

var analyticsValues = map[string]AnalyticsLevel{
	"No":                            AnalyticsNone,
	"Basic tools (Excel, etc.)":     AnalyticsBasic,
	"Advanced or custom dashboards": AnalyticsAdvanced,
}

var dataValues = map[string]DataPractice{
	"Scattered or manual":       DataScattered,
	"Somewhat structured":       DataSomewhatStructured,
	"Centralized and automated": DataCentralized,
}

var sopValues = map[string]SOPLevel{
	"No":               SOPNone,
	"Somewhat":         SOPPartial,
	"Fully documented": SOPFull,
}

var teamValues = map[string]TeamBracket{
	"0 (solo)": TeamSolo,
	"1–3":      Team1To3,
	"4–10":     Team4To10,
	"11–50":    Team11To50,
	"50+":      TeamOver50,
}

var painValues = map[string]PainPoint{
	"Not growing":                  PainNotGrowing,
	"Systems are chaotic":          PainChaoticSystems,
	"Don't know what to optimize":  PainUnclearPriorities,
	"Need funding":                 PainNeedFunding,
	"Growing fast, need structure": PainScalingFast,
}

// Input carries the raw wire values of one submission before validation.
type Input struct {
	Revenue           string
	ProfitMarginKnown string
	MonthlyBurn       string
	CACTracked        string
	RetentionRate     string
	DigitalCampaigns  string
	AnalyticsTools    string
	CRMUsed           string
	DataMgmt          string
	SOPsDoc           string
	TeamSize          string
	PainPoint         string
	Industry          string
}

// Parse validates every field of the raw input against its enumeration and
// returns a fully typed Survey. The first offending field aborts parsing and
// is named in the returned error.
func Parse(in Input) (Survey, error) {
	var (
		out Survey
		err error
	)

	if out.Revenue, err = ParseRevenueBracket(in.Revenue); err != nil {
		return Survey{}, err
	}
	if out.ProfitMarginKnown, err = parseYesNo("profit_margin_known", in.ProfitMarginKnown); err != nil {
		return Survey{}, err
	}
	if out.MonthlyBurn, err = ParseBurnBracket(in.MonthlyBurn); err != nil {
		return Survey{}, err
	}
	if out.CACTracked, err = parseYesNo("cac_tracked", in.CACTracked); err != nil {
		return Survey{}, err
	}
	if out.RetentionRate, err = ParseRetentionBucket(in.RetentionRate); err != nil {
		return Survey{}, err
	}
	if out.DigitalCampaigns, err = ParseCampaignCadence(in.DigitalCampaigns); err != nil {
		return Survey{}, err
	}
	if out.AnalyticsTools, err = ParseAnalyticsLevel(in.AnalyticsTools); err != nil {
		return Survey{}, err
	}
	if out.CRMUsed, err = parseYesNo("crm_used", in.CRMUsed); err != nil {
		return Survey{}, err
	}
	if out.DataManagement, err = ParseDataPractice(in.DataMgmt); err != nil {
		return Survey{}, err
	}
	if out.SOPsDocumented, err = ParseSOPLevel(in.SOPsDoc); err != nil {
		return Survey{}, err
	}
	if out.TeamSize, err = ParseTeamBracket(in.TeamSize); err != nil {
		return Survey{}, err
	}
	if out.PainPoint, err = ParsePainPoint(in.PainPoint); err != nil {
		return Survey{}, err
	}

	out.Industry = strings.TrimSpace(in.Industry)
	if out.Industry == "" {
		return Survey{}, errors.New("industry: value is required")
	}

	return out, nil
}

// ParseRevenueBracket maps a wire value onto its revenue bracket.
func ParseRevenueBracket(value string) (RevenueBracket, error) {
	if v, ok := revenueValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("revenue", value)
}

// ParseBurnBracket maps a wire value onto its monthly burn bracket.
func ParseBurnBracket(value string) (BurnBracket, error) {
	if v, ok := burnValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("monthly_burn", value)
}

// ParseRetentionBucket maps a wire value onto its retention bucket.
func ParseRetentionBucket(value string) (RetentionBucket, error) {
	if v, ok := retentionValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("retention_rate", value)
}

// ParseCampaignCadence maps a wire value onto its campaign cadence.
func ParseCampaignCadence(value string) (CampaignCadence, error) {
	if v, ok := campaignValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("digital_campaigns", value)
}

// ParseAnalyticsLevel maps a wire value onto its analytics level.
func ParseAnalyticsLevel(value string) (AnalyticsLevel, error) {
	if v, ok := analyticsValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("analytics_tools", value)
}

// ParseDataPractice maps a wire value onto its data management practice.
func ParseDataPractice(value string) (DataPractice, error) {
	if v, ok := dataValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("data_mgmt", value)
}

// ParseSOPLevel maps a wire value onto its SOP documentation level.
func ParseSOPLevel(value string) (SOPLevel, error) {
	if v, ok := sopValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("sops_doc", value)
}

// ParseTeamBracket maps a wire value onto its team size bracket.
func ParseTeamBracket(value string) (TeamBracket, error) {
	if v, ok := teamValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("team_size", value)
}

// ParsePainPoint maps a wire value onto its dominant pain point.
func ParsePainPoint(value string) (PainPoint, error) {
	if v, ok := painValues[value]; ok {
		return v, nil
	}
	return 0, unsupported("pain_point", value)
}

func parseYesNo(field, value string) (bool, error) {
	switch value {
	case "Yes":
		return true, nil
	case "No":
		return false, nil
	default:
		return false, unsupported(field, value)
	}
}

func unsupported(field, value string) error {
	return fmt.Errorf("%s: unsupported value %q", field, value)
}
