package models

import "time"

// ImpactDirection is the sign of a policy's effect on a company.
type ImpactDirection string

const (
	ImpactPositive ImpactDirection = "POSITIVE"
	ImpactNegative ImpactDirection = "NEGATIVE"
	ImpactNeutral  ImpactDirection = "NEUTRAL"
	ImpactMixed    ImpactDirection = "MIXED"
)

// Valid reports whether d is a known impact direction.
func (d ImpactDirection) Valid() bool {
	switch d {
	case ImpactPositive, ImpactNegative, ImpactNeutral, ImpactMixed:
		return true
	}
	return false
}

// RiskLevel is a coarse ordinal classification derived from
// probability x severity scoring.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Valid reports whether l is a known risk level.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ImpactAssessment quantifies one policy's estimated financial effect on
// one company. The policy/company many-to-many is realized through this
// join entity.
type ImpactAssessment struct {
	Base
	PolicyID  int64 `json:"policy_id"`
	CompanyID int64 `json:"company_id"`

	AssessmentDate   time.Time `json:"assessment_date"`
	AssessmentPeriod *string   `json:"assessment_period,omitempty"`
	Scenario         *string   `json:"scenario,omitempty"`

	// OverallImpact is in millions USD; ConfidenceLevel is a 0-1 score.
	OverallImpact   *float64         `json:"overall_impact,omitempty"`
	ImpactDirection *ImpactDirection `json:"impact_direction,omitempty"`
	ConfidenceLevel *float64         `json:"confidence_level,omitempty"`

	RevenueImpact *float64 `json:"revenue_impact,omitempty"`
	CostImpact    *float64 `json:"cost_impact,omitempty"`
	CapitalImpact *float64 `json:"capital_impact,omitempty"`
	TaxImpact     *float64 `json:"tax_impact,omitempty"`

	RiskLevel   *RiskLevel `json:"risk_level,omitempty"`
	RiskScore   *float64   `json:"risk_score,omitempty"`
	RiskFactors []string   `json:"risk_factors,omitempty"`

	ImplementationDate *time.Time `json:"implementation_date,omitempty"`
	ComplianceDeadline *time.Time `json:"compliance_deadline,omitempty"`

	MitigationStrategies []string `json:"mitigation_strategies,omitempty"`
	MitigationCost       *float64 `json:"mitigation_cost,omitempty"`

	AnalysisSummary *string `json:"analysis_summary,omitempty"`
}

// ImpactMetric is one quantified metric within an assessment.
type ImpactMetric struct {
	Base
	AssessmentID int64 `json:"assessment_id"`

	MetricName     string  `json:"metric_name"`
	MetricCategory *string `json:"metric_category,omitempty"`
	MetricUnit     *string `json:"metric_unit,omitempty"`

	BaselineValue    *float64 `json:"baseline_value,omitempty"`
	ProjectedValue   *float64 `json:"projected_value,omitempty"`
	ChangeAmount     *float64 `json:"change_amount,omitempty"`
	ChangePercentage *float64 `json:"change_percentage,omitempty"`

	TimePeriod *string `json:"time_period,omitempty"`
}

// RiskScore is one scored risk factor within an assessment.
// OverallRiskScore is probability x severity.
type RiskScore struct {
	Base
	AssessmentID int64 `json:"assessment_id"`

	RiskCategory    string  `json:"risk_category"`
	RiskFactor      string  `json:"risk_factor"`
	RiskDescription *string `json:"risk_description,omitempty"`

	ProbabilityScore *float64   `json:"probability_score,omitempty"`
	SeverityScore    *float64   `json:"severity_score,omitempty"`
	OverallRiskScore *float64   `json:"overall_risk_score,omitempty"`
	RiskLevel        *RiskLevel `json:"risk_level,omitempty"`

	ResidualRiskScore *float64 `json:"residual_risk_score,omitempty"`
}
