package models

import "time"

// RegulatoryType classifies a regulatory authority.
type RegulatoryType string

const (
	RegulatoryTypeCentralBank    RegulatoryType = "CENTRAL_BANK"
	RegulatoryTypeSecurities     RegulatoryType = "SECURITIES"
	RegulatoryTypeEnvironmental  RegulatoryType = "ENVIRONMENTAL"
	RegulatoryTypeTax            RegulatoryType = "TAX"
	RegulatoryTypeTrade          RegulatoryType = "TRADE"
	RegulatoryTypeDataProtection RegulatoryType = "DATA_PROTECTION"
	RegulatoryTypeOther          RegulatoryType = "OTHER"
)

// Valid reports whether t is a known regulatory type.
func (t RegulatoryType) Valid() bool {
	switch t {
	case RegulatoryTypeCentralBank, RegulatoryTypeSecurities,
		RegulatoryTypeEnvironmental, RegulatoryTypeTax, RegulatoryTypeTrade,
		RegulatoryTypeDataProtection, RegulatoryTypeOther:
		return true
	}
	return false
}

// RegulatoryBody is reference data describing a regulator.
type RegulatoryBody struct {
	Base
	Name           string         `json:"name"`
	ShortName      *string        `json:"short_name,omitempty"`
	RegulatoryType RegulatoryType `json:"regulatory_type"`

	Country      string  `json:"country"`
	Region       *string `json:"region,omitempty"`
	Jurisdiction *string `json:"jurisdiction,omitempty"`

	Website *string `json:"website,omitempty"`

	AnnualBudget *float64 `json:"annual_budget,omitempty"`
	StaffCount   *int64   `json:"staff_count,omitempty"`

	PoliciesIssued     *int64     `json:"policies_issued,omitempty"`
	EnforcementActions *int64     `json:"enforcement_actions,omitempty"`
	LastActivityDate   *time.Time `json:"last_activity_date,omitempty"`
}

// ComplianceRequirement is one obligation imposed by a regulatory body.
type ComplianceRequirement struct {
	Base
	RegulatoryBodyID int64 `json:"regulatory_body_id"`

	RequirementName string  `json:"requirement_name"`
	RequirementCode *string `json:"requirement_code,omitempty"`
	Description     *string `json:"description,omitempty"`

	ApplicableIndustries []string `json:"applicable_industries,omitempty"`

	EffectiveDate      *time.Time `json:"effective_date,omitempty"`
	ComplianceDeadline *time.Time `json:"compliance_deadline,omitempty"`
	ReviewFrequency    *string    `json:"review_frequency,omitempty"`

	// EstimatedComplianceCost is in millions USD.
	EstimatedComplianceCost *float64 `json:"estimated_compliance_cost,omitempty"`
	ImplementationTimeline  *int64   `json:"implementation_timeline,omitempty"`
}
