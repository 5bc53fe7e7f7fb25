package models

import "time"

// PolicyStatus is the lifecycle stage of a regulatory instrument.
// No transition order is enforced between stages.
type PolicyStatus string

const (
	PolicyStatusDraft       PolicyStatus = "DRAFT"
	PolicyStatusProposed    PolicyStatus = "PROPOSED"
	PolicyStatusEnacted     PolicyStatus = "ENACTED"
	PolicyStatusImplemented PolicyStatus = "IMPLEMENTED"
	PolicyStatusAmended     PolicyStatus = "AMENDED"
	PolicyStatusRepealed    PolicyStatus = "REPEALED"
	PolicyStatusExpired     PolicyStatus = "EXPIRED"
)

// Valid reports whether s is a known policy status.
func (s PolicyStatus) Valid() bool {
	switch s {
	case PolicyStatusDraft, PolicyStatusProposed, PolicyStatusEnacted,
		PolicyStatusImplemented, PolicyStatusAmended, PolicyStatusRepealed,
		PolicyStatusExpired:
		return true
	}
	return false
}

// PolicyType classifies the kind of regulatory instrument.
type PolicyType string

const (
	PolicyTypeLegislation    PolicyType = "LEGISLATION"
	PolicyTypeRegulation     PolicyType = "REGULATION"
	PolicyTypeExecutiveOrder PolicyType = "EXECUTIVE_ORDER"
	PolicyTypeGuidance       PolicyType = "GUIDANCE"
	PolicyTypeStandard       PolicyType = "STANDARD"
	PolicyTypeAgreement      PolicyType = "AGREEMENT"
)

// Valid reports whether t is a known policy type.
func (t PolicyType) Valid() bool {
	switch t {
	case PolicyTypeLegislation, PolicyTypeRegulation, PolicyTypeExecutiveOrder,
		PolicyTypeGuidance, PolicyTypeStandard, PolicyTypeAgreement:
		return true
	}
	return false
}

// PolicyCategory is a node in the (one-level) policy category tree.
type PolicyCategory struct {
	Base
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	ParentCategoryID *int64  `json:"parent_category_id,omitempty"`
}

// Policy is a regulatory instrument tracked by PolicyRadar.
type Policy struct {
	Base
	Title        string       `json:"title"`
	Description  *string      `json:"description,omitempty"`
	PolicyNumber string       `json:"policy_number"`
	Jurisdiction string       `json:"jurisdiction"`
	PolicyType   PolicyType   `json:"policy_type"`
	Status       PolicyStatus `json:"status"`

	ProposedDate   *time.Time `json:"proposed_date,omitempty"`
	EnactedDate    *time.Time `json:"enacted_date,omitempty"`
	EffectiveDate  *time.Time `json:"effective_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`

	RegulatoryBody *string `json:"regulatory_body,omitempty"`
	Authority      *string `json:"authority,omitempty"`

	ContentSummary *string `json:"content_summary,omitempty"`
	FullTextURL    *string `json:"full_text_url,omitempty"`
	SourceURL      *string `json:"source_url,omitempty"`

	// EstimatedImpact is in millions USD; ImpactConfidence is a 0-1 score.
	EstimatedImpact    *float64 `json:"estimated_impact,omitempty"`
	ImpactConfidence   *float64 `json:"impact_confidence,omitempty"`
	AffectedIndustries []string `json:"affected_industries,omitempty"`

	CategoryID *int64 `json:"category_id,omitempty"`
}

// PolicyChange records one amendment, repeal, or other modification of a
// policy. Changes are append-only; there is no update or delete route.
type PolicyChange struct {
	Base
	PolicyID          int64     `json:"policy_id"`
	ChangeType        string    `json:"change_type"`
	ChangeDate        time.Time `json:"change_date"`
	ChangeDescription *string   `json:"change_description,omitempty"`

	// ImpactMagnitude is on a -1..1 scale.
	ImpactMagnitude *float64 `json:"impact_magnitude,omitempty"`
	ImpactDirection *string  `json:"impact_direction,omitempty"`

	SourceDocument     *string `json:"source_document,omitempty"`
	LegislativeSession *string `json:"legislative_session,omitempty"`
}
