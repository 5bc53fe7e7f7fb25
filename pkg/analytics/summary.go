// Package analytics computes in-memory reductions over filtered result
// sets. Aggregation happens after the fetch, never inside the database.
package analytics

import (
	"bytes"
	"encoding/json"

	"github.com/policyradar/policyradar-engine/pkg/models"
)

// Breakdown is a key -> count tally whose JSON encoding preserves the
// insertion order of first occurrence (a plain map would sort keys).
type Breakdown struct {
	keys   []string
	counts map[string]int
}

// NewBreakdown returns an empty tally.
func NewBreakdown() *Breakdown {
	return &Breakdown{counts: make(map[string]int)}
}

// Add increments the bucket for key, creating it on first occurrence.
func (b *Breakdown) Add(key string) {
	if _, ok := b.counts[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.counts[key]++
}

// Count returns the tally for key, 0 when absent.
func (b *Breakdown) Count(key string) int {
	return b.counts[key]
}

// Len returns the number of distinct keys.
func (b *Breakdown) Len() int {
	return len(b.keys)
}

// Keys returns the keys in first-occurrence order.
func (b *Breakdown) Keys() []string {
	return b.keys
}

// MarshalJSON encodes the tally as a JSON object in insertion order.
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		count, err := json.Marshal(b.counts[key])
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving its key order.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	b.keys = nil
	b.counts = make(map[string]int)

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		b.keys = append(b.keys, key)
		b.counts[key] = count
	}
	return nil
}

// Period is the analysis window echoed back in a summary.
type Period struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// Summary holds the aggregate statistics for a filtered policy set.
type Summary struct {
	TotalPolicies    int        `json:"total_policies"`
	EnactedPolicies  int        `json:"enacted_policies"`
	ProposedPolicies int        `json:"proposed_policies"`
	AverageImpact    float64    `json:"average_impact"`
	Jurisdictions    *Breakdown `json:"jurisdiction_breakdown"`
	Industries       *Breakdown `json:"industry_breakdown"`
	AnalysisPeriod   Period     `json:"analysis_period"`
}

// Summarize reduces a filtered policy slice to its summary statistics.
// The average impact is taken over policies with a non-nil estimated
// impact and is 0 when there are none (not NaN, not an error). Each tag in
// a policy's affected_industries increments its own industry bucket.
func Summarize(policies []*models.Policy) *Summary {
	s := &Summary{
		TotalPolicies: len(policies),
		Jurisdictions: NewBreakdown(),
		Industries:    NewBreakdown(),
	}

	var impactSum float64
	var impactCount int

	for _, p := range policies {
		switch p.Status {
		case models.PolicyStatusEnacted:
			s.EnactedPolicies++
		case models.PolicyStatusProposed:
			s.ProposedPolicies++
		}

		if p.EstimatedImpact != nil {
			impactSum += *p.EstimatedImpact
			impactCount++
		}

		s.Jurisdictions.Add(p.Jurisdiction)

		for _, industry := range p.AffectedIndustries {
			s.Industries.Add(industry)
		}
	}

	if impactCount > 0 {
		s.AverageImpact = impactSum / float64(impactCount)
	}

	return s
}
