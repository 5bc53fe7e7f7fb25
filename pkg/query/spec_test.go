package query

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policyradar/policyradar-engine/pkg/apperrors"
)

func TestPage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		page    Page
		wantErr bool
	}{
		{"defaults", DefaultPage(), false},
		{"minimum limit", Page{Skip: 0, Limit: 1}, false},
		{"maximum limit", Page{Skip: 0, Limit: 1000}, false},
		{"large skip", Page{Skip: 100000, Limit: 100}, false},
		{"zero limit", Page{Skip: 0, Limit: 0}, true},
		{"limit above max", Page{Skip: 0, Limit: 1001}, true},
		{"negative skip", Page{Skip: -1, Limit: 100}, true},
		{"negative limit", Page{Skip: 0, Limit: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate(0)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation),
					"bounds violations must be validation errors, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPage_ValidateCustomMax(t *testing.T) {
	// The recent/high-risk listings use a tighter 1..500 window.
	assert.NoError(t, Page{Skip: 0, Limit: 500}.Validate(500))
	assert.Error(t, Page{Skip: 0, Limit: 501}.Validate(500))
}

func TestSpec_WhereEmpty(t *testing.T) {
	var s Spec
	clause, args := s.Where(1)
	assert.Empty(t, clause, "absent filters impose no constraint")
	assert.Empty(t, args)
}

func TestSpec_WhereConjunction(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	s := (&Spec{}).
		Eq("jurisdiction", "US").
		Eq("status", "ENACTED").
		Gte("proposed_date", start).
		Lte("proposed_date", end)

	clause, args := s.Where(1)
	assert.Equal(t,
		"WHERE jurisdiction = $1 AND status = $2 AND proposed_date >= $3 AND proposed_date <= $4",
		clause)
	require.Len(t, args, 4)
	assert.Equal(t, "US", args[0])
	assert.Equal(t, start, args[2])
}

func TestSpec_WhereArgOffset(t *testing.T) {
	s := (&Spec{}).Eq("policy_id", int64(7))
	clause, args := s.Where(3)
	assert.Equal(t, "WHERE policy_id = $3", clause)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestSpec_ContainsTag(t *testing.T) {
	s := (&Spec{}).ContainsTag("affected_industries", "technology")
	clause, args := s.Where(1)
	assert.Equal(t, "WHERE affected_industries @> $1", clause)
	require.Len(t, args, 1)
	assert.JSONEq(t, `["technology"]`, args[0].(string))
}

func TestSpec_Search(t *testing.T) {
	s := (&Spec{}).Search("carbon", "title", "description", "content_summary")
	clause, args := s.Where(1)
	assert.Equal(t,
		"WHERE (title ILIKE $1 OR description ILIKE $1 OR content_summary ILIKE $1)",
		clause)
	assert.Equal(t, []any{"%carbon%"}, args)
}

func TestSpec_SearchCombinesWithFilters(t *testing.T) {
	s := (&Spec{}).Eq("jurisdiction", "EU").Search("tariff", "title", "description")
	clause, args := s.Where(1)
	assert.Equal(t,
		"WHERE jurisdiction = $1 AND (title ILIKE $2 OR description ILIKE $2)",
		clause)
	assert.Len(t, args, 2)
}

func TestSpec_OrGroup(t *testing.T) {
	// High-risk definition: estimated_impact < -100 OR impact_confidence < 0.6.
	s := &Spec{
		OrGroups: []OrGroup{{Predicates: []Predicate{
			{Field: "estimated_impact", Op: OpLt, Value: -100.0},
			{Field: "impact_confidence", Op: OpLt, Value: 0.6},
		}}},
		OrderBy: "estimated_impact",
	}

	clause, args := s.Where(1)
	assert.Equal(t, "WHERE (estimated_impact < $1 OR impact_confidence < $2)", clause)
	assert.Equal(t, []any{-100.0, 0.6}, args)
	assert.Equal(t, "ORDER BY estimated_impact ASC", s.OrderClause())
}

func TestSpec_OrderClause(t *testing.T) {
	var s Spec
	assert.Empty(t, s.OrderClause(), "general listings leave order unspecified")

	s.OrderBy = "proposed_date"
	s.Desc = true
	assert.Equal(t, "ORDER BY proposed_date DESC", s.OrderClause())
}
