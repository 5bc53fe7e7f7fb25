package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policyradar/policyradar-engine/pkg/apperrors"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/repositories"
	"github.com/policyradar/policyradar-engine/pkg/testhelpers"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func newTestPolicy(number string) *models.Policy {
	proposed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &models.Policy{
		Title:              "Carbon Border Adjustment Mechanism",
		Description:        strPtr("Levy on carbon-intensive imports"),
		PolicyNumber:       number,
		Jurisdiction:       "European Union",
		PolicyType:         models.PolicyTypeRegulation,
		Status:             models.PolicyStatusProposed,
		ProposedDate:       timePtr(proposed),
		EstimatedImpact:    floatPtr(-340.5),
		ImpactConfidence:   floatPtr(0.72),
		AffectedIndustries: []string{"Energy", "Manufacturing"},
	}
}

func TestPolicyRepository_CRUDRoundTrip(t *testing.T) {
	db := testhelpers.GetRadarDB(t)
	testhelpers.TruncateTables(t, db.DB, "policies")

	repo := repositories.NewPolicyRepository(db.DB)
	ctx := context.Background()

	policy := newTestPolicy("EU-REG-0001")
	require.NoError(t, repo.Create(ctx, policy))
	require.NotZero(t, policy.ID)
	assert.False(t, policy.CreatedAt.IsZero())

	got, err := repo.Get(ctx, policy.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Carbon Border Adjustment Mechanism", got.Title)
	assert.Equal(t, []string{"Energy", "Manufacturing"}, got.AffectedIndustries)
	assert.Equal(t, models.PolicyStatusProposed, got.Status)

	got.Status = models.PolicyStatusEnacted
	got.EnactedDate = timePtr(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, policy.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.PolicyStatusEnacted, updated.Status)
	require.NotNil(t, updated.EnactedDate)

	require.NoError(t, repo.Delete(ctx, policy.ID))

	gone, err := repo.Get(ctx, policy.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, repo.Delete(ctx, policy.ID), apperrors.ErrNotFound)
}

func TestPolicyRepository_ListFiltersAndPaginates(t *testing.T) {
	db := testhelpers.GetRadarDB(t)
	testhelpers.TruncateTables(t, db.DB, "policies")

	repo := repositories.NewPolicyRepository(db.DB)
	ctx := context.Background()

	for i, jurisdiction := range []string{"United States", "United States", "Japan"} {
		p := newTestPolicy("US-LEG-" + string(rune('A'+i)))
		p.Jurisdiction = jurisdiction
		require.NoError(t, repo.Create(ctx, p))
	}

	spec := (&query.Spec{Page: query.Page{Skip: 0, Limit: 10}}).
		Eq("jurisdiction", "United States")
	policies, err := repo.List(ctx, spec)
	require.NoError(t, err)
	assert.Len(t, policies, 2)

	spec.Page = query.Page{Skip: 1, Limit: 10}
	paged, err := repo.List(ctx, spec)
	require.NoError(t, err)
	assert.Len(t, paged, 1)

	// Tag containment against the JSONB industries column.
	tagged, err := repo.List(ctx, (&query.Spec{Page: query.Page{Limit: 10}}).
		ContainsTag("affected_industries", "Energy"))
	require.NoError(t, err)
	assert.Len(t, tagged, 3)

	none, err := repo.List(ctx, (&query.Spec{Page: query.Page{Limit: 10}}).
		Eq("jurisdiction", "Atlantis"))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPolicyRepository_SearchAndHighRisk(t *testing.T) {
	db := testhelpers.GetRadarDB(t)
	testhelpers.TruncateTables(t, db.DB, "policies")

	repo := repositories.NewPolicyRepository(db.DB)
	ctx := context.Background()

	carbon := newTestPolicy("EU-REG-CARB")
	require.NoError(t, repo.Create(ctx, carbon))

	digital := newTestPolicy("EU-REG-DIGI")
	digital.Title = "Digital Markets Act Amendment"
	digital.Description = strPtr("Interoperability obligations for gatekeepers")
	digital.EstimatedImpact = floatPtr(120.0)
	digital.ImpactConfidence = floatPtr(0.9)
	require.NoError(t, repo.Create(ctx, digital))

	found, err := repo.Search(ctx, "carbon", query.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, carbon.PolicyNumber, found[0].PolicyNumber)

	// carbon qualifies on estimated_impact < -100; digital on neither arm.
	risky, err := repo.HighRisk(ctx, 10)
	require.NoError(t, err)
	require.Len(t, risky, 1)
	assert.Equal(t, carbon.PolicyNumber, risky[0].PolicyNumber)
}

func TestPolicyRepository_RecentWindow(t *testing.T) {
	db := testhelpers.GetRadarDB(t)
	testhelpers.TruncateTables(t, db.DB, "policies")

	repo := repositories.NewPolicyRepository(db.DB)
	ctx := context.Background()

	old := newTestPolicy("EU-REG-OLD")
	old.ProposedDate = timePtr(time.Now().UTC().AddDate(0, 0, -90))
	require.NoError(t, repo.Create(ctx, old))

	fresh := newTestPolicy("EU-REG-NEW")
	fresh.ProposedDate = timePtr(time.Now().UTC().AddDate(0, 0, -5))
	require.NoError(t, repo.Create(ctx, fresh))

	recent, err := repo.Recent(ctx, time.Now().UTC().AddDate(0, 0, -30), 50)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "EU-REG-NEW", recent[0].PolicyNumber)
}
