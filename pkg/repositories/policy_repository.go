package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/policyradar/policyradar-engine/pkg/apperrors"
	"github.com/policyradar/policyradar-engine/pkg/database"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
)

// PolicyRepository provides data access for policies, their categories,
// and their change history.
type PolicyRepository interface {
	Create(ctx context.Context, policy *models.Policy) error
	Get(ctx context.Context, id int64) (*models.Policy, error)
	Update(ctx context.Context, policy *models.Policy) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, spec *query.Spec) ([]*models.Policy, error)
	Search(ctx context.Context, term string, page query.Page) ([]*models.Policy, error)
	Recent(ctx context.Context, cutoff time.Time, limit int) ([]*models.Policy, error)
	HighRisk(ctx context.Context, limit int) ([]*models.Policy, error)
	Changes(ctx context.Context, policyID int64) ([]*models.PolicyChange, error)
	Categories(ctx context.Context) ([]*models.PolicyCategory, error)
}

type policyRepository struct {
	db *database.DB
}

// NewPolicyRepository creates a new PolicyRepository.
func NewPolicyRepository(db *database.DB) PolicyRepository {
	return &policyRepository{db: db}
}

var _ PolicyRepository = (*policyRepository)(nil)

const policyColumns = `
	id, created_at, updated_at, created_by, updated_by, metadata,
	title, description, policy_number, jurisdiction, policy_type, status,
	proposed_date, enacted_date, effective_date, expiration_date,
	regulatory_body, authority, content_summary, full_text_url, source_url,
	estimated_impact, impact_confidence, affected_industries, category_id`

// ============================================================================
// CRUD Operations
// ============================================================================

// Create inserts a new policy. The identifier is server-assigned; any
// client-supplied id is ignored.
func (r *policyRepository) Create(ctx context.Context, policy *models.Policy) error {
	now := time.Now().UTC()

	sql := `
		INSERT INTO policies (
			created_at, updated_at, created_by, updated_by, metadata,
			title, description, policy_number, jurisdiction, policy_type, status,
			proposed_date, enacted_date, effective_date, expiration_date,
			regulatory_body, authority, content_summary, full_text_url, source_url,
			estimated_impact, impact_confidence, affected_industries, category_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, sql,
		now,
		now,
		policy.CreatedBy,
		policy.UpdatedBy,
		policy.Metadata,
		policy.Title,
		policy.Description,
		policy.PolicyNumber,
		policy.Jurisdiction,
		policy.PolicyType,
		policy.Status,
		policy.ProposedDate,
		policy.EnactedDate,
		policy.EffectiveDate,
		policy.ExpirationDate,
		policy.RegulatoryBody,
		policy.Authority,
		policy.ContentSummary,
		policy.FullTextURL,
		policy.SourceURL,
		policy.EstimatedImpact,
		policy.ImpactConfidence,
		jsonbValue(policy.AffectedIndustries),
		policy.CategoryID,
	).Scan(&policy.ID, &policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}

	return nil
}

// Get retrieves a policy by ID. Returns (nil, nil) when it does not exist.
func (r *policyRepository) Get(ctx context.Context, id int64) (*models.Policy, error) {
	sql := `SELECT ` + policyColumns + ` FROM policies WHERE id = $1`

	policy, err := scanPolicy(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return policy, nil
}

// Update overwrites every mutable field of the policy. Partial updates are
// not supported.
func (r *policyRepository) Update(ctx context.Context, policy *models.Policy) error {
	sql := `
		UPDATE policies
		SET updated_at = $2, updated_by = $3, metadata = $4,
		    title = $5, description = $6, policy_number = $7, jurisdiction = $8,
		    policy_type = $9, status = $10, proposed_date = $11,
		    enacted_date = $12, effective_date = $13, expiration_date = $14,
		    regulatory_body = $15, authority = $16, content_summary = $17,
		    full_text_url = $18, source_url = $19, estimated_impact = $20,
		    impact_confidence = $21, affected_industries = $22, category_id = $23
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, sql,
		policy.ID,
		time.Now().UTC(),
		policy.UpdatedBy,
		policy.Metadata,
		policy.Title,
		policy.Description,
		policy.PolicyNumber,
		policy.Jurisdiction,
		policy.PolicyType,
		policy.Status,
		policy.ProposedDate,
		policy.EnactedDate,
		policy.EffectiveDate,
		policy.ExpirationDate,
		policy.RegulatoryBody,
		policy.Authority,
		policy.ContentSummary,
		policy.FullTextURL,
		policy.SourceURL,
		policy.EstimatedImpact,
		policy.ImpactConfidence,
		jsonbValue(policy.AffectedIndustries),
		policy.CategoryID,
	).Scan(&policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update policy: %w", err)
	}

	return nil
}

// Delete removes a policy. Dependent policy_changes and impact_assessments
// rows go with it via ON DELETE CASCADE.
func (r *policyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// ============================================================================
// Collection Queries
// ============================================================================

// List returns the page of policies matching the filter spec. An empty
// result is an empty slice, not an error.
func (r *policyRepository) List(ctx context.Context, spec *query.Spec) ([]*models.Policy, error) {
	where, args := spec.Where(1)

	sql := `SELECT ` + policyColumns + ` FROM policies`
	if where != "" {
		sql += " " + where
	}
	if order := spec.OrderClause(); order != "" {
		sql += " " + order
	}
	if spec.Page.Limit > 0 {
		sql += fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
		args = append(args, spec.Page.Skip, spec.Page.Limit)
	}

	return r.queryPolicies(ctx, sql, args...)
}

// Search performs a case-insensitive OR-combined substring match across
// title, description, and content_summary. Results are unordered.
func (r *policyRepository) Search(ctx context.Context, term string, page query.Page) ([]*models.Policy, error) {
	spec := (&query.Spec{Page: page}).Search(term, "title", "description", "content_summary")
	return r.List(ctx, spec)
}

// Recent returns policies proposed on or after the cutoff, most recently
// proposed first.
func (r *policyRepository) Recent(ctx context.Context, cutoff time.Time, limit int) ([]*models.Policy, error) {
	spec := (&query.Spec{
		OrderBy: "proposed_date",
		Desc:    true,
		Page:    query.Page{Skip: 0, Limit: limit},
	}).Gte("proposed_date", cutoff)
	return r.List(ctx, spec)
}

// HighRisk returns policies with estimated_impact < -100 or
// impact_confidence < 0.6, most negative impact first.
func (r *policyRepository) HighRisk(ctx context.Context, limit int) ([]*models.Policy, error) {
	spec := &query.Spec{
		OrGroups: []query.OrGroup{{Predicates: []query.Predicate{
			{Field: "estimated_impact", Op: query.OpLt, Value: -100.0},
			{Field: "impact_confidence", Op: query.OpLt, Value: 0.6},
		}}},
		OrderBy: "estimated_impact",
		Page:    query.Page{Skip: 0, Limit: limit},
	}
	return r.List(ctx, spec)
}

// Changes returns the change history for one policy.
func (r *policyRepository) Changes(ctx context.Context, policyID int64) ([]*models.PolicyChange, error) {
	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       policy_id, change_type, change_date, change_description,
		       impact_magnitude, impact_direction, source_document, legislative_session
		FROM policy_changes
		WHERE policy_id = $1`

	rows, err := r.db.Query(ctx, sql, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query policy changes: %w", err)
	}
	defer rows.Close()

	changes := []*models.PolicyChange{}
	for rows.Next() {
		var c models.PolicyChange
		err := rows.Scan(
			&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy, &c.Metadata,
			&c.PolicyID, &c.ChangeType, &c.ChangeDate, &c.ChangeDescription,
			&c.ImpactMagnitude, &c.ImpactDirection, &c.SourceDocument, &c.LegislativeSession,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy change: %w", err)
		}
		changes = append(changes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating policy changes: %w", err)
	}

	return changes, nil
}

// Categories returns all policy categories.
func (r *policyRepository) Categories(ctx context.Context) ([]*models.PolicyCategory, error) {
	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       name, description, parent_category_id
		FROM policy_categories`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query policy categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.PolicyCategory{}
	for rows.Next() {
		var c models.PolicyCategory
		err := rows.Scan(
			&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy, &c.Metadata,
			&c.Name, &c.Description, &c.ParentCategoryID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy category: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating policy categories: %w", err)
	}

	return categories, nil
}

// ============================================================================
// Helper Functions
// ============================================================================

func (r *policyRepository) queryPolicies(ctx context.Context, sql string, args ...any) ([]*models.Policy, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query policies: %w", err)
	}
	defer rows.Close()

	policies := []*models.Policy{}
	for rows.Next() {
		policy, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating policies: %w", err)
	}

	return policies, nil
}

func scanPolicy(row pgx.Row) (*models.Policy, error) {
	var p models.Policy
	var industries []byte

	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy, &p.Metadata,
		&p.Title, &p.Description, &p.PolicyNumber, &p.Jurisdiction, &p.PolicyType, &p.Status,
		&p.ProposedDate, &p.EnactedDate, &p.EffectiveDate, &p.ExpirationDate,
		&p.RegulatoryBody, &p.Authority, &p.ContentSummary, &p.FullTextURL, &p.SourceURL,
		&p.EstimatedImpact, &p.ImpactConfidence, &industries, &p.CategoryID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan policy: %w", err)
	}

	if err := jsonUnmarshal(industries, &p.AffectedIndustries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal affected_industries: %w", err)
	}

	return &p, nil
}
