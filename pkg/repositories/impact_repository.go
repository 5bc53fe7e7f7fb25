package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/policyradar/policyradar-engine/pkg/database"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
)

// ImpactRepository provides data access for impact assessments and their
// child metric and risk-score rows.
type ImpactRepository interface {
	Get(ctx context.Context, id int64) (*models.ImpactAssessment, error)
	List(ctx context.Context, spec *query.Spec) ([]*models.ImpactAssessment, error)
	Metrics(ctx context.Context, assessmentID int64) ([]*models.ImpactMetric, error)
	RiskScores(ctx context.Context, assessmentID int64) ([]*models.RiskScore, error)
}

type impactRepository struct {
	db *database.DB
}

// NewImpactRepository creates a new ImpactRepository.
func NewImpactRepository(db *database.DB) ImpactRepository {
	return &impactRepository{db: db}
}

var _ ImpactRepository = (*impactRepository)(nil)

const impactColumns = `
	id, created_at, updated_at, created_by, updated_by, metadata,
	policy_id, company_id, assessment_date, assessment_period, scenario,
	overall_impact, impact_direction, confidence_level,
	revenue_impact, cost_impact, capital_impact, tax_impact,
	risk_level, risk_score, risk_factors,
	implementation_date, compliance_deadline,
	mitigation_strategies, mitigation_cost, analysis_summary`

// Get retrieves an assessment by ID. Returns (nil, nil) when it does not exist.
func (r *impactRepository) Get(ctx context.Context, id int64) (*models.ImpactAssessment, error) {
	sql := `SELECT ` + impactColumns + ` FROM impact_assessments WHERE id = $1`

	assessment, err := scanImpactAssessment(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return assessment, nil
}

// List returns the page of assessments matching the filter spec.
func (r *impactRepository) List(ctx context.Context, spec *query.Spec) ([]*models.ImpactAssessment, error) {
	where, args := spec.Where(1)

	sql := `SELECT ` + impactColumns + ` FROM impact_assessments`
	if where != "" {
		sql += " " + where
	}
	if spec.Page.Limit > 0 {
		sql += fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
		args = append(args, spec.Page.Skip, spec.Page.Limit)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query impact assessments: %w", err)
	}
	defer rows.Close()

	assessments := []*models.ImpactAssessment{}
	for rows.Next() {
		assessment, err := scanImpactAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating impact assessments: %w", err)
	}

	return assessments, nil
}

// Metrics returns the detailed metric rows for one assessment.
func (r *impactRepository) Metrics(ctx context.Context, assessmentID int64) ([]*models.ImpactMetric, error) {
	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       assessment_id, metric_name, metric_category, metric_unit,
		       baseline_value, projected_value, change_amount, change_percentage,
		       time_period
		FROM impact_metrics
		WHERE assessment_id = $1`

	rows, err := r.db.Query(ctx, sql, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query impact metrics: %w", err)
	}
	defer rows.Close()

	metrics := []*models.ImpactMetric{}
	for rows.Next() {
		var m models.ImpactMetric
		err := rows.Scan(
			&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, &m.Metadata,
			&m.AssessmentID, &m.MetricName, &m.MetricCategory, &m.MetricUnit,
			&m.BaselineValue, &m.ProjectedValue, &m.ChangeAmount, &m.ChangePercentage,
			&m.TimePeriod,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan impact metric: %w", err)
		}
		metrics = append(metrics, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating impact metrics: %w", err)
	}

	return metrics, nil
}

// RiskScores returns the scored risk factors for one assessment.
func (r *impactRepository) RiskScores(ctx context.Context, assessmentID int64) ([]*models.RiskScore, error) {
	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       assessment_id, risk_category, risk_factor, risk_description,
		       probability_score, severity_score, overall_risk_score, risk_level,
		       residual_risk_score
		FROM risk_scores
		WHERE assessment_id = $1`

	rows, err := r.db.Query(ctx, sql, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk scores: %w", err)
	}
	defer rows.Close()

	scores := []*models.RiskScore{}
	for rows.Next() {
		var s models.RiskScore
		err := rows.Scan(
			&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.CreatedBy, &s.UpdatedBy, &s.Metadata,
			&s.AssessmentID, &s.RiskCategory, &s.RiskFactor, &s.RiskDescription,
			&s.ProbabilityScore, &s.SeverityScore, &s.OverallRiskScore, &s.RiskLevel,
			&s.ResidualRiskScore,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan risk score: %w", err)
		}
		scores = append(scores, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risk scores: %w", err)
	}

	return scores, nil
}

func scanImpactAssessment(row pgx.Row) (*models.ImpactAssessment, error) {
	var a models.ImpactAssessment
	var riskFactors, mitigationStrategies []byte

	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy, &a.Metadata,
		&a.PolicyID, &a.CompanyID, &a.AssessmentDate, &a.AssessmentPeriod, &a.Scenario,
		&a.OverallImpact, &a.ImpactDirection, &a.ConfidenceLevel,
		&a.RevenueImpact, &a.CostImpact, &a.CapitalImpact, &a.TaxImpact,
		&a.RiskLevel, &a.RiskScore, &riskFactors,
		&a.ImplementationDate, &a.ComplianceDeadline,
		&mitigationStrategies, &a.MitigationCost, &a.AnalysisSummary,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan impact assessment: %w", err)
	}

	if err := jsonUnmarshal(riskFactors, &a.RiskFactors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk_factors: %w", err)
	}
	if err := jsonUnmarshal(mitigationStrategies, &a.MitigationStrategies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mitigation_strategies: %w", err)
	}

	return &a, nil
}
