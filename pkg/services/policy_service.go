// Package services contains the application logic between the HTTP
// handlers and the repositories.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/analytics"
	"github.com/policyradar/policyradar-engine/pkg/apperrors"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/repositories"
)

// RecentMaxLimit and HighRiskMaxLimit bound the ordered subset listings.
const (
	RecentMaxLimit   = 500
	HighRiskMaxLimit = 500
	RecentMaxDays    = 365
)

// PolicyListParams are the optional filters for a policy listing.
// A zero-valued field imposes no constraint.
type PolicyListParams struct {
	Jurisdiction string
	Industry     string
	Status       string
	CategoryID   *int64
	StartDate    *time.Time
	EndDate      *time.Time
	Page         query.Page
}

// SummaryParams are the optional filters for the analytics summary.
type SummaryParams struct {
	Jurisdiction string
	StartDate    *time.Time
	EndDate      *time.Time
}

// PolicyService provides operations over policies, categories, and change
// history, plus the in-memory analytics summary.
type PolicyService interface {
	ListPolicies(ctx context.Context, params PolicyListParams) ([]*models.Policy, error)
	GetPolicy(ctx context.Context, id int64) (*models.Policy, error)
	CreatePolicy(ctx context.Context, policy *models.Policy) error
	UpdatePolicy(ctx context.Context, policy *models.Policy) error
	DeletePolicy(ctx context.Context, id int64) error
	GetChanges(ctx context.Context, policyID int64) ([]*models.PolicyChange, error)
	GetCategories(ctx context.Context) ([]*models.PolicyCategory, error)
	Summary(ctx context.Context, params SummaryParams) (*analytics.Summary, error)
	Search(ctx context.Context, term string, page query.Page) ([]*models.Policy, error)
	Recent(ctx context.Context, days, limit int) ([]*models.Policy, error)
	HighRisk(ctx context.Context, limit int) ([]*models.Policy, error)
}

type policyService struct {
	repo     repositories.PolicyRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewPolicyService creates a new PolicyService. The cache client may be
// nil, in which case summaries are recomputed on every call.
func NewPolicyService(repo repositories.PolicyRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) PolicyService {
	return &policyService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

var _ PolicyService = (*policyService)(nil)

func (s *policyService) ListPolicies(ctx context.Context, params PolicyListParams) ([]*models.Policy, error) {
	if err := params.Page.Validate(0); err != nil {
		return nil, err
	}
	if params.Status != "" && !models.PolicyStatus(params.Status).Valid() {
		return nil, fmt.Errorf("%w: unknown policy status %q", apperrors.ErrValidation, params.Status)
	}

	spec := &query.Spec{Page: params.Page}
	if params.Jurisdiction != "" {
		spec.Eq("jurisdiction", params.Jurisdiction)
	}
	if params.Industry != "" {
		spec.ContainsTag("affected_industries", params.Industry)
	}
	if params.Status != "" {
		spec.Eq("status", params.Status)
	}
	if params.CategoryID != nil {
		spec.Eq("category_id", *params.CategoryID)
	}
	if params.StartDate != nil {
		spec.Gte("proposed_date", *params.StartDate)
	}
	if params.EndDate != nil {
		spec.Lte("proposed_date", *params.EndDate)
	}

	return s.repo.List(ctx, spec)
}

func (s *policyService) GetPolicy(ctx context.Context, id int64) (*models.Policy, error) {
	return s.repo.Get(ctx, id)
}

func (s *policyService) CreatePolicy(ctx context.Context, policy *models.Policy) error {
	if policy.Status == "" {
		policy.Status = models.PolicyStatusDraft
	}
	if err := validatePolicy(policy); err != nil {
		return err
	}

	// Server assigns the identifier; a client-supplied one is discarded.
	policy.ID = 0

	return s.repo.Create(ctx, policy)
}

func (s *policyService) UpdatePolicy(ctx context.Context, policy *models.Policy) error {
	if err := validatePolicy(policy); err != nil {
		return err
	}
	return s.repo.Update(ctx, policy)
}

func (s *policyService) DeletePolicy(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSummaries(ctx)
	return nil
}

func (s *policyService) GetChanges(ctx context.Context, policyID int64) ([]*models.PolicyChange, error) {
	return s.repo.Changes(ctx, policyID)
}

func (s *policyService) GetCategories(ctx context.Context) ([]*models.PolicyCategory, error) {
	return s.repo.Categories(ctx)
}

// Summary fetches the filtered policy set and reduces it in memory. The
// computed summary is cached under a key derived from the filter.
func (s *policyService) Summary(ctx context.Context, params SummaryParams) (*analytics.Summary, error) {
	key := summaryCacheKey(params)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var summary analytics.Summary
			if err := json.Unmarshal(cached, &summary); err == nil {
				return &summary, nil
			}
			s.logger.Warn("Discarding unreadable cached summary", zap.String("key", key))
		} else if err != redis.Nil {
			s.logger.Warn("Summary cache read failed", zap.Error(err))
		}
	}

	spec := &query.Spec{}
	if params.Jurisdiction != "" {
		spec.Eq("jurisdiction", params.Jurisdiction)
	}
	if params.StartDate != nil {
		spec.Gte("proposed_date", *params.StartDate)
	}
	if params.EndDate != nil {
		spec.Lte("proposed_date", *params.EndDate)
	}

	policies, err := s.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}

	summary := analytics.Summarize(policies)
	summary.AnalysisPeriod = analytics.Period{
		StartDate: formatDate(params.StartDate),
		EndDate:   formatDate(params.EndDate),
	}

	if s.cache != nil {
		encoded, err := json.Marshal(summary)
		if err == nil {
			if err := s.cache.Set(ctx, key, encoded, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("Summary cache write failed", zap.Error(err))
			}
		}
	}

	return summary, nil
}

func (s *policyService) Search(ctx context.Context, term string, page query.Page) ([]*models.Policy, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", apperrors.ErrValidation)
	}
	if err := page.Validate(0); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, term, page)
}

func (s *policyService) Recent(ctx context.Context, days, limit int) ([]*models.Policy, error) {
	if days < 1 || days > RecentMaxDays {
		return nil, fmt.Errorf("%w: days must be within 1..%d, got %d", apperrors.ErrValidation, RecentMaxDays, days)
	}
	if err := (query.Page{Skip: 0, Limit: limit}).Validate(RecentMaxLimit); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return s.repo.Recent(ctx, cutoff, limit)
}

func (s *policyService) HighRisk(ctx context.Context, limit int) ([]*models.Policy, error) {
	if err := (query.Page{Skip: 0, Limit: limit}).Validate(HighRiskMaxLimit); err != nil {
		return nil, err
	}
	return s.repo.HighRisk(ctx, limit)
}

// invalidateSummaries drops all cached summaries after a mutation.
func (s *policyService) invalidateSummaries(ctx context.Context) {
	if s.cache == nil {
		return
	}

	iter := s.cache.Scan(ctx, 0, summaryKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.cache.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn("Failed to drop cached summary", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("Summary cache scan failed", zap.Error(err))
	}
}

const summaryKeyPrefix = "policyradar:summary:"

func summaryCacheKey(params SummaryParams) string {
	return fmt.Sprintf("%s%s:%s:%s",
		summaryKeyPrefix,
		params.Jurisdiction,
		derefDate(params.StartDate),
		derefDate(params.EndDate),
	)
}

func derefDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func validatePolicy(policy *models.Policy) error {
	if strings.TrimSpace(policy.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(policy.PolicyNumber) == "" {
		return fmt.Errorf("%w: policy_number is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(policy.Jurisdiction) == "" {
		return fmt.Errorf("%w: jurisdiction is required", apperrors.ErrValidation)
	}
	if !policy.PolicyType.Valid() {
		return fmt.Errorf("%w: unknown policy type %q", apperrors.ErrValidation, policy.PolicyType)
	}
	if !policy.Status.Valid() {
		return fmt.Errorf("%w: unknown policy status %q", apperrors.ErrValidation, policy.Status)
	}
	if policy.ImpactConfidence != nil && (*policy.ImpactConfidence < 0 || *policy.ImpactConfidence > 1) {
		return fmt.Errorf("%w: impact_confidence must be within 0..1", apperrors.ErrValidation)
	}
	return nil
}
