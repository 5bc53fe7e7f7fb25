// Package synthetic generates deterministic sample datasets covering every
// record family the API serves. A fixed seed reproduces the same dataset.
package synthetic

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/models"
)

// Config controls dataset volume and the covered date range.
type Config struct {
	NumPolicies      int
	NumCompanies     int
	NumMarketRecords int
	StartDate        time.Time
	EndDate          time.Time
}

// DefaultConfig mirrors the volumes used for the reference dataset.
func DefaultConfig() Config {
	return Config{
		NumPolicies:      1000,
		NumCompanies:     500,
		NumMarketRecords: 10000,
		StartDate:        time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Dataset holds one generated record set per family. Identifiers are
// assigned sequentially within the dataset so cross-references line up
// before any database insert.
type Dataset struct {
	PolicyCategories       []*models.PolicyCategory        `json:"policy_categories"`
	Policies               []*models.Policy                `json:"policies"`
	PolicyChanges          []*models.PolicyChange          `json:"policy_changes"`
	Companies              []*models.Company               `json:"companies"`
	CompanyProfiles        []*models.CompanyProfile        `json:"company_profiles"`
	FinancialMetrics       []*models.FinancialMetrics      `json:"financial_metrics"`
	MarketData             []*models.MarketData            `json:"market_data"`
	EconomicIndicators     []*models.EconomicIndicator     `json:"economic_indicators"`
	TradeFlows             []*models.TradeFlow             `json:"trade_flows"`
	RegulatoryBodies       []*models.RegulatoryBody        `json:"regulatory_bodies"`
	ComplianceRequirements []*models.ComplianceRequirement `json:"compliance_requirements"`
	ImpactAssessments      []*models.ImpactAssessment      `json:"impact_assessments"`
	ImpactMetrics          []*models.ImpactMetric          `json:"impact_metrics"`
	RiskScores             []*models.RiskScore             `json:"risk_scores"`
	PredictionModels       []*models.PredictionModel       `json:"prediction_models"`
	PolicyPredictions      []*models.PolicyPrediction      `json:"policy_predictions"`
}

// Families returns the dataset's record families in generation order with
// their record counts.
func (d *Dataset) Families() []Family {
	return []Family{
		{"policy_categories", len(d.PolicyCategories)},
		{"policies", len(d.Policies)},
		{"policy_changes", len(d.PolicyChanges)},
		{"companies", len(d.Companies)},
		{"company_profiles", len(d.CompanyProfiles)},
		{"financial_metrics", len(d.FinancialMetrics)},
		{"market_data", len(d.MarketData)},
		{"economic_indicators", len(d.EconomicIndicators)},
		{"trade_flows", len(d.TradeFlows)},
		{"regulatory_bodies", len(d.RegulatoryBodies)},
		{"compliance_requirements", len(d.ComplianceRequirements)},
		{"impact_assessments", len(d.ImpactAssessments)},
		{"impact_metrics", len(d.ImpactMetrics)},
		{"risk_scores", len(d.RiskScores)},
		{"prediction_models", len(d.PredictionModels)},
		{"policy_predictions", len(d.PolicyPredictions)},
	}
}

// Family is one record family's name and size.
type Family struct {
	Name  string
	Count int
}

// TotalRecords sums the per-family counts.
func (d *Dataset) TotalRecords() int {
	total := 0
	for _, f := range d.Families() {
		total += f.Count
	}
	return total
}

// Generator produces synthetic datasets. Not safe for concurrent use; the
// underlying rand source is unsynchronized.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	logger *zap.Logger
}

// New creates a Generator seeded with the given value.
func New(cfg Config, seed int64, logger *zap.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// GenerateAll produces one complete dataset. Families are generated in
// dependency order so foreign identifiers always refer to earlier records.
func (g *Generator) GenerateAll() *Dataset {
	g.logger.Info("Starting synthetic data generation",
		zap.Int("policies", g.cfg.NumPolicies),
		zap.Int("companies", g.cfg.NumCompanies),
		zap.Int("market_records", g.cfg.NumMarketRecords))

	d := &Dataset{}

	d.PolicyCategories = g.Categories()
	d.Policies = g.Policies(g.cfg.NumPolicies, d.PolicyCategories)
	d.PolicyChanges = g.PolicyChanges(d.Policies)
	d.Companies = g.Companies(g.cfg.NumCompanies)
	d.CompanyProfiles = g.CompanyProfiles(d.Companies)
	d.FinancialMetrics = g.FinancialMetrics(d.Companies)
	d.MarketData = g.MarketData(g.cfg.NumMarketRecords)
	d.EconomicIndicators = g.EconomicIndicators()
	d.TradeFlows = g.TradeFlows(d.Companies)
	d.RegulatoryBodies = g.RegulatoryBodies()
	d.ComplianceRequirements = g.ComplianceRequirements(d.RegulatoryBodies)
	d.ImpactAssessments = g.ImpactAssessments(d.Policies, d.Companies)
	d.ImpactMetrics = g.ImpactMetrics(d.ImpactAssessments)
	d.RiskScores = g.RiskScores(d.ImpactAssessments)
	d.PredictionModels = g.PredictionModels()
	d.PolicyPredictions = g.PolicyPredictions(d.Policies, d.PredictionModels)

	g.logger.Info("Synthetic data generation completed",
		zap.Int("total_records", d.TotalRecords()))

	return d
}

// Shared reference vocabularies. The API's filter parameters draw from the
// same value sets.
var (
	jurisdictions = []string{"US", "EU", "UK", "JP", "CN", "CA", "AU", "IN", "BR", "MX"}
	industries    = []string{"financial_services", "technology", "energy", "healthcare", "manufacturing"}
)

// randomDate returns a uniformly distributed day within the configured
// range.
func (g *Generator) randomDate() time.Time {
	spanDays := int(g.cfg.EndDate.Sub(g.cfg.StartDate).Hours() / 24)
	if spanDays < 1 {
		return g.cfg.StartDate
	}
	return g.cfg.StartDate.AddDate(0, 0, g.rng.Intn(spanDays))
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo)
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

// pickN selects n distinct values, fewer when the pool is smaller.
func (g *Generator) pickN(values []string, n int) []string {
	if n > len(values) {
		n = len(values)
	}
	perm := g.rng.Perm(len(values))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, values[idx])
	}
	return out
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }
