package synthetic

import (
	"fmt"

	"github.com/policyradar/policyradar-engine/pkg/models"
)

// ImpactAssessments generates assessments linking each policy to up to
// five companies in its affected industries. Policies with no matching
// companies yield no assessments.
func (g *Generator) ImpactAssessments(policies []*models.Policy, companies []*models.Company) []*models.ImpactAssessment {
	directions := []string{"POSITIVE", "NEGATIVE", "NEUTRAL", "MIXED"}
	riskLevels := []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}
	scenarios := []string{"baseline", "optimistic", "pessimistic"}

	byIndustry := make(map[string][]*models.Company)
	for _, company := range companies {
		byIndustry[company.Industry] = append(byIndustry[company.Industry], company)
	}

	var assessments []*models.ImpactAssessment
	for _, policy := range policies {
		var affected []*models.Company
		for _, industry := range policy.AffectedIndustries {
			affected = append(affected, byIndustry[industry]...)
		}
		if len(affected) > 5 {
			affected = affected[:5]
		}

		for _, company := range affected {
			assessmentDate := g.randomDate()
			direction := models.ImpactDirection(g.pick(directions))
			riskLevel := models.RiskLevel(g.pick(riskLevels))

			assessment := &models.ImpactAssessment{
				PolicyID:  policy.ID,
				CompanyID: company.ID,

				AssessmentDate:   assessmentDate,
				AssessmentPeriod: strPtr(fmt.Sprintf("%d-%d", assessmentDate.Year(), assessmentDate.Year()+1)),
				Scenario:         strPtr(g.pick(scenarios)),

				OverallImpact:   floatPtr(g.uniform(-200, 200)),
				ImpactDirection: &direction,
				ConfidenceLevel: floatPtr(g.uniform(0.6, 0.9)),

				RevenueImpact: floatPtr(g.uniform(-100, 100)),
				CostImpact:    floatPtr(g.uniform(-50, 50)),
				CapitalImpact: floatPtr(g.uniform(-30, 30)),
				TaxImpact:     floatPtr(g.uniform(-20, 20)),

				RiskLevel: &riskLevel,
				RiskScore: floatPtr(g.uniform(0.1, 0.9)),

				ImplementationDate: timePtr(assessmentDate.AddDate(0, 0, g.intBetween(30, 365))),
				ComplianceDeadline: timePtr(assessmentDate.AddDate(0, 0, g.intBetween(60, 730))),

				MitigationCost: floatPtr(g.uniform(1, 20)),
			}
			assessment.ID = int64(len(assessments) + 1)
			assessments = append(assessments, assessment)
		}
	}
	return assessments
}

var impactMetricNames = []string{
	"Revenue Impact", "Cost Impact", "Capital Requirements", "Tax Impact",
	"Market Share", "Customer Satisfaction", "Employee Productivity",
	"Supply Chain Efficiency", "Regulatory Compliance", "Innovation Pipeline",
}

// ImpactMetrics generates three to five metrics per assessment.
func (g *Generator) ImpactMetrics(assessments []*models.ImpactAssessment) []*models.ImpactMetric {
	categories := []string{"financial", "operational", "strategic"}

	var metrics []*models.ImpactMetric
	for _, assessment := range assessments {
		for _, name := range g.pickN(impactMetricNames, g.intBetween(3, 6)) {
			baseline := g.uniform(100, 1000)
			projected := baseline * (1 + g.uniform(-0.3, 0.3))
			change := projected - baseline

			unit := "percentage"
			if name == "Revenue Impact" || name == "Cost Impact" || name == "Tax Impact" {
				unit = "USD millions"
			}

			metrics = append(metrics, &models.ImpactMetric{
				AssessmentID: assessment.ID,

				MetricName:     name,
				MetricCategory: strPtr(g.pick(categories)),
				MetricUnit:     strPtr(unit),

				BaselineValue:    floatPtr(baseline),
				ProjectedValue:   floatPtr(projected),
				ChangeAmount:     floatPtr(change),
				ChangePercentage: floatPtr(change / baseline * 100),

				TimePeriod: strPtr(fmt.Sprintf("Q%d %d", g.intBetween(1, 5), assessment.AssessmentDate.Year())),
			})
		}
	}
	return metrics
}

var riskFactors = []string{
	"Policy Implementation Delay", "Compliance Cost Overrun", "Market Reaction",
	"Supply Chain Disruption", "Regulatory Enforcement", "Competitive Response",
	"Technology Integration", "Employee Resistance", "Customer Backlash",
	"Legal Challenges", "Political Opposition", "Economic Downturn",
}

// RiskScores generates two to four scored risk factors per assessment.
// The risk level is derived from the probability x severity product.
func (g *Generator) RiskScores(assessments []*models.ImpactAssessment) []*models.RiskScore {
	categories := []string{"regulatory", "operational", "financial", "strategic", "reputational"}

	var scores []*models.RiskScore
	for _, assessment := range assessments {
		for _, category := range g.pickN(categories, g.intBetween(2, 5)) {
			probability := g.uniform(0.1, 0.9)
			severity := g.uniform(0.1, 0.9)
			overall := probability * severity
			level := DeriveRiskLevel(overall)

			scores = append(scores, &models.RiskScore{
				AssessmentID: assessment.ID,

				RiskCategory:    category,
				RiskFactor:      g.pick(riskFactors),
				RiskDescription: strPtr("Risk related to " + category + " in policy implementation"),

				ProbabilityScore: floatPtr(probability),
				SeverityScore:    floatPtr(severity),
				OverallRiskScore: floatPtr(overall),
				RiskLevel:        &level,

				ResidualRiskScore: floatPtr(overall * g.uniform(0.3, 0.7)),
			})
		}
	}
	return scores
}

// DeriveRiskLevel maps an overall probability x severity score onto the
// ordinal risk scale.
func DeriveRiskLevel(overall float64) models.RiskLevel {
	switch {
	case overall < 0.25:
		return models.RiskLow
	case overall < 0.5:
		return models.RiskMedium
	case overall < 0.75:
		return models.RiskHigh
	default:
		return models.RiskCritical
	}
}
