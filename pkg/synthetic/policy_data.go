package synthetic

import (
	"fmt"
	"strings"

	"github.com/policyradar/policyradar-engine/pkg/models"
)

var policyTitleTemplates = []string{
	"Enhanced Capital Requirements for %s",
	"Environmental Compliance Standards for %s",
	"Data Protection Regulations for %s",
	"Trade Tariff Adjustments for %s",
	"Tax Incentive Program for %s",
	"Workplace Safety Standards for %s",
	"Supply Chain Transparency Requirements for %s",
	"Digital Transformation Mandates for %s",
	"Sustainability Reporting Requirements for %s",
	"Cybersecurity Standards for %s",
}

var categorySeed = []struct {
	name        string
	description string
}{
	{"Trade Policy", "International trade regulations and agreements"},
	{"Financial Regulation", "Banking and financial services regulations"},
	{"Environmental Policy", "Environmental protection and climate regulations"},
	{"Tax Policy", "Corporate and individual tax regulations"},
	{"Labor Law", "Employment and workplace regulations"},
	{"Technology Regulation", "Digital and technology sector regulations"},
	{"Healthcare Policy", "Healthcare and pharmaceutical regulations"},
	{"Energy Policy", "Energy sector regulations and incentives"},
	{"Data Privacy", "Data protection and privacy regulations"},
	{"Antitrust", "Competition and antitrust regulations"},
}

// Categories generates the fixed policy category reference set.
func (g *Generator) Categories() []*models.PolicyCategory {
	categories := make([]*models.PolicyCategory, 0, len(categorySeed))
	for i, seed := range categorySeed {
		category := &models.PolicyCategory{
			Name:        seed.name,
			Description: strPtr(seed.description),
		}
		category.ID = int64(i + 1)
		categories = append(categories, category)
	}
	return categories
}

// Policies generates n policies spread across jurisdictions, industries,
// and categories.
func (g *Generator) Policies(n int, categories []*models.PolicyCategory) []*models.Policy {
	statuses := []string{"DRAFT", "PROPOSED", "ENACTED", "IMPLEMENTED"}
	policyTypes := []string{"LEGISLATION", "REGULATION", "EXECUTIVE_ORDER", "GUIDANCE"}

	policies := make([]*models.Policy, 0, n)
	for i := 0; i < n; i++ {
		jurisdiction := g.pick(jurisdictions)
		industry := g.pick(industries)
		category := categories[g.rng.Intn(len(categories))]

		proposedDate := g.randomDate()
		policy := &models.Policy{
			Title:        fmt.Sprintf(g.pick(policyTitleTemplates), industryLabel(industry)),
			Description:  strPtr(fmt.Sprintf("Comprehensive regulatory framework for %s sector", industry)),
			PolicyNumber: fmt.Sprintf("%s-%s-%04d", jurisdiction, categoryAbbrev(category.Name), i+1),
			Jurisdiction: jurisdiction,
			PolicyType:   models.PolicyType(g.pick(policyTypes)),
			Status:       models.PolicyStatus(g.pick(statuses)),

			ProposedDate:   timePtr(proposedDate),
			RegulatoryBody: strPtr(jurisdiction + " Regulatory Authority"),

			EstimatedImpact:    floatPtr(g.uniform(-500, 500)),
			ImpactConfidence:   floatPtr(g.uniform(0.5, 0.9)),
			AffectedIndustries: []string{industry},
			CategoryID:         intPtr(category.ID),
		}
		policy.ID = int64(i + 1)

		// Roughly 70% of policies progress past the proposal stage.
		if g.chance(0.7) {
			enacted := proposedDate.AddDate(0, 0, g.intBetween(30, 365))
			policy.EnactedDate = timePtr(enacted)
			policy.EffectiveDate = timePtr(enacted.AddDate(0, 0, g.intBetween(0, 180)))
		}

		policies = append(policies, policy)
	}
	return policies
}

// PolicyChanges generates one to three change records per policy.
func (g *Generator) PolicyChanges(policies []*models.Policy) []*models.PolicyChange {
	changeTypes := []string{"amendment", "repeal", "extension", "modification", "clarification"}
	directions := []string{"positive", "negative", "neutral"}

	var changes []*models.PolicyChange
	for _, policy := range policies {
		numChanges := g.intBetween(1, 4)
		for i := 0; i < numChanges; i++ {
			changeDate := g.randomDate()
			changes = append(changes, &models.PolicyChange{
				PolicyID:          policy.ID,
				ChangeType:        g.pick(changeTypes),
				ChangeDate:        changeDate,
				ChangeDescription: strPtr("Modification to " + policy.Title),
				ImpactMagnitude:   floatPtr(g.uniform(-1, 1)),
				ImpactDirection:   strPtr(g.pick(directions)),

				SourceDocument:     strPtr(fmt.Sprintf("Amendment-%s-%d", policy.PolicyNumber, i+1)),
				LegislativeSession: strPtr(fmt.Sprintf("Session-%d", changeDate.Year())),
			})
		}
	}
	return changes
}

func industryLabel(industry string) string {
	words := strings.Split(industry, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func categoryAbbrev(name string) string {
	compact := strings.ReplaceAll(name, " ", "")
	if len(compact) > 3 {
		compact = compact[:3]
	}
	return strings.ToUpper(compact)
}
