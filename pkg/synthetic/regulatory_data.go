package synthetic

import (
	"fmt"
	"strings"
	"time"

	"github.com/policyradar/policyradar-engine/pkg/models"
)

var regulatorSeed = map[string][]struct {
	name      string
	shortName string
	regType   models.RegulatoryType
}{
	"US": {
		{"Federal Reserve System", "Fed", models.RegulatoryTypeCentralBank},
		{"Securities and Exchange Commission", "SEC", models.RegulatoryTypeSecurities},
		{"Office of the Comptroller of the Currency", "OCC", models.RegulatoryTypeOther},
		{"Environmental Protection Agency", "EPA", models.RegulatoryTypeEnvironmental},
		{"Internal Revenue Service", "IRS", models.RegulatoryTypeTax},
	},
	"EU": {
		{"European Central Bank", "ECB", models.RegulatoryTypeCentralBank},
		{"European Securities and Markets Authority", "ESMA", models.RegulatoryTypeSecurities},
		{"European Banking Authority", "EBA", models.RegulatoryTypeOther},
		{"European Environment Agency", "EEA", models.RegulatoryTypeEnvironmental},
	},
	"UK": {
		{"Bank of England", "BoE", models.RegulatoryTypeCentralBank},
		{"Financial Conduct Authority", "FCA", models.RegulatoryTypeSecurities},
		{"Prudential Regulation Authority", "PRA", models.RegulatoryTypeOther},
	},
	"JP": {
		{"Bank of Japan", "BoJ", models.RegulatoryTypeCentralBank},
		{"Financial Services Agency", "FSA", models.RegulatoryTypeSecurities},
	},
	"CN": {
		{"People's Bank of China", "PBoC", models.RegulatoryTypeCentralBank},
		{"China Securities Regulatory Commission", "CSRC", models.RegulatoryTypeSecurities},
	},
}

func regionFor(country string) string {
	switch country {
	case "JP", "CN":
		return "Asia"
	case "EU", "UK":
		return "Europe"
	default:
		return "Americas"
	}
}

// RegulatoryBodies generates the fixed regulator reference set with
// sampled activity figures. Country iteration order is fixed so the
// output is deterministic for a given seed.
func (g *Generator) RegulatoryBodies() []*models.RegulatoryBody {
	countries := []string{"US", "EU", "UK", "JP", "CN"}

	var bodies []*models.RegulatoryBody
	for _, country := range countries {
		for _, seed := range regulatorSeed[country] {
			body := &models.RegulatoryBody{
				Name:           seed.name,
				ShortName:      strPtr(seed.shortName),
				RegulatoryType: seed.regType,

				Country: country,
				Region:  strPtr(regionFor(country)),
				Website: strPtr("https://www." + strings.ToLower(seed.shortName) + ".gov"),

				AnnualBudget: floatPtr(g.uniform(100, 2000)),
				StaffCount:   intPtr(int64(g.intBetween(500, 10000))),

				PoliciesIssued:     intPtr(int64(g.intBetween(50, 500))),
				EnforcementActions: intPtr(int64(g.intBetween(10, 200))),
				LastActivityDate:   timePtr(time.Now().UTC().AddDate(0, 0, -g.intBetween(1, 365))),
			}
			body.ID = int64(len(bodies) + 1)
			bodies = append(bodies, body)
		}
	}
	return bodies
}

var requirementSeed = []struct {
	name        string
	description string
	industries  []string
	frequency   string
}{
	{
		"Capital Adequacy Requirements",
		"Minimum capital requirements for financial institutions",
		[]string{"financial_services"},
		"quarterly",
	},
	{
		"Environmental Impact Assessment",
		"Environmental impact assessment for major projects",
		[]string{"energy", "manufacturing"},
		"annual",
	},
	{
		"Data Privacy Compliance",
		"Data protection and privacy requirements",
		[]string{"technology", "healthcare", "financial_services"},
		"annual",
	},
	{
		"Tax Reporting Requirements",
		"Comprehensive tax reporting and documentation",
		[]string{"all"},
		"quarterly",
	},
}

// ComplianceRequirements generates every requirement template for every
// regulatory body.
func (g *Generator) ComplianceRequirements(bodies []*models.RegulatoryBody) []*models.ComplianceRequirement {
	now := time.Now().UTC()

	var requirements []*models.ComplianceRequirement
	for _, body := range bodies {
		shortName := "REG"
		if body.ShortName != nil {
			shortName = *body.ShortName
		}

		for _, seed := range requirementSeed {
			requirements = append(requirements, &models.ComplianceRequirement{
				RegulatoryBodyID: body.ID,

				RequirementName: seed.name,
				RequirementCode: strPtr(fmt.Sprintf("REQ_%s_%03d", shortName, body.ID)),
				Description:     strPtr(seed.description),

				ApplicableIndustries: seed.industries,

				EffectiveDate:      timePtr(now.AddDate(0, 0, -g.intBetween(100, 1000))),
				ComplianceDeadline: timePtr(now.AddDate(0, 0, g.intBetween(30, 365))),
				ReviewFrequency:    strPtr(seed.frequency),

				EstimatedComplianceCost: floatPtr(g.uniform(1, 50)),
				ImplementationTimeline:  intPtr(int64(g.intBetween(3, 24))),
			})
		}
	}
	return requirements
}
