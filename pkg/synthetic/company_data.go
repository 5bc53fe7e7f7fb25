package synthetic

import (
	"fmt"
	"strings"

	"github.com/policyradar/policyradar-engine/pkg/models"
)

var companyNameStems = []string{
	"GlobalTech Solutions", "MegaBank International", "GreenEnergy Corp", "HealthCare Plus",
	"Manufacturing Dynamics", "Digital Innovations", "Financial Services Group", "Energy Solutions",
	"Pharmaceutical Research", "Technology Systems", "Industrial Manufacturing", "Consumer Goods Co",
	"Telecommunications Network", "Transportation Logistics", "Real Estate Holdings", "Utilities Corp",
	"Materials Processing", "Aerospace Defense", "Biotechnology Research", "Automotive Systems",
}

// Companies generates n companies with sequential ticker symbols.
func (g *Generator) Companies(n int) []*models.Company {
	companies := make([]*models.Company, 0, n)
	for i := 0; i < n; i++ {
		industry := g.pick(industries)
		country := g.pick(jurisdictions)

		company := &models.Company{
			Name:                fmt.Sprintf("%s %d", g.pick(companyNameStems), i+1),
			TickerSymbol:        strPtr(fmt.Sprintf("TICK%03d", i+1)),
			Industry:            industry,
			HeadquartersCountry: country,

			MarketCap: floatPtr(g.uniform(1000, 50000)),
			Revenue:   floatPtr(g.uniform(500, 25000)),
			Employees: intPtr(int64(g.intBetween(1000, 100000))),

			PrimaryMarkets:          []string{country, g.pick(jurisdictions)},
			RegulatoryJurisdictions: []string{country, g.pick(jurisdictions)},
		}
		company.ID = int64(i + 1)

		// About 30% of companies carry a Fortune 500 rank.
		if g.chance(0.3) {
			company.Fortune500Rank = intPtr(int64(g.intBetween(1, 500)))
		}

		companies = append(companies, company)
	}
	return companies
}

// CompanyProfiles generates one profile per company.
func (g *Generator) CompanyProfiles(companies []*models.Company) []*models.CompanyProfile {
	esgRatings := []string{"A", "B", "C", "D"}
	riskTolerances := []string{"low", "medium", "high"}

	profiles := make([]*models.CompanyProfile, 0, len(companies))
	for _, company := range companies {
		label := strings.ReplaceAll(company.Industry, "_", " ")
		website := "https://www." + strings.ToLower(strings.ReplaceAll(company.Name, " ", "")) + ".com"

		profiles = append(profiles, &models.CompanyProfile{
			CompanyID:        company.ID,
			Description:      strPtr("Leading " + label + " company"),
			MissionStatement: strPtr("To provide innovative solutions in " + label),

			CEO:            strPtr(fmt.Sprintf("CEO %d", company.ID)),
			CFO:            strPtr(fmt.Sprintf("CFO %d", company.ID)),
			GeneralCounsel: strPtr(fmt.Sprintf("GC %d", company.ID)),

			Website: strPtr(website),

			ESGRating:       strPtr(g.pick(esgRatings)),
			CarbonFootprint: floatPtr(g.uniform(1000, 50000)),

			RiskTolerance:       strPtr(g.pick(riskTolerances)),
			PoliticalExposure:   floatPtr(g.uniform(0.1, 0.9)),
			RegulatoryRiskScore: floatPtr(g.uniform(0.1, 0.9)),
		})
	}
	return profiles
}

// FinancialMetrics generates a quarterly series per company over the
// configured date range. Derived ratios stay internally consistent with
// the sampled base figures.
func (g *Generator) FinancialMetrics(companies []*models.Company) []*models.FinancialMetrics {
	var metrics []*models.FinancialMetrics
	for _, company := range companies {
		baseRevenue := 1000.0
		if company.Revenue != nil {
			baseRevenue = *company.Revenue
		}
		baseMarketCap := 10000.0
		if company.MarketCap != nil {
			baseMarketCap = *company.MarketCap
		}

		for date := g.cfg.StartDate; !date.After(g.cfg.EndDate); date = date.AddDate(0, 0, 90) {
			revenue := baseRevenue * (1 + g.rng.NormFloat64()*0.05)
			netIncome := revenue * g.uniform(0.05, 0.25)
			operatingIncome := netIncome * g.uniform(1.1, 1.5)
			ebitda := operatingIncome * g.uniform(1.05, 1.2)

			totalAssets := revenue * g.uniform(1.5, 3.0)
			totalLiabilities := totalAssets * g.uniform(0.3, 0.7)
			equity := totalAssets - totalLiabilities

			debtToEquity := 0.0
			if equity > 0 {
				debtToEquity = totalLiabilities / equity
			}

			metrics = append(metrics, &models.FinancialMetrics{
				CompanyID: company.ID,
				Date:      date,

				TotalRevenue:  floatPtr(revenue),
				RevenueGrowth: floatPtr(g.uniform(-0.1, 0.2)),

				NetIncome:       floatPtr(netIncome),
				OperatingIncome: floatPtr(operatingIncome),
				EBITDA:          floatPtr(ebitda),
				ProfitMargin:    floatPtr(netIncome / revenue),

				TotalAssets:        floatPtr(totalAssets),
				TotalLiabilities:   floatPtr(totalLiabilities),
				ShareholdersEquity: floatPtr(equity),
				DebtToEquity:       floatPtr(debtToEquity),

				OperatingCashFlow: floatPtr(operatingIncome * g.uniform(0.8, 1.2)),
				FreeCashFlow:      floatPtr(operatingIncome * g.uniform(0.6, 1.0)),

				MarketCap: floatPtr(baseMarketCap * (1 + g.rng.NormFloat64()*0.1)),
				PERatio:   floatPtr(g.uniform(10, 30)),

				EffectiveTaxRate: floatPtr(g.uniform(0.15, 0.35)),
			})
		}
	}
	return metrics
}
