package synthetic

import (
	"fmt"
	"math"
	"time"

	"github.com/policyradar/policyradar-engine/pkg/models"
)

var equitySymbols = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "JPM", "BAC", "WMT", "JNJ", "PG"}

var nasdaqListed = map[string]bool{
	"AAPL": true, "GOOGL": true, "MSFT": true, "AMZN": true, "TSLA": true,
}

// MarketData generates n daily equity bars across the symbol universe.
func (g *Generator) MarketData(n int) []*models.MarketData {
	data := make([]*models.MarketData, 0, n)
	for i := 0; i < n; i++ {
		symbol := g.pick(equitySymbols)
		exchange := "NYSE"
		if nasdaqListed[symbol] {
			exchange = "NASDAQ"
		}

		basePrice := g.uniform(50, 500)
		dailyReturn := g.rng.NormFloat64() * 0.02

		bar := &models.MarketData{
			Symbol:    symbol,
			AssetType: "stock",
			Exchange:  strPtr(exchange),
			Date:      g.randomDate(),

			OpenPrice:  floatPtr(basePrice),
			HighPrice:  floatPtr(basePrice * (1 + math.Abs(dailyReturn))),
			LowPrice:   floatPtr(basePrice * (1 - math.Abs(dailyReturn))),
			ClosePrice: floatPtr(basePrice * (1 + dailyReturn)),

			Volume:      floatPtr(float64(g.intBetween(1000000, 10000000))),
			DailyReturn: floatPtr(dailyReturn),
			MarketCap:   floatPtr(g.uniform(1000, 50000)),
		}
		bar.ID = int64(i + 1)
		data = append(data, bar)
	}
	return data
}

var indicatorSeed = []struct {
	name     string
	code     string
	category string
	unit     string
}{
	{"GDP Growth Rate", "GDP_GROWTH", "GDP", "percentage"},
	{"Inflation Rate", "INFLATION", "inflation", "percentage"},
	{"Unemployment Rate", "UNEMPLOYMENT", "employment", "percentage"},
	{"Interest Rate", "INTEREST_RATE", "monetary", "percentage"},
	{"Consumer Price Index", "CPI", "inflation", "index"},
}

// EconomicIndicators generates quarterly observations for each indicator
// and country over the configured range. Indicator codes carry a country
// and date suffix to stay unique.
func (g *Generator) EconomicIndicators() []*models.EconomicIndicator {
	countries := []string{"US", "EU", "UK", "JP", "CN"}

	var indicators []*models.EconomicIndicator
	for _, country := range countries {
		for _, seed := range indicatorSeed {
			for year := g.cfg.StartDate.Year(); year <= g.cfg.EndDate.Year(); year++ {
				for quarter := 1; quarter <= 4; quarter++ {
					date := time.Date(year, time.Month(quarter*3), 1, 0, 0, 0, 0, time.UTC)
					if date.Before(g.cfg.StartDate) || date.After(g.cfg.EndDate) {
						continue
					}

					value := g.uniform(100, 300)
					if seed.unit == "percentage" {
						value = g.uniform(0, 10)
					}

					indicators = append(indicators, &models.EconomicIndicator{
						IndicatorName: seed.name,
						IndicatorCode: fmt.Sprintf("%s_%s_%dQ%d", seed.code, country, year, quarter),
						Category:      strPtr(seed.category),
						Country:       country,
						Date:          date,
						Frequency:     strPtr("quarterly"),
						Value:         floatPtr(value),
						Unit:          strPtr(seed.unit),
						SourceAgency:  strPtr(country + " Bureau of Statistics"),
					})
				}
			}
		}
	}
	return indicators
}

// TradeFlows generates ten flows per company between distinct countries.
func (g *Generator) TradeFlows(companies []*models.Company) []*models.TradeFlow {
	productCategories := []string{"electronics", "automotive", "pharmaceuticals", "energy", "agriculture", "textiles"}
	transportModes := []string{"sea", "air", "land", "rail"}
	tradeTypes := []string{"import", "export"}

	var flows []*models.TradeFlow
	for i := 0; i < len(companies)*10; i++ {
		company := companies[g.rng.Intn(len(companies))]
		origin := company.HeadquartersCountry

		destination := g.pick(jurisdictions)
		for destination == origin {
			destination = g.pick(jurisdictions)
		}

		flow := &models.TradeFlow{
			TradeID:   fmt.Sprintf("TRADE_%06d", i+1),
			TradeType: g.pick(tradeTypes),

			OriginCountry:      origin,
			DestinationCountry: destination,
			ProductCategory:    strPtr(g.pick(productCategories)),

			Date:     g.randomDate(),
			Quantity: floatPtr(g.uniform(100, 10000)),
			ValueUSD: floatPtr(g.uniform(10000, 1000000)),

			TariffRate: floatPtr(g.uniform(0, 0.25)),
			DutyAmount: floatPtr(g.uniform(0, 50000)),

			TransportMode: strPtr(g.pick(transportModes)),
		}

		if g.chance(0.5) {
			flow.ExporterCompany = strPtr(company.Name)
		}
		if g.chance(0.5) {
			flow.ImporterCompany = strPtr(company.Name)
		}

		flows = append(flows, flow)
	}
	return flows
}
