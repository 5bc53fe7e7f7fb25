// dashboard serves a single-page chart view of the policy landscape.
//
// When the PolicyRadar API is reachable the page renders the live analytics
// summary; otherwise it falls back to a seeded synthetic dataset so the
// dashboard works fully offline. Presentation only, no business rules.
//
// Usage: go run ./scripts/dashboard [flags]
//
// Flags:
//
//	-addr  Listen address (default: :8050)
//	-api   PolicyRadar API base URL (default: http://localhost:8000)
//	-seed  Random seed for the offline fallback dataset (default: 42)
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/analytics"
	"github.com/policyradar/policyradar-engine/pkg/synthetic"
)

const dashboardPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>PolicyRadar Dashboard</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<style>
body { font-family: sans-serif; margin: 2rem; background: #f7f8fa; }
h1 { margin-bottom: 0; }
.source { color: #667; margin-top: 0.25rem; }
.cards { display: flex; gap: 1rem; margin: 1.5rem 0; }
.card { background: white; border-radius: 8px; padding: 1rem 1.5rem; box-shadow: 0 1px 3px rgba(0,0,0,0.12); }
.card .value { font-size: 1.8rem; font-weight: bold; }
.charts { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; }
.chart { background: white; border-radius: 8px; padding: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,0.12); }
</style>
</head>
<body>
<h1>PolicyRadar</h1>
<p class="source">Data source: {{.Source}}</p>
<div class="cards">
  <div class="card"><div class="value">{{.Summary.TotalPolicies}}</div>Total policies</div>
  <div class="card"><div class="value">{{.Summary.EnactedPolicies}}</div>Enacted</div>
  <div class="card"><div class="value">{{.Summary.ProposedPolicies}}</div>Proposed</div>
  <div class="card"><div class="value">{{printf "%.1f" .Summary.AverageImpact}}</div>Avg impact ($M)</div>
</div>
<div class="charts">
  <div class="chart"><canvas id="jurisdictions"></canvas></div>
  <div class="chart"><canvas id="industries"></canvas></div>
</div>
<script>
const summary = {{.SummaryJSON}};
function bar(id, title, breakdown, color) {
  new Chart(document.getElementById(id), {
    type: "bar",
    data: {
      labels: Object.keys(breakdown),
      datasets: [{ label: title, data: Object.values(breakdown), backgroundColor: color }]
    },
    options: { plugins: { legend: { display: false }, title: { display: true, text: title } } }
  });
}
bar("jurisdictions", "Policies by jurisdiction", summary.jurisdiction_breakdown, "#4e79a7");
bar("industries", "Policies by industry", summary.industry_breakdown, "#f28e2b");
</script>
</body>
</html>
`

type pageData struct {
	Source      string
	Summary     *analytics.Summary
	SummaryJSON template.JS
}

type server struct {
	apiBase string
	seed    int64
	client  *http.Client
	tmpl    *template.Template
	logger  *zap.Logger
}

func main() {
	addr := flag.String("addr", ":8050", "Listen address")
	apiBase := flag.String("api", "http://localhost:8000", "PolicyRadar API base URL")
	seed := flag.Int64("seed", 42, "Random seed for the offline fallback dataset")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	s := &server{
		apiBase: *apiBase,
		seed:    *seed,
		client:  &http.Client{Timeout: 3 * time.Second},
		tmpl:    template.Must(template.New("dashboard").Parse(dashboardPage)),
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.renderDashboard)

	logger.Info("Starting dashboard", zap.String("addr", *addr), zap.String("api", *apiBase))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Fatal("Dashboard server failed", zap.Error(err))
	}
}

func (s *server) renderDashboard(w http.ResponseWriter, r *http.Request) {
	summary, source := s.loadSummary()

	raw, err := json.Marshal(summary)
	if err != nil {
		http.Error(w, "failed to encode summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, pageData{
		Source:      source,
		Summary:     summary,
		SummaryJSON: template.JS(raw),
	}); err != nil {
		s.logger.Error("Failed to render dashboard", zap.Error(err))
	}
}

// loadSummary fetches the live analytics summary, falling back to a seeded
// synthetic dataset when the API cannot be reached.
func (s *server) loadSummary() (*analytics.Summary, string) {
	if summary, err := s.fetchSummary(); err == nil {
		return summary, "live API (" + s.apiBase + ")"
	} else {
		s.logger.Warn("API unreachable, using synthetic data", zap.Error(err))
	}

	cfg := synthetic.DefaultConfig()
	cfg.NumPolicies = 200
	cfg.NumCompanies = 50
	cfg.NumMarketRecords = 0

	generator := synthetic.New(cfg, s.seed, zap.NewNop())
	dataset := generator.GenerateAll()
	return analytics.Summarize(dataset.Policies), fmt.Sprintf("synthetic (seed %d)", s.seed)
}

func (s *server) fetchSummary() (*analytics.Summary, error) {
	resp, err := s.client.Get(s.apiBase + "/api/v1/policies/analytics/summary")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from API", resp.StatusCode)
	}

	var envelope struct {
		Success bool               `json:"success"`
		Data    *analytics.Summary `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}
	if !envelope.Success || envelope.Data == nil {
		return nil, fmt.Errorf("API returned no summary data")
	}
	return envelope.Data, nil
}
