// generate-data produces synthetic PolicyRadar datasets as JSON and/or CSV
// files, plus a generation summary.
//
// Usage: go run ./scripts/generate-data [flags]
//
// Flags:
//
//	-policies   Number of policies to generate (default: 1000)
//	-companies  Number of companies to generate (default: 500)
//	-market     Number of market data records to generate (default: 10000)
//	-seed       Random seed for reproducible output (default: 42)
//	-output     Output directory (default: ./data)
//	-format     Output format: json, csv, or both (default: both)
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/synthetic"
)

func main() {
	defaults := synthetic.DefaultConfig()

	policies := flag.Int("policies", defaults.NumPolicies, "Number of policies to generate")
	companies := flag.Int("companies", defaults.NumCompanies, "Number of companies to generate")
	market := flag.Int("market", defaults.NumMarketRecords, "Number of market data records to generate")
	seed := flag.Int64("seed", 42, "Random seed for reproducible output")
	output := flag.String("output", "./data", "Output directory")
	format := flag.String("format", "both", "Output format: json, csv, or both")
	flag.Parse()

	if *format != "json" && *format != "csv" && *format != "both" {
		fmt.Fprintf(os.Stderr, "Invalid format %q: must be json, csv, or both\n", *format)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := defaults
	cfg.NumPolicies = *policies
	cfg.NumCompanies = *companies
	cfg.NumMarketRecords = *market

	start := time.Now()
	dataset := synthetic.New(cfg, *seed, logger).GenerateAll()

	writer, err := synthetic.NewWriter(*output, logger)
	if err != nil {
		logger.Fatal("Failed to create output directory", zap.Error(err))
	}

	if *format == "json" || *format == "both" {
		if err := writer.WriteJSON(dataset); err != nil {
			logger.Fatal("Failed to write JSON output", zap.Error(err))
		}
	}
	if *format == "csv" || *format == "both" {
		if err := writer.WriteCSV(dataset); err != nil {
			logger.Fatal("Failed to write CSV output", zap.Error(err))
		}
	}
	if err := writer.WriteSummary(dataset); err != nil {
		logger.Fatal("Failed to write generation summary", zap.Error(err))
	}

	logger.Info("Generation complete",
		zap.Int("total_records", dataset.TotalRecords()),
		zap.String("output", *output),
		zap.Duration("elapsed", time.Since(start)))
}
