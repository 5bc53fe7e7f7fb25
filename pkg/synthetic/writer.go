package synthetic

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Writer persists datasets to per-family JSON and CSV files.
type Writer struct {
	outputDir string
	logger    *zap.Logger
}

// NewWriter creates a Writer rooted at outputDir, creating the directory
// if needed.
func NewWriter(outputDir string, logger *zap.Logger) (*Writer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{outputDir: outputDir, logger: logger}, nil
}

// GenerationSummary describes one completed generation run.
type GenerationSummary struct {
	GenerationDate time.Time      `json:"generation_date"`
	DataSummary    map[string]int `json:"data_summary"`
	TotalRecords   int            `json:"total_records"`
}

// WriteJSON writes one <family>.json file per record family.
func (w *Writer) WriteJSON(d *Dataset) error {
	families, err := familyRecords(d)
	if err != nil {
		return err
	}

	for _, f := range d.Families() {
		path := filepath.Join(w.outputDir, f.Name+".json")

		encoded, err := json.MarshalIndent(families[f.Name], "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", f.Name, err)
		}
		if err := os.WriteFile(path, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		w.logger.Info("Saved records", zap.String("family", f.Name),
			zap.Int("count", f.Count), zap.String("path", path))
	}
	return nil
}

// WriteCSV writes one <family>.csv file per record family. Columns are the
// sorted union of the family's JSON keys; nested values are JSON-encoded
// in place.
func (w *Writer) WriteCSV(d *Dataset) error {
	families, err := familyRecords(d)
	if err != nil {
		return err
	}

	for _, f := range d.Families() {
		path := filepath.Join(w.outputDir, f.Name+".csv")
		if err := writeCSVFile(path, families[f.Name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// WriteSummary writes generation_summary.json describing the run.
func (w *Writer) WriteSummary(d *Dataset) error {
	summary := GenerationSummary{
		GenerationDate: time.Now().UTC(),
		DataSummary:    make(map[string]int),
		TotalRecords:   d.TotalRecords(),
	}
	for _, f := range d.Families() {
		summary.DataSummary[f.Name] = f.Count
	}

	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	path := filepath.Join(w.outputDir, "generation_summary.json")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// familyRecords flattens the dataset into generic per-family record maps
// through a JSON round trip, so the writers need no per-model code.
func familyRecords(d *Dataset) (map[string][]map[string]any, error) {
	encoded, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten dataset: %w", err)
	}

	var families map[string][]map[string]any
	if err := json.Unmarshal(encoded, &families); err != nil {
		return nil, fmt.Errorf("failed to flatten dataset: %w", err)
	}
	return families, nil
}

func writeCSVFile(path string, records []map[string]any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	defer cw.Flush()

	if len(records) == 0 {
		return cw.Error()
	}

	keySet := make(map[string]bool)
	for _, record := range records {
		for key := range record {
			keySet[key] = true
		}
	}
	columns := make([]string, 0, len(keySet))
	for key := range keySet {
		columns = append(columns, key)
	}
	sort.Strings(columns)

	if err := cw.Write(columns); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for i, column := range columns {
			row[i] = formatCSVValue(record[column])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCSVValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
