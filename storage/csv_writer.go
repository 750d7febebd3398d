package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"accommodation-recommender/models"
)

var _ RecommendationWriter = (*CSVWriter)(nil)

// CSVWriter writes ranked recommendations to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	header := append([]string{"rank", "distance", "id"}, models.FeatureColumns...)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteRecommendations appends one row per recommendation, in rank order.
func (c *CSVWriter) WriteRecommendations(recs []models.Recommendation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range recs {
		l := rec.Listing
		row := []string{
			strconv.Itoa(rec.Rank),
			strconv.FormatFloat(rec.Distance, 'f', 4, 64),
			strconv.FormatInt(l.ID, 10),
		}
		for _, col := range models.FeatureColumns {
			row = append(row, cell(l, col))
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

// cell renders one column of a listing the way the dataset stores it.
func cell(l *models.Listing, col string) string {
	if col == models.ColMonthlyBudget {
		return strconv.FormatFloat(l.MonthlyBudget, 'f', -1, 64)
	}
	for i, name := range models.AmenityColumns {
		if name == col {
			if l.Flags()[i] {
				return "1"
			}
			return "0"
		}
	}
	return l.Category(col)
}
