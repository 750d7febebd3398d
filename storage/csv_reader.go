package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"accommodation-recommender/models"
)

// ReadDataset loads every row of the dataset CSV at path. Columns are matched
// by header name, so their order is free and extra columns are ignored.
func ReadDataset(path string) ([]*models.RawListing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DatasetLoadError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := ParseDataset(f)
	if err != nil {
		return nil, &DatasetLoadError{Path: path, Err: err}
	}
	return rows, nil
}

// ParseDataset reads dataset rows from r.
func ParseDataset(r io.Reader) ([]*models.RawListing, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv: empty file")
		}
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		positions[name] = i
	}

	var missing []string
	for _, col := range models.RequiredColumns {
		if _, ok := positions[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv: missing columns: %s", strings.Join(missing, ", "))
	}

	var rows []*models.RawListing
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}

		values := make(map[string]string, len(models.RequiredColumns))
		for _, col := range models.RequiredColumns {
			values[col] = record[positions[col]]
		}
		rows = append(rows, &models.RawListing{Line: line, Values: values})
	}

	if len(rows) == 0 {
		return nil, errors.New("csv: no data rows")
	}
	return rows, nil
}
