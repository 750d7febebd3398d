package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"accommodation-recommender/models"
	"accommodation-recommender/utils"
)

// budgetRegexp captures the first numeric amount, e.g. "R3,500.00 pm" -> 3,500.00
var budgetRegexp = regexp.MustCompile(`-?[\d,]*\.?\d+`)

// Cleaner transforms RawListings into clean, validated Listings.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean parses raw rows and returns the valid ones. Listing IDs are assigned
// by position over the kept rows.
func (c *Cleaner) Clean(raw []*models.RawListing) []*models.Listing {
	result := make([]*models.Listing, 0, len(raw))

	for _, r := range raw {
		listing, err := c.parse(r)
		if err != nil {
			c.logger.Warn("[cleaner] Dropping line %d: %v", r.Line, err)
			continue
		}
		listing.ID = int64(len(result))
		result = append(result, listing)
	}

	c.logger.Info("[cleaner] Cleaned %d -> %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

func (c *Cleaner) parse(r *models.RawListing) (*models.Listing, error) {
	l := &models.Listing{}

	for _, col := range models.CategoricalColumns {
		v := normaliseText(r.Values[col])
		if v == "" {
			return nil, fmt.Errorf("empty %s", col)
		}
		l.SetCategory(col, v)
	}

	budget, err := c.parseBudget(r.Values[models.ColMonthlyBudget])
	if err != nil {
		return nil, err
	}
	l.MonthlyBudget = budget

	for _, col := range models.AmenityColumns {
		on, err := parseFlag(r.Values[col])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", col, err)
		}
		l.Amenities.Set(col, on)
	}

	return l, nil
}

// parseBudget extracts a non-negative monthly amount from a raw cell.
// Examples:
//
//	"4500"         -> 4500
//	"R3,500"       -> 3500
//	"$1,200.50 pm" -> 1200.50
func (c *Cleaner) parseBudget(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	match := budgetRegexp.FindString(cleaned)
	if match == "" {
		return 0, fmt.Errorf("%s: no amount in %q", models.ColMonthlyBudget, raw)
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", models.ColMonthlyBudget, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s: negative amount %v", models.ColMonthlyBudget, v)
	}
	return v, nil
}

// parseFlag accepts the usual spellings of a binary cell.
func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "1.0", "true", "yes", "y":
		return true, nil
	case "0", "0.0", "false", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("invalid flag %q", raw)
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
