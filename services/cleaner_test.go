package services

import (
	"testing"

	"accommodation-recommender/models"
	"accommodation-recommender/utils"
)

func newTestLogger() *utils.Logger { return utils.NewNopLogger() }

func rawRow(line int, overrides map[string]string) *models.RawListing {
	values := map[string]string{
		models.ColCampus:            "Main Campus",
		models.ColAccommodationType: "Residence",
		models.ColRoomType:          "Single",
		models.ColMonthlyBudget:     "3500",
		models.ColSafetyPriority:    "high",
		models.ColDistancePriority:  "close",
	}
	for _, col := range models.AmenityColumns {
		values[col] = "0"
	}
	for k, v := range overrides {
		values[k] = v
	}
	return &models.RawListing{Line: line, Values: values}
}

func TestCleanerParseBudget(t *testing.T) {
	c := NewCleaner(newTestLogger())

	tests := []struct {
		raw  string
		want float64
	}{
		{"4500", 4500},
		{"R3,500", 3500},
		{"$1,200.50 pm", 1200.50},
		{" 800.0 ", 800},
		{"0", 0},
	}

	for _, tt := range tests {
		got, err := c.parseBudget(tt.raw)
		if err != nil {
			t.Errorf("parseBudget(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseBudget(%q) = %.2f; want %.2f", tt.raw, got, tt.want)
		}
	}
}

func TestCleanerRejectsBadBudget(t *testing.T) {
	c := NewCleaner(newTestLogger())
	for _, raw := range []string{"", "free", "-200"} {
		if _, err := c.parseBudget(raw); err == nil {
			t.Errorf("parseBudget(%q): expected error", raw)
		}
	}
}

func TestCleanerParseFlag(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"1", true, false},
		{"0", false, false},
		{"True", true, false},
		{"no", false, false},
		{" y ", true, false},
		{"1.0", true, false},
		{"", false, true},
		{"2", false, true},
	}

	for _, tt := range tests {
		got, err := parseFlag(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFlag(%q) error = %v; wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFlag(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCleanerBuildsListing(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.RawListing{rawRow(2, map[string]string{
		models.ColCampus:        "  Main   Campus ",
		models.ColHighSpeedWifi: "1",
		models.ColSecurity247:   "yes",
	})}

	cleaned := c.Clean(raw)
	if len(cleaned) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(cleaned))
	}
	l := cleaned[0]
	if l.PreferredCampus != "Main Campus" {
		t.Errorf("PreferredCampus: got %q, want %q", l.PreferredCampus, "Main Campus")
	}
	if l.MonthlyBudget != 3500 {
		t.Errorf("MonthlyBudget: got %.2f, want 3500", l.MonthlyBudget)
	}
	if !l.HighSpeedWifi || !l.Security247 || l.GymAccess {
		t.Errorf("amenities: got %+v", l.Amenities)
	}
}

func TestCleanerDropsInvalidRows(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.RawListing{
		rawRow(2, nil),
		rawRow(3, map[string]string{models.ColRoomType: "   "}),
		rawRow(4, map[string]string{models.ColMonthlyBudget: "n/a"}),
		rawRow(5, map[string]string{models.ColGymAccess: "maybe"}),
		rawRow(6, map[string]string{models.ColCampus: "City Campus"}),
	}

	cleaned := c.Clean(raw)
	if len(cleaned) != 2 {
		t.Fatalf("expected 2 listings after dropping invalid rows, got %d", len(cleaned))
	}
	// IDs are positional over kept rows.
	for i, l := range cleaned {
		if l.ID != int64(i) {
			t.Errorf("listing %d: ID %d", i, l.ID)
		}
	}
	if cleaned[1].PreferredCampus != "City Campus" {
		t.Errorf("second listing campus: got %q", cleaned[1].PreferredCampus)
	}
}
