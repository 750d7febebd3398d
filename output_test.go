package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"accommodation-recommender/models"
)

func sampleRecommendations() []models.Recommendation {
	return []models.Recommendation{
		{Rank: 1, Distance: 0, Listing: &models.Listing{ID: 2, Attributes: models.Attributes{
			PreferredCampus: "Main Campus", AccommodationType: "Residence", RoomType: "Single",
			MonthlyBudget: 3500, SafetyPriority: "high", DistancePriority: "close",
			Amenities: models.Amenities{HighSpeedWifi: true, StudyAreas: true},
		}}},
		{Rank: 2, Distance: 1.25, Listing: &models.Listing{ID: 0, Attributes: models.Attributes{
			PreferredCampus: "City Campus", AccommodationType: "Apartment", RoomType: "Shared",
			MonthlyBudget: 2800, SafetyPriority: "medium", DistancePriority: "flexible",
		}}},
	}
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{FormatTable, FormatJSON, FormatYAML} {
		if err := checkFormat(f); err != nil {
			t.Errorf("checkFormat(%q): unexpected error %v", f, err)
		}
	}
	if err := checkFormat("xml"); err == nil {
		t.Error("checkFormat(xml): expected error, got nil")
	}
}

func TestPrintRecommendationsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := printRecommendations(&buf, FormatTable, sampleRecommendations()); err != nil {
		t.Fatalf("printRecommendations: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: got %d, want 3 (header + 2 rows)\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "RANK") {
		t.Errorf("header: got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Main Campus") || !strings.Contains(lines[1], "high_speed_wifi,study_areas") {
		t.Errorf("first row: got %q", lines[1])
	}
	if !strings.Contains(lines[2], "1.2500") {
		t.Errorf("second row distance: got %q", lines[2])
	}
}

func TestPrintRecommendationsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printRecommendations(&buf, FormatTable, nil); err != nil {
		t.Fatalf("printRecommendations: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "No matching listings." {
		t.Errorf("got %q, want %q", got, "No matching listings.")
	}
}

func TestPrintRecommendationsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printRecommendations(&buf, FormatJSON, sampleRecommendations()); err != nil {
		t.Fatalf("printRecommendations: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("len: got %d, want 2", len(got))
	}
	listing, ok := got[0]["listing"].(map[string]any)
	if !ok {
		t.Fatalf("listing field missing: %v", got[0])
	}
	if listing["preferred_campus"] != "Main Campus" {
		t.Errorf("preferred_campus: got %v, want Main Campus", listing["preferred_campus"])
	}
}

func TestPrintVocabularyYAML(t *testing.T) {
	vocab := map[string][]string{
		models.ColCampus:   {"City Campus", "Main Campus"},
		models.ColRoomType: {"Shared", "Single"},
	}

	var buf bytes.Buffer
	if err := printVocabulary(&buf, FormatYAML, vocab); err != nil {
		t.Fatalf("printVocabulary: %v", err)
	}

	var got map[string][]string
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if len(got[models.ColCampus]) != 2 || got[models.ColCampus][1] != "Main Campus" {
		t.Errorf("campus values: got %v", got[models.ColCampus])
	}
}

func TestFormatAmenities(t *testing.T) {
	if got := formatAmenities(models.Amenities{}); got != "-" {
		t.Errorf("no amenities: got %q, want -", got)
	}
	got := formatAmenities(models.Amenities{SecureParking: true, PublicTransport: true})
	if got != "secure_parking,public_transport" {
		t.Errorf("got %q, want secure_parking,public_transport", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("Short", 10); got != "Short" {
		t.Errorf("got %q, want Short", got)
	}
	if got := truncateString("A very long campus name", 10); got != "A very ..." {
		t.Errorf("got %q, want %q", got, "A very ...")
	}

	got := truncateString("Université de Montréal Campus Principal", 24)
	if !utf8.ValidString(got) {
		t.Errorf("truncated multi-byte name is not valid UTF-8: %q", got)
	}
	if got != "Université de Montréa..." {
		t.Errorf("got %q, want %q", got, "Université de Montréa...")
	}
}
