package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"accommodation-recommender/models"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// CampusMaxLen and TypeMaxLen bound the table column widths.
const (
	CampusMaxLen = 24
	TypeMaxLen   = 18
)

func checkFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatTable, FormatJSON, FormatYAML)
}

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputYAML writes a value as YAML.
func outputYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// printRecommendations renders ranked matches in the chosen format.
func printRecommendations(w io.Writer, format string, recs []models.Recommendation) error {
	switch format {
	case FormatJSON:
		return outputJSON(w, recs)
	case FormatYAML:
		return outputYAML(w, recs)
	}

	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "No matching listings.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tDISTANCE\tID\tCAMPUS\tTYPE\tROOM\tBUDGET\tSAFETY\tDISTANCE PRIORITY\tAMENITIES")
	for _, r := range recs {
		l := r.Listing
		fmt.Fprintf(tw, "%d\t%.4f\t%d\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
			r.Rank, r.Distance, l.ID,
			truncateString(l.PreferredCampus, CampusMaxLen),
			truncateString(l.AccommodationType, TypeMaxLen),
			l.RoomType, l.MonthlyBudget, l.SafetyPriority, l.DistancePriority,
			formatAmenities(l.Amenities))
	}
	return tw.Flush()
}

// printVocabulary renders the accepted values of each categorical column.
func printVocabulary(w io.Writer, format string, vocab map[string][]string) error {
	switch format {
	case FormatJSON:
		return outputJSON(w, vocab)
	case FormatYAML:
		return outputYAML(w, vocab)
	}

	for _, col := range models.CategoricalColumns {
		fmt.Fprintf(w, "%s:\n", col)
		for _, v := range vocab[col] {
			fmt.Fprintf(w, "  - %s\n", v)
		}
	}
	fmt.Fprintf(w, "amenities:\n  - %s\n", strings.Join(models.AmenityColumns, "\n  - "))
	return nil
}

// formatAmenities lists the enabled amenity flags, comma separated.
func formatAmenities(a models.Amenities) string {
	var on []string
	for i, enabled := range a.Flags() {
		if enabled {
			on = append(on, models.AmenityColumns[i])
		}
	}
	if len(on) == 0 {
		return "-"
	}
	return strings.Join(on, ",")
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
