package services

import (
	"fmt"
	"sort"
	"strings"

	"accommodation-recommender/models"
	"accommodation-recommender/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(listings []*models.Listing) *models.DatasetSummary {
	report := &models.DatasetSummary{
		ListingsByCampus: make(map[string]int),
		ListingsByType:   make(map[string]int),
		AmenityCoverage:  make(map[string]float64),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)
	report.MinBudget = listings[0].MonthlyBudget
	report.MaxBudget = listings[0].MonthlyBudget
	report.Cheapest = listings[0]

	amenityCounts := make([]int, len(models.AmenityColumns))
	var total float64

	for _, l := range listings {
		total += l.MonthlyBudget
		if l.MonthlyBudget < report.MinBudget {
			report.MinBudget = l.MonthlyBudget
			report.Cheapest = l
		}
		if l.MonthlyBudget > report.MaxBudget {
			report.MaxBudget = l.MonthlyBudget
		}
		report.ListingsByCampus[l.PreferredCampus]++
		report.ListingsByType[l.AccommodationType]++

		for i, on := range l.Flags() {
			if on {
				amenityCounts[i]++
			}
		}
	}

	report.AverageBudget = round2(total / float64(len(listings)))
	report.MinBudget = round2(report.MinBudget)
	report.MaxBudget = round2(report.MaxBudget)

	for i, col := range models.AmenityColumns {
		report.AmenityCoverage[col] = round2(float64(amenityCounts[i]) / float64(len(listings)))
	}

	s.logger.Debug("[insights] Summarised %d listings across %d campuses",
		report.TotalListings, len(report.ListingsByCampus))
	return report
}

func (s *InsightService) Print(r *models.DatasetSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  STUDENT ACCOMMODATION DATASET\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total listings : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Println()

	fmt.Printf("\033[1;33m  Monthly Budget\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.TotalListings > 0 {
		fmt.Printf("  Average : \033[1;32m%.2f\033[0m\n", r.AverageBudget)
		fmt.Printf("  Minimum : \033[1;32m%.2f\033[0m\n", r.MinBudget)
		fmt.Printf("  Maximum : \033[1;32m%.2f\033[0m\n", r.MaxBudget)
	} else {
		fmt.Printf("  No budget data available\n")
	}
	fmt.Println()

	if r.Cheapest != nil {
		fmt.Printf("\033[1;33m  Cheapest Listing\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  #%d %s, %s\n", r.Cheapest.ID,
			truncate(r.Cheapest.AccommodationType, 24), truncate(r.Cheapest.RoomType, 20))
		fmt.Printf("  Campus : %s\n", r.Cheapest.PreferredCampus)
		fmt.Printf("  Budget : \033[1;32m%.2f/month\033[0m\n", r.Cheapest.MonthlyBudget)
		fmt.Println()
	}

	printCounts("Listings by Campus", thin, r.ListingsByCampus)
	printCounts("Listings by Accommodation Type", thin, r.ListingsByType)

	fmt.Printf("\033[1;33m  Amenity Coverage\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, col := range models.AmenityColumns {
		share := r.AmenityCoverage[col]
		bar := strings.Repeat("█", int(share*20+0.5))
		fmt.Printf("  %-20s %-20s %3.0f%%\n", col, bar, share*100)
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func printCounts(title, thin string, counts map[string]int) {
	fmt.Printf("\033[1;33m  %s\033[0m\n", title)
	fmt.Printf("  %s\n", thin)
	if len(counts) == 0 {
		fmt.Printf("  No data\n\n")
		return
	}

	type keyCount struct {
		key   string
		count int
	}
	var rows []keyCount
	for k, n := range counts {
		rows = append(rows, keyCount{k, n})
	}
	// Count descending, then name, so the output is stable.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].key < rows[j].key
	})
	for _, kc := range rows {
		fmt.Printf("  %-30s %d\n", truncate(kc.key, 28), kc.count)
	}
	fmt.Println()
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
