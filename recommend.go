package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"accommodation-recommender/models"
	"accommodation-recommender/storage"
)

var (
	recQuery     models.Query
	recAmenities []string
	recK         int
	recFormat    string
	recOut       string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	f := recommendCmd.Flags()
	f.StringVar(&recQuery.PreferredCampus, "campus", "", "Preferred campus")
	f.StringVar(&recQuery.AccommodationType, "type", "", "Accommodation type")
	f.StringVar(&recQuery.RoomType, "room", "", "Room type")
	f.Float64Var(&recQuery.MonthlyBudget, "budget", 0, "Monthly budget")
	f.StringVar(&recQuery.SafetyPriority, "safety", "", "Safety priority (e.g. low, medium, high)")
	f.StringVar(&recQuery.DistancePriority, "distance", "", "Distance priority (e.g. close, moderate, flexible)")
	f.StringSliceVar(&recAmenities, "amenity", nil, "Required amenity, repeatable (e.g. --amenity high_speed_wifi)")
	f.IntVarP(&recK, "neighbors", "k", 0, "Number of listings to return (default NEIGHBORS)")
	f.StringVarP(&recFormat, "format", "f", FormatTable, "Output format: table, json or yaml")
	f.StringVarP(&recOut, "out", "o", "", "Also write the results to this CSV file (default RESULTS_CSV_PATH)")

	for _, name := range []string{"campus", "type", "room", "budget", "safety", "distance"} {
		_ = recommendCmd.MarkFlagRequired(name)
	}
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Find the listings closest to a set of preferences",
	Long: `Find the listings closest to a set of preferences.

Every categorical value must be one the dataset contains; run
'accommodation-recommender vocabulary' to list them.`,
	Example: `  accommodation-recommender recommend --campus "Main Campus" --type Residence \
    --room Single --budget 3500 --safety high --distance close \
    --amenity high_speed_wifi --amenity study_areas`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(recFormat); err != nil {
		return err
	}
	for _, name := range recAmenities {
		if !recQuery.Amenities.Set(name, true) {
			return fmt.Errorf("unknown amenity %q", name)
		}
	}

	rec, err := buildRecommender()
	if err != nil {
		return err
	}

	k := rec.DefaultK()
	if cmd.Flags().Changed("neighbors") {
		k = recK
	}

	recs, err := rec.Recommend(recQuery, k)
	if err != nil {
		return err
	}
	logger.Debug("[recommend] %d matches for k=%d", len(recs), k)

	if err := printRecommendations(os.Stdout, recFormat, recs); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	out := recOut
	if out == "" {
		out = cfg.ResultsCSVPath
	}
	if out != "" {
		if err := writeResultsCSV(out, recs); err != nil {
			return err
		}
		logger.Info("[recommend] Results saved to %s", out)
	}
	return nil
}

func writeResultsCSV(path string, recs []models.Recommendation) error {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	if err := w.WriteRecommendations(recs); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
