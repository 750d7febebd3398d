package main

import (
	"github.com/spf13/cobra"

	"accommodation-recommender/services"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print descriptive statistics of the listing dataset",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		listings, err := loadListings()
		if err != nil {
			return err
		}

		insights := services.NewInsightService(logger)
		insights.Print(insights.Generate(listings))
		return nil
	},
}
