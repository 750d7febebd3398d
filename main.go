// Command accommodation-recommender matches a prospective student to the
// most similar existing accommodation listings.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"accommodation-recommender/config"
	"accommodation-recommender/services"
	"accommodation-recommender/storage"
	"accommodation-recommender/utils"
)

// Version is set at build time via ldflags
var Version = "dev"

var errConfig = errors.New("configuration error")

var (
	cfg    *config.Config
	logger *utils.Logger

	sourceFlag  string
	datasetFlag string
)

func main() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "accommodation-recommender",
	Short: "Find the student accommodation listings closest to your preferences",
	Long: `accommodation-recommender loads a table of student accommodation listings,
encodes campus, accommodation type, room type, budget, priorities and amenities
into a feature vector, and returns the nearest listings by Euclidean distance.

Configuration is read from .env and the environment (DATASET_PATH,
LISTING_SOURCE, NEIGHBORS, ...).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Listing source: csv, postgres or sqlite (overrides LISTING_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&datasetFlag, "dataset", "", "Dataset CSV path (overrides DATASET_PATH)")
	rootCmd.Version = Version
}

func setup(_ *cobra.Command, _ []string) error {
	cfg = config.Load()
	if sourceFlag != "" {
		cfg.ListingSource = sourceFlag
	}
	if datasetFlag != "" {
		cfg.DatasetPath = datasetFlag
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	l, err := utils.NewLoggerFor(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	logger = l
	return nil
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var dle *storage.DatasetLoadError
	switch {
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.As(err, &dle), errors.Is(err, services.ErrEmptyInput):
		return ExitDataError
	case errors.Is(err, services.ErrUnknownCategory):
		return ExitUnknownCategory
	case errors.Is(err, services.ErrInvalidK):
		return ExitInvalidK
	case errors.Is(err, services.ErrInvalidBudget):
		return ExitInvalidBudget
	}
	return ExitError
}
