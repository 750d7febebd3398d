package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"accommodation-recommender/config"
	"accommodation-recommender/services"
	"accommodation-recommender/storage"
)

var importTarget string

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importTarget, "to", config.SourceSQLite, "Target store: sqlite or postgres")
}

var importCmd = &cobra.Command{
	Use:   "import [dataset.csv]",
	Short: "Clean the dataset CSV and load it into a database store",
	Long: `Clean the dataset CSV and load it into a database store.

The store's previous contents are replaced. Afterwards set LISTING_SOURCE
(or pass --source) to recommend from the store instead of the CSV.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(_ *cobra.Command, args []string) error {
	path := cfg.DatasetPath
	if len(args) == 1 {
		path = args[0]
	}

	raw, err := storage.ReadDataset(path)
	if err != nil {
		return err
	}

	listings := services.NewCleaner(logger).Clean(raw)
	if len(listings) == 0 {
		return fmt.Errorf("import %s: %w: every row was dropped during cleaning", path, services.ErrEmptyInput)
	}

	store, err := openStore(importTarget)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Write(listings); err != nil {
		return err
	}

	logger.Info("[import] Stored %d listings from %s in %s", len(listings), path, importTarget)
	return nil
}
