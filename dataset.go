package main

import (
	"fmt"

	"accommodation-recommender/config"
	"accommodation-recommender/models"
	"accommodation-recommender/services"
	"accommodation-recommender/storage"
)

// loadListings reads the cleaned listing set from the configured source.
func loadListings() ([]*models.Listing, error) {
	switch cfg.ListingSource {
	case config.SourceCSV:
		raw, err := storage.ReadDataset(cfg.DatasetPath)
		if err != nil {
			return nil, err
		}
		logger.Info("[dataset] Read %d rows from %s", len(raw), cfg.DatasetPath)
		return services.NewCleaner(logger).Clean(raw), nil

	case config.SourcePostgres, config.SourceSQLite:
		store, err := openStore(cfg.ListingSource)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		listings, err := store.FetchAll()
		if err != nil {
			return nil, err
		}
		logger.Info("[dataset] Loaded %d listings from %s", len(listings), cfg.ListingSource)
		return listings, nil
	}
	return nil, fmt.Errorf("%w: unknown listing source %q", errConfig, cfg.ListingSource)
}

// openStore connects to a SQL listing store.
func openStore(kind string) (storage.ListingStore, error) {
	switch kind {
	case config.SourcePostgres:
		store, err := storage.NewPostgresStore(cfg.DSN(), cfg.MaxRetries, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.SourceSQLite:
		store, err := storage.OpenSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("%w: %q is not a database store", errConfig, kind)
}

// buildRecommender loads listings and builds the codecs, normalizer and index.
func buildRecommender() (*services.Recommender, error) {
	listings, err := loadListings()
	if err != nil {
		return nil, err
	}

	rec, err := services.NewRecommender(listings, cfg.Neighbors)
	if err != nil {
		return nil, err
	}
	logger.Debug("[dataset] Indexed %d listings, default k=%d", rec.Len(), rec.DefaultK())
	return rec, nil
}
