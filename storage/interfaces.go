package storage

import "accommodation-recommender/models"

// ListingWriter is the interface any storage backend must satisfy.
type ListingWriter interface {
	Write(listings []*models.Listing) error
	Close() error
}

// ListingReader loads the full, cleaned listing set.
type ListingReader interface {
	FetchAll() ([]*models.Listing, error)
	Close() error
}

var (
	_ ListingStore = (*PostgresStore)(nil)
	_ ListingStore = (*SQLiteStore)(nil)
)

// ListingStore is a backend that can both be imported into and loaded from.
type ListingStore interface {
	ListingWriter
	ListingReader
}

// RecommendationWriter persists ranked results for a single query.
type RecommendationWriter interface {
	WriteRecommendations(recs []models.Recommendation) error
	Close() error
}
