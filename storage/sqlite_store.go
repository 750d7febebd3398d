package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"accommodation-recommender/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the cleaned dataset in a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens or creates the SQLite database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("sqlite: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS accommodation_listings (
			id                 INTEGER PRIMARY KEY,
			preferred_campus   TEXT    NOT NULL,
			accomodation_type  TEXT    NOT NULL,
			room_type          TEXT    NOT NULL,
			monthly_budget     REAL    NOT NULL DEFAULT 0,
			safety_priority    TEXT    NOT NULL,
			distance_priority  TEXT    NOT NULL,
			high_speed_wifi    INTEGER NOT NULL DEFAULT 0,
			secure_parking     INTEGER NOT NULL DEFAULT 0,
			laundry_facilities INTEGER NOT NULL DEFAULT 0,
			kitchen_access     INTEGER NOT NULL DEFAULT 0,
			security_24_7      INTEGER NOT NULL DEFAULT 0,
			gym_access         INTEGER NOT NULL DEFAULT 0,
			study_areas        INTEGER NOT NULL DEFAULT 0,
			public_transport   INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_accommodation_campus ON accommodation_listings(preferred_campus);
	`)
	return err
}

// Write replaces the stored dataset with listings.
func (s *SQLiteStore) Write(listings []*models.Listing) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM accommodation_listings"); err != nil {
		return fmt.Errorf("sqlite: clear: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", listingColumnCount+1), ",")
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO accommodation_listings (id, %s) VALUES (%s)", listingColumns, placeholders))
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range listings {
		if _, err := stmt.Exec(listingArgs(l)...); err != nil {
			return fmt.Errorf("sqlite: insert listing %d: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

// FetchAll retrieves all stored listings in id order.
func (s *SQLiteStore) FetchAll() ([]*models.Listing, error) {
	rows, err := s.db.Query(`SELECT id, ` + listingColumns + ` FROM accommodation_listings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: fetch all: %w", err)
	}
	defer rows.Close()

	listings, err := scanListings(rows)
	if err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	return listings, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
