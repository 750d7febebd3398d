package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"accommodation-recommender/models"
	"accommodation-recommender/utils"
)

// listingColumns is the insert/select order shared by the SQL stores.
const listingColumns = `preferred_campus, accomodation_type, room_type, monthly_budget,
	safety_priority, distance_priority,
	high_speed_wifi, secure_parking, laundry_facilities, kitchen_access,
	security_24_7, gym_access, study_areas, public_transport`

const listingColumnCount = 14

// PostgresStore persists cleaned listings to PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, retrying the ping while
// the server comes up, runs schema migrations, and returns a ready store.
func NewPostgresStore(dsn string, maxRetries int, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: maxRetries,
		BaseDelay:   time.Second,
		Logger:      logger,
	}
	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS accommodation_listings (
			id                 BIGINT           PRIMARY KEY,
			preferred_campus   TEXT             NOT NULL,
			accomodation_type  TEXT             NOT NULL,
			room_type          TEXT             NOT NULL,
			monthly_budget     DOUBLE PRECISION NOT NULL DEFAULT 0,
			safety_priority    TEXT             NOT NULL,
			distance_priority  TEXT             NOT NULL,
			high_speed_wifi    BOOLEAN          NOT NULL DEFAULT FALSE,
			secure_parking     BOOLEAN          NOT NULL DEFAULT FALSE,
			laundry_facilities BOOLEAN          NOT NULL DEFAULT FALSE,
			kitchen_access     BOOLEAN          NOT NULL DEFAULT FALSE,
			security_24_7      BOOLEAN          NOT NULL DEFAULT FALSE,
			gym_access         BOOLEAN          NOT NULL DEFAULT FALSE,
			study_areas        BOOLEAN          NOT NULL DEFAULT FALSE,
			public_transport   BOOLEAN          NOT NULL DEFAULT FALSE,
			created_at         TIMESTAMPTZ      NOT NULL DEFAULT NOW()
		);

		ALTER TABLE accommodation_listings ALTER COLUMN monthly_budget TYPE DOUBLE PRECISION;

		CREATE INDEX IF NOT EXISTS idx_accommodation_campus ON accommodation_listings(preferred_campus);
		CREATE INDEX IF NOT EXISTS idx_accommodation_budget ON accommodation_listings(monthly_budget);
	`)
	return err
}

// Write replaces the stored dataset with listings in one transaction.
func (ps *PostgresStore) Write(listings []*models.Listing) error {
	tx, err := ps.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM accommodation_listings"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := i + batchSize
		if end > len(listings) {
			end = len(listings)
		}
		if err := insertBatch(tx, listings[i:end]); err != nil {
			return fmt.Errorf("postgres: insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func insertBatch(tx *sql.Tx, batch []*models.Listing) error {
	const perRow = listingColumnCount + 1
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*perRow)

	for idx, l := range batch {
		base := idx * perRow
		placeholders := make([]string, perRow)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs, listingArgs(l)...)
	}

	query := fmt.Sprintf(`
		INSERT INTO accommodation_listings (id, %s)
		VALUES %s
	`, listingColumns, strings.Join(valueStrings, ","))

	_, err := tx.Exec(query, valueArgs...)
	return err
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}

// FetchAll retrieves all stored listings in id order.
func (ps *PostgresStore) FetchAll() ([]*models.Listing, error) {
	rows, err := ps.db.Query(`
		SELECT id, ` + listingColumns + `
		FROM accommodation_listings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	listings, err := scanListings(rows)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return listings, nil
}

// listingArgs flattens a listing into id followed by listingColumns order.
func listingArgs(l *models.Listing) []interface{} {
	return []interface{}{
		l.ID,
		l.PreferredCampus, l.AccommodationType, l.RoomType, l.MonthlyBudget,
		l.SafetyPriority, l.DistancePriority,
		l.HighSpeedWifi, l.SecureParking, l.LaundryFacilities, l.KitchenAccess,
		l.Security247, l.GymAccess, l.StudyAreas, l.PublicTransport,
	}
}

// scanListings reads rows selected as id followed by listingColumns. IDs are
// renumbered positionally so they match the in-memory index.
func scanListings(rows *sql.Rows) ([]*models.Listing, error) {
	var listings []*models.Listing
	for rows.Next() {
		l := &models.Listing{}
		var storedID int64
		if err := rows.Scan(
			&storedID,
			&l.PreferredCampus, &l.AccommodationType, &l.RoomType, &l.MonthlyBudget,
			&l.SafetyPriority, &l.DistancePriority,
			&l.HighSpeedWifi, &l.SecureParking, &l.LaundryFacilities, &l.KitchenAccess,
			&l.Security247, &l.GymAccess, &l.StudyAreas, &l.PublicTransport,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		l.ID = int64(len(listings))
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
