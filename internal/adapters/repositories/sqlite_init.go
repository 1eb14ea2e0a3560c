package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVenuesQuery := `
	CREATE TABLE IF NOT EXISTS venues (
		venue_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		rating REAL NOT NULL,
		review_count INTEGER NOT NULL,
		lon REAL NOT NULL,
		lat REAL NOT NULL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        mode TEXT NOT NULL,
        duration_minutes REAL NOT NULL,
        distance_km REAL NOT NULL,
        PRIMARY KEY (origin, destination, mode)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_cache_destination_origin
    ON route_cache(destination, origin);
	`

	statements := []string{
		createVenuesQuery,
		createRouteCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type VenueSeed struct {
	VenueID     string  `json:"venue_id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Lon         float64 `json:"lon"`
	Lat         float64 `json:"lat"`
}

// Populate the database with venue catalog data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed venues: read %q: %w", jsonPath, err)
	}

	var data []VenueSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed venues: parse json: %w", err)
	}

	rows := make([]VenueSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.VenueID)
		if id == "" {
			return fmt.Errorf("seed venues: item at index %d: venue_id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed venues: item %q at index %d: name cannot be empty", id, i+1)
		}

		if item.Rating < 0 || item.Rating > 5 {
			return fmt.Errorf("seed venues: item %q at index %d: rating %v out of range", id, i+1, item.Rating)
		}

		if item.ReviewCount < 0 {
			return fmt.Errorf("seed venues: item %q at index %d: negative review count", id, i+1)
		}

		rows = append(rows, VenueSeed{
			VenueID:     id,
			Name:        name,
			Rating:      item.Rating,
			ReviewCount: item.ReviewCount,
			Lon:         item.Lon,
			Lat:         item.Lat,
		})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed venues: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO venues (
		venue_id,
		name,
		rating,
		review_count,
		lon,
		lat
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed venues: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range rows {
		if _, err := stmt.Exec(v.VenueID, v.Name, v.Rating, v.ReviewCount, v.Lon, v.Lat); err != nil {
			return fmt.Errorf("seed venues: insert venue_id=%q: %w", v.VenueID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed venues: commit tx: %w", err)
	}

	return nil
}
