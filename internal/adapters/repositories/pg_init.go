package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres route cache schema. The venue catalog stays in
// SQLite; only route metrics move to Postgres when DATABASE_URL is set.
func InitRouteCacheSchemaPG(db *sql.DB) error {
	if db == nil {
		return errors.New("init pg schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS route_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        mode TEXT NOT NULL,
        duration_minutes DOUBLE PRECISION NOT NULL,
        distance_km DOUBLE PRECISION NOT NULL,
        PRIMARY KEY (origin, destination, mode)
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init pg schema: create route_cache: %w", err)
	}

	return nil
}
