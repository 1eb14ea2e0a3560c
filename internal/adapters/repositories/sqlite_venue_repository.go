package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meeting-point-service/internal/domain"
)

// SQLite-backed implementation of the VenueRepository port.
type SqliteVenueRepository struct{ DB *sql.DB }

func NewSqliteVenueRepository(db *sql.DB) *SqliteVenueRepository {
	return &SqliteVenueRepository{DB: db}
}

// Return all venues stored in the catalog.
func (s *SqliteVenueRepository) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite venue repository: DB is nil")
	}

	query := `
	SELECT
		venue_id,
		name,
		rating,
		review_count,
		lon,
		lat
	FROM venues
	ORDER BY venue_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: query venues table: %w", err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0, 64)
	for rows.Next() {
		var v domain.Venue
		err := rows.Scan(&v.ID, &v.Name, &v.Rating, &v.ReviewCount, &v.Location.Lon, &v.Location.Lat)
		if err != nil {
			return nil, fmt.Errorf("list venues: scan row: %w", err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list venues: row iteration: %w", err)
	}

	return venues, nil
}
