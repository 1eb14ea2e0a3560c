package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"meeting-point-service/internal/ports"
)

// SQLite backed cache for per-mode route metrics. Keys are expected to be
// consistent (e.g., already normalized "lon,lat" strings) by the caller.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch cached metrics for one origin/destination pair across modes.
func (s *SqliteRouteCache) GetModes(
	ctx context.Context,
	origin, destination string,
	modes []string,
) (map[string]ports.RouteMetrics, error) {
	if s.DB == nil {
		return nil, errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" {
		return nil, errors.New("get route cache: origin and destination must not be empty")
	}

	uniq := uniqueModes(modes)
	if len(uniq) == 0 {
		return map[string]ports.RouteMetrics{}, nil
	}

	ph := make([]string, len(uniq))
	args := make([]any, 0, 2+len(uniq))
	args = append(args, origin, destination)
	for i, m := range uniq {
		ph[i] = "?"
		args = append(args, m)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT mode, duration_minutes, distance_km
    FROM route_cache
    WHERE origin = ?
        AND destination = ?
        AND mode IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.RouteMetrics, len(uniq))
	for rows.Next() {
		var mode string
		var minutes, km float64
		if err := rows.Scan(&mode, &minutes, &km); err != nil {
			return nil, fmt.Errorf("get route cache: scan rows: %w", err)
		}
		out[mode] = ports.RouteMetrics{
			DurationMinutes: minutes,
			DistanceKm:      km,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get route cache: row iteration: %w", err)
	}

	return out, nil
}

// Store metrics for one origin/destination pair across modes.
func (s *SqliteRouteCache) PutModes(
	ctx context.Context,
	origin, destination string,
	entries map[string]ports.RouteMetrics,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert route cache: origin and destination must not be empty")
	}

	if len(entries) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert route cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO route_cache (
        origin,
        destination,
        mode,
        duration_minutes,
        distance_km
    )
    VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("insert route cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for mode, m := range entries {
		if strings.TrimSpace(mode) == "" {
			return fmt.Errorf("insert route cache: empty mode key")
		}

		if _, err := stmt.ExecContext(ctx, origin, destination, mode, m.DurationMinutes, m.DistanceKm); err != nil {
			return fmt.Errorf("insert route cache mode=%q: %w", mode, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert route cache commit: %w", err)
	}

	return nil
}
