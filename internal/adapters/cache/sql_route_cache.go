package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"meeting-point-service/internal/platform/obs"
	"meeting-point-service/internal/ports"
)

// SQLRouteCache is a Postgres-backed cache for per-mode route metrics.
// Keys are expected to be consistent (e.g., already normalized "lon,lat"
// strings) by the caller.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch cached metrics for one origin/destination pair across modes.
func (s *SQLRouteCache) GetModes(
	ctx context.Context,
	origin, destination string,
	modes []string,
) (_ map[string]ports.RouteMetrics, err error) {
	defer obs.Time(ctx, "route.cache.GetModes")(&err)

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

	q := `
	SELECT mode, duration_minutes, distance_km
    FROM route_cache
    WHERE origin = $1
        AND destination = $2
        AND mode = ANY($3::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, origin, destination, uniq)
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
func (s *SQLRouteCache) PutModes(
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
	INSERT INTO route_cache (origin, destination, mode, duration_minutes, distance_km)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (origin, destination, mode) DO UPDATE
	SET duration_minutes = EXCLUDED.duration_minutes,
		distance_km = EXCLUDED.distance_km;
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

func uniqueModes(modes []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(modes))
	for _, m := range modes {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}

		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		uniq = append(uniq, m)
	}
	return uniq
}
