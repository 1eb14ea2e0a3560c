package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"meeting-point-service/internal/adapters/cache"
	"meeting-point-service/internal/adapters/provider"
	"meeting-point-service/internal/adapters/repositories"
	"meeting-point-service/internal/api"
	"meeting-point-service/internal/config"
	"meeting-point-service/internal/platform/db"
	"meeting-point-service/internal/platform/metrics"
	"meeting-point-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres caches, AMap) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Venue catalog always lives in SQLite; initialize schema and seed
	// demo data on startup for local runs.
	sqliteDB, err := openSqlite(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	if err := initAndSeed(sqliteDB, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	var collector *metrics.Collector
	if cfg.MetricsAddr != "" {
		collector = metrics.NewCollector()
		collector.Serve(cfg.MetricsAddr)
	}

	// Route cache backend: Postgres when DATABASE_URL is set, else the
	// same SQLite file as the venue catalog.
	var routeCache ports.RouteCache
	if cfg.DatabaseURL != "" {
		pgDB, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pgDB.Close()

		if err := repositories.InitRouteCacheSchemaPG(pgDB); err != nil {
			log.Fatal(err)
		}
		routeCache = cache.NewSQLRouteCache(pgDB)
	} else {
		routeCache = cache.NewSqliteRouteCache(sqliteDB)
	}

	amap, err := provider.NewAMapRouteProvider(cfg.AMapAPIKey, cfg.DefaultCity, routeCache, collector)
	if err != nil {
		log.Fatal(err)
	}

	venueRepo := repositories.NewSqliteVenueRepository(sqliteDB)
	router := api.NewRouter(amap, venueRepo, collector, cfg.DefaultBufferMinutes)

	// Timeouts are tuned for cold-cache recommendations (three provider
	// calls per participant on a miss).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
