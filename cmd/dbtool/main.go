package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"meeting-point-service/internal/adapters/repositories"
	"meeting-point-service/internal/config"
	"meeting-point-service/internal/platform/db"
)

// dbtool initializes the SQLite venue catalog and seeds it from JSON.
// When DATABASE_URL is set it also creates the Postgres route cache schema.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/venues.json")
	if err := initAndSeed(sqliteDB, seedPath); err != nil {
		log.Fatal(err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) != "" {
		pgDB, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pgDB.Close()

		log.Println("Initializing Postgres route cache schema...")
		if err := repositories.InitRouteCacheSchemaPG(pgDB); err != nil {
			log.Fatalf("route cache schema initialization failed: %v", err)
		}
		log.Println("Route cache schema ready.")
	}
}

func initAndSeed(db *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding venues...")
	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
