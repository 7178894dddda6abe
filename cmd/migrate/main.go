package main

import (
	"database/sql"
	"flag"
	"log"

	"invoicing-dashboard/internal/config"
	"invoicing-dashboard/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Standalone migration runner. Deployments that do not set AUTO_MIGRATE can
// apply schema changes out of band with this binary, on a plain database/sql
// connection independent of the API server.
func main() {
	statusOnly := flag.Bool("status", false, "print the current migration version and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatal("Database readiness check failed:", err)
	}

	if *statusOnly {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatal("Failed to get migration status:", err)
		}
		log.Printf("Migration status - Version: %d, Dirty: %v", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatal("Migration execution failed:", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		log.Printf("Warning: seed data loading failed: %v", err)
	}
}
