// Package db opens the GORM database used by the watchlist feature.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chart_backend/internal/feature/watchlist/domain/entity"
)

// OpenDB opens the watchlist database: Postgres when DATABASE_URL is set,
// otherwise a local SQLite file (WATCHLIST_DB, default "watchlist.db").
// Postgres connections are retried briefly since the database may still be
// starting alongside the service.
func OpenDB() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		deadline := time.Now().Add(30 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 30s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		path := os.Getenv("WATCHLIST_DB")
		if path == "" {
			path = "watchlist.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite database %q: %v", path, err)
		}
	}

	if err := db.AutoMigrate(&entity.WatchlistItem{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
