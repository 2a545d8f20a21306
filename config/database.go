package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the database. With DB_URL set it connects to Postgres;
// without it a local SQLite file is used so the backend runs without any
// external services during development.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	var (
		db  *gorm.DB
		err error
	)
	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("DATABASE_PATH")
		if path == "" {
			path = "devforge.db"
		}
		log.Printf("DB_URL not set, using SQLite database at %s", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
