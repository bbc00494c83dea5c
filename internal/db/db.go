package db

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustOpen opens the catalog database. By default it uses an embedded
// sqlite file (DB_PATH, falling back to catalog.db in the working
// directory); when DB_DSN is set it connects to postgres instead.
func MustOpen() *gorm.DB {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("failed to connect database: ", err)
		}
		return gdb
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "catalog.db"
	}
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	return gdb
}
