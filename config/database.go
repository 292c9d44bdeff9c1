package config

import (
	"github.com/deencards/deencards-api/storage"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

// Connect opens the state database: Postgres when DB_URL is set, otherwise a
// local SQLite file. On error callers fall back to an unavailable storage
// medium instead of refusing to start.
func Connect() error {
	var err error
	if Env.DBURL != "" {
		Database, err = gorm.Open(postgres.Open(Env.DBURL), &gorm.Config{})
	} else {
		Database, err = gorm.Open(sqlite.Open(Env.StatePath), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	return Database.AutoMigrate(&storage.Entry{})
}
