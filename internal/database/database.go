package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pipoo-ai/pipoo/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New creates a GORM database connection.
// When databaseURL is provided PostgreSQL is used, otherwise SQLite under
// dataDir is used. A corrupt SQLite file is set aside (never deleted) and a
// fresh store is created in its place, so startup degrades to an empty
// collection instead of failing.
func New(databaseURL, dataDir string, lg *log.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), gormConfig)
		if err != nil {
			return nil, err
		}
		if err := migrate(db); err != nil {
			return nil, err
		}
		lg.Printf("database: connected to PostgreSQL")
		return db, nil
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dataDir, "pipoo.db")

	db, err := openSQLite(path, gormConfig)
	if err != nil {
		aside := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
		lg.Printf("database: %s unreadable (%v), moving it to %s and starting empty", path, err, aside)
		if renameErr := os.Rename(path, aside); renameErr != nil {
			return nil, fmt.Errorf("set aside corrupt store: %w", renameErr)
		}
		db, err = openSQLite(path, gormConfig)
		if err != nil {
			return nil, err
		}
	}

	lg.Printf("database: using SQLite %s", path)
	return db, nil
}

func openSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Note{}, &model.Reminder{})
}
