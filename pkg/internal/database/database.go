package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database described by the DSN and returns the
// handle. TranslateError is enabled so unique constraint violations
// surface as gorm.ErrDuplicatedKey instead of driver-specific errors;
// the duplicate-like and duplicate-account guards depend on it.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool. Called once during
// process shutdown.
func Close(db *gorm.DB) error {
	conn, err := db.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}
