package database

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteOptions tunes how a catalog database is opened
type SQLiteOptions struct {
	ReadOnly bool
	// LogLevel defaults to logger.Warn
	LogLevel logger.LogLevel
}

// InitSQLite opens the SQLite database at path and verifies the connection.
// Read-only handles never create the file.
func InitSQLite(path string, opts SQLiteOptions) (*gorm.DB, error) {
	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}

	db, err := gorm.Open(sqlite.Open(DSN(path, opts.ReadOnly)), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing SQLite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting underlying sql.DB: %w", err)
	}

	// one writer at a time
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("error verifying database connection: %w", err)
	}
	return db, nil
}

// Close releases the connection pool behind db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DSN builds the file URI for path. Characters with a meaning in URIs,
// such as '?', '#' and '%', are percent-encoded.
func DSN(path string, readOnly bool) string {
	dsn := "file:" + (&url.URL{Path: filepath.ToSlash(path)}).EscapedPath()
	if readOnly {
		dsn += "?mode=ro"
	}
	return dsn
}
