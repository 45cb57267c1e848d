package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
	"github.com/martinmanurung/cinecatalog/internal/platform/config"
)

// ErrDataLoad is matched by every error that prevents a catalog from loading
var ErrDataLoad = errors.New("data load failed")

// LoadError reports why the source at Path could not be loaded
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrDataLoad, e.Err}
}

// RowWarning records a value that was coerced to null or a row that was
// skipped. Row is 1-indexed and counts data rows only.
type RowWarning struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// LoadReport summarizes one load
type LoadReport struct {
	Path     string       `json:"path"`
	Format   string       `json:"format"`
	Rows     int          `json:"rows"`
	Loaded   int          `json:"loaded"`
	Warnings []RowWarning `json:"warnings,omitempty"`
}

const (
	FormatAuto   = "auto"
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// Load reads the movie dataset described by cfg. The returned report is
// populated even when loading fails part way.
func Load(ctx context.Context, cfg config.DatasetConfig) ([]movies.Movie, LoadReport, error) {
	format, err := resolveFormat(cfg.Path, cfg.Format)
	if err != nil {
		return nil, LoadReport{Path: cfg.Path}, &LoadError{Path: cfg.Path, Err: err}
	}

	switch format {
	case FormatSQLite:
		return LoadSQLite(ctx, cfg.Path, cfg.Table)
	default:
		return LoadCSV(cfg.Path)
	}
}

func resolveFormat(path, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatSQLite:
		return FormatSQLite, nil
	case "", FormatAuto:
	default:
		return "", fmt.Errorf("unknown dataset format %q", format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return FormatCSV, nil
	}
}

// WarningsByColumn counts warnings per column
func (r LoadReport) WarningsByColumn() map[string]int {
	out := make(map[string]int)
	for _, w := range r.Warnings {
		out[w.Column]++
	}
	return out
}
