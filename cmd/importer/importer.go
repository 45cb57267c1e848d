package main

import (
	"context"
	"fmt"

	"github.com/martinmanurung/cinecatalog/internal/platform/database"
	"github.com/martinmanurung/cinecatalog/internal/platform/dataset"
	"github.com/rs/zerolog"
)

// Importer copies a CSV catalog into a SQLite table that the browser can
// serve with dataset.format=sqlite
type Importer struct {
	From    string
	To      string
	Table   string
	Replace bool

	logger zerolog.Logger
}

// NewImporter creates a new importer
func NewImporter(from, to, table string, replace bool, logger zerolog.Logger) *Importer {
	return &Importer{
		From:    from,
		To:      to,
		Table:   table,
		Replace: replace,
		logger:  logger,
	}
}

// Run loads the CSV file and writes every parsed movie
func (i *Importer) Run(ctx context.Context) (int, error) {
	list, report, err := dataset.LoadCSV(i.From)
	if err != nil {
		return 0, err
	}
	for _, w := range report.Warnings {
		i.logger.Warn().
			Int("row", w.Row).
			Str("column", w.Column).
			Str("value", w.Value).
			Msg(w.Reason)
	}
	i.logger.Info().
		Int("rows", report.Rows).
		Int("loaded", report.Loaded).
		Msg("CSV catalog parsed")

	db, err := database.InitSQLite(i.To, database.SQLiteOptions{})
	if err != nil {
		return 0, err
	}
	defer database.Close(db)

	n, err := dataset.WriteSQLite(ctx, db, list, dataset.WriteOptions{Table: i.Table, Replace: i.Replace})
	if err != nil {
		return 0, fmt.Errorf("import into %s: %w", i.To, err)
	}
	return n, nil
}
