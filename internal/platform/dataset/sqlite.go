package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
	"github.com/martinmanurung/cinecatalog/internal/platform/database"
	"gorm.io/gorm"
)

// DefaultTable is the table read when none is configured
const DefaultTable = "movies"

// LoadSQLite reads every row of table from the SQLite database at path.
// The database is opened read-only and columns are matched by name the same
// way CSV headers are.
func LoadSQLite(ctx context.Context, path, table string) ([]movies.Movie, LoadReport, error) {
	report := LoadReport{Path: path, Format: FormatSQLite}
	if table == "" {
		table = DefaultTable
	}

	// sqlite would create a missing file
	if _, err := os.Stat(path); err != nil {
		return nil, report, &LoadError{Path: path, Err: err}
	}

	db, err := database.InitSQLite(path, database.SQLiteOptions{ReadOnly: true})
	if err != nil {
		return nil, report, &LoadError{Path: path, Err: err}
	}
	defer database.Close(db)

	list, report, err := readTable(ctx, db, table, report)
	if err != nil {
		return nil, report, &LoadError{Path: path, Err: err}
	}
	return list, report, nil
}

func readTable(ctx context.Context, db *gorm.DB, table string, report LoadReport) ([]movies.Movie, LoadReport, error) {
	// rowid is insertion order for tables written by WriteSQLite
	rows, err := db.WithContext(ctx).Table(table).Order("rowid").Rows()
	if err != nil {
		return nil, report, fmt.Errorf("query table %q: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, report, fmt.Errorf("read columns: %w", err)
	}

	h, ok := newHeader(cols)
	if !ok {
		return nil, report, errors.New("missing Title column")
	}

	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}
	row := make([]string, len(cols))

	p := &parser{h: h}
	var list []movies.Movie
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, report, fmt.Errorf("scan row %d: %w", report.Rows+1, err)
		}
		for i, v := range values {
			row[i] = v.String
		}
		report.Rows++
		if m, ok := p.parse(report.Rows, row); ok {
			list = append(list, m)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, report, err
	}

	report.Loaded = len(list)
	report.Warnings = p.warnings
	if len(list) == 0 {
		return nil, report, errors.New("no parseable rows")
	}
	return list, report, nil
}
