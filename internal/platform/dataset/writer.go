package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
	"gorm.io/gorm"
)

// catalogRow is the table layout written by WriteSQLite. Its column names
// are the ones LoadSQLite recognizes.
type catalogRow struct {
	ID         uint     `gorm:"column:id;primaryKey"`
	IMDbID     string   `gorm:"column:imdbID"`
	Title      string   `gorm:"column:Title;not null"`
	Year       *int     `gorm:"column:Year"`
	Genre      string   `gorm:"column:Genre"`
	Actors     string   `gorm:"column:Actors"`
	IMDbRating *float64 `gorm:"column:imdbRating"`
	Poster     string   `gorm:"column:Poster"`
	IMDbURL    string   `gorm:"column:imdbURL"`
}

const writeBatchSize = 200

// WriteOptions controls WriteSQLite
type WriteOptions struct {
	Table   string
	// Replace drops an existing table first, otherwise rows are appended
	Replace bool
}

// WriteSQLite stores list in a table of db inside a single transaction.
// Movies keep their order through the autoincrement id.
func WriteSQLite(ctx context.Context, db *gorm.DB, list []movies.Movie, opts WriteOptions) (int, error) {
	table := opts.Table
	if table == "" {
		table = DefaultTable
	}

	rows := make([]catalogRow, 0, len(list))
	for _, m := range list {
		rows = append(rows, toCatalogRow(m))
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Replace && tx.Migrator().HasTable(table) {
			if err := tx.Migrator().DropTable(table); err != nil {
				return fmt.Errorf("drop table %q: %w", table, err)
			}
		}
		if err := tx.Table(table).AutoMigrate(&catalogRow{}); err != nil {
			return fmt.Errorf("migrate table %q: %w", table, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Table(table).CreateInBatches(rows, writeBatchSize).Error; err != nil {
			return fmt.Errorf("insert into %q: %w", table, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func toCatalogRow(m movies.Movie) catalogRow {
	return catalogRow{
		IMDbID:     m.IMDbID,
		Title:      m.Title,
		Year:       m.Year,
		Genre:      strings.Join(m.Genres, ", "),
		Actors:     strings.Join(m.Actors, ", "),
		IMDbRating: m.Rating,
		Poster:     m.PosterURL,
		IMDbURL:    m.IMDbURL,
	}
}
