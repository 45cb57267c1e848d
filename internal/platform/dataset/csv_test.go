package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/martinmanurung/cinecatalog/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Title,Year,Genre,Actor1,Actor2,Actor3,imdbRating,Poster,imdbID
Dune,2021,"Action, Adventure, Drama",Timothée Chalamet,Rebecca Ferguson,Zendaya,8.0,https://img.example/dune.jpg,tt1160419
Her,2013,"Drama, Romance, Sci-Fi",Joaquin Phoenix,,Scarlett Johansson,8.0,N/A,tt1798709
Broken Year,20x1,Comedy,,,,not-a-number,,tt0000001
,1999,Drama,Someone,,,7.0,,tt0000002
Too High,2001.0,Drama,,,,11.5,,tt0000003
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "movie_database.csv", sampleCSV)

	list, report, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, list, 4)

	dune := list[0]
	assert.Equal(t, "Dune", dune.Title)
	require.NotNil(t, dune.Year)
	assert.Equal(t, 2021, *dune.Year)
	assert.Equal(t, []string{"Action", "Adventure", "Drama"}, dune.Genres)
	assert.Equal(t, []string{"Timothée Chalamet", "Rebecca Ferguson", "Zendaya"}, dune.Actors)
	require.NotNil(t, dune.Rating)
	assert.Equal(t, 8.0, *dune.Rating)
	assert.Equal(t, "https://img.example/dune.jpg", dune.PosterURL)
	assert.Equal(t, "https://www.imdb.com/title/tt1160419/", dune.IMDbURL)

	her := list[1]
	assert.Empty(t, her.PosterURL, "N/A poster is dropped")
	assert.Equal(t, []string{"Joaquin Phoenix", "Scarlett Johansson"}, her.Actors)

	broken := list[2]
	assert.Nil(t, broken.Year)
	assert.Nil(t, broken.Rating)
	assert.Empty(t, broken.Actors)

	tooHigh := list[3]
	require.NotNil(t, tooHigh.Year)
	assert.Equal(t, 2001, *tooHigh.Year)
	assert.Nil(t, tooHigh.Rating, "ratings outside 0..10 are coerced to null")

	assert.Equal(t, FormatCSV, report.Format)
	assert.Equal(t, 5, report.Rows)
	assert.Equal(t, 4, report.Loaded)
	assert.Equal(t, map[string]int{"Year": 1, "Rating": 2, "Title": 1}, report.WarningsByColumn())
	assert.Equal(t, RowWarning{Row: 3, Column: "Year", Value: "20x1", Reason: "unparsable year"}, report.Warnings[0])
}

func TestReadCSV_ColumnsByName(t *testing.T) {
	data := "\ufeffimdbID , Poster,imdbRating,Actors,GENRE,year,title\n" +
		"tt0133093,,8.7,\"Keanu Reeves, Laurence Fishburne, keanu reeves\",\"Action,Sci-Fi\",1999,The Matrix\n"

	list, _, err := ReadCSV(strings.NewReader(data), LoadReport{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	m := list[0]
	assert.Equal(t, "The Matrix", m.Title)
	assert.Equal(t, 1999, *m.Year)
	assert.Equal(t, 8.7, *m.Rating)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, m.Genres)
	assert.Equal(t, []string{"Keanu Reeves", "Laurence Fishburne"}, m.Actors)
	assert.Equal(t, "tt0133093", m.IMDbID)
	assert.Equal(t, "https://www.imdb.com/title/tt0133093/", m.IMDbURL)
}

func TestReadCSV_YearWindow(t *testing.T) {
	data := "Title,Year\n" +
		"Roundhay Garden Scene,1888\n" +
		"Huge,1e20\n" +
		"Far Future,12345\n" +
		"Negative,-5\n" +
		"Overflow,99999999999999999999\n" +
		"Spreadsheet,1865.0\n"

	list, report, err := ReadCSV(strings.NewReader(data), LoadReport{})
	require.NoError(t, err)
	require.Len(t, list, 6)

	assert.Equal(t, 1888, *list[0].Year)
	assert.Equal(t, 1865, *list[5].Year)
	for _, m := range list[1:5] {
		assert.Nil(t, m.Year, m.Title)
	}

	require.Len(t, report.Warnings, 4)
	for _, w := range report.Warnings {
		assert.Equal(t, "Year", w.Column)
		assert.Equal(t, "year out of range", w.Reason, w.Value)
	}
}

func TestReadCSV_ExplicitURLWins(t *testing.T) {
	data := "Title,imdbID,imdb_url\nArrival,tt2543164,https://imdb.example/arrival\n"

	list, _, err := ReadCSV(strings.NewReader(data), LoadReport{})
	require.NoError(t, err)
	assert.Equal(t, "https://imdb.example/arrival", list[0].IMDbURL)
}

func TestReadCSV_ActorColumnsInNumericOrder(t *testing.T) {
	data := "Title,Actor10,Actor2,Actor1\nEnsemble,Tenth,Second,First\n"

	list, _, err := ReadCSV(strings.NewReader(data), LoadReport{})
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second", "Tenth"}, list[0].Actors)
}

func TestReadCSV_Failures(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "empty file", data: "", want: "empty file"},
		{name: "no title column", data: "Name,Year\nDune,2021\n", want: "missing Title column"},
		{name: "header only", data: "Title,Year\n", want: "no parseable rows"},
		{name: "only blank titles", data: "Title,Year\n,2021\n  ,2022\n", want: "no parseable rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadCSV(strings.NewReader(tt.data), LoadReport{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Path, "nope.csv")
}

func TestLoad_DispatchesOnFormat(t *testing.T) {
	path := writeFile(t, "catalog.txt", "Title\nDune\n")

	list, report, err := Load(context.Background(), config.DatasetConfig{Path: path, Format: "csv"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, FormatCSV, report.Format)

	_, _, err = Load(context.Background(), config.DatasetConfig{Path: path, Format: "parquet"})
	assert.ErrorIs(t, err, ErrDataLoad)
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		path, format, want string
	}{
		{"movies.csv", "auto", FormatCSV},
		{"movies.db", "", FormatSQLite},
		{"movies.SQLITE", "auto", FormatSQLite},
		{"movies.sqlite3", "AUTO", FormatSQLite},
		{"movies.db", "csv", FormatCSV},
		{"movies.csv", "sqlite", FormatSQLite},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.path, tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s/%s", tt.path, tt.format)
	}
}
