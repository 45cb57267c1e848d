package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
)

// LoadCSV reads a movie CSV file with a header row. Columns are looked up
// by name, so their order does not matter.
func LoadCSV(path string) ([]movies.Movie, LoadReport, error) {
	report := LoadReport{Path: path, Format: FormatCSV}

	f, err := os.Open(path)
	if err != nil {
		return nil, report, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	list, report, err := ReadCSV(f, report)
	if err != nil {
		return nil, report, &LoadError{Path: path, Err: err}
	}
	return list, report, nil
}

// ReadCSV parses CSV data from r into movies.
func ReadCSV(r io.Reader, report LoadReport) ([]movies.Movie, LoadReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	names, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, report, errors.New("empty file")
		}
		return nil, report, fmt.Errorf("read header: %w", err)
	}

	h, ok := newHeader(names)
	if !ok {
		return nil, report, errors.New("missing Title column")
	}

	p := &parser{h: h}
	var list []movies.Movie
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("read row %d: %w", report.Rows+1, err)
		}
		report.Rows++
		if m, ok := p.parse(report.Rows, row); ok {
			list = append(list, m)
		}
	}

	report.Loaded = len(list)
	report.Warnings = p.warnings
	if len(list) == 0 {
		return nil, report, errors.New("no parseable rows")
	}
	return list, report, nil
}
