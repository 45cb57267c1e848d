package dataset

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
)

// Column aliases, matched case-insensitively. The first header found wins.
var (
	titleCols   = []string{"title"}
	yearCols    = []string{"year"}
	genreCols   = []string{"genre", "genres"}
	actorsCols  = []string{"actors", "cast"}
	ratingCols  = []string{"imdbrating", "rating", "imdb_rating"}
	posterCols  = []string{"poster", "posterurl", "poster_url"}
	imdbIDCols  = []string{"imdbid", "imdb_id"}
	imdbURLCols = []string{"imdburl", "imdb_url", "url"}
)

const notAvailable = "N/A"

// header resolves column names to positions
type header struct {
	title, year, genre, actors, rating, poster, imdbID, imdbURL int
	// Actor1..ActorN in numeric order
	actorN []int
}

func newHeader(names []string) (header, bool) {
	idx := make(map[string]int, len(names))
	type numbered struct{ n, pos int }
	var actorN []numbered

	for i, name := range names {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
		if rest, ok := strings.CutPrefix(key, "actor"); ok && rest != "" {
			if n, err := strconv.Atoi(rest); err == nil {
				actorN = append(actorN, numbered{n: n, pos: i})
			}
		}
	}

	find := func(aliases []string) int {
		for _, a := range aliases {
			if i, ok := idx[a]; ok {
				return i
			}
		}
		return -1
	}

	h := header{
		title:   find(titleCols),
		year:    find(yearCols),
		genre:   find(genreCols),
		actors:  find(actorsCols),
		rating:  find(ratingCols),
		poster:  find(posterCols),
		imdbID:  find(imdbIDCols),
		imdbURL: find(imdbURLCols),
	}
	sort.Slice(actorN, func(i, j int) bool { return actorN[i].n < actorN[j].n })
	for _, a := range actorN {
		h.actorN = append(h.actorN, a.pos)
	}
	return h, h.title >= 0
}

// parser turns raw rows into movies, collecting warnings on the way
type parser struct {
	h        header
	warnings []RowWarning
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parse returns false when the row has no title and must be skipped.
func (p *parser) parse(rowNum int, row []string) (movies.Movie, bool) {
	title := field(row, p.h.title)
	if title == "" {
		p.warn(rowNum, "Title", "", "empty title, row skipped")
		return movies.Movie{}, false
	}

	m := movies.Movie{
		Title:  title,
		Genres: splitList(field(row, p.h.genre)),
		IMDbID: field(row, p.h.imdbID),
	}

	if raw := field(row, p.h.year); raw != "" && raw != notAvailable {
		if y, reason := parseYear(raw); reason == "" {
			m.Year = &y
		} else {
			p.warn(rowNum, "Year", raw, reason)
		}
	}

	if raw := field(row, p.h.rating); raw != "" && raw != notAvailable {
		r, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil || math.IsNaN(r):
			p.warn(rowNum, "Rating", raw, "unparsable rating")
		case r < 0 || r > 10:
			p.warn(rowNum, "Rating", raw, "rating out of range")
		default:
			m.Rating = &r
		}
	}

	if poster := field(row, p.h.poster); poster != notAvailable {
		m.PosterURL = poster
	}

	if len(p.h.actorN) > 0 {
		var names []string
		for _, i := range p.h.actorN {
			if a := field(row, i); a != "" {
				names = append(names, a)
			}
		}
		m.Actors = dedupe(names)
	} else {
		m.Actors = splitList(field(row, p.h.actors))
	}

	m.IMDbURL = field(row, p.h.imdbURL)
	if m.IMDbURL == "" {
		m.IMDbURL = movies.IMDbTitleURL(m.IMDbID)
	}

	return m, true
}

func (p *parser) warn(row int, column, value, reason string) {
	p.warnings = append(p.warnings, RowWarning{Row: row, Column: column, Value: value, Reason: reason})
}

// parseYear accepts plain integers and float renderings such as "1999.0"
// produced by spreadsheet exports. A non-empty reason means the value is
// rejected.
func parseYear(raw string) (int, string) {
	y, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, "unparsable year"
		}
		if f < movies.MinYear || f > movies.MaxYear {
			return 0, "year out of range"
		}
		y = int(f)
	}
	if y < movies.MinYear || y > movies.MaxYear {
		return 0, "year out of range"
	}
	return y, ""
}

func splitList(raw string) []string {
	if raw == "" || raw == notAvailable {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return dedupe(out)
}

// dedupe drops case-insensitive repeats, keeping the first spelling
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		k := strings.ToLower(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
