package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
	"github.com/martinmanurung/cinecatalog/internal/platform/config"
	"github.com/martinmanurung/cinecatalog/internal/platform/dataset"
)

// MovieRepository holds the catalog loaded at startup. It is never written
// after construction, so concurrent readers need no locking.
type MovieRepository struct {
	movies []movies.Movie
	facets movies.Facets
	report dataset.LoadReport
}

func NewMovieRepository(list []movies.Movie) *MovieRepository {
	return &MovieRepository{
		movies: list,
		facets: buildFacets(list),
	}
}

// LoadMovieRepository loads the configured dataset. On failure it still
// returns an empty repository alongside the error, so callers can keep
// serving the "no movies" state.
func LoadMovieRepository(ctx context.Context, cfg config.DatasetConfig) (*MovieRepository, error) {
	list, report, err := dataset.Load(ctx, cfg)
	repo := NewMovieRepository(list)
	repo.report = report
	return repo, err
}

// FindAll returns the full catalog in source order
func (r *MovieRepository) FindAll(ctx context.Context) ([]movies.Movie, error) {
	return r.movies, nil
}

// GetFacets returns the genre, actor and year values present in the catalog
func (r *MovieRepository) GetFacets(ctx context.Context) (movies.Facets, error) {
	return r.facets, nil
}

// Count returns the number of loaded movies
func (r *MovieRepository) Count() int {
	return len(r.movies)
}

// Report returns the summary of the load that built the repository
func (r *MovieRepository) Report() dataset.LoadReport {
	return r.report
}

func buildFacets(list []movies.Movie) movies.Facets {
	f := movies.Facets{
		Movies: len(list),
		Genres: uniqueSorted(list, func(m *movies.Movie) []string { return m.Genres }),
		Actors: uniqueSorted(list, func(m *movies.Movie) []string { return m.Actors }),
	}

	for i := range list {
		y := list[i].Year
		if y == nil {
			continue
		}
		if f.YearMin == nil || *y < *f.YearMin {
			v := *y
			f.YearMin = &v
		}
		if f.YearMax == nil || *y > *f.YearMax {
			v := *y
			f.YearMax = &v
		}
	}
	return f
}

// uniqueSorted collects values case-insensitively, keeping the first
// spelling seen, ordered alphabetically.
func uniqueSorted(list []movies.Movie, pick func(*movies.Movie) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for i := range list {
		for _, v := range pick(&list[i]) {
			k := strings.ToLower(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
