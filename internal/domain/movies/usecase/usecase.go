package usecase

import (
	"context"

	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
	"github.com/martinmanurung/cinecatalog/internal/platform/config"
	"github.com/martinmanurung/cinecatalog/pkg/response"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]movies.Movie, error)
	GetFacets(ctx context.Context) (movies.Facets, error)
}

type MetricsRecorder interface {
	ObserveBrowse(random bool, matched int)
}

type MovieUsecase struct {
	repo    MovieRepository
	metrics MetricsRecorder
	cfg     config.BrowseConfig
	sampler movies.Sampler
}

func NewMovieUsecase(repo MovieRepository, metrics MetricsRecorder, cfg config.BrowseConfig) *MovieUsecase {
	return &MovieUsecase{
		repo:    repo,
		metrics: metrics,
		cfg:     cfg,
		sampler: movies.DefaultSampler,
	}
}

// WithSampler replaces the random source, for deterministic tests
func (u *MovieUsecase) WithSampler(s movies.Sampler) *MovieUsecase {
	u.sampler = s
	return u
}

// NewFilterState converts a validated request into a FilterState, filling
// the sort key and sample size from the browse defaults.
func (u *MovieUsecase) NewFilterState(req movies.BrowseRequest) movies.FilterState {
	state := movies.FilterState{
		Search:    req.Search,
		Genre:     req.Genre,
		Actor:     req.Actor,
		Sort:      movies.ParseSortKey(req.Sort),
		Direction: movies.ParseDirection(req.Dir),
		Random:    req.Random,
		Count:     req.Count,
	}
	if req.YearMin > 0 {
		v := req.YearMin
		state.YearMin = &v
	}
	if req.YearMax > 0 {
		v := req.YearMax
		state.YearMax = &v
	}
	if req.Sort == "" {
		state.Sort = movies.ParseSortKey(u.cfg.DefaultSort)
	}
	return state
}

// Browse runs filter, then sort or random sampling, then card rendering.
// Total is the number of movies that passed the filters; in random mode
// Cards holds only the drawn sample, ordered by the sort key when one is set.
func (u *MovieUsecase) Browse(ctx context.Context, state movies.FilterState) (*movies.BrowseResult, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, response.InternalServerError(err)
	}

	rs := movies.Filter(all, state)
	total := len(rs)

	if state.Random {
		rs = movies.SampleRandom(rs, u.sampleSize(state.Count), u.sampler)
	}
	rs = movies.Sort(rs, state.Sort, state.Direction)

	if u.metrics != nil {
		u.metrics.ObserveBrowse(state.Random, total)
	}

	return &movies.BrowseResult{
		Total:      total,
		RandomMode: state.Random,
		Cards:      movies.RenderCards(rs, u.cfg.TitleMaxLen),
	}, nil
}

// GetFacets returns the values offered by the filter widgets
func (u *MovieUsecase) GetFacets(ctx context.Context) (*movies.Facets, error) {
	f, err := u.repo.GetFacets(ctx)
	if err != nil {
		return nil, response.InternalServerError(err)
	}
	return &f, nil
}

// GetAllGenres returns all genres present in the catalog
func (u *MovieUsecase) GetAllGenres(ctx context.Context) (*movies.GenreListResponse, error) {
	f, err := u.GetFacets(ctx)
	if err != nil {
		return nil, err
	}
	return &movies.GenreListResponse{Genres: f.Genres}, nil
}

// GetAllActors returns all actors present in the catalog
func (u *MovieUsecase) GetAllActors(ctx context.Context) (*movies.ActorListResponse, error) {
	f, err := u.GetFacets(ctx)
	if err != nil {
		return nil, err
	}
	return &movies.ActorListResponse{Actors: f.Actors}, nil
}

func (u *MovieUsecase) sampleSize(n int) int {
	if n < 1 {
		n = u.cfg.RandomCount
	}
	if n < 1 {
		n = 1
	}
	if u.cfg.RandomMax > 0 && n > u.cfg.RandomMax {
		n = u.cfg.RandomMax
	}
	return n
}
