package delivery

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
	"github.com/martinmanurung/cinecatalog/pkg/response"
	"github.com/martinmanurung/cinecatalog/pkg/validator"
)

type MovieUsecase interface {
	NewFilterState(req movies.BrowseRequest) movies.FilterState
	Browse(ctx context.Context, state movies.FilterState) (*movies.BrowseResult, error)
	GetFacets(ctx context.Context) (*movies.Facets, error)
	GetAllGenres(ctx context.Context) (*movies.GenreListResponse, error)
	GetAllActors(ctx context.Context) (*movies.ActorListResponse, error)
}

type MovieHandler struct {
	usecase MovieUsecase
}

func NewMovieHandler(usecase MovieUsecase) *MovieHandler {
	return &MovieHandler{
		usecase: usecase,
	}
}

// GetMovieList runs the browse pipeline and returns the cards as JSON
// GET /api/v1/movies?q=dune&genre=sci-fi&year_min=2015&sort=year&dir=desc&random=true&count=3
func (h *MovieHandler) GetMovieList(c echo.Context) error {
	state, err := bindFilterState(c, h.usecase)
	if err != nil {
		return response.FromError(c, err)
	}

	result, err := h.usecase.Browse(c.Request().Context(), state)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, http.StatusOK, "success", result)
}

// GetFacets returns genres, actors and the year bounds of the catalog
// GET /api/v1/facets
func (h *MovieHandler) GetFacets(c echo.Context) error {
	result, err := h.usecase.GetFacets(c.Request().Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, http.StatusOK, "success", result)
}

// GetAllGenres returns all available genres
// GET /api/v1/genres
func (h *MovieHandler) GetAllGenres(c echo.Context) error {
	result, err := h.usecase.GetAllGenres(c.Request().Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, http.StatusOK, "success", result)
}

// GetAllActors returns all available actors
// GET /api/v1/actors
func (h *MovieHandler) GetAllActors(c echo.Context) error {
	result, err := h.usecase.GetAllActors(c.Request().Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, http.StatusOK, "success", result)
}

// bindFilterState binds and validates the browse query string
func bindFilterState(c echo.Context, u MovieUsecase) (movies.FilterState, error) {
	req, err := bindBrowseRequest(c)
	if err != nil {
		return movies.FilterState{}, err
	}
	return u.NewFilterState(req), nil
}

func bindBrowseRequest(c echo.Context) (movies.BrowseRequest, error) {
	var req movies.BrowseRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return req, response.NewError(http.StatusBadRequest, "invalid_query", err.Error())
	}

	if err := c.Validate(&req); err != nil {
		details := interface{}(err.Error())
		if fields := validator.FieldErrors(err); fields != nil {
			details = fields
		}
		return req, response.NewError(http.StatusBadRequest, "validation_failed", details)
	}

	if req.YearMin > 0 && req.YearMax > 0 && req.YearMin > req.YearMax {
		return req, response.NewError(http.StatusBadRequest, "validation_failed",
			map[string]string{"YearMax": "gtefield"})
	}
	return req, nil
}
