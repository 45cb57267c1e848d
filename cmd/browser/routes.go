package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	movieDelivery "github.com/martinmanurung/cinecatalog/internal/domain/movies/delivery"
	"github.com/martinmanurung/cinecatalog/internal/platform/metrics"
	appMiddleware "github.com/martinmanurung/cinecatalog/pkg/middleware"
	"github.com/martinmanurung/cinecatalog/pkg/response"
)

type healthChecker interface {
	Count() int
}

func setupRoutes(e *echo.Echo, pageHandler *movieDelivery.PageHandler, movieHandler *movieDelivery.MovieHandler, catalog healthChecker, m *metrics.Metrics) {
	// Middleware
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(appMiddleware.RequestID())
	e.Use(middleware.Gzip())

	// Custom error handler
	e.HTTPErrorHandler = response.CustomErrorHandler

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
			"movies": catalog.Count(),
		})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Poster grid
	e.GET("/", pageHandler.Browse)

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.GET("/movies", movieHandler.GetMovieList) // GET /api/v1/movies?q=&genre=&actor=&year_min=&year_max=&sort=&dir=&random=&count=
		v1.GET("/facets", movieHandler.GetFacets)    // GET /api/v1/facets
		v1.GET("/genres", movieHandler.GetAllGenres) // GET /api/v1/genres
		v1.GET("/actors", movieHandler.GetAllActors) // GET /api/v1/actors
	}
}
