package delivery

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/martinmanurung/cinecatalog/internal/domain/movies"
	"github.com/martinmanurung/cinecatalog/internal/platform/config"
	"github.com/martinmanurung/cinecatalog/pkg/middleware"
	"github.com/martinmanurung/cinecatalog/pkg/response"
)

//go:embed templates/browse.html
var templateFS embed.FS

var browseTemplate = template.Must(template.New("browse.html").Funcs(template.FuncMap{
	"eqFold": strings.EqualFold,
}).ParseFS(templateFS, "templates/browse.html"))

type sortOption struct {
	Value string
	Label string
}

var sortOptions = []sortOption{
	{Value: string(movies.SortTitle), Label: "Title"},
	{Value: string(movies.SortYear), Label: "Year"},
	{Value: string(movies.SortRating), Label: "IMDB Rating"},
	{Value: "none", Label: "Dataset order"},
}

type pageData struct {
	Request       movies.BrowseRequest
	Facets        *movies.Facets
	Result        *movies.BrowseResult
	CatalogLoaded bool
	Columns       int
	Sort          string
	Sorts         []sortOption
	YearMin       string
	YearMax       string
	YearFloor     string
	YearCeil      string
	Count         int
	RandomMax     int
}

// PageHandler renders the poster grid
type PageHandler struct {
	usecase MovieUsecase
	cfg     config.BrowseConfig
}

func NewPageHandler(usecase MovieUsecase, cfg config.BrowseConfig) *PageHandler {
	return &PageHandler{
		usecase: usecase,
		cfg:     cfg,
	}
}

// Browse renders the catalog page for the current query string
// GET /
func (h *PageHandler) Browse(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindBrowseRequest(c)
	if err != nil {
		return response.FromError(c, err)
	}
	state := h.usecase.NewFilterState(req)

	facets, err := h.usecase.GetFacets(ctx)
	if err != nil {
		return response.FromError(c, err)
	}

	result, err := h.usecase.Browse(ctx, state)
	if err != nil {
		return response.FromError(c, err)
	}

	data := pageData{
		Request:       req,
		Facets:        facets,
		Result:        result,
		CatalogLoaded: facets.Movies > 0,
		Columns:       h.cfg.Columns,
		Sort:          string(state.Sort),
		Sorts:         sortOptions,
		YearMin:       requestedYear(req.YearMin),
		YearMax:       requestedYear(req.YearMax),
		YearFloor:     catalogYear(facets.YearMin),
		YearCeil:      catalogYear(facets.YearMax),
		Count:         req.Count,
		RandomMax:     h.cfg.RandomMax,
	}
	if data.Columns < 1 {
		data.Columns = 5
	}
	if data.Sort == "" {
		data.Sort = "none"
	}
	if data.Count < 1 {
		data.Count = h.cfg.RandomCount
	}

	var buf bytes.Buffer
	if err := browseTemplate.Execute(&buf, data); err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("Failed to render browse page")
		return response.InternalServerError(err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// requestedYear echoes a year bound back into the form. Unset bounds stay
// empty so resubmitting the form does not switch the year filter on.
func requestedYear(year int) string {
	if year > 0 {
		return strconv.Itoa(year)
	}
	return ""
}

func catalogYear(year *int) string {
	if year != nil {
		return strconv.Itoa(*year)
	}
	return ""
}
