package movies

// Movie represents one row of the movie dataset
type Movie struct {
	Title     string   `json:"title"`
	Year      *int     `json:"year,omitempty"`
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Rating    *float64 `json:"rating,omitempty"`
	PosterURL string   `json:"poster_url,omitempty"`
	IMDbID    string   `json:"imdb_id,omitempty"`
	IMDbURL   string   `json:"imdb_url"`
}

// ResultSet is an ordered view over loaded movies. It is recomputed for
// every request and never modified in place.
type ResultSet []*Movie

// SortKey selects the column a ResultSet is ordered by
type SortKey string

const (
	SortNone   SortKey = ""
	SortTitle  SortKey = "title"
	SortYear   SortKey = "year"
	SortRating SortKey = "rating"
)

// Direction is the sort direction
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// AnyValue disables the genre and actor filters
const AnyValue = "any"

// Years outside MinYear..MaxYear are treated as unknown at load time and
// rejected in requests.
const (
	MinYear = 1
	MaxYear = 9999
)

// FilterState holds the user-selected search, filter and sort criteria
type FilterState struct {
	Search    string
	Genre     string
	Actor     string
	YearMin   *int
	YearMax   *int
	Sort      SortKey
	Direction Direction
	Random    bool
	Count     int
}

// Card is the display unit for one movie
type Card struct {
	Title       string   `json:"title"`
	FullTitle   string   `json:"full_title"`
	Year        string   `json:"year,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	RatingBadge string   `json:"rating_badge"`
	Link        string   `json:"link"`
}

// Facets lists the values available to the filter widgets
type Facets struct {
	Movies  int      `json:"movies"`
	Genres  []string `json:"genres"`
	Actors  []string `json:"actors"`
	YearMin *int     `json:"year_min,omitempty"`
	YearMax *int     `json:"year_max,omitempty"`
}

// Request DTOs

// BrowseRequest represents the query string of the browse page and API
type BrowseRequest struct {
	Search  string `query:"q" validate:"max=200"`
	Genre   string `query:"genre" validate:"max=100"`
	Actor   string `query:"actor" validate:"max=100"`
	YearMin int    `query:"year_min" validate:"omitempty,min=1,max=9999"`
	YearMax int    `query:"year_max" validate:"omitempty,min=1,max=9999"`
	Sort    string `query:"sort" validate:"omitempty,oneof=none title year rating"`
	Dir     string `query:"dir" validate:"omitempty,oneof=asc desc"`
	Random  bool   `query:"random"`
	Count   int    `query:"count" validate:"omitempty,min=1"`
}

// Response DTOs

// BrowseResult is the outcome of one pass through the browse pipeline
type BrowseResult struct {
	Total      int    `json:"total"`
	RandomMode bool   `json:"random_mode"`
	Cards      []Card `json:"cards"`
}

// GenreListResponse represents list of all genres
type GenreListResponse struct {
	Genres []string `json:"genres"`
}

// ActorListResponse represents list of all actors
type ActorListResponse struct {
	Actors []string `json:"actors"`
}
