package movies

import (
	"strconv"
	"strings"
)

// DefaultTitleMaxLen is the longest title a card shows unshortened.
const DefaultTitleMaxLen = 25

const imdbTitleURL = "https://www.imdb.com/title/"

// IMDbTitleURL builds the title page link for an IMDb id such as tt1160419.
func IMDbTitleURL(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	return imdbTitleURL + id + "/"
}

// RenderCard formats m for display. Titles longer than maxLen runes are
// shortened to their first 16 and last 4 runes.
func RenderCard(m *Movie, maxLen int) Card {
	if maxLen <= 0 {
		maxLen = DefaultTitleMaxLen
	}

	c := Card{
		Title:       ShortenTitle(m.Title, maxLen),
		FullTitle:   m.Title,
		PosterURL:   m.PosterURL,
		Rating:      m.Rating,
		RatingBadge: RatingBadge(m.Rating),
		Link:        m.IMDbURL,
	}
	if m.Year != nil {
		c.Year = strconv.Itoa(*m.Year)
	}
	return c
}

// RenderCards formats every movie of rs.
func RenderCards(rs ResultSet, maxLen int) []Card {
	cards := make([]Card, 0, len(rs))
	for _, m := range rs {
		cards = append(cards, RenderCard(m, maxLen))
	}
	return cards
}

// ShortenTitle keeps titles up to maxLen runes as they are.
func ShortenTitle(title string, maxLen int) string {
	r := []rune(title)
	if len(r) <= maxLen || len(r) <= 20 {
		return title
	}
	return string(r[:16]) + "..." + string(r[len(r)-4:])
}

// RatingBadge is the rating label shown on a card, "N/A" when unknown.
func RatingBadge(rating *float64) string {
	if rating == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*rating, 'f', 1, 64)
}
