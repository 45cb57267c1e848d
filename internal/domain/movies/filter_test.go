package movies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func titles(rs ResultSet) []string {
	out := make([]string, 0, len(rs))
	for _, m := range rs {
		out = append(out, m.Title)
	}
	return out
}

func duneAndHer() []Movie {
	return []Movie{
		{Title: "Dune", Year: intp(2021), Rating: floatp(8.0), Genres: []string{"Sci-Fi"}, Actors: []string{"Timothée Chalamet", "Zendaya"}},
		{Title: "Her", Year: intp(2013), Rating: floatp(8.0), Genres: []string{"Drama"}, Actors: []string{"Joaquin Phoenix"}},
	}
}

func catalog() []Movie {
	return []Movie{
		{Title: "The Matrix", Year: intp(1999), Rating: floatp(8.7), Genres: []string{"Action", "Sci-Fi"}, Actors: []string{"Keanu Reeves", "Carrie-Anne Moss"}},
		{Title: "John Wick", Year: intp(2014), Rating: floatp(7.4), Genres: []string{"Action", "Thriller"}, Actors: []string{"Keanu Reeves"}},
		{Title: "Arrival", Year: intp(2016), Rating: floatp(7.9), Genres: []string{"Drama", "Sci-Fi"}, Actors: []string{"Amy Adams"}},
		{Title: "Untitled Project", Genres: []string{}, Actors: []string{}},
		{Title: "matrix reloaded", Year: intp(2003), Genres: []string{"Action"}, Actors: []string{"Keanu Reeves"}},
	}
}

func TestFilter_NoCriteriaReturnsEverythingInOrder(t *testing.T) {
	all := catalog()

	for _, state := range []FilterState{
		{},
		{Genre: "any", Actor: "ANY"},
		{Search: "   ", Sort: SortRating, Direction: Desc},
	} {
		rs := Filter(all, state)
		require.Len(t, rs, len(all))
		for i := range all {
			assert.Same(t, &all[i], rs[i])
		}
		assert.False(t, state.Active())
	}
}

func TestFilter_Search(t *testing.T) {
	rs := Filter(catalog(), FilterState{Search: "MATRIX"})
	assert.Equal(t, []string{"The Matrix", "matrix reloaded"}, titles(rs))

	rs = Filter(catalog(), FilterState{Search: "keanu"})
	assert.Empty(t, rs, "search only looks at titles")
}

func TestFilter_Genre(t *testing.T) {
	rs := Filter(catalog(), FilterState{Genre: "sci-fi"})
	assert.Equal(t, []string{"The Matrix", "Arrival"}, titles(rs))
	for _, m := range rs {
		assert.True(t, containsFold(m.Genres, "Sci-Fi"))
	}

	assert.Empty(t, Filter(catalog(), FilterState{Genre: "Sci"}), "genre must match exactly")
}

func TestFilter_Actor(t *testing.T) {
	rs := Filter(catalog(), FilterState{Actor: "keanu reeves"})
	assert.Equal(t, []string{"The Matrix", "John Wick", "matrix reloaded"}, titles(rs))
}

func TestFilter_YearRange(t *testing.T) {
	tests := []struct {
		name string
		min  *int
		max  *int
		want []string
	}{
		{name: "closed", min: intp(2000), max: intp(2015), want: []string{"John Wick", "matrix reloaded"}},
		{name: "inclusive bounds", min: intp(1999), max: intp(2003), want: []string{"The Matrix", "matrix reloaded"}},
		{name: "min only", min: intp(2014), want: []string{"John Wick", "Arrival"}},
		{name: "max only", max: intp(2000), want: []string{"The Matrix"}},
		{name: "empty", min: intp(2030), max: intp(2040), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := Filter(catalog(), FilterState{YearMin: tt.min, YearMax: tt.max})
			assert.Equal(t, tt.want, titles(rs))
			for _, m := range rs {
				assert.NotNil(t, m.Year, "movies without a year are excluded once a range is set")
			}
		})
	}
}

func TestFilter_Conjunction(t *testing.T) {
	rs := Filter(catalog(), FilterState{Search: "matrix", Genre: "Sci-Fi", Actor: "Keanu Reeves", YearMin: intp(1990), YearMax: intp(2010)})
	assert.Equal(t, []string{"The Matrix"}, titles(rs))
}

func TestFilter_Idempotent(t *testing.T) {
	all := catalog()
	state := FilterState{Genre: "Action", YearMin: intp(1990)}

	first := Filter(all, state)
	second := Filter(all, state)
	assert.Equal(t, first, second)
}

func TestFilter_Scenario(t *testing.T) {
	all := duneAndHer()

	assert.Equal(t, []string{"Dune"}, titles(Filter(all, FilterState{Genre: "Sci-Fi"})))
	assert.Equal(t, []string{"Dune"}, titles(Filter(all, FilterState{YearMin: intp(2015), YearMax: intp(2025)})))
}

func TestFilter_DoesNotTouchInput(t *testing.T) {
	all := catalog()
	before := titles(Filter(all, FilterState{}))

	_ = Filter(all, FilterState{Genre: "Drama"})
	assert.Equal(t, before, titles(Filter(all, FilterState{})))
}
