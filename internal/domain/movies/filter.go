package movies

import "strings"

// Active reports whether any filter criterion is set.
func (s FilterState) Active() bool {
	return strings.TrimSpace(s.Search) != "" ||
		selected(s.Genre) != "" ||
		selected(s.Actor) != "" ||
		s.YearMin != nil || s.YearMax != nil
}

// Filter applies every active criterion of state to all (logical AND) and
// returns the matching movies in source order. With no active criteria the
// whole collection is returned.
func Filter(all []Movie, state FilterState) ResultSet {
	search := strings.ToLower(strings.TrimSpace(state.Search))
	genre := selected(state.Genre)
	actor := selected(state.Actor)
	yearActive := state.YearMin != nil || state.YearMax != nil

	out := make(ResultSet, 0, len(all))
	for i := range all {
		m := &all[i]

		if search != "" && !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		if genre != "" && !containsFold(m.Genres, genre) {
			continue
		}
		if actor != "" && !containsFold(m.Actors, actor) {
			continue
		}
		if yearActive {
			if m.Year == nil {
				continue
			}
			if state.YearMin != nil && *m.Year < *state.YearMin {
				continue
			}
			if state.YearMax != nil && *m.Year > *state.YearMax {
				continue
			}
		}

		out = append(out, m)
	}
	return out
}

// selected normalizes a dropdown value; "" and "any" both mean unset.
func selected(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, AnyValue) {
		return ""
	}
	return v
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
