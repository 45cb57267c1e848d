package movies

import (
	"cmp"
	"slices"
	"strings"
)

// ParseSortKey maps a user supplied key to a SortKey. Unknown keys map to
// SortNone.
func ParseSortKey(v string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(v))) {
	case SortTitle:
		return SortTitle
	case SortYear:
		return SortYear
	case SortRating:
		return SortRating
	default:
		return SortNone
	}
}

// ParseDirection maps a user supplied direction; anything but "desc" is Asc.
func ParseDirection(v string) Direction {
	if strings.EqualFold(strings.TrimSpace(v), string(Desc)) {
		return Desc
	}
	return Asc
}

// Sort returns a stably sorted copy of rs. Movies without a value for the
// key are placed last in either direction and keep their relative order.
func Sort(rs ResultSet, key SortKey, dir Direction) ResultSet {
	out := slices.Clone(rs)
	if key == SortNone {
		return out
	}

	slices.SortStableFunc(out, func(a, b *Movie) int {
		an, bn := isNull(a, key), isNull(b, key)
		switch {
		case an && bn:
			return 0
		case an:
			return 1
		case bn:
			return -1
		}

		c := compareBy(a, b, key)
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}

func isNull(m *Movie, key SortKey) bool {
	switch key {
	case SortYear:
		return m.Year == nil
	case SortRating:
		return m.Rating == nil
	default:
		return false
	}
}

func compareBy(a, b *Movie, key SortKey) int {
	switch key {
	case SortYear:
		return cmp.Compare(*a.Year, *b.Year)
	case SortRating:
		return cmp.Compare(*a.Rating, *b.Rating)
	default:
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	}
}
