package cadenza

import (
	"math/rand"

	"github.com/cadenza-ai/cadenza/pkg/cadenza/fuzzy"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/library"
)

// resolveFilters maps each supplied attribute fragment to its best fuzzy
// match among the distinct non-missing values of that column. Fragments
// with no adequate match contribute no filter.
func resolveFilters(q TrackQuery, tracks []library.Track, opts ...fuzzy.Option) map[library.Column]string {
	filters := make(map[library.Column]string)
	for _, col := range library.Columns {
		fragment := q.fragment(col)
		if fragment == "" {
			continue
		}
		res := fuzzy.Match(fragment, library.DistinctValues(tracks, col), opts...)
		if res.Found {
			filters[col] = res.Value
		}
	}
	return filters
}

// SelectTrack picks one catalog row for the query. Every resolved filter
// narrows a selection mask by exact equality; of the rows left, exactly one
// is returned deterministically, several yield a uniformly random pick from
// r, and none reports not-found. The per-column matches are independent, so
// filter application order never changes the mask.
func SelectTrack(q TrackQuery, tracks []library.Track, r *rand.Rand, opts ...fuzzy.Option) (library.Track, bool) {
	if len(tracks) == 0 {
		return library.Track{}, false
	}

	filters := resolveFilters(q, tracks, opts...)

	mask := make([]bool, len(tracks))
	for i := range mask {
		mask[i] = true
	}
	for col, value := range filters {
		for i := range tracks {
			mask[i] = mask[i] && tracks[i].Attr(col) == value
		}
	}

	var matched []int
	for i, keep := range mask {
		if keep {
			matched = append(matched, i)
		}
	}

	switch len(matched) {
	case 0:
		return library.Track{}, false
	case 1:
		return tracks[matched[0]], true
	default:
		return tracks[matched[r.Intn(len(matched))]], true
	}
}
