package ranker

import (
	"sort"

	"github.com/streambinder/lyricsfinder/entity"
)

// Rank sorts candidates by release date, oldest first:
// dates compare as strings, so "1990" < "1990-03-01",
// and candidates with an unknown date come last;
// the sort is stable and the input is left untouched
func Rank(items []entity.EnrichedCandidate) []entity.EnrichedCandidate {
	ranked := make([]entity.EnrichedCandidate, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

func less(a, b entity.EnrichedCandidate) bool {
	aMissing, bMissing := len(a.ReleaseDate) == 0, len(b.ReleaseDate) == 0
	if aMissing != bMissing {
		return bMissing
	}
	return a.ReleaseDate < b.ReleaseDate
}
