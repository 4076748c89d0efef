package dedup

import (
	"regexp"
	"strings"

	"github.com/streambinder/lyricsfinder/entity"
)

// MaxMatches is the largest amount of distinct candidates
// worth enriching: more than that means the phrase is too vague
const MaxMatches = 15

var illegalChars = regexp.MustCompile(`[^a-z0-9 ]+`)

// Key canonicalizes a candidate for equality testing:
// candidates which only differ in case, punctuation or spacing
// share the same key
func Key(candidate entity.Candidate) entity.Key {
	return entity.Key{
		Title:  normalize(candidate.Title),
		Artist: normalize(candidate.Artist),
	}
}

// Dedup drops every candidate whose key has already been seen,
// keeping the first occurrence and the original order
func Dedup(candidates []entity.Candidate) []entity.Candidate {
	var (
		seen   = make(map[entity.Key]bool, len(candidates))
		unique = make([]entity.Candidate, 0, len(candidates))
	)
	for _, candidate := range candidates {
		key := Key(candidate)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, candidate)
	}
	return unique
}

func normalize(text string) string {
	text = illegalChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "")
	return strings.Join(strings.Fields(text), " ")
}
