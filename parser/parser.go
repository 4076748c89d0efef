package parser

import (
	"regexp"
	"strings"

	"github.com/streambinder/lyricsfinder/entity"
)

// Confidence tags how much a rule can be trusted:
// rules are evaluated from the most to the least confident one
type Confidence int

const (
	Guess Confidence = iota
	Low
	Medium
	High
)

func (confidence Confidence) String() string {
	switch confidence {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	default:
		return "guess"
	}
}

// Match is a parsed candidate, along with the rule that produced it
type Match struct {
	entity.Candidate
	Rule       string
	Confidence Confidence
}

// Parser extracts (title, artist) pairs out of search results
type Parser struct {
	// Policy decides which side of an ambiguous
	// separator split holds the title
	Policy SidePolicy
}

type rule struct {
	name       string
	confidence Confidence
	match      func(*Parser, string, string) (string, string, bool)
}

const separators = " -–—|:•"

var (
	quotedPattern    = regexp.MustCompile(`(?i)["“]([^"“”]+)["”]\s+by\s+(.+)`)
	byPattern        = regexp.MustCompile(`(?i)(.+)\s+by\s+(.+)`)
	separatorPattern = regexp.MustCompile(`\s+[-–—|:•]\s+`)
	keywordPattern   = regexp.MustCompile(`(?i)\b(?:lyrics|song|official)\b`)
	parenPattern     = regexp.MustCompile(`\(.*?\)`)
	lyricsPattern    = regexp.MustCompile(`(?i)\s*lyrics$`)
	artistTailRegex  = regexp.MustCompile(`\.|,| with | [-–—]\s| \|`)

	rules = []rule{
		{"quoted", High, (*Parser).quoted},
		{"by", Medium, (*Parser).by},
		{"separator", Low, (*Parser).separator},
		{"colon", Guess, (*Parser).colon},
	}

	std = &Parser{}
)

func New(policy SidePolicy) *Parser {
	return &Parser{Policy: policy}
}

// Parse guesses song title and artist out of a search result title and snippet,
// using the first rule which matches
func Parse(title, snippet string) (Match, bool) {
	return std.Parse(title, snippet)
}

// Extract parses every result, dropping the ones which yield nothing,
// preserving results order
func Extract(results []entity.SearchResult) []entity.Candidate {
	return std.Extract(results)
}

func (parser *Parser) Parse(title, snippet string) (Match, bool) {
	title, snippet = collapse(title), collapse(snippet)
	for _, rule := range rules {
		songTitle, artist, ok := rule.match(parser, title, snippet)
		if !ok {
			continue
		}

		// only the leading clause of the artist is kept,
		// snippets tend to run into unrelated sentences
		artist = strings.TrimSpace(artistTailRegex.Split(artist, 2)[0])
		songTitle = strings.TrimSpace(lyricsPattern.ReplaceAllString(strings.TrimSpace(songTitle), ""))
		if len(songTitle) == 0 || len(artist) == 0 {
			return Match{}, false
		}
		return Match{
			Candidate:  entity.Candidate{Title: songTitle, Artist: artist},
			Rule:       rule.name,
			Confidence: rule.confidence,
		}, true
	}
	return Match{}, false
}

func (parser *Parser) Extract(results []entity.SearchResult) []entity.Candidate {
	candidates := make([]entity.Candidate, 0, len(results))
	for _, result := range results {
		if match, ok := parser.Parse(result.Title, result.Snippet); ok {
			candidates = append(candidates, match.Candidate)
		}
	}
	return candidates
}

// "Title" by Artist
func (parser *Parser) quoted(title, snippet string) (string, string, bool) {
	for _, text := range []string{snippet, title} {
		if match := quotedPattern.FindStringSubmatch(text); match != nil {
			return strings.TrimSpace(match[1]), strings.TrimSpace(match[2]), true
		}
	}
	return "", "", false
}

// Title by Artist
func (parser *Parser) by(title, snippet string) (string, string, bool) {
	for _, text := range []string{snippet, title} {
		if match := byPattern.FindStringSubmatch(text); match != nil {
			return Clean(match[1]), Clean(match[2]), true
		}
	}
	return "", "", false
}

// Title Lyrics - Artist, Artist | Title, ...
func (parser *Parser) separator(title, _ string) (string, string, bool) {
	parts := separatorPattern.Split(Clean(title), -1)
	if len(parts) < 2 {
		return "", "", false
	}

	left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if len(left) == 0 || len(right) == 0 {
		return "", "", false
	}
	if keywordPattern.MatchString(left) {
		return left, right, true
	}
	songTitle, artist := parser.Policy.Assign(left, right)
	return songTitle, artist, true
}

// Title: Artist or Artist: Title, the longer side being the artist
func (parser *Parser) colon(title, _ string) (string, string, bool) {
	left, right, ok := strings.Cut(Clean(title), ":")
	if !ok {
		return "", "", false
	}

	left = strings.TrimSpace(strings.Trim(left, separators))
	right = strings.TrimSpace(strings.Trim(right, separators))
	if words(left) > words(right) {
		return right, left, true
	}
	return left, right, true
}

// Clean collapses whitespaces, strips parenthetical remarks,
// a trailing "lyrics" and surrounding separators
func Clean(text string) string {
	text = collapse(parenPattern.ReplaceAllString(collapse(text), ""))
	text = strings.Trim(text, separators)
	text = lyricsPattern.ReplaceAllString(text, "")
	return strings.Trim(text, separators)
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func words(text string) int {
	return len(strings.Fields(text))
}
