package parser

import (
	"testing"

	"github.com/streambinder/lyricsfinder/entity"
	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "Song Title", Clean("  Song   Title (Live at Wembley)  Lyrics "))
	assert.Equal(t, "Song Title", Clean("- Song Title |"))
	assert.Equal(t, "Song Title", Clean("Song Title LYRICS -"))
	assert.Equal(t, "Song • Artist", Clean("• Song • Artist •"))
	assert.Empty(t, Clean("(Official Video)"))
	assert.Empty(t, Clean(""))
}

func TestParseQuotedPrecedence(t *testing.T) {
	match, ok := Parse(
		"Queen - Bohemian Rhapsody (Official Video)",
		`"Bohemian Rhapsody" by Queen. From the album A Night at the Opera.`,
	)
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Bohemian Rhapsody", Artist: "Queen"}, match.Candidate)
	assert.Equal(t, "quoted", match.Rule)
	assert.Equal(t, High, match.Confidence)
}

func TestParseQuotedInTitle(t *testing.T) {
	match, ok := Parse(`“Hello” BY Adele with lyrics`, "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Hello", Artist: "Adele"}, match.Candidate)
	assert.Equal(t, "quoted", match.Rule)
}

func TestParseBy(t *testing.T) {
	match, ok := Parse("Genius", "Yesterday Lyrics by The Beatles, from the album Help!")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Yesterday", Artist: "The Beatles"}, match.Candidate)
	assert.Equal(t, "by", match.Rule)
	assert.Equal(t, Medium, match.Confidence)

	match, ok = Parse("Wonderwall (Remastered) by Oasis - Songfacts", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Wonderwall", Artist: "Oasis"}, match.Candidate)
}

func TestParseSeparatorKeyword(t *testing.T) {
	match, ok := Parse("Shape of You Lyrics - Ed Sheeran", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Shape of You", Artist: "Ed Sheeran"}, match.Candidate)
	assert.Equal(t, "separator", match.Rule)
	assert.Equal(t, Low, match.Confidence)

	match, ok = Parse("Bohemian Rhapsody (Remastered 2011) Lyrics – Queen | AZLyrics", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Bohemian Rhapsody", Artist: "Queen"}, match.Candidate)

	match, ok = Parse("Official Song Title - The Band", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Official Song Title", Artist: "The Band"}, match.Candidate)
}

func TestParseSeparatorWordCount(t *testing.T) {
	match, ok := Parse("Queen - Bohemian Rhapsody", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Queen", Artist: "Bohemian Rhapsody"}, match.Candidate)

	match, ok = Parse("Hotel California | Eagles", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Eagles", Artist: "Hotel California"}, match.Candidate)

	// same word count, left is the title
	match, ok = Parse("Hello • Adele", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Hello", Artist: "Adele"}, match.Candidate)
}

func TestParseSeparatorPolicy(t *testing.T) {
	parser := New(FewerWordsArtist)

	match, ok := parser.Parse("Queen - Bohemian Rhapsody", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Bohemian Rhapsody", Artist: "Queen"}, match.Candidate)

	match, ok = parser.Parse("Hotel California | Eagles", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Hotel California", Artist: "Eagles"}, match.Candidate)

	// keywords win over the policy
	match, ok = parser.Parse("Shape of You Lyrics - Ed Sheeran", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Shape of You", Artist: "Ed Sheeran"}, match.Candidate)
}

func TestParseColon(t *testing.T) {
	match, ok := Parse("Imagine: John Lennon", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Imagine", Artist: "John Lennon"}, match.Candidate)
	assert.Equal(t, "colon", match.Rule)
	assert.Equal(t, Guess, match.Confidence)

	match, ok = Parse("John Lennon Band:Imagine", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Imagine", Artist: "John Lennon Band"}, match.Candidate)
}

func TestParseColonSeparatorRuns(t *testing.T) {
	match, ok := Parse("a :: b", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "a", Artist: "b"}, match.Candidate)

	match, ok = Parse("Imagine :| John Lennon", "")
	assert.True(t, ok)
	assert.Equal(t, entity.Candidate{Title: "Imagine", Artist: "John Lennon"}, match.Candidate)

	_, ok = Parse("Imagine ::", "")
	assert.False(t, ok)
}

func TestParseNone(t *testing.T) {
	for _, title := range []string{"", "   ", "just some words", "Lyrics - Someone", "(Live) by Someone", "Song:"} {
		_, ok := Parse(title, "")
		assert.False(t, ok, title)
	}
}

func TestExtract(t *testing.T) {
	assert.Equal(t, []entity.Candidate{
		{Title: "Shape of You", Artist: "Ed Sheeran"},
		{Title: "Bohemian Rhapsody", Artist: "Queen"},
	}, Extract([]entity.SearchResult{
		{Title: "Shape of You Lyrics - Ed Sheeran"},
		{Title: "nothing to see here"},
		{Title: "Queen", Snippet: `"Bohemian Rhapsody" by Queen.`, Source: entity.Fallback},
	}))
	assert.Empty(t, Extract(nil))
}

func TestSidePolicy(t *testing.T) {
	policy, err := ParseSidePolicy("Fewer-Words-Artist")
	assert.Nil(t, err)
	assert.Equal(t, FewerWordsArtist, policy)
	assert.Equal(t, "fewer-words-artist", policy.String())

	policy, err = ParseSidePolicy("")
	assert.Nil(t, err)
	assert.Equal(t, FewerWordsTitle, policy)

	_, err = ParseSidePolicy("longest")
	assert.Error(t, err)
}
