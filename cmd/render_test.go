package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/streambinder/lyricsfinder/config"
	"github.com/streambinder/lyricsfinder/entity"
	"github.com/streambinder/lyricsfinder/finder"
	"github.com/streambinder/lyricsfinder/parser"
	"github.com/streambinder/lyricsfinder/util/anchor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func output(fn func(*anchor.Anchor)) []string {
	var buffer bytes.Buffer
	fn(anchor.NewWriter(&buffer, anchor.Red, false))
	return strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
}

func TestRenderMatches(t *testing.T) {
	assert.Equal(t, []string{
		`⚓ showing results for "bohemian rhapsody"`,
		" 1. Bohemian Rhapsody — Queen (1975-10-31) [7tFiyTwD0nx5a1eklYtX2J]",
		" 2. Bohemian Rhapsody — Panic! at the Disco",
	}, output(func(tui *anchor.Anchor) {
		render(tui, &finder.Matches{
			Corrected: "bohemian rhapsody",
			Items: []entity.EnrichedCandidate{
				{
					Candidate:   entity.Candidate{Title: "Bohemian Rhapsody", Artist: "Queen"},
					ExternalID:  "7tFiyTwD0nx5a1eklYtX2J",
					ReleaseDate: "1975-10-31",
				},
				{Candidate: entity.Candidate{Title: "Bohemian Rhapsody", Artist: "Panic! at the Disco"}},
			},
		})
	}))
	assert.Equal(t, []string{"⚓ no matches found"}, output(func(tui *anchor.Anchor) {
		render(tui, &finder.Matches{})
	}))
}

func TestRenderOthers(t *testing.T) {
	assert.Equal(t, []string{"⚓ too many matches (16), please add more words"}, output(func(tui *anchor.Anchor) {
		render(tui, &finder.TooManyMatches{Count: 16, Message: "too many matches (16), please add more words"})
	}))
	assert.Equal(t, []string{"⚓ lookup unavailable", " 1. Yesterday — The Beatles"}, output(func(tui *anchor.Anchor) {
		render(tui, &finder.NoMetadataAvailable{
			Items: []entity.Candidate{{Title: "Yesterday", Artist: "The Beatles"}},
			Note:  "lookup unavailable",
		})
	}))
}

func TestRenderTrack(t *testing.T) {
	assert.Equal(t, []string{
		"⚓ Here Comes the Sun — The Beatles",
		"version:  Here Comes the Sun - Remastered 2009",
		"album:    Abbey Road",
		"released: 1969-09-26",
	}, output(func(tui *anchor.Anchor) {
		renderTrack(tui, &entity.TrackMetadata{
			Name:        "Here Comes the Sun - Remastered 2009",
			Artists:     []string{"The Beatles"},
			Album:       "Abbey Road",
			ReleaseDate: "1969-09-26",
		})
	}))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "too vague", summary(&finder.TooManyMatches{Count: 16}))
	assert.Equal(t, "1 unranked matches", summary(&finder.NoMetadataAvailable{Items: make([]entity.Candidate, 1)}))
	assert.Equal(t, "2 matches", summary(&finder.Matches{Items: make([]entity.EnrichedCandidate, 2)}))

	assert.Equal(t, []string{"… search looking", "✓ search 2 matches"}, output(func(tui *anchor.Anchor) {
		tui.Lot("search").Printf("looking")
		tui.Lot("search").Close(summary(&finder.Matches{Items: make([]entity.EnrichedCandidate, 2)}))
	}))
}

func TestEncode(t *testing.T) {
	var buffer bytes.Buffer
	require.Nil(t, encode(&buffer, &finder.TooManyMatches{Count: 20, Message: "too many"}))
	assert.JSONEq(t, `{"kind": "too_many_matches", "too_many": true, "count": 20, "message": "too many"}`, buffer.String())
}

func TestNewFinder(t *testing.T) {
	conf := config.Default()
	conf.Spotify.TokenCache = false
	conf.Finder.Fanout = 2
	conf.Finder.SeparatorPolicy = parser.FewerWordsArtist.String()

	instance, err := newFinder(context.Background(), conf, zerolog.Nop())
	require.Nil(t, err)
	assert.Nil(t, instance.Lookup)
	assert.Equal(t, 2, instance.Enricher.Fanout)
	assert.Equal(t, parser.FewerWordsArtist, instance.Parser.Policy)
	assert.Equal(t, 60, instance.Options.CorrectedResults)

	_, err = instance.Song(context.Background(), "some-id")
	assert.ErrorIs(t, err, finder.ErrLookupUnavailable)

	conf.Search.Providers = []string{"altavista"}
	_, err = newFinder(context.Background(), conf, zerolog.Nop())
	assert.Error(t, err)
}
