package finder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/streambinder/lyricsfinder/corpus"
	"github.com/streambinder/lyricsfinder/dedup"
	"github.com/streambinder/lyricsfinder/enricher"
	"github.com/streambinder/lyricsfinder/entity"
	"github.com/streambinder/lyricsfinder/parser"
	"github.com/streambinder/lyricsfinder/ranker"
	"github.com/streambinder/lyricsfinder/spell"
	"github.com/thanhpk/randstr"
)

var (
	ErrInvalidInput      = errors.New("please enter a phrase")
	ErrLookupUnavailable = errors.New("track lookup unavailable")
	ErrNotFound          = errors.New("track not found")
)

const (
	querySuffix  = " lyrics"
	noteNoLookup = "track lookup unavailable (are SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET set?): matches are not sorted"
)

// TextSearch is a best-effort web search: failures
// result in fewer or no results, never in errors
type TextSearch interface {
	Search(ctx context.Context, query string, limit int) []entity.SearchResult
}

type Options struct {
	InitialResults   int
	CorrectedResults int
	Threshold        int
	MaxMatches       int
}

func DefaultOptions() Options {
	return Options{
		InitialResults:   40,
		CorrectedResults: 60,
		Threshold:        spell.DefaultThreshold,
		MaxMatches:       dedup.MaxMatches,
	}
}

// Finder turns lyrics fragments into candidate songs
type Finder struct {
	Search   TextSearch
	Lookup   enricher.TrackLookup // lookup is unavailable if nil
	Parser   *parser.Parser
	Enricher *enricher.Enricher
	Options  Options
	Log      zerolog.Logger
}

func New(search TextSearch, lookup enricher.TrackLookup) *Finder {
	return &Finder{
		Search:   search,
		Lookup:   lookup,
		Parser:   parser.New(parser.FewerWordsTitle),
		Enricher: enricher.New(lookup),
		Options:  DefaultOptions(),
		Log:      zerolog.Nop(),
	}
}

// Process searches the phrase, correcting its spelling against
// the vocabulary of the results, and returns the matching songs
func (finder *Finder) Process(ctx context.Context, phrase string) (Result, error) {
	phrase = strings.TrimSpace(phrase)
	if len(phrase) == 0 {
		return nil, ErrInvalidInput
	}
	log := finder.Log.With().Str("request", randstr.Hex(8)).Logger()

	results := finder.Search.Search(ctx, phrase+querySuffix, finder.Options.InitialResults)
	log.Debug().Str("phrase", phrase).Int("count", len(results)).Msg("initial search")

	var corrected string
	if correction, changed := spell.Correct(phrase, corpus.Build(results), finder.Options.Threshold); changed {
		corrected, phrase = correction, correction
		results = finder.Search.Search(ctx, phrase+querySuffix, finder.Options.CorrectedResults)
		log.Debug().Str("phrase", phrase).Int("count", len(results)).Msg("corrected search")
	}

	candidates := dedup.Dedup(finder.parser().Extract(results))
	log.Debug().Int("count", len(candidates)).Msg("candidates extracted")
	if len(candidates) > finder.Options.MaxMatches {
		return &TooManyMatches{
			Count:   len(candidates),
			Message: fmt.Sprintf("too many matches (%d), please add more words", len(candidates)),
		}, nil
	}

	if err := finder.ready(ctx); err != nil {
		log.Warn().Err(err).Msg("track lookup unavailable")
		return &NoMetadataAvailable{
			Corrected: corrected,
			Items:     candidates,
			Note:      noteNoLookup,
		}, nil
	}

	items := ranker.Rank(finder.enricher().EnrichAll(ctx, candidates))
	return &Matches{Corrected: corrected, Items: items}, nil
}

// Song returns the metadata of the track with the given id
func (finder *Finder) Song(ctx context.Context, id string) (*entity.TrackMetadata, error) {
	id = strings.TrimSpace(id)
	if len(id) == 0 {
		return nil, ErrInvalidInput
	}
	if err := finder.ready(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLookupUnavailable, err)
	}

	track, err := finder.Lookup.GetTrack(ctx, id)
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, ErrNotFound
	}
	return track, nil
}

func (finder *Finder) ready(ctx context.Context) error {
	if finder.Lookup == nil {
		return ErrLookupUnavailable
	}
	return finder.Lookup.Ready(ctx)
}

func (finder *Finder) parser() *parser.Parser {
	if finder.Parser == nil {
		return parser.New(parser.FewerWordsTitle)
	}
	return finder.Parser
}

func (finder *Finder) enricher() *enricher.Enricher {
	if finder.Enricher == nil {
		return enricher.New(finder.Lookup)
	}
	return finder.Enricher
}
