package enricher

import (
	"context"
	"time"

	"github.com/arunsworld/nursery"
	"github.com/rs/zerolog"
	"github.com/streambinder/lyricsfinder/entity"
	"github.com/streambinder/lyricsfinder/util"
)

const (
	DefaultFanout  = 4
	DefaultTimeout = 10 * time.Second
)

// TrackLookup resolves tracks against an external metadata provider:
// a nil track with a nil error means nothing matched
type TrackLookup interface {
	SearchTrack(context.Context, entity.TrackQuery) (*entity.TrackMetadata, error)
	GetTrack(context.Context, string) (*entity.TrackMetadata, error)
	// Ready fails if the provider cannot be used at all,
	// e.g. because of missing credentials
	Ready(context.Context) error
}

// Enricher attaches identifiers and release dates to candidates,
// on a best-effort basis
type Enricher struct {
	Lookup  TrackLookup
	Fanout  int
	Timeout time.Duration
	Log     zerolog.Logger
}

func New(lookup TrackLookup) *Enricher {
	return &Enricher{
		Lookup:  lookup,
		Fanout:  DefaultFanout,
		Timeout: DefaultTimeout,
		Log:     zerolog.Nop(),
	}
}

// Enrich looks the candidate up, first strictly and then,
// if nothing came out, relaxing the query: failures of any
// kind leave the metadata empty
func (enricher *Enricher) Enrich(ctx context.Context, candidate entity.Candidate) entity.EnrichedCandidate {
	enriched := entity.EnrichedCandidate{Candidate: candidate}
	for _, relaxed := range []bool{false, true} {
		track := enricher.lookup(ctx, entity.TrackQuery{
			Title:   candidate.Title,
			Artist:  candidate.Artist,
			Relaxed: relaxed,
		})
		if track != nil {
			enriched.ExternalID = track.ID
			enriched.ReleaseDate = track.ReleaseDate
			return enriched
		}
	}
	enricher.Log.Debug().Str("candidate", candidate.String()).Msg("no metadata found")
	return enriched
}

// EnrichAll enriches candidates concurrently, at most Fanout at a time:
// the output preserves the input order
func (enricher *Enricher) EnrichAll(ctx context.Context, candidates []entity.Candidate) []entity.EnrichedCandidate {
	var (
		enriched  = make([]entity.EnrichedCandidate, len(candidates))
		semaphore = make(chan bool, max(enricher.Fanout, 1))
		jobs      = make([]nursery.ConcurrentJob, 0, len(candidates))
	)
	for index, candidate := range candidates {
		index, candidate := index, candidate
		jobs = append(jobs, func(context.Context, chan error) {
			semaphore <- true
			defer func() { <-semaphore }()
			enriched[index] = enricher.Enrich(ctx, candidate)
		})
	}

	if len(jobs) > 0 {
		// jobs never report errors
		util.ErrSuppress(nursery.RunConcurrently(jobs...))
	}
	return enriched
}

type lookupResult struct {
	track *entity.TrackMetadata
	err   error
}

func (enricher *Enricher) lookup(ctx context.Context, query entity.TrackQuery) *entity.TrackMetadata {
	if enricher.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, enricher.Timeout)
		defer cancel()
	}

	// the lookup might not honor the context,
	// thus the timeout is enforced here too
	result := make(chan lookupResult, 1)
	go func() {
		track, err := enricher.Lookup.SearchTrack(ctx, query)
		result <- lookupResult{track, err}
	}()

	select {
	case <-ctx.Done():
		enricher.Log.Warn().Err(ctx.Err()).
			Str("title", query.Title).Str("artist", query.Artist).Bool("relaxed", query.Relaxed).
			Msg("track lookup timed out")
		return nil
	case r := <-result:
		if r.err != nil {
			enricher.Log.Warn().Err(r.err).
				Str("title", query.Title).Str("artist", query.Artist).Bool("relaxed", query.Relaxed).
				Msg("track lookup failed")
			return nil
		}
		return r.track
	}
}
