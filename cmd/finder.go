package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/streambinder/lyricsfinder/config"
	"github.com/streambinder/lyricsfinder/enricher"
	"github.com/streambinder/lyricsfinder/finder"
	"github.com/streambinder/lyricsfinder/parser"
	"github.com/streambinder/lyricsfinder/provider"
	"github.com/streambinder/lyricsfinder/spotify"
)

// newFinder wires the configured collaborators together: a missing
// or broken spotify setup only disables metadata lookups
func newFinder(ctx context.Context, conf *config.Config, log zerolog.Logger) (*finder.Finder, error) {
	chain, err := provider.NewChainByName(conf.Search.Providers, provider.Options{
		Timeout:   conf.Search.Timeout,
		UserAgent: conf.Search.UserAgent,
	})
	if err != nil {
		return nil, err
	}
	chain.Log = log.With().Str("component", "provider").Logger()

	policy, err := parser.ParseSidePolicy(conf.Finder.SeparatorPolicy)
	if err != nil {
		return nil, err
	}

	var lookup enricher.TrackLookup
	if client, err := spotify.New(ctx, spotifyOptions(conf, log)); err != nil {
		log.Warn().Err(err).Msg("spotify lookups disabled")
	} else {
		lookup = client
	}

	instance := finder.New(chain, lookup)
	instance.Parser = parser.New(policy)
	instance.Enricher.Fanout = conf.Finder.Fanout
	instance.Enricher.Timeout = conf.Finder.LookupTimeout
	instance.Enricher.Log = log.With().Str("component", "enricher").Logger()
	instance.Options = finder.Options{
		InitialResults:   conf.Search.InitialResults,
		CorrectedResults: conf.Search.CorrectedResults,
		Threshold:        conf.Finder.Threshold,
		MaxMatches:       conf.Finder.MaxMatches,
	}
	instance.Log = log.With().Str("component", "finder").Logger()
	return instance, nil
}

func spotifyOptions(conf *config.Config, log zerolog.Logger) spotify.Options {
	options := spotify.Options{
		ClientID:     conf.Spotify.ClientID,
		ClientSecret: conf.Spotify.ClientSecret,
		Market:       conf.Spotify.Market,
		RateLimit:    conf.Spotify.RateLimit,
		Log:          log.With().Str("component", "spotify").Logger(),
	}
	if conf.Spotify.TokenCache {
		if path, err := spotify.DefaultTokenPath(); err == nil {
			options.TokenPath = path
		} else {
			log.Warn().Err(err).Msg("spotify token will not be cached")
		}
	}
	return options
}
