package provider

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/streambinder/lyricsfinder/entity"
)

// Chain queries providers in order, until one of them
// returns something: the first provider results are primary,
// any other provider results are fallback
type Chain struct {
	Providers []Provider
	Log       zerolog.Logger
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{Providers: providers, Log: zerolog.Nop()}
}

// NewChainByName builds a chain out of registered provider names
func NewChainByName(names []string, options Options) (*Chain, error) {
	chain := NewChain()
	for _, name := range names {
		provider, err := New(name, options)
		if err != nil {
			return nil, err
		}
		chain.Providers = append(chain.Providers, provider)
	}
	return chain, nil
}

// Search never fails: if no provider returns anything,
// the result set is empty
func (chain *Chain) Search(ctx context.Context, query string, limit int) []entity.SearchResult {
	for index, provider := range chain.Providers {
		log := chain.Log.With().Str("provider", provider.Name()).Str("query", query).Logger()
		results, err := provider.Search(ctx, query, limit)
		if err != nil {
			log.Warn().Err(err).Msg("search failed")
			continue
		}
		if len(results) == 0 {
			log.Debug().Msg("no results")
			continue
		}

		source := entity.Primary
		if index > 0 {
			source = entity.Fallback
		}
		for i := range results {
			results[i].Source = source
		}
		log.Debug().Int("count", len(results)).Msg("search done")
		return results
	}
	return nil
}
