package spotify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// DefaultMargin is how long before its expiry a token gets refreshed
const DefaultMargin = 30 * time.Second

var now = time.Now

// TokenFetcher obtains brand new tokens,
// e.g. *clientcredentials.Config
type TokenFetcher interface {
	Token(context.Context) (*oauth2.Token, error)
}

// TokenCache holds an access token, refreshing it before it expires:
// it is safe for concurrent use and, if Path is set,
// the token survives across runs
type TokenCache struct {
	Margin  time.Duration
	Path    string
	Log     zerolog.Logger
	owner   string
	fetcher TokenFetcher
	lock    sync.RWMutex
	token   *oauth2.Token
}

// persisted tokens are only reused by the client they were issued to
type persistedToken struct {
	ClientID string        `json:"client_id"`
	Token    *oauth2.Token `json:"token"`
}

func NewTokenCache(fetcher TokenFetcher, path, clientID string) *TokenCache {
	cache := &TokenCache{
		Margin:  DefaultMargin,
		Path:    path,
		Log:     zerolog.Nop(),
		owner:   clientID,
		fetcher: fetcher,
	}
	if token, err := cache.load(); err == nil && cache.fresh(token) {
		cache.token = token
	}
	return cache
}

// DefaultTokenPath points to the user cache directory
func DefaultTokenPath() (string, error) {
	return xdg.CacheFile(filepath.Join("lyricsfinder", "spotify-token.json"))
}

// Token implements oauth2.TokenSource
func (cache *TokenCache) Token() (*oauth2.Token, error) {
	return cache.Get(context.Background())
}

func (cache *TokenCache) Get(ctx context.Context) (*oauth2.Token, error) {
	cache.lock.RLock()
	token := cache.token
	cache.lock.RUnlock()
	if cache.fresh(token) {
		return token, nil
	}

	cache.lock.Lock()
	defer cache.lock.Unlock()
	// someone else might have refreshed it in the meanwhile
	if cache.fresh(cache.token) {
		return cache.token, nil
	}

	token, err := cache.fetcher.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == nil || len(token.AccessToken) == 0 {
		return nil, errors.New("empty access token")
	}
	cache.token = token
	if err := cache.save(token); err != nil {
		cache.Log.Warn().Err(err).Str("path", cache.Path).Msg("token not persisted")
	}
	return token, nil
}

func (cache *TokenCache) fresh(token *oauth2.Token) bool {
	if token == nil || len(token.AccessToken) == 0 {
		return false
	}
	return token.Expiry.IsZero() || now().Add(cache.Margin).Before(token.Expiry)
}

func (cache *TokenCache) load() (*oauth2.Token, error) {
	if len(cache.Path) == 0 {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(cache.Path)
	if err != nil {
		return nil, err
	}
	var persisted persistedToken
	if err := jsoniter.Unmarshal(data, &persisted); err != nil {
		return nil, err
	}
	if persisted.ClientID != cache.owner || persisted.Token == nil {
		return nil, errors.New("token issued to another client")
	}
	return persisted.Token, nil
}

func (cache *TokenCache) save(token *oauth2.Token) error {
	if len(cache.Path) == 0 {
		return nil
	}
	data, err := jsoniter.Marshal(persistedToken{ClientID: cache.owner, Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(cache.Path, data, 0o600)
}
