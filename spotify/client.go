package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/streambinder/lyricsfinder/entity"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

var ErrNoCredentials = errors.New("spotify client id and secret not set")

type Options struct {
	ClientID     string
	ClientSecret string
	Market       string
	RateLimit    float64 // requests per second, unlimited if 0
	TokenPath    string  // token is not persisted if empty
	TokenURL     string
	BaseURL      string
	Log          zerolog.Logger
}

// Client looks tracks up on Spotify, authenticating
// through the client credentials flow
type Client struct {
	api     *spotify.Client
	tokens  *TokenCache
	limiter *rate.Limiter
	market  string
	log     zerolog.Logger
}

func New(ctx context.Context, options Options) (*Client, error) {
	if len(options.ClientID) == 0 || len(options.ClientSecret) == 0 {
		return nil, ErrNoCredentials
	}
	if len(options.TokenURL) == 0 {
		options.TokenURL = spotifyauth.TokenURL
	}
	return newClient(ctx, &clientcredentials.Config{
		ClientID:     options.ClientID,
		ClientSecret: options.ClientSecret,
		TokenURL:     options.TokenURL,
	}, options), nil
}

func newClient(ctx context.Context, fetcher TokenFetcher, options Options) *Client {
	tokens := NewTokenCache(fetcher, options.TokenPath, options.ClientID)
	tokens.Log = options.Log

	var clientOptions []spotify.ClientOption
	if len(options.BaseURL) > 0 {
		clientOptions = append(clientOptions, spotify.WithBaseURL(options.BaseURL))
	}

	limit := rate.Inf
	if options.RateLimit > 0 {
		limit = rate.Limit(options.RateLimit)
	}

	return &Client{
		api:     spotify.New(oauth2.NewClient(ctx, tokens), clientOptions...),
		tokens:  tokens,
		limiter: rate.NewLimiter(limit, 1),
		market:  options.Market,
		log:     options.Log,
	}
}

// Query renders a track query in Spotify search syntax
func Query(query entity.TrackQuery) string {
	if query.Relaxed {
		return fmt.Sprintf("%s %s", query.Title, query.Artist)
	}
	return fmt.Sprintf("track:%s artist:%s", query.Title, query.Artist)
}

// Ready makes sure a token can be obtained
func (client *Client) Ready(ctx context.Context) error {
	_, err := client.tokens.Get(ctx)
	return err
}

func (client *Client) SearchTrack(ctx context.Context, query entity.TrackQuery) (*entity.TrackMetadata, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	options := []spotify.RequestOption{spotify.Limit(1)}
	if len(client.market) > 0 {
		options = append(options, spotify.Market(client.market))
	}
	result, err := client.api.Search(ctx, Query(query), spotify.SearchTypeTrack, options...)
	if err != nil {
		return nil, err
	}
	if result.Tracks == nil || len(result.Tracks.Tracks) == 0 {
		client.log.Debug().Str("query", Query(query)).Msg("no track found")
		return nil, nil
	}
	return metadata(&result.Tracks.Tracks[0]), nil
}

func (client *Client) GetTrack(ctx context.Context, id string) (*entity.TrackMetadata, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	track, err := client.api.GetTrack(ctx, spotify.ID(id))
	if err != nil {
		var apiErr spotify.Error
		if errors.As(err, &apiErr) &&
			(apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusBadRequest) {
			return nil, nil
		}
		return nil, err
	}
	return metadata(track), nil
}

func metadata(track *spotify.FullTrack) *entity.TrackMetadata {
	artists := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}
	return &entity.TrackMetadata{
		ID:          track.ID.String(),
		Name:        track.Name,
		Artists:     artists,
		Album:       track.Album.Name,
		ReleaseDate: track.Album.ReleaseDate,
		ExternalURL: track.ExternalURLs["spotify"],
	}
}
