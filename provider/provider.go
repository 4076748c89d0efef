package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/streambinder/lyricsfinder/entity"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
)

// Provider is a web search engine returning result titles and snippets
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error)
}

type Options struct {
	Timeout   time.Duration
	UserAgent string
}

func (options Options) withDefaults() Options {
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}
	if len(options.UserAgent) == 0 {
		options.UserAgent = DefaultUserAgent
	}
	return options
}

// New builds the provider registered under the given name
func New(name string, options Options) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case duckDuckGoName:
		return NewDuckDuckGo(options), nil
	case bingName:
		return NewBing(options), nil
	default:
		return nil, fmt.Errorf("unknown search provider: %s", name)
	}
}

type scraper struct {
	client    *http.Client
	userAgent string
}

func newScraper(options Options) scraper {
	options = options.withDefaults()
	return scraper{
		client:    &http.Client{Timeout: options.Timeout},
		userAgent: options.UserAgent,
	}
}

func (scraper scraper) document(request *http.Request) (*goquery.Document, error) {
	request.Header.Set("User-Agent", scraper.userAgent)
	response, err := scraper.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d: %s", response.StatusCode, request.URL.Host)
	}
	return goquery.NewDocumentFromReader(response.Body)
}

func text(selection *goquery.Selection) string {
	return strings.Join(strings.Fields(selection.Text()), " ")
}
