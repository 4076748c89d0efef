package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/streambinder/lyricsfinder/entity"
)

const (
	duckDuckGoName = "duckduckgo"
	duckDuckGoURL  = "https://html.duckduckgo.com/html/"
)

// DuckDuckGo scrapes the javascript-free version of DuckDuckGo
type DuckDuckGo struct {
	BaseURL string
	scraper
}

func NewDuckDuckGo(options Options) *DuckDuckGo {
	return &DuckDuckGo{duckDuckGoURL, newScraper(options)}
}

func (provider *DuckDuckGo) Name() string {
	return duckDuckGoName
}

func (provider *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.BaseURL,
		strings.NewReader(url.Values{"q": {query}}.Encode()))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	document, err := provider.document(request)
	if err != nil {
		return nil, err
	}

	var results []entity.SearchResult
	document.Find(".result").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		var title string
		block.Find("a").EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
			title = text(anchor)
			return len(title) == 0
		})
		if len(title) == 0 {
			return true
		}
		results = append(results, entity.SearchResult{
			Title:   title,
			Snippet: text(block.Find(".result__snippet, .snippet").First()),
		})
		return limit <= 0 || len(results) < limit
	})
	return results, nil
}
