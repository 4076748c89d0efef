package provider

import (
	"context"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/streambinder/lyricsfinder/entity"
)

const (
	bingName = "bing"
	bingURL  = "https://www.bing.com/search"
)

type Bing struct {
	BaseURL string
	scraper
}

func NewBing(options Options) *Bing {
	return &Bing{bingURL, newScraper(options)}
}

func (provider *Bing) Name() string {
	return bingName
}

func (provider *Bing) Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet,
		provider.BaseURL+"?"+url.Values{"q": {query}}.Encode(), nil)
	if err != nil {
		return nil, err
	}

	document, err := provider.document(request)
	if err != nil {
		return nil, err
	}

	var results []entity.SearchResult
	document.Find("li.b_algo").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		title := text(block.Find("h2 a").First())
		if len(title) == 0 {
			return true
		}
		results = append(results, entity.SearchResult{
			Title:   title,
			Snippet: text(block.Find("p").First()),
		})
		return limit <= 0 || len(results) < limit
	})
	return results, nil
}
