package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/imroc/req/v3"
)

// Page is a fetched, parsed HTML document.
type Page struct {
	URL   string
	Title string
	Doc   *goquery.Document
}

// Fetcher retrieves live pages for extraction.
type Fetcher struct {
	client *req.Client
}

// NewFetcher returns a Fetcher with a sane request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: req.C().
			SetTimeout(30 * time.Second).
			SetUserAgent("quizbuddy/1.0"),
	}
}

// Fetch downloads and parses the page at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	body, err := resp.ToString()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", rawURL, err)
	}
	return &Page{
		URL:   rawURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Doc:   doc,
	}, nil
}
