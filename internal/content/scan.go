package content

import (
	"context"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// PageScan is everything the page worker learns from one visit: the
// extracted content fragment plus any linked documents worth offering
// as alternative quiz sources.
type PageScan struct {
	URL      string
	Title    string
	Fragment quiz.Fragment
	PDFLinks []Link
	// WordLinks are listed so the UI can explain why they are not
	// offered; quiz generation only accepts pages and PDFs.
	WordLinks []Link
}

// Scan fetches a page, extracts its main content, and collects linked
// documents in a single pass.
func (f *Fetcher) Scan(ctx context.Context, rawURL string) (*PageScan, error) {
	page, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	frag, err := Extract(page.Doc)
	if err != nil {
		return nil, err
	}
	frag.Locator = page.URL
	frag.Label = page.Title

	return &PageScan{
		URL:       page.URL,
		Title:     page.Title,
		Fragment:  frag,
		PDFLinks:  FindLinks(page.Doc, PDFLink),
		WordLinks: FindLinks(page.Doc, WordLink),
	}, nil
}
