// Package content turns live HTML pages into plain quiz source fragments.
package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// contentThreshold is the minimum rendered text length for a container
// to be accepted as the page's main content region.
const contentThreshold = 500

// containerSelectors is tried in priority order: semantic containers
// before generic class-name containers.
var containerSelectors = []string{
	"main",
	"article",
	"#content",
	".content",
	".main-content",
	".post-content",
	".article-content",
}

// denySelector strips non-content chrome before the full-body fallback.
const denySelector = "script, style, nav, header, footer, aside, iframe, .ads, .banner, .comments, .navigation"

// allowSelector keeps only content-bearing elements from the chosen root.
const allowSelector = "h1, h2, h3, h4, h5, h6, p, ul, ol, li, table"

// Extract picks the page's main content region and serializes its
// content-bearing elements into a fragment body. Callers must not mutate
// the document while extraction runs.
//
// A page with no content-bearing elements yields an empty body and no
// error; rejecting empty fragments is the quiz creator's job.
func Extract(doc *goquery.Document) (quiz.Fragment, error) {
	root, err := contentRoot(doc)
	if err != nil {
		return quiz.Fragment{}, err
	}

	var parts []string
	root.Find(allowSelector).Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" {
			return
		}
		markup, htmlErr := goquery.OuterHtml(s)
		if htmlErr != nil {
			return
		}
		parts = append(parts, strings.TrimSpace(markup))
	})

	return quiz.Fragment{
		Kind: quiz.ContentHTML,
		Body: strings.Join(parts, "\n"),
	}, nil
}

// contentRoot returns the first priority container with enough rendered
// text, or a denylist-stripped copy of the body when none qualifies.
func contentRoot(doc *goquery.Document) (*goquery.Selection, error) {
	for _, sel := range containerSelectors {
		candidate := doc.Find(sel).First()
		if candidate.Length() == 0 {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(candidate.Text())) > contentThreshold {
			return candidate, nil
		}
	}

	// Re-parse the body so denylist removal never touches the caller's
	// document.
	body := doc.Find("body").First()
	markup, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, fmt.Errorf("serializing page body: %w", err)
	}
	clone, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("re-parsing page body: %w", err)
	}
	clone.Find(denySelector).Remove()
	return clone.Find("body").First(), nil
}
