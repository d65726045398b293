package content

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link is an anchor found on a page.
type Link struct {
	Href string
	Text string
}

// LinkPredicate decides whether an anchor's href is of interest.
type LinkPredicate func(href string) bool

// PDFLink matches hrefs that point at a PDF document.
func PDFLink(href string) bool {
	return hasExt(href, ".pdf")
}

// WordLink matches hrefs that point at a Word document.
func WordLink(href string) bool {
	return hasExt(href, ".doc") || hasExt(href, ".docx")
}

func hasExt(href, ext string) bool {
	if u, err := url.Parse(href); err == nil && u.Path != "" {
		href = u.Path
	}
	return strings.HasSuffix(strings.ToLower(href), ext)
}

// FindLinks collects all anchors whose href satisfies the predicate,
// in document order. Anchors without an href are skipped.
func FindLinks(doc *goquery.Document, pred LinkPredicate) []Link {
	var links []Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !pred(href) {
			return
		}
		links = append(links, Link{
			Href: href,
			Text: strings.TrimSpace(s.Text()),
		})
	})
	return links
}

// markedClass tags decorated anchors so MarkLinks stays idempotent.
const markedClass = "quizbuddy-link"

// MarkLinks decorates matching anchors in place and reports how many
// were marked. The decoration is presentation only; fragment data is
// never derived from it.
func MarkLinks(doc *goquery.Document, pred LinkPredicate) int {
	marked := 0
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !pred(href) || s.HasClass(markedClass) {
			return
		}
		s.AddClass(markedClass)
		s.SetAttr("data-quizbuddy", "1")
		marked++
	})
	return marked
}
