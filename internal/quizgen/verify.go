package quizgen

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// SourceText reduces a fragment to the plain text quotes are checked
// against. HTML fragments are parsed and their markup discarded.
func SourceText(frag quiz.Fragment) string {
	if frag.Kind != quiz.ContentHTML {
		return frag.Body
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(frag.Body))
	if err != nil {
		return frag.Body
	}
	return doc.Text()
}

// QuoteInSource reports whether quote appears in the source text,
// ignoring case and whitespace differences. An empty quote never
// verifies.
func QuoteInSource(quote, source string) bool {
	q := normalize(quote)
	if q == "" {
		return false
	}
	return strings.Contains(normalize(source), q)
}

// normalize lowercases and collapses all whitespace runs to single
// spaces so that reflowed text still matches.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
