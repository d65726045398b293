package content

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

// longText is comfortably over the 500-char container threshold.
var longText = strings.Repeat("All work and no play makes a dull page. ", 20)

func TestExtract_PrefersMainContainer(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<article><p>`+longText+` from article</p></article>
		<main><p>`+longText+` from main</p></main>
	</body></html>`)

	frag, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(frag.Body, "from main") {
		t.Errorf("body should come from <main>, got: %.80s", frag.Body)
	}
	if strings.Contains(frag.Body, "from article") {
		t.Errorf("body leaked <article> content despite <main> passing the threshold")
	}
}

func TestExtract_ShortContainerFallsBack(t *testing.T) {
	short := strings.Repeat("x", 400)
	doc := parseDoc(t, `<html><body>
		<main><p>`+short+`</p></main>
		<nav><p>site navigation</p></nav>
		<p>outside the container</p>
	</body></html>`)

	frag, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	// Fallback root is the whole body, so both paragraphs survive but
	// the nav is stripped.
	if !strings.Contains(frag.Body, "outside the container") {
		t.Errorf("fallback should cover the full body, got: %.120s", frag.Body)
	}
	if strings.Contains(frag.Body, "site navigation") {
		t.Errorf("denylisted <nav> content survived the fallback strip")
	}
}

func TestExtract_StripsDenylistClasses(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<p>keep me</p>
		<div class="ads"><p>buy things</p></div>
		<div class="comments"><p>first!</p></div>
		<script>var x = 1;</script>
	</body></html>`)

	frag, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(frag.Body, "keep me") {
		t.Errorf("content paragraph missing: %q", frag.Body)
	}
	for _, banned := range []string{"buy things", "first!", "var x"} {
		if strings.Contains(frag.Body, banned) {
			t.Errorf("denylisted content %q survived", banned)
		}
	}
}

func TestExtract_AllowlistOnly(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<h1>Title</h1>
		<p>A paragraph.</p>
		<ul><li>item one</li></ul>
		<blockquote>not allowlisted</blockquote>
		<span>loose text</span>
	</body></html>`)

	frag, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	lines := strings.Split(frag.Body, "\n")
	if !strings.HasPrefix(lines[0], "<h1>") {
		t.Errorf("first element should be the heading's markup, got %q", lines[0])
	}
	if strings.Contains(frag.Body, "blockquote") || strings.Contains(frag.Body, "loose text") {
		t.Errorf("non-allowlisted elements leaked into body: %q", frag.Body)
	}
}

func TestExtract_SkipsEmptyElements(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<p>   </p>
		<p>real content</p>
	</body></html>`)

	frag, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if strings.Count(frag.Body, "<p>") != 1 {
		t.Errorf("whitespace-only paragraph should be dropped: %q", frag.Body)
	}
}

func TestExtract_NoContentYieldsEmptyBody(t *testing.T) {
	doc := parseDoc(t, `<html><body><div>bare div text</div></body></html>`)

	frag, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if frag.Body != "" {
		t.Errorf("body = %q, want empty", frag.Body)
	}
	if !frag.Empty() {
		t.Error("fragment should report Empty")
	}
}

func TestExtract_FallbackDoesNotMutateDocument(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<nav><p>site navigation</p></nav>
		<p>short page</p>
	</body></html>`)

	if _, err := Extract(doc); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Find("nav").Length() != 1 {
		t.Error("extraction removed elements from the caller's document")
	}
}
