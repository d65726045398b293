package content

import "testing"

const linksFixture = `<html><body>
	<a href="/docs/syllabus.pdf">Syllabus</a>
	<a href="https://example.com/notes.PDF?v=2">Notes</a>
	<a href="/essay.docx">Essay</a>
	<a href="/about">About</a>
	<a>no href</a>
</body></html>`

func TestFindLinks_PDF(t *testing.T) {
	doc := parseDoc(t, linksFixture)

	links := FindLinks(doc, PDFLink)
	if len(links) != 2 {
		t.Fatalf("found %d PDF links, want 2: %+v", len(links), links)
	}
	if links[0].Text != "Syllabus" || links[0].Href != "/docs/syllabus.pdf" {
		t.Errorf("first link = %+v", links[0])
	}
	if links[1].Text != "Notes" {
		t.Errorf("second link = %+v; query string should not defeat the match", links[1])
	}
}

func TestFindLinks_Word(t *testing.T) {
	doc := parseDoc(t, linksFixture)

	links := FindLinks(doc, WordLink)
	if len(links) != 1 || links[0].Text != "Essay" {
		t.Fatalf("Word links = %+v, want just Essay", links)
	}
}

func TestMarkLinks_Idempotent(t *testing.T) {
	doc := parseDoc(t, linksFixture)

	if n := MarkLinks(doc, PDFLink); n != 2 {
		t.Fatalf("first MarkLinks = %d, want 2", n)
	}
	if n := MarkLinks(doc, PDFLink); n != 0 {
		t.Fatalf("second MarkLinks = %d, want 0 (already marked)", n)
	}
	if doc.Find("a."+markedClass).Length() != 2 {
		t.Errorf("marked anchor count = %d, want 2", doc.Find("a."+markedClass).Length())
	}
}
