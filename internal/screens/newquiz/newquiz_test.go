package newquiz

import (
	"strings"
	"testing"

	"github.com/quizbuddy/quizbuddy/internal/content"
)

func TestHandleScanDone_WordOnlyPage(t *testing.T) {
	n := New(nil, nil, nil)
	n.stage = stageScanning

	scr, _ := n.handleScanDone(scanDoneMsg{Scan: &content.PageScan{
		URL:       "https://example.com/course",
		WordLinks: []content.Link{{Href: "/essay.docx", Text: "Essay"}},
	}})

	got := scr.(*NewQuizScreen)
	if got.stage != stageInput {
		t.Fatalf("stage = %d, want stageInput", got.stage)
	}
	if !strings.Contains(got.errMsg, "Word") {
		t.Errorf("errMsg = %q, should explain that Word documents are unsupported", got.errMsg)
	}
}

func TestHandleScanDone_NoContentNoLinks(t *testing.T) {
	n := New(nil, nil, nil)
	n.stage = stageScanning

	scr, _ := n.handleScanDone(scanDoneMsg{Scan: &content.PageScan{
		URL: "https://example.com/blank",
	}})

	got := scr.(*NewQuizScreen)
	if got.stage != stageInput {
		t.Fatalf("stage = %d, want stageInput", got.stage)
	}
	if got.errMsg == "" {
		t.Error("expected an error message for a page with nothing quizzable")
	}
}

func TestHandleScanDone_PDFLinksOfferPicker(t *testing.T) {
	n := New(nil, nil, nil)
	n.stage = stageScanning

	scr, _ := n.handleScanDone(scanDoneMsg{Scan: &content.PageScan{
		URL:      "https://example.com/course",
		PDFLinks: []content.Link{{Href: "/syllabus.pdf", Text: "Syllabus"}},
	}})

	got := scr.(*NewQuizScreen)
	if got.stage != stagePickLink {
		t.Fatalf("stage = %d, want stagePickLink", got.stage)
	}
	if len(got.linkMenu.Items) != 1 || got.linkMenu.Items[0].Label != "Syllabus" {
		t.Errorf("link menu = %+v", got.linkMenu.Items)
	}
}
