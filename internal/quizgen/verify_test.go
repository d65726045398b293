package quizgen

import (
	"testing"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

func TestQuoteInSource(t *testing.T) {
	source := "The mitochondria is the powerhouse\nof the cell.  It produces ATP."

	cases := []struct {
		name  string
		quote string
		want  bool
	}{
		{"exact", "powerhouse of the cell", true},
		{"case insensitive", "The Mitochondria IS the powerhouse", true},
		{"reflowed whitespace", "powerhouse of the cell. It produces", true},
		{"fabricated", "chloroplasts capture sunlight", false},
		{"empty quote", "", false},
		{"whitespace only", "   \n\t", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QuoteInSource(tc.quote, source); got != tc.want {
				t.Errorf("QuoteInSource(%q) = %v, want %v", tc.quote, got, tc.want)
			}
		})
	}
}

func TestSourceText_StripsHTMLMarkup(t *testing.T) {
	frag := quiz.Fragment{
		Kind: quiz.ContentHTML,
		Body: "<h1>Cells</h1>\n<p>The mitochondria is the <b>powerhouse</b> of the cell.</p>",
	}
	text := SourceText(frag)
	if !QuoteInSource("the powerhouse of the cell", text) {
		t.Errorf("quote should verify against tag-stripped text, got %q", text)
	}
	if QuoteInSource("<b>powerhouse</b>", text) {
		t.Error("markup should not survive into source text")
	}
}

func TestSourceText_PlainPassthrough(t *testing.T) {
	frag := quiz.Fragment{Kind: quiz.ContentPDF, Body: "plain pdf text"}
	if got := SourceText(frag); got != "plain pdf text" {
		t.Errorf("SourceText = %q", got)
	}
}
