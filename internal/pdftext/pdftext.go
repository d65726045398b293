// Package pdftext fetches PDF documents and extracts their plain text
// for quiz generation.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/imroc/req/v3"
	"github.com/ledongthuc/pdf"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// Extractor downloads PDFs and turns them into text fragments.
type Extractor struct {
	client *req.Client
}

func New() *Extractor {
	return &Extractor{
		client: req.C().
			SetTimeout(60 * time.Second).
			SetUserAgent("quizbuddy/1.0"),
	}
}

// Fetch downloads the PDF at rawURL and returns its text as a fragment.
func (e *Extractor) Fetch(ctx context.Context, rawURL string) (quiz.Fragment, error) {
	resp, err := e.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return quiz.Fragment{}, fmt.Errorf("fetching PDF %s: %w", rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return quiz.Fragment{}, fmt.Errorf("fetching PDF %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	data, err := resp.ToBytes()
	if err != nil {
		return quiz.Fragment{}, fmt.Errorf("reading PDF %s: %w", rawURL, err)
	}
	text, err := ExtractText(data)
	if err != nil {
		return quiz.Fragment{}, fmt.Errorf("extracting text from %s: %w", rawURL, err)
	}
	return quiz.Fragment{
		Kind:    quiz.ContentPDF,
		Locator: rawURL,
		Label:   NameFromURL(rawURL),
		Body:    text,
	}, nil
}

// ExtractText pulls the plain text out of raw PDF bytes.
func ExtractText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing PDF: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading PDF text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading PDF text: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// NameFromURL derives a display name for a PDF from its URL: the final
// path segment without the extension, falling back to the URL itself
// when no segment can be found.
func NameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return rawURL
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return rawURL
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
