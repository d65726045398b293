package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/quizbuddy/quizbuddy/internal/store"
)

type captureLogger struct {
	records []store.LLMRequest
}

func (c *captureLogger) LogLLMRequest(_ context.Context, req store.LLMRequest) error {
	c.records = append(c.records, req)
	return nil
}

func TestLogging_RecordsSuccessfulCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	logger := &captureLogger{}
	p := WithLogging(mock, "mock", logger)

	ctx := WithOperation(context.Background(), "generate-quiz")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(logger.records) != 1 {
		t.Fatalf("logged %d records, want 1", len(logger.records))
	}
	rec := logger.records[0]
	if rec.Provider != "mock" {
		t.Errorf("Provider = %q, want mock", rec.Provider)
	}
	if rec.Operation != "generate-quiz" {
		t.Errorf("Operation = %q, want generate-quiz", rec.Operation)
	}
	if rec.Status != store.LLMStatusOK {
		t.Errorf("Status = %q, want %q", rec.Status, store.LLMStatusOK)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider() // empty queue always errors
	logger := &captureLogger{}
	p := WithLogging(mock, "mock", logger)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected an error from the empty mock queue")
	}

	if len(logger.records) != 1 {
		t.Fatalf("logged %d records, want 1", len(logger.records))
	}
	rec := logger.records[0]
	if rec.Status != store.LLMStatusError {
		t.Errorf("Status = %q, want %q", rec.Status, store.LLMStatusError)
	}
	if rec.Error == "" {
		t.Error("Error field should carry the failure message")
	}
}
