package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ServesCannedResponsesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"name":"First Quiz"}`)},
		MockResponse{Content: json.RawMessage(`{"name":"Second Quiz"}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Prompt: "first page"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp1.Content) != `{"name":"First Quiz"}` {
		t.Fatalf("first content = %s", resp1.Content)
	}

	resp2, err := mock.Generate(context.Background(), Request{Prompt: "second page"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp2.Content) != `{"name":"Second Quiz"}` {
		t.Fatalf("second content = %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReadsAsOutage(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	req := Request{
		System: "You write multiple-choice quizzes.",
		Prompt: "Source text here.",
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != req.System {
		t.Errorf("recorded System = %q", mock.Calls[0].System)
	}
	if mock.Calls[0].Prompt != req.Prompt {
		t.Errorf("recorded Prompt = %q", mock.Calls[0].Prompt)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("ModelID = %q, want mock", got)
	}
}

func TestOperationContext(t *testing.T) {
	ctx := context.Background()
	if op := OperationFrom(ctx); op != "unknown" {
		t.Fatalf("OperationFrom = %q, want unknown", op)
	}

	ctx = WithOperation(ctx, "generate-quiz")
	if op := OperationFrom(ctx); op != "generate-quiz" {
		t.Fatalf("OperationFrom = %q, want generate-quiz", op)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "anthropic without key", cfg: Config{Provider: "anthropic"}, wantErr: true},
		{name: "anthropic with key", cfg: Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}},
		{name: "openai without key", cfg: Config{Provider: "openai"}, wantErr: true},
		{name: "openai with key", cfg: Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}},
		{name: "mock needs no key", cfg: Config{Provider: "mock"}},
		{name: "unknown provider", cfg: Config{Provider: "unknown"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
