package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quizbuddy/quizbuddy/internal/store"
)

// RequestLogger persists one record per model call.
type RequestLogger interface {
	LogLLMRequest(ctx context.Context, req store.LLMRequest) error
}

// LoggingProvider is a decorator that records every model call in the
// request log.
type LoggingProvider struct {
	inner    Provider
	provider string
	logger   RequestLogger
}

// WithLogging wraps a Provider with request logging. provider is the
// configured provider name recorded with each request.
func WithLogging(p Provider, provider string, logger RequestLogger) Provider {
	return &LoggingProvider{inner: p, provider: provider, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := store.LLMRequest{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Operation: OperationFrom(ctx),
		Duration:  time.Since(start),
		Status:    store.LLMStatusOK,
	}
	if resp != nil {
		rec.Model = resp.Model
	}
	if err != nil {
		rec.Status = store.LLMStatusError
		rec.Error = err.Error()
	}

	// Logging failures never fail the request itself.
	if logErr := l.logger.LogLLMRequest(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
