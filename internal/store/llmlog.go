package store

import (
	"context"
	"fmt"
	"time"
)

// LLMRequest is one logged model call.
type LLMRequest struct {
	ID        int64
	Provider  string
	Model     string
	Operation string
	Duration  time.Duration
	Status    string
	Error     string
	CreatedAt time.Time
}

const (
	LLMStatusOK    = "ok"
	LLMStatusError = "error"
)

// LogLLMRequest appends a model call to the request log.
func (s *Store) LogLLMRequest(ctx context.Context, req LLMRequest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_requests (provider, model, operation, duration_ms, status, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.Provider, req.Model, req.Operation, req.Duration.Milliseconds(),
		req.Status, req.Error, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("log llm request: %w", err)
	}
	return nil
}

// LLMRequests returns logged model calls, most recent first. limit <= 0
// means no limit.
func (s *Store) LLMRequests(ctx context.Context, limit int) ([]LLMRequest, error) {
	query := `SELECT id, provider, model, operation, duration_ms, status, error, created_at
		FROM llm_requests ORDER BY id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load llm requests: %w", err)
	}
	defer rows.Close()

	var reqs []LLMRequest
	for rows.Next() {
		var (
			req LLMRequest
			ms  int64
		)
		if err := rows.Scan(&req.ID, &req.Provider, &req.Model, &req.Operation,
			&ms, &req.Status, &req.Error, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		req.Duration = time.Duration(ms) * time.Millisecond
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm requests: %w", err)
	}
	return reqs, nil
}
