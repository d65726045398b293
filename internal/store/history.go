package store

import (
	"context"
	"fmt"
	"time"
)

// AttemptRecord is one finished quiz attempt, as shown on the history
// screen.
type AttemptRecord struct {
	ID             string
	QuizID         string
	QuizTitle      string
	Score          int
	TotalQuestions int
	StartedAt      time.Time
	CompletedAt    time.Time
}

// RecordAttempt appends a finished attempt to the history.
func (s *Store) RecordAttempt(ctx context.Context, rec AttemptRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempt_history (id, quiz_id, quiz_title, score, total_questions, started_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.QuizID, rec.QuizTitle, rec.Score, rec.TotalQuestions,
		rec.StartedAt.UTC(), rec.CompletedAt.UTC())
	if err != nil {
		return fmt.Errorf("record attempt %s: %w", rec.ID, err)
	}
	return nil
}

// History returns finished attempts, most recent first. limit <= 0
// means no limit.
func (s *Store) History(ctx context.Context, limit int) ([]AttemptRecord, error) {
	query := `SELECT id, quiz_id, quiz_title, score, total_questions, started_at, completed_at
		FROM attempt_history ORDER BY completed_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var recs []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		if err := rows.Scan(&rec.ID, &rec.QuizID, &rec.QuizTitle, &rec.Score,
			&rec.TotalQuestions, &rec.StartedAt, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return recs, nil
}
