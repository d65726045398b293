package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// ErrNotFound is returned when a kv key has no stored value.
var ErrNotFound = errors.New("store: not found")

const (
	keyCurrentUser     = "current_user"
	keyAuthToken       = "auth_token"
	keyPendingFragment = "pending_fragment"
)

// setKV stores value under key as JSON, last write wins.
func (s *Store) setKV(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *Store) getKV(ctx context.Context, key string, out any) error {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) deleteKV(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// SaveUser records the signed-in user.
func (s *Store) SaveUser(ctx context.Context, u quiz.User) error {
	return s.setKV(ctx, keyCurrentUser, u)
}

// CurrentUser returns the signed-in user, or ErrNotFound when nobody
// is signed in.
func (s *Store) CurrentUser(ctx context.Context) (quiz.User, error) {
	var u quiz.User
	if err := s.getKV(ctx, keyCurrentUser, &u); err != nil {
		return quiz.User{}, err
	}
	return u, nil
}

// ClearUser signs the user out.
func (s *Store) ClearUser(ctx context.Context) error {
	return s.deleteKV(ctx, keyCurrentUser)
}

// SaveToken stores the API bearer token for the signed-in user.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.setKV(ctx, keyAuthToken, token)
}

// Token returns the stored API bearer token, or ErrNotFound.
func (s *Store) Token(ctx context.Context) (string, error) {
	var token string
	if err := s.getKV(ctx, keyAuthToken, &token); err != nil {
		return "", err
	}
	return token, nil
}

// ClearToken drops the stored API bearer token.
func (s *Store) ClearToken(ctx context.Context) error {
	return s.deleteKV(ctx, keyAuthToken)
}

// SavePendingFragment stages extracted content for quiz creation.
// A later extraction overwrites an earlier one.
func (s *Store) SavePendingFragment(ctx context.Context, f quiz.Fragment) error {
	return s.setKV(ctx, keyPendingFragment, f)
}

// PendingFragment returns the staged fragment, or ErrNotFound.
func (s *Store) PendingFragment(ctx context.Context) (quiz.Fragment, error) {
	var f quiz.Fragment
	if err := s.getKV(ctx, keyPendingFragment, &f); err != nil {
		return quiz.Fragment{}, err
	}
	return f, nil
}

// ClearPendingFragment drops the staged fragment.
func (s *Store) ClearPendingFragment(ctx context.Context) error {
	return s.deleteKV(ctx, keyPendingFragment)
}
