package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUser_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.CurrentUser(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("CurrentUser on empty store: err = %v, want ErrNotFound", err)
	}

	u := quiz.User{ID: "u1", Email: "student@example.com", Domains: []string{"example.com"}}
	if err := s.SaveUser(ctx, u); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	got, err := s.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if got.ID != u.ID || got.Email != u.Email || len(got.Domains) != 1 {
		t.Errorf("CurrentUser = %+v, want %+v", got, u)
	}

	if err := s.ClearUser(ctx); err != nil {
		t.Fatalf("ClearUser: %v", err)
	}
	if _, err := s.CurrentUser(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("CurrentUser after clear: err = %v, want ErrNotFound", err)
	}
}

func TestPendingFragment_LastWriteWins(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := quiz.Fragment{Kind: quiz.ContentHTML, Locator: "https://a.example", Body: "<p>a</p>"}
	second := quiz.Fragment{Kind: quiz.ContentPDF, Locator: "https://b.example/b.pdf", Label: "b", Body: "b text"}

	if err := s.SavePendingFragment(ctx, first); err != nil {
		t.Fatalf("SavePendingFragment: %v", err)
	}
	if err := s.SavePendingFragment(ctx, second); err != nil {
		t.Fatalf("SavePendingFragment (overwrite): %v", err)
	}

	got, err := s.PendingFragment(ctx)
	if err != nil {
		t.Fatalf("PendingFragment: %v", err)
	}
	if got != second {
		t.Errorf("PendingFragment = %+v, want the later write %+v", got, second)
	}

	if err := s.ClearPendingFragment(ctx); err != nil {
		t.Fatalf("ClearPendingFragment: %v", err)
	}
	if _, err := s.PendingFragment(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("PendingFragment after clear: err = %v, want ErrNotFound", err)
	}
}

func TestHistory_MostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"a1", "a2", "a3"} {
		rec := AttemptRecord{
			ID:             id,
			QuizID:         "quiz-1",
			QuizTitle:      "Photosynthesis",
			Score:          i,
			TotalQuestions: 5,
			StartedAt:      base.Add(time.Duration(i) * time.Hour),
			CompletedAt:    base.Add(time.Duration(i)*time.Hour + 10*time.Minute),
		}
		if err := s.RecordAttempt(ctx, rec); err != nil {
			t.Fatalf("RecordAttempt(%s): %v", id, err)
		}
	}

	recs, err := s.History(ctx, 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("History returned %d records, want 2", len(recs))
	}
	if recs[0].ID != "a3" || recs[1].ID != "a2" {
		t.Errorf("History order = %s, %s; want a3, a2", recs[0].ID, recs[1].ID)
	}
	if recs[0].Score != 2 || recs[0].TotalQuestions != 5 {
		t.Errorf("record fields = %+v", recs[0])
	}
}

func TestLLMRequests_Log(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.LogLLMRequest(ctx, LLMRequest{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		Operation: "generate-quiz",
		Duration:  1200 * time.Millisecond,
		Status:    LLMStatusOK,
	})
	if err != nil {
		t.Fatalf("LogLLMRequest: %v", err)
	}
	err = s.LogLLMRequest(ctx, LLMRequest{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		Operation: "generate-quiz",
		Duration:  300 * time.Millisecond,
		Status:    LLMStatusError,
		Error:     "rate limited",
	})
	if err != nil {
		t.Fatalf("LogLLMRequest: %v", err)
	}

	reqs, err := s.LLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("LLMRequests: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("got %d requests, want 2", len(reqs))
	}
	if reqs[0].Status != LLMStatusError || reqs[0].Error != "rate limited" {
		t.Errorf("newest request = %+v", reqs[0])
	}
	if reqs[1].Duration != 1200*time.Millisecond {
		t.Errorf("Duration = %v, want 1.2s", reqs[1].Duration)
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("QUIZBUDDY_DB", p)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != p {
		t.Errorf("DefaultDBPath = %q, want %q", got, p)
	}
}
