package quizgen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// PDFFetcher resolves a PDF locator into a text fragment.
type PDFFetcher interface {
	Fetch(ctx context.Context, url string) (quiz.Fragment, error)
}

// LocalService is the quiz backend used when no remote API is
// configured: quizzes are generated by an LLM and attempts are scored
// locally. Quizzes and attempts live in memory for the process.
type LocalService struct {
	gen Generator
	pdf PDFFetcher

	mu       sync.Mutex
	quizzes  map[string]*storedQuiz
	attempts map[string]*localAttempt
}

type storedQuiz struct {
	quiz      quiz.Quiz
	questions []quiz.Question
}

type localAttempt struct {
	attempt    quiz.Attempt
	selections map[string]int
}

// NewLocalService builds a LocalService. pdf may be nil, in which case
// PDF fragments are rejected.
func NewLocalService(gen Generator, pdf PDFFetcher) *LocalService {
	return &LocalService{
		gen:      gen,
		pdf:      pdf,
		quizzes:  make(map[string]*storedQuiz),
		attempts: make(map[string]*localAttempt),
	}
}

var _ quiz.Service = (*LocalService)(nil)

func (s *LocalService) CreateQuiz(ctx context.Context, frag quiz.Fragment) (*quiz.Quiz, error) {
	switch frag.Kind {
	case quiz.ContentWord:
		return nil, &quiz.CollaboratorError{
			Kind: quiz.KindInput, Op: "create-quiz",
			Err: fmt.Errorf("word documents are not supported by the local backend"),
		}
	case quiz.ContentPDF:
		if s.pdf == nil {
			return nil, &quiz.CollaboratorError{
				Kind: quiz.KindInput, Op: "create-quiz",
				Err: fmt.Errorf("no PDF extractor configured"),
			}
		}
		resolved, err := s.pdf.Fetch(ctx, frag.Locator)
		if err != nil {
			return nil, &quiz.CollaboratorError{Kind: quiz.KindTransport, Op: "create-quiz", Err: err}
		}
		if frag.Label != "" {
			resolved.Label = frag.Label
		}
		frag = resolved
	}

	if frag.Empty() {
		return nil, &quiz.CollaboratorError{
			Kind: quiz.KindInput, Op: "create-quiz",
			Err: fmt.Errorf("no content to generate from"),
		}
	}

	gen, err := s.gen.GenerateQuiz(ctx, frag, SourceText(frag))
	if err != nil {
		return nil, &quiz.CollaboratorError{Kind: quiz.KindRemote, Op: "create-quiz", Err: err}
	}

	q := quiz.Quiz{
		ID:          gen.Questions[0].QuizID,
		Name:        gen.Name,
		ContentType: frag.Kind,
		ContentURL:  frag.Locator,
		Version:     1,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.quizzes[q.ID] = &storedQuiz{quiz: q, questions: gen.Questions}
	s.mu.Unlock()

	return &q, nil
}

func (s *LocalService) Questions(_ context.Context, quizID string) ([]quiz.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sq, ok := s.quizzes[quizID]
	if !ok {
		return nil, &quiz.CollaboratorError{
			Kind: quiz.KindRemote, Op: "questions",
			Err: fmt.Errorf("unknown quiz %s", quizID),
		}
	}
	return sq.questions, nil
}

func (s *LocalService) StartAttempt(_ context.Context, quizID string) (*quiz.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sq, ok := s.quizzes[quizID]
	if !ok {
		return nil, &quiz.CollaboratorError{
			Kind: quiz.KindRemote, Op: "start-attempt",
			Err: fmt.Errorf("unknown quiz %s", quizID),
		}
	}

	att := quiz.Attempt{
		ID:             uuid.NewString(),
		QuizID:         quizID,
		StartedAt:      time.Now().UTC(),
		TotalQuestions: len(sq.questions),
	}
	s.attempts[att.ID] = &localAttempt{
		attempt:    att,
		selections: make(map[string]int),
	}
	return &att, nil
}

func (s *LocalService) SubmitAnswer(_ context.Context, attemptID, questionID string, ordinal int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	la, ok := s.attempts[attemptID]
	if !ok {
		return &quiz.CollaboratorError{
			Kind: quiz.KindRemote, Op: "submit-answer",
			Err: fmt.Errorf("unknown attempt %s", attemptID),
		}
	}
	la.selections[questionID] = ordinal
	return nil
}

func (s *LocalService) CompleteAttempt(_ context.Context, attemptID string) (*quiz.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	la, ok := s.attempts[attemptID]
	if !ok {
		return nil, &quiz.CollaboratorError{
			Kind: quiz.KindRemote, Op: "complete-attempt",
			Err: fmt.Errorf("unknown attempt %s", attemptID),
		}
	}
	sq := s.quizzes[la.attempt.QuizID]

	score := 0
	for i := range sq.questions {
		q := &sq.questions[i]
		if ord, answered := la.selections[q.ID]; answered {
			if a := q.ByOrdinal(ord); a != nil && a.IsCorrect {
				score++
			}
		}
	}

	now := time.Now().UTC()
	la.attempt.CompletedAt = &now
	la.attempt.Score = score

	return &quiz.Result{Score: score, TotalQuestions: len(sq.questions)}, nil
}
