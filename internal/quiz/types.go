package quiz

import (
	"context"
	"time"
)

// ContentType identifies the kind of source a quiz was built from.
type ContentType string

const (
	ContentHTML ContentType = "html"
	ContentPDF  ContentType = "pdf"
	ContentWord ContentType = "word"
	ContentText ContentType = "text"
)

// User is the authenticated account record held in the session store.
type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Domains     []string `json:"domains"`
	IsSuperUser bool     `json:"isSuperUser,omitempty"`
}

// Quiz is the generated quiz metadata returned by the backend.
type Quiz struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ContentType ContentType `json:"contentType"`
	ContentURL  string      `json:"contentUrl"`
	Version     int         `json:"version"`
	CreatedBy   string      `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID      string   `json:"id"`
	QuizID  string   `json:"quizId"`
	Text    string   `json:"questionText"`
	Answers []Answer `json:"answers"`
}

// Answer is one option of a question. Ordinal is the stable identity used
// for recording a selection; it never changes with display order.
type Answer struct {
	ID            string `json:"id"`
	QuestionID    string `json:"questionId"`
	Ordinal       int    `json:"answerNumber"`
	Text          string `json:"answerText"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
	Quote         string `json:"quote"`
	QuoteVerified bool   `json:"quoteFoundInSource"`
}

// Correct returns the answer flagged correct, or nil if none is.
func (q *Question) Correct() *Answer {
	for i := range q.Answers {
		if q.Answers[i].IsCorrect {
			return &q.Answers[i]
		}
	}
	return nil
}

// ByOrdinal returns the answer with the given ordinal, or nil.
func (q *Question) ByOrdinal(ordinal int) *Answer {
	for i := range q.Answers {
		if q.Answers[i].Ordinal == ordinal {
			return &q.Answers[i]
		}
	}
	return nil
}

// Attempt is one scored run through a quiz's question set.
type Attempt struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	QuizID         string     `json:"quizId"`
	StartedAt      time.Time  `json:"startedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
}

// Result is the scoring outcome returned when an attempt completes.
type Result struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
}

// Service is the quiz backend contract. The remote API client and the
// local LLM-backed generator both implement it; the session layer never
// knows which one it is talking to.
type Service interface {
	// CreateQuiz submits extracted content and returns the new quiz.
	CreateQuiz(ctx context.Context, frag Fragment) (*Quiz, error)

	// Questions returns the quiz's ordered question list.
	Questions(ctx context.Context, quizID string) ([]Question, error)

	// StartAttempt opens a new attempt for the quiz.
	StartAttempt(ctx context.Context, quizID string) (*Attempt, error)

	// SubmitAnswer records a single answer selection by ordinal.
	SubmitAnswer(ctx context.Context, attemptID, questionID string, ordinal int) error

	// CompleteAttempt closes the attempt and returns the score.
	CompleteAttempt(ctx context.Context, attemptID string) (*Result, error)
}

// Fragment is the extracted, simplified markup representing a page's or
// document's quiz-worthy content. Body is populated only for in-page
// extraction; PDF and Word fragments carry only a locator for an external
// fetch/parse collaborator.
type Fragment struct {
	Kind    ContentType `json:"type"`
	Locator string      `json:"url"`
	Label   string      `json:"name"`
	Body    string      `json:"content,omitempty"`
}

// Empty reports whether the fragment carries neither body nor locator
// worth generating from.
func (f Fragment) Empty() bool {
	if f.Kind == ContentHTML || f.Kind == ContentText {
		return f.Body == ""
	}
	return f.Locator == ""
}
