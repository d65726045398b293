// Package session implements the quiz-taking state machine: answering,
// backward/forward navigation with the answer-before-advance rule, scoring
// hand-off, and the post-completion review projection.
package session

import (
	"math/rand/v2"
	"time"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// Start begins a new attempt over the given question set. CurrentIndex
// resets to 0, selections are cleared, and every question gets a fresh
// randomized display permutation of its answers.
func Start(questions []quiz.Question, attemptID string) (*State, error) {
	if len(questions) == 0 {
		return nil, ErrInvalidQuiz
	}

	s := &State{
		Questions:    questions,
		Selections:   make(map[string]int, len(questions)),
		DisplayOrder: make(map[string][]int, len(questions)),
		AttemptID:    attemptID,
		StartedAt:    time.Now(),
		Phase:        PhaseInProgress,
	}
	for _, q := range questions {
		s.DisplayOrder[q.ID] = shuffled(len(q.Answers))
	}
	return s, nil
}

// Retake re-enters InProgress over the same question set under a new
// attempt identity: cleared selections, fresh display order.
func Retake(s *State, attemptID string) (*State, error) {
	return Start(s.Questions, attemptID)
}

// SelectAnswer records the chosen ordinal for the question. Re-selection
// replaces the prior choice. Selection is keyed by question ID, so answering
// a question outside the current focus is harmless.
func SelectAnswer(s *State, questionID string, ordinal int) {
	if s.Phase != PhaseInProgress {
		return
	}
	s.Selections[questionID] = ordinal
}

// GoPrevious steps back one question. Always allowed except at the first
// question, where it is a no-op.
func GoPrevious(s *State) {
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
}

// GoNext advances to the next question. Fails with ErrAnswerRequired when
// the current question has no recorded selection; the index is unchanged
// on failure and never moves past the last question.
func GoNext(s *State) error {
	q := s.Current()
	if q == nil {
		return ErrInvalidQuiz
	}
	if !s.Answered(q.ID) {
		return ErrAnswerRequired
	}
	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
	}
	return nil
}

// IsLastQuestion reports whether the current question is the final one.
func IsLastQuestion(s *State) bool {
	return s.CurrentIndex == len(s.Questions)-1
}

// Submit validates that the session may be scored: the cursor must be on
// the last question, the last question must be answered, and no submission
// may already be outstanding. On success the in-flight guard is set and the
// caller hands Selections plus AttemptID to the scoring collaborator,
// then calls CompleteSubmit or FailSubmit with the outcome.
func Submit(s *State) error {
	if s.submitInFlight {
		return ErrSubmitInFlight
	}
	if !IsLastQuestion(s) {
		return ErrAnswerRequired
	}
	q := s.Current()
	if q == nil {
		return ErrInvalidQuiz
	}
	if !s.Answered(q.ID) {
		return ErrAnswerRequired
	}
	s.submitInFlight = true
	return nil
}

// CompleteSubmit records the scoring result and transitions to Completed.
func CompleteSubmit(s *State, res quiz.Result) {
	s.submitInFlight = false
	s.Score = res.Score
	s.TotalQuestions = res.TotalQuestions
	s.CompletedAt = time.Now()
	s.Phase = PhaseCompleted
}

// FailSubmit clears the in-flight guard after a failed scoring call,
// leaving the session in its last valid InProgress state for a retry.
func FailSubmit(s *State) {
	s.submitInFlight = false
}

// shuffled returns a random permutation of [0, n).
func shuffled(n int) []int {
	perm := identity(n)
	rand.Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
