package session

import (
	"time"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// Phase is the lifecycle stage of a quiz attempt.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseCompleted
)

// State is the runtime state of one quiz-taking session. It is owned
// exclusively by the taking screen for the lifetime of one attempt; the
// controller operations in this package are the only mutators.
type State struct {
	// Questions is the ordered question set, fixed for the session lifetime.
	Questions []quiz.Question

	// CurrentIndex is the index of the question being displayed.
	CurrentIndex int

	// Selections maps question ID to the chosen answer's stable ordinal.
	// Re-selection replaces; display position is never recorded here.
	Selections map[string]int

	// DisplayOrder maps question ID to a shuffled permutation of that
	// question's answer slice indices. Session-local presentation only.
	DisplayOrder map[string][]int

	// AttemptID identifies the scored run on the backend.
	AttemptID string

	// StartedAt is when the attempt was opened.
	StartedAt time.Time

	// CompletedAt is set when the attempt is scored.
	CompletedAt time.Time

	// Score and TotalQuestions come back from the scoring collaborator.
	Score          int
	TotalQuestions int

	// Phase tracks NotStarted -> InProgress -> Completed.
	Phase Phase

	// submitInFlight is true between Submit and CompleteSubmit/FailSubmit.
	submitInFlight bool
}

// SubmitPending reports whether a submission is outstanding.
func (s *State) SubmitPending() bool {
	return s.submitInFlight
}

// Current returns the question at CurrentIndex, or nil before Start.
func (s *State) Current() *quiz.Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// Answered reports whether the question has a recorded selection.
func (s *State) Answered(questionID string) bool {
	_, ok := s.Selections[questionID]
	return ok
}

// DisplayedAnswers returns the current question's answers in their shuffled
// display order. The returned slice aliases the question's answer storage.
func (s *State) DisplayedAnswers() []*quiz.Answer {
	q := s.Current()
	if q == nil {
		return nil
	}
	perm, ok := s.DisplayOrder[q.ID]
	if !ok {
		perm = identity(len(q.Answers))
	}
	out := make([]*quiz.Answer, 0, len(perm))
	for _, idx := range perm {
		if idx >= 0 && idx < len(q.Answers) {
			out = append(out, &q.Answers[idx])
		}
	}
	return out
}
