package session

import "errors"

// The controller's failures are recoverable validation outcomes, not faults.
// A rejected operation leaves the state exactly as it was.
var (
	// ErrInvalidQuiz means the question set is unusable (empty).
	ErrInvalidQuiz = errors.New("quiz has no questions")

	// ErrAnswerRequired blocks Next/Submit until the current question has a
	// recorded selection. Surfaced as an inline message, never an abort.
	ErrAnswerRequired = errors.New("select an answer first")

	// ErrSubmitInFlight rejects a second Submit while one is outstanding
	// for the same attempt.
	ErrSubmitInFlight = errors.New("submission already in progress")
)
