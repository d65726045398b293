package taking

import "github.com/quizbuddy/quizbuddy/internal/quiz"

// answerSavedMsg confirms (or reports failure of) persisting one answer
// selection to the backend.
type answerSavedMsg struct {
	Err error
}

// submitDoneMsg carries the scoring outcome of the completed attempt.
type submitDoneMsg struct {
	Result *quiz.Result
	Err    error
}
