package session

import "github.com/quizbuddy/quizbuddy/internal/quiz"

// ReviewItem pairs one question with the user's recorded selection and the
// correct answer, for the post-quiz answer view.
type ReviewItem struct {
	Question *quiz.Question

	// Selected is the user's chosen answer, nil when none was recorded.
	Selected *quiz.Answer

	// CorrectAnswer is the answer flagged correct upstream.
	CorrectAnswer *quiz.Answer

	// Correct is true only when a selection exists and matches. A question
	// with no recorded selection counts as incorrect for display.
	Correct bool
}

// BuildReview projects the session into per-question review items. It is a
// pure read: no mutation, callable any number of times.
func BuildReview(s *State) []ReviewItem {
	items := make([]ReviewItem, 0, len(s.Questions))
	for i := range s.Questions {
		q := &s.Questions[i]
		item := ReviewItem{
			Question:      q,
			CorrectAnswer: q.Correct(),
		}
		if ordinal, ok := s.Selections[q.ID]; ok {
			item.Selected = q.ByOrdinal(ordinal)
		}
		item.Correct = item.Selected != nil &&
			item.CorrectAnswer != nil &&
			item.Selected.Ordinal == item.CorrectAnswer.Ordinal
		items = append(items, item)
	}
	return items
}
