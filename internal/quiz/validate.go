package quiz

import "fmt"

// ValidateQuestions checks the structural invariants the session controller
// relies on: at least two answers per question, exactly one answer flagged
// correct, and unique ordinals within a question. The generation backend is
// supposed to guarantee these; validating at ingestion keeps a malformed
// payload from surfacing as a confusing mid-quiz failure.
func ValidateQuestions(questions []Question) error {
	for i, q := range questions {
		if len(q.Answers) < 2 {
			return fmt.Errorf("question %d (%s): %d answers, need at least 2", i+1, q.ID, len(q.Answers))
		}

		correct := 0
		seen := make(map[int]bool, len(q.Answers))
		for _, a := range q.Answers {
			if a.IsCorrect {
				correct++
			}
			if seen[a.Ordinal] {
				return fmt.Errorf("question %d (%s): duplicate answer ordinal %d", i+1, q.ID, a.Ordinal)
			}
			seen[a.Ordinal] = true
		}
		if correct != 1 {
			return fmt.Errorf("question %d (%s): %d answers flagged correct, want exactly 1", i+1, q.ID, correct)
		}
	}
	return nil
}
