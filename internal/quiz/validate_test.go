package quiz

import "testing"

func twoAnswerQuestion(id string) Question {
	return Question{
		ID:     id,
		QuizID: "quiz-1",
		Text:   "Sample?",
		Answers: []Answer{
			{ID: id + "-a1", QuestionID: id, Ordinal: 1, Text: "yes", IsCorrect: true},
			{ID: id + "-a2", QuestionID: id, Ordinal: 2, Text: "no"},
		},
	}
}

func TestValidateQuestions_OK(t *testing.T) {
	qs := []Question{twoAnswerQuestion("q1"), twoAnswerQuestion("q2")}
	if err := ValidateQuestions(qs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateQuestions_TooFewAnswers(t *testing.T) {
	q := twoAnswerQuestion("q1")
	q.Answers = q.Answers[:1]
	if err := ValidateQuestions([]Question{q}); err == nil {
		t.Fatal("expected error for single-answer question")
	}
}

func TestValidateQuestions_NoCorrectAnswer(t *testing.T) {
	q := twoAnswerQuestion("q1")
	q.Answers[0].IsCorrect = false
	if err := ValidateQuestions([]Question{q}); err == nil {
		t.Fatal("expected error when no answer is correct")
	}
}

func TestValidateQuestions_TwoCorrectAnswers(t *testing.T) {
	q := twoAnswerQuestion("q1")
	q.Answers[1].IsCorrect = true
	if err := ValidateQuestions([]Question{q}); err == nil {
		t.Fatal("expected error when two answers are correct")
	}
}

func TestValidateQuestions_DuplicateOrdinal(t *testing.T) {
	q := twoAnswerQuestion("q1")
	q.Answers[1].Ordinal = 1
	if err := ValidateQuestions([]Question{q}); err == nil {
		t.Fatal("expected error for duplicate ordinals")
	}
}

func TestQuestionLookups(t *testing.T) {
	q := twoAnswerQuestion("q1")

	if c := q.Correct(); c == nil || c.Ordinal != 1 {
		t.Fatalf("Correct() = %+v, want ordinal 1", c)
	}
	if a := q.ByOrdinal(2); a == nil || a.Text != "no" {
		t.Fatalf("ByOrdinal(2) = %+v, want \"no\"", a)
	}
	if a := q.ByOrdinal(9); a != nil {
		t.Fatalf("ByOrdinal(9) = %+v, want nil", a)
	}
}

func TestFragmentEmpty(t *testing.T) {
	cases := []struct {
		name string
		frag Fragment
		want bool
	}{
		{"html with body", Fragment{Kind: ContentHTML, Body: "<p>x</p>"}, false},
		{"html without body", Fragment{Kind: ContentHTML, Locator: "https://example.com"}, true},
		{"pdf with locator", Fragment{Kind: ContentPDF, Locator: "https://example.com/a.pdf"}, false},
		{"pdf without locator", Fragment{Kind: ContentPDF}, true},
	}
	for _, tc := range cases {
		if got := tc.frag.Empty(); got != tc.want {
			t.Errorf("%s: Empty() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
