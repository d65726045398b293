package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/quizbuddy/quizbuddy/internal/llm"
	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

const sourceBody = "<p>The mitochondria is the powerhouse of the cell. Ribosomes build proteins.</p>"

// cannedQuiz builds a valid single-question LLM response. The first
// answer is correct and carries a real quote; the last carries a
// fabricated one.
func cannedQuiz(t *testing.T) json.RawMessage {
	t.Helper()
	out := quizOutput{
		Name: "Cell Biology",
		Questions: []questionOutput{{
			QuestionText: "What is the mitochondria?",
			Answers: []answerOutput{
				{AnswerText: "The powerhouse of the cell", IsCorrect: true, Explanation: "Stated directly.", Quote: "the powerhouse of the cell"},
				{AnswerText: "A protein builder", Explanation: "That is the ribosome.", Quote: "Ribosomes build proteins"},
				{AnswerText: "A cell membrane", Explanation: "Not mentioned.", Quote: "Ribosomes build proteins"},
				{AnswerText: "A nucleus", Explanation: "Not supported.", Quote: "the nucleus stores DNA"},
			},
		}},
	}
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal canned quiz: %v", err)
	}
	return data
}

func testFragment() quiz.Fragment {
	return quiz.Fragment{
		Kind:    quiz.ContentHTML,
		Locator: "https://example.com/cells",
		Label:   "Cells",
		Body:    sourceBody,
	}
}

func TestGenerateQuiz_BuildsQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedQuiz(t)})
	gen := New(mock, DefaultConfig())

	frag := testFragment()
	got, err := gen.GenerateQuiz(context.Background(), frag, SourceText(frag))
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}

	if got.Name != "Cell Biology" {
		t.Errorf("Name = %q", got.Name)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(got.Questions))
	}
	q := got.Questions[0]
	if q.ID == "" || q.QuizID == "" {
		t.Error("question must get generated identifiers")
	}
	if len(q.Answers) != 4 {
		t.Fatalf("got %d answers, want 4", len(q.Answers))
	}
	for i, a := range q.Answers {
		if a.Ordinal != i+1 {
			t.Errorf("answer %d ordinal = %d, want %d", i, a.Ordinal, i+1)
		}
		if a.QuestionID != q.ID {
			t.Errorf("answer %d not linked to its question", i)
		}
	}
	if correct := q.Correct(); correct == nil || correct.Ordinal != 1 {
		t.Errorf("Correct() = %+v, want ordinal 1", q.Correct())
	}
}

func TestGenerateQuiz_VerifiesQuotes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedQuiz(t)})
	gen := New(mock, DefaultConfig())

	frag := testFragment()
	got, err := gen.GenerateQuiz(context.Background(), frag, SourceText(frag))
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}

	answers := got.Questions[0].Answers
	for i := 0; i < 3; i++ {
		if !answers[i].QuoteVerified {
			t.Errorf("answer %d quote %q should verify against the source", i, answers[i].Quote)
		}
	}
	if answers[3].QuoteVerified {
		t.Errorf("fabricated quote %q must not verify", answers[3].Quote)
	}
}

func TestGenerateQuiz_RejectsInvalidQuestionSet(t *testing.T) {
	// Two answers flagged correct.
	bad := strings.Replace(string(cannedQuiz(t)), `"isCorrect":false`, `"isCorrect":true`, 1)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	gen := New(mock, DefaultConfig())

	frag := testFragment()
	if _, err := gen.GenerateQuiz(context.Background(), frag, SourceText(frag)); err == nil {
		t.Fatal("expected an error for a question with two correct answers")
	}
}

func TestGenerateQuiz_TruncatesLongSource(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedQuiz(t)})
	cfg := DefaultConfig()
	cfg.MaxSourceChars = 100
	gen := New(mock, cfg)

	long := strings.Repeat("filler text ", 1000)
	frag := quiz.Fragment{Kind: quiz.ContentText, Body: long}
	if _, err := gen.GenerateQuiz(context.Background(), frag, long); err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}

	sent := mock.Calls[0].Prompt
	if len(sent) > 500 {
		t.Errorf("prompt should carry truncated source, got %d chars", len(sent))
	}
}

func TestGenerateQuiz_TruncationKeepsRuneBoundary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedQuiz(t)})
	cfg := DefaultConfig()
	cfg.MaxSourceChars = 11 // lands mid-rune in a 2-byte-rune string
	gen := New(mock, cfg)

	long := strings.Repeat("é", 40)
	frag := quiz.Fragment{Kind: quiz.ContentText, Body: long}
	if _, err := gen.GenerateQuiz(context.Background(), frag, long); err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}

	if sent := mock.Calls[0].Prompt; !utf8.ValidString(sent) {
		t.Error("truncation split a multi-byte rune; the prompt is not valid UTF-8")
	}
}
