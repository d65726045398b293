// Package quizgen generates multiple-choice quizzes from extracted
// content with an LLM, serving as the local quiz backend when no remote
// API is configured.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/quizbuddy/quizbuddy/internal/llm"
	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

// Generated is the output of one generation run.
type Generated struct {
	Name      string
	Questions []quiz.Question
}

// Generator produces a quiz from source material.
type Generator interface {
	GenerateQuiz(ctx context.Context, frag quiz.Fragment, text string) (*Generated, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Raw LLM response shapes before validation.
type quizOutput struct {
	Name      string           `json:"name"`
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	QuestionText string         `json:"questionText"`
	Answers      []answerOutput `json:"answers"`
}

type answerOutput struct {
	AnswerText  string `json:"answerText"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
	Quote       string `json:"quote"`
}

// GenerateQuiz produces a validated question set from the fragment's
// source text. Supporting quotes are checked against the text and each
// answer's QuoteVerified flag set accordingly.
func (g *LLMGenerator) GenerateQuiz(ctx context.Context, frag quiz.Fragment, text string) (*Generated, error) {
	ctx = llm.WithOperation(ctx, "generate-quiz")

	if g.config.MaxSourceChars > 0 && len(text) > g.config.MaxSourceChars {
		text = truncateAtRune(text, g.config.MaxSourceChars)
	}

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(frag, text, g.config.NumQuestions),
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions")
	}

	quizID := uuid.NewString()
	questions := make([]quiz.Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		q := quiz.Question{
			ID:     uuid.NewString(),
			QuizID: quizID,
			Text:   rq.QuestionText,
		}
		for i, ra := range rq.Answers {
			q.Answers = append(q.Answers, quiz.Answer{
				ID:            uuid.NewString(),
				QuestionID:    q.ID,
				Ordinal:       i + 1,
				Text:          ra.AnswerText,
				IsCorrect:     ra.IsCorrect,
				Explanation:   ra.Explanation,
				Quote:         ra.Quote,
				QuoteVerified: QuoteInSource(ra.Quote, text),
			})
		}
		questions = append(questions, q)
	}

	if err := quiz.ValidateQuestions(questions); err != nil {
		return nil, fmt.Errorf("generated quiz rejected: %w", err)
	}

	name := raw.Name
	if name == "" {
		name = frag.Label
	}
	return &Generated{Name: name, Questions: questions}, nil
}

// truncateAtRune cuts s to at most limit bytes without splitting a
// multi-byte rune.
func truncateAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
