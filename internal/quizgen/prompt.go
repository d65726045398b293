package quizgen

import (
	"fmt"
	"strings"

	"github.com/quizbuddy/quizbuddy/internal/quiz"
)

const systemPrompt = `You are a study assistant creating multiple-choice quizzes from reading material.

Rules:
- Generate exactly the requested number of questions, each answerable from the source material alone.
- Every question has exactly 4 answer options, and exactly one option is correct.
- Distractors must be plausible misreadings of the material, not random statements.
- For every option, right or wrong, write a short explanation of why it is right or wrong.
- For every option, include a short verbatim quote: a sentence copied exactly from the source material that supports the explanation. Do not paraphrase the quote.
- Cover different parts of the material; do not ask two questions about the same sentence.
- Give the quiz a short descriptive title based on the material.`

// buildUserMessage frames the source material for the model.
func buildUserMessage(frag quiz.Fragment, text string, numQuestions int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of questions: %d\n", numQuestions)
	if frag.Label != "" {
		fmt.Fprintf(&b, "Source title: %s\n", frag.Label)
	}
	if frag.Locator != "" {
		fmt.Fprintf(&b, "Source URL: %s\n", frag.Locator)
	}

	b.WriteString("\nSource material:\n")
	b.WriteString(text)

	return b.String()
}
