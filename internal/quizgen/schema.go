package quizgen

import "github.com/quizbuddy/quizbuddy/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "content-quiz",
	Description: "A multiple-choice quiz derived from source material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "A short title for the quiz, derived from the source material",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionText": map[string]any{
							"type":        "string",
							"description": "The question, answerable from the source material alone",
						},
						"answers": map[string]any{
							"type":     "array",
							"minItems": 4,
							"maxItems": 4,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"answerText": map[string]any{
										"type":        "string",
										"description": "The option text",
									},
									"isCorrect": map[string]any{
										"type":        "boolean",
										"description": "Exactly one answer per question is true",
									},
									"explanation": map[string]any{
										"type":        "string",
										"description": "Why this option is right or wrong",
									},
									"quote": map[string]any{
										"type":        "string",
										"description": "A verbatim sentence from the source material supporting the explanation",
									},
								},
								"required":             []any{"answerText", "isCorrect", "explanation", "quote"},
								"additionalProperties": false,
							},
							"description": "Exactly 4 options, exactly one correct",
						},
					},
					"required":             []any{"questionText", "answers"},
					"additionalProperties": false,
				},
				"description": "The requested number of questions",
			},
		},
		"required":             []any{"name", "questions"},
		"additionalProperties": false,
	},
}
