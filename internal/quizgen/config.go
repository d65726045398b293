package quizgen

// Config controls quiz generation.
type Config struct {
	// NumQuestions is how many questions to request per quiz.
	NumQuestions int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxSourceChars truncates overly long source material before it is
	// sent to the model. 0 means no truncation.
	MaxSourceChars int
}

// DefaultConfig returns recommended generation defaults.
func DefaultConfig() Config {
	return Config{
		NumQuestions:   5,
		MaxTokens:      4096,
		Temperature:    0.7,
		MaxSourceChars: 40000,
	}
}
