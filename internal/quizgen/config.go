package quizgen

// Config controls the behavior of the Generator.
type Config struct {
	// MinQuestions and MaxQuestions bound the accepted question count.
	MinQuestions int
	MaxQuestions int

	// MaxSourceChars is the character budget for the source text embedded
	// in the prompt. Longer text is truncated, not rejected.
	MaxSourceChars int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard limits.
func DefaultConfig() Config {
	return Config{
		MinQuestions:   3,
		MaxQuestions:   10,
		MaxSourceChars: 2000,
		MaxTokens:      1500,
		Temperature:    0.5,
	}
}
