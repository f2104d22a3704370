package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/studypal/internal/llm"
)

// Generator turns study text into a validated, shuffled Quiz via the LLM
// provider. Every failure surfaces as a *GenerationError; nothing partial
// is ever returned.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate produces a quiz of questionCount questions from sourceText.
// Input validation happens before any network call.
func (g *Generator) Generate(ctx context.Context, sourceText string, questionCount int) (Quiz, error) {
	trimmed := strings.TrimSpace(sourceText)
	if trimmed == "" {
		return nil, &GenerationError{
			Kind: KindValidation,
			Hint: "Paste some study text first.",
			Err:  fmt.Errorf("source text is empty"),
		}
	}
	if questionCount < g.config.MinQuestions || questionCount > g.config.MaxQuestions {
		return nil, &GenerationError{
			Kind: KindValidation,
			Hint: fmt.Sprintf("Question count must be between %d and %d.", g.config.MinQuestions, g.config.MaxQuestions),
			Err:  fmt.Errorf("question count %d out of range [%d,%d]", questionCount, g.config.MinQuestions, g.config.MaxQuestions),
		}
	}

	trimmed = truncateSource(trimmed, g.config.MaxSourceChars)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(trimmed, questionCount)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, wrapTransportError(err)
	}

	quiz, err := parseQuiz(resp.Content)
	if err != nil {
		return nil, err
	}

	ShuffleOptions(quiz)
	return quiz, nil
}

// parseQuiz normalizes and parses the raw model output. Parsing is
// all-or-nothing: either every question validates or the whole response
// is rejected.
func parseQuiz(raw string) (Quiz, error) {
	cleaned := stripFences(raw)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		// The model sometimes wraps the payload in prose. Fall back to the
		// widest {...} span before giving up.
		span, ok := extractObject(cleaned)
		if !ok {
			return nil, &GenerationError{Kind: KindParse, Hint: hintParse, Err: err}
		}
		if err2 := json.Unmarshal([]byte(span), &parsed); err2 != nil {
			return nil, &GenerationError{Kind: KindParse, Hint: hintParse, Err: err2}
		}
		cleaned = span
	}

	if err := validatePayload(parsed); err != nil {
		return nil, &GenerationError{Kind: KindFormat, Hint: hintFormat, Err: err}
	}

	var payload struct {
		Quiz Quiz `json:"quiz"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &GenerationError{Kind: KindParse, Hint: hintParse, Err: err}
	}

	for i, q := range payload.Quiz {
		if !slices.Contains(q.Options, q.Answer) {
			return nil, &GenerationError{
				Kind: KindFormat,
				Hint: hintFormat,
				Err:  fmt.Errorf("question %d: answer %q is not one of the options", i+1, q.Answer),
			}
		}
	}

	return payload.Quiz, nil
}
