package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a helpful quiz generator that returns only valid JSON responses.`

// buildUserMessage constructs the generation prompt. The source text must
// already be truncated to the configured budget by the caller.
func buildUserMessage(sourceText string, questionCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create exactly %d multiple-choice questions from the following text.\n\n", questionCount)

	b.WriteString(`IMPORTANT: Return ONLY valid JSON in this EXACT format with no additional text:

{
  "quiz": [
    {
      "question": "What is the main topic?",
      "options": ["a) Option 1", "b) Option 2", "c) Option 3", "d) Option 4"],
      "answer": "b) Option 2",
      "explanation": "Brief explanation here"
    }
  ]
}

Rules:
- Create clear questions based ONLY on the text below
- Each question must have exactly 4 options (a, b, c, d)
- Only ONE correct answer per question
- Include brief explanations
- Return ONLY the JSON, no markdown, no extra text

Text to analyze:
`)
	b.WriteString(sourceText)

	return b.String()
}

// truncateSource cuts the source text to at most limit characters. Text
// beyond the budget is simply never seen by the model; this bounds cost
// and latency.
func truncateSource(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
