package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studypal/internal/llm"
)

const validPayload = `{
  "quiz": [
    {
      "question": "What is photosynthesis?",
      "options": ["a) Energy from light", "b) Cell division", "c) Respiration", "d) Osmosis"],
      "answer": "a) Energy from light",
      "explanation": "Plants convert light into chemical energy."
    },
    {
      "question": "Where does photosynthesis occur?",
      "options": ["a) Mitochondria", "b) Chloroplasts", "c) Nucleus", "d) Ribosomes"],
      "answer": "b) Chloroplasts",
      "explanation": "Chloroplasts contain chlorophyll."
    },
    {
      "question": "What gas do plants absorb?",
      "options": ["a) Oxygen", "b) Nitrogen", "c) Carbon dioxide", "d) Hydrogen"],
      "answer": "c) Carbon dioxide"
    }
  ]
}`

func newTestGenerator(responses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func assertKind(t *testing.T, err error, kind Kind) *GenerationError {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T (%v)", err, err)
	}
	if genErr.Kind != kind {
		t.Fatalf("expected kind %q, got %q (%v)", kind, genErr.Kind, genErr)
	}
	if genErr.Hint == "" {
		t.Fatalf("kind %q carries no remediation hint", genErr.Kind)
	}
	return genErr
}

func TestGenerate_HappyPath(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{Content: validPayload})

	quiz, err := g.Generate(context.Background(), "Photosynthesis is the process by which plants make food.", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz))
	}
	for i, q := range quiz {
		if len(q.Options) != 4 {
			t.Fatalf("question %d: expected 4 options, got %d", i, len(q.Options))
		}
		if q.AnswerIndex() < 0 {
			t.Fatalf("question %d: answer %q not among options after shuffle", i, q.Answer)
		}
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGenerate_FencedPayloadParsesIdentically(t *testing.T) {
	fenced := "```json\n" + validPayload + "\n```"

	g1, _ := newTestGenerator(llm.MockResponse{Content: validPayload})
	g2, _ := newTestGenerator(llm.MockResponse{Content: fenced})

	plain, err := g1.Generate(context.Background(), "some study text", 3)
	if err != nil {
		t.Fatalf("unexpected error (plain): %v", err)
	}
	wrapped, err := g2.Generate(context.Background(), "some study text", 3)
	if err != nil {
		t.Fatalf("unexpected error (fenced): %v", err)
	}

	if len(plain) != len(wrapped) {
		t.Fatalf("question counts differ: %d vs %d", len(plain), len(wrapped))
	}
	for i := range plain {
		if plain[i].Question != wrapped[i].Question || plain[i].Answer != wrapped[i].Answer {
			t.Fatalf("question %d differs between plain and fenced input", i)
		}
	}
}

func TestGenerate_ProseWrappedPayload(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{
		Content: "Sure! Here is your quiz:\n" + validPayload + "\nGood luck!",
	})

	quiz, err := g.Generate(context.Background(), "some study text", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz))
	}
}

func TestGenerate_EmptySourceNoNetworkCall(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{Content: validPayload})

	_, err := g.Generate(context.Background(), "   \n\t ", 5)
	assertKind(t, err, KindValidation)
	if mock.CallCount() != 0 {
		t.Fatalf("validation failure must not call the provider, got %d calls", mock.CallCount())
	}
}

func TestGenerate_QuestionCountOutOfRange(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{Content: validPayload})

	for _, n := range []int{0, 2, 11, -1} {
		_, err := g.Generate(context.Background(), "valid text", n)
		assertKind(t, err, KindValidation)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("validation failure must not call the provider, got %d calls", mock.CallCount())
	}
}

func TestGenerate_TruncatesLongSource(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{Content: validPayload})

	long := strings.Repeat("abcdefghij", 500) // 5000 chars
	if _, err := g.Generate(context.Background(), long, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Count(prompt, "abcdefghij") != 200 {
		t.Fatalf("source text was not truncated to 2000 chars")
	}
}

func TestGenerate_ParseError(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: "I could not produce a quiz, sorry."})

	_, err := g.Generate(context.Background(), "valid text", 3)
	assertKind(t, err, KindParse)
}

func TestGenerate_MissingOptionsIsFormatError(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: `{
	  "quiz": [
	    {"question": "Q1", "options": ["a","b","c","d"], "answer": "a"},
	    {"question": "Q2", "answer": "b"}
	  ]
	}`})

	_, err := g.Generate(context.Background(), "valid text", 3)
	assertKind(t, err, KindFormat)
}

func TestGenerate_EmptyQuizArrayIsFormatError(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: `{"quiz":[]}`})

	_, err := g.Generate(context.Background(), "valid text", 3)
	assertKind(t, err, KindFormat)
}

func TestGenerate_AnswerNotAmongOptionsIsFormatError(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: `{
	  "quiz": [
	    {"question": "Q1", "options": ["a","b","c","d"], "answer": "e"}
	  ]
	}`})

	_, err := g.Generate(context.Background(), "valid text", 3)
	assertKind(t, err, KindFormat)
}

func TestGenerate_TransportErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"unauthorized", &llm.ErrUnauthorized{Err: errors.New("401")}, KindUnauthorized},
		{"forbidden", &llm.ErrForbidden{Err: errors.New("403")}, KindForbidden},
		{"rate limited after retries", &llm.ErrRetriesExhausted{Attempts: 3, Err: &llm.ErrRateLimit{Err: errors.New("429")}}, KindRateLimited},
		{"timeout after retries", &llm.ErrRetriesExhausted{Attempts: 3, Err: &llm.ErrTimeout{Err: errors.New("deadline")}}, KindTimeout},
		{"server error", &llm.ErrServer{Status: 502, Err: errors.New("bad gateway")}, KindServer},
		{"network", &llm.ErrNetwork{Err: errors.New("refused")}, KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGenerator(llm.MockResponse{Err: tt.err})
			_, err := g.Generate(context.Background(), "valid text", 3)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestGenerate_PromptMentionsQuestionCount(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{Content: validPayload})

	if _, err := g.Generate(context.Background(), "valid text", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Create exactly 7 multiple-choice questions") {
		t.Fatalf("prompt does not request the configured question count:\n%s", prompt)
	}
}
