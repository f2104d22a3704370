package study

import (
	"context"
	"fmt"

	"github.com/abhisek/studypal/internal/quizgen"
)

// Service ties the quiz generator to a session. It owns the rule that
// session state only changes on success: a failed generation leaves the
// existing quiz, counters, and page exactly as they were.
type Service struct {
	generator *quizgen.Generator
	session   *Session
}

// NewService creates a Service around the given generator and session.
func NewService(generator *quizgen.Generator, session *Session) *Service {
	return &Service{generator: generator, session: session}
}

// Session exposes the underlying session for read access by the UI.
func (s *Service) Session() *Session { return s.session }

// GenerateQuiz generates a quiz for the paragraph at index i and attaches
// it to the session. The API-call counter is bumped only on success.
func (s *Service) GenerateQuiz(ctx context.Context, i int, questionCount int) (quizgen.Quiz, error) {
	para, err := s.session.Paragraph(i)
	if err != nil {
		return nil, err
	}

	quiz, err := s.generator.Generate(ctx, para.Text, questionCount)
	if err != nil {
		return nil, err
	}

	// Swap in the new quiz only now that generation fully succeeded. A
	// regeneration that fails keeps the old quiz usable.
	if err := s.session.SetQuiz(i, quiz); err != nil {
		return nil, err
	}
	s.session.stats.APICalls++
	return quiz, nil
}

// RegenerateQuiz replaces the quiz for paragraph i with a fresh one. It is
// GenerateQuiz with an existence check: regenerating a quiz that was never
// generated is a caller bug.
func (s *Service) RegenerateQuiz(ctx context.Context, i int, questionCount int) (quizgen.Quiz, error) {
	if !s.session.HasQuiz(i) {
		return nil, fmt.Errorf("paragraph %d has no quiz to regenerate", i)
	}
	return s.GenerateQuiz(ctx, i, questionCount)
}
