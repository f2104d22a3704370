package study

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studypal/internal/llm"
	"github.com/abhisek/studypal/internal/quizgen"
)

const serviceQuizPayload = `{
  "quiz": [
    {"question": "Q1", "options": ["a) 1", "b) 2", "c) 3", "d) 4"], "answer": "a) 1", "explanation": "e"},
    {"question": "Q2", "options": ["a) 1", "b) 2", "c) 3", "d) 4"], "answer": "b) 2", "explanation": "e"},
    {"question": "Q3", "options": ["a) 1", "b) 2", "c) 3", "d) 4"], "answer": "c) 3", "explanation": "e"}
  ]
}`

func newTestService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	gen := quizgen.New(mock, quizgen.DefaultConfig())
	return NewService(gen, NewSession()), mock
}

func TestService_GenerateQuizAttachesAndCounts(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{Content: serviceQuizPayload})

	idx, err := svc.Session().AddParagraph("some study text")
	require.NoError(t, err)

	quiz, err := svc.GenerateQuiz(context.Background(), idx, 3)
	require.NoError(t, err)
	assert.Len(t, quiz, 3)
	assert.True(t, svc.Session().HasQuiz(idx))
	assert.Equal(t, 1, svc.Session().Stats().APICalls)
}

func TestService_FailedGenerationLeavesSessionUntouched(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Err: &llm.ErrRetriesExhausted{Attempts: 3, Err: &llm.ErrRateLimit{Err: errors.New("429")}},
	})

	idx, err := svc.Session().AddParagraph("some study text")
	require.NoError(t, err)

	_, err = svc.GenerateQuiz(context.Background(), idx, 3)
	require.Error(t, err)

	var genErr *quizgen.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, quizgen.KindRateLimited, genErr.Kind)

	assert.False(t, svc.Session().HasQuiz(idx))
	assert.Zero(t, svc.Session().Stats().APICalls)
}

func TestService_RegenerateSwapsOnlyOnSuccess(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{Content: serviceQuizPayload})

	idx, err := svc.Session().AddParagraph("some study text")
	require.NoError(t, err)

	original, err := svc.GenerateQuiz(context.Background(), idx, 3)
	require.NoError(t, err)

	// A failed regeneration must keep the original quiz and counters.
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrServer{Status: 500, Err: errors.New("boom")}})
	_, err = svc.RegenerateQuiz(context.Background(), idx, 3)
	require.Error(t, err)

	kept, ok := svc.Session().Quiz(idx)
	require.True(t, ok)
	assert.Equal(t, original, kept)
	assert.Equal(t, 1, svc.Session().Stats().APICalls)

	// A successful regeneration swaps the quiz in and counts the call.
	mock.AddResponse(llm.MockResponse{Content: serviceQuizPayload})
	fresh, err := svc.RegenerateQuiz(context.Background(), idx, 3)
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
	assert.Equal(t, 2, svc.Session().Stats().APICalls)
}

func TestService_RegenerateRequiresExistingQuiz(t *testing.T) {
	svc, mock := newTestService()

	idx, err := svc.Session().AddParagraph("some study text")
	require.NoError(t, err)

	_, err = svc.RegenerateQuiz(context.Background(), idx, 3)
	require.Error(t, err)
	assert.Zero(t, mock.CallCount())
}

func TestService_GenerateQuizBadIndex(t *testing.T) {
	svc, mock := newTestService()

	_, err := svc.GenerateQuiz(context.Background(), 5, 3)
	require.Error(t, err)
	assert.Zero(t, mock.CallCount())
}
