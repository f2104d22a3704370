package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studypal/internal/quizgen"
)

func testQuiz(n int) quizgen.Quiz {
	quiz := make(quizgen.Quiz, n)
	for i := range quiz {
		quiz[i] = quizgen.Question{
			Question: "Q",
			Options:  []string{"a) right", "b) wrong", "c) wrong", "d) wrong"},
			Answer:   "a) right",
		}
	}
	return quiz
}

func sessionWithQuiz(t *testing.T, n int) *Session {
	t.Helper()
	s := NewSession()
	idx, err := s.AddParagraph("The mitochondria is the powerhouse of the cell.")
	require.NoError(t, err)
	require.NoError(t, s.SetQuiz(idx, testQuiz(n)))
	return s
}

func answerAll(t *testing.T, s *Session, correct bool) {
	t.Helper()
	_, quiz, ok := s.ActiveQuiz()
	require.True(t, ok)
	for q := range quiz {
		opt := quiz[q].AnswerIndex()
		if !correct {
			opt = (opt + 1) % len(quiz[q].Options)
		}
		require.NoError(t, s.SelectAnswer(q, opt))
	}
}

func TestSession_FullRunAllCorrect(t *testing.T) {
	s := sessionWithQuiz(t, 5)
	assert.Equal(t, PageBrowsing, s.Page())

	require.NoError(t, s.StartQuiz(0))
	assert.Equal(t, PageTakingQuiz, s.Page())
	assert.False(t, s.CanSubmit())

	answerAll(t, s, true)
	assert.True(t, s.CanSubmit())

	result, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, PageShowingResults, s.Page())
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 100.0, result.Percentage)

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, 5, history[0].Score)
	assert.Equal(t, 100.0, history[0].Percentage)
	assert.NotZero(t, history[0].ID)
	assert.False(t, history[0].When.IsZero())

	stats := s.Stats()
	assert.Equal(t, 5, stats.QuestionsAnswered)
	assert.Equal(t, 5, stats.CorrectAnswers)
	assert.Equal(t, 100.0, stats.Accuracy())
}

func TestSession_PartialScore(t *testing.T) {
	s := sessionWithQuiz(t, 4)
	require.NoError(t, s.StartQuiz(0))

	_, quiz, _ := s.ActiveQuiz()
	for q := range quiz {
		opt := quiz[q].AnswerIndex()
		if q >= 3 { // last one wrong
			opt = (opt + 1) % len(quiz[q].Options)
		}
		require.NoError(t, s.SelectAnswer(q, opt))
	}

	result, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 75.0, result.Percentage)
	assert.Equal(t, []bool{true, true, true, false}, result.Correct)
}

func TestSession_SubmitGuard(t *testing.T) {
	s := sessionWithQuiz(t, 3)
	require.NoError(t, s.StartQuiz(0))

	require.NoError(t, s.SelectAnswer(0, 0))
	assert.False(t, s.CanSubmit())

	_, err := s.Submit()
	require.Error(t, err)
	assert.Equal(t, PageTakingQuiz, s.Page())
	assert.Empty(t, s.History())
	assert.Zero(t, s.Stats().QuestionsAnswered)
}

func TestSession_ReSelectOverwrites(t *testing.T) {
	s := sessionWithQuiz(t, 3)
	require.NoError(t, s.StartQuiz(0))

	require.NoError(t, s.SelectAnswer(0, 1))
	require.NoError(t, s.SelectAnswer(0, 2))

	opt, ok := s.Answer(0)
	require.True(t, ok)
	assert.Equal(t, 2, opt)
	assert.Equal(t, 1, s.AnsweredCount())
}

func TestSession_RetakeKeepsQuestionsAppendsHistory(t *testing.T) {
	s := sessionWithQuiz(t, 3)
	require.NoError(t, s.StartQuiz(0))
	answerAll(t, s, false)
	_, err := s.Submit()
	require.NoError(t, err)

	require.NoError(t, s.Retake())
	assert.Equal(t, PageTakingQuiz, s.Page())
	assert.Zero(t, s.AnsweredCount())
	assert.Nil(t, s.Result())
	require.Len(t, s.History(), 1)

	answerAll(t, s, true)
	result, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score)

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, 0, history[0].Score)
	assert.Equal(t, 3, history[1].Score)

	stats := s.Stats()
	assert.Equal(t, 6, stats.QuestionsAnswered)
	assert.Equal(t, 3, stats.CorrectAnswers)
	assert.Equal(t, 50.0, stats.Accuracy())
}

func TestSession_RetakeRequiresResults(t *testing.T) {
	s := sessionWithQuiz(t, 3)
	require.Error(t, s.Retake())

	require.NoError(t, s.StartQuiz(0))
	require.Error(t, s.Retake())
}

func TestSession_GoHomeKeepsInProgressAnswers(t *testing.T) {
	s := sessionWithQuiz(t, 3)
	require.NoError(t, s.StartQuiz(0))
	require.NoError(t, s.SelectAnswer(0, 1))

	s.GoHome()
	assert.Equal(t, PageBrowsing, s.Page())
	assert.Nil(t, s.Result())
	assert.Equal(t, 1, s.AnsweredCount())
}

func TestSession_StartQuizResetsAttempt(t *testing.T) {
	s := sessionWithQuiz(t, 3)
	require.NoError(t, s.StartQuiz(0))
	answerAll(t, s, true)
	_, err := s.Submit()
	require.NoError(t, err)

	require.NoError(t, s.StartQuiz(0))
	assert.Zero(t, s.AnsweredCount())
	assert.Nil(t, s.Result())
}

func TestSession_StartQuizWithoutQuizFails(t *testing.T) {
	s := NewSession()
	_, err := s.AddParagraph("text without a quiz")
	require.NoError(t, err)
	require.Error(t, s.StartQuiz(0))
}

func TestSession_AddParagraphValidation(t *testing.T) {
	s := NewSession()

	_, err := s.AddParagraph("  \n\t ")
	require.Error(t, err)

	long := make([]rune, 3000)
	for i := range long {
		long[i] = 'y'
	}
	idx, err := s.AddParagraph(string(long))
	require.NoError(t, err)

	para, err := s.Paragraph(idx)
	require.NoError(t, err)
	assert.Len(t, []rune(para.Text), maxParagraphChars)
}

func TestSession_DeleteParagraphReindexesQuizzes(t *testing.T) {
	s := NewSession()
	for range 3 {
		_, err := s.AddParagraph("some study text")
		require.NoError(t, err)
	}
	require.NoError(t, s.SetQuiz(0, testQuiz(3)))
	require.NoError(t, s.SetQuiz(2, testQuiz(5)))

	require.NoError(t, s.DeleteParagraph(1))

	assert.Equal(t, 2, s.ParagraphCount())
	assert.True(t, s.HasQuiz(0))
	assert.True(t, s.HasQuiz(1))

	shifted, ok := s.Quiz(1)
	require.True(t, ok)
	assert.Len(t, shifted, 5)
}

func TestSession_DeleteActiveParagraphAbandonsAttempt(t *testing.T) {
	s := sessionWithQuiz(t, 3)
	require.NoError(t, s.StartQuiz(0))
	require.NoError(t, s.SelectAnswer(0, 0))

	require.NoError(t, s.DeleteParagraph(0))
	assert.Equal(t, PageBrowsing, s.Page())
	assert.Zero(t, s.AnsweredCount())
	_, _, ok := s.ActiveQuiz()
	assert.False(t, ok)
}

func TestSession_RandomQuiz(t *testing.T) {
	s := NewSession()
	_, ok := s.RandomQuiz()
	assert.False(t, ok)

	for range 3 {
		_, err := s.AddParagraph("some study text")
		require.NoError(t, err)
	}
	require.NoError(t, s.SetQuiz(1, testQuiz(3)))

	idx, ok := s.RandomQuiz()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestSession_ClearAllKeepsStats(t *testing.T) {
	s := sessionWithQuiz(t, 3)
	require.NoError(t, s.StartQuiz(0))
	answerAll(t, s, true)
	_, err := s.Submit()
	require.NoError(t, err)

	s.ClearAll()
	assert.Zero(t, s.ParagraphCount())
	assert.Zero(t, s.QuizCount())
	assert.Empty(t, s.History())
	assert.Equal(t, PageBrowsing, s.Page())
	assert.Equal(t, 3, s.Stats().QuestionsAnswered)

	s.ResetStats()
	assert.Equal(t, Stats{}, s.Stats())
}

func TestStats_AccuracyEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Stats{}.Accuracy())
}

func TestSession_QuestionCountClamped(t *testing.T) {
	s := NewSession()
	assert.Equal(t, defaultQuizQuestions, s.QuestionCount())

	s.SetQuestionCount(7)
	assert.Equal(t, 7, s.QuestionCount())

	s.SetQuestionCount(99)
	assert.Equal(t, maxQuizQuestions, s.QuestionCount())

	s.SetQuestionCount(0)
	assert.Equal(t, minQuizQuestions, s.QuestionCount())
}

func TestSession_Summary(t *testing.T) {
	s := sessionWithQuiz(t, 4)
	assert.Equal(t, HistorySummary{}, s.Summary())

	// Attempt 1: all wrong. Attempt 2: all correct.
	require.NoError(t, s.StartQuiz(0))
	answerAll(t, s, false)
	_, err := s.Submit()
	require.NoError(t, err)

	require.NoError(t, s.Retake())
	answerAll(t, s, true)
	_, err = s.Submit()
	require.NoError(t, err)

	sum := s.Summary()
	assert.Equal(t, 2, sum.Attempts)
	assert.Equal(t, 50.0, sum.Average)
	assert.Equal(t, 100.0, sum.Best)
	assert.Equal(t, 100.0, sum.Latest)
}
