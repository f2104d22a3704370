package study

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studypal/internal/quizgen"
)

// maxParagraphChars mirrors the generator's source budget. Text beyond it
// would never reach the model anyway.
const maxParagraphChars = 2000

// Question-count bounds for a quiz, matching the generator's limits.
const (
	minQuizQuestions     = 3
	maxQuizQuestions     = 10
	defaultQuizQuestions = 5
)

// Session holds all study state for one run of the app: paragraphs, their
// generated quizzes, the in-progress attempt, history, and counters.
// Nothing is persisted; closing the app discards everything.
//
// Session is not safe for concurrent use. The UI drives it from a single
// goroutine.
type Session struct {
	page          Page
	paragraphs    []Paragraph
	quizzes       map[int]quizgen.Quiz
	activeQuiz    int
	answers       map[int]int
	lastResult    *Result
	history       []HistoryRecord
	stats         Stats
	questionCount int

	now func() time.Time
}

// NewSession creates an empty session on the browsing page.
func NewSession() *Session {
	return &Session{
		page:          PageBrowsing,
		quizzes:       make(map[int]quizgen.Quiz),
		answers:       make(map[int]int),
		activeQuiz:    -1,
		questionCount: defaultQuizQuestions,
		now:           time.Now,
	}
}

// Page returns the active page.
func (s *Session) Page() Page { return s.page }

// QuestionCount returns the questions-per-quiz setting.
func (s *Session) QuestionCount() int { return s.questionCount }

// SetQuestionCount updates the questions-per-quiz setting, clamped to the
// generator's bounds.
func (s *Session) SetQuestionCount(n int) {
	if n < minQuizQuestions {
		n = minQuizQuestions
	}
	if n > maxQuizQuestions {
		n = maxQuizQuestions
	}
	s.questionCount = n
}

// AddParagraph stores a new block of study text and returns its index.
// Text is trimmed and capped at the generator's source budget.
func (s *Session) AddParagraph(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("paragraph text is empty")
	}
	if runes := []rune(trimmed); len(runes) > maxParagraphChars {
		trimmed = string(runes[:maxParagraphChars])
	}

	s.paragraphs = append(s.paragraphs, Paragraph{
		ID:    uuid.New(),
		Added: s.now(),
		Text:  trimmed,
	})
	return len(s.paragraphs) - 1, nil
}

// Paragraphs returns a copy of the stored paragraphs.
func (s *Session) Paragraphs() []Paragraph {
	out := make([]Paragraph, len(s.paragraphs))
	copy(out, s.paragraphs)
	return out
}

// Paragraph returns the paragraph at index i.
func (s *Session) Paragraph(i int) (Paragraph, error) {
	if i < 0 || i >= len(s.paragraphs) {
		return Paragraph{}, fmt.Errorf("paragraph index %d out of range", i)
	}
	return s.paragraphs[i], nil
}

// ParagraphCount returns the number of stored paragraphs.
func (s *Session) ParagraphCount() int { return len(s.paragraphs) }

// DeleteParagraph removes the paragraph at index i along with its quiz.
// Quizzes for later paragraphs shift down to stay attached to their text.
func (s *Session) DeleteParagraph(i int) error {
	if i < 0 || i >= len(s.paragraphs) {
		return fmt.Errorf("paragraph index %d out of range", i)
	}

	s.paragraphs = append(s.paragraphs[:i], s.paragraphs[i+1:]...)

	reindexed := make(map[int]quizgen.Quiz, len(s.quizzes))
	for idx, quiz := range s.quizzes {
		switch {
		case idx < i:
			reindexed[idx] = quiz
		case idx > i:
			reindexed[idx-1] = quiz
		}
	}
	s.quizzes = reindexed

	if s.activeQuiz == i {
		s.activeQuiz = -1
		s.page = PageBrowsing
		s.answers = make(map[int]int)
		s.lastResult = nil
	} else if s.activeQuiz > i {
		s.activeQuiz--
	}
	return nil
}

// SetQuiz attaches a quiz to the paragraph at index i, replacing any
// existing one.
func (s *Session) SetQuiz(i int, quiz quizgen.Quiz) error {
	if i < 0 || i >= len(s.paragraphs) {
		return fmt.Errorf("paragraph index %d out of range", i)
	}
	s.quizzes[i] = quiz
	return nil
}

// Quiz returns the quiz attached to paragraph i, if any.
func (s *Session) Quiz(i int) (quizgen.Quiz, bool) {
	quiz, ok := s.quizzes[i]
	return quiz, ok
}

// HasQuiz reports whether paragraph i has a quiz.
func (s *Session) HasQuiz(i int) bool {
	_, ok := s.quizzes[i]
	return ok
}

// QuizCount returns the number of generated quizzes.
func (s *Session) QuizCount() int { return len(s.quizzes) }

// RandomQuiz picks a random paragraph that has a quiz. The second return
// is false when no quizzes exist.
func (s *Session) RandomQuiz() (int, bool) {
	if len(s.quizzes) == 0 {
		return 0, false
	}
	indices := make([]int, 0, len(s.quizzes))
	for idx := range s.quizzes {
		indices = append(indices, idx)
	}
	return indices[rand.IntN(len(indices))], true
}

// StartQuiz begins an attempt at the quiz for paragraph i. Any previous
// answers and result are discarded.
func (s *Session) StartQuiz(i int) error {
	if _, ok := s.quizzes[i]; !ok {
		return fmt.Errorf("paragraph %d has no quiz", i)
	}
	s.activeQuiz = i
	s.answers = make(map[int]int)
	s.lastResult = nil
	s.page = PageTakingQuiz
	return nil
}

// ActiveQuiz returns the paragraph index and quiz of the attempt in
// progress. The bool is false when no quiz is active.
func (s *Session) ActiveQuiz() (int, quizgen.Quiz, bool) {
	if s.activeQuiz < 0 {
		return 0, nil, false
	}
	quiz, ok := s.quizzes[s.activeQuiz]
	return s.activeQuiz, quiz, ok
}

// SelectAnswer records the user's option pick for one question. Re-selecting
// overwrites the previous pick.
func (s *Session) SelectAnswer(question, option int) error {
	if s.page != PageTakingQuiz {
		return fmt.Errorf("no quiz in progress")
	}
	quiz := s.quizzes[s.activeQuiz]
	if question < 0 || question >= len(quiz) {
		return fmt.Errorf("question index %d out of range", question)
	}
	if option < 0 || option >= len(quiz[question].Options) {
		return fmt.Errorf("option index %d out of range", option)
	}
	s.answers[question] = option
	return nil
}

// Answer returns the recorded option for a question, if any.
func (s *Session) Answer(question int) (int, bool) {
	opt, ok := s.answers[question]
	return opt, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// CanSubmit reports whether every question in the active quiz has an
// answer. Submission is blocked until it returns true.
func (s *Session) CanSubmit() bool {
	if s.page != PageTakingQuiz {
		return false
	}
	quiz := s.quizzes[s.activeQuiz]
	return len(quiz) > 0 && len(s.answers) == len(quiz)
}

// Submit grades the active quiz, appends a history record, and updates the
// counters. It fails when any question is unanswered.
func (s *Session) Submit() (*Result, error) {
	if !s.CanSubmit() {
		return nil, fmt.Errorf("cannot submit: %d of %d questions answered",
			len(s.answers), len(s.quizzes[s.activeQuiz]))
	}

	quiz := s.quizzes[s.activeQuiz]
	result := &Result{
		Total:   len(quiz),
		Correct: make([]bool, len(quiz)),
		Quiz:    quiz,
		Answers: make(map[int]int, len(s.answers)),
	}
	for q, opt := range s.answers {
		result.Answers[q] = opt
		if opt == quiz[q].AnswerIndex() {
			result.Correct[q] = true
			result.Score++
		}
	}
	result.Percentage = 100 * float64(result.Score) / float64(result.Total)

	s.history = append(s.history, HistoryRecord{
		ID:         uuid.New(),
		When:       s.now(),
		Paragraph:  s.activeQuiz,
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
	})
	s.stats.QuestionsAnswered += result.Total
	s.stats.CorrectAnswers += result.Score

	s.lastResult = result
	s.page = PageShowingResults
	return result, nil
}

// Result returns the outcome of the last submitted attempt, or nil.
func (s *Session) Result() *Result { return s.lastResult }

// Retake restarts the active quiz with the same questions. No regeneration
// happens; answers are simply cleared.
func (s *Session) Retake() error {
	if s.page != PageShowingResults {
		return fmt.Errorf("no finished quiz to retake")
	}
	s.answers = make(map[int]int)
	s.lastResult = nil
	s.page = PageTakingQuiz
	return nil
}

// GoHome returns to the browsing page. The last result is dropped but
// in-progress answers survive, so an interrupted attempt can be resumed.
func (s *Session) GoHome() {
	s.page = PageBrowsing
	s.lastResult = nil
}

// History returns a copy of the attempt history, oldest first.
func (s *Session) History() []HistoryRecord {
	out := make([]HistoryRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Stats returns the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Summary aggregates the attempt history: average, best, and latest
// percentage. Zero-valued when no attempts exist.
func (s *Session) Summary() HistorySummary {
	if len(s.history) == 0 {
		return HistorySummary{}
	}

	sum := HistorySummary{
		Attempts: len(s.history),
		Latest:   s.history[len(s.history)-1].Percentage,
	}
	var total float64
	for _, rec := range s.history {
		total += rec.Percentage
		if rec.Percentage > sum.Best {
			sum.Best = rec.Percentage
		}
	}
	sum.Average = total / float64(len(s.history))
	return sum
}

// ClearAll discards paragraphs, quizzes, answers, and history, returning
// to an empty browsing page. Counters are kept; see ResetStats.
func (s *Session) ClearAll() {
	s.paragraphs = nil
	s.quizzes = make(map[int]quizgen.Quiz)
	s.answers = make(map[int]int)
	s.activeQuiz = -1
	s.lastResult = nil
	s.history = nil
	s.page = PageBrowsing
}

// ResetStats zeroes the session counters.
func (s *Session) ResetStats() {
	s.stats = Stats{}
}
