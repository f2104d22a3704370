package study

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studypal/internal/quizgen"
)

// Page identifies which view of the study session is active.
type Page int

const (
	// PageBrowsing is the default page: managing paragraphs and quizzes.
	PageBrowsing Page = iota

	// PageTakingQuiz means a quiz is in progress.
	PageTakingQuiz

	// PageShowingResults means a graded quiz is on screen.
	PageShowingResults
)

func (p Page) String() string {
	switch p {
	case PageBrowsing:
		return "browsing"
	case PageTakingQuiz:
		return "taking_quiz"
	case PageShowingResults:
		return "showing_results"
	default:
		return "unknown"
	}
}

// Paragraph is one block of study material the user pasted in.
type Paragraph struct {
	ID    uuid.UUID
	Added time.Time
	Text  string
}

// HistoryRecord captures one completed quiz attempt. History is append-only;
// records are never edited or removed except by a full clear.
type HistoryRecord struct {
	ID         uuid.UUID
	When       time.Time
	Paragraph  int
	Score      int
	Total      int
	Percentage float64
}

// Stats are the session's running counters.
type Stats struct {
	// APICalls counts successful quiz generations only. Failed requests
	// never increment it.
	APICalls int

	QuestionsAnswered int
	CorrectAnswers    int
}

// Accuracy returns the overall percentage of correct answers, or zero when
// nothing has been answered yet.
func (s Stats) Accuracy() float64 {
	if s.QuestionsAnswered == 0 {
		return 0
	}
	return 100 * float64(s.CorrectAnswers) / float64(s.QuestionsAnswered)
}

// HistorySummary aggregates the attempt history for the stats view.
type HistorySummary struct {
	Attempts int
	Average  float64
	Best     float64
	Latest   float64
}

// Result is the graded outcome of a quiz attempt, with per-question detail
// for the review screen.
type Result struct {
	Score      int
	Total      int
	Percentage float64
	Correct    []bool
	Quiz       quizgen.Quiz
	Answers    map[int]int
}
