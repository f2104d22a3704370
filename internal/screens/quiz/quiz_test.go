package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studypal/internal/llm"
	"github.com/abhisek/studypal/internal/quizgen"
	"github.com/abhisek/studypal/internal/router"
	"github.com/abhisek/studypal/internal/study"
)

func testService(t *testing.T) *study.Service {
	t.Helper()
	gen := quizgen.New(llm.NewMockProvider(), quizgen.DefaultConfig())
	svc := study.NewService(gen, study.NewSession())

	idx, err := svc.Session().AddParagraph("the water cycle moves water between sky and sea")
	if err != nil {
		t.Fatal(err)
	}
	quiz := quizgen.Quiz{
		{Question: "Q1", Options: []string{"a) yes", "b) no", "c) maybe", "d) never"}, Answer: "a) yes"},
		{Question: "Q2", Options: []string{"a) yes", "b) no", "c) maybe", "d) never"}, Answer: "a) yes", Explanation: "because"},
		{Question: "Q3", Options: []string{"a) yes", "b) no", "c) maybe", "d) never"}, Answer: "a) yes"},
	}
	if err := svc.Session().SetQuiz(idx, quiz); err != nil {
		t.Fatal(err)
	}
	return svc
}

func press(s *QuizScreen, key rune) {
	s.Update(tea.KeyPressMsg{Code: key})
}

func TestQuizScreen_FullFlow(t *testing.T) {
	svc := testService(t)
	s := New(svc, 0)
	s.Init()

	if svc.Session().Page() != study.PageTakingQuiz {
		t.Fatalf("expected taking-quiz page, got %v", svc.Session().Page())
	}

	// Answer every question with option a; picking advances automatically.
	press(s, 'a')
	press(s, 'a')
	press(s, 'a')

	if !svc.Session().CanSubmit() {
		t.Fatalf("expected all %d questions answered, got %d",
			3, svc.Session().AnsweredCount())
	}

	press(s, 's')
	if svc.Session().Page() != study.PageShowingResults {
		t.Fatalf("expected results page, got %v", svc.Session().Page())
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "3 / 3") {
		t.Errorf("results view should show the score, got:\n%s", view)
	}
	if !strings.Contains(view, "100.0%") {
		t.Errorf("results view should show the percentage, got:\n%s", view)
	}
}

func TestQuizScreen_SubmitBlockedUntilComplete(t *testing.T) {
	svc := testService(t)
	s := New(svc, 0)
	s.Init()

	press(s, 'a')
	press(s, 's')

	if svc.Session().Page() != study.PageTakingQuiz {
		t.Fatalf("partial submit must not grade, page is %v", svc.Session().Page())
	}
	if len(svc.Session().History()) != 0 {
		t.Error("partial submit must not append history")
	}
}

func TestQuizScreen_Retake(t *testing.T) {
	svc := testService(t)
	s := New(svc, 0)
	s.Init()

	press(s, 'a')
	press(s, 'a')
	press(s, 'a')
	press(s, 's')

	press(s, 'r')
	if svc.Session().Page() != study.PageTakingQuiz {
		t.Fatalf("expected taking-quiz page after retake, got %v", svc.Session().Page())
	}
	if svc.Session().AnsweredCount() != 0 {
		t.Errorf("retake should clear answers, got %d", svc.Session().AnsweredCount())
	}
	if len(svc.Session().History()) != 1 {
		t.Errorf("retake must keep history, got %d records", len(svc.Session().History()))
	}
}

func TestQuizScreen_EscFromResultsGoesHome(t *testing.T) {
	svc := testService(t)
	s := New(svc, 0)
	s.Init()

	press(s, 'a')
	press(s, 'a')
	press(s, 'a')
	press(s, 's')

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc on results should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if svc.Session().Page() != study.PageBrowsing {
		t.Fatalf("expected browsing page, got %v", svc.Session().Page())
	}
}

func TestQuizScreen_NavigationBetweenQuestions(t *testing.T) {
	svc := testService(t)
	s := New(svc, 0)
	s.Init()

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.current != 1 {
		t.Fatalf("expected question 1, got %d", s.current)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.current != 0 {
		t.Fatalf("expected question 0, got %d", s.current)
	}
}
