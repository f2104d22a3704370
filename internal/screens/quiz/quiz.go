package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studypal/internal/router"
	"github.com/abhisek/studypal/internal/screen"
	"github.com/abhisek/studypal/internal/study"
	"github.com/abhisek/studypal/internal/ui/components"
	"github.com/abhisek/studypal/internal/ui/layout"
	"github.com/abhisek/studypal/internal/ui/theme"
)

// QuizScreen walks the user through one quiz attempt and then shows the
// graded result. All quiz state lives in the session; this screen is a
// thin view over it.
type QuizScreen struct {
	svc       *study.Service
	paragraph int
	current   int
	picker    components.OptionPicker
	notice    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the quiz attached to the given paragraph.
func New(svc *study.Service, paragraph int) *QuizScreen {
	return &QuizScreen{svc: svc, paragraph: paragraph}
}

func (s *QuizScreen) Init() tea.Cmd {
	if err := s.svc.Session().StartQuiz(s.paragraph); err != nil {
		s.notice = err.Error()
		return nil
	}
	s.current = 0
	s.loadPicker()
	return nil
}

func (s *QuizScreen) Title() string {
	if s.svc.Session().Page() == study.PageShowingResults {
		return "Results"
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.svc.Session().Page() == study.PageShowingResults {
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/a-d", Description: "Pick"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// loadPicker rebuilds the picker for the current question from session
// state, so revisiting a question shows the recorded answer.
func (s *QuizScreen) loadPicker() {
	_, quiz, ok := s.svc.Session().ActiveQuiz()
	if !ok || s.current >= len(quiz) {
		return
	}
	chosen := -1
	if opt, answered := s.svc.Session().Answer(s.current); answered {
		chosen = opt
	}
	q := quiz[s.current]
	s.picker = components.NewOptionPicker(q.Question, q.Options, chosen)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	sess := s.svc.Session()

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if sess.Page() == study.PageShowingResults {
		switch kmsg.String() {
		case "esc":
			sess.GoHome()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			if err := sess.Retake(); err == nil {
				s.current = 0
				s.notice = ""
				s.loadPicker()
			}
			return s, nil
		}
		return s, nil
	}

	_, quiz, active := sess.ActiveQuiz()
	if !active {
		if kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		sess.GoHome()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		if s.current > 0 {
			s.current--
			s.loadPicker()
		}
		return s, nil
	case "right", "l":
		if s.current < len(quiz)-1 {
			s.current++
			s.loadPicker()
		}
		return s, nil
	case "s":
		if !sess.CanSubmit() {
			s.notice = fmt.Sprintf("Answer all questions first (%d of %d done).",
				sess.AnsweredCount(), len(quiz))
			return s, nil
		}
		if _, err := sess.Submit(); err != nil {
			s.notice = err.Error()
		}
		return s, nil
	}

	before := s.picker.Chosen
	s.picker, _ = s.picker.Update(msg)
	if s.picker.Chosen != before && s.picker.HasChosen() {
		if err := sess.SelectAnswer(s.current, s.picker.Chosen); err != nil {
			s.notice = err.Error()
			return s, nil
		}
		s.notice = ""
		// Picking an answer advances to the next unanswered question.
		if next, ok := s.nextUnanswered(len(quiz)); ok {
			s.current = next
			s.loadPicker()
		}
	}
	return s, nil
}

func (s *QuizScreen) nextUnanswered(total int) (int, bool) {
	for off := 1; off <= total; off++ {
		i := (s.current + off) % total
		if _, answered := s.svc.Session().Answer(i); !answered {
			return i, true
		}
	}
	return 0, false
}

func (s *QuizScreen) View(width, height int) string {
	sess := s.svc.Session()

	if sess.Page() == study.PageShowingResults {
		return s.viewResults(width, height)
	}

	_, quiz, ok := sess.ActiveQuiz()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.notice)
	}

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d  •  %d answered",
			s.current+1, len(quiz), sess.AnsweredCount())))

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, s.picker.View()))

	if sess.CanSubmit() {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).Bold(true).
			Render("All answered — press S to submit"))
	}
	if s.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(s.notice))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) viewResults(width, height int) string {
	result := s.svc.Session().Result()
	if result == nil {
		return ""
	}

	var b strings.Builder

	headline := fmt.Sprintf("Score: %d / %d  (%.1f%%)", result.Score, result.Total, result.Percentage)
	style := theme.Correct
	if result.Percentage < 60 {
		style = theme.Incorrect
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(headline)))
	b.WriteString("\n\n")

	for i, q := range result.Quiz {
		marker := theme.Correct.Render("✓")
		if !result.Correct[i] {
			marker = theme.Incorrect.Render("✗")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			fmt.Sprintf("%s %s", marker, theme.Body.Render(q.Question))))
		b.WriteString("\n")

		if !result.Correct[i] {
			chosen := "—"
			if opt, ok := result.Answers[i]; ok {
				chosen = q.Options[opt]
			}
			detail := fmt.Sprintf("your answer: %s   correct: %s", chosen, q.Answer)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
		if q.Explanation != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(q.Explanation)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
