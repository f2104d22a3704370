package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studypal/internal/quizgen"
	"github.com/abhisek/studypal/internal/router"
	"github.com/abhisek/studypal/internal/screen"
	quizscreen "github.com/abhisek/studypal/internal/screens/quiz"
	"github.com/abhisek/studypal/internal/study"
	"github.com/abhisek/studypal/internal/ui/layout"
	"github.com/abhisek/studypal/internal/ui/theme"
)

const previewLen = 70

// quizReadyMsg is sent when (re)generation for a paragraph finishes.
type quizReadyMsg struct {
	Paragraph int
	Err       error
}

// LibraryScreen lists saved paragraphs and manages their quizzes.
type LibraryScreen struct {
	svc        *study.Service
	selected   int
	generating bool
	errMsg     string
	hint       string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen.
func New(svc *study.Service) *LibraryScreen {
	return &LibraryScreen{svc: svc}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) Title() string {
	return "My Library"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Take Quiz"},
		{Key: "G", Description: "Generate"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	sess := s.svc.Session()

	switch msg := msg.(type) {
	case quizReadyMsg:
		s.generating = false
		if msg.Err != nil {
			var genErr *quizgen.GenerationError
			if errors.As(msg.Err, &genErr) {
				s.errMsg = "Quiz generation failed."
				s.hint = genErr.Hint
			} else {
				s.errMsg = msg.Err.Error()
			}
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: quizscreen.New(s.svc, msg.Paragraph)}
		}

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < sess.ParagraphCount()-1 {
				s.selected++
			}
		case "enter":
			if sess.HasQuiz(s.selected) {
				idx := s.selected
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.New(s.svc, idx)}
				}
			}
			return s, s.generate(s.selected)
		case "g":
			if sess.ParagraphCount() > 0 {
				return s, s.generate(s.selected)
			}
		case "d":
			if err := sess.DeleteParagraph(s.selected); err == nil {
				if s.selected >= sess.ParagraphCount() && s.selected > 0 {
					s.selected--
				}
			}
		}
	}
	return s, nil
}

// generate kicks off quiz generation for paragraph i. Regeneration uses
// the same path: a failure keeps the existing quiz untouched.
func (s *LibraryScreen) generate(i int) tea.Cmd {
	if i < 0 || i >= s.svc.Session().ParagraphCount() {
		return nil
	}
	s.generating = true
	s.errMsg = ""
	s.hint = ""
	count := s.svc.Session().QuestionCount()
	return func() tea.Msg {
		_, err := s.svc.GenerateQuiz(context.Background(), i, count)
		return quizReadyMsg{Paragraph: i, Err: err}
	}
}

func (s *LibraryScreen) View(width, height int) string {
	sess := s.svc.Session()

	if s.generating {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Generating quiz...")
	}

	if sess.ParagraphCount() == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Library is empty. Add some study text first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, para := range sess.Paragraphs() {
		preview := strings.Join(strings.Fields(para.Text), " ")
		if r := []rune(preview); len(r) > previewLen {
			preview = string(r[:previewLen]) + "…"
		}

		badge := lipgloss.NewStyle().Foreground(theme.TextDim).Render("[no quiz]")
		if quiz, ok := sess.Quiz(i); ok {
			badge = lipgloss.NewStyle().Foreground(theme.Success).
				Render(fmt.Sprintf("[%d questions]", len(quiz)))
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %s  %s",
			prefix, para.Added.Format("Jan 02 15:04"), badge, style.Render(preview))
		b.WriteString("  " + line + "\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(s.errMsg) + "\n")
	}
	if s.hint != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.hint) + "\n")
	}

	return b.String()
}
