package compose

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
	"github.com/abhisek/studypal/internal/ui/components"
	"github.com/abhisek/studypal/internal/ui/layout"
	"github.com/abhisek/studypal/internal/ui/theme"
)

const sourceCharLimit = 2000

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Paragraph int
	Err       error
}

// ComposeScreen collects study text and kicks off quiz generation.
type ComposeScreen struct {
	svc        *study.Service
	input      components.TextArea
	generating bool
	errMsg     string
	hint       string
}

var _ screen.Screen = (*ComposeScreen)(nil)
var _ screen.KeyHintProvider = (*ComposeScreen)(nil)

// New creates a new ComposeScreen.
func New(svc *study.Service) *ComposeScreen {
	return &ComposeScreen{
		svc:   svc,
		input: components.NewTextArea("Paste your study material here...", sourceCharLimit),
	}
}

func (s *ComposeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ComposeScreen) Title() string {
	return "Add Study Text"
}

func (s *ComposeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Generate Quiz"},
		{Key: "Ctrl+↑↓", Description: "Questions"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		s.generating = false
		if msg.Err != nil {
			s.setError(msg.Err)
			return s, nil
		}
		// Jump straight into the fresh quiz.
		idx := msg.Paragraph
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: quizscreen.New(s.svc, idx)}
		}

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "ctrl+up":
			sess := s.svc.Session()
			sess.SetQuestionCount(sess.QuestionCount() + 1)
			return s, nil
		case "ctrl+down":
			sess := s.svc.Session()
			sess.SetQuestionCount(sess.QuestionCount() - 1)
			return s, nil
		case "ctrl+s":
			return s, s.startGeneration()
		}
	}

	if s.generating {
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ComposeScreen) startGeneration() tea.Cmd {
	s.errMsg = ""
	s.hint = ""

	idx, err := s.svc.Session().AddParagraph(s.input.Value())
	if err != nil {
		s.errMsg = "Nothing to quiz on yet."
		s.hint = "Paste some study text first."
		return nil
	}

	s.generating = true
	count := s.svc.Session().QuestionCount()
	return func() tea.Msg {
		_, genErr := s.svc.GenerateQuiz(context.Background(), idx, count)
		return quizReadyMsg{Paragraph: idx, Err: genErr}
	}
}

func (s *ComposeScreen) setError(err error) {
	var genErr *quizgen.GenerationError
	if errors.As(err, &genErr) {
		s.errMsg = "Quiz generation failed."
		s.hint = genErr.Hint + " Your text is saved in the library."
		return
	}
	s.errMsg = err.Error()
	s.hint = "Your text is saved in the library; retry from there."
}

func (s *ComposeScreen) View(width, height int) string {
	if s.generating {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Generating %d questions...\n\nThis usually takes a few seconds.", s.svc.Session().QuestionCount()))
	}

	s.input.SetSize(min(width-8, 90), max(height-10, 5))

	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("Add Study Text"))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	sections = append(sections, lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("Questions: %d  (Ctrl+↑ / Ctrl+↓ to adjust)", s.svc.Session().QuestionCount())))

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(s.errMsg))
	}
	if s.hint != "" {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(s.hint))
	}

	return strings.Join(sections, "\n\n")
}
