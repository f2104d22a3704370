package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studypal/internal/router"
	"github.com/abhisek/studypal/internal/screen"
	"github.com/abhisek/studypal/internal/screens/compose"
	"github.com/abhisek/studypal/internal/screens/history"
	"github.com/abhisek/studypal/internal/screens/library"
	quizscreen "github.com/abhisek/studypal/internal/screens/quiz"
	"github.com/abhisek/studypal/internal/screens/stats"
	"github.com/abhisek/studypal/internal/study"
	"github.com/abhisek/studypal/internal/ui/components"
	"github.com/abhisek/studypal/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc    *study.Service
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *study.Service) *HomeScreen {
	h := &HomeScreen{svc: svc}

	items := []components.MenuItem{
		{Label: "ADD STUDY TEXT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: compose.New(svc)}
			}
		}},
		{Label: "MY LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(svc)}
			}
		}},
		{Label: "RANDOM QUIZ", Action: func() tea.Cmd {
			// Resolved at press time: quizzes may have been generated
			// since this screen was built.
			idx, ok := svc.Session().RandomQuiz()
			if !ok {
				h.notice = "No quizzes yet. Add study text and generate one first."
				return nil
			}
			h.notice = ""
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(svc, idx)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(svc)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(svc)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sess := h.svc.Session()
	st := sess.Stats()

	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Smart Study Partner"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Paste your study material, get a quiz, see what stuck."))

	summary := fmt.Sprintf("%d paragraphs   %d quizzes   %d answered   %.0f%% accuracy",
		sess.ParagraphCount(), sess.QuizCount(), st.QuestionsAnswered, st.Accuracy())
	sections = append(sections, lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(summary))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	if h.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(h.notice))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
