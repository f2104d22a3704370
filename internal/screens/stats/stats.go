package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studypal/internal/router"
	"github.com/abhisek/studypal/internal/screen"
	"github.com/abhisek/studypal/internal/study"
	"github.com/abhisek/studypal/internal/ui/layout"
	"github.com/abhisek/studypal/internal/ui/theme"
)

// StatsScreen shows session counters and offers the destructive resets.
type StatsScreen struct {
	svc    *study.Service
	notice string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(svc *study.Service) *StatsScreen {
	return &StatsScreen{svc: svc}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Reset Counters"},
		{Key: "C", Description: "Clear All Data"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r":
		s.svc.Session().ResetStats()
		s.notice = "Counters reset."
	case "c":
		s.svc.Session().ClearAll()
		s.notice = "Paragraphs, quizzes, and history cleared."
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	sess := s.svc.Session()
	st := sess.Stats()

	sum := sess.Summary()
	rows := []struct {
		label string
		value string
	}{
		{"Paragraphs saved", fmt.Sprintf("%d", sess.ParagraphCount())},
		{"Quizzes generated", fmt.Sprintf("%d", sess.QuizCount())},
		{"Quiz attempts", fmt.Sprintf("%d", sum.Attempts)},
		{"API calls", fmt.Sprintf("%d", st.APICalls)},
		{"Questions answered", fmt.Sprintf("%d", st.QuestionsAnswered)},
		{"Correct answers", fmt.Sprintf("%d", st.CorrectAnswers)},
		{"Overall accuracy", fmt.Sprintf("%.1f%%", st.Accuracy())},
		{"Average score", fmt.Sprintf("%.1f%%", sum.Average)},
		{"Best score", fmt.Sprintf("%.1f%%", sum.Best)},
		{"Latest score", fmt.Sprintf("%.1f%%", sum.Latest)},
	}

	var b strings.Builder
	for _, row := range rows {
		line := fmt.Sprintf("%-20s %s",
			row.label,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(row.value))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	content := theme.Card.Render(b.String())
	if s.notice != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
