package history

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

// HistoryScreen displays past quiz attempts, newest first.
type HistoryScreen struct {
	svc *study.Service
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *study.Service) *HistoryScreen {
	return &HistoryScreen{svc: svc}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	records := s.svc.Session().History()

	if len(records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quiz attempts yet. Take a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]

		scoreStyle := theme.Correct
		if rec.Percentage < 60 {
			scoreStyle = theme.Incorrect
		}

		line := fmt.Sprintf("%s   paragraph %d   %s",
			rec.When.Format("Jan 02, 2006 15:04"),
			rec.Paragraph+1,
			scoreStyle.Render(fmt.Sprintf("%d/%d  %.1f%%", rec.Score, rec.Total, rec.Percentage)))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
