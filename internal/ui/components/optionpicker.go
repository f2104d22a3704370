package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studypal/internal/ui/theme"
)

var optionLabels = []string{"a", "b", "c", "d"}

// OptionPicker lets the user pick one of a question's options. It never
// reveals the correct answer; grading happens when the whole quiz is
// submitted.
type OptionPicker struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int // -1 until the user picks
}

// NewOptionPicker creates a picker. chosen carries a previously recorded
// pick (-1 for none) so returning to a question keeps its state.
func NewOptionPicker(question string, options []string, chosen int) OptionPicker {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return OptionPicker{
		Question: question,
		Options:  options,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

// Update handles keyboard navigation and selection.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case "enter", "space":
		p.Chosen = p.Cursor
	default:
		for i, label := range optionLabels {
			if key == label && i < len(p.Options) {
				p.Cursor = i
				p.Chosen = i
				break
			}
		}
	}

	return p, nil
}

// View renders the question and its options.
func (p OptionPicker) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Question) + "\n\n"

	for i, opt := range p.Options {
		cursor := "  "
		if i == p.Cursor {
			cursor = "▸ "
		}
		marker := "( )"
		if i == p.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s", cursor, marker, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == p.Chosen {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		if i == p.Cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}

	return s
}

// HasChosen reports whether the user has picked an option.
func (p OptionPicker) HasChosen() bool {
	return p.Chosen >= 0
}
