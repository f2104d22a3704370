package components

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studypal/internal/ui/theme"
)

// TextArea wraps bubbles/textarea with StudyPal styling for pasting in
// study material.
type TextArea struct {
	Model     textarea.Model
	CharLimit int
}

// NewTextArea creates a styled multi-line input capped at charLimit.
func NewTextArea(placeholder string, charLimit int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = charLimit
	ta.ShowLineNumbers = false
	ta.Focus()

	return TextArea{
		Model:     ta,
		CharLimit: charLimit,
	}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text area with a character budget line underneath.
func (t TextArea) View() string {
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(renderCharCount(t.Model.Length(), t.CharLimit))
	return t.Model.View() + "\n" + counter
}

// SetSize resizes the underlying textarea.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

// Value returns the current input value.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// Reset clears the input.
func (t *TextArea) Reset() {
	t.Model.Reset()
}

func renderCharCount(used, limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf("  %d/%d characters", used, limit)
}
