package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/ui/theme"
)

// RadioGroup is a single-select option list. Unlike a quiz choice there
// is no right answer; the chosen option is simply reported.
type RadioGroup struct {
	Prompt   string
	Options  []string
	Cursor   int
	Chosen   int // -1 until a choice is made
	Compact  bool
	Disabled bool
}

// NewRadioGroup creates a radio group with nothing chosen.
func NewRadioGroup(prompt string, options []string) RadioGroup {
	return RadioGroup{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// SetChosen preselects an option, e.g. when navigating back to an
// already-answered question.
func (r *RadioGroup) SetChosen(index int) {
	if index >= 0 && index < len(r.Options) {
		r.Chosen = index
		r.Cursor = index
	}
}

// Value returns the chosen option label, or "" if none.
func (r RadioGroup) Value() (string, bool) {
	if r.Chosen < 0 || r.Chosen >= len(r.Options) {
		return "", false
	}
	return r.Options[r.Chosen], true
}

// Update handles keyboard navigation and selection.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, tea.Cmd) {
	if r.Disabled {
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.Cursor > 0 {
			r.Cursor--
		}
	case "down", "j":
		if r.Cursor < len(r.Options)-1 {
			r.Cursor++
		}
	case "enter", "space", " ":
		r.Chosen = r.Cursor
	}

	return r, nil
}

// View renders the radio group.
func (r RadioGroup) View() string {
	var s string
	if r.Prompt != "" && !r.Compact {
		s = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.Prompt) + "\n\n"
	}

	for i, opt := range r.Options {
		marker := "( )"
		if i == r.Chosen {
			marker = "(•)"
		}
		prefix := "  "
		if i == r.Cursor && !r.Disabled {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)

		switch {
		case i == r.Chosen:
			s += theme.Selected.Render(line) + "\n"
		case i == r.Cursor && !r.Disabled:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
