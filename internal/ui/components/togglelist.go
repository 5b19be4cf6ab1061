package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/ui/theme"
)

// ToggleList is a multi-select checklist.
type ToggleList struct {
	Options  []string
	Cursor   int
	checked  map[int]bool
	Disabled bool
}

// NewToggleList creates a toggle list with nothing checked.
func NewToggleList(options []string) ToggleList {
	return ToggleList{
		Options: options,
		checked: make(map[int]bool),
	}
}

// Selected returns the checked option labels in display order.
func (t ToggleList) Selected() []string {
	var out []string
	for i, opt := range t.Options {
		if t.checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// Update handles keyboard navigation and toggling.
func (t ToggleList) Update(msg tea.Msg) (ToggleList, tea.Cmd) {
	if t.Disabled {
		return t, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.Cursor > 0 {
			t.Cursor--
		}
	case "down", "j":
		if t.Cursor < len(t.Options)-1 {
			t.Cursor++
		}
	case "enter", "space", " ":
		t.checked[t.Cursor] = !t.checked[t.Cursor]
	}

	return t, nil
}

// View renders the toggle list.
func (t ToggleList) View() string {
	var s string
	for i, opt := range t.Options {
		marker := "[ ]"
		if t.checked[i] {
			marker = "[x]"
		}
		prefix := "  "
		if i == t.Cursor && !t.Disabled {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)

		switch {
		case t.checked[i]:
			s += theme.Selected.Render(line) + "\n"
		case i == t.Cursor && !t.Disabled:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
