package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/questionbank"
	"github.com/clinsaude/clin/internal/router"
	"github.com/clinsaude/clin/internal/screen"
	"github.com/clinsaude/clin/internal/store"
	"github.com/clinsaude/clin/internal/triage"
	"github.com/clinsaude/clin/internal/ui/layout"
	"github.com/clinsaude/clin/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []store.TriageRecord
	Err     error
}

// HistoryScreen displays past triages with expandable details.
type HistoryScreen struct {
	triageRepo store.TriageRepo
	records    []store.TriageRecord
	selected   int
	expanded   map[int]bool
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(triageRepo store.TriageRepo) *HistoryScreen {
	return &HistoryScreen{
		triageRepo: triageRepo,
		expanded:   make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.triageRepo.Triages(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No triages yet. Run one from the home screen.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.Timestamp.Format("Jan 02, 2006")
		level := triage.RiskLevel(rec.RiskLevel)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s %-14s score %2d  %s",
			prefix, dateStr, truncate(rec.Name, 20),
			triage.Sector(rec.Sector).Display(), rec.RiskScore,
			levelStyle(level).Render(level.Display()))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderDetail(rec, width))
		}
	}

	return b.String()
}

// renderDetail shows the employee fields and every recorded answer.
func renderDetail(rec store.TriageRecord, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	meta := fmt.Sprintf("    %s · age %d · %s · %s",
		rec.FunctionRole, rec.Age, rec.Phone, rec.Email)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(meta)))
	b.WriteString("\n")

	for _, q := range questionbank.All() {
		label, ok := rec.Answers[q.ID]
		if !ok {
			continue
		}
		line := fmt.Sprintf("    %s: %s", q.Prompt, label)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(line)))
		b.WriteString("\n")
	}

	if rec.Suggestion != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Italic(true).
				Render("    "+rec.Suggestion)))
		b.WriteString("\n")
	}
	return b.String()
}

func levelStyle(l triage.RiskLevel) lipgloss.Style {
	switch l {
	case triage.LevelHigh:
		return theme.RiskHigh
	case triage.LevelMedium:
		return theme.RiskMedium
	default:
		return theme.RiskLow
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
