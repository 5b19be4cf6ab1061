package reports

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/reports"
	"github.com/clinsaude/clin/internal/router"
	"github.com/clinsaude/clin/internal/screen"
	"github.com/clinsaude/clin/internal/store"
	"github.com/clinsaude/clin/internal/ui/layout"
	"github.com/clinsaude/clin/internal/ui/theme"
)

type metricsLoadedMsg struct {
	Metrics *reports.Metrics
	Err     error
}

// Dashboard tabs.
const (
	tabOverview = iota
	tabRiskAnalysis
	tabPrevention
	tabCount
)

var tabLabels = []string{"Overview", "Risk Analysis", "Prevention"}

// ReportsScreen is the tabbed analytics dashboard.
type ReportsScreen struct {
	triageRepo store.TriageRepo
	metrics    *reports.Metrics
	tab        int
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*ReportsScreen)(nil)
var _ screen.KeyHintProvider = (*ReportsScreen)(nil)

// New creates a new ReportsScreen.
func New(triageRepo store.TriageRepo) *ReportsScreen {
	return &ReportsScreen{
		triageRepo: triageRepo,
	}
}

func (s *ReportsScreen) Init() tea.Cmd {
	repo := s.triageRepo
	return func() tea.Msg {
		m, err := reports.Load(context.Background(), repo)
		return metricsLoadedMsg{Metrics: m, Err: err}
	}
}

func (s *ReportsScreen) Title() string {
	return "Reports"
}

func (s *ReportsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch tab"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case metricsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.metrics = msg.Metrics
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "right", "l":
			s.tab = (s.tab + 1) % tabCount
			return s, nil
		case "shift+tab", "left", "h":
			s.tab = (s.tab - 1 + tabCount) % tabCount
			return s, nil
		}
	}
	return s, nil
}

func (s *ReportsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading reports...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderTabs(width))
	b.WriteString("\n\n")

	switch s.tab {
	case tabOverview:
		b.WriteString(s.renderOverview(width))
	case tabRiskAnalysis:
		b.WriteString(renderRiskAnalysis(width))
	case tabPrevention:
		b.WriteString(renderPrevention(width))
	}

	return b.String()
}

func (s *ReportsScreen) renderTabs(width int) string {
	var tabs []string
	for i, label := range tabLabels {
		if i == s.tab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     "))
}

// renderOverview shows totals, the level split, monthly volume and the
// per-sector averages.
func (s *ReportsScreen) renderOverview(width int) string {
	m := s.metrics
	var b strings.Builder

	if m.Total == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No triages recorded yet.")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("%d triages recorded", m.Total))))
	b.WriteString("\n\n")

	barWidth := min(width-40, 30)
	rows := []struct {
		label string
		count int
		style lipgloss.Style
	}{
		{"Low", m.Low, theme.RiskLow},
		{"Medium", m.Medium, theme.RiskMedium},
		{"High", m.High, theme.RiskHigh},
	}
	for _, r := range rows {
		pct := m.Percent(r.count)
		filled := barWidth * pct / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		line := fmt.Sprintf("%-8s %s %3d%%  (%d)", r.label, bar, pct, r.count)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.style.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Monthly volume.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Monthly volume")))
	b.WriteString("\n")
	maxCount := 1
	for _, mc := range m.Monthly {
		if mc.Count > maxCount {
			maxCount = mc.Count
		}
	}
	for _, mc := range m.Monthly {
		filled := mc.Count * 20 / maxCount
		bar := strings.Repeat("▇", filled)
		line := fmt.Sprintf("%s %-20s %d", mc.Month.Format("Jan 06"), bar, mc.Count)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Sector averages.
	if len(m.Sectors) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Average score by sector")))
		b.WriteString("\n")
		for _, sr := range m.Sectors {
			line := fmt.Sprintf("%-16s %5.1f  (%d triages)", sr.Sector, sr.AvgScore, sr.Count)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderRiskAnalysis lists the curated risk factors with prevalence bars.
func renderRiskAnalysis(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Common risk factors among screened employees")))
	b.WriteString("\n\n")

	barWidth := min(width-50, 25)
	for _, rf := range reports.RiskFactors() {
		filled := barWidth * rf.Prevalence / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		line := fmt.Sprintf("%-30s %s %3d%%", rf.Name, bar, rf.Prevalence)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if rf.Prevalence >= 50 {
			style = lipgloss.NewStyle().Foreground(theme.Warning)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderPrevention lists the recommended interventions by priority.
func renderPrevention(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Recommended prevention actions")))
	b.WriteString("\n\n")

	for _, a := range reports.PreventionActions() {
		badge := priorityBadge(a.Priority)
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Title)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, badge+"  "+title))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.Description)))
		b.WriteString("\n\n")
	}
	return b.String()
}

func priorityBadge(p reports.Priority) string {
	switch p {
	case reports.PriorityHigh:
		return theme.RiskHigh.Render("[HIGH]")
	case reports.PriorityMedium:
		return theme.RiskMedium.Render("[MED ]")
	default:
		return theme.RiskLow.Render("[LOW ]")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
