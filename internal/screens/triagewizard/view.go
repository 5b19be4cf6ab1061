package triagewizard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/questionbank"
	"github.com/clinsaude/clin/internal/triage"
	"github.com/clinsaude/clin/internal/ui/components"
	"github.com/clinsaude/clin/internal/ui/theme"
)

func (s *TriageWizardScreen) View(width, height int) string {
	switch s.wiz.Stage() {
	case triage.StageInfo:
		return s.renderInfo(width, height)
	case triage.StageQuestion:
		return s.renderQuestion(width, height)
	default:
		return s.renderResult(width, height)
	}
}

// renderInfo renders the personal-info form.
func (s *TriageWizardScreen) renderInfo(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Before we start, tell us about yourself"))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		view  string
		index int
	}{
		{"Name", s.form.name.View(), fieldName},
		{"Phone", s.form.phone.View(), fieldPhone},
		{"Email", s.form.email.View(), fieldEmail},
		{"Job function", s.form.role.View(), fieldRole},
		{"Age", s.form.age.View(), fieldAge},
	}

	for _, f := range fields {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if f.index == s.form.focus {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n\n",
			labelStyle.Render(f.label), f.view))
	}

	sectorLabel := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.form.focus == fieldSector {
		sectorLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	b.WriteString(sectorLabel.Render("Sector"))
	b.WriteString("\n")
	b.WriteString(s.form.sector.View())

	if s.formErr != "" {
		b.WriteString("\n")
		b.WriteString(theme.Invalid.Render(s.formErr))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderQuestion renders the current question with its option list.
func (s *TriageWizardScreen) renderQuestion(width, height int) string {
	q := s.wiz.Question()

	var b strings.Builder

	counter := fmt.Sprintf("Question %d of %d", s.wiz.Index()+1, s.wiz.Count())
	category := questionbank.CategoryDisplayName(q.Category)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(counter))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  " + category))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(s.wiz.Index())/float64(s.wiz.Count()), false, min(width-8, 50))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.radio.View())

	if s.stepErr != "" {
		b.WriteString("\n")
		b.WriteString(theme.Invalid.Render(s.stepErr))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderResult renders the risk classification, the care suggestion and
// the persistence / tips status.
func (s *TriageWizardScreen) renderResult(width, height int) string {
	res := s.wiz.Result()
	if res == nil {
		return ""
	}

	var b strings.Builder

	badge := riskBadge(res.Level)
	b.WriteString(badge)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Score: %d of %d", res.Score, questionbank.MaxTotalScore())))
	b.WriteString("\n\n")

	suggestion := lipgloss.NewStyle().
		Width(min(width-8, 64)).
		Foreground(theme.Text).
		Render(res.Suggestion)
	b.WriteString(suggestion)
	b.WriteString("\n\n")

	b.WriteString(s.renderSaveStatus())

	if tips := s.renderTips(width); tips != "" {
		b.WriteString("\n\n")
		b.WriteString(tips)
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("R starts a new triage · Enter returns home"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderSaveStatus shows the outcome of the single persistence attempt.
// A failure never hides the result.
func (s *TriageWizardScreen) renderSaveStatus() string {
	switch {
	case !s.submitDone:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Saving...")
	case s.submitErr != nil:
		return lipgloss.NewStyle().Foreground(theme.Warning).
			Render("Could not save this triage. Your result is still valid.")
	default:
		return theme.Valid.Render("Saved")
	}
}

func (s *TriageWizardScreen) renderTips(width int) string {
	switch {
	case s.tipsLoading:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Generating wellness tips...")
	case s.tipsErr != nil:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Wellness tips are unavailable right now.")
	case s.tipsResult != nil:
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("Wellness tips"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(min(width-8, 64)).
			Foreground(theme.Text).
			Render(s.tipsResult.Summary))
		b.WriteString("\n")
		for _, tip := range s.tipsResult.Tips {
			b.WriteString(lipgloss.NewStyle().
				Width(min(width-8, 64)).
				Foreground(theme.Text).
				Render("• " + tip))
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return ""
}

// riskBadge renders the classification in its level color.
func riskBadge(level triage.RiskLevel) string {
	label := "  " + level.Display() + "  "
	switch level {
	case triage.LevelHigh:
		return lipgloss.NewStyle().Background(theme.Error).Foreground(theme.Text).Bold(true).Render(label)
	case triage.LevelMedium:
		return lipgloss.NewStyle().Background(theme.Warning).Foreground(theme.BgDark).Bold(true).Render(label)
	default:
		return lipgloss.NewStyle().Background(theme.Success).Foreground(theme.BgDark).Bold(true).Render(label)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
