package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/orientation"
	"github.com/clinsaude/clin/internal/router"
	"github.com/clinsaude/clin/internal/screen"
	"github.com/clinsaude/clin/internal/screens/history"
	"github.com/clinsaude/clin/internal/screens/placeholder"
	"github.com/clinsaude/clin/internal/screens/reports"
	"github.com/clinsaude/clin/internal/screens/teleorientation"
	"github.com/clinsaude/clin/internal/screens/triagewizard"
	"github.com/clinsaude/clin/internal/store"
	"github.com/clinsaude/clin/internal/triage"
	"github.com/clinsaude/clin/internal/ui/components"
	"github.com/clinsaude/clin/internal/ui/theme"
)

type statsLoadedMsg struct {
	Breakdown store.RiskBreakdown
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	triageRepo store.TriageRepo
	menu       components.Menu
	breakdown  store.RiskBreakdown
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with the injected dependencies.
func New(triageRepo store.TriageRepo, gateway triage.Gateway, identity triage.IdentityResolver, tips *orientation.TipsService) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW TRIAGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: triagewizard.New(gateway, identity, tips),
				}
			}
		}},
		{Label: "TELEORIENTATION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: teleorientation.New()}
			}
		}},
		{Label: "REPORTS", Action: func() tea.Cmd {
			if triageRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Reports")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reports.New(triageRepo)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			if triageRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(triageRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		triageRepo: triageRepo,
		menu:       components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.triageRepo == nil {
		return nil
	}
	repo := h.triageRepo
	return func() tea.Msg {
		bd, err := repo.RiskBreakdown(context.Background())
		if err != nil {
			return nil
		}
		return statsLoadedMsg{Breakdown: bd}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		h.breakdown = m.Breakdown
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("✚ CLIN")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Occupational health triage")
	sections = append(sections, title, subtitle, "")

	sections = append(sections, h.renderStats(), "")

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStats shows the stored triage totals per risk level.
func (h *HomeScreen) renderStats() string {
	bd := h.breakdown
	if bd.Total == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("No triages recorded yet")
	}

	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%d triages", bd.Total)),
		theme.RiskLow.Render(fmt.Sprintf("%d low", bd.Low)),
		theme.RiskMedium.Render(fmt.Sprintf("%d medium", bd.Medium)),
		theme.RiskHigh.Render(fmt.Sprintf("%d high", bd.High)),
	}
	line := strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(line)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
