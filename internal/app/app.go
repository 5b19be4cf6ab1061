package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/orientation"
	"github.com/clinsaude/clin/internal/router"
	"github.com/clinsaude/clin/internal/screen"
	"github.com/clinsaude/clin/internal/screens/home"
	"github.com/clinsaude/clin/internal/screens/triagewizard"
	"github.com/clinsaude/clin/internal/screens/welcome"
	"github.com/clinsaude/clin/internal/store"
	"github.com/clinsaude/clin/internal/triage"
	"github.com/clinsaude/clin/internal/ui/layout"
)

// Options carries the dependencies the TUI screens need.
type Options struct {
	TriageRepo store.TriageRepo
	Gateway    triage.Gateway
	Identity   triage.IdentityResolver
	Tips       *orientation.TipsService

	// StartTriage skips the welcome splash and opens a triage session.
	StartTriage bool
}

// statsMsg refreshes the header totals.
type statsMsg struct {
	Total int
	High  int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
	total  int
	high   int
}

// newAppModel creates a new AppModel starting at the welcome splash, or at
// the home screen when jumping straight into a triage.
func newAppModel(opts Options) AppModel {
	var root screen.Screen
	if opts.StartTriage {
		root = home.New(opts.TriageRepo, opts.Gateway, opts.Identity, opts.Tips)
	} else {
		root = welcome.New(func() screen.Screen {
			return home.New(opts.TriageRepo, opts.Gateway, opts.Identity, opts.Tips)
		})
	}
	return AppModel{
		router: router.New(root),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init(), m.loadStats()}
	if m.opts.StartTriage {
		cmds = append(cmds, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: triagewizard.New(m.opts.Gateway, m.opts.Identity, m.opts.Tips),
			}
		})
	}
	return tea.Batch(cmds...)
}

// loadStats reads the header totals from the store.
func (m AppModel) loadStats() tea.Cmd {
	repo := m.opts.TriageRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		bd, err := repo.RiskBreakdown(context.Background())
		if err != nil {
			return nil
		}
		return statsMsg{Total: bd.Total, High: bd.High}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsMsg:
		m.total = msg.Total
		m.high = msg.High
		return m, nil

	case router.PopScreenMsg:
		// Returning from a screen may have added triages.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.total, m.high, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
