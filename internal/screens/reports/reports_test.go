package reports

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/clinsaude/clin/internal/store"
)

type fakeTriageRepo struct {
	breakdown store.RiskBreakdown
	monthly   []store.MonthlyCount
	sectors   []store.SectorRisk
}

func (f *fakeTriageRepo) AppendTriage(context.Context, store.TriageEventData) error { return nil }

func (f *fakeTriageRepo) Triages(context.Context, store.QueryOpts) ([]store.TriageRecord, error) {
	return nil, nil
}

func (f *fakeTriageRepo) RiskBreakdown(context.Context) (store.RiskBreakdown, error) {
	return f.breakdown, nil
}

func (f *fakeTriageRepo) MonthlyCounts(context.Context, int) ([]store.MonthlyCount, error) {
	return f.monthly, nil
}

func (f *fakeTriageRepo) SectorRisk(context.Context) ([]store.SectorRisk, error) {
	return f.sectors, nil
}

func loadedScreen(t *testing.T, repo *fakeTriageRepo) *ReportsScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	s.Update(msg)
	return s
}

func TestOverviewRendersBreakdown(t *testing.T) {
	s := loadedScreen(t, &fakeTriageRepo{
		breakdown: store.RiskBreakdown{Total: 10, Low: 5, Medium: 3, High: 2},
		monthly: []store.MonthlyCount{
			{Month: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Count: 4},
			{Month: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Count: 6},
		},
		sectors: []store.SectorRisk{
			{Sector: "production", Count: 6, AvgScore: 8.5},
		},
	})

	view := s.View(100, 40)
	for _, want := range []string{"10 triages recorded", "Monthly volume", "production", "Feb 26"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview should contain %q", want)
		}
	}
}

func TestEmptyOverview(t *testing.T) {
	s := loadedScreen(t, &fakeTriageRepo{})

	view := s.View(100, 40)
	if !strings.Contains(view, "No triages recorded yet") {
		t.Error("empty state message missing")
	}
}

func TestTabCycling(t *testing.T) {
	s := loadedScreen(t, &fakeTriageRepo{})

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	view := s.View(100, 40)
	if !strings.Contains(view, "Common risk factors") {
		t.Error("second tab should show the risk analysis")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	view = s.View(100, 40)
	if !strings.Contains(view, "Recommended prevention actions") {
		t.Error("third tab should show the prevention actions")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	view = s.View(100, 40)
	if !strings.Contains(view, "No triages recorded yet") {
		t.Error("tab should wrap back to the overview")
	}
}
