package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/clinsaude/clin/internal/store"
)

type fakeTriageRepo struct {
	records []store.TriageRecord
	err     error
}

func (f *fakeTriageRepo) AppendTriage(context.Context, store.TriageEventData) error { return nil }

func (f *fakeTriageRepo) Triages(context.Context, store.QueryOpts) ([]store.TriageRecord, error) {
	return f.records, f.err
}

func (f *fakeTriageRepo) RiskBreakdown(context.Context) (store.RiskBreakdown, error) {
	return store.RiskBreakdown{}, nil
}

func (f *fakeTriageRepo) MonthlyCounts(context.Context, int) ([]store.MonthlyCount, error) {
	return nil, nil
}

func (f *fakeTriageRepo) SectorRisk(context.Context) ([]store.SectorRisk, error) {
	return nil, nil
}

func sampleRecords() []store.TriageRecord {
	return []store.TriageRecord{
		{
			Sequence:  2,
			Timestamp: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
			TriageEventData: store.TriageEventData{
				SubmissionID: "s2",
				Name:         "Bruno Lima",
				Phone:        "11 97777-0000",
				Email:        "bruno@example.com",
				FunctionRole: "Welder",
				Age:          41,
				Sector:       "production",
				Answers:      map[string]string{"q1": "Often", "q4": "Yes"},
				RiskScore:    5,
				RiskLevel:    "medium",
				Suggestion:   "We recommend a teleorientation session with a health professional.",
			},
		},
		{
			Sequence:  1,
			Timestamp: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			TriageEventData: store.TriageEventData{
				SubmissionID: "s1",
				Name:         "Carla Nunes",
				FunctionRole: "Analyst",
				Age:          29,
				Sector:       "administrative",
				Answers:      map[string]string{"q1": "Never"},
				RiskScore:    0,
				RiskLevel:    "low",
			},
		},
	}
}

func loadScreen(t *testing.T, repo *fakeTriageRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	s.Update(msg)
	return s
}

func TestListShowsRecords(t *testing.T) {
	s := loadScreen(t, &fakeTriageRepo{records: sampleRecords()})

	view := s.View(100, 30)
	for _, want := range []string{"Bruno Lima", "Carla Nunes", "Medium Risk", "Low Risk"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestEnterExpandsDetails(t *testing.T) {
	s := loadScreen(t, &fakeTriageRepo{records: sampleRecords()})

	view := s.View(100, 30)
	if strings.Contains(view, "Welder") {
		t.Fatal("details should be collapsed initially")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view = s.View(100, 30)
	for _, want := range []string{"Welder", "age 41", "teleorientation session"} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view should contain %q", want)
		}
	}

	// Toggle closed again.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if strings.Contains(s.View(100, 30), "Welder") {
		t.Error("enter should collapse an expanded row")
	}
}

func TestLoadErrorShown(t *testing.T) {
	s := loadScreen(t, &fakeTriageRepo{err: errors.New("db locked")})

	view := s.View(100, 30)
	if !strings.Contains(view, "db locked") {
		t.Error("load errors should be surfaced")
	}
}

func TestEmptyState(t *testing.T) {
	s := loadScreen(t, &fakeTriageRepo{})

	view := s.View(100, 30)
	if !strings.Contains(view, "No triages yet") {
		t.Error("empty state message missing")
	}
}
