package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinsaude/clin/internal/store"
)

// fakeTriageRepo returns canned aggregates.
type fakeTriageRepo struct {
	breakdown store.RiskBreakdown
	monthly   []store.MonthlyCount
	sectors   []store.SectorRisk
	err       error
}

func (f *fakeTriageRepo) AppendTriage(context.Context, store.TriageEventData) error {
	return errors.New("not implemented")
}

func (f *fakeTriageRepo) Triages(context.Context, store.QueryOpts) ([]store.TriageRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTriageRepo) RiskBreakdown(context.Context) (store.RiskBreakdown, error) {
	return f.breakdown, f.err
}

func (f *fakeTriageRepo) MonthlyCounts(_ context.Context, months int) ([]store.MonthlyCount, error) {
	if len(f.monthly) > months {
		return f.monthly[:months], f.err
	}
	return f.monthly, f.err
}

func (f *fakeTriageRepo) SectorRisk(context.Context) ([]store.SectorRisk, error) {
	return f.sectors, f.err
}

func TestLoad(t *testing.T) {
	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeTriageRepo{
		breakdown: store.RiskBreakdown{Total: 10, Low: 5, Medium: 3, High: 2},
		monthly:   []store.MonthlyCount{{Month: month, Count: 10}},
		sectors:   []store.SectorRisk{{Sector: "production", Count: 4, AvgScore: 9.5}},
	}

	m, err := Load(context.Background(), repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Total != 10 || m.High != 2 {
		t.Errorf("metrics = %+v", m)
	}
	if len(m.Monthly) != 1 || m.Monthly[0].Count != 10 {
		t.Errorf("monthly = %+v", m.Monthly)
	}
	if len(m.Sectors) != 1 || m.Sectors[0].Sector != "production" {
		t.Errorf("sectors = %+v", m.Sectors)
	}
}

func TestLoadPropagatesErrors(t *testing.T) {
	repo := &fakeTriageRepo{err: errors.New("boom")}
	if _, err := Load(context.Background(), repo); err == nil {
		t.Fatal("expected error")
	}
}

func TestPercent(t *testing.T) {
	m := &Metrics{Total: 8, High: 2}
	if got := m.Percent(m.High); got != 25 {
		t.Errorf("Percent(2 of 8) = %d, want 25", got)
	}

	empty := &Metrics{}
	if got := empty.Percent(5); got != 0 {
		t.Errorf("Percent on empty metrics = %d, want 0", got)
	}
}

func TestAdvisoryContent(t *testing.T) {
	factors := RiskFactors()
	if len(factors) == 0 {
		t.Fatal("no risk factors")
	}
	for i := 1; i < len(factors); i++ {
		if factors[i].Prevalence > factors[i-1].Prevalence {
			t.Errorf("risk factors not sorted by prevalence: %v", factors)
		}
	}

	for _, a := range PreventionActions() {
		if a.Title == "" || a.Description == "" {
			t.Errorf("incomplete action: %+v", a)
		}
		switch a.Priority {
		case PriorityHigh, PriorityMedium, PriorityLow:
		default:
			t.Errorf("action %q has unknown priority %q", a.Title, a.Priority)
		}
	}
}
