package reports

import (
	"context"
	"fmt"

	"github.com/clinsaude/clin/internal/store"
)

// Metrics aggregates the stored triages for the reports dashboard.
type Metrics struct {
	Total   int
	Low     int
	Medium  int
	High    int
	Monthly []store.MonthlyCount
	Sectors []store.SectorRisk
}

// MonthsShown is the monthly-series window on the dashboard.
const MonthsShown = 7

// Load computes dashboard metrics from the triage repository.
func Load(ctx context.Context, repo store.TriageRepo) (*Metrics, error) {
	bd, err := repo.RiskBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("risk breakdown: %w", err)
	}

	monthly, err := repo.MonthlyCounts(ctx, MonthsShown)
	if err != nil {
		return nil, fmt.Errorf("monthly counts: %w", err)
	}

	sectors, err := repo.SectorRisk(ctx)
	if err != nil {
		return nil, fmt.Errorf("sector risk: %w", err)
	}

	return &Metrics{
		Total:   bd.Total,
		Low:     bd.Low,
		Medium:  bd.Medium,
		High:    bd.High,
		Monthly: monthly,
		Sectors: sectors,
	}, nil
}

// Percent returns n as a whole percentage of the total, 0 when empty.
func (m *Metrics) Percent(n int) int {
	if m.Total == 0 {
		return 0
	}
	return n * 100 / m.Total
}
