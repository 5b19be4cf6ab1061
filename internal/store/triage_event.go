package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clinsaude/clin/ent"
	"github.com/clinsaude/clin/ent/triageevent"
)

// triageRepo implements TriageRepo backed by ent and the global
// sequence counter.
type triageRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *triageRepo) AppendTriage(ctx context.Context, data TriageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TriageEvent.Create().
		SetSequence(seqNum).
		SetSubmissionID(data.SubmissionID).
		SetUserID(data.UserID).
		SetName(data.Name).
		SetPhone(data.Phone).
		SetEmail(data.Email).
		SetFunctionRole(data.FunctionRole).
		SetAge(data.Age).
		SetSector(data.Sector).
		SetAnswers(data.Answers).
		SetRiskScore(data.RiskScore).
		SetRiskLevel(data.RiskLevel).
		SetSuggestion(data.Suggestion).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save triage event: %w", err)
	}
	return nil
}

func (r *triageRepo) Triages(ctx context.Context, opts QueryOpts) ([]TriageRecord, error) {
	q := r.client.TriageEvent.Query()

	if opts.Level != "" {
		q = q.Where(triageevent.RiskLevel(opts.Level))
	}
	if opts.Sector != "" {
		q = q.Where(triageevent.Sector(opts.Sector))
	}
	if !opts.From.IsZero() {
		q = q.Where(triageevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(triageevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Desc(triageevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query triages: %w", err)
	}

	records := make([]TriageRecord, 0, len(events))
	for _, e := range events {
		records = append(records, TriageRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TriageEventData: TriageEventData{
				SubmissionID: e.SubmissionID,
				UserID:       e.UserID,
				Name:         e.Name,
				Phone:        e.Phone,
				Email:        e.Email,
				FunctionRole: e.FunctionRole,
				Age:          e.Age,
				Sector:       e.Sector,
				Answers:      e.Answers,
				RiskScore:    e.RiskScore,
				RiskLevel:    e.RiskLevel,
				Suggestion:   e.Suggestion,
			},
		})
	}
	return records, nil
}

func (r *triageRepo) RiskBreakdown(ctx context.Context) (RiskBreakdown, error) {
	var bd RiskBreakdown

	for _, level := range []string{"low", "medium", "high"} {
		n, err := r.client.TriageEvent.Query().
			Where(triageevent.RiskLevel(level)).
			Count(ctx)
		if err != nil {
			return RiskBreakdown{}, fmt.Errorf("count %s triages: %w", level, err)
		}
		switch level {
		case "low":
			bd.Low = n
		case "medium":
			bd.Medium = n
		case "high":
			bd.High = n
		}
		bd.Total += n
	}
	return bd, nil
}

func (r *triageRepo) MonthlyCounts(ctx context.Context, months int) ([]MonthlyCount, error) {
	if months <= 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	events, err := r.client.TriageEvent.Query().
		Where(triageevent.TimestampGTE(first)).
		Select(triageevent.FieldTimestamp).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query monthly counts: %w", err)
	}

	buckets := make(map[time.Time]int, months)
	for i := 0; i < months; i++ {
		buckets[first.AddDate(0, i, 0)] = 0
	}
	for _, e := range events {
		ts := e.Timestamp.UTC()
		month := time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
		if _, ok := buckets[month]; ok {
			buckets[month]++
		}
	}

	counts := make([]MonthlyCount, 0, months)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i, 0)
		counts = append(counts, MonthlyCount{Month: month, Count: buckets[month]})
	}
	return counts, nil
}

func (r *triageRepo) SectorRisk(ctx context.Context) ([]SectorRisk, error) {
	events, err := r.client.TriageEvent.Query().
		Select(triageevent.FieldSector, triageevent.FieldRiskScore).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sector risk: %w", err)
	}

	type agg struct {
		count int
		sum   int
	}
	bySector := make(map[string]*agg)
	for _, e := range events {
		a := bySector[e.Sector]
		if a == nil {
			a = &agg{}
			bySector[e.Sector] = a
		}
		a.count++
		a.sum += e.RiskScore
	}

	risks := make([]SectorRisk, 0, len(bySector))
	for sector, a := range bySector {
		risks = append(risks, SectorRisk{
			Sector:   sector,
			Count:    a.count,
			AvgScore: float64(a.sum) / float64(a.count),
		})
	}
	sort.Slice(risks, func(i, j int) bool {
		if risks[i].AvgScore != risks[j].AvgScore {
			return risks[i].AvgScore > risks[j].AvgScore
		}
		return risks[i].Sector < risks[j].Sector
	})
	return risks, nil
}
