package store

import (
	"context"
	"time"
)

// QueryOpts configures triage queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	Level  string    // risk_level equals (empty = any)
	Sector string    // sector equals (empty = any)
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// TriageEventData captures one completed triage for persistence.
type TriageEventData struct {
	SubmissionID string
	UserID       string // empty for anonymous
	Name         string
	Phone        string
	Email        string
	FunctionRole string
	Age          int
	Sector       string
	Answers      map[string]string
	RiskScore    int
	RiskLevel    string
	Suggestion   string
}

// TriageRecord is a stored triage event as returned by queries.
type TriageRecord struct {
	Sequence  int64
	Timestamp time.Time
	TriageEventData
}

// RiskBreakdown counts stored triages per risk level.
type RiskBreakdown struct {
	Total  int
	Low    int
	Medium int
	High   int
}

// MonthlyCount is the number of triages completed in one calendar month.
type MonthlyCount struct {
	Month time.Time // first day of the month, UTC
	Count int
}

// SectorRisk aggregates risk scores for one sector.
type SectorRisk struct {
	Sector   string
	Count    int
	AvgScore float64
}

// TriageRepo provides append and query access to triage events.
type TriageRepo interface {
	// AppendTriage records a completed triage.
	AppendTriage(ctx context.Context, data TriageEventData) error

	// Triages returns stored triages, newest first.
	Triages(ctx context.Context, opts QueryOpts) ([]TriageRecord, error)

	// RiskBreakdown counts triages per risk level.
	RiskBreakdown(ctx context.Context) (RiskBreakdown, error)

	// MonthlyCounts returns per-month triage counts for the last n months,
	// oldest first. Months without triages are included with a zero count.
	MonthlyCounts(ctx context.Context, months int) ([]MonthlyCount, error)

	// SectorRisk aggregates average scores per sector, highest average first.
	SectorRisk(ctx context.Context) ([]SectorRisk, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates logged LLM requests for one purpose label.
type LLMUsage struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates logged LLM requests for one model.
type LLMModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// LLMEventRepo provides append and aggregate access to LLM request events.
type LLMEventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// UsageByPurpose aggregates logged requests per purpose label.
	UsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// UsageByModel aggregates logged requests per model ID.
	UsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
