package store

import (
	"context"
	"strings"
	"testing"

	"github.com/clinsaude/clin/internal/triage"
)

// openTestStore opens an in-memory store isolated per test. The shared
// cache keeps the database alive across the pool's connections.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testTriage(id string, level string, score int, sector string) TriageEventData {
	return TriageEventData{
		SubmissionID: id,
		Name:         "Ana Souza",
		Phone:        "11999990000",
		Email:        "ana@example.com",
		FunctionRole: "Machine Operator",
		Age:          34,
		Sector:       sector,
		Answers:      map[string]string{"q1": "Often", "q4": "Yes"},
		RiskScore:    score,
		RiskLevel:    level,
		Suggestion:   "A suggestion.",
	}
}

func submissionFixture() triage.Submission {
	return triage.Submission{
		SubmissionID: "sub-gw",
		UserID:       "u-7",
		Name:         "Bruno Lima",
		Phone:        "11988887777",
		Email:        "bruno@example.com",
		Role:         "Nurse",
		Age:          41,
		Sector:       triage.SectorAdministrative,
		Answers:      triage.AnswerSet{"q1": "Often", "q2": "Rarely"},
		Score:        6,
		Level:        triage.LevelMedium,
		Suggestion:   "A suggestion.",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryTriages(t *testing.T) {
	s := openTestStore(t)
	repo := s.TriageRepo()
	ctx := context.Background()

	for i, d := range []TriageEventData{
		testTriage("sub-1", "low", 3, "production"),
		testTriage("sub-2", "high", 12, "sales"),
		testTriage("sub-3", "medium", 7, "production"),
	} {
		if err := repo.AppendTriage(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.Triages(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Newest first.
	if records[0].SubmissionID != "sub-3" || records[2].SubmissionID != "sub-1" {
		t.Errorf("wrong order: %q .. %q", records[0].SubmissionID, records[2].SubmissionID)
	}

	// Sequences strictly increase with insertion order.
	if records[0].Sequence <= records[1].Sequence || records[1].Sequence <= records[2].Sequence {
		t.Errorf("sequences not descending: %d, %d, %d",
			records[0].Sequence, records[1].Sequence, records[2].Sequence)
	}

	// Round-trip of the JSON answers column.
	if records[2].Answers["q1"] != "Often" {
		t.Errorf("answers not preserved: %v", records[2].Answers)
	}
}

func TestTriagesFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.TriageRepo()
	ctx := context.Background()

	for _, d := range []TriageEventData{
		testTriage("sub-1", "low", 3, "production"),
		testTriage("sub-2", "high", 12, "sales"),
		testTriage("sub-3", "high", 15, "production"),
	} {
		if err := repo.AppendTriage(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byLevel, err := repo.Triages(ctx, QueryOpts{Level: "high"})
	if err != nil {
		t.Fatalf("query by level: %v", err)
	}
	if len(byLevel) != 2 {
		t.Errorf("high triages = %d, want 2", len(byLevel))
	}

	bySector, err := repo.Triages(ctx, QueryOpts{Level: "high", Sector: "production"})
	if err != nil {
		t.Fatalf("query by level+sector: %v", err)
	}
	if len(bySector) != 1 || bySector[0].SubmissionID != "sub-3" {
		t.Errorf("filtered result = %+v, want only sub-3", bySector)
	}

	limited, err := repo.Triages(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].SubmissionID != "sub-3" {
		t.Errorf("limited result = %+v, want newest only", limited)
	}
}

func TestDuplicateSubmissionRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.TriageRepo()
	ctx := context.Background()

	if err := repo.AppendTriage(ctx, testTriage("sub-1", "low", 3, "sales")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendTriage(ctx, testTriage("sub-1", "low", 3, "sales")); err == nil {
		t.Error("duplicate submission_id should be rejected")
	}
}

func TestRiskBreakdown(t *testing.T) {
	s := openTestStore(t)
	repo := s.TriageRepo()
	ctx := context.Background()

	empty, err := repo.RiskBreakdown(ctx)
	if err != nil {
		t.Fatalf("breakdown (empty): %v", err)
	}
	if empty.Total != 0 {
		t.Errorf("empty total = %d, want 0", empty.Total)
	}

	levels := []string{"low", "low", "medium", "high", "high", "high"}
	for i, level := range levels {
		d := testTriage("sub-"+string(rune('a'+i)), level, 5, "other")
		if err := repo.AppendTriage(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	bd, err := repo.RiskBreakdown(ctx)
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	want := RiskBreakdown{Total: 6, Low: 2, Medium: 1, High: 3}
	if bd != want {
		t.Errorf("breakdown = %+v, want %+v", bd, want)
	}
}

func TestMonthlyCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.TriageRepo()
	ctx := context.Background()

	for _, d := range []TriageEventData{
		testTriage("sub-1", "low", 3, "sales"),
		testTriage("sub-2", "medium", 6, "sales"),
	} {
		if err := repo.AppendTriage(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	counts, err := repo.MonthlyCounts(ctx, 3)
	if err != nil {
		t.Fatalf("monthly counts: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("got %d months, want 3", len(counts))
	}

	// Events were just inserted, so they land in the current month.
	last := counts[len(counts)-1]
	if last.Count != 2 {
		t.Errorf("current month count = %d, want 2", last.Count)
	}
	for _, mc := range counts[:len(counts)-1] {
		if mc.Count != 0 {
			t.Errorf("month %s count = %d, want 0", mc.Month.Format("2006-01"), mc.Count)
		}
	}

	// Months are first-of-month and ascending.
	for i := 1; i < len(counts); i++ {
		if !counts[i].Month.After(counts[i-1].Month) {
			t.Errorf("months not ascending: %v", counts)
		}
		if counts[i].Month.Day() != 1 {
			t.Errorf("month %v is not first-of-month", counts[i].Month)
		}
	}
}

func TestSectorRisk(t *testing.T) {
	s := openTestStore(t)
	repo := s.TriageRepo()
	ctx := context.Background()

	for _, d := range []TriageEventData{
		testTriage("sub-1", "low", 2, "sales"),
		testTriage("sub-2", "medium", 6, "sales"),
		testTriage("sub-3", "high", 12, "production"),
	} {
		if err := repo.AppendTriage(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	risks, err := repo.SectorRisk(ctx)
	if err != nil {
		t.Fatalf("sector risk: %v", err)
	}
	if len(risks) != 2 {
		t.Fatalf("got %d sectors, want 2", len(risks))
	}

	// Highest average first.
	if risks[0].Sector != "production" || risks[0].AvgScore != 12 {
		t.Errorf("risks[0] = %+v, want production avg 12", risks[0])
	}
	if risks[1].Sector != "sales" || risks[1].AvgScore != 4 || risks[1].Count != 2 {
		t.Errorf("risks[1] = %+v, want sales avg 4 count 2", risks[1])
	}
}

func TestGatewaySubmit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	gw := s.Gateway()
	err := gw.Submit(ctx, submissionFixture())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	records, err := s.TriageRepo().Triages(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.UserID != "u-7" || rec.FunctionRole != "Nurse" || rec.RiskLevel != "medium" {
		t.Errorf("stored record = %+v", rec)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "m", Purpose: "wellness-tips", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "mock", Model: "m", Purpose: "wellness-tips", InputTokens: 100, OutputTokens: 0, LatencyMs: 400, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usages, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usages) != 1 {
		t.Fatalf("got %d purposes, want 1", len(usages))
	}
	u := usages[0]
	if u.Requests != 2 || u.Failures != 1 || u.InputTokens != 200 || u.AvgLatencyMs != 300 {
		t.Errorf("usage = %+v", u)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "wellness-tips", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "wellness-tips", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "wellness-tips", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usages, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usages) != 2 {
		t.Fatalf("got %d models, want 2", len(usages))
	}

	// Sorted by model name.
	if usages[0].Model != "claude-sonnet-4-5" || usages[1].Model != "gpt-4o-mini" {
		t.Fatalf("model order = %q, %q", usages[0].Model, usages[1].Model)
	}
	if u := usages[0]; u.Requests != 2 || u.InputTokens != 300 || u.OutputTokens != 130 {
		t.Errorf("claude usage = %+v", u)
	}
	if u := usages[1]; u.Requests != 1 || u.InputTokens != 10 || u.OutputTokens != 5 {
		t.Errorf("gpt usage = %+v", u)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.TriageRepo().AppendTriage(ctx, testTriage("sub-1", "low", 1, "other")); err != nil {
		t.Fatalf("append triage: %v", err)
	}
	if err := s.LLMEventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m", Purpose: "wellness-tips", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	next, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if next != 3 {
		t.Errorf("sequence after two events = %d, want 3", next)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"triage_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIN_DB_PATH", dir+"/nested/clin.db")

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if p != dir+"/nested/clin.db" {
		t.Errorf("path = %q", p)
	}
}
