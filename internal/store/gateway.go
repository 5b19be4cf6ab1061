package store

import (
	"context"

	"github.com/clinsaude/clin/internal/triage"
)

// triageGateway adapts a TriageRepo to the triage.Gateway interface
// consumed by the wizard UI.
type triageGateway struct {
	repo TriageRepo
}

// Gateway returns a triage.Gateway persisting submissions to this store.
func (s *Store) Gateway() triage.Gateway {
	return &triageGateway{repo: s.TriageRepo()}
}

func (g *triageGateway) Submit(ctx context.Context, sub triage.Submission) error {
	return g.repo.AppendTriage(ctx, TriageEventData{
		SubmissionID: sub.SubmissionID,
		UserID:       sub.UserID,
		Name:         sub.Name,
		Phone:        sub.Phone,
		Email:        sub.Email,
		FunctionRole: sub.Role,
		Age:          sub.Age,
		Sector:       string(sub.Sector),
		Answers:      sub.Answers,
		RiskScore:    sub.Score,
		RiskLevel:    string(sub.Level),
		Suggestion:   sub.Suggestion,
	})
}
