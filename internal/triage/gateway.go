package triage

import (
	"context"
	"os"
	"strings"
)

// Gateway persists completed triage submissions. The wizard UI fires
// exactly one Submit per completed triage; failures are surfaced to the
// user but never block the result screen, and there is no automatic retry.
type Gateway interface {
	Submit(ctx context.Context, sub Submission) error
}

// IdentityResolver looks up the current user's identity, if any.
// A failed lookup means the submission is anonymous.
type IdentityResolver interface {
	UserID(ctx context.Context) (string, bool)
}

// EnvIdentity resolves the user ID from the CLIN_USER_ID environment
// variable.
type EnvIdentity struct{}

func (EnvIdentity) UserID(_ context.Context) (string, bool) {
	id := strings.TrimSpace(os.Getenv("CLIN_USER_ID"))
	return id, id != ""
}
