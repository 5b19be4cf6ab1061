package orientation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/clinsaude/clin/internal/triage"
)

func tipsInput() TipsInput {
	return TipsInput{
		Result: triage.Result{Score: 11, Level: triage.LevelHigh, Suggestion: "See a specialist."},
		Role:   "Welder",
		Sector: triage.SectorProduction,
		Age:    45,
		Answers: triage.AnswerSet{
			"q1": "Always",
			"q2": "Often",
			"q3": "Always",
			"q4": "Yes",
			"q5": "No",
			"q6": "Yes",
		},
	}
}

func TestTipsGenerate(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"You have been under real strain.","tips":["Take short breaks","Book the dental visit","Wind down before bed"]}`),
		Usage:   Usage{InputTokens: 200, OutputTokens: 60, TotalTokens: 260},
	})
	svc := NewTipsService(mock)

	tips, err := svc.Generate(context.Background(), tipsInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tips.Summary == "" || len(tips.Tips) != 3 {
		t.Errorf("tips = %+v", tips)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "wellness-tips" {
		t.Errorf("request schema = %+v", req.Schema)
	}
	if req.System == "" {
		t.Error("system prompt not set")
	}
}

func TestTipsPromptMentionsFlaggedAnswersOnly(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"s","tips":["a","b","c"]}`),
	})
	svc := NewTipsService(mock)

	if _, err := svc.Generate(context.Background(), tipsInput()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "High Risk") {
		t.Errorf("prompt missing risk level:\n%s", msg)
	}
	if !strings.Contains(msg, "anxious or stressed") {
		t.Errorf("prompt missing flagged answer:\n%s", msg)
	}
	// q5 was answered "No" (weight 0) and must not be listed.
	if strings.Contains(msg, "gum bleeding") {
		t.Errorf("prompt lists a clean answer:\n%s", msg)
	}
	// q3 "Always" has weight 0 on the inverted scale.
	if strings.Contains(msg, "motivated") {
		t.Errorf("prompt lists the zero-weight motivation answer:\n%s", msg)
	}
}

func TestTipsProviderError(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewTipsService(mock)

	_, err := svc.Generate(context.Background(), tipsInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("error type = %T", err)
	}
}

func TestTipsMalformedResponse(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewTipsService(mock)

	if _, err := svc.Generate(context.Background(), tipsInput()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTipsDisabledWithoutProvider(t *testing.T) {
	svc := NewTipsService(nil)
	if svc.Enabled() {
		t.Error("service with nil provider should be disabled")
	}
	if _, err := svc.Generate(context.Background(), tipsInput()); err == nil {
		t.Fatal("expected error from disabled service")
	}

	var nilSvc *TipsService
	if nilSvc.Enabled() {
		t.Error("nil service should be disabled")
	}
}
