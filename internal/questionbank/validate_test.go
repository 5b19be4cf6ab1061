package questionbank

import (
	"strings"
	"testing"
)

func TestBankIsValid(t *testing.T) {
	if err := validateQuestions(All()); err != nil {
		t.Fatalf("shipped bank failed validation: %v", err)
	}
}

func TestValidateCatchesProblems(t *testing.T) {
	valid := Question{
		ID:      "ok",
		Prompt:  "A prompt",
		Options: []string{"Yes", "No"},
		Scores:  map[string]int{"Yes": 3, "No": 0},
	}

	tests := []struct {
		name    string
		mutate  func(q Question) Question
		wantSub string
	}{
		{
			name: "duplicate id",
			mutate: func(q Question) Question {
				return q // validated as a pair below
			},
			wantSub: "duplicate question ID",
		},
		{
			name: "empty prompt",
			mutate: func(q Question) Question {
				q.Prompt = ""
				return q
			},
			wantSub: "empty prompt",
		},
		{
			name: "unknown scored option",
			mutate: func(q Question) Question {
				q.Scores = map[string]int{"Yes": 3, "No": 0, "Maybe": 1}
				return q
			},
			wantSub: "unknown option",
		},
		{
			name: "negative weight",
			mutate: func(q Question) Question {
				q.Scores = map[string]int{"Yes": 3, "No": -1}
				return q
			},
			wantSub: "negative weight",
		},
		{
			name: "no zero option",
			mutate: func(q Question) Question {
				q.Scores = map[string]int{"Yes": 3, "No": 1}
				return q
			},
			wantSub: "no zero-weight option",
		},
		{
			name: "single option",
			mutate: func(q Question) Question {
				q.Options = []string{"Yes"}
				q.Scores = map[string]int{"Yes": 0}
				return q
			},
			wantSub: "at least two options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := []Question{valid, tt.mutate(valid)}
			if tt.name != "duplicate id" {
				set[1].ID = "mutated"
			}
			err := validateQuestions(set)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}
