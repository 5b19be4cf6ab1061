package triage

import "testing"

// answersWithScore returns a full answer set totalling the given score.
func answersWithScore(t *testing.T, target int) AnswerSet {
	t.Helper()

	sets := map[int]AnswerSet{
		0:  {"q1": "Never", "q2": "Never", "q3": "Always", "q4": "No", "q5": "No", "q6": "No"},
		4:  {"q1": "Often", "q2": "Often", "q3": "Always", "q4": "No", "q5": "No", "q6": "No"},
		5:  {"q1": "Often", "q2": "Never", "q3": "Always", "q4": "Yes", "q5": "No", "q6": "No"},
		9:  {"q1": "Always", "q2": "Always", "q3": "Never", "q4": "No", "q5": "No", "q6": "No"},
		10: {"q1": "Often", "q2": "Often", "q3": "Always", "q4": "Yes", "q5": "Yes", "q6": "No"},
		18: {"q1": "Always", "q2": "Always", "q3": "Never", "q4": "Yes", "q5": "Yes", "q6": "Yes"},
	}
	answers, ok := sets[target]
	if !ok {
		t.Fatalf("no canned answer set for score %d", target)
	}
	if got := Score(answers); got != target {
		t.Fatalf("canned answer set for %d actually scores %d", target, got)
	}
	return answers.Clone()
}

func TestScoreEmpty(t *testing.T) {
	if got := Score(AnswerSet{}); got != 0 {
		t.Errorf("Score(empty) = %d, want 0", got)
	}
	if got := Score(nil); got != 0 {
		t.Errorf("Score(nil) = %d, want 0", got)
	}
}

func TestScoreMaximum(t *testing.T) {
	answers := AnswerSet{
		"q1": "Always", "q2": "Always", "q3": "Never",
		"q4": "Yes", "q5": "Yes", "q6": "Yes",
	}
	if got := Score(answers); got != 18 {
		t.Errorf("Score(max answers) = %d, want 18", got)
	}
}

func TestScoreUnmappedLabelIsZero(t *testing.T) {
	// A label that is not in the question's score map contributes nothing.
	answers := AnswerSet{"q1": "Sometimes"}
	if got := Score(answers); got != 0 {
		t.Errorf("Score(unmapped label) = %d, want 0", got)
	}
}

func TestScorePartial(t *testing.T) {
	answers := AnswerSet{"q1": "Often", "q4": "Yes"}
	if got := Score(answers); got != 5 {
		t.Errorf("Score(partial) = %d, want 5", got)
	}
}

func TestScoreIgnoresUnknownQuestions(t *testing.T) {
	answers := AnswerSet{"q1": "Always", "q42": "Always"}
	if got := Score(answers); got != 3 {
		t.Errorf("Score with stray question ID = %d, want 3", got)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, LevelLow},
		{4, LevelLow},
		{5, LevelMedium},
		{9, LevelMedium},
		{10, LevelHigh},
		{18, LevelHigh},
	}
	for _, tt := range tests {
		got := Classify(tt.score)
		if got.Level != tt.want {
			t.Errorf("Classify(%d).Level = %q, want %q", tt.score, got.Level, tt.want)
		}
		if got.Score != tt.score {
			t.Errorf("Classify(%d).Score = %d", tt.score, got.Score)
		}
		if got.Suggestion == "" {
			t.Errorf("Classify(%d) has empty suggestion", tt.score)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := Classify(0).Level
	for score := 1; score <= 18; score++ {
		cur := Classify(score).Level
		if cur.Rank() < prev.Rank() {
			t.Fatalf("level decreased from %q to %q at score %d", prev, cur, score)
		}
		prev = cur
	}
}

func TestEvaluateAgreesWithScoreAndClassify(t *testing.T) {
	for _, target := range []int{0, 4, 5, 9, 10, 18} {
		answers := answersWithScore(t, target)
		got := Evaluate(answers)
		want := Classify(Score(answers))
		if got != want {
			t.Errorf("Evaluate mismatch at score %d: got %+v, want %+v", target, got, want)
		}
	}
}
