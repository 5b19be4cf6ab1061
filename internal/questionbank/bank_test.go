package questionbank

import "testing"

func TestBankShape(t *testing.T) {
	if Count() != 6 {
		t.Fatalf("Count() = %d, want 6", Count())
	}
	if MaxTotalScore() != 18 {
		t.Errorf("MaxTotalScore() = %d, want 18", MaxTotalScore())
	}

	wantOrder := []string{"q1", "q2", "q3", "q4", "q5", "q6"}
	all := All()
	for i, q := range all {
		if q.ID != wantOrder[i] {
			t.Errorf("All()[%d].ID = %q, want %q", i, q.ID, wantOrder[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].ID = "mutated"

	if All()[0].ID != "q1" {
		t.Error("mutating the slice returned by All() changed the bank")
	}
}

func TestGet(t *testing.T) {
	q, ok := Get("q4")
	if !ok {
		t.Fatal("Get(q4) not found")
	}
	if q.Category != CategoryOral {
		t.Errorf("q4 category = %q, want %q", q.Category, CategoryOral)
	}

	if _, ok := Get("q99"); ok {
		t.Error("Get(q99) should not be found")
	}
}

func TestMotivationScaleInverted(t *testing.T) {
	q, ok := Get("q3")
	if !ok {
		t.Fatal("Get(q3) not found")
	}

	tests := []struct {
		label string
		want  int
	}{
		{"Always", 0},
		{"Often", 1},
		{"Rarely", 2},
		{"Never", 3},
	}
	for _, tt := range tests {
		if got := q.Scores[tt.label]; got != tt.want {
			t.Errorf("q3 score for %q = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestFrequencyScale(t *testing.T) {
	q, _ := Get("q1")
	if q.Scores["Always"] != 3 || q.Scores["Never"] != 0 {
		t.Errorf("q1 scale wrong: %v", q.Scores)
	}
	if q.MaxScore() != 3 {
		t.Errorf("q1 MaxScore() = %d, want 3", q.MaxScore())
	}
}

func TestYesNoScale(t *testing.T) {
	for _, id := range []string{"q4", "q5", "q6"} {
		q, _ := Get(id)
		if q.Scores["Yes"] != 3 || q.Scores["No"] != 0 {
			t.Errorf("%s scale wrong: %v", id, q.Scores)
		}
	}
}

func TestHasOption(t *testing.T) {
	q, _ := Get("q1")
	if !q.HasOption("Rarely") {
		t.Error("q1 should have option Rarely")
	}
	if q.HasOption("Yes") {
		t.Error("q1 should not have option Yes")
	}
}
