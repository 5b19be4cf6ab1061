package triage

import (
	"errors"
	"testing"
)

func validInfo() PersonalInfo {
	return PersonalInfo{
		Name:   "Ana Souza",
		Phone:  "11999990000",
		Email:  "ana@example.com",
		Role:   "Machine Operator",
		Age:    34,
		Sector: SectorProduction,
	}
}

func TestWizardStartsAtInfo(t *testing.T) {
	w := NewWizard()
	if w.Stage() != StageInfo {
		t.Fatalf("new wizard stage = %v, want StageInfo", w.Stage())
	}
	if w.Progress() != 0 {
		t.Errorf("new wizard progress = %d, want 0", w.Progress())
	}
	if w.Result() != nil {
		t.Error("new wizard should have no result")
	}
}

func TestSubmitInfoValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *PersonalInfo)
		wantEr error
	}{
		{"empty name", func(p *PersonalInfo) { p.Name = "" }, ErrMissingField},
		{"blank phone", func(p *PersonalInfo) { p.Phone = "   " }, ErrMissingField},
		{"empty email", func(p *PersonalInfo) { p.Email = "" }, ErrMissingField},
		{"empty role", func(p *PersonalInfo) { p.Role = "" }, ErrMissingField},
		{"zero age", func(p *PersonalInfo) { p.Age = 0 }, ErrInvalidAge},
		{"negative age", func(p *PersonalInfo) { p.Age = -3 }, ErrInvalidAge},
		{"empty sector", func(p *PersonalInfo) { p.Sector = "" }, ErrMissingField},
		{"bogus sector", func(p *PersonalInfo) { p.Sector = "finance" }, ErrInvalidSector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWizard()
			info := validInfo()
			tt.mutate(&info)

			err := w.SubmitInfo(info)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, tt.wantEr) {
				t.Errorf("error = %v, want wrapping %v", err, tt.wantEr)
			}
			if w.Stage() != StageInfo {
				t.Errorf("wizard moved to stage %v on invalid info", w.Stage())
			}
		})
	}
}

func TestSubmitInfoAdvancesToFirstQuestion(t *testing.T) {
	w := NewWizard()
	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	if w.Stage() != StageQuestion || w.Index() != 0 {
		t.Errorf("stage=%v index=%d, want StageQuestion index 0", w.Stage(), w.Index())
	}
	if w.Question().ID != "q1" {
		t.Errorf("first question = %q, want q1", w.Question().ID)
	}
}

func TestNextRequiresAnswer(t *testing.T) {
	w := NewWizard()
	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}

	done, err := w.Next()
	if !errors.Is(err, ErrUnanswered) {
		t.Fatalf("Next without answer: err = %v, want ErrUnanswered", err)
	}
	if done || w.Index() != 0 {
		t.Errorf("wizard advanced without an answer: done=%v index=%d", done, w.Index())
	}
}

func TestSelectRejectsUnknownOption(t *testing.T) {
	w := NewWizard()
	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}

	if err := w.Select("Sometimes"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Select(Sometimes) err = %v, want ErrUnknownOption", err)
	}
	if _, ok := w.Answer(); ok {
		t.Error("rejected option was recorded")
	}
}

func TestSelectOverwrites(t *testing.T) {
	w := NewWizard()
	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}

	if err := w.Select("Always"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := w.Select("Never"); err != nil {
		t.Fatalf("Select again: %v", err)
	}
	got, ok := w.Answer()
	if !ok || got != "Never" {
		t.Errorf("answer = %q (%v), want Never", got, ok)
	}
	if w.Progress() != 1 {
		t.Errorf("progress = %d, want 1", w.Progress())
	}
}

// walkToResult answers every question and advances the wizard into
// StageResult using the given answer set.
func walkToResult(t *testing.T, w *Wizard, answers AnswerSet) {
	t.Helper()
	for {
		if err := w.Select(answers[w.Question().ID]); err != nil {
			t.Fatalf("Select on %s: %v", w.Question().ID, err)
		}
		done, err := w.Next()
		if err != nil {
			t.Fatalf("Next on %s: %v", w.Question().ID, err)
		}
		if done {
			return
		}
	}
}

func TestFullWalkthrough(t *testing.T) {
	w := NewWizard()
	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	walkToResult(t, w, answersWithScore(t, 10))

	if w.Stage() != StageResult {
		t.Fatalf("stage = %v, want StageResult", w.Stage())
	}
	res := w.Result()
	if res == nil {
		t.Fatal("no result after completion")
	}
	if res.Score != 10 || res.Level != LevelHigh {
		t.Errorf("result = %+v, want score 10 level high", res)
	}
}

func TestPreviousKeepsAnswers(t *testing.T) {
	w := NewWizard()
	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	if err := w.Select("Often"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}

	w.Previous()
	if w.Index() != 0 {
		t.Fatalf("index after Previous = %d, want 0", w.Index())
	}
	got, ok := w.Answer()
	if !ok || got != "Often" {
		t.Errorf("answer lost on Previous: %q (%v)", got, ok)
	}
}

func TestPreviousFromFirstQuestionClearsInfo(t *testing.T) {
	w := NewWizard()
	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}

	w.Previous()
	if w.Stage() != StageInfo {
		t.Fatalf("stage = %v, want StageInfo", w.Stage())
	}
	if w.Info() != (PersonalInfo{}) {
		t.Errorf("personal info not cleared: %+v", w.Info())
	}
}

func TestRestartClearsEverything(t *testing.T) {
	w := NewWizard()
	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	walkToResult(t, w, answersWithScore(t, 18))

	w.Restart()
	if w.Stage() != StageInfo {
		t.Errorf("stage after restart = %v, want StageInfo", w.Stage())
	}
	if w.Progress() != 0 || w.Result() != nil || w.Info() != (PersonalInfo{}) {
		t.Errorf("state not cleared: progress=%d result=%v info=%+v",
			w.Progress(), w.Result(), w.Info())
	}
}

func TestBuildSubmission(t *testing.T) {
	w := NewWizard()

	if _, err := w.BuildSubmission("u-1"); !errors.Is(err, ErrNotComplete) {
		t.Errorf("BuildSubmission before completion: err = %v, want ErrNotComplete", err)
	}

	if err := w.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	walkToResult(t, w, answersWithScore(t, 5))

	sub, err := w.BuildSubmission("u-1")
	if err != nil {
		t.Fatalf("BuildSubmission: %v", err)
	}
	if sub.SubmissionID == "" {
		t.Error("submission ID not assigned")
	}
	if sub.UserID != "u-1" {
		t.Errorf("UserID = %q, want u-1", sub.UserID)
	}
	if sub.Score != 5 || sub.Level != LevelMedium {
		t.Errorf("submission result = score %d level %q", sub.Score, sub.Level)
	}
	if sub.Name != "Ana Souza" || sub.Sector != SectorProduction {
		t.Errorf("personal info not carried: %+v", sub)
	}
	if len(sub.Answers) != 6 {
		t.Errorf("answers len = %d, want 6", len(sub.Answers))
	}

	// Anonymous submission leaves UserID empty.
	anon, err := w.BuildSubmission("")
	if err != nil {
		t.Fatalf("BuildSubmission anonymous: %v", err)
	}
	if anon.UserID != "" {
		t.Errorf("anonymous UserID = %q, want empty", anon.UserID)
	}
	if anon.SubmissionID == sub.SubmissionID {
		t.Error("submission IDs should be unique per call")
	}
}
