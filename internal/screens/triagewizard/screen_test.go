package triagewizard

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/clinsaude/clin/internal/triage"
)

// fakeGateway records submissions and can be told to fail.
type fakeGateway struct {
	submissions []triage.Submission
	err         error
}

func (g *fakeGateway) Submit(_ context.Context, sub triage.Submission) error {
	g.submissions = append(g.submissions, sub)
	return g.err
}

type fixedIdentity struct{ id string }

func (f fixedIdentity) UserID(context.Context) (string, bool) {
	return f.id, f.id != ""
}

func validInfo() triage.PersonalInfo {
	return triage.PersonalInfo{
		Name:   "Ana Souza",
		Phone:  "11 98888-0000",
		Email:  "ana@example.com",
		Role:   "Machine Operator",
		Age:    34,
		Sector: triage.SectorProduction,
	}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// answerAll answers every question with its first option and returns
// the command produced by completing the last one. First options score
// 3+3+0+3+3+3 = 15, a high-risk outcome.
func answerAll(t *testing.T, s *TriageWizardScreen) tea.Cmd {
	t.Helper()

	var cmd tea.Cmd
	for i := 0; i < s.wiz.Count(); i++ {
		if s.wiz.Stage() != triage.StageQuestion {
			t.Fatalf("expected question stage at step %d, got %v", i, s.wiz.Stage())
		}
		_, cmd = s.Update(enterKey())
	}
	return cmd
}

func newCompletedScreen(t *testing.T, gw *fakeGateway) (*TriageWizardScreen, tea.Cmd) {
	t.Helper()

	s := New(gw, fixedIdentity{id: "u-12"}, nil)
	if err := s.wiz.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	s.loadQuestion()
	cmd := answerAll(t, s)
	return s, cmd
}

func TestCompletionSubmitsExactlyOnce(t *testing.T) {
	gw := &fakeGateway{}
	s, cmd := newCompletedScreen(t, gw)

	if s.wiz.Stage() != triage.StageResult {
		t.Fatalf("expected result stage, got %v", s.wiz.Stage())
	}
	if cmd == nil {
		t.Fatal("completing the triage should produce a command")
	}

	msg := cmd()
	res, ok := msg.(submitResultMsg)
	if !ok {
		t.Fatalf("expected submitResultMsg, got %T", msg)
	}
	if res.Err != nil {
		t.Fatalf("unexpected submit error: %v", res.Err)
	}

	if len(gw.submissions) != 1 {
		t.Fatalf("expected exactly 1 submission, got %d", len(gw.submissions))
	}
	sub := gw.submissions[0]
	if sub.Name != "Ana Souza" {
		t.Errorf("submission name = %q", sub.Name)
	}
	if sub.UserID != "u-12" {
		t.Errorf("submission user ID = %q", sub.UserID)
	}
	if sub.Score != 15 || sub.Level != triage.LevelHigh {
		t.Errorf("submission score/level = %d/%s", sub.Score, sub.Level)
	}
	if sub.SubmissionID == "" {
		t.Error("submission ID should be assigned")
	}

	s.Update(res)
	view := s.View(80, 24)
	if !strings.Contains(view, "Saved") {
		t.Error("result view should confirm the save")
	}
}

func TestExtraKeysDoNotResubmit(t *testing.T) {
	gw := &fakeGateway{}
	s, cmd := newCompletedScreen(t, gw)
	cmd()

	for _, msg := range []tea.Msg{key('n'), key('x'), enterKey()} {
		_, extra := s.Update(msg)
		if extra == nil {
			continue
		}
		if _, ok := extra().(submitResultMsg); ok {
			t.Fatal("extra key produced a second submission attempt")
		}
	}
	if len(gw.submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(gw.submissions))
	}
}

func TestSubmitFailureKeepsResultVisible(t *testing.T) {
	gw := &fakeGateway{err: errors.New("disk full")}
	s, cmd := newCompletedScreen(t, gw)

	msg := cmd()
	s.Update(msg)

	view := s.View(80, 24)
	if !strings.Contains(view, "Could not save") {
		t.Error("save failure should be mentioned")
	}
	if !strings.Contains(view, "High Risk") {
		t.Error("result should stay visible after a failed save")
	}
	if !strings.Contains(view, "Score: 15 of 18") {
		t.Errorf("score line missing from view:\n%s", view)
	}
}

func TestRestartAllowsFreshSubmission(t *testing.T) {
	gw := &fakeGateway{}
	s, cmd := newCompletedScreen(t, gw)
	cmd()

	s.Update(key('r'))
	if s.wiz.Stage() != triage.StageInfo {
		t.Fatalf("restart should return to info stage, got %v", s.wiz.Stage())
	}

	if err := s.wiz.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo after restart: %v", err)
	}
	s.loadQuestion()
	cmd = answerAll(t, s)
	if cmd == nil {
		t.Fatal("second completion should submit again")
	}
	cmd()

	if len(gw.submissions) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(gw.submissions))
	}
	if gw.submissions[0].SubmissionID == gw.submissions[1].SubmissionID {
		t.Error("each completion should get its own submission ID")
	}
}

func TestAdvanceWithoutAnswerShowsError(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)
	if err := s.wiz.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	s.loadQuestion()

	s.Update(key('n'))
	if s.stepErr == "" {
		t.Error("advancing without an answer should set an error message")
	}
	if s.wiz.Index() != 0 {
		t.Errorf("wizard should not advance, index = %d", s.wiz.Index())
	}
}

func TestPreviousFromFirstQuestionClearsInfo(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)
	if err := s.wiz.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	s.loadQuestion()

	s.Update(key('p'))
	if s.wiz.Stage() != triage.StageInfo {
		t.Fatalf("expected info stage, got %v", s.wiz.Stage())
	}
	if s.wiz.Info() != (triage.PersonalInfo{}) {
		t.Error("personal info should be cleared when backing out")
	}
}

func TestInvalidFormShowsAllProblems(t *testing.T) {
	s := New(&fakeGateway{}, nil, nil)

	// Empty form submitted straight away.
	updated, _ := s.Update(submitRequestedMsg{})
	s = updated.(*TriageWizardScreen)

	if s.formErr == "" {
		t.Fatal("empty form should produce a validation message")
	}
	if s.wiz.Stage() != triage.StageInfo {
		t.Error("wizard must stay on the info stage after invalid submit")
	}
	for _, want := range []string{"name", "age"} {
		if !strings.Contains(s.formErr, want) {
			t.Errorf("validation message should mention %s, got %q", want, s.formErr)
		}
	}
}

func TestAnonymousWhenNoIdentity(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw, nil, nil)
	if err := s.wiz.SubmitInfo(validInfo()); err != nil {
		t.Fatalf("SubmitInfo: %v", err)
	}
	s.loadQuestion()
	cmd := answerAll(t, s)
	cmd()

	if len(gw.submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(gw.submissions))
	}
	if gw.submissions[0].UserID != "" {
		t.Errorf("expected anonymous submission, got user %q", gw.submissions[0].UserID)
	}
}
