package triagewizard

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/clinsaude/clin/internal/orientation"
	"github.com/clinsaude/clin/internal/router"
	"github.com/clinsaude/clin/internal/screen"
	"github.com/clinsaude/clin/internal/triage"
	"github.com/clinsaude/clin/internal/ui/components"
	"github.com/clinsaude/clin/internal/ui/layout"
)

// TriageWizardScreen walks an employee through the triage: personal
// info, the six questions, then the computed result.
type TriageWizardScreen struct {
	wiz      *triage.Wizard
	gateway  triage.Gateway
	identity triage.IdentityResolver
	tips     *orientation.TipsService

	form    infoForm
	formErr string

	radio   components.RadioGroup
	stepErr string

	// One persistence attempt per completed triage, no retry.
	submitted  bool
	submitDone bool
	submitErr  error

	tipsLoading bool
	tipsResult  *orientation.Tips
	tipsErr     error
}

var _ screen.Screen = (*TriageWizardScreen)(nil)
var _ screen.KeyHintProvider = (*TriageWizardScreen)(nil)

// New creates a wizard screen. gateway persists completed triages;
// identity and tips may be nil.
func New(gateway triage.Gateway, identity triage.IdentityResolver, tips *orientation.TipsService) *TriageWizardScreen {
	return &TriageWizardScreen{
		wiz:      triage.NewWizard(),
		gateway:  gateway,
		identity: identity,
		tips:     tips,
		form:     newInfoForm(),
	}
}

func (s *TriageWizardScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *TriageWizardScreen) Title() string {
	return "New Triage"
}

func (s *TriageWizardScreen) KeyHints() []layout.KeyHint {
	switch s.wiz.Stage() {
	case triage.StageInfo:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Cancel"},
		}
	case triage.StageQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←", Description: "Previous"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "R", Description: "New triage"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

func (s *TriageWizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitRequestedMsg:
		return s.handleInfoSubmit()

	case submitResultMsg:
		s.submitDone = true
		s.submitErr = msg.Err
		return s, nil

	case tipsReadyMsg:
		s.tipsLoading = false
		s.tipsResult = msg.Tips
		s.tipsErr = msg.Err
		return s, nil
	}

	switch s.wiz.Stage() {
	case triage.StageInfo:
		var cmd tea.Cmd
		s.form, cmd = s.form.Update(msg)
		return s, cmd

	case triage.StageQuestion:
		return s.updateQuestion(msg)

	case triage.StageResult:
		return s.updateResult(msg)
	}
	return s, nil
}

// handleInfoSubmit validates the form and moves to the first question.
func (s *TriageWizardScreen) handleInfoSubmit() (screen.Screen, tea.Cmd) {
	if err := s.wiz.SubmitInfo(s.form.Info()); err != nil {
		s.formErr = err.Error()
		return s, nil
	}
	s.formErr = ""
	s.loadQuestion()
	return s, nil
}

// loadQuestion rebuilds the option list for the current question,
// preselecting a previously recorded answer.
func (s *TriageWizardScreen) loadQuestion() {
	q := s.wiz.Question()
	s.radio = components.NewRadioGroup(q.Prompt, q.Options)
	if label, ok := s.wiz.Answer(); ok {
		for i, opt := range q.Options {
			if opt == label {
				s.radio.SetChosen(i)
				break
			}
		}
	}
	s.stepErr = ""
}

func (s *TriageWizardScreen) updateQuestion(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		// Choose the highlighted option and advance.
		opt := s.wiz.Question().Options[s.radio.Cursor]
		if err := s.wiz.Select(opt); err != nil {
			s.stepErr = err.Error()
			return s, nil
		}
		return s.advance()

	case "space", " ":
		opt := s.wiz.Question().Options[s.radio.Cursor]
		if err := s.wiz.Select(opt); err != nil {
			s.stepErr = err.Error()
			return s, nil
		}
		s.radio.Chosen = s.radio.Cursor
		return s, nil

	case "right", "n":
		return s.advance()

	case "left", "p":
		s.wiz.Previous()
		if s.wiz.Stage() == triage.StageInfo {
			// Personal info was cleared; start the form over.
			s.form = newInfoForm()
			return s, s.form.Init()
		}
		s.loadQuestion()
		return s, nil
	}

	var cmd tea.Cmd
	s.radio, cmd = s.radio.Update(msg)
	return s, cmd
}

// advance moves to the next question, completing the triage after the
// last one. Completion fires exactly one persistence attempt.
func (s *TriageWizardScreen) advance() (screen.Screen, tea.Cmd) {
	completed, err := s.wiz.Next()
	if err != nil {
		if errors.Is(err, triage.ErrUnanswered) {
			s.stepErr = "Choose an option to continue"
		} else {
			s.stepErr = err.Error()
		}
		return s, nil
	}
	if !completed {
		s.loadQuestion()
		return s, nil
	}
	return s, s.onComplete()
}

// onComplete fires the single persistence attempt and, when configured,
// the wellness tip generation.
func (s *TriageWizardScreen) onComplete() tea.Cmd {
	if s.submitted {
		return nil
	}
	s.submitted = true

	var userID string
	if s.identity != nil {
		if id, ok := s.identity.UserID(context.Background()); ok {
			userID = id
		}
	}

	sub, err := s.wiz.BuildSubmission(userID)
	if err != nil {
		s.submitDone = true
		s.submitErr = err
		return nil
	}

	submit := s.submitCmd(sub)
	if !s.tips.Enabled() {
		return submit
	}
	s.tipsLoading = true
	return tea.Batch(submit, s.tipsCmd())
}

func (s *TriageWizardScreen) submitCmd(sub triage.Submission) tea.Cmd {
	gateway := s.gateway
	return func() tea.Msg {
		if gateway == nil {
			return submitResultMsg{Err: errors.New("storage unavailable")}
		}
		return submitResultMsg{Err: gateway.Submit(context.Background(), sub)}
	}
}

func (s *TriageWizardScreen) tipsCmd() tea.Cmd {
	tips := s.tips
	res := *s.wiz.Result()
	input := orientation.TipsInput{
		Result:  res,
		Role:    s.wiz.Info().Role,
		Sector:  s.wiz.Info().Sector,
		Age:     s.wiz.Info().Age,
		Answers: s.wiz.Answers(),
	}
	return func() tea.Msg {
		out, err := tips.Generate(context.Background(), input)
		return tipsReadyMsg{Tips: out, Err: err}
	}
}

func (s *TriageWizardScreen) updateResult(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		s.restart()
		return s, s.form.Init()
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// restart clears everything, including the one-attempt guard, so a new
// triage gets its own submission.
func (s *TriageWizardScreen) restart() {
	s.wiz.Restart()
	s.form = newInfoForm()
	s.formErr = ""
	s.stepErr = ""
	s.submitted = false
	s.submitDone = false
	s.submitErr = nil
	s.tipsLoading = false
	s.tipsResult = nil
	s.tipsErr = nil
}
