package triage

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinsaude/clin/internal/questionbank"
)

// Stage is the wizard's current phase.
type Stage int

const (
	StageInfo     Stage = iota // Collecting personal info
	StageQuestion              // Answering question at Index()
	StageResult                // Showing the computed result
)

// Errors returned by wizard transitions.
var (
	ErrUnanswered    = errors.New("current question has no answer")
	ErrUnknownOption = errors.New("option is not valid for the current question")
	ErrNotComplete   = errors.New("triage is not complete")
	ErrWrongStage    = errors.New("operation not valid in the current stage")
)

// Wizard drives one triage session through its three stages:
// personal info, the fixed question sequence, and the result.
// It is a plain state machine with no I/O; the UI layer renders it
// and the gateway persists its submission.
type Wizard struct {
	questions []questionbank.Question
	stage     Stage
	index     int
	info      PersonalInfo
	answers   AnswerSet
	result    *Result
}

// NewWizard returns a wizard at the personal-info stage with empty state.
func NewWizard() *Wizard {
	return &Wizard{
		questions: questionbank.All(),
		stage:     StageInfo,
		answers:   AnswerSet{},
	}
}

// Stage returns the current stage.
func (w *Wizard) Stage() Stage { return w.stage }

// Index returns the current question index. Meaningful only in StageQuestion.
func (w *Wizard) Index() int { return w.index }

// Count returns the total number of questions.
func (w *Wizard) Count() int { return len(w.questions) }

// Question returns the current question. Meaningful only in StageQuestion.
func (w *Wizard) Question() questionbank.Question {
	return w.questions[w.index]
}

// Info returns the collected personal info.
func (w *Wizard) Info() PersonalInfo { return w.info }

// Answer returns the recorded answer for the current question.
func (w *Wizard) Answer() (string, bool) {
	label, ok := w.answers[w.questions[w.index].ID]
	return label, ok
}

// Answers returns a copy of all recorded answers.
func (w *Wizard) Answers() AnswerSet { return w.answers.Clone() }

// Progress returns how many questions have been answered so far.
func (w *Wizard) Progress() int { return len(w.answers) }

// Result returns the computed result, or nil before completion.
func (w *Wizard) Result() *Result { return w.result }

// SubmitInfo validates and stores the personal info, then advances to
// the first question. On validation failure the wizard does not move.
func (w *Wizard) SubmitInfo(info PersonalInfo) error {
	if w.stage != StageInfo {
		return ErrWrongStage
	}
	if err := info.Validate(); err != nil {
		return err
	}
	w.info = info
	w.stage = StageQuestion
	w.index = 0
	return nil
}

// Select records the option for the current question, overwriting any
// previous choice. The label must be one of the question's options.
func (w *Wizard) Select(label string) error {
	if w.stage != StageQuestion {
		return ErrWrongStage
	}
	q := w.questions[w.index]
	if !q.HasOption(label) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, label)
	}
	w.answers[q.ID] = label
	return nil
}

// Next advances to the following question. The current question must be
// answered first. Advancing past the last question computes the result,
// enters StageResult and reports completion.
func (w *Wizard) Next() (completed bool, err error) {
	if w.stage != StageQuestion {
		return false, ErrWrongStage
	}
	if _, ok := w.answers[w.questions[w.index].ID]; !ok {
		return false, ErrUnanswered
	}
	if w.index < len(w.questions)-1 {
		w.index++
		return false, nil
	}

	res := Evaluate(w.answers)
	w.result = &res
	w.stage = StageResult
	return true, nil
}

// Previous steps back one question, keeping recorded answers. From the
// first question it returns to the personal-info stage and clears the
// collected info. In other stages it is a no-op.
func (w *Wizard) Previous() {
	if w.stage != StageQuestion {
		return
	}
	if w.index > 0 {
		w.index--
		return
	}
	w.info = PersonalInfo{}
	w.stage = StageInfo
}

// Restart clears all state and returns to the personal-info stage.
func (w *Wizard) Restart() {
	w.info = PersonalInfo{}
	w.answers = AnswerSet{}
	w.result = nil
	w.index = 0
	w.stage = StageInfo
}

// BuildSubmission assembles the persistence record for a completed triage.
// userID may be empty for anonymous submissions. A fresh submission ID is
// assigned on every call.
func (w *Wizard) BuildSubmission(userID string) (Submission, error) {
	if w.stage != StageResult || w.result == nil {
		return Submission{}, ErrNotComplete
	}
	return Submission{
		SubmissionID: uuid.NewString(),
		UserID:       userID,
		Name:         w.info.Name,
		Phone:        w.info.Phone,
		Email:        w.info.Email,
		Role:         w.info.Role,
		Age:          w.info.Age,
		Sector:       w.info.Sector,
		Answers:      w.answers.Clone(),
		Score:        w.result.Score,
		Level:        w.result.Level,
		Suggestion:   w.result.Suggestion,
	}, nil
}
