package teleorient

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Specialty is the professional a teleorientation session is routed to.
type Specialty string

const (
	SpecialtyGeneralPractice Specialty = "general-practice"
	SpecialtyPsychology      Specialty = "psychology"
	SpecialtyDentistry       Specialty = "dentistry"
	SpecialtyPhysiotherapy   Specialty = "physiotherapy"
)

// Specialties returns all specialties in display order.
func Specialties() []Specialty {
	return []Specialty{
		SpecialtyGeneralPractice,
		SpecialtyPsychology,
		SpecialtyDentistry,
		SpecialtyPhysiotherapy,
	}
}

// Display returns a human-readable name for a specialty.
func (s Specialty) Display() string {
	switch s {
	case SpecialtyGeneralPractice:
		return "General Practice"
	case SpecialtyPsychology:
		return "Psychology"
	case SpecialtyDentistry:
		return "Dentistry"
	case SpecialtyPhysiotherapy:
		return "Physiotherapy"
	default:
		return string(s)
	}
}

// Urgency grades how soon the session should happen.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyPriority  Urgency = "priority"
	UrgencyScheduled Urgency = "scheduled"
)

// Urgencies returns all urgency grades in display order.
func Urgencies() []Urgency {
	return []Urgency{UrgencyImmediate, UrgencyPriority, UrgencyScheduled}
}

// Display returns a human-readable name for an urgency grade.
func (u Urgency) Display() string {
	switch u {
	case UrgencyImmediate:
		return "Immediate"
	case UrgencyPriority:
		return "Priority"
	case UrgencyScheduled:
		return "Scheduled"
	default:
		return string(u)
	}
}

// SymptomOptions is the fixed checklist offered on the symptoms step.
func SymptomOptions() []string {
	return []string{
		"Fever",
		"Cough",
		"Headache",
		"Tooth pain",
		"Gum bleeding",
		"Anxiety",
		"Insomnia",
		"Fatigue",
	}
}

// Step is one of the three intake forms.
type Step int

const (
	StepAnamnesis Step = iota
	StepSymptoms
	StepReferral
	StepDone
)

// Anamnesis captures the complaint history.
type Anamnesis struct {
	ChiefComplaint string
	Duration       string
	PriorTreatment string // free text, may be empty
}

// Symptoms captures the checklist plus free-text extras.
type Symptoms struct {
	Selected []string
	Other    string
}

// Referral captures where the session should be routed.
type Referral struct {
	Specialty Specialty
	Urgency   Urgency
	Notes     string
}

// Validation errors.
var (
	ErrComplaintRequired = errors.New("chief complaint is required")
	ErrDurationRequired  = errors.New("symptom duration is required")
	ErrNoSymptoms        = errors.New("select at least one symptom or describe one")
	ErrSpecialtyRequired = errors.New("specialty is required")
	ErrUrgencyRequired   = errors.New("urgency is required")
)

// Intake walks an employee through the three teleorientation forms.
// All state is local to the session; nothing is persisted.
type Intake struct {
	step      Step
	anamnesis Anamnesis
	symptoms  Symptoms
	referral  Referral
}

// NewIntake starts an intake at the anamnesis step.
func NewIntake() *Intake {
	return &Intake{step: StepAnamnesis}
}

// Step returns the current form.
func (i *Intake) Step() Step { return i.step }

// Anamnesis returns the recorded anamnesis.
func (i *Intake) Anamnesis() Anamnesis { return i.anamnesis }

// Symptoms returns the recorded symptoms.
func (i *Intake) Symptoms() Symptoms { return i.symptoms }

// Referral returns the recorded referral.
func (i *Intake) Referral() Referral { return i.referral }

// SubmitAnamnesis validates and stores the first form, then advances.
func (i *Intake) SubmitAnamnesis(a Anamnesis) error {
	if i.step != StepAnamnesis {
		return fmt.Errorf("anamnesis already submitted")
	}
	if strings.TrimSpace(a.ChiefComplaint) == "" {
		return ErrComplaintRequired
	}
	if strings.TrimSpace(a.Duration) == "" {
		return ErrDurationRequired
	}
	i.anamnesis = a
	i.step = StepSymptoms
	return nil
}

// SubmitSymptoms validates and stores the second form, then advances.
// At least one checklist symptom or a free-text description is required.
func (i *Intake) SubmitSymptoms(s Symptoms) error {
	if i.step != StepSymptoms {
		return fmt.Errorf("not on the symptoms step")
	}
	if len(s.Selected) == 0 && strings.TrimSpace(s.Other) == "" {
		return ErrNoSymptoms
	}
	for _, sym := range s.Selected {
		if !slices.Contains(SymptomOptions(), sym) {
			return fmt.Errorf("unknown symptom %q", sym)
		}
	}
	i.symptoms = s
	i.step = StepReferral
	return nil
}

// SubmitReferral validates and stores the final form, completing the intake.
func (i *Intake) SubmitReferral(r Referral) error {
	if i.step != StepReferral {
		return fmt.Errorf("not on the referral step")
	}
	if r.Specialty == "" {
		return ErrSpecialtyRequired
	}
	if !slices.Contains(Specialties(), r.Specialty) {
		return fmt.Errorf("unknown specialty %q", r.Specialty)
	}
	if r.Urgency == "" {
		return ErrUrgencyRequired
	}
	if !slices.Contains(Urgencies(), r.Urgency) {
		return fmt.Errorf("unknown urgency %q", r.Urgency)
	}
	i.referral = r
	i.step = StepDone
	return nil
}

// Back steps to the previous form, keeping entered data. No-op on the
// first form or after completion.
func (i *Intake) Back() {
	switch i.step {
	case StepSymptoms:
		i.step = StepAnamnesis
	case StepReferral:
		i.step = StepSymptoms
	}
}

// Done reports whether all three forms were submitted.
func (i *Intake) Done() bool { return i.step == StepDone }
