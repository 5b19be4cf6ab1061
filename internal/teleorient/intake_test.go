package teleorient

import (
	"errors"
	"testing"
)

func completeIntake(t *testing.T) *Intake {
	t.Helper()
	in := NewIntake()
	if err := in.SubmitAnamnesis(Anamnesis{
		ChiefComplaint: "Throbbing tooth pain",
		Duration:       "3 days",
	}); err != nil {
		t.Fatalf("anamnesis: %v", err)
	}
	if err := in.SubmitSymptoms(Symptoms{
		Selected: []string{"Tooth pain", "Insomnia"},
	}); err != nil {
		t.Fatalf("symptoms: %v", err)
	}
	if err := in.SubmitReferral(Referral{
		Specialty: SpecialtyDentistry,
		Urgency:   UrgencyPriority,
		Notes:     "Pain worsens at night.",
	}); err != nil {
		t.Fatalf("referral: %v", err)
	}
	return in
}

func TestIntakeHappyPath(t *testing.T) {
	in := completeIntake(t)

	if !in.Done() {
		t.Fatal("intake not done after three submissions")
	}
	if in.Anamnesis().ChiefComplaint != "Throbbing tooth pain" {
		t.Errorf("anamnesis = %+v", in.Anamnesis())
	}
	if in.Referral().Specialty != SpecialtyDentistry {
		t.Errorf("referral = %+v", in.Referral())
	}
}

func TestIntakeStepGating(t *testing.T) {
	in := NewIntake()

	if err := in.SubmitSymptoms(Symptoms{Selected: []string{"Fever"}}); err == nil {
		t.Error("symptoms accepted before anamnesis")
	}
	if err := in.SubmitReferral(Referral{Specialty: SpecialtyPsychology, Urgency: UrgencyScheduled}); err == nil {
		t.Error("referral accepted before symptoms")
	}
}

func TestAnamnesisValidation(t *testing.T) {
	tests := []struct {
		name string
		a    Anamnesis
		want error
	}{
		{"missing complaint", Anamnesis{Duration: "1 week"}, ErrComplaintRequired},
		{"blank duration", Anamnesis{ChiefComplaint: "Back pain", Duration: "  "}, ErrDurationRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewIntake()
			err := in.SubmitAnamnesis(tt.a)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if in.Step() != StepAnamnesis {
				t.Error("intake advanced on invalid anamnesis")
			}
		})
	}
}

func TestSymptomsValidation(t *testing.T) {
	in := NewIntake()
	if err := in.SubmitAnamnesis(Anamnesis{ChiefComplaint: "c", Duration: "d"}); err != nil {
		t.Fatalf("anamnesis: %v", err)
	}

	if err := in.SubmitSymptoms(Symptoms{}); !errors.Is(err, ErrNoSymptoms) {
		t.Errorf("empty symptoms err = %v, want ErrNoSymptoms", err)
	}
	if err := in.SubmitSymptoms(Symptoms{Selected: []string{"Vertigo"}}); err == nil {
		t.Error("unknown symptom accepted")
	}

	// Free text alone is enough.
	if err := in.SubmitSymptoms(Symptoms{Other: "tingling hands"}); err != nil {
		t.Errorf("free-text symptom rejected: %v", err)
	}
}

func TestReferralValidation(t *testing.T) {
	newAtReferral := func(t *testing.T) *Intake {
		in := NewIntake()
		if err := in.SubmitAnamnesis(Anamnesis{ChiefComplaint: "c", Duration: "d"}); err != nil {
			t.Fatalf("anamnesis: %v", err)
		}
		if err := in.SubmitSymptoms(Symptoms{Selected: []string{"Fatigue"}}); err != nil {
			t.Fatalf("symptoms: %v", err)
		}
		return in
	}

	in := newAtReferral(t)
	if err := in.SubmitReferral(Referral{Urgency: UrgencyScheduled}); !errors.Is(err, ErrSpecialtyRequired) {
		t.Errorf("missing specialty err = %v", err)
	}
	if err := in.SubmitReferral(Referral{Specialty: SpecialtyPsychology}); !errors.Is(err, ErrUrgencyRequired) {
		t.Errorf("missing urgency err = %v", err)
	}
	if err := in.SubmitReferral(Referral{Specialty: "surgery", Urgency: UrgencyScheduled}); err == nil {
		t.Error("unknown specialty accepted")
	}
}

func TestBackKeepsData(t *testing.T) {
	in := NewIntake()
	if err := in.SubmitAnamnesis(Anamnesis{ChiefComplaint: "c", Duration: "d"}); err != nil {
		t.Fatalf("anamnesis: %v", err)
	}

	in.Back()
	if in.Step() != StepAnamnesis {
		t.Fatalf("step after Back = %v", in.Step())
	}
	if in.Anamnesis().ChiefComplaint != "c" {
		t.Error("anamnesis lost on Back")
	}

	// Back on the first step is a no-op.
	in.Back()
	if in.Step() != StepAnamnesis {
		t.Error("Back on first step moved")
	}
}
