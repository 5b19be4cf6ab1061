package teleorientation

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/clinsaude/clin/internal/teleorient"
)

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func tabKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab}
}

func shiftTabKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
}

func TestEmptyAnamnesisRejected(t *testing.T) {
	s := New()

	// Jump to the last field and submit with everything empty.
	s.Update(tabKey())
	s.Update(tabKey())
	s.Update(enterKey())

	if s.intake.Step() != teleorient.StepAnamnesis {
		t.Fatalf("expected to stay on anamnesis, got step %v", s.intake.Step())
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestFullIntakeFlow(t *testing.T) {
	s := New()

	// Anamnesis.
	s.complaint.Model.SetValue("Persistent headaches in the afternoon")
	s.duration.Model.SetValue("Two weeks")
	s.Update(tabKey())
	s.Update(tabKey())
	s.Update(enterKey())
	if s.intake.Step() != teleorient.StepSymptoms {
		t.Fatalf("expected symptoms step, err=%q", s.errMsg)
	}

	// Symptoms: toggle the first checklist entry, then submit.
	s.Update(enterKey()) // toggles "Fever"
	s.Update(tabKey())
	s.Update(enterKey())
	if s.intake.Step() != teleorient.StepReferral {
		t.Fatalf("expected referral step, err=%q", s.errMsg)
	}

	// Referral: choose specialty and urgency, submit from notes.
	s.Update(enterKey()) // chooses General Practice
	s.Update(tabKey())
	s.Update(enterKey()) // chooses Immediate
	s.Update(tabKey())
	s.Update(enterKey())
	if !s.intake.Done() {
		t.Fatalf("expected intake done, err=%q", s.errMsg)
	}

	view := s.View(80, 24)
	for _, want := range []string{
		"Persistent headaches",
		"Two weeks",
		"Fever",
		"General Practice",
		"Immediate",
		"Nothing was stored",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("summary should contain %q", want)
		}
	}
}

func TestBackKeepsEnteredData(t *testing.T) {
	s := New()

	s.complaint.Model.SetValue("Tooth pain")
	s.duration.Model.SetValue("Three days")
	s.Update(tabKey())
	s.Update(tabKey())
	s.Update(enterKey())
	if s.intake.Step() != teleorient.StepSymptoms {
		t.Fatalf("expected symptoms step, err=%q", s.errMsg)
	}

	// Shift+tab from the first field steps back a form.
	s.Update(shiftTabKey())
	if s.intake.Step() != teleorient.StepAnamnesis {
		t.Fatalf("expected anamnesis step, got %v", s.intake.Step())
	}
	if s.intake.Anamnesis().ChiefComplaint != "Tooth pain" {
		t.Error("backing up should keep the recorded anamnesis")
	}
	if s.complaint.Value() != "Tooth pain" {
		t.Error("form fields should keep their values")
	}
}

func TestSymptomsRequireAtLeastOne(t *testing.T) {
	s := New()

	s.complaint.Model.SetValue("Feeling worn out")
	s.duration.Model.SetValue("A month")
	s.Update(tabKey())
	s.Update(tabKey())
	s.Update(enterKey())

	// Submit symptoms with nothing checked and no free text.
	s.Update(tabKey())
	s.Update(enterKey())
	if s.intake.Step() != teleorient.StepSymptoms {
		t.Fatal("empty symptoms should not advance")
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}

	// Free text alone is enough.
	s.other.Model.SetValue("General exhaustion")
	s.Update(enterKey())
	if s.intake.Step() != teleorient.StepReferral {
		t.Fatalf("free-text symptom should advance, err=%q", s.errMsg)
	}
}
