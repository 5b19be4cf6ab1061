package teleorientation

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/router"
	"github.com/clinsaude/clin/internal/screen"
	"github.com/clinsaude/clin/internal/teleorient"
	"github.com/clinsaude/clin/internal/ui/components"
	"github.com/clinsaude/clin/internal/ui/layout"
	"github.com/clinsaude/clin/internal/ui/theme"
)

// TeleorientationScreen walks the three intake forms: anamnesis,
// symptoms, referral. Everything stays in memory; closing the screen
// discards it.
type TeleorientationScreen struct {
	intake *teleorient.Intake

	// Anamnesis step.
	complaint components.TextInput
	duration  components.TextInput
	prior     components.TextInput

	// Symptoms step.
	symptoms components.ToggleList
	other    components.TextInput

	// Referral step.
	specialty components.RadioGroup
	urgency   components.RadioGroup
	notes     components.TextInput

	// Done step.
	done components.Button

	focus  int
	errMsg string
}

var _ screen.Screen = (*TeleorientationScreen)(nil)
var _ screen.KeyHintProvider = (*TeleorientationScreen)(nil)

// New creates a TeleorientationScreen at the anamnesis step.
func New() *TeleorientationScreen {
	specialties := teleorient.Specialties()
	specialtyLabels := make([]string, len(specialties))
	for i, s := range specialties {
		specialtyLabels[i] = s.Display()
	}

	urgencies := teleorient.Urgencies()
	urgencyLabels := make([]string, len(urgencies))
	for i, u := range urgencies {
		urgencyLabels[i] = u.Display()
	}

	return &TeleorientationScreen{
		intake:    teleorient.NewIntake(),
		complaint: components.NewTextInput("What brings you in?", false, 120),
		duration:  components.NewTextInput("How long has this been going on?", false, 60),
		prior:     components.NewTextInput("Any prior treatment? (optional)", false, 120),
		symptoms:  components.NewToggleList(teleorient.SymptomOptions()),
		other:     components.NewTextInput("Other symptoms (optional)", false, 120),
		specialty: components.NewRadioGroup("", specialtyLabels),
		urgency:   components.NewRadioGroup("", urgencyLabels),
		notes:     components.NewTextInput("Notes for the professional (optional)", false, 120),
		done: components.NewButton("Return home", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (s *TeleorientationScreen) Init() tea.Cmd {
	return s.complaint.Init()
}

func (s *TeleorientationScreen) Title() string {
	return "Teleorientation"
}

func (s *TeleorientationScreen) KeyHints() []layout.KeyHint {
	if s.intake.Done() {
		return []layout.KeyHint{
			{Key: "R", Description: "New intake"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Cancel"},
	}
}

// fieldCount returns how many focusable fields the current step has.
func (s *TeleorientationScreen) fieldCount() int {
	switch s.intake.Step() {
	case teleorient.StepAnamnesis:
		return 3
	case teleorient.StepSymptoms:
		return 2
	case teleorient.StepReferral:
		return 3
	}
	return 0
}

func (s *TeleorientationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.intake.Done() {
		return s.updateDone(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			if s.focus < s.fieldCount()-1 {
				s.focus++
			}
			return s, nil
		case "shift+tab":
			if s.focus > 0 {
				s.focus--
				return s, nil
			}
			// Backing out of the first field returns to the previous
			// step, keeping what was entered.
			s.intake.Back()
			s.focus = 0
			s.errMsg = ""
			return s, nil
		case "enter":
			if s.onLastField() {
				return s, s.submitStep()
			}
			if !s.focusConsumesEnter() {
				s.focus++
				return s, nil
			}
		}
	}

	return s, s.routeToFocused(msg)
}

// onLastField reports whether focus sits on the step's final field.
func (s *TeleorientationScreen) onLastField() bool {
	return s.focus == s.fieldCount()-1
}

// focusConsumesEnter reports whether the focused component uses enter
// itself: the symptom checklist toggles with it and the referral radios
// choose with it.
func (s *TeleorientationScreen) focusConsumesEnter() bool {
	switch s.intake.Step() {
	case teleorient.StepSymptoms:
		return s.focus == 0
	case teleorient.StepReferral:
		return s.focus == 0 || s.focus == 1
	}
	return false
}

// routeToFocused forwards a message to the focused field of the step.
func (s *TeleorientationScreen) routeToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.intake.Step() {
	case teleorient.StepAnamnesis:
		switch s.focus {
		case 0:
			s.complaint, cmd = s.complaint.Update(msg)
		case 1:
			s.duration, cmd = s.duration.Update(msg)
		case 2:
			s.prior, cmd = s.prior.Update(msg)
		}
	case teleorient.StepSymptoms:
		switch s.focus {
		case 0:
			s.symptoms, cmd = s.symptoms.Update(msg)
		case 1:
			s.other, cmd = s.other.Update(msg)
		}
	case teleorient.StepReferral:
		switch s.focus {
		case 0:
			s.specialty, cmd = s.specialty.Update(msg)
		case 1:
			s.urgency, cmd = s.urgency.Update(msg)
		case 2:
			s.notes, cmd = s.notes.Update(msg)
		}
	}
	return cmd
}

// submitStep validates the current form and advances the intake.
func (s *TeleorientationScreen) submitStep() tea.Cmd {
	var err error
	switch s.intake.Step() {
	case teleorient.StepAnamnesis:
		err = s.intake.SubmitAnamnesis(teleorient.Anamnesis{
			ChiefComplaint: s.complaint.Value(),
			Duration:       s.duration.Value(),
			PriorTreatment: s.prior.Value(),
		})
	case teleorient.StepSymptoms:
		err = s.intake.SubmitSymptoms(teleorient.Symptoms{
			Selected: s.symptoms.Selected(),
			Other:    s.other.Value(),
		})
	case teleorient.StepReferral:
		ref := teleorient.Referral{Notes: s.notes.Value()}
		if idx := s.specialty.Chosen; idx >= 0 && idx < len(teleorient.Specialties()) {
			ref.Specialty = teleorient.Specialties()[idx]
		}
		if idx := s.urgency.Chosen; idx >= 0 && idx < len(teleorient.Urgencies()) {
			ref.Urgency = teleorient.Urgencies()[idx]
		}
		err = s.intake.SubmitReferral(ref)
	}

	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.focus = 0
	return nil
}

func (s *TeleorientationScreen) updateDone(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "r", "R":
		fresh := New()
		return fresh, fresh.Init()
	}

	var cmd tea.Cmd
	s.done, cmd = s.done.Update(msg)
	return s, cmd
}

func (s *TeleorientationScreen) View(width, height int) string {
	var body string
	switch s.intake.Step() {
	case teleorient.StepAnamnesis:
		body = s.viewAnamnesis()
	case teleorient.StepSymptoms:
		body = s.viewSymptoms()
	case teleorient.StepReferral:
		body = s.viewReferral()
	default:
		body = s.viewDone(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *TeleorientationScreen) stepHeader(title string) string {
	step := int(s.intake.Step()) + 1
	counter := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Step %d of 3", step))
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title)
	return counter + "\n" + name + "\n"
}

func (s *TeleorientationScreen) fieldLabel(label string, index int) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if index == s.focus {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(label)
}

func (s *TeleorientationScreen) footerError() string {
	if s.errMsg == "" {
		return ""
	}
	return "\n" + theme.Invalid.Render(s.errMsg)
}

func (s *TeleorientationScreen) viewAnamnesis() string {
	var b strings.Builder
	b.WriteString(s.stepHeader("Anamnesis"))
	b.WriteString("\n")
	b.WriteString(s.fieldLabel("Chief complaint", 0) + "\n" + s.complaint.View() + "\n\n")
	b.WriteString(s.fieldLabel("Duration", 1) + "\n" + s.duration.View() + "\n\n")
	b.WriteString(s.fieldLabel("Prior treatment", 2) + "\n" + s.prior.View())
	b.WriteString(s.footerError())
	return b.String()
}

func (s *TeleorientationScreen) viewSymptoms() string {
	var b strings.Builder
	b.WriteString(s.stepHeader("Symptoms"))
	b.WriteString("\n")
	b.WriteString(s.fieldLabel("Check everything that applies", 0) + "\n")
	b.WriteString(s.symptoms.View())
	b.WriteString("\n")
	b.WriteString(s.fieldLabel("Anything else?", 1) + "\n" + s.other.View())
	b.WriteString(s.footerError())
	return b.String()
}

func (s *TeleorientationScreen) viewReferral() string {
	var b strings.Builder
	b.WriteString(s.stepHeader("Referral"))
	b.WriteString("\n")
	b.WriteString(s.fieldLabel("Specialty", 0) + "\n")
	b.WriteString(s.specialty.View())
	b.WriteString("\n")
	b.WriteString(s.fieldLabel("Urgency", 1) + "\n")
	b.WriteString(s.urgency.View())
	b.WriteString("\n")
	b.WriteString(s.fieldLabel("Notes", 2) + "\n" + s.notes.View())
	b.WriteString(s.footerError())
	return b.String()
}

// viewDone summarizes the intake. Nothing is stored; the summary is the
// handoff to whoever schedules the session.
func (s *TeleorientationScreen) viewDone(width int) string {
	a := s.intake.Anamnesis()
	sym := s.intake.Symptoms()
	ref := s.intake.Referral()

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	symptomList := strings.Join(sym.Selected, ", ")
	if sym.Other != "" {
		if symptomList != "" {
			symptomList += ", "
		}
		symptomList += sym.Other
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Intake complete"))
	b.WriteString("\n\n")
	b.WriteString(label.Render("Complaint:  ") + value.Render(a.ChiefComplaint) + "\n")
	b.WriteString(label.Render("Duration:   ") + value.Render(a.Duration) + "\n")
	if a.PriorTreatment != "" {
		b.WriteString(label.Render("Treatment:  ") + value.Render(a.PriorTreatment) + "\n")
	}
	b.WriteString(label.Render("Symptoms:   ") + value.Render(symptomList) + "\n")
	b.WriteString(label.Render("Refer to:   ") + value.Render(ref.Specialty.Display()) + "\n")
	b.WriteString(label.Render("Urgency:    ") + value.Render(ref.Urgency.Display()) + "\n")
	if ref.Notes != "" {
		b.WriteString(label.Render("Notes:      ") + value.Render(ref.Notes) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(min(width-8, 64)).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Nothing was stored. Share this summary when scheduling the session."))
	b.WriteString("\n\n")
	b.WriteString(s.done.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("R starts a new intake"))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
