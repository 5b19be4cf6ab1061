package triagewizard

import (
	tea "charm.land/bubbletea/v2"

	"github.com/clinsaude/clin/internal/triage"
	"github.com/clinsaude/clin/internal/ui/components"
)

// Field indexes for the personal-info form.
const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldRole
	fieldAge
	fieldSector
	fieldCount
)

// infoForm collects the employee's personal info before the questions.
type infoForm struct {
	name  components.TextInput
	phone components.TextInput
	email components.TextInput
	role  components.TextInput

	age    components.TextInput
	sector components.RadioGroup

	focus int
}

func newInfoForm() infoForm {
	sectors := triage.Sectors()
	labels := make([]string, len(sectors))
	for i, s := range sectors {
		labels[i] = s.Display()
	}

	return infoForm{
		name:   components.NewTextInput("Full name", false, 60),
		phone:  components.NewTextInput("Phone", false, 20),
		email:  components.NewTextInput("Email", false, 60),
		role:   components.NewTextInput("Job function", false, 40),
		age:    components.NewTextInput("Age", true, 3),
		sector: components.NewRadioGroup("", labels),
	}
}

func (f infoForm) Init() tea.Cmd {
	return f.name.Init()
}

// submitRequestedMsg signals that the form wants to be validated.
type submitRequestedMsg struct{}

// Update routes keys to the focused field. Enter advances through the
// fields; on the sector field it confirms the choice and requests submit.
func (f infoForm) Update(msg tea.Msg) (infoForm, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab", "enter", "down":
			if f.focus == fieldSector {
				if kmsg.String() == "down" {
					break // radio handles its own cursor
				}
				if kmsg.String() == "enter" {
					f.sector.Chosen = f.sector.Cursor
					return f, func() tea.Msg { return submitRequestedMsg{} }
				}
			}
			if f.focus < fieldSector {
				f.focus++
				return f, nil
			}
		case "shift+tab", "up":
			if f.focus == fieldSector && kmsg.String() == "up" && f.sector.Cursor > 0 {
				break // radio handles its own cursor
			}
			if f.focus > 0 {
				f.focus--
				return f, nil
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldPhone:
		f.phone, cmd = f.phone.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldRole:
		f.role, cmd = f.role.Update(msg)
	case fieldAge:
		f.age, cmd = f.age.Update(msg)
	case fieldSector:
		f.sector, cmd = f.sector.Update(msg)
	}
	return f, cmd
}

// Info assembles the entered values. Invalid age parses to zero, which
// the wizard's validation rejects with a clear message.
func (f infoForm) Info() triage.PersonalInfo {
	age, err := f.age.NumericValue()
	if err != nil {
		age = 0
	}

	var sector triage.Sector
	if idx := f.sector.Chosen; idx >= 0 && idx < len(triage.Sectors()) {
		sector = triage.Sectors()[idx]
	}

	return triage.PersonalInfo{
		Name:   f.name.Value(),
		Phone:  f.phone.Value(),
		Email:  f.email.Value(),
		Role:   f.role.Value(),
		Age:    age,
		Sector: sector,
	}
}
