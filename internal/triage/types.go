package triage

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// Sector is the company sector an employee belongs to.
type Sector string

const (
	SectorAdministrative Sector = "administrative"
	SectorOperational    Sector = "operational"
	SectorProduction     Sector = "production"
	SectorSales          Sector = "sales"
	SectorOther          Sector = "other"
)

// Sectors returns all sectors in display order.
func Sectors() []Sector {
	return []Sector{
		SectorAdministrative,
		SectorOperational,
		SectorProduction,
		SectorSales,
		SectorOther,
	}
}

// Display returns a human-readable name for a sector.
func (s Sector) Display() string {
	switch s {
	case SectorAdministrative:
		return "Administrative"
	case SectorOperational:
		return "Operational"
	case SectorProduction:
		return "Production"
	case SectorSales:
		return "Sales"
	case SectorOther:
		return "Other"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known sector.
func (s Sector) Valid() bool {
	switch s {
	case SectorAdministrative, SectorOperational, SectorProduction, SectorSales, SectorOther:
		return true
	}
	return false
}

// RiskLevel classifies a triage score.
type RiskLevel string

const (
	LevelLow    RiskLevel = "low"
	LevelMedium RiskLevel = "medium"
	LevelHigh   RiskLevel = "high"
)

// Display returns a human-readable label for a risk level.
func (l RiskLevel) Display() string {
	switch l {
	case LevelLow:
		return "Low Risk"
	case LevelMedium:
		return "Medium Risk"
	case LevelHigh:
		return "High Risk"
	default:
		return string(l)
	}
}

// Rank orders levels by severity: low < medium < high.
func (l RiskLevel) Rank() int {
	switch l {
	case LevelLow:
		return 0
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	default:
		return -1
	}
}

// AnswerSet maps a question ID to the selected option label.
// Unanswered questions are simply absent.
type AnswerSet map[string]string

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	if a == nil {
		return AnswerSet{}
	}
	return maps.Clone(a)
}

// PersonalInfo identifies the employee taking the triage.
type PersonalInfo struct {
	Name   string
	Phone  string
	Email  string
	Role   string
	Age    int
	Sector Sector
}

// Validation errors returned by PersonalInfo.Validate.
var (
	ErrMissingField  = errors.New("required field is empty")
	ErrInvalidAge    = errors.New("age must be a positive number")
	ErrInvalidSector = errors.New("unknown sector")
)

// Validate checks that every field is filled in and the age is positive.
// All problems are reported, joined into a single error.
func (p PersonalInfo) Validate() error {
	var errs []error

	required := []struct {
		label, value string
	}{
		{"name", p.Name},
		{"phone", p.Phone},
		{"email", p.Email},
		{"role", p.Role},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, f.label))
		}
	}
	if p.Age <= 0 {
		errs = append(errs, ErrInvalidAge)
	}
	if p.Sector == "" {
		errs = append(errs, fmt.Errorf("%w: sector", ErrMissingField))
	} else if !p.Sector.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidSector, p.Sector))
	}

	return errors.Join(errs...)
}

// Result is the outcome of a completed triage.
type Result struct {
	Score      int
	Level      RiskLevel
	Suggestion string
}

// Submission is the flattened record handed to the persistence gateway
// when a triage completes.
type Submission struct {
	SubmissionID string
	UserID       string // empty for anonymous
	Name         string
	Phone        string
	Email        string
	Role         string
	Age          int
	Sector       Sector
	Answers      AnswerSet
	Score        int
	Level        RiskLevel
	Suggestion   string
}
