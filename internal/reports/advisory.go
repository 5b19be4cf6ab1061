package reports

// Static advisory content for the Risk Analysis and Prevention tabs.
// These are curated occupational-health guidelines, not computed data,
// and they render the same regardless of the stored triages.

// RiskFactor is a common psychosocial or oral risk factor with its
// typical prevalence among screened employees.
type RiskFactor struct {
	Name       string
	Prevalence int // percent of screened employees reporting it
}

// Priority grades a prevention action.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PreventionAction is a recommended workplace intervention.
type PreventionAction struct {
	Title       string
	Description string
	Priority    Priority
}

// RiskFactors returns the curated risk factor list, highest prevalence first.
func RiskFactors() []RiskFactor {
	return []RiskFactor{
		{Name: "Work-related stress", Prevalence: 68},
		{Name: "Sleep disturbance", Prevalence: 54},
		{Name: "Postponed dental care", Prevalence: 47},
		{Name: "Low motivation", Prevalence: 38},
		{Name: "Persistent tooth or gum pain", Prevalence: 29},
	}
}

// PreventionActions returns the recommended interventions.
func PreventionActions() []PreventionAction {
	return []PreventionAction{
		{
			Title:       "Stress management workshops",
			Description: "Monthly group sessions on workload pacing and recovery habits.",
			Priority:    PriorityHigh,
		},
		{
			Title:       "On-site dental screening days",
			Description: "Quarterly visits from a dental team to catch postponed care early.",
			Priority:    PriorityHigh,
		},
		{
			Title:       "Sleep hygiene campaign",
			Description: "Shift-aware guidance on winding down and caffeine cutoffs.",
			Priority:    PriorityMedium,
		},
		{
			Title:       "Manager check-in training",
			Description: "Teach supervisors to spot early signs of burnout in 1:1s.",
			Priority:    PriorityMedium,
		},
		{
			Title:       "Wellness communication refresh",
			Description: "Keep teleorientation and benefit channels visible on the floor.",
			Priority:    PriorityLow,
		},
	}
}
