package questionbank

// Category groups questions by the health dimension they probe.
type Category string

const (
	CategoryMental Category = "mental"
	CategoryOral   Category = "oral"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryMental, CategoryOral}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryMental:
		return "Mental Health"
	case CategoryOral:
		return "Oral Health"
	default:
		return string(c)
	}
}

// Question is a single fixed screening question. Options are ordered for
// display; Scores maps an option label to its risk weight. An option absent
// from Scores contributes zero.
type Question struct {
	ID       string
	Prompt   string
	Category Category
	Options  []string
	Scores   map[string]int
}

// MaxScore returns the highest weight among the question's options.
func (q Question) MaxScore() int {
	max := 0
	for _, w := range q.Scores {
		if w > max {
			max = w
		}
	}
	return max
}

// HasOption reports whether label is one of the question's options.
func (q Question) HasOption(label string) bool {
	for _, opt := range q.Options {
		if opt == label {
			return true
		}
	}
	return false
}
