package questionbank

import (
	"fmt"
	"strings"
)

// validateQuestions performs structural checks on the given question set.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	idSet := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			errs = append(errs, "question with empty ID")
		}
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if q.Prompt == "" {
			errs = append(errs, fmt.Sprintf("question %q has an empty prompt", q.ID))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q needs at least two options, got %d", q.ID, len(q.Options)))
		}

		optSet := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if optSet[opt] {
				errs = append(errs, fmt.Sprintf("question %q has duplicate option %q", q.ID, opt))
			}
			optSet[opt] = true
		}

		// Every scored label must be a real option, weights must be
		// non-negative, and the scale must span from a zero-weight option
		// up to the question's maximum.
		hasZero, hasMax := false, false
		for label, w := range q.Scores {
			if !optSet[label] {
				errs = append(errs, fmt.Sprintf("question %q scores unknown option %q", q.ID, label))
			}
			if w < 0 {
				errs = append(errs, fmt.Sprintf("question %q option %q has negative weight %d", q.ID, label, w))
			}
			if w == 0 {
				hasZero = true
			}
			if w == q.MaxScore() && w > 0 {
				hasMax = true
			}
		}
		if !hasZero {
			errs = append(errs, fmt.Sprintf("question %q has no zero-weight option", q.ID))
		}
		if !hasMax {
			errs = append(errs, fmt.Sprintf("question %q has no positive maximum-weight option", q.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
