package triage

import "github.com/clinsaude/clin/internal/questionbank"

// Classification thresholds over the 0..18 score range.
const (
	mediumThreshold = 5
	highThreshold   = 10
)

// Care suggestions shown with each risk level.
const (
	suggestionHigh   = "Priority scheduling with a mental health and/or oral health specialist."
	suggestionMedium = "We recommend a teleorientation session with a health professional."
	suggestionLow    = "Keep up routine monitoring and follow the wellness tips."
)

// Score sums the weights of the selected options across the question bank.
// Unanswered questions and option labels without a weight contribute zero,
// so a partial or empty answer set still scores cleanly.
func Score(answers AnswerSet) int {
	total := 0
	for _, q := range questionbank.All() {
		label, ok := answers[q.ID]
		if !ok {
			continue
		}
		total += q.Scores[label]
	}
	return total
}

// Classify maps a score to its risk level and care suggestion.
func Classify(score int) Result {
	switch {
	case score >= highThreshold:
		return Result{Score: score, Level: LevelHigh, Suggestion: suggestionHigh}
	case score >= mediumThreshold:
		return Result{Score: score, Level: LevelMedium, Suggestion: suggestionMedium}
	default:
		return Result{Score: score, Level: LevelLow, Suggestion: suggestionLow}
	}
}

// Evaluate scores and classifies an answer set in one step.
func Evaluate(answers AnswerSet) Result {
	return Classify(Score(answers))
}
