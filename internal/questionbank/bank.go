package questionbank

import "slices"

// Standard answer scales. The motivation question (q3) inverts the frequency
// weights: answering "Never" to a positive prompt signals risk.
var (
	frequencyOptions = []string{"Always", "Often", "Rarely", "Never"}
	yesNoOptions     = []string{"Yes", "No"}

	frequencyScores = map[string]int{"Always": 3, "Often": 2, "Rarely": 1, "Never": 0}
	invertedScores  = map[string]int{"Always": 0, "Often": 1, "Rarely": 2, "Never": 3}
	yesNoScores     = map[string]int{"Yes": 3, "No": 0}
)

// bank is the fixed screening questionnaire, in presentation order.
var bank = []Question{
	{
		ID:       "q1",
		Prompt:   "Have you been feeling anxious or stressed at work?",
		Category: CategoryMental,
		Options:  frequencyOptions,
		Scores:   frequencyScores,
	},
	{
		ID:       "q2",
		Prompt:   "Have you had trouble sleeping because of work concerns?",
		Category: CategoryMental,
		Options:  frequencyOptions,
		Scores:   frequencyScores,
	},
	{
		ID:       "q3",
		Prompt:   "Do you feel motivated when starting your workday?",
		Category: CategoryMental,
		Options:  frequencyOptions,
		Scores:   invertedScores,
	},
	{
		ID:       "q4",
		Prompt:   "Have you felt persistent tooth or gum pain?",
		Category: CategoryOral,
		Options:  yesNoOptions,
		Scores:   yesNoScores,
	},
	{
		ID:       "q5",
		Prompt:   "Have you noticed frequent gum bleeding?",
		Category: CategoryOral,
		Options:  yesNoOptions,
		Scores:   yesNoScores,
	},
	{
		ID:       "q6",
		Prompt:   "Have you put off seeing a dentist even when in discomfort?",
		Category: CategoryOral,
		Options:  yesNoOptions,
		Scores:   yesNoScores,
	},
}

// All returns the questions in presentation order.
func All() []Question {
	return slices.Clone(bank)
}

// Get returns the question with the given ID.
func Get(id string) (Question, bool) {
	for _, q := range bank {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Count returns the number of questions in the bank.
func Count() int {
	return len(bank)
}

// MaxTotalScore returns the highest achievable total across the bank.
func MaxTotalScore() int {
	total := 0
	for _, q := range bank {
		total += q.MaxScore()
	}
	return total
}
