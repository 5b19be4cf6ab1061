package orientation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clinsaude/clin/internal/questionbank"
	"github.com/clinsaude/clin/internal/triage"
)

// TipsInput describes a completed triage for tip generation.
type TipsInput struct {
	Result  triage.Result
	Role    string
	Sector  triage.Sector
	Age     int
	Answers triage.AnswerSet
}

// Tips is the generated wellness guidance shown on the result screen.
type Tips struct {
	Summary string
	Tips    []string
}

// TipsService generates personalized wellness tips for a completed
// triage. Generation is best-effort: the result screen shows the static
// care suggestion either way, and a nil provider disables the feature.
type TipsService struct {
	provider  Provider
	maxTokens int
}

// NewTipsService creates a tips service. provider may be nil.
func NewTipsService(provider Provider) *TipsService {
	return &TipsService{provider: provider, maxTokens: 600}
}

// Enabled reports whether a provider is configured.
func (s *TipsService) Enabled() bool {
	return s != nil && s.provider != nil
}

const tipsSystemPrompt = `You are an occupational health assistant for a
Brazilian company's employee wellness program. You write short, practical
wellness tips for employees who just completed a psychosocial and oral
health screening. Be warm and concrete. Never diagnose, prescribe, or
alarm; for high-risk cases defer to the care suggestion the employee
already received. Answer in English.`

// TipsSchema constrains the tip generation output.
var TipsSchema = &Schema{
	Name:        "wellness-tips",
	Description: "A one-line summary and exactly three short wellness tips",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One supportive sentence reflecting the screening outcome",
			},
			"tips": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type":        "string",
					"description": "A short actionable wellness tip",
				},
			},
		},
		"required":             []string{"summary", "tips"},
		"additionalProperties": false,
	},
}

type tipsOutput struct {
	Summary string   `json:"summary"`
	Tips    []string `json:"tips"`
}

// Generate requests tips for the given triage outcome. It blocks until
// the provider responds; callers run it from an async command.
func (s *TipsService) Generate(ctx context.Context, input TipsInput) (*Tips, error) {
	if !s.Enabled() {
		return nil, &ErrProviderUnavailable{}
	}

	ctx = WithPurpose(ctx, "wellness-tips")

	req := Request{
		System: tipsSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: buildTipsUserMessage(input)},
		},
		Schema:      TipsSchema,
		MaxTokens:   s.maxTokens,
		Temperature: 0.4,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tips generation: %w", err)
	}

	var out tipsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse tips response: %w", err)
	}

	return &Tips{Summary: out.Summary, Tips: out.Tips}, nil
}

// buildTipsUserMessage renders the triage outcome as prompt context.
// Only flagged answers are listed; clean answers add nothing useful.
func buildTipsUserMessage(input TipsInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Screening result: %s (score %d of %d).\n",
		input.Result.Level.Display(), input.Result.Score, questionbank.MaxTotalScore())
	if input.Role != "" {
		fmt.Fprintf(&b, "Job function: %s. Sector: %s. Age: %d.\n",
			input.Role, input.Sector.Display(), input.Age)
	}

	flagged := flaggedAnswers(input.Answers)
	if len(flagged) > 0 {
		b.WriteString("Answers that raised the score:\n")
		for _, f := range flagged {
			b.WriteString("- " + f + "\n")
		}
	}

	b.WriteString("\nWrite a one-line summary and exactly three wellness tips for this employee.")
	return b.String()
}

// flaggedAnswers lists answers with a positive weight, in bank order.
func flaggedAnswers(answers triage.AnswerSet) []string {
	var out []string
	for _, q := range questionbank.All() {
		label, ok := answers[q.ID]
		if !ok || q.Scores[label] == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s): answered %q",
			q.Prompt, questionbank.CategoryDisplayName(q.Category), label))
	}
	return out
}
