// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/clinsaude/clin/ent/llmrequestevent"
	"github.com/clinsaude/clin/ent/schema"
	"github.com/clinsaude/clin/ent/triageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	triageeventMixin := schema.TriageEvent{}.Mixin()
	triageeventMixinFields0 := triageeventMixin[0].Fields()
	_ = triageeventMixinFields0
	triageeventFields := schema.TriageEvent{}.Fields()
	_ = triageeventFields
	// triageeventDescTimestamp is the schema descriptor for timestamp field.
	triageeventDescTimestamp := triageeventMixinFields0[1].Descriptor()
	// triageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	triageevent.DefaultTimestamp = triageeventDescTimestamp.Default.(func() time.Time)
	// triageeventDescSubmissionID is the schema descriptor for submission_id field.
	triageeventDescSubmissionID := triageeventFields[0].Descriptor()
	// triageevent.SubmissionIDValidator is a validator for the "submission_id" field. It is called by the builders before save.
	triageevent.SubmissionIDValidator = triageeventDescSubmissionID.Validators[0].(func(string) error)
	// triageeventDescUserID is the schema descriptor for user_id field.
	triageeventDescUserID := triageeventFields[1].Descriptor()
	// triageevent.DefaultUserID holds the default value on creation for the user_id field.
	triageevent.DefaultUserID = triageeventDescUserID.Default.(string)
	// triageeventDescName is the schema descriptor for name field.
	triageeventDescName := triageeventFields[2].Descriptor()
	// triageevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	triageevent.NameValidator = triageeventDescName.Validators[0].(func(string) error)
	// triageeventDescPhone is the schema descriptor for phone field.
	triageeventDescPhone := triageeventFields[3].Descriptor()
	// triageevent.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	triageevent.PhoneValidator = triageeventDescPhone.Validators[0].(func(string) error)
	// triageeventDescEmail is the schema descriptor for email field.
	triageeventDescEmail := triageeventFields[4].Descriptor()
	// triageevent.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	triageevent.EmailValidator = triageeventDescEmail.Validators[0].(func(string) error)
	// triageeventDescFunctionRole is the schema descriptor for function_role field.
	triageeventDescFunctionRole := triageeventFields[5].Descriptor()
	// triageevent.FunctionRoleValidator is a validator for the "function_role" field. It is called by the builders before save.
	triageevent.FunctionRoleValidator = triageeventDescFunctionRole.Validators[0].(func(string) error)
	// triageeventDescAge is the schema descriptor for age field.
	triageeventDescAge := triageeventFields[6].Descriptor()
	// triageevent.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	triageevent.AgeValidator = triageeventDescAge.Validators[0].(func(int) error)
	// triageeventDescSector is the schema descriptor for sector field.
	triageeventDescSector := triageeventFields[7].Descriptor()
	// triageevent.SectorValidator is a validator for the "sector" field. It is called by the builders before save.
	triageevent.SectorValidator = triageeventDescSector.Validators[0].(func(string) error)
	// triageeventDescRiskScore is the schema descriptor for risk_score field.
	triageeventDescRiskScore := triageeventFields[9].Descriptor()
	// triageevent.RiskScoreValidator is a validator for the "risk_score" field. It is called by the builders before save.
	triageevent.RiskScoreValidator = triageeventDescRiskScore.Validators[0].(func(int) error)
	// triageeventDescRiskLevel is the schema descriptor for risk_level field.
	triageeventDescRiskLevel := triageeventFields[10].Descriptor()
	// triageevent.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	triageevent.RiskLevelValidator = triageeventDescRiskLevel.Validators[0].(func(string) error)
	// triageeventDescSuggestion is the schema descriptor for suggestion field.
	triageeventDescSuggestion := triageeventFields[11].Descriptor()
	// triageevent.DefaultSuggestion holds the default value on creation for the suggestion field.
	triageevent.DefaultSuggestion = triageeventDescSuggestion.Default.(string)
}
