// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// TriageEventsColumns holds the columns for the "triage_events" table.
	TriageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "function_role", Type: field.TypeString},
		{Name: "age", Type: field.TypeInt},
		{Name: "sector", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "risk_score", Type: field.TypeInt},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "suggestion", Type: field.TypeString, Default: ""},
	}
	// TriageEventsTable holds the schema information for the "triage_events" table.
	TriageEventsTable = &schema.Table{
		Name:       "triage_events",
		Columns:    TriageEventsColumns,
		PrimaryKey: []*schema.Column{TriageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "triageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TriageEventsColumns[1]},
			},
			{
				Name:    "triageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TriageEventsColumns[2]},
			},
			{
				Name:    "triageevent_risk_level",
				Unique:  false,
				Columns: []*schema.Column{TriageEventsColumns[13]},
			},
			{
				Name:    "triageevent_sector",
				Unique:  false,
				Columns: []*schema.Column{TriageEventsColumns[10]},
			},
			{
				Name:    "triageevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{TriageEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		TriageEventsTable,
	}
)

func init() {
}
