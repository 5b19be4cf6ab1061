package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriageEvent records one completed triage submission.
type TriageEvent struct {
	ent.Schema
}

func (TriageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TriageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("submission_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned when the triage completed"),
		field.String("user_id").
			Default("").
			Comment("Resolved user identity; empty for anonymous"),
		field.String("name").
			NotEmpty(),
		field.String("phone").
			NotEmpty(),
		field.String("email").
			NotEmpty(),
		field.String("function_role").
			NotEmpty().
			Comment("Job function reported by the employee"),
		field.Int("age").
			Positive(),
		field.String("sector").
			NotEmpty().
			Comment("Company sector: administrative, operational, production, sales, other"),
		field.JSON("answers", map[string]string{}).
			Comment("Question ID to selected option label"),
		field.Int("risk_score").
			Min(0).
			Comment("Sum of option weights, 0..18"),
		field.String("risk_level").
			NotEmpty().
			Comment("low, medium or high"),
		field.String("suggestion").
			Default("").
			Comment("Care suggestion shown with the result"),
	}
}

func (TriageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("risk_level"),
		index.Fields("sector"),
		index.Fields("user_id"),
	}
}
