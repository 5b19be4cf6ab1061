// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clinsaude/clin/ent/predicate"
	"github.com/clinsaude/clin/ent/triageevent"
)

// TriageEventUpdate is the builder for updating TriageEvent entities.
type TriageEventUpdate struct {
	config
	hooks    []Hook
	mutation *TriageEventMutation
}

// Where appends a list predicates to the TriageEventUpdate builder.
func (_u *TriageEventUpdate) Where(ps ...predicate.TriageEvent) *TriageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *TriageEventUpdate) SetSubmissionID(v string) *TriageEventUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableSubmissionID(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TriageEventUpdate) SetUserID(v string) *TriageEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableUserID(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TriageEventUpdate) SetName(v string) *TriageEventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableName(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *TriageEventUpdate) SetPhone(v string) *TriageEventUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillablePhone(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TriageEventUpdate) SetEmail(v string) *TriageEventUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableEmail(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFunctionRole sets the "function_role" field.
func (_u *TriageEventUpdate) SetFunctionRole(v string) *TriageEventUpdate {
	_u.mutation.SetFunctionRole(v)
	return _u
}

// SetNillableFunctionRole sets the "function_role" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableFunctionRole(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetFunctionRole(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *TriageEventUpdate) SetAge(v int) *TriageEventUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableAge(v *int) *TriageEventUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *TriageEventUpdate) AddAge(v int) *TriageEventUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetSector sets the "sector" field.
func (_u *TriageEventUpdate) SetSector(v string) *TriageEventUpdate {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableSector(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *TriageEventUpdate) SetAnswers(v map[string]string) *TriageEventUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *TriageEventUpdate) SetRiskScore(v int) *TriageEventUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableRiskScore(v *int) *TriageEventUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *TriageEventUpdate) AddRiskScore(v int) *TriageEventUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *TriageEventUpdate) SetRiskLevel(v string) *TriageEventUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableRiskLevel(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *TriageEventUpdate) SetSuggestion(v string) *TriageEventUpdate {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *TriageEventUpdate) SetNillableSuggestion(v *string) *TriageEventUpdate {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// Mutation returns the TriageEventMutation object of the builder.
func (_u *TriageEventUpdate) Mutation() *TriageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageEventUpdate) check() error {
	if v, ok := _u.mutation.SubmissionID(); ok {
		if err := triageevent.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.submission_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := triageevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := triageevent.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := triageevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FunctionRole(); ok {
		if err := triageevent.FunctionRoleValidator(v); err != nil {
			return &ValidationError{Name: "function_role", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.function_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := triageevent.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sector(); ok {
		if err := triageevent.SectorValidator(v); err != nil {
			return &ValidationError{Name: "sector", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.sector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskScore(); ok {
		if err := triageevent.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.risk_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := triageevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *TriageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triageevent.Table, triageevent.Columns, sqlgraph.NewFieldSpec(triageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(triageevent.FieldSubmissionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(triageevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(triageevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(triageevent.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(triageevent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FunctionRole(); ok {
		_spec.SetField(triageevent.FieldFunctionRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(triageevent.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(triageevent.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(triageevent.FieldSector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(triageevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(triageevent.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(triageevent.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(triageevent.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(triageevent.FieldSuggestion, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriageEventUpdateOne is the builder for updating a single TriageEvent entity.
type TriageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriageEventMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *TriageEventUpdateOne) SetSubmissionID(v string) *TriageEventUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableSubmissionID(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TriageEventUpdateOne) SetUserID(v string) *TriageEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableUserID(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TriageEventUpdateOne) SetName(v string) *TriageEventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableName(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *TriageEventUpdateOne) SetPhone(v string) *TriageEventUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillablePhone(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TriageEventUpdateOne) SetEmail(v string) *TriageEventUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableEmail(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFunctionRole sets the "function_role" field.
func (_u *TriageEventUpdateOne) SetFunctionRole(v string) *TriageEventUpdateOne {
	_u.mutation.SetFunctionRole(v)
	return _u
}

// SetNillableFunctionRole sets the "function_role" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableFunctionRole(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetFunctionRole(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *TriageEventUpdateOne) SetAge(v int) *TriageEventUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableAge(v *int) *TriageEventUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *TriageEventUpdateOne) AddAge(v int) *TriageEventUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetSector sets the "sector" field.
func (_u *TriageEventUpdateOne) SetSector(v string) *TriageEventUpdateOne {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableSector(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *TriageEventUpdateOne) SetAnswers(v map[string]string) *TriageEventUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *TriageEventUpdateOne) SetRiskScore(v int) *TriageEventUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableRiskScore(v *int) *TriageEventUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *TriageEventUpdateOne) AddRiskScore(v int) *TriageEventUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *TriageEventUpdateOne) SetRiskLevel(v string) *TriageEventUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableRiskLevel(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *TriageEventUpdateOne) SetSuggestion(v string) *TriageEventUpdateOne {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *TriageEventUpdateOne) SetNillableSuggestion(v *string) *TriageEventUpdateOne {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// Mutation returns the TriageEventMutation object of the builder.
func (_u *TriageEventUpdateOne) Mutation() *TriageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriageEventUpdate builder.
func (_u *TriageEventUpdateOne) Where(ps ...predicate.TriageEvent) *TriageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriageEventUpdateOne) Select(field string, fields ...string) *TriageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriageEvent entity.
func (_u *TriageEventUpdateOne) Save(ctx context.Context) (*TriageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageEventUpdateOne) SaveX(ctx context.Context) *TriageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageEventUpdateOne) check() error {
	if v, ok := _u.mutation.SubmissionID(); ok {
		if err := triageevent.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.submission_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := triageevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := triageevent.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := triageevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FunctionRole(); ok {
		if err := triageevent.FunctionRoleValidator(v); err != nil {
			return &ValidationError{Name: "function_role", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.function_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := triageevent.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sector(); ok {
		if err := triageevent.SectorValidator(v); err != nil {
			return &ValidationError{Name: "sector", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.sector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskScore(); ok {
		if err := triageevent.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.risk_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := triageevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *TriageEventUpdateOne) sqlSave(ctx context.Context) (_node *TriageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triageevent.Table, triageevent.Columns, sqlgraph.NewFieldSpec(triageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triageevent.FieldID)
		for _, f := range fields {
			if !triageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triageevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(triageevent.FieldSubmissionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(triageevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(triageevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(triageevent.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(triageevent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FunctionRole(); ok {
		_spec.SetField(triageevent.FieldFunctionRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(triageevent.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(triageevent.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(triageevent.FieldSector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(triageevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(triageevent.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(triageevent.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(triageevent.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(triageevent.FieldSuggestion, field.TypeString, value)
	}
	_node = &TriageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
