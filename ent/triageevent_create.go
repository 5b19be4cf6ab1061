// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clinsaude/clin/ent/triageevent"
)

// TriageEventCreate is the builder for creating a TriageEvent entity.
type TriageEventCreate struct {
	config
	mutation *TriageEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TriageEventCreate) SetSequence(v int64) *TriageEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TriageEventCreate) SetTimestamp(v time.Time) *TriageEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TriageEventCreate) SetNillableTimestamp(v *time.Time) *TriageEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *TriageEventCreate) SetSubmissionID(v string) *TriageEventCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TriageEventCreate) SetUserID(v string) *TriageEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *TriageEventCreate) SetNillableUserID(v *string) *TriageEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *TriageEventCreate) SetName(v string) *TriageEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *TriageEventCreate) SetPhone(v string) *TriageEventCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *TriageEventCreate) SetEmail(v string) *TriageEventCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetFunctionRole sets the "function_role" field.
func (_c *TriageEventCreate) SetFunctionRole(v string) *TriageEventCreate {
	_c.mutation.SetFunctionRole(v)
	return _c
}

// SetAge sets the "age" field.
func (_c *TriageEventCreate) SetAge(v int) *TriageEventCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetSector sets the "sector" field.
func (_c *TriageEventCreate) SetSector(v string) *TriageEventCreate {
	_c.mutation.SetSector(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *TriageEventCreate) SetAnswers(v map[string]string) *TriageEventCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *TriageEventCreate) SetRiskScore(v int) *TriageEventCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *TriageEventCreate) SetRiskLevel(v string) *TriageEventCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetSuggestion sets the "suggestion" field.
func (_c *TriageEventCreate) SetSuggestion(v string) *TriageEventCreate {
	_c.mutation.SetSuggestion(v)
	return _c
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_c *TriageEventCreate) SetNillableSuggestion(v *string) *TriageEventCreate {
	if v != nil {
		_c.SetSuggestion(*v)
	}
	return _c
}

// Mutation returns the TriageEventMutation object of the builder.
func (_c *TriageEventCreate) Mutation() *TriageEventMutation {
	return _c.mutation
}

// Save creates the TriageEvent in the database.
func (_c *TriageEventCreate) Save(ctx context.Context) (*TriageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriageEventCreate) SaveX(ctx context.Context) *TriageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriageEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := triageevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UserID(); !ok {
		v := triageevent.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		v := triageevent.DefaultSuggestion
		_c.mutation.SetSuggestion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriageEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TriageEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TriageEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "TriageEvent.submission_id"`)}
	}
	if v, ok := _c.mutation.SubmissionID(); ok {
		if err := triageevent.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.submission_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TriageEvent.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TriageEvent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := triageevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "TriageEvent.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := triageevent.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "TriageEvent.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := triageevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FunctionRole(); !ok {
		return &ValidationError{Name: "function_role", err: errors.New(`ent: missing required field "TriageEvent.function_role"`)}
	}
	if v, ok := _c.mutation.FunctionRole(); ok {
		if err := triageevent.FunctionRoleValidator(v); err != nil {
			return &ValidationError{Name: "function_role", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.function_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Age(); !ok {
		return &ValidationError{Name: "age", err: errors.New(`ent: missing required field "TriageEvent.age"`)}
	}
	if v, ok := _c.mutation.Age(); ok {
		if err := triageevent.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.age": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sector(); !ok {
		return &ValidationError{Name: "sector", err: errors.New(`ent: missing required field "TriageEvent.sector"`)}
	}
	if v, ok := _c.mutation.Sector(); ok {
		if err := triageevent.SectorValidator(v); err != nil {
			return &ValidationError{Name: "sector", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.sector": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "TriageEvent.answers"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "TriageEvent.risk_score"`)}
	}
	if v, ok := _c.mutation.RiskScore(); ok {
		if err := triageevent.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.risk_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "TriageEvent.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := triageevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "TriageEvent.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		return &ValidationError{Name: "suggestion", err: errors.New(`ent: missing required field "TriageEvent.suggestion"`)}
	}
	return nil
}

func (_c *TriageEventCreate) sqlSave(ctx context.Context) (*TriageEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriageEventCreate) createSpec() (*TriageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TriageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triageevent.Table, sqlgraph.NewFieldSpec(triageevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(triageevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(triageevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SubmissionID(); ok {
		_spec.SetField(triageevent.FieldSubmissionID, field.TypeString, value)
		_node.SubmissionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(triageevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(triageevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(triageevent.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(triageevent.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FunctionRole(); ok {
		_spec.SetField(triageevent.FieldFunctionRole, field.TypeString, value)
		_node.FunctionRole = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(triageevent.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.Sector(); ok {
		_spec.SetField(triageevent.FieldSector, field.TypeString, value)
		_node.Sector = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(triageevent.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(triageevent.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(triageevent.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Suggestion(); ok {
		_spec.SetField(triageevent.FieldSuggestion, field.TypeString, value)
		_node.Suggestion = value
	}
	return _node, _spec
}

// TriageEventCreateBulk is the builder for creating many TriageEvent entities in bulk.
type TriageEventCreateBulk struct {
	config
	err      error
	builders []*TriageEventCreate
}

// Save creates the TriageEvent entities in the database.
func (_c *TriageEventCreateBulk) Save(ctx context.Context) ([]*TriageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriageEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TriageEventCreateBulk) SaveX(ctx context.Context) []*TriageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
