// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/derivio/ent/predicate"
	"github.com/abhisek/derivio/ent/topicevent"
)

// TopicEventUpdate is the builder for updating TopicEvent entities.
type TopicEventUpdate struct {
	config
	hooks    []Hook
	mutation *TopicEventMutation
}

// Where appends a list predicates to the TopicEventUpdate builder.
func (_u *TopicEventUpdate) Where(ps ...predicate.TopicEvent) *TopicEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TopicEventUpdate) SetSessionID(v string) *TopicEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TopicEventUpdate) SetNillableSessionID(v *string) *TopicEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TopicEventUpdate) SetTopicID(v string) *TopicEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TopicEventUpdate) SetNillableTopicID(v *string) *TopicEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *TopicEventUpdate) SetLevel(v string) *TopicEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TopicEventUpdate) SetNillableLevel(v *string) *TopicEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *TopicEventUpdate) SetScore(v int) *TopicEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TopicEventUpdate) SetNillableScore(v *int) *TopicEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TopicEventUpdate) AddScore(v int) *TopicEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetReview sets the "review" field.
func (_u *TopicEventUpdate) SetReview(v bool) *TopicEventUpdate {
	_u.mutation.SetReview(v)
	return _u
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_u *TopicEventUpdate) SetNillableReview(v *bool) *TopicEventUpdate {
	if v != nil {
		_u.SetReview(*v)
	}
	return _u
}

// Mutation returns the TopicEventMutation object of the builder.
func (_u *TopicEventUpdate) Mutation() *TopicEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := topicevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TopicEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := topicevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := topicevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "TopicEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicevent.Table, topicevent.Columns, sqlgraph.NewFieldSpec(topicevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(topicevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(topicevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(topicevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(topicevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(topicevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Review(); ok {
		_spec.SetField(topicevent.FieldReview, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicEventUpdateOne is the builder for updating a single TopicEvent entity.
type TopicEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TopicEventUpdateOne) SetSessionID(v string) *TopicEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TopicEventUpdateOne) SetNillableSessionID(v *string) *TopicEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TopicEventUpdateOne) SetTopicID(v string) *TopicEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TopicEventUpdateOne) SetNillableTopicID(v *string) *TopicEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *TopicEventUpdateOne) SetLevel(v string) *TopicEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TopicEventUpdateOne) SetNillableLevel(v *string) *TopicEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *TopicEventUpdateOne) SetScore(v int) *TopicEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TopicEventUpdateOne) SetNillableScore(v *int) *TopicEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TopicEventUpdateOne) AddScore(v int) *TopicEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetReview sets the "review" field.
func (_u *TopicEventUpdateOne) SetReview(v bool) *TopicEventUpdateOne {
	_u.mutation.SetReview(v)
	return _u
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_u *TopicEventUpdateOne) SetNillableReview(v *bool) *TopicEventUpdateOne {
	if v != nil {
		_u.SetReview(*v)
	}
	return _u
}

// Mutation returns the TopicEventMutation object of the builder.
func (_u *TopicEventUpdateOne) Mutation() *TopicEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicEventUpdate builder.
func (_u *TopicEventUpdateOne) Where(ps ...predicate.TopicEvent) *TopicEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicEventUpdateOne) Select(field string, fields ...string) *TopicEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicEvent entity.
func (_u *TopicEventUpdateOne) Save(ctx context.Context) (*TopicEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicEventUpdateOne) SaveX(ctx context.Context) *TopicEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := topicevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TopicEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := topicevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := topicevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "TopicEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicEventUpdateOne) sqlSave(ctx context.Context) (_node *TopicEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicevent.Table, topicevent.Columns, sqlgraph.NewFieldSpec(topicevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicevent.FieldID)
		for _, f := range fields {
			if !topicevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(topicevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(topicevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(topicevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(topicevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(topicevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Review(); ok {
		_spec.SetField(topicevent.FieldReview, field.TypeBool, value)
	}
	_node = &TopicEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
