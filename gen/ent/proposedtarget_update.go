// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marketlens/marketlens/gen/ent/predicate"
	"github.com/marketlens/marketlens/gen/ent/proposedtarget"
)

// ProposedTargetUpdate is the builder for updating ProposedTarget entities.
type ProposedTargetUpdate struct {
	config
	hooks    []Hook
	mutation *ProposedTargetMutation
}

// Where appends a list predicates to the ProposedTargetUpdate builder.
func (_u *ProposedTargetUpdate) Where(ps ...predicate.ProposedTarget) *ProposedTargetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProposedTargetUpdate) SetUserID(v uuid.UUID) *ProposedTargetUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProposedTargetUpdate) SetNillableUserID(v *uuid.UUID) *ProposedTargetUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ProposedTargetUpdate) SetURL(v string) *ProposedTargetUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ProposedTargetUpdate) SetNillableURL(v *string) *ProposedTargetUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProposedTargetUpdate) SetTitle(v string) *ProposedTargetUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProposedTargetUpdate) SetNillableTitle(v *string) *ProposedTargetUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposedTargetUpdate) SetDescription(v string) *ProposedTargetUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposedTargetUpdate) SetNillableDescription(v *string) *ProposedTargetUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProposedTargetUpdate) ClearDescription() *ProposedTargetUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSourcePrompt sets the "source_prompt" field.
func (_u *ProposedTargetUpdate) SetSourcePrompt(v string) *ProposedTargetUpdate {
	_u.mutation.SetSourcePrompt(v)
	return _u
}

// SetNillableSourcePrompt sets the "source_prompt" field if the given value is not nil.
func (_u *ProposedTargetUpdate) SetNillableSourcePrompt(v *string) *ProposedTargetUpdate {
	if v != nil {
		_u.SetSourcePrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposedTargetUpdate) SetStatus(v string) *ProposedTargetUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposedTargetUpdate) SetNillableStatus(v *string) *ProposedTargetUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ProposedTargetMutation object of the builder.
func (_u *ProposedTargetUpdate) Mutation() *ProposedTargetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposedTargetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposedTargetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposedTargetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposedTargetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposedTargetUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := proposedtarget.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := proposedtarget.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePrompt(); ok {
		if err := proposedtarget.SourcePromptValidator(v); err != nil {
			return &ValidationError{Name: "source_prompt", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.source_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposedtarget.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposedTargetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposedtarget.Table, proposedtarget.Columns, sqlgraph.NewFieldSpec(proposedtarget.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(proposedtarget.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(proposedtarget.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(proposedtarget.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposedtarget.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(proposedtarget.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePrompt(); ok {
		_spec.SetField(proposedtarget.FieldSourcePrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposedtarget.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposedtarget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposedTargetUpdateOne is the builder for updating a single ProposedTarget entity.
type ProposedTargetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposedTargetMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProposedTargetUpdateOne) SetUserID(v uuid.UUID) *ProposedTargetUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProposedTargetUpdateOne) SetNillableUserID(v *uuid.UUID) *ProposedTargetUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ProposedTargetUpdateOne) SetURL(v string) *ProposedTargetUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ProposedTargetUpdateOne) SetNillableURL(v *string) *ProposedTargetUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProposedTargetUpdateOne) SetTitle(v string) *ProposedTargetUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProposedTargetUpdateOne) SetNillableTitle(v *string) *ProposedTargetUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposedTargetUpdateOne) SetDescription(v string) *ProposedTargetUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposedTargetUpdateOne) SetNillableDescription(v *string) *ProposedTargetUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProposedTargetUpdateOne) ClearDescription() *ProposedTargetUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSourcePrompt sets the "source_prompt" field.
func (_u *ProposedTargetUpdateOne) SetSourcePrompt(v string) *ProposedTargetUpdateOne {
	_u.mutation.SetSourcePrompt(v)
	return _u
}

// SetNillableSourcePrompt sets the "source_prompt" field if the given value is not nil.
func (_u *ProposedTargetUpdateOne) SetNillableSourcePrompt(v *string) *ProposedTargetUpdateOne {
	if v != nil {
		_u.SetSourcePrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposedTargetUpdateOne) SetStatus(v string) *ProposedTargetUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposedTargetUpdateOne) SetNillableStatus(v *string) *ProposedTargetUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ProposedTargetMutation object of the builder.
func (_u *ProposedTargetUpdateOne) Mutation() *ProposedTargetMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProposedTargetUpdate builder.
func (_u *ProposedTargetUpdateOne) Where(ps ...predicate.ProposedTarget) *ProposedTargetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposedTargetUpdateOne) Select(field string, fields ...string) *ProposedTargetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProposedTarget entity.
func (_u *ProposedTargetUpdateOne) Save(ctx context.Context) (*ProposedTarget, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposedTargetUpdateOne) SaveX(ctx context.Context) *ProposedTarget {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposedTargetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposedTargetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposedTargetUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := proposedtarget.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := proposedtarget.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePrompt(); ok {
		if err := proposedtarget.SourcePromptValidator(v); err != nil {
			return &ValidationError{Name: "source_prompt", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.source_prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposedtarget.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposedTargetUpdateOne) sqlSave(ctx context.Context) (_node *ProposedTarget, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposedtarget.Table, proposedtarget.Columns, sqlgraph.NewFieldSpec(proposedtarget.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProposedTarget.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposedtarget.FieldID)
		for _, f := range fields {
			if !proposedtarget.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposedtarget.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(proposedtarget.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(proposedtarget.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(proposedtarget.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposedtarget.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(proposedtarget.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePrompt(); ok {
		_spec.SetField(proposedtarget.FieldSourcePrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposedtarget.FieldStatus, field.TypeString, value)
	}
	_node = &ProposedTarget{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposedtarget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
