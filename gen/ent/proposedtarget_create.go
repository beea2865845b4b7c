// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marketlens/marketlens/gen/ent/proposedtarget"
)

// ProposedTargetCreate is the builder for creating a ProposedTarget entity.
type ProposedTargetCreate struct {
	config
	mutation *ProposedTargetMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProposedTargetCreate) SetUserID(v uuid.UUID) *ProposedTargetCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ProposedTargetCreate) SetURL(v string) *ProposedTargetCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProposedTargetCreate) SetTitle(v string) *ProposedTargetCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProposedTargetCreate) SetDescription(v string) *ProposedTargetCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ProposedTargetCreate) SetNillableDescription(v *string) *ProposedTargetCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSourcePrompt sets the "source_prompt" field.
func (_c *ProposedTargetCreate) SetSourcePrompt(v string) *ProposedTargetCreate {
	_c.mutation.SetSourcePrompt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProposedTargetCreate) SetStatus(v string) *ProposedTargetCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProposedTargetCreate) SetNillableStatus(v *string) *ProposedTargetCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProposedTargetCreate) SetCreatedAt(v time.Time) *ProposedTargetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProposedTargetCreate) SetNillableCreatedAt(v *time.Time) *ProposedTargetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProposedTargetCreate) SetID(v uuid.UUID) *ProposedTargetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProposedTargetCreate) SetNillableID(v *uuid.UUID) *ProposedTargetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProposedTargetMutation object of the builder.
func (_c *ProposedTargetCreate) Mutation() *ProposedTargetMutation {
	return _c.mutation
}

// Save creates the ProposedTarget in the database.
func (_c *ProposedTargetCreate) Save(ctx context.Context) (*ProposedTarget, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposedTargetCreate) SaveX(ctx context.Context) *ProposedTarget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposedTargetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposedTargetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposedTargetCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := proposedtarget.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := proposedtarget.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := proposedtarget.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposedTargetCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProposedTarget.user_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "ProposedTarget.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := proposedtarget.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ProposedTarget.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := proposedtarget.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePrompt(); !ok {
		return &ValidationError{Name: "source_prompt", err: errors.New(`ent: missing required field "ProposedTarget.source_prompt"`)}
	}
	if v, ok := _c.mutation.SourcePrompt(); ok {
		if err := proposedtarget.SourcePromptValidator(v); err != nil {
			return &ValidationError{Name: "source_prompt", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.source_prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProposedTarget.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := proposedtarget.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProposedTarget.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProposedTarget.created_at"`)}
	}
	return nil
}

func (_c *ProposedTargetCreate) sqlSave(ctx context.Context) (*ProposedTarget, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProposedTargetCreate) createSpec() (*ProposedTarget, *sqlgraph.CreateSpec) {
	var (
		_node = &ProposedTarget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposedtarget.Table, sqlgraph.NewFieldSpec(proposedtarget.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(proposedtarget.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(proposedtarget.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(proposedtarget.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(proposedtarget.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.SourcePrompt(); ok {
		_spec.SetField(proposedtarget.FieldSourcePrompt, field.TypeString, value)
		_node.SourcePrompt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(proposedtarget.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(proposedtarget.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProposedTargetCreateBulk is the builder for creating many ProposedTarget entities in bulk.
type ProposedTargetCreateBulk struct {
	config
	err      error
	builders []*ProposedTargetCreate
}

// Save creates the ProposedTarget entities in the database.
func (_c *ProposedTargetCreateBulk) Save(ctx context.Context) ([]*ProposedTarget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProposedTarget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposedTargetMutation)
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
func (_c *ProposedTargetCreateBulk) SaveX(ctx context.Context) []*ProposedTarget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposedTargetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposedTargetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
