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
	"github.com/marketlens/marketlens/gen/ent/scanresult"
	"github.com/marketlens/marketlens/gen/ent/target"
)

// ScanResultCreate is the builder for creating a ScanResult entity.
type ScanResultCreate struct {
	config
	mutation *ScanResultMutation
	hooks    []Hook
}

// SetTargetID sets the "target_id" field.
func (_c *ScanResultCreate) SetTargetID(v uuid.UUID) *ScanResultCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScanResultCreate) SetStatus(v string) *ScanResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ScanResultCreate) SetContent(v string) *ScanResultCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *ScanResultCreate) SetNillableContent(v *string) *ScanResultCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *ScanResultCreate) SetExtractedData(v string) *ScanResultCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetNillableExtractedData sets the "extracted_data" field if the given value is not nil.
func (_c *ScanResultCreate) SetNillableExtractedData(v *string) *ScanResultCreate {
	if v != nil {
		_c.SetExtractedData(*v)
	}
	return _c
}

// SetScreenshot sets the "screenshot" field.
func (_c *ScanResultCreate) SetScreenshot(v string) *ScanResultCreate {
	_c.mutation.SetScreenshot(v)
	return _c
}

// SetNillableScreenshot sets the "screenshot" field if the given value is not nil.
func (_c *ScanResultCreate) SetNillableScreenshot(v *string) *ScanResultCreate {
	if v != nil {
		_c.SetScreenshot(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScanResultCreate) SetErrorMessage(v string) *ScanResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScanResultCreate) SetNillableErrorMessage(v *string) *ScanResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *ScanResultCreate) SetReviewStatus(v string) *ScanResultCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *ScanResultCreate) SetNillableReviewStatus(v *string) *ScanResultCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScanResultCreate) SetCreatedAt(v time.Time) *ScanResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScanResultCreate) SetNillableCreatedAt(v *time.Time) *ScanResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScanResultCreate) SetID(v uuid.UUID) *ScanResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScanResultCreate) SetNillableID(v *uuid.UUID) *ScanResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTarget sets the "target" edge to the Target entity.
func (_c *ScanResultCreate) SetTarget(v *Target) *ScanResultCreate {
	return _c.SetTargetID(v.ID)
}

// Mutation returns the ScanResultMutation object of the builder.
func (_c *ScanResultCreate) Mutation() *ScanResultMutation {
	return _c.mutation
}

// Save creates the ScanResult in the database.
func (_c *ScanResultCreate) Save(ctx context.Context) (*ScanResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanResultCreate) SaveX(ctx context.Context) *ScanResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanResultCreate) defaults() {
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := scanresult.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scanresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scanresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanResultCreate) check() error {
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "ScanResult.target_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScanResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scanresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "ScanResult.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := scanresult.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ScanResult.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScanResult.created_at"`)}
	}
	if len(_c.mutation.TargetIDs()) == 0 {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required edge "ScanResult.target"`)}
	}
	return nil
}

func (_c *ScanResultCreate) sqlSave(ctx context.Context) (*ScanResult, error) {
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

func (_c *ScanResultCreate) createSpec() (*ScanResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scanresult.Table, sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scanresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(scanresult.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(scanresult.FieldExtractedData, field.TypeString, value)
		_node.ExtractedData = &value
	}
	if value, ok := _c.mutation.Screenshot(); ok {
		_spec.SetField(scanresult.FieldScreenshot, field.TypeString, value)
		_node.Screenshot = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scanresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(scanresult.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scanresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TargetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanresult.TargetTable,
			Columns: []string{scanresult.TargetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(target.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TargetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScanResultCreateBulk is the builder for creating many ScanResult entities in bulk.
type ScanResultCreateBulk struct {
	config
	err      error
	builders []*ScanResultCreate
}

// Save creates the ScanResult entities in the database.
func (_c *ScanResultCreateBulk) Save(ctx context.Context) ([]*ScanResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScanResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanResultMutation)
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
func (_c *ScanResultCreateBulk) SaveX(ctx context.Context) []*ScanResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
