// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marketlens/marketlens/gen/ent/predicate"
	"github.com/marketlens/marketlens/gen/ent/proposedtarget"
)

// ProposedTargetDelete is the builder for deleting a ProposedTarget entity.
type ProposedTargetDelete struct {
	config
	hooks    []Hook
	mutation *ProposedTargetMutation
}

// Where appends a list predicates to the ProposedTargetDelete builder.
func (_d *ProposedTargetDelete) Where(ps ...predicate.ProposedTarget) *ProposedTargetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProposedTargetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProposedTargetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProposedTargetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(proposedtarget.Table, sqlgraph.NewFieldSpec(proposedtarget.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProposedTargetDeleteOne is the builder for deleting a single ProposedTarget entity.
type ProposedTargetDeleteOne struct {
	_d *ProposedTargetDelete
}

// Where appends a list predicates to the ProposedTargetDelete builder.
func (_d *ProposedTargetDeleteOne) Where(ps ...predicate.ProposedTarget) *ProposedTargetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProposedTargetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{proposedtarget.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProposedTargetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
