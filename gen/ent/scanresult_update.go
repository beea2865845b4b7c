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
	"github.com/marketlens/marketlens/gen/ent/scanresult"
	"github.com/marketlens/marketlens/gen/ent/target"
)

// ScanResultUpdate is the builder for updating ScanResult entities.
type ScanResultUpdate struct {
	config
	hooks    []Hook
	mutation *ScanResultMutation
}

// Where appends a list predicates to the ScanResultUpdate builder.
func (_u *ScanResultUpdate) Where(ps ...predicate.ScanResult) *ScanResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *ScanResultUpdate) SetTargetID(v uuid.UUID) *ScanResultUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableTargetID(v *uuid.UUID) *ScanResultUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanResultUpdate) SetStatus(v string) *ScanResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableStatus(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ScanResultUpdate) SetContent(v string) *ScanResultUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableContent(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ScanResultUpdate) ClearContent() *ScanResultUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *ScanResultUpdate) SetExtractedData(v string) *ScanResultUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// SetNillableExtractedData sets the "extracted_data" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableExtractedData(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetExtractedData(*v)
	}
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *ScanResultUpdate) ClearExtractedData() *ScanResultUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetScreenshot sets the "screenshot" field.
func (_u *ScanResultUpdate) SetScreenshot(v string) *ScanResultUpdate {
	_u.mutation.SetScreenshot(v)
	return _u
}

// SetNillableScreenshot sets the "screenshot" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableScreenshot(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetScreenshot(*v)
	}
	return _u
}

// ClearScreenshot clears the value of the "screenshot" field.
func (_u *ScanResultUpdate) ClearScreenshot() *ScanResultUpdate {
	_u.mutation.ClearScreenshot()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanResultUpdate) SetErrorMessage(v string) *ScanResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableErrorMessage(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanResultUpdate) ClearErrorMessage() *ScanResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *ScanResultUpdate) SetReviewStatus(v string) *ScanResultUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableReviewStatus(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetTarget sets the "target" edge to the Target entity.
func (_u *ScanResultUpdate) SetTarget(v *Target) *ScanResultUpdate {
	return _u.SetTargetID(v.ID)
}

// Mutation returns the ScanResultMutation object of the builder.
func (_u *ScanResultUpdate) Mutation() *ScanResultMutation {
	return _u.mutation
}

// ClearTarget clears the "target" edge to the Target entity.
func (_u *ScanResultUpdate) ClearTarget() *ScanResultUpdate {
	_u.mutation.ClearTarget()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scanresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanResult.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := scanresult.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ScanResult.review_status": %w`, err)}
		}
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanResult.target"`)
	}
	return nil
}

func (_u *ScanResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanresult.Table, scanresult.Columns, sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(scanresult.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(scanresult.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(scanresult.FieldExtractedData, field.TypeString, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(scanresult.FieldExtractedData, field.TypeString)
	}
	if value, ok := _u.mutation.Screenshot(); ok {
		_spec.SetField(scanresult.FieldScreenshot, field.TypeString, value)
	}
	if _u.mutation.ScreenshotCleared() {
		_spec.ClearField(scanresult.FieldScreenshot, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(scanresult.FieldReviewStatus, field.TypeString, value)
	}
	if _u.mutation.TargetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TargetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanResultUpdateOne is the builder for updating a single ScanResult entity.
type ScanResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanResultMutation
}

// SetTargetID sets the "target_id" field.
func (_u *ScanResultUpdateOne) SetTargetID(v uuid.UUID) *ScanResultUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableTargetID(v *uuid.UUID) *ScanResultUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanResultUpdateOne) SetStatus(v string) *ScanResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableStatus(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ScanResultUpdateOne) SetContent(v string) *ScanResultUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableContent(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ScanResultUpdateOne) ClearContent() *ScanResultUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *ScanResultUpdateOne) SetExtractedData(v string) *ScanResultUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// SetNillableExtractedData sets the "extracted_data" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableExtractedData(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetExtractedData(*v)
	}
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *ScanResultUpdateOne) ClearExtractedData() *ScanResultUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetScreenshot sets the "screenshot" field.
func (_u *ScanResultUpdateOne) SetScreenshot(v string) *ScanResultUpdateOne {
	_u.mutation.SetScreenshot(v)
	return _u
}

// SetNillableScreenshot sets the "screenshot" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableScreenshot(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetScreenshot(*v)
	}
	return _u
}

// ClearScreenshot clears the value of the "screenshot" field.
func (_u *ScanResultUpdateOne) ClearScreenshot() *ScanResultUpdateOne {
	_u.mutation.ClearScreenshot()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanResultUpdateOne) SetErrorMessage(v string) *ScanResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableErrorMessage(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanResultUpdateOne) ClearErrorMessage() *ScanResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *ScanResultUpdateOne) SetReviewStatus(v string) *ScanResultUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableReviewStatus(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetTarget sets the "target" edge to the Target entity.
func (_u *ScanResultUpdateOne) SetTarget(v *Target) *ScanResultUpdateOne {
	return _u.SetTargetID(v.ID)
}

// Mutation returns the ScanResultMutation object of the builder.
func (_u *ScanResultUpdateOne) Mutation() *ScanResultMutation {
	return _u.mutation
}

// ClearTarget clears the "target" edge to the Target entity.
func (_u *ScanResultUpdateOne) ClearTarget() *ScanResultUpdateOne {
	_u.mutation.ClearTarget()
	return _u
}

// Where appends a list predicates to the ScanResultUpdate builder.
func (_u *ScanResultUpdateOne) Where(ps ...predicate.ScanResult) *ScanResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanResultUpdateOne) Select(field string, fields ...string) *ScanResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanResult entity.
func (_u *ScanResultUpdateOne) Save(ctx context.Context) (*ScanResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanResultUpdateOne) SaveX(ctx context.Context) *ScanResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scanresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanResult.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := scanresult.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ScanResult.review_status": %w`, err)}
		}
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanResult.target"`)
	}
	return nil
}

func (_u *ScanResultUpdateOne) sqlSave(ctx context.Context) (_node *ScanResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanresult.Table, scanresult.Columns, sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanresult.FieldID)
		for _, f := range fields {
			if !scanresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanresult.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(scanresult.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(scanresult.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(scanresult.FieldExtractedData, field.TypeString, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(scanresult.FieldExtractedData, field.TypeString)
	}
	if value, ok := _u.mutation.Screenshot(); ok {
		_spec.SetField(scanresult.FieldScreenshot, field.TypeString, value)
	}
	if _u.mutation.ScreenshotCleared() {
		_spec.ClearField(scanresult.FieldScreenshot, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(scanresult.FieldReviewStatus, field.TypeString, value)
	}
	if _u.mutation.TargetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TargetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScanResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
