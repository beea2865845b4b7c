// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/marketlens/marketlens/gen/ent/predicate"
	"github.com/marketlens/marketlens/gen/ent/scanresult"
	"github.com/marketlens/marketlens/gen/ent/target"
)

// TargetUpdate is the builder for updating Target entities.
type TargetUpdate struct {
	config
	hooks    []Hook
	mutation *TargetMutation
}

// Where appends a list predicates to the TargetUpdate builder.
func (_u *TargetUpdate) Where(ps ...predicate.Target) *TargetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TargetUpdate) SetUserID(v uuid.UUID) *TargetUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableUserID(v *uuid.UUID) *TargetUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *TargetUpdate) SetURL(v string) *TargetUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableURL(v *string) *TargetUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TargetUpdate) SetName(v string) *TargetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableName(v *string) *TargetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TargetUpdate) SetPrompt(v string) *TargetUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TargetUpdate) SetNillablePrompt(v *string) *TargetUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *TargetUpdate) ClearPrompt() *TargetUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *TargetUpdate) SetSchedule(v string) *TargetUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableSchedule(v *string) *TargetUpdate {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *TargetUpdate) SetCustomFields(v []string) *TargetUpdate {
	_u.mutation.SetCustomFields(v)
	return _u
}

// AppendCustomFields appends value to the "custom_fields" field.
func (_u *TargetUpdate) AppendCustomFields(v []string) *TargetUpdate {
	_u.mutation.AppendCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *TargetUpdate) ClearCustomFields() *TargetUpdate {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetActive sets the "active" field.
func (_u *TargetUpdate) SetActive(v bool) *TargetUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableActive(v *bool) *TargetUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetMasterData sets the "master_data" field.
func (_u *TargetUpdate) SetMasterData(v string) *TargetUpdate {
	_u.mutation.SetMasterData(v)
	return _u
}

// SetNillableMasterData sets the "master_data" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableMasterData(v *string) *TargetUpdate {
	if v != nil {
		_u.SetMasterData(*v)
	}
	return _u
}

// ClearMasterData clears the value of the "master_data" field.
func (_u *TargetUpdate) ClearMasterData() *TargetUpdate {
	_u.mutation.ClearMasterData()
	return _u
}

// AddScanIDs adds the "scans" edge to the ScanResult entity by IDs.
func (_u *TargetUpdate) AddScanIDs(ids ...uuid.UUID) *TargetUpdate {
	_u.mutation.AddScanIDs(ids...)
	return _u
}

// AddScans adds the "scans" edges to the ScanResult entity.
func (_u *TargetUpdate) AddScans(v ...*ScanResult) *TargetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScanIDs(ids...)
}

// Mutation returns the TargetMutation object of the builder.
func (_u *TargetUpdate) Mutation() *TargetMutation {
	return _u.mutation
}

// ClearScans clears all "scans" edges to the ScanResult entity.
func (_u *TargetUpdate) ClearScans() *TargetUpdate {
	_u.mutation.ClearScans()
	return _u
}

// RemoveScanIDs removes the "scans" edge to ScanResult entities by IDs.
func (_u *TargetUpdate) RemoveScanIDs(ids ...uuid.UUID) *TargetUpdate {
	_u.mutation.RemoveScanIDs(ids...)
	return _u
}

// RemoveScans removes "scans" edges to ScanResult entities.
func (_u *TargetUpdate) RemoveScans(v ...*ScanResult) *TargetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScanIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TargetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TargetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TargetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TargetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TargetUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := target.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Target.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := target.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Target.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Schedule(); ok {
		if err := target.ScheduleValidator(v); err != nil {
			return &ValidationError{Name: "schedule", err: fmt.Errorf(`ent: validator failed for field "Target.schedule": %w`, err)}
		}
	}
	return nil
}

func (_u *TargetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(target.Table, target.Columns, sqlgraph.NewFieldSpec(target.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(target.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(target.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(target.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(target.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(target.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(target.FieldSchedule, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(target.FieldCustomFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCustomFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, target.FieldCustomFields, value)
		})
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(target.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(target.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MasterData(); ok {
		_spec.SetField(target.FieldMasterData, field.TypeString, value)
	}
	if _u.mutation.MasterDataCleared() {
		_spec.ClearField(target.FieldMasterData, field.TypeString)
	}
	if _u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   target.ScansTable,
			Columns: []string{target.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScansIDs(); len(nodes) > 0 && !_u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   target.ScansTable,
			Columns: []string{target.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   target.ScansTable,
			Columns: []string{target.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{target.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TargetUpdateOne is the builder for updating a single Target entity.
type TargetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TargetMutation
}

// SetUserID sets the "user_id" field.
func (_u *TargetUpdateOne) SetUserID(v uuid.UUID) *TargetUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableUserID(v *uuid.UUID) *TargetUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *TargetUpdateOne) SetURL(v string) *TargetUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableURL(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TargetUpdateOne) SetName(v string) *TargetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableName(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TargetUpdateOne) SetPrompt(v string) *TargetUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillablePrompt(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *TargetUpdateOne) ClearPrompt() *TargetUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *TargetUpdateOne) SetSchedule(v string) *TargetUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableSchedule(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *TargetUpdateOne) SetCustomFields(v []string) *TargetUpdateOne {
	_u.mutation.SetCustomFields(v)
	return _u
}

// AppendCustomFields appends value to the "custom_fields" field.
func (_u *TargetUpdateOne) AppendCustomFields(v []string) *TargetUpdateOne {
	_u.mutation.AppendCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *TargetUpdateOne) ClearCustomFields() *TargetUpdateOne {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetActive sets the "active" field.
func (_u *TargetUpdateOne) SetActive(v bool) *TargetUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableActive(v *bool) *TargetUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetMasterData sets the "master_data" field.
func (_u *TargetUpdateOne) SetMasterData(v string) *TargetUpdateOne {
	_u.mutation.SetMasterData(v)
	return _u
}

// SetNillableMasterData sets the "master_data" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableMasterData(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetMasterData(*v)
	}
	return _u
}

// ClearMasterData clears the value of the "master_data" field.
func (_u *TargetUpdateOne) ClearMasterData() *TargetUpdateOne {
	_u.mutation.ClearMasterData()
	return _u
}

// AddScanIDs adds the "scans" edge to the ScanResult entity by IDs.
func (_u *TargetUpdateOne) AddScanIDs(ids ...uuid.UUID) *TargetUpdateOne {
	_u.mutation.AddScanIDs(ids...)
	return _u
}

// AddScans adds the "scans" edges to the ScanResult entity.
func (_u *TargetUpdateOne) AddScans(v ...*ScanResult) *TargetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScanIDs(ids...)
}

// Mutation returns the TargetMutation object of the builder.
func (_u *TargetUpdateOne) Mutation() *TargetMutation {
	return _u.mutation
}

// ClearScans clears all "scans" edges to the ScanResult entity.
func (_u *TargetUpdateOne) ClearScans() *TargetUpdateOne {
	_u.mutation.ClearScans()
	return _u
}

// RemoveScanIDs removes the "scans" edge to ScanResult entities by IDs.
func (_u *TargetUpdateOne) RemoveScanIDs(ids ...uuid.UUID) *TargetUpdateOne {
	_u.mutation.RemoveScanIDs(ids...)
	return _u
}

// RemoveScans removes "scans" edges to ScanResult entities.
func (_u *TargetUpdateOne) RemoveScans(v ...*ScanResult) *TargetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScanIDs(ids...)
}

// Where appends a list predicates to the TargetUpdate builder.
func (_u *TargetUpdateOne) Where(ps ...predicate.Target) *TargetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TargetUpdateOne) Select(field string, fields ...string) *TargetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Target entity.
func (_u *TargetUpdateOne) Save(ctx context.Context) (*Target, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TargetUpdateOne) SaveX(ctx context.Context) *Target {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TargetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TargetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TargetUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := target.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Target.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := target.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Target.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Schedule(); ok {
		if err := target.ScheduleValidator(v); err != nil {
			return &ValidationError{Name: "schedule", err: fmt.Errorf(`ent: validator failed for field "Target.schedule": %w`, err)}
		}
	}
	return nil
}

func (_u *TargetUpdateOne) sqlSave(ctx context.Context) (_node *Target, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(target.Table, target.Columns, sqlgraph.NewFieldSpec(target.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Target.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, target.FieldID)
		for _, f := range fields {
			if !target.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != target.FieldID {
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
		_spec.SetField(target.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(target.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(target.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(target.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(target.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(target.FieldSchedule, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(target.FieldCustomFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCustomFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, target.FieldCustomFields, value)
		})
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(target.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(target.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MasterData(); ok {
		_spec.SetField(target.FieldMasterData, field.TypeString, value)
	}
	if _u.mutation.MasterDataCleared() {
		_spec.ClearField(target.FieldMasterData, field.TypeString)
	}
	if _u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   target.ScansTable,
			Columns: []string{target.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScansIDs(); len(nodes) > 0 && !_u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   target.ScansTable,
			Columns: []string{target.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   target.ScansTable,
			Columns: []string{target.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Target{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{target.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
