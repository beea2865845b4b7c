// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/marketlens/marketlens/gen/ent/predicate"
	"github.com/marketlens/marketlens/gen/ent/proposedtarget"
	"github.com/marketlens/marketlens/gen/ent/scanresult"
	"github.com/marketlens/marketlens/gen/ent/target"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProposedTarget = "ProposedTarget"
	TypeScanResult     = "ScanResult"
	TypeTarget         = "Target"
)

// ProposedTargetMutation represents an operation that mutates the ProposedTarget nodes in the graph.
type ProposedTargetMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_id       *uuid.UUID
	url           *string
	title         *string
	description   *string
	source_prompt *string
	status        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProposedTarget, error)
	predicates    []predicate.ProposedTarget
}

var _ ent.Mutation = (*ProposedTargetMutation)(nil)

// proposedtargetOption allows management of the mutation configuration using functional options.
type proposedtargetOption func(*ProposedTargetMutation)

// newProposedTargetMutation creates new mutation for the ProposedTarget entity.
func newProposedTargetMutation(c config, op Op, opts ...proposedtargetOption) *ProposedTargetMutation {
	m := &ProposedTargetMutation{
		config:        c,
		op:            op,
		typ:           TypeProposedTarget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposedTargetID sets the ID field of the mutation.
func withProposedTargetID(id uuid.UUID) proposedtargetOption {
	return func(m *ProposedTargetMutation) {
		var (
			err   error
			once  sync.Once
			value *ProposedTarget
		)
		m.oldValue = func(ctx context.Context) (*ProposedTarget, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProposedTarget.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposedTarget sets the old ProposedTarget of the mutation.
func withProposedTarget(node *ProposedTarget) proposedtargetOption {
	return func(m *ProposedTargetMutation) {
		m.oldValue = func(context.Context) (*ProposedTarget, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposedTargetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposedTargetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProposedTarget entities.
func (m *ProposedTargetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposedTargetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposedTargetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProposedTarget.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProposedTargetMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProposedTargetMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProposedTarget entity.
// If the ProposedTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposedTargetMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProposedTargetMutation) ResetUserID() {
	m.user_id = nil
}

// SetURL sets the "url" field.
func (m *ProposedTargetMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ProposedTargetMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ProposedTarget entity.
// If the ProposedTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposedTargetMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ProposedTargetMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *ProposedTargetMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProposedTargetMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ProposedTarget entity.
// If the ProposedTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposedTargetMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ProposedTargetMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ProposedTargetMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProposedTargetMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ProposedTarget entity.
// If the ProposedTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposedTargetMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProposedTargetMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[proposedtarget.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProposedTargetMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[proposedtarget.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProposedTargetMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, proposedtarget.FieldDescription)
}

// SetSourcePrompt sets the "source_prompt" field.
func (m *ProposedTargetMutation) SetSourcePrompt(s string) {
	m.source_prompt = &s
}

// SourcePrompt returns the value of the "source_prompt" field in the mutation.
func (m *ProposedTargetMutation) SourcePrompt() (r string, exists bool) {
	v := m.source_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePrompt returns the old "source_prompt" field's value of the ProposedTarget entity.
// If the ProposedTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposedTargetMutation) OldSourcePrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePrompt: %w", err)
	}
	return oldValue.SourcePrompt, nil
}

// ResetSourcePrompt resets all changes to the "source_prompt" field.
func (m *ProposedTargetMutation) ResetSourcePrompt() {
	m.source_prompt = nil
}

// SetStatus sets the "status" field.
func (m *ProposedTargetMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProposedTargetMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProposedTarget entity.
// If the ProposedTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposedTargetMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProposedTargetMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProposedTargetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProposedTargetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProposedTarget entity.
// If the ProposedTarget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposedTargetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProposedTargetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProposedTargetMutation builder.
func (m *ProposedTargetMutation) Where(ps ...predicate.ProposedTarget) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposedTargetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposedTargetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProposedTarget, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposedTargetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposedTargetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProposedTarget).
func (m *ProposedTargetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposedTargetMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, proposedtarget.FieldUserID)
	}
	if m.url != nil {
		fields = append(fields, proposedtarget.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, proposedtarget.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, proposedtarget.FieldDescription)
	}
	if m.source_prompt != nil {
		fields = append(fields, proposedtarget.FieldSourcePrompt)
	}
	if m.status != nil {
		fields = append(fields, proposedtarget.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, proposedtarget.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposedTargetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposedtarget.FieldUserID:
		return m.UserID()
	case proposedtarget.FieldURL:
		return m.URL()
	case proposedtarget.FieldTitle:
		return m.Title()
	case proposedtarget.FieldDescription:
		return m.Description()
	case proposedtarget.FieldSourcePrompt:
		return m.SourcePrompt()
	case proposedtarget.FieldStatus:
		return m.Status()
	case proposedtarget.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposedTargetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposedtarget.FieldUserID:
		return m.OldUserID(ctx)
	case proposedtarget.FieldURL:
		return m.OldURL(ctx)
	case proposedtarget.FieldTitle:
		return m.OldTitle(ctx)
	case proposedtarget.FieldDescription:
		return m.OldDescription(ctx)
	case proposedtarget.FieldSourcePrompt:
		return m.OldSourcePrompt(ctx)
	case proposedtarget.FieldStatus:
		return m.OldStatus(ctx)
	case proposedtarget.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProposedTarget field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposedTargetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposedtarget.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case proposedtarget.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case proposedtarget.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case proposedtarget.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case proposedtarget.FieldSourcePrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePrompt(v)
		return nil
	case proposedtarget.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case proposedtarget.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProposedTarget field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposedTargetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposedTargetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposedTargetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProposedTarget numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposedTargetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proposedtarget.FieldDescription) {
		fields = append(fields, proposedtarget.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposedTargetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposedTargetMutation) ClearField(name string) error {
	switch name {
	case proposedtarget.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ProposedTarget nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposedTargetMutation) ResetField(name string) error {
	switch name {
	case proposedtarget.FieldUserID:
		m.ResetUserID()
		return nil
	case proposedtarget.FieldURL:
		m.ResetURL()
		return nil
	case proposedtarget.FieldTitle:
		m.ResetTitle()
		return nil
	case proposedtarget.FieldDescription:
		m.ResetDescription()
		return nil
	case proposedtarget.FieldSourcePrompt:
		m.ResetSourcePrompt()
		return nil
	case proposedtarget.FieldStatus:
		m.ResetStatus()
		return nil
	case proposedtarget.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProposedTarget field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposedTargetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposedTargetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposedTargetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposedTargetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposedTargetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposedTargetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposedTargetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProposedTarget unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposedTargetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProposedTarget edge %s", name)
}

// ScanResultMutation represents an operation that mutates the ScanResult nodes in the graph.
type ScanResultMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	status         *string
	content        *string
	extracted_data *string
	screenshot     *string
	error_message  *string
	review_status  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	target         *uuid.UUID
	clearedtarget  bool
	done           bool
	oldValue       func(context.Context) (*ScanResult, error)
	predicates     []predicate.ScanResult
}

var _ ent.Mutation = (*ScanResultMutation)(nil)

// scanresultOption allows management of the mutation configuration using functional options.
type scanresultOption func(*ScanResultMutation)

// newScanResultMutation creates new mutation for the ScanResult entity.
func newScanResultMutation(c config, op Op, opts ...scanresultOption) *ScanResultMutation {
	m := &ScanResultMutation{
		config:        c,
		op:            op,
		typ:           TypeScanResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanResultID sets the ID field of the mutation.
func withScanResultID(id uuid.UUID) scanresultOption {
	return func(m *ScanResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanResult
		)
		m.oldValue = func(ctx context.Context) (*ScanResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanResult sets the old ScanResult of the mutation.
func withScanResult(node *ScanResult) scanresultOption {
	return func(m *ScanResultMutation) {
		m.oldValue = func(context.Context) (*ScanResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanResult entities.
func (m *ScanResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTargetID sets the "target_id" field.
func (m *ScanResultMutation) SetTargetID(u uuid.UUID) {
	m.target = &u
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *ScanResultMutation) TargetID() (r uuid.UUID, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the ScanResult entity.
// If the ScanResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanResultMutation) OldTargetID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *ScanResultMutation) ResetTargetID() {
	m.target = nil
}

// SetStatus sets the "status" field.
func (m *ScanResultMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScanResultMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScanResult entity.
// If the ScanResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanResultMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScanResultMutation) ResetStatus() {
	m.status = nil
}

// SetContent sets the "content" field.
func (m *ScanResultMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ScanResultMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ScanResult entity.
// If the ScanResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanResultMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *ScanResultMutation) ClearContent() {
	m.content = nil
	m.clearedFields[scanresult.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *ScanResultMutation) ContentCleared() bool {
	_, ok := m.clearedFields[scanresult.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *ScanResultMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, scanresult.FieldContent)
}

// SetExtractedData sets the "extracted_data" field.
func (m *ScanResultMutation) SetExtractedData(s string) {
	m.extracted_data = &s
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *ScanResultMutation) ExtractedData() (r string, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the ScanResult entity.
// If the ScanResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanResultMutation) OldExtractedData(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *ScanResultMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.clearedFields[scanresult.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *ScanResultMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[scanresult.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *ScanResultMutation) ResetExtractedData() {
	m.extracted_data = nil
	delete(m.clearedFields, scanresult.FieldExtractedData)
}

// SetScreenshot sets the "screenshot" field.
func (m *ScanResultMutation) SetScreenshot(s string) {
	m.screenshot = &s
}

// Screenshot returns the value of the "screenshot" field in the mutation.
func (m *ScanResultMutation) Screenshot() (r string, exists bool) {
	v := m.screenshot
	if v == nil {
		return
	}
	return *v, true
}

// OldScreenshot returns the old "screenshot" field's value of the ScanResult entity.
// If the ScanResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanResultMutation) OldScreenshot(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreenshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreenshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreenshot: %w", err)
	}
	return oldValue.Screenshot, nil
}

// ClearScreenshot clears the value of the "screenshot" field.
func (m *ScanResultMutation) ClearScreenshot() {
	m.screenshot = nil
	m.clearedFields[scanresult.FieldScreenshot] = struct{}{}
}

// ScreenshotCleared returns if the "screenshot" field was cleared in this mutation.
func (m *ScanResultMutation) ScreenshotCleared() bool {
	_, ok := m.clearedFields[scanresult.FieldScreenshot]
	return ok
}

// ResetScreenshot resets all changes to the "screenshot" field.
func (m *ScanResultMutation) ResetScreenshot() {
	m.screenshot = nil
	delete(m.clearedFields, scanresult.FieldScreenshot)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScanResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScanResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScanResult entity.
// If the ScanResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanResultMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScanResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scanresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScanResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scanresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScanResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scanresult.FieldErrorMessage)
}

// SetReviewStatus sets the "review_status" field.
func (m *ScanResultMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *ScanResultMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the ScanResult entity.
// If the ScanResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanResultMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *ScanResultMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScanResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScanResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScanResult entity.
// If the ScanResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScanResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTarget clears the "target" edge to the Target entity.
func (m *ScanResultMutation) ClearTarget() {
	m.clearedtarget = true
	m.clearedFields[scanresult.FieldTargetID] = struct{}{}
}

// TargetCleared reports if the "target" edge to the Target entity was cleared.
func (m *ScanResultMutation) TargetCleared() bool {
	return m.clearedtarget
}

// TargetIDs returns the "target" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TargetID instead. It exists only for internal usage by the builders.
func (m *ScanResultMutation) TargetIDs() (ids []uuid.UUID) {
	if id := m.target; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTarget resets all changes to the "target" edge.
func (m *ScanResultMutation) ResetTarget() {
	m.target = nil
	m.clearedtarget = false
}

// Where appends a list predicates to the ScanResultMutation builder.
func (m *ScanResultMutation) Where(ps ...predicate.ScanResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanResult).
func (m *ScanResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanResultMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.target != nil {
		fields = append(fields, scanresult.FieldTargetID)
	}
	if m.status != nil {
		fields = append(fields, scanresult.FieldStatus)
	}
	if m.content != nil {
		fields = append(fields, scanresult.FieldContent)
	}
	if m.extracted_data != nil {
		fields = append(fields, scanresult.FieldExtractedData)
	}
	if m.screenshot != nil {
		fields = append(fields, scanresult.FieldScreenshot)
	}
	if m.error_message != nil {
		fields = append(fields, scanresult.FieldErrorMessage)
	}
	if m.review_status != nil {
		fields = append(fields, scanresult.FieldReviewStatus)
	}
	if m.created_at != nil {
		fields = append(fields, scanresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanresult.FieldTargetID:
		return m.TargetID()
	case scanresult.FieldStatus:
		return m.Status()
	case scanresult.FieldContent:
		return m.Content()
	case scanresult.FieldExtractedData:
		return m.ExtractedData()
	case scanresult.FieldScreenshot:
		return m.Screenshot()
	case scanresult.FieldErrorMessage:
		return m.ErrorMessage()
	case scanresult.FieldReviewStatus:
		return m.ReviewStatus()
	case scanresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanresult.FieldTargetID:
		return m.OldTargetID(ctx)
	case scanresult.FieldStatus:
		return m.OldStatus(ctx)
	case scanresult.FieldContent:
		return m.OldContent(ctx)
	case scanresult.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case scanresult.FieldScreenshot:
		return m.OldScreenshot(ctx)
	case scanresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scanresult.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case scanresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScanResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanresult.FieldTargetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case scanresult.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scanresult.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case scanresult.FieldExtractedData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case scanresult.FieldScreenshot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreenshot(v)
		return nil
	case scanresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scanresult.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case scanresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScanResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScanResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanresult.FieldContent) {
		fields = append(fields, scanresult.FieldContent)
	}
	if m.FieldCleared(scanresult.FieldExtractedData) {
		fields = append(fields, scanresult.FieldExtractedData)
	}
	if m.FieldCleared(scanresult.FieldScreenshot) {
		fields = append(fields, scanresult.FieldScreenshot)
	}
	if m.FieldCleared(scanresult.FieldErrorMessage) {
		fields = append(fields, scanresult.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanResultMutation) ClearField(name string) error {
	switch name {
	case scanresult.FieldContent:
		m.ClearContent()
		return nil
	case scanresult.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case scanresult.FieldScreenshot:
		m.ClearScreenshot()
		return nil
	case scanresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScanResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanResultMutation) ResetField(name string) error {
	switch name {
	case scanresult.FieldTargetID:
		m.ResetTargetID()
		return nil
	case scanresult.FieldStatus:
		m.ResetStatus()
		return nil
	case scanresult.FieldContent:
		m.ResetContent()
		return nil
	case scanresult.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case scanresult.FieldScreenshot:
		m.ResetScreenshot()
		return nil
	case scanresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scanresult.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case scanresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScanResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.target != nil {
		edges = append(edges, scanresult.EdgeTarget)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scanresult.EdgeTarget:
		if id := m.target; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtarget {
		edges = append(edges, scanresult.EdgeTarget)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanResultMutation) EdgeCleared(name string) bool {
	switch name {
	case scanresult.EdgeTarget:
		return m.clearedtarget
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanResultMutation) ClearEdge(name string) error {
	switch name {
	case scanresult.EdgeTarget:
		m.ClearTarget()
		return nil
	}
	return fmt.Errorf("unknown ScanResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanResultMutation) ResetEdge(name string) error {
	switch name {
	case scanresult.EdgeTarget:
		m.ResetTarget()
		return nil
	}
	return fmt.Errorf("unknown ScanResult edge %s", name)
}

// TargetMutation represents an operation that mutates the Target nodes in the graph.
type TargetMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	user_id             *uuid.UUID
	url                 *string
	name                *string
	prompt              *string
	schedule            *string
	custom_fields       *[]string
	appendcustom_fields []string
	active              *bool
	master_data         *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	scans               map[uuid.UUID]struct{}
	removedscans        map[uuid.UUID]struct{}
	clearedscans        bool
	done                bool
	oldValue            func(context.Context) (*Target, error)
	predicates          []predicate.Target
}

var _ ent.Mutation = (*TargetMutation)(nil)

// targetOption allows management of the mutation configuration using functional options.
type targetOption func(*TargetMutation)

// newTargetMutation creates new mutation for the Target entity.
func newTargetMutation(c config, op Op, opts ...targetOption) *TargetMutation {
	m := &TargetMutation{
		config:        c,
		op:            op,
		typ:           TypeTarget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTargetID sets the ID field of the mutation.
func withTargetID(id uuid.UUID) targetOption {
	return func(m *TargetMutation) {
		var (
			err   error
			once  sync.Once
			value *Target
		)
		m.oldValue = func(ctx context.Context) (*Target, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Target.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTarget sets the old Target of the mutation.
func withTarget(node *Target) targetOption {
	return func(m *TargetMutation) {
		m.oldValue = func(context.Context) (*Target, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TargetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TargetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Target entities.
func (m *TargetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TargetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TargetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Target.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TargetMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TargetMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TargetMutation) ResetUserID() {
	m.user_id = nil
}

// SetURL sets the "url" field.
func (m *TargetMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *TargetMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *TargetMutation) ResetURL() {
	m.url = nil
}

// SetName sets the "name" field.
func (m *TargetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TargetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TargetMutation) ResetName() {
	m.name = nil
}

// SetPrompt sets the "prompt" field.
func (m *TargetMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TargetMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *TargetMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[target.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *TargetMutation) PromptCleared() bool {
	_, ok := m.clearedFields[target.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TargetMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, target.FieldPrompt)
}

// SetSchedule sets the "schedule" field.
func (m *TargetMutation) SetSchedule(s string) {
	m.schedule = &s
}

// Schedule returns the value of the "schedule" field in the mutation.
func (m *TargetMutation) Schedule() (r string, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedule returns the old "schedule" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldSchedule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedule: %w", err)
	}
	return oldValue.Schedule, nil
}

// ResetSchedule resets all changes to the "schedule" field.
func (m *TargetMutation) ResetSchedule() {
	m.schedule = nil
}

// SetCustomFields sets the "custom_fields" field.
func (m *TargetMutation) SetCustomFields(s []string) {
	m.custom_fields = &s
	m.appendcustom_fields = nil
}

// CustomFields returns the value of the "custom_fields" field in the mutation.
func (m *TargetMutation) CustomFields() (r []string, exists bool) {
	v := m.custom_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomFields returns the old "custom_fields" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldCustomFields(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomFields: %w", err)
	}
	return oldValue.CustomFields, nil
}

// AppendCustomFields adds s to the "custom_fields" field.
func (m *TargetMutation) AppendCustomFields(s []string) {
	m.appendcustom_fields = append(m.appendcustom_fields, s...)
}

// AppendedCustomFields returns the list of values that were appended to the "custom_fields" field in this mutation.
func (m *TargetMutation) AppendedCustomFields() ([]string, bool) {
	if len(m.appendcustom_fields) == 0 {
		return nil, false
	}
	return m.appendcustom_fields, true
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (m *TargetMutation) ClearCustomFields() {
	m.custom_fields = nil
	m.appendcustom_fields = nil
	m.clearedFields[target.FieldCustomFields] = struct{}{}
}

// CustomFieldsCleared returns if the "custom_fields" field was cleared in this mutation.
func (m *TargetMutation) CustomFieldsCleared() bool {
	_, ok := m.clearedFields[target.FieldCustomFields]
	return ok
}

// ResetCustomFields resets all changes to the "custom_fields" field.
func (m *TargetMutation) ResetCustomFields() {
	m.custom_fields = nil
	m.appendcustom_fields = nil
	delete(m.clearedFields, target.FieldCustomFields)
}

// SetActive sets the "active" field.
func (m *TargetMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *TargetMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *TargetMutation) ResetActive() {
	m.active = nil
}

// SetMasterData sets the "master_data" field.
func (m *TargetMutation) SetMasterData(s string) {
	m.master_data = &s
}

// MasterData returns the value of the "master_data" field in the mutation.
func (m *TargetMutation) MasterData() (r string, exists bool) {
	v := m.master_data
	if v == nil {
		return
	}
	return *v, true
}

// OldMasterData returns the old "master_data" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldMasterData(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasterData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasterData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasterData: %w", err)
	}
	return oldValue.MasterData, nil
}

// ClearMasterData clears the value of the "master_data" field.
func (m *TargetMutation) ClearMasterData() {
	m.master_data = nil
	m.clearedFields[target.FieldMasterData] = struct{}{}
}

// MasterDataCleared returns if the "master_data" field was cleared in this mutation.
func (m *TargetMutation) MasterDataCleared() bool {
	_, ok := m.clearedFields[target.FieldMasterData]
	return ok
}

// ResetMasterData resets all changes to the "master_data" field.
func (m *TargetMutation) ResetMasterData() {
	m.master_data = nil
	delete(m.clearedFields, target.FieldMasterData)
}

// SetCreatedAt sets the "created_at" field.
func (m *TargetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TargetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TargetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddScanIDs adds the "scans" edge to the ScanResult entity by ids.
func (m *TargetMutation) AddScanIDs(ids ...uuid.UUID) {
	if m.scans == nil {
		m.scans = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.scans[ids[i]] = struct{}{}
	}
}

// ClearScans clears the "scans" edge to the ScanResult entity.
func (m *TargetMutation) ClearScans() {
	m.clearedscans = true
}

// ScansCleared reports if the "scans" edge to the ScanResult entity was cleared.
func (m *TargetMutation) ScansCleared() bool {
	return m.clearedscans
}

// RemoveScanIDs removes the "scans" edge to the ScanResult entity by IDs.
func (m *TargetMutation) RemoveScanIDs(ids ...uuid.UUID) {
	if m.removedscans == nil {
		m.removedscans = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.scans, ids[i])
		m.removedscans[ids[i]] = struct{}{}
	}
}

// RemovedScans returns the removed IDs of the "scans" edge to the ScanResult entity.
func (m *TargetMutation) RemovedScansIDs() (ids []uuid.UUID) {
	for id := range m.removedscans {
		ids = append(ids, id)
	}
	return
}

// ScansIDs returns the "scans" edge IDs in the mutation.
func (m *TargetMutation) ScansIDs() (ids []uuid.UUID) {
	for id := range m.scans {
		ids = append(ids, id)
	}
	return
}

// ResetScans resets all changes to the "scans" edge.
func (m *TargetMutation) ResetScans() {
	m.scans = nil
	m.clearedscans = false
	m.removedscans = nil
}

// Where appends a list predicates to the TargetMutation builder.
func (m *TargetMutation) Where(ps ...predicate.Target) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TargetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TargetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Target, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TargetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TargetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Target).
func (m *TargetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TargetMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, target.FieldUserID)
	}
	if m.url != nil {
		fields = append(fields, target.FieldURL)
	}
	if m.name != nil {
		fields = append(fields, target.FieldName)
	}
	if m.prompt != nil {
		fields = append(fields, target.FieldPrompt)
	}
	if m.schedule != nil {
		fields = append(fields, target.FieldSchedule)
	}
	if m.custom_fields != nil {
		fields = append(fields, target.FieldCustomFields)
	}
	if m.active != nil {
		fields = append(fields, target.FieldActive)
	}
	if m.master_data != nil {
		fields = append(fields, target.FieldMasterData)
	}
	if m.created_at != nil {
		fields = append(fields, target.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TargetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case target.FieldUserID:
		return m.UserID()
	case target.FieldURL:
		return m.URL()
	case target.FieldName:
		return m.Name()
	case target.FieldPrompt:
		return m.Prompt()
	case target.FieldSchedule:
		return m.Schedule()
	case target.FieldCustomFields:
		return m.CustomFields()
	case target.FieldActive:
		return m.Active()
	case target.FieldMasterData:
		return m.MasterData()
	case target.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TargetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case target.FieldUserID:
		return m.OldUserID(ctx)
	case target.FieldURL:
		return m.OldURL(ctx)
	case target.FieldName:
		return m.OldName(ctx)
	case target.FieldPrompt:
		return m.OldPrompt(ctx)
	case target.FieldSchedule:
		return m.OldSchedule(ctx)
	case target.FieldCustomFields:
		return m.OldCustomFields(ctx)
	case target.FieldActive:
		return m.OldActive(ctx)
	case target.FieldMasterData:
		return m.OldMasterData(ctx)
	case target.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Target field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TargetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case target.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case target.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case target.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case target.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case target.FieldSchedule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedule(v)
		return nil
	case target.FieldCustomFields:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomFields(v)
		return nil
	case target.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case target.FieldMasterData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasterData(v)
		return nil
	case target.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Target field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TargetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TargetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TargetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Target numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TargetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(target.FieldPrompt) {
		fields = append(fields, target.FieldPrompt)
	}
	if m.FieldCleared(target.FieldCustomFields) {
		fields = append(fields, target.FieldCustomFields)
	}
	if m.FieldCleared(target.FieldMasterData) {
		fields = append(fields, target.FieldMasterData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TargetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TargetMutation) ClearField(name string) error {
	switch name {
	case target.FieldPrompt:
		m.ClearPrompt()
		return nil
	case target.FieldCustomFields:
		m.ClearCustomFields()
		return nil
	case target.FieldMasterData:
		m.ClearMasterData()
		return nil
	}
	return fmt.Errorf("unknown Target nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TargetMutation) ResetField(name string) error {
	switch name {
	case target.FieldUserID:
		m.ResetUserID()
		return nil
	case target.FieldURL:
		m.ResetURL()
		return nil
	case target.FieldName:
		m.ResetName()
		return nil
	case target.FieldPrompt:
		m.ResetPrompt()
		return nil
	case target.FieldSchedule:
		m.ResetSchedule()
		return nil
	case target.FieldCustomFields:
		m.ResetCustomFields()
		return nil
	case target.FieldActive:
		m.ResetActive()
		return nil
	case target.FieldMasterData:
		m.ResetMasterData()
		return nil
	case target.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Target field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TargetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scans != nil {
		edges = append(edges, target.EdgeScans)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TargetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case target.EdgeScans:
		ids := make([]ent.Value, 0, len(m.scans))
		for id := range m.scans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TargetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedscans != nil {
		edges = append(edges, target.EdgeScans)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TargetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case target.EdgeScans:
		ids := make([]ent.Value, 0, len(m.removedscans))
		for id := range m.removedscans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TargetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscans {
		edges = append(edges, target.EdgeScans)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TargetMutation) EdgeCleared(name string) bool {
	switch name {
	case target.EdgeScans:
		return m.clearedscans
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TargetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Target unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TargetMutation) ResetEdge(name string) error {
	switch name {
	case target.EdgeScans:
		m.ResetScans()
		return nil
	}
	return fmt.Errorf("unknown Target edge %s", name)
}
