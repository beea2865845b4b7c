// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/marketlens/marketlens/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/marketlens/marketlens/gen/ent/proposedtarget"
	"github.com/marketlens/marketlens/gen/ent/scanresult"
	"github.com/marketlens/marketlens/gen/ent/target"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ProposedTarget is the client for interacting with the ProposedTarget builders.
	ProposedTarget *ProposedTargetClient
	// ScanResult is the client for interacting with the ScanResult builders.
	ScanResult *ScanResultClient
	// Target is the client for interacting with the Target builders.
	Target *TargetClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ProposedTarget = NewProposedTargetClient(c.config)
	c.ScanResult = NewScanResultClient(c.config)
	c.Target = NewTargetClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ProposedTarget: NewProposedTargetClient(cfg),
		ScanResult:     NewScanResultClient(cfg),
		Target:         NewTargetClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ProposedTarget: NewProposedTargetClient(cfg),
		ScanResult:     NewScanResultClient(cfg),
		Target:         NewTargetClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ProposedTarget.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ProposedTarget.Use(hooks...)
	c.ScanResult.Use(hooks...)
	c.Target.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ProposedTarget.Intercept(interceptors...)
	c.ScanResult.Intercept(interceptors...)
	c.Target.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ProposedTargetMutation:
		return c.ProposedTarget.mutate(ctx, m)
	case *ScanResultMutation:
		return c.ScanResult.mutate(ctx, m)
	case *TargetMutation:
		return c.Target.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ProposedTargetClient is a client for the ProposedTarget schema.
type ProposedTargetClient struct {
	config
}

// NewProposedTargetClient returns a client for the ProposedTarget from the given config.
func NewProposedTargetClient(c config) *ProposedTargetClient {
	return &ProposedTargetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposedtarget.Hooks(f(g(h())))`.
func (c *ProposedTargetClient) Use(hooks ...Hook) {
	c.hooks.ProposedTarget = append(c.hooks.ProposedTarget, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposedtarget.Intercept(f(g(h())))`.
func (c *ProposedTargetClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProposedTarget = append(c.inters.ProposedTarget, interceptors...)
}

// Create returns a builder for creating a ProposedTarget entity.
func (c *ProposedTargetClient) Create() *ProposedTargetCreate {
	mutation := newProposedTargetMutation(c.config, OpCreate)
	return &ProposedTargetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProposedTarget entities.
func (c *ProposedTargetClient) CreateBulk(builders ...*ProposedTargetCreate) *ProposedTargetCreateBulk {
	return &ProposedTargetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposedTargetClient) MapCreateBulk(slice any, setFunc func(*ProposedTargetCreate, int)) *ProposedTargetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposedTargetCreateBulk{err: fmt.Errorf("calling to ProposedTargetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposedTargetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposedTargetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProposedTarget.
func (c *ProposedTargetClient) Update() *ProposedTargetUpdate {
	mutation := newProposedTargetMutation(c.config, OpUpdate)
	return &ProposedTargetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposedTargetClient) UpdateOne(_m *ProposedTarget) *ProposedTargetUpdateOne {
	mutation := newProposedTargetMutation(c.config, OpUpdateOne, withProposedTarget(_m))
	return &ProposedTargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposedTargetClient) UpdateOneID(id uuid.UUID) *ProposedTargetUpdateOne {
	mutation := newProposedTargetMutation(c.config, OpUpdateOne, withProposedTargetID(id))
	return &ProposedTargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProposedTarget.
func (c *ProposedTargetClient) Delete() *ProposedTargetDelete {
	mutation := newProposedTargetMutation(c.config, OpDelete)
	return &ProposedTargetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposedTargetClient) DeleteOne(_m *ProposedTarget) *ProposedTargetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposedTargetClient) DeleteOneID(id uuid.UUID) *ProposedTargetDeleteOne {
	builder := c.Delete().Where(proposedtarget.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposedTargetDeleteOne{builder}
}

// Query returns a query builder for ProposedTarget.
func (c *ProposedTargetClient) Query() *ProposedTargetQuery {
	return &ProposedTargetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposedTarget},
		inters: c.Interceptors(),
	}
}

// Get returns a ProposedTarget entity by its id.
func (c *ProposedTargetClient) Get(ctx context.Context, id uuid.UUID) (*ProposedTarget, error) {
	return c.Query().Where(proposedtarget.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposedTargetClient) GetX(ctx context.Context, id uuid.UUID) *ProposedTarget {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProposedTargetClient) Hooks() []Hook {
	return c.hooks.ProposedTarget
}

// Interceptors returns the client interceptors.
func (c *ProposedTargetClient) Interceptors() []Interceptor {
	return c.inters.ProposedTarget
}

func (c *ProposedTargetClient) mutate(ctx context.Context, m *ProposedTargetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposedTargetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposedTargetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposedTargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposedTargetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProposedTarget mutation op: %q", m.Op())
	}
}

// ScanResultClient is a client for the ScanResult schema.
type ScanResultClient struct {
	config
}

// NewScanResultClient returns a client for the ScanResult from the given config.
func NewScanResultClient(c config) *ScanResultClient {
	return &ScanResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanresult.Hooks(f(g(h())))`.
func (c *ScanResultClient) Use(hooks ...Hook) {
	c.hooks.ScanResult = append(c.hooks.ScanResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanresult.Intercept(f(g(h())))`.
func (c *ScanResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanResult = append(c.inters.ScanResult, interceptors...)
}

// Create returns a builder for creating a ScanResult entity.
func (c *ScanResultClient) Create() *ScanResultCreate {
	mutation := newScanResultMutation(c.config, OpCreate)
	return &ScanResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanResult entities.
func (c *ScanResultClient) CreateBulk(builders ...*ScanResultCreate) *ScanResultCreateBulk {
	return &ScanResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanResultClient) MapCreateBulk(slice any, setFunc func(*ScanResultCreate, int)) *ScanResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanResultCreateBulk{err: fmt.Errorf("calling to ScanResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanResult.
func (c *ScanResultClient) Update() *ScanResultUpdate {
	mutation := newScanResultMutation(c.config, OpUpdate)
	return &ScanResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanResultClient) UpdateOne(_m *ScanResult) *ScanResultUpdateOne {
	mutation := newScanResultMutation(c.config, OpUpdateOne, withScanResult(_m))
	return &ScanResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanResultClient) UpdateOneID(id uuid.UUID) *ScanResultUpdateOne {
	mutation := newScanResultMutation(c.config, OpUpdateOne, withScanResultID(id))
	return &ScanResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanResult.
func (c *ScanResultClient) Delete() *ScanResultDelete {
	mutation := newScanResultMutation(c.config, OpDelete)
	return &ScanResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanResultClient) DeleteOne(_m *ScanResult) *ScanResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanResultClient) DeleteOneID(id uuid.UUID) *ScanResultDeleteOne {
	builder := c.Delete().Where(scanresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanResultDeleteOne{builder}
}

// Query returns a query builder for ScanResult.
func (c *ScanResultClient) Query() *ScanResultQuery {
	return &ScanResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanResult entity by its id.
func (c *ScanResultClient) Get(ctx context.Context, id uuid.UUID) (*ScanResult, error) {
	return c.Query().Where(scanresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanResultClient) GetX(ctx context.Context, id uuid.UUID) *ScanResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTarget queries the target edge of a ScanResult.
func (c *ScanResultClient) QueryTarget(_m *ScanResult) *TargetQuery {
	query := (&TargetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanresult.Table, scanresult.FieldID, id),
			sqlgraph.To(target.Table, target.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scanresult.TargetTable, scanresult.TargetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScanResultClient) Hooks() []Hook {
	return c.hooks.ScanResult
}

// Interceptors returns the client interceptors.
func (c *ScanResultClient) Interceptors() []Interceptor {
	return c.inters.ScanResult
}

func (c *ScanResultClient) mutate(ctx context.Context, m *ScanResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScanResult mutation op: %q", m.Op())
	}
}

// TargetClient is a client for the Target schema.
type TargetClient struct {
	config
}

// NewTargetClient returns a client for the Target from the given config.
func NewTargetClient(c config) *TargetClient {
	return &TargetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `target.Hooks(f(g(h())))`.
func (c *TargetClient) Use(hooks ...Hook) {
	c.hooks.Target = append(c.hooks.Target, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `target.Intercept(f(g(h())))`.
func (c *TargetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Target = append(c.inters.Target, interceptors...)
}

// Create returns a builder for creating a Target entity.
func (c *TargetClient) Create() *TargetCreate {
	mutation := newTargetMutation(c.config, OpCreate)
	return &TargetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Target entities.
func (c *TargetClient) CreateBulk(builders ...*TargetCreate) *TargetCreateBulk {
	return &TargetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TargetClient) MapCreateBulk(slice any, setFunc func(*TargetCreate, int)) *TargetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TargetCreateBulk{err: fmt.Errorf("calling to TargetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TargetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TargetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Target.
func (c *TargetClient) Update() *TargetUpdate {
	mutation := newTargetMutation(c.config, OpUpdate)
	return &TargetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TargetClient) UpdateOne(_m *Target) *TargetUpdateOne {
	mutation := newTargetMutation(c.config, OpUpdateOne, withTarget(_m))
	return &TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TargetClient) UpdateOneID(id uuid.UUID) *TargetUpdateOne {
	mutation := newTargetMutation(c.config, OpUpdateOne, withTargetID(id))
	return &TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Target.
func (c *TargetClient) Delete() *TargetDelete {
	mutation := newTargetMutation(c.config, OpDelete)
	return &TargetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TargetClient) DeleteOne(_m *Target) *TargetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TargetClient) DeleteOneID(id uuid.UUID) *TargetDeleteOne {
	builder := c.Delete().Where(target.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TargetDeleteOne{builder}
}

// Query returns a query builder for Target.
func (c *TargetClient) Query() *TargetQuery {
	return &TargetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTarget},
		inters: c.Interceptors(),
	}
}

// Get returns a Target entity by its id.
func (c *TargetClient) Get(ctx context.Context, id uuid.UUID) (*Target, error) {
	return c.Query().Where(target.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TargetClient) GetX(ctx context.Context, id uuid.UUID) *Target {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScans queries the scans edge of a Target.
func (c *TargetClient) QueryScans(_m *Target) *ScanResultQuery {
	query := (&ScanResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(target.Table, target.FieldID, id),
			sqlgraph.To(scanresult.Table, scanresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, target.ScansTable, target.ScansColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TargetClient) Hooks() []Hook {
	return c.hooks.Target
}

// Interceptors returns the client interceptors.
func (c *TargetClient) Interceptors() []Interceptor {
	return c.inters.Target
}

func (c *TargetClient) mutate(ctx context.Context, m *TargetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TargetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TargetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TargetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Target mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ProposedTarget, ScanResult, Target []ent.Hook
	}
	inters struct {
		ProposedTarget, ScanResult, Target []ent.Interceptor
	}
)
