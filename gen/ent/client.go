// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/homescribe/listinggen/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/homescribe/listinggen/gen/ent/listingdraft"
	"github.com/homescribe/listinggen/gen/ent/listingrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ListingDraft is the client for interacting with the ListingDraft builders.
	ListingDraft *ListingDraftClient
	// ListingRun is the client for interacting with the ListingRun builders.
	ListingRun *ListingRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ListingDraft = NewListingDraftClient(c.config)
	c.ListingRun = NewListingRunClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		ListingDraft: NewListingDraftClient(cfg),
		ListingRun:   NewListingRunClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		ListingDraft: NewListingDraftClient(cfg),
		ListingRun:   NewListingRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ListingDraft.
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
	c.ListingDraft.Use(hooks...)
	c.ListingRun.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ListingDraft.Intercept(interceptors...)
	c.ListingRun.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ListingDraftMutation:
		return c.ListingDraft.mutate(ctx, m)
	case *ListingRunMutation:
		return c.ListingRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ListingDraftClient is a client for the ListingDraft schema.
type ListingDraftClient struct {
	config
}

// NewListingDraftClient returns a client for the ListingDraft from the given config.
func NewListingDraftClient(c config) *ListingDraftClient {
	return &ListingDraftClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `listingdraft.Hooks(f(g(h())))`.
func (c *ListingDraftClient) Use(hooks ...Hook) {
	c.hooks.ListingDraft = append(c.hooks.ListingDraft, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `listingdraft.Intercept(f(g(h())))`.
func (c *ListingDraftClient) Intercept(interceptors ...Interceptor) {
	c.inters.ListingDraft = append(c.inters.ListingDraft, interceptors...)
}

// Create returns a builder for creating a ListingDraft entity.
func (c *ListingDraftClient) Create() *ListingDraftCreate {
	mutation := newListingDraftMutation(c.config, OpCreate)
	return &ListingDraftCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ListingDraft entities.
func (c *ListingDraftClient) CreateBulk(builders ...*ListingDraftCreate) *ListingDraftCreateBulk {
	return &ListingDraftCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ListingDraftClient) MapCreateBulk(slice any, setFunc func(*ListingDraftCreate, int)) *ListingDraftCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ListingDraftCreateBulk{err: fmt.Errorf("calling to ListingDraftClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ListingDraftCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ListingDraftCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ListingDraft.
func (c *ListingDraftClient) Update() *ListingDraftUpdate {
	mutation := newListingDraftMutation(c.config, OpUpdate)
	return &ListingDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ListingDraftClient) UpdateOne(_m *ListingDraft) *ListingDraftUpdateOne {
	mutation := newListingDraftMutation(c.config, OpUpdateOne, withListingDraft(_m))
	return &ListingDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ListingDraftClient) UpdateOneID(id uuid.UUID) *ListingDraftUpdateOne {
	mutation := newListingDraftMutation(c.config, OpUpdateOne, withListingDraftID(id))
	return &ListingDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ListingDraft.
func (c *ListingDraftClient) Delete() *ListingDraftDelete {
	mutation := newListingDraftMutation(c.config, OpDelete)
	return &ListingDraftDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ListingDraftClient) DeleteOne(_m *ListingDraft) *ListingDraftDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ListingDraftClient) DeleteOneID(id uuid.UUID) *ListingDraftDeleteOne {
	builder := c.Delete().Where(listingdraft.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ListingDraftDeleteOne{builder}
}

// Query returns a query builder for ListingDraft.
func (c *ListingDraftClient) Query() *ListingDraftQuery {
	return &ListingDraftQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeListingDraft},
		inters: c.Interceptors(),
	}
}

// Get returns a ListingDraft entity by its id.
func (c *ListingDraftClient) Get(ctx context.Context, id uuid.UUID) (*ListingDraft, error) {
	return c.Query().Where(listingdraft.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ListingDraftClient) GetX(ctx context.Context, id uuid.UUID) *ListingDraft {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a ListingDraft.
func (c *ListingDraftClient) QueryRun(_m *ListingDraft) *ListingRunQuery {
	query := (&ListingRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(listingdraft.Table, listingdraft.FieldID, id),
			sqlgraph.To(listingrun.Table, listingrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, listingdraft.RunTable, listingdraft.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ListingDraftClient) Hooks() []Hook {
	return c.hooks.ListingDraft
}

// Interceptors returns the client interceptors.
func (c *ListingDraftClient) Interceptors() []Interceptor {
	return c.inters.ListingDraft
}

func (c *ListingDraftClient) mutate(ctx context.Context, m *ListingDraftMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ListingDraftCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ListingDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ListingDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ListingDraftDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ListingDraft mutation op: %q", m.Op())
	}
}

// ListingRunClient is a client for the ListingRun schema.
type ListingRunClient struct {
	config
}

// NewListingRunClient returns a client for the ListingRun from the given config.
func NewListingRunClient(c config) *ListingRunClient {
	return &ListingRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `listingrun.Hooks(f(g(h())))`.
func (c *ListingRunClient) Use(hooks ...Hook) {
	c.hooks.ListingRun = append(c.hooks.ListingRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `listingrun.Intercept(f(g(h())))`.
func (c *ListingRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ListingRun = append(c.inters.ListingRun, interceptors...)
}

// Create returns a builder for creating a ListingRun entity.
func (c *ListingRunClient) Create() *ListingRunCreate {
	mutation := newListingRunMutation(c.config, OpCreate)
	return &ListingRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ListingRun entities.
func (c *ListingRunClient) CreateBulk(builders ...*ListingRunCreate) *ListingRunCreateBulk {
	return &ListingRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ListingRunClient) MapCreateBulk(slice any, setFunc func(*ListingRunCreate, int)) *ListingRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ListingRunCreateBulk{err: fmt.Errorf("calling to ListingRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ListingRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ListingRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ListingRun.
func (c *ListingRunClient) Update() *ListingRunUpdate {
	mutation := newListingRunMutation(c.config, OpUpdate)
	return &ListingRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ListingRunClient) UpdateOne(_m *ListingRun) *ListingRunUpdateOne {
	mutation := newListingRunMutation(c.config, OpUpdateOne, withListingRun(_m))
	return &ListingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ListingRunClient) UpdateOneID(id uuid.UUID) *ListingRunUpdateOne {
	mutation := newListingRunMutation(c.config, OpUpdateOne, withListingRunID(id))
	return &ListingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ListingRun.
func (c *ListingRunClient) Delete() *ListingRunDelete {
	mutation := newListingRunMutation(c.config, OpDelete)
	return &ListingRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ListingRunClient) DeleteOne(_m *ListingRun) *ListingRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ListingRunClient) DeleteOneID(id uuid.UUID) *ListingRunDeleteOne {
	builder := c.Delete().Where(listingrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ListingRunDeleteOne{builder}
}

// Query returns a query builder for ListingRun.
func (c *ListingRunClient) Query() *ListingRunQuery {
	return &ListingRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeListingRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ListingRun entity by its id.
func (c *ListingRunClient) Get(ctx context.Context, id uuid.UUID) (*ListingRun, error) {
	return c.Query().Where(listingrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ListingRunClient) GetX(ctx context.Context, id uuid.UUID) *ListingRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDraft queries the draft edge of a ListingRun.
func (c *ListingRunClient) QueryDraft(_m *ListingRun) *ListingDraftQuery {
	query := (&ListingDraftClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(listingrun.Table, listingrun.FieldID, id),
			sqlgraph.To(listingdraft.Table, listingdraft.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, listingrun.DraftTable, listingrun.DraftColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ListingRunClient) Hooks() []Hook {
	return c.hooks.ListingRun
}

// Interceptors returns the client interceptors.
func (c *ListingRunClient) Interceptors() []Interceptor {
	return c.inters.ListingRun
}

func (c *ListingRunClient) mutate(ctx context.Context, m *ListingRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ListingRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ListingRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ListingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ListingRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ListingRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ListingDraft, ListingRun []ent.Hook
	}
	inters struct {
		ListingDraft, ListingRun []ent.Interceptor
	}
)
