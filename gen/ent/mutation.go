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
	"github.com/homescribe/listinggen/gen/ent/listingdraft"
	"github.com/homescribe/listinggen/gen/ent/listingrun"
	"github.com/homescribe/listinggen/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeListingDraft = "ListingDraft"
	TypeListingRun   = "ListingRun"
)

// ListingDraftMutation represents an operation that mutates the ListingDraft nodes in the graph.
type ListingDraftMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	title                     *string
	description               *string
	price_block               *string
	formatted_listing         *string
	predicted_price           *float64
	addpredicted_price        *float64
	predicted_price_reasoning *string
	zip_code                  *string
	neighborhood              *string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	run                       *uuid.UUID
	clearedrun                bool
	done                      bool
	oldValue                  func(context.Context) (*ListingDraft, error)
	predicates                []predicate.ListingDraft
}

var _ ent.Mutation = (*ListingDraftMutation)(nil)

// listingdraftOption allows management of the mutation configuration using functional options.
type listingdraftOption func(*ListingDraftMutation)

// newListingDraftMutation creates new mutation for the ListingDraft entity.
func newListingDraftMutation(c config, op Op, opts ...listingdraftOption) *ListingDraftMutation {
	m := &ListingDraftMutation{
		config:        c,
		op:            op,
		typ:           TypeListingDraft,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withListingDraftID sets the ID field of the mutation.
func withListingDraftID(id uuid.UUID) listingdraftOption {
	return func(m *ListingDraftMutation) {
		var (
			err   error
			once  sync.Once
			value *ListingDraft
		)
		m.oldValue = func(ctx context.Context) (*ListingDraft, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ListingDraft.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withListingDraft sets the old ListingDraft of the mutation.
func withListingDraft(node *ListingDraft) listingdraftOption {
	return func(m *ListingDraftMutation) {
		m.oldValue = func(context.Context) (*ListingDraft, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ListingDraftMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ListingDraftMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ListingDraft entities.
func (m *ListingDraftMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ListingDraftMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ListingDraftMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ListingDraft.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ListingDraftMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ListingDraftMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ListingDraftMutation) ResetRunID() {
	m.run = nil
}

// SetTitle sets the "title" field.
func (m *ListingDraftMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ListingDraftMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *ListingDraftMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ListingDraftMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ListingDraftMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldDescription(ctx context.Context) (v string, err error) {
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

// ResetDescription resets all changes to the "description" field.
func (m *ListingDraftMutation) ResetDescription() {
	m.description = nil
}

// SetPriceBlock sets the "price_block" field.
func (m *ListingDraftMutation) SetPriceBlock(s string) {
	m.price_block = &s
}

// PriceBlock returns the value of the "price_block" field in the mutation.
func (m *ListingDraftMutation) PriceBlock() (r string, exists bool) {
	v := m.price_block
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceBlock returns the old "price_block" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldPriceBlock(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceBlock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceBlock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceBlock: %w", err)
	}
	return oldValue.PriceBlock, nil
}

// ResetPriceBlock resets all changes to the "price_block" field.
func (m *ListingDraftMutation) ResetPriceBlock() {
	m.price_block = nil
}

// SetFormattedListing sets the "formatted_listing" field.
func (m *ListingDraftMutation) SetFormattedListing(s string) {
	m.formatted_listing = &s
}

// FormattedListing returns the value of the "formatted_listing" field in the mutation.
func (m *ListingDraftMutation) FormattedListing() (r string, exists bool) {
	v := m.formatted_listing
	if v == nil {
		return
	}
	return *v, true
}

// OldFormattedListing returns the old "formatted_listing" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldFormattedListing(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormattedListing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormattedListing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormattedListing: %w", err)
	}
	return oldValue.FormattedListing, nil
}

// ResetFormattedListing resets all changes to the "formatted_listing" field.
func (m *ListingDraftMutation) ResetFormattedListing() {
	m.formatted_listing = nil
}

// SetPredictedPrice sets the "predicted_price" field.
func (m *ListingDraftMutation) SetPredictedPrice(f float64) {
	m.predicted_price = &f
	m.addpredicted_price = nil
}

// PredictedPrice returns the value of the "predicted_price" field in the mutation.
func (m *ListingDraftMutation) PredictedPrice() (r float64, exists bool) {
	v := m.predicted_price
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedPrice returns the old "predicted_price" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldPredictedPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedPrice: %w", err)
	}
	return oldValue.PredictedPrice, nil
}

// AddPredictedPrice adds f to the "predicted_price" field.
func (m *ListingDraftMutation) AddPredictedPrice(f float64) {
	if m.addpredicted_price != nil {
		*m.addpredicted_price += f
	} else {
		m.addpredicted_price = &f
	}
}

// AddedPredictedPrice returns the value that was added to the "predicted_price" field in this mutation.
func (m *ListingDraftMutation) AddedPredictedPrice() (r float64, exists bool) {
	v := m.addpredicted_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearPredictedPrice clears the value of the "predicted_price" field.
func (m *ListingDraftMutation) ClearPredictedPrice() {
	m.predicted_price = nil
	m.addpredicted_price = nil
	m.clearedFields[listingdraft.FieldPredictedPrice] = struct{}{}
}

// PredictedPriceCleared returns if the "predicted_price" field was cleared in this mutation.
func (m *ListingDraftMutation) PredictedPriceCleared() bool {
	_, ok := m.clearedFields[listingdraft.FieldPredictedPrice]
	return ok
}

// ResetPredictedPrice resets all changes to the "predicted_price" field.
func (m *ListingDraftMutation) ResetPredictedPrice() {
	m.predicted_price = nil
	m.addpredicted_price = nil
	delete(m.clearedFields, listingdraft.FieldPredictedPrice)
}

// SetPredictedPriceReasoning sets the "predicted_price_reasoning" field.
func (m *ListingDraftMutation) SetPredictedPriceReasoning(s string) {
	m.predicted_price_reasoning = &s
}

// PredictedPriceReasoning returns the value of the "predicted_price_reasoning" field in the mutation.
func (m *ListingDraftMutation) PredictedPriceReasoning() (r string, exists bool) {
	v := m.predicted_price_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedPriceReasoning returns the old "predicted_price_reasoning" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldPredictedPriceReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedPriceReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedPriceReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedPriceReasoning: %w", err)
	}
	return oldValue.PredictedPriceReasoning, nil
}

// ClearPredictedPriceReasoning clears the value of the "predicted_price_reasoning" field.
func (m *ListingDraftMutation) ClearPredictedPriceReasoning() {
	m.predicted_price_reasoning = nil
	m.clearedFields[listingdraft.FieldPredictedPriceReasoning] = struct{}{}
}

// PredictedPriceReasoningCleared returns if the "predicted_price_reasoning" field was cleared in this mutation.
func (m *ListingDraftMutation) PredictedPriceReasoningCleared() bool {
	_, ok := m.clearedFields[listingdraft.FieldPredictedPriceReasoning]
	return ok
}

// ResetPredictedPriceReasoning resets all changes to the "predicted_price_reasoning" field.
func (m *ListingDraftMutation) ResetPredictedPriceReasoning() {
	m.predicted_price_reasoning = nil
	delete(m.clearedFields, listingdraft.FieldPredictedPriceReasoning)
}

// SetZipCode sets the "zip_code" field.
func (m *ListingDraftMutation) SetZipCode(s string) {
	m.zip_code = &s
}

// ZipCode returns the value of the "zip_code" field in the mutation.
func (m *ListingDraftMutation) ZipCode() (r string, exists bool) {
	v := m.zip_code
	if v == nil {
		return
	}
	return *v, true
}

// OldZipCode returns the old "zip_code" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldZipCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZipCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZipCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZipCode: %w", err)
	}
	return oldValue.ZipCode, nil
}

// ClearZipCode clears the value of the "zip_code" field.
func (m *ListingDraftMutation) ClearZipCode() {
	m.zip_code = nil
	m.clearedFields[listingdraft.FieldZipCode] = struct{}{}
}

// ZipCodeCleared returns if the "zip_code" field was cleared in this mutation.
func (m *ListingDraftMutation) ZipCodeCleared() bool {
	_, ok := m.clearedFields[listingdraft.FieldZipCode]
	return ok
}

// ResetZipCode resets all changes to the "zip_code" field.
func (m *ListingDraftMutation) ResetZipCode() {
	m.zip_code = nil
	delete(m.clearedFields, listingdraft.FieldZipCode)
}

// SetNeighborhood sets the "neighborhood" field.
func (m *ListingDraftMutation) SetNeighborhood(s string) {
	m.neighborhood = &s
}

// Neighborhood returns the value of the "neighborhood" field in the mutation.
func (m *ListingDraftMutation) Neighborhood() (r string, exists bool) {
	v := m.neighborhood
	if v == nil {
		return
	}
	return *v, true
}

// OldNeighborhood returns the old "neighborhood" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldNeighborhood(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeighborhood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeighborhood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeighborhood: %w", err)
	}
	return oldValue.Neighborhood, nil
}

// ClearNeighborhood clears the value of the "neighborhood" field.
func (m *ListingDraftMutation) ClearNeighborhood() {
	m.neighborhood = nil
	m.clearedFields[listingdraft.FieldNeighborhood] = struct{}{}
}

// NeighborhoodCleared returns if the "neighborhood" field was cleared in this mutation.
func (m *ListingDraftMutation) NeighborhoodCleared() bool {
	_, ok := m.clearedFields[listingdraft.FieldNeighborhood]
	return ok
}

// ResetNeighborhood resets all changes to the "neighborhood" field.
func (m *ListingDraftMutation) ResetNeighborhood() {
	m.neighborhood = nil
	delete(m.clearedFields, listingdraft.FieldNeighborhood)
}

// SetCreatedAt sets the "created_at" field.
func (m *ListingDraftMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ListingDraftMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ListingDraft entity.
// If the ListingDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingDraftMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ListingDraftMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the ListingRun entity.
func (m *ListingDraftMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[listingdraft.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the ListingRun entity was cleared.
func (m *ListingDraftMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ListingDraftMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ListingDraftMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ListingDraftMutation builder.
func (m *ListingDraftMutation) Where(ps ...predicate.ListingDraft) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ListingDraftMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ListingDraftMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ListingDraft, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ListingDraftMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ListingDraftMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ListingDraft).
func (m *ListingDraftMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ListingDraftMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run != nil {
		fields = append(fields, listingdraft.FieldRunID)
	}
	if m.title != nil {
		fields = append(fields, listingdraft.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, listingdraft.FieldDescription)
	}
	if m.price_block != nil {
		fields = append(fields, listingdraft.FieldPriceBlock)
	}
	if m.formatted_listing != nil {
		fields = append(fields, listingdraft.FieldFormattedListing)
	}
	if m.predicted_price != nil {
		fields = append(fields, listingdraft.FieldPredictedPrice)
	}
	if m.predicted_price_reasoning != nil {
		fields = append(fields, listingdraft.FieldPredictedPriceReasoning)
	}
	if m.zip_code != nil {
		fields = append(fields, listingdraft.FieldZipCode)
	}
	if m.neighborhood != nil {
		fields = append(fields, listingdraft.FieldNeighborhood)
	}
	if m.created_at != nil {
		fields = append(fields, listingdraft.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ListingDraftMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case listingdraft.FieldRunID:
		return m.RunID()
	case listingdraft.FieldTitle:
		return m.Title()
	case listingdraft.FieldDescription:
		return m.Description()
	case listingdraft.FieldPriceBlock:
		return m.PriceBlock()
	case listingdraft.FieldFormattedListing:
		return m.FormattedListing()
	case listingdraft.FieldPredictedPrice:
		return m.PredictedPrice()
	case listingdraft.FieldPredictedPriceReasoning:
		return m.PredictedPriceReasoning()
	case listingdraft.FieldZipCode:
		return m.ZipCode()
	case listingdraft.FieldNeighborhood:
		return m.Neighborhood()
	case listingdraft.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ListingDraftMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case listingdraft.FieldRunID:
		return m.OldRunID(ctx)
	case listingdraft.FieldTitle:
		return m.OldTitle(ctx)
	case listingdraft.FieldDescription:
		return m.OldDescription(ctx)
	case listingdraft.FieldPriceBlock:
		return m.OldPriceBlock(ctx)
	case listingdraft.FieldFormattedListing:
		return m.OldFormattedListing(ctx)
	case listingdraft.FieldPredictedPrice:
		return m.OldPredictedPrice(ctx)
	case listingdraft.FieldPredictedPriceReasoning:
		return m.OldPredictedPriceReasoning(ctx)
	case listingdraft.FieldZipCode:
		return m.OldZipCode(ctx)
	case listingdraft.FieldNeighborhood:
		return m.OldNeighborhood(ctx)
	case listingdraft.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ListingDraft field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingDraftMutation) SetField(name string, value ent.Value) error {
	switch name {
	case listingdraft.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case listingdraft.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case listingdraft.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case listingdraft.FieldPriceBlock:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceBlock(v)
		return nil
	case listingdraft.FieldFormattedListing:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormattedListing(v)
		return nil
	case listingdraft.FieldPredictedPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedPrice(v)
		return nil
	case listingdraft.FieldPredictedPriceReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedPriceReasoning(v)
		return nil
	case listingdraft.FieldZipCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZipCode(v)
		return nil
	case listingdraft.FieldNeighborhood:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeighborhood(v)
		return nil
	case listingdraft.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ListingDraft field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ListingDraftMutation) AddedFields() []string {
	var fields []string
	if m.addpredicted_price != nil {
		fields = append(fields, listingdraft.FieldPredictedPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ListingDraftMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case listingdraft.FieldPredictedPrice:
		return m.AddedPredictedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingDraftMutation) AddField(name string, value ent.Value) error {
	switch name {
	case listingdraft.FieldPredictedPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPredictedPrice(v)
		return nil
	}
	return fmt.Errorf("unknown ListingDraft numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ListingDraftMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(listingdraft.FieldPredictedPrice) {
		fields = append(fields, listingdraft.FieldPredictedPrice)
	}
	if m.FieldCleared(listingdraft.FieldPredictedPriceReasoning) {
		fields = append(fields, listingdraft.FieldPredictedPriceReasoning)
	}
	if m.FieldCleared(listingdraft.FieldZipCode) {
		fields = append(fields, listingdraft.FieldZipCode)
	}
	if m.FieldCleared(listingdraft.FieldNeighborhood) {
		fields = append(fields, listingdraft.FieldNeighborhood)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ListingDraftMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ListingDraftMutation) ClearField(name string) error {
	switch name {
	case listingdraft.FieldPredictedPrice:
		m.ClearPredictedPrice()
		return nil
	case listingdraft.FieldPredictedPriceReasoning:
		m.ClearPredictedPriceReasoning()
		return nil
	case listingdraft.FieldZipCode:
		m.ClearZipCode()
		return nil
	case listingdraft.FieldNeighborhood:
		m.ClearNeighborhood()
		return nil
	}
	return fmt.Errorf("unknown ListingDraft nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ListingDraftMutation) ResetField(name string) error {
	switch name {
	case listingdraft.FieldRunID:
		m.ResetRunID()
		return nil
	case listingdraft.FieldTitle:
		m.ResetTitle()
		return nil
	case listingdraft.FieldDescription:
		m.ResetDescription()
		return nil
	case listingdraft.FieldPriceBlock:
		m.ResetPriceBlock()
		return nil
	case listingdraft.FieldFormattedListing:
		m.ResetFormattedListing()
		return nil
	case listingdraft.FieldPredictedPrice:
		m.ResetPredictedPrice()
		return nil
	case listingdraft.FieldPredictedPriceReasoning:
		m.ResetPredictedPriceReasoning()
		return nil
	case listingdraft.FieldZipCode:
		m.ResetZipCode()
		return nil
	case listingdraft.FieldNeighborhood:
		m.ResetNeighborhood()
		return nil
	case listingdraft.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ListingDraft field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ListingDraftMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, listingdraft.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ListingDraftMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case listingdraft.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ListingDraftMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ListingDraftMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ListingDraftMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, listingdraft.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ListingDraftMutation) EdgeCleared(name string) bool {
	switch name {
	case listingdraft.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ListingDraftMutation) ClearEdge(name string) error {
	switch name {
	case listingdraft.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown ListingDraft unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ListingDraftMutation) ResetEdge(name string) error {
	switch name {
	case listingdraft.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown ListingDraft edge %s", name)
}

// ListingRunMutation represents an operation that mutates the ListingRun nodes in the graph.
type ListingRunMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	request_id     *uuid.UUID
	address        *string
	listing_type   *string
	region         *string
	property_type  *string
	bedrooms       *int
	addbedrooms    *int
	bathrooms      *float64
	addbathrooms   *float64
	sqft           *int
	addsqft        *int
	price          *float64
	addprice       *float64
	notes          *string
	status         *string
	error_count    *int
	adderror_count *int
	errors         *string
	duration_ms    *int64
	addduration_ms *int64
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	draft          *uuid.UUID
	cleareddraft   bool
	done           bool
	oldValue       func(context.Context) (*ListingRun, error)
	predicates     []predicate.ListingRun
}

var _ ent.Mutation = (*ListingRunMutation)(nil)

// listingrunOption allows management of the mutation configuration using functional options.
type listingrunOption func(*ListingRunMutation)

// newListingRunMutation creates new mutation for the ListingRun entity.
func newListingRunMutation(c config, op Op, opts ...listingrunOption) *ListingRunMutation {
	m := &ListingRunMutation{
		config:        c,
		op:            op,
		typ:           TypeListingRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withListingRunID sets the ID field of the mutation.
func withListingRunID(id uuid.UUID) listingrunOption {
	return func(m *ListingRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ListingRun
		)
		m.oldValue = func(ctx context.Context) (*ListingRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ListingRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withListingRun sets the old ListingRun of the mutation.
func withListingRun(node *ListingRun) listingrunOption {
	return func(m *ListingRunMutation) {
		m.oldValue = func(context.Context) (*ListingRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ListingRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ListingRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ListingRun entities.
func (m *ListingRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ListingRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ListingRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ListingRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *ListingRunMutation) SetRequestID(u uuid.UUID) {
	m.request_id = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ListingRunMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldRequestID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *ListingRunMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[listingrun.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *ListingRunMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ListingRunMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, listingrun.FieldRequestID)
}

// SetAddress sets the "address" field.
func (m *ListingRunMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ListingRunMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *ListingRunMutation) ResetAddress() {
	m.address = nil
}

// SetListingType sets the "listing_type" field.
func (m *ListingRunMutation) SetListingType(s string) {
	m.listing_type = &s
}

// ListingType returns the value of the "listing_type" field in the mutation.
func (m *ListingRunMutation) ListingType() (r string, exists bool) {
	v := m.listing_type
	if v == nil {
		return
	}
	return *v, true
}

// OldListingType returns the old "listing_type" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldListingType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListingType: %w", err)
	}
	return oldValue.ListingType, nil
}

// ResetListingType resets all changes to the "listing_type" field.
func (m *ListingRunMutation) ResetListingType() {
	m.listing_type = nil
}

// SetRegion sets the "region" field.
func (m *ListingRunMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *ListingRunMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *ListingRunMutation) ResetRegion() {
	m.region = nil
}

// SetPropertyType sets the "property_type" field.
func (m *ListingRunMutation) SetPropertyType(s string) {
	m.property_type = &s
}

// PropertyType returns the value of the "property_type" field in the mutation.
func (m *ListingRunMutation) PropertyType() (r string, exists bool) {
	v := m.property_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyType returns the old "property_type" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldPropertyType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyType: %w", err)
	}
	return oldValue.PropertyType, nil
}

// ClearPropertyType clears the value of the "property_type" field.
func (m *ListingRunMutation) ClearPropertyType() {
	m.property_type = nil
	m.clearedFields[listingrun.FieldPropertyType] = struct{}{}
}

// PropertyTypeCleared returns if the "property_type" field was cleared in this mutation.
func (m *ListingRunMutation) PropertyTypeCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldPropertyType]
	return ok
}

// ResetPropertyType resets all changes to the "property_type" field.
func (m *ListingRunMutation) ResetPropertyType() {
	m.property_type = nil
	delete(m.clearedFields, listingrun.FieldPropertyType)
}

// SetBedrooms sets the "bedrooms" field.
func (m *ListingRunMutation) SetBedrooms(i int) {
	m.bedrooms = &i
	m.addbedrooms = nil
}

// Bedrooms returns the value of the "bedrooms" field in the mutation.
func (m *ListingRunMutation) Bedrooms() (r int, exists bool) {
	v := m.bedrooms
	if v == nil {
		return
	}
	return *v, true
}

// OldBedrooms returns the old "bedrooms" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldBedrooms(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBedrooms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBedrooms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBedrooms: %w", err)
	}
	return oldValue.Bedrooms, nil
}

// AddBedrooms adds i to the "bedrooms" field.
func (m *ListingRunMutation) AddBedrooms(i int) {
	if m.addbedrooms != nil {
		*m.addbedrooms += i
	} else {
		m.addbedrooms = &i
	}
}

// AddedBedrooms returns the value that was added to the "bedrooms" field in this mutation.
func (m *ListingRunMutation) AddedBedrooms() (r int, exists bool) {
	v := m.addbedrooms
	if v == nil {
		return
	}
	return *v, true
}

// ClearBedrooms clears the value of the "bedrooms" field.
func (m *ListingRunMutation) ClearBedrooms() {
	m.bedrooms = nil
	m.addbedrooms = nil
	m.clearedFields[listingrun.FieldBedrooms] = struct{}{}
}

// BedroomsCleared returns if the "bedrooms" field was cleared in this mutation.
func (m *ListingRunMutation) BedroomsCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldBedrooms]
	return ok
}

// ResetBedrooms resets all changes to the "bedrooms" field.
func (m *ListingRunMutation) ResetBedrooms() {
	m.bedrooms = nil
	m.addbedrooms = nil
	delete(m.clearedFields, listingrun.FieldBedrooms)
}

// SetBathrooms sets the "bathrooms" field.
func (m *ListingRunMutation) SetBathrooms(f float64) {
	m.bathrooms = &f
	m.addbathrooms = nil
}

// Bathrooms returns the value of the "bathrooms" field in the mutation.
func (m *ListingRunMutation) Bathrooms() (r float64, exists bool) {
	v := m.bathrooms
	if v == nil {
		return
	}
	return *v, true
}

// OldBathrooms returns the old "bathrooms" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldBathrooms(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBathrooms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBathrooms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBathrooms: %w", err)
	}
	return oldValue.Bathrooms, nil
}

// AddBathrooms adds f to the "bathrooms" field.
func (m *ListingRunMutation) AddBathrooms(f float64) {
	if m.addbathrooms != nil {
		*m.addbathrooms += f
	} else {
		m.addbathrooms = &f
	}
}

// AddedBathrooms returns the value that was added to the "bathrooms" field in this mutation.
func (m *ListingRunMutation) AddedBathrooms() (r float64, exists bool) {
	v := m.addbathrooms
	if v == nil {
		return
	}
	return *v, true
}

// ClearBathrooms clears the value of the "bathrooms" field.
func (m *ListingRunMutation) ClearBathrooms() {
	m.bathrooms = nil
	m.addbathrooms = nil
	m.clearedFields[listingrun.FieldBathrooms] = struct{}{}
}

// BathroomsCleared returns if the "bathrooms" field was cleared in this mutation.
func (m *ListingRunMutation) BathroomsCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldBathrooms]
	return ok
}

// ResetBathrooms resets all changes to the "bathrooms" field.
func (m *ListingRunMutation) ResetBathrooms() {
	m.bathrooms = nil
	m.addbathrooms = nil
	delete(m.clearedFields, listingrun.FieldBathrooms)
}

// SetSqft sets the "sqft" field.
func (m *ListingRunMutation) SetSqft(i int) {
	m.sqft = &i
	m.addsqft = nil
}

// Sqft returns the value of the "sqft" field in the mutation.
func (m *ListingRunMutation) Sqft() (r int, exists bool) {
	v := m.sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldSqft returns the old "sqft" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldSqft(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSqft: %w", err)
	}
	return oldValue.Sqft, nil
}

// AddSqft adds i to the "sqft" field.
func (m *ListingRunMutation) AddSqft(i int) {
	if m.addsqft != nil {
		*m.addsqft += i
	} else {
		m.addsqft = &i
	}
}

// AddedSqft returns the value that was added to the "sqft" field in this mutation.
func (m *ListingRunMutation) AddedSqft() (r int, exists bool) {
	v := m.addsqft
	if v == nil {
		return
	}
	return *v, true
}

// ClearSqft clears the value of the "sqft" field.
func (m *ListingRunMutation) ClearSqft() {
	m.sqft = nil
	m.addsqft = nil
	m.clearedFields[listingrun.FieldSqft] = struct{}{}
}

// SqftCleared returns if the "sqft" field was cleared in this mutation.
func (m *ListingRunMutation) SqftCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldSqft]
	return ok
}

// ResetSqft resets all changes to the "sqft" field.
func (m *ListingRunMutation) ResetSqft() {
	m.sqft = nil
	m.addsqft = nil
	delete(m.clearedFields, listingrun.FieldSqft)
}

// SetPrice sets the "price" field.
func (m *ListingRunMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ListingRunMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *ListingRunMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ListingRunMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrice clears the value of the "price" field.
func (m *ListingRunMutation) ClearPrice() {
	m.price = nil
	m.addprice = nil
	m.clearedFields[listingrun.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *ListingRunMutation) PriceCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *ListingRunMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
	delete(m.clearedFields, listingrun.FieldPrice)
}

// SetNotes sets the "notes" field.
func (m *ListingRunMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ListingRunMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ListingRunMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[listingrun.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ListingRunMutation) NotesCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ListingRunMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, listingrun.FieldNotes)
}

// SetStatus sets the "status" field.
func (m *ListingRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ListingRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ListingRunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCount sets the "error_count" field.
func (m *ListingRunMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *ListingRunMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *ListingRunMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *ListingRunMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *ListingRunMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetErrors sets the "errors" field.
func (m *ListingRunMutation) SetErrors(s string) {
	m.errors = &s
}

// Errors returns the value of the "errors" field in the mutation.
func (m *ListingRunMutation) Errors() (r string, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldErrors(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// ClearErrors clears the value of the "errors" field.
func (m *ListingRunMutation) ClearErrors() {
	m.errors = nil
	m.clearedFields[listingrun.FieldErrors] = struct{}{}
}

// ErrorsCleared returns if the "errors" field was cleared in this mutation.
func (m *ListingRunMutation) ErrorsCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldErrors]
	return ok
}

// ResetErrors resets all changes to the "errors" field.
func (m *ListingRunMutation) ResetErrors() {
	m.errors = nil
	delete(m.clearedFields, listingrun.FieldErrors)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ListingRunMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ListingRunMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ListingRunMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ListingRunMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ListingRunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[listingrun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ListingRunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[listingrun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ListingRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, listingrun.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *ListingRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ListingRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ListingRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ListingRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ListingRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ListingRun entity.
// If the ListingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ListingRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDraftID sets the "draft" edge to the ListingDraft entity by id.
func (m *ListingRunMutation) SetDraftID(id uuid.UUID) {
	m.draft = &id
}

// ClearDraft clears the "draft" edge to the ListingDraft entity.
func (m *ListingRunMutation) ClearDraft() {
	m.cleareddraft = true
}

// DraftCleared reports if the "draft" edge to the ListingDraft entity was cleared.
func (m *ListingRunMutation) DraftCleared() bool {
	return m.cleareddraft
}

// DraftID returns the "draft" edge ID in the mutation.
func (m *ListingRunMutation) DraftID() (id uuid.UUID, exists bool) {
	if m.draft != nil {
		return *m.draft, true
	}
	return
}

// DraftIDs returns the "draft" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DraftID instead. It exists only for internal usage by the builders.
func (m *ListingRunMutation) DraftIDs() (ids []uuid.UUID) {
	if id := m.draft; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDraft resets all changes to the "draft" edge.
func (m *ListingRunMutation) ResetDraft() {
	m.draft = nil
	m.cleareddraft = false
}

// Where appends a list predicates to the ListingRunMutation builder.
func (m *ListingRunMutation) Where(ps ...predicate.ListingRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ListingRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ListingRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ListingRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ListingRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ListingRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ListingRun).
func (m *ListingRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ListingRunMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.request_id != nil {
		fields = append(fields, listingrun.FieldRequestID)
	}
	if m.address != nil {
		fields = append(fields, listingrun.FieldAddress)
	}
	if m.listing_type != nil {
		fields = append(fields, listingrun.FieldListingType)
	}
	if m.region != nil {
		fields = append(fields, listingrun.FieldRegion)
	}
	if m.property_type != nil {
		fields = append(fields, listingrun.FieldPropertyType)
	}
	if m.bedrooms != nil {
		fields = append(fields, listingrun.FieldBedrooms)
	}
	if m.bathrooms != nil {
		fields = append(fields, listingrun.FieldBathrooms)
	}
	if m.sqft != nil {
		fields = append(fields, listingrun.FieldSqft)
	}
	if m.price != nil {
		fields = append(fields, listingrun.FieldPrice)
	}
	if m.notes != nil {
		fields = append(fields, listingrun.FieldNotes)
	}
	if m.status != nil {
		fields = append(fields, listingrun.FieldStatus)
	}
	if m.error_count != nil {
		fields = append(fields, listingrun.FieldErrorCount)
	}
	if m.errors != nil {
		fields = append(fields, listingrun.FieldErrors)
	}
	if m.duration_ms != nil {
		fields = append(fields, listingrun.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, listingrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, listingrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ListingRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case listingrun.FieldRequestID:
		return m.RequestID()
	case listingrun.FieldAddress:
		return m.Address()
	case listingrun.FieldListingType:
		return m.ListingType()
	case listingrun.FieldRegion:
		return m.Region()
	case listingrun.FieldPropertyType:
		return m.PropertyType()
	case listingrun.FieldBedrooms:
		return m.Bedrooms()
	case listingrun.FieldBathrooms:
		return m.Bathrooms()
	case listingrun.FieldSqft:
		return m.Sqft()
	case listingrun.FieldPrice:
		return m.Price()
	case listingrun.FieldNotes:
		return m.Notes()
	case listingrun.FieldStatus:
		return m.Status()
	case listingrun.FieldErrorCount:
		return m.ErrorCount()
	case listingrun.FieldErrors:
		return m.Errors()
	case listingrun.FieldDurationMs:
		return m.DurationMs()
	case listingrun.FieldCreatedAt:
		return m.CreatedAt()
	case listingrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ListingRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case listingrun.FieldRequestID:
		return m.OldRequestID(ctx)
	case listingrun.FieldAddress:
		return m.OldAddress(ctx)
	case listingrun.FieldListingType:
		return m.OldListingType(ctx)
	case listingrun.FieldRegion:
		return m.OldRegion(ctx)
	case listingrun.FieldPropertyType:
		return m.OldPropertyType(ctx)
	case listingrun.FieldBedrooms:
		return m.OldBedrooms(ctx)
	case listingrun.FieldBathrooms:
		return m.OldBathrooms(ctx)
	case listingrun.FieldSqft:
		return m.OldSqft(ctx)
	case listingrun.FieldPrice:
		return m.OldPrice(ctx)
	case listingrun.FieldNotes:
		return m.OldNotes(ctx)
	case listingrun.FieldStatus:
		return m.OldStatus(ctx)
	case listingrun.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case listingrun.FieldErrors:
		return m.OldErrors(ctx)
	case listingrun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case listingrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case listingrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ListingRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case listingrun.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case listingrun.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case listingrun.FieldListingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListingType(v)
		return nil
	case listingrun.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case listingrun.FieldPropertyType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyType(v)
		return nil
	case listingrun.FieldBedrooms:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBedrooms(v)
		return nil
	case listingrun.FieldBathrooms:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBathrooms(v)
		return nil
	case listingrun.FieldSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSqft(v)
		return nil
	case listingrun.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case listingrun.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case listingrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case listingrun.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case listingrun.FieldErrors:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case listingrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case listingrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case listingrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ListingRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ListingRunMutation) AddedFields() []string {
	var fields []string
	if m.addbedrooms != nil {
		fields = append(fields, listingrun.FieldBedrooms)
	}
	if m.addbathrooms != nil {
		fields = append(fields, listingrun.FieldBathrooms)
	}
	if m.addsqft != nil {
		fields = append(fields, listingrun.FieldSqft)
	}
	if m.addprice != nil {
		fields = append(fields, listingrun.FieldPrice)
	}
	if m.adderror_count != nil {
		fields = append(fields, listingrun.FieldErrorCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, listingrun.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ListingRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case listingrun.FieldBedrooms:
		return m.AddedBedrooms()
	case listingrun.FieldBathrooms:
		return m.AddedBathrooms()
	case listingrun.FieldSqft:
		return m.AddedSqft()
	case listingrun.FieldPrice:
		return m.AddedPrice()
	case listingrun.FieldErrorCount:
		return m.AddedErrorCount()
	case listingrun.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case listingrun.FieldBedrooms:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBedrooms(v)
		return nil
	case listingrun.FieldBathrooms:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBathrooms(v)
		return nil
	case listingrun.FieldSqft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSqft(v)
		return nil
	case listingrun.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case listingrun.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case listingrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ListingRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ListingRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(listingrun.FieldRequestID) {
		fields = append(fields, listingrun.FieldRequestID)
	}
	if m.FieldCleared(listingrun.FieldPropertyType) {
		fields = append(fields, listingrun.FieldPropertyType)
	}
	if m.FieldCleared(listingrun.FieldBedrooms) {
		fields = append(fields, listingrun.FieldBedrooms)
	}
	if m.FieldCleared(listingrun.FieldBathrooms) {
		fields = append(fields, listingrun.FieldBathrooms)
	}
	if m.FieldCleared(listingrun.FieldSqft) {
		fields = append(fields, listingrun.FieldSqft)
	}
	if m.FieldCleared(listingrun.FieldPrice) {
		fields = append(fields, listingrun.FieldPrice)
	}
	if m.FieldCleared(listingrun.FieldNotes) {
		fields = append(fields, listingrun.FieldNotes)
	}
	if m.FieldCleared(listingrun.FieldErrors) {
		fields = append(fields, listingrun.FieldErrors)
	}
	if m.FieldCleared(listingrun.FieldDurationMs) {
		fields = append(fields, listingrun.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ListingRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ListingRunMutation) ClearField(name string) error {
	switch name {
	case listingrun.FieldRequestID:
		m.ClearRequestID()
		return nil
	case listingrun.FieldPropertyType:
		m.ClearPropertyType()
		return nil
	case listingrun.FieldBedrooms:
		m.ClearBedrooms()
		return nil
	case listingrun.FieldBathrooms:
		m.ClearBathrooms()
		return nil
	case listingrun.FieldSqft:
		m.ClearSqft()
		return nil
	case listingrun.FieldPrice:
		m.ClearPrice()
		return nil
	case listingrun.FieldNotes:
		m.ClearNotes()
		return nil
	case listingrun.FieldErrors:
		m.ClearErrors()
		return nil
	case listingrun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ListingRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ListingRunMutation) ResetField(name string) error {
	switch name {
	case listingrun.FieldRequestID:
		m.ResetRequestID()
		return nil
	case listingrun.FieldAddress:
		m.ResetAddress()
		return nil
	case listingrun.FieldListingType:
		m.ResetListingType()
		return nil
	case listingrun.FieldRegion:
		m.ResetRegion()
		return nil
	case listingrun.FieldPropertyType:
		m.ResetPropertyType()
		return nil
	case listingrun.FieldBedrooms:
		m.ResetBedrooms()
		return nil
	case listingrun.FieldBathrooms:
		m.ResetBathrooms()
		return nil
	case listingrun.FieldSqft:
		m.ResetSqft()
		return nil
	case listingrun.FieldPrice:
		m.ResetPrice()
		return nil
	case listingrun.FieldNotes:
		m.ResetNotes()
		return nil
	case listingrun.FieldStatus:
		m.ResetStatus()
		return nil
	case listingrun.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case listingrun.FieldErrors:
		m.ResetErrors()
		return nil
	case listingrun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case listingrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case listingrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ListingRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ListingRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.draft != nil {
		edges = append(edges, listingrun.EdgeDraft)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ListingRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case listingrun.EdgeDraft:
		if id := m.draft; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ListingRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ListingRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ListingRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddraft {
		edges = append(edges, listingrun.EdgeDraft)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ListingRunMutation) EdgeCleared(name string) bool {
	switch name {
	case listingrun.EdgeDraft:
		return m.cleareddraft
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ListingRunMutation) ClearEdge(name string) error {
	switch name {
	case listingrun.EdgeDraft:
		m.ClearDraft()
		return nil
	}
	return fmt.Errorf("unknown ListingRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ListingRunMutation) ResetEdge(name string) error {
	switch name {
	case listingrun.EdgeDraft:
		m.ResetDraft()
		return nil
	}
	return fmt.Errorf("unknown ListingRun edge %s", name)
}
