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
	"github.com/homescribe/listinggen/gen/ent/listingdraft"
	"github.com/homescribe/listinggen/gen/ent/listingrun"
)

// ListingDraftCreate is the builder for creating a ListingDraft entity.
type ListingDraftCreate struct {
	config
	mutation *ListingDraftMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ListingDraftCreate) SetRunID(v uuid.UUID) *ListingDraftCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ListingDraftCreate) SetTitle(v string) *ListingDraftCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ListingDraftCreate) SetDescription(v string) *ListingDraftCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetPriceBlock sets the "price_block" field.
func (_c *ListingDraftCreate) SetPriceBlock(v string) *ListingDraftCreate {
	_c.mutation.SetPriceBlock(v)
	return _c
}

// SetFormattedListing sets the "formatted_listing" field.
func (_c *ListingDraftCreate) SetFormattedListing(v string) *ListingDraftCreate {
	_c.mutation.SetFormattedListing(v)
	return _c
}

// SetPredictedPrice sets the "predicted_price" field.
func (_c *ListingDraftCreate) SetPredictedPrice(v float64) *ListingDraftCreate {
	_c.mutation.SetPredictedPrice(v)
	return _c
}

// SetNillablePredictedPrice sets the "predicted_price" field if the given value is not nil.
func (_c *ListingDraftCreate) SetNillablePredictedPrice(v *float64) *ListingDraftCreate {
	if v != nil {
		_c.SetPredictedPrice(*v)
	}
	return _c
}

// SetPredictedPriceReasoning sets the "predicted_price_reasoning" field.
func (_c *ListingDraftCreate) SetPredictedPriceReasoning(v string) *ListingDraftCreate {
	_c.mutation.SetPredictedPriceReasoning(v)
	return _c
}

// SetNillablePredictedPriceReasoning sets the "predicted_price_reasoning" field if the given value is not nil.
func (_c *ListingDraftCreate) SetNillablePredictedPriceReasoning(v *string) *ListingDraftCreate {
	if v != nil {
		_c.SetPredictedPriceReasoning(*v)
	}
	return _c
}

// SetZipCode sets the "zip_code" field.
func (_c *ListingDraftCreate) SetZipCode(v string) *ListingDraftCreate {
	_c.mutation.SetZipCode(v)
	return _c
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_c *ListingDraftCreate) SetNillableZipCode(v *string) *ListingDraftCreate {
	if v != nil {
		_c.SetZipCode(*v)
	}
	return _c
}

// SetNeighborhood sets the "neighborhood" field.
func (_c *ListingDraftCreate) SetNeighborhood(v string) *ListingDraftCreate {
	_c.mutation.SetNeighborhood(v)
	return _c
}

// SetNillableNeighborhood sets the "neighborhood" field if the given value is not nil.
func (_c *ListingDraftCreate) SetNillableNeighborhood(v *string) *ListingDraftCreate {
	if v != nil {
		_c.SetNeighborhood(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ListingDraftCreate) SetCreatedAt(v time.Time) *ListingDraftCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ListingDraftCreate) SetNillableCreatedAt(v *time.Time) *ListingDraftCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ListingDraftCreate) SetID(v uuid.UUID) *ListingDraftCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ListingDraftCreate) SetNillableID(v *uuid.UUID) *ListingDraftCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the ListingRun entity.
func (_c *ListingDraftCreate) SetRun(v *ListingRun) *ListingDraftCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the ListingDraftMutation object of the builder.
func (_c *ListingDraftCreate) Mutation() *ListingDraftMutation {
	return _c.mutation
}

// Save creates the ListingDraft in the database.
func (_c *ListingDraftCreate) Save(ctx context.Context) (*ListingDraft, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListingDraftCreate) SaveX(ctx context.Context) *ListingDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingDraftCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingDraftCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListingDraftCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := listingdraft.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := listingdraft.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListingDraftCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ListingDraft.run_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ListingDraft.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := listingdraft.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ListingDraft.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ListingDraft.description"`)}
	}
	if _, ok := _c.mutation.PriceBlock(); !ok {
		return &ValidationError{Name: "price_block", err: errors.New(`ent: missing required field "ListingDraft.price_block"`)}
	}
	if _, ok := _c.mutation.FormattedListing(); !ok {
		return &ValidationError{Name: "formatted_listing", err: errors.New(`ent: missing required field "ListingDraft.formatted_listing"`)}
	}
	if v, ok := _c.mutation.FormattedListing(); ok {
		if err := listingdraft.FormattedListingValidator(v); err != nil {
			return &ValidationError{Name: "formatted_listing", err: fmt.Errorf(`ent: validator failed for field "ListingDraft.formatted_listing": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ListingDraft.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ListingDraft.run"`)}
	}
	return nil
}

func (_c *ListingDraftCreate) sqlSave(ctx context.Context) (*ListingDraft, error) {
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

func (_c *ListingDraftCreate) createSpec() (*ListingDraft, *sqlgraph.CreateSpec) {
	var (
		_node = &ListingDraft{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listingdraft.Table, sqlgraph.NewFieldSpec(listingdraft.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(listingdraft.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(listingdraft.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PriceBlock(); ok {
		_spec.SetField(listingdraft.FieldPriceBlock, field.TypeString, value)
		_node.PriceBlock = value
	}
	if value, ok := _c.mutation.FormattedListing(); ok {
		_spec.SetField(listingdraft.FieldFormattedListing, field.TypeString, value)
		_node.FormattedListing = value
	}
	if value, ok := _c.mutation.PredictedPrice(); ok {
		_spec.SetField(listingdraft.FieldPredictedPrice, field.TypeFloat64, value)
		_node.PredictedPrice = &value
	}
	if value, ok := _c.mutation.PredictedPriceReasoning(); ok {
		_spec.SetField(listingdraft.FieldPredictedPriceReasoning, field.TypeString, value)
		_node.PredictedPriceReasoning = &value
	}
	if value, ok := _c.mutation.ZipCode(); ok {
		_spec.SetField(listingdraft.FieldZipCode, field.TypeString, value)
		_node.ZipCode = &value
	}
	if value, ok := _c.mutation.Neighborhood(); ok {
		_spec.SetField(listingdraft.FieldNeighborhood, field.TypeString, value)
		_node.Neighborhood = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(listingdraft.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   listingdraft.RunTable,
			Columns: []string{listingdraft.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listingrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ListingDraftCreateBulk is the builder for creating many ListingDraft entities in bulk.
type ListingDraftCreateBulk struct {
	config
	err      error
	builders []*ListingDraftCreate
}

// Save creates the ListingDraft entities in the database.
func (_c *ListingDraftCreateBulk) Save(ctx context.Context) ([]*ListingDraft, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ListingDraft, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListingDraftMutation)
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
func (_c *ListingDraftCreateBulk) SaveX(ctx context.Context) []*ListingDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingDraftCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingDraftCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
