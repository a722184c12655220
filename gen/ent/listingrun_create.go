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

// ListingRunCreate is the builder for creating a ListingRun entity.
type ListingRunCreate struct {
	config
	mutation *ListingRunMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *ListingRunCreate) SetRequestID(v uuid.UUID) *ListingRunCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableRequestID(v *uuid.UUID) *ListingRunCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ListingRunCreate) SetAddress(v string) *ListingRunCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetListingType sets the "listing_type" field.
func (_c *ListingRunCreate) SetListingType(v string) *ListingRunCreate {
	_c.mutation.SetListingType(v)
	return _c
}

// SetRegion sets the "region" field.
func (_c *ListingRunCreate) SetRegion(v string) *ListingRunCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetPropertyType sets the "property_type" field.
func (_c *ListingRunCreate) SetPropertyType(v string) *ListingRunCreate {
	_c.mutation.SetPropertyType(v)
	return _c
}

// SetNillablePropertyType sets the "property_type" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillablePropertyType(v *string) *ListingRunCreate {
	if v != nil {
		_c.SetPropertyType(*v)
	}
	return _c
}

// SetBedrooms sets the "bedrooms" field.
func (_c *ListingRunCreate) SetBedrooms(v int) *ListingRunCreate {
	_c.mutation.SetBedrooms(v)
	return _c
}

// SetNillableBedrooms sets the "bedrooms" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableBedrooms(v *int) *ListingRunCreate {
	if v != nil {
		_c.SetBedrooms(*v)
	}
	return _c
}

// SetBathrooms sets the "bathrooms" field.
func (_c *ListingRunCreate) SetBathrooms(v float64) *ListingRunCreate {
	_c.mutation.SetBathrooms(v)
	return _c
}

// SetNillableBathrooms sets the "bathrooms" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableBathrooms(v *float64) *ListingRunCreate {
	if v != nil {
		_c.SetBathrooms(*v)
	}
	return _c
}

// SetSqft sets the "sqft" field.
func (_c *ListingRunCreate) SetSqft(v int) *ListingRunCreate {
	_c.mutation.SetSqft(v)
	return _c
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableSqft(v *int) *ListingRunCreate {
	if v != nil {
		_c.SetSqft(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ListingRunCreate) SetPrice(v float64) *ListingRunCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillablePrice(v *float64) *ListingRunCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ListingRunCreate) SetNotes(v string) *ListingRunCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableNotes(v *string) *ListingRunCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ListingRunCreate) SetStatus(v string) *ListingRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *ListingRunCreate) SetErrorCount(v int) *ListingRunCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableErrorCount(v *int) *ListingRunCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *ListingRunCreate) SetErrors(v string) *ListingRunCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableErrors(v *string) *ListingRunCreate {
	if v != nil {
		_c.SetErrors(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ListingRunCreate) SetDurationMs(v int64) *ListingRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableDurationMs(v *int64) *ListingRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ListingRunCreate) SetCreatedAt(v time.Time) *ListingRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableCreatedAt(v *time.Time) *ListingRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ListingRunCreate) SetUpdatedAt(v time.Time) *ListingRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableUpdatedAt(v *time.Time) *ListingRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ListingRunCreate) SetID(v uuid.UUID) *ListingRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ListingRunCreate) SetNillableID(v *uuid.UUID) *ListingRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDraftID sets the "draft" edge to the ListingDraft entity by ID.
func (_c *ListingRunCreate) SetDraftID(id uuid.UUID) *ListingRunCreate {
	_c.mutation.SetDraftID(id)
	return _c
}

// SetNillableDraftID sets the "draft" edge to the ListingDraft entity by ID if the given value is not nil.
func (_c *ListingRunCreate) SetNillableDraftID(id *uuid.UUID) *ListingRunCreate {
	if id != nil {
		_c = _c.SetDraftID(*id)
	}
	return _c
}

// SetDraft sets the "draft" edge to the ListingDraft entity.
func (_c *ListingRunCreate) SetDraft(v *ListingDraft) *ListingRunCreate {
	return _c.SetDraftID(v.ID)
}

// Mutation returns the ListingRunMutation object of the builder.
func (_c *ListingRunCreate) Mutation() *ListingRunMutation {
	return _c.mutation
}

// Save creates the ListingRun in the database.
func (_c *ListingRunCreate) Save(ctx context.Context) (*ListingRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListingRunCreate) SaveX(ctx context.Context) *ListingRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListingRunCreate) defaults() {
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := listingrun.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := listingrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := listingrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := listingrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListingRunCreate) check() error {
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "ListingRun.address"`)}
	}
	if _, ok := _c.mutation.ListingType(); !ok {
		return &ValidationError{Name: "listing_type", err: errors.New(`ent: missing required field "ListingRun.listing_type"`)}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "ListingRun.region"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ListingRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := listingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ListingRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "ListingRun.error_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ListingRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ListingRun.updated_at"`)}
	}
	return nil
}

func (_c *ListingRunCreate) sqlSave(ctx context.Context) (*ListingRun, error) {
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

func (_c *ListingRunCreate) createSpec() (*ListingRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ListingRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listingrun.Table, sqlgraph.NewFieldSpec(listingrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(listingrun.FieldRequestID, field.TypeUUID, value)
		_node.RequestID = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(listingrun.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.ListingType(); ok {
		_spec.SetField(listingrun.FieldListingType, field.TypeString, value)
		_node.ListingType = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(listingrun.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.PropertyType(); ok {
		_spec.SetField(listingrun.FieldPropertyType, field.TypeString, value)
		_node.PropertyType = &value
	}
	if value, ok := _c.mutation.Bedrooms(); ok {
		_spec.SetField(listingrun.FieldBedrooms, field.TypeInt, value)
		_node.Bedrooms = &value
	}
	if value, ok := _c.mutation.Bathrooms(); ok {
		_spec.SetField(listingrun.FieldBathrooms, field.TypeFloat64, value)
		_node.Bathrooms = &value
	}
	if value, ok := _c.mutation.Sqft(); ok {
		_spec.SetField(listingrun.FieldSqft, field.TypeInt, value)
		_node.Sqft = &value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(listingrun.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(listingrun.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(listingrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(listingrun.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(listingrun.FieldErrors, field.TypeString, value)
		_node.Errors = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(listingrun.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(listingrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(listingrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DraftIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   listingrun.DraftTable,
			Columns: []string{listingrun.DraftColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listingdraft.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ListingRunCreateBulk is the builder for creating many ListingRun entities in bulk.
type ListingRunCreateBulk struct {
	config
	err      error
	builders []*ListingRunCreate
}

// Save creates the ListingRun entities in the database.
func (_c *ListingRunCreateBulk) Save(ctx context.Context) ([]*ListingRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ListingRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListingRunMutation)
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
func (_c *ListingRunCreateBulk) SaveX(ctx context.Context) []*ListingRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
