// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/homescribe/listinggen/gen/ent/listingdraft"
	"github.com/homescribe/listinggen/gen/ent/listingrun"
	"github.com/homescribe/listinggen/gen/ent/predicate"
)

// ListingDraftUpdate is the builder for updating ListingDraft entities.
type ListingDraftUpdate struct {
	config
	hooks    []Hook
	mutation *ListingDraftMutation
}

// Where appends a list predicates to the ListingDraftUpdate builder.
func (_u *ListingDraftUpdate) Where(ps ...predicate.ListingDraft) *ListingDraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ListingDraftUpdate) SetRunID(v uuid.UUID) *ListingDraftUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillableRunID(v *uuid.UUID) *ListingDraftUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ListingDraftUpdate) SetTitle(v string) *ListingDraftUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillableTitle(v *string) *ListingDraftUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ListingDraftUpdate) SetDescription(v string) *ListingDraftUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillableDescription(v *string) *ListingDraftUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPriceBlock sets the "price_block" field.
func (_u *ListingDraftUpdate) SetPriceBlock(v string) *ListingDraftUpdate {
	_u.mutation.SetPriceBlock(v)
	return _u
}

// SetNillablePriceBlock sets the "price_block" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillablePriceBlock(v *string) *ListingDraftUpdate {
	if v != nil {
		_u.SetPriceBlock(*v)
	}
	return _u
}

// SetFormattedListing sets the "formatted_listing" field.
func (_u *ListingDraftUpdate) SetFormattedListing(v string) *ListingDraftUpdate {
	_u.mutation.SetFormattedListing(v)
	return _u
}

// SetNillableFormattedListing sets the "formatted_listing" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillableFormattedListing(v *string) *ListingDraftUpdate {
	if v != nil {
		_u.SetFormattedListing(*v)
	}
	return _u
}

// SetPredictedPrice sets the "predicted_price" field.
func (_u *ListingDraftUpdate) SetPredictedPrice(v float64) *ListingDraftUpdate {
	_u.mutation.ResetPredictedPrice()
	_u.mutation.SetPredictedPrice(v)
	return _u
}

// SetNillablePredictedPrice sets the "predicted_price" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillablePredictedPrice(v *float64) *ListingDraftUpdate {
	if v != nil {
		_u.SetPredictedPrice(*v)
	}
	return _u
}

// AddPredictedPrice adds value to the "predicted_price" field.
func (_u *ListingDraftUpdate) AddPredictedPrice(v float64) *ListingDraftUpdate {
	_u.mutation.AddPredictedPrice(v)
	return _u
}

// ClearPredictedPrice clears the value of the "predicted_price" field.
func (_u *ListingDraftUpdate) ClearPredictedPrice() *ListingDraftUpdate {
	_u.mutation.ClearPredictedPrice()
	return _u
}

// SetPredictedPriceReasoning sets the "predicted_price_reasoning" field.
func (_u *ListingDraftUpdate) SetPredictedPriceReasoning(v string) *ListingDraftUpdate {
	_u.mutation.SetPredictedPriceReasoning(v)
	return _u
}

// SetNillablePredictedPriceReasoning sets the "predicted_price_reasoning" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillablePredictedPriceReasoning(v *string) *ListingDraftUpdate {
	if v != nil {
		_u.SetPredictedPriceReasoning(*v)
	}
	return _u
}

// ClearPredictedPriceReasoning clears the value of the "predicted_price_reasoning" field.
func (_u *ListingDraftUpdate) ClearPredictedPriceReasoning() *ListingDraftUpdate {
	_u.mutation.ClearPredictedPriceReasoning()
	return _u
}

// SetZipCode sets the "zip_code" field.
func (_u *ListingDraftUpdate) SetZipCode(v string) *ListingDraftUpdate {
	_u.mutation.SetZipCode(v)
	return _u
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillableZipCode(v *string) *ListingDraftUpdate {
	if v != nil {
		_u.SetZipCode(*v)
	}
	return _u
}

// ClearZipCode clears the value of the "zip_code" field.
func (_u *ListingDraftUpdate) ClearZipCode() *ListingDraftUpdate {
	_u.mutation.ClearZipCode()
	return _u
}

// SetNeighborhood sets the "neighborhood" field.
func (_u *ListingDraftUpdate) SetNeighborhood(v string) *ListingDraftUpdate {
	_u.mutation.SetNeighborhood(v)
	return _u
}

// SetNillableNeighborhood sets the "neighborhood" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillableNeighborhood(v *string) *ListingDraftUpdate {
	if v != nil {
		_u.SetNeighborhood(*v)
	}
	return _u
}

// ClearNeighborhood clears the value of the "neighborhood" field.
func (_u *ListingDraftUpdate) ClearNeighborhood() *ListingDraftUpdate {
	_u.mutation.ClearNeighborhood()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingDraftUpdate) SetCreatedAt(v time.Time) *ListingDraftUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingDraftUpdate) SetNillableCreatedAt(v *time.Time) *ListingDraftUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the ListingRun entity.
func (_u *ListingDraftUpdate) SetRun(v *ListingRun) *ListingDraftUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the ListingDraftMutation object of the builder.
func (_u *ListingDraftUpdate) Mutation() *ListingDraftMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ListingRun entity.
func (_u *ListingDraftUpdate) ClearRun() *ListingDraftUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListingDraftUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingDraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListingDraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingDraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingDraftUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := listingdraft.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ListingDraft.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FormattedListing(); ok {
		if err := listingdraft.FormattedListingValidator(v); err != nil {
			return &ValidationError{Name: "formatted_listing", err: fmt.Errorf(`ent: validator failed for field "ListingDraft.formatted_listing": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ListingDraft.run"`)
	}
	return nil
}

func (_u *ListingDraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listingdraft.Table, listingdraft.Columns, sqlgraph.NewFieldSpec(listingdraft.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(listingdraft.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(listingdraft.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceBlock(); ok {
		_spec.SetField(listingdraft.FieldPriceBlock, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormattedListing(); ok {
		_spec.SetField(listingdraft.FieldFormattedListing, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedPrice(); ok {
		_spec.SetField(listingdraft.FieldPredictedPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPredictedPrice(); ok {
		_spec.AddField(listingdraft.FieldPredictedPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PredictedPriceCleared() {
		_spec.ClearField(listingdraft.FieldPredictedPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PredictedPriceReasoning(); ok {
		_spec.SetField(listingdraft.FieldPredictedPriceReasoning, field.TypeString, value)
	}
	if _u.mutation.PredictedPriceReasoningCleared() {
		_spec.ClearField(listingdraft.FieldPredictedPriceReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ZipCode(); ok {
		_spec.SetField(listingdraft.FieldZipCode, field.TypeString, value)
	}
	if _u.mutation.ZipCodeCleared() {
		_spec.ClearField(listingdraft.FieldZipCode, field.TypeString)
	}
	if value, ok := _u.mutation.Neighborhood(); ok {
		_spec.SetField(listingdraft.FieldNeighborhood, field.TypeString, value)
	}
	if _u.mutation.NeighborhoodCleared() {
		_spec.ClearField(listingdraft.FieldNeighborhood, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listingdraft.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listingdraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListingDraftUpdateOne is the builder for updating a single ListingDraft entity.
type ListingDraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListingDraftMutation
}

// SetRunID sets the "run_id" field.
func (_u *ListingDraftUpdateOne) SetRunID(v uuid.UUID) *ListingDraftUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillableRunID(v *uuid.UUID) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ListingDraftUpdateOne) SetTitle(v string) *ListingDraftUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillableTitle(v *string) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ListingDraftUpdateOne) SetDescription(v string) *ListingDraftUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillableDescription(v *string) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPriceBlock sets the "price_block" field.
func (_u *ListingDraftUpdateOne) SetPriceBlock(v string) *ListingDraftUpdateOne {
	_u.mutation.SetPriceBlock(v)
	return _u
}

// SetNillablePriceBlock sets the "price_block" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillablePriceBlock(v *string) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetPriceBlock(*v)
	}
	return _u
}

// SetFormattedListing sets the "formatted_listing" field.
func (_u *ListingDraftUpdateOne) SetFormattedListing(v string) *ListingDraftUpdateOne {
	_u.mutation.SetFormattedListing(v)
	return _u
}

// SetNillableFormattedListing sets the "formatted_listing" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillableFormattedListing(v *string) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetFormattedListing(*v)
	}
	return _u
}

// SetPredictedPrice sets the "predicted_price" field.
func (_u *ListingDraftUpdateOne) SetPredictedPrice(v float64) *ListingDraftUpdateOne {
	_u.mutation.ResetPredictedPrice()
	_u.mutation.SetPredictedPrice(v)
	return _u
}

// SetNillablePredictedPrice sets the "predicted_price" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillablePredictedPrice(v *float64) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetPredictedPrice(*v)
	}
	return _u
}

// AddPredictedPrice adds value to the "predicted_price" field.
func (_u *ListingDraftUpdateOne) AddPredictedPrice(v float64) *ListingDraftUpdateOne {
	_u.mutation.AddPredictedPrice(v)
	return _u
}

// ClearPredictedPrice clears the value of the "predicted_price" field.
func (_u *ListingDraftUpdateOne) ClearPredictedPrice() *ListingDraftUpdateOne {
	_u.mutation.ClearPredictedPrice()
	return _u
}

// SetPredictedPriceReasoning sets the "predicted_price_reasoning" field.
func (_u *ListingDraftUpdateOne) SetPredictedPriceReasoning(v string) *ListingDraftUpdateOne {
	_u.mutation.SetPredictedPriceReasoning(v)
	return _u
}

// SetNillablePredictedPriceReasoning sets the "predicted_price_reasoning" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillablePredictedPriceReasoning(v *string) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetPredictedPriceReasoning(*v)
	}
	return _u
}

// ClearPredictedPriceReasoning clears the value of the "predicted_price_reasoning" field.
func (_u *ListingDraftUpdateOne) ClearPredictedPriceReasoning() *ListingDraftUpdateOne {
	_u.mutation.ClearPredictedPriceReasoning()
	return _u
}

// SetZipCode sets the "zip_code" field.
func (_u *ListingDraftUpdateOne) SetZipCode(v string) *ListingDraftUpdateOne {
	_u.mutation.SetZipCode(v)
	return _u
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillableZipCode(v *string) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetZipCode(*v)
	}
	return _u
}

// ClearZipCode clears the value of the "zip_code" field.
func (_u *ListingDraftUpdateOne) ClearZipCode() *ListingDraftUpdateOne {
	_u.mutation.ClearZipCode()
	return _u
}

// SetNeighborhood sets the "neighborhood" field.
func (_u *ListingDraftUpdateOne) SetNeighborhood(v string) *ListingDraftUpdateOne {
	_u.mutation.SetNeighborhood(v)
	return _u
}

// SetNillableNeighborhood sets the "neighborhood" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillableNeighborhood(v *string) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetNeighborhood(*v)
	}
	return _u
}

// ClearNeighborhood clears the value of the "neighborhood" field.
func (_u *ListingDraftUpdateOne) ClearNeighborhood() *ListingDraftUpdateOne {
	_u.mutation.ClearNeighborhood()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingDraftUpdateOne) SetCreatedAt(v time.Time) *ListingDraftUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingDraftUpdateOne) SetNillableCreatedAt(v *time.Time) *ListingDraftUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the ListingRun entity.
func (_u *ListingDraftUpdateOne) SetRun(v *ListingRun) *ListingDraftUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the ListingDraftMutation object of the builder.
func (_u *ListingDraftUpdateOne) Mutation() *ListingDraftMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ListingRun entity.
func (_u *ListingDraftUpdateOne) ClearRun() *ListingDraftUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the ListingDraftUpdate builder.
func (_u *ListingDraftUpdateOne) Where(ps ...predicate.ListingDraft) *ListingDraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListingDraftUpdateOne) Select(field string, fields ...string) *ListingDraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ListingDraft entity.
func (_u *ListingDraftUpdateOne) Save(ctx context.Context) (*ListingDraft, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingDraftUpdateOne) SaveX(ctx context.Context) *ListingDraft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListingDraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingDraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingDraftUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := listingdraft.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ListingDraft.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FormattedListing(); ok {
		if err := listingdraft.FormattedListingValidator(v); err != nil {
			return &ValidationError{Name: "formatted_listing", err: fmt.Errorf(`ent: validator failed for field "ListingDraft.formatted_listing": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ListingDraft.run"`)
	}
	return nil
}

func (_u *ListingDraftUpdateOne) sqlSave(ctx context.Context) (_node *ListingDraft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listingdraft.Table, listingdraft.Columns, sqlgraph.NewFieldSpec(listingdraft.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ListingDraft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listingdraft.FieldID)
		for _, f := range fields {
			if !listingdraft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listingdraft.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(listingdraft.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(listingdraft.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceBlock(); ok {
		_spec.SetField(listingdraft.FieldPriceBlock, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormattedListing(); ok {
		_spec.SetField(listingdraft.FieldFormattedListing, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedPrice(); ok {
		_spec.SetField(listingdraft.FieldPredictedPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPredictedPrice(); ok {
		_spec.AddField(listingdraft.FieldPredictedPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PredictedPriceCleared() {
		_spec.ClearField(listingdraft.FieldPredictedPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PredictedPriceReasoning(); ok {
		_spec.SetField(listingdraft.FieldPredictedPriceReasoning, field.TypeString, value)
	}
	if _u.mutation.PredictedPriceReasoningCleared() {
		_spec.ClearField(listingdraft.FieldPredictedPriceReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ZipCode(); ok {
		_spec.SetField(listingdraft.FieldZipCode, field.TypeString, value)
	}
	if _u.mutation.ZipCodeCleared() {
		_spec.ClearField(listingdraft.FieldZipCode, field.TypeString)
	}
	if value, ok := _u.mutation.Neighborhood(); ok {
		_spec.SetField(listingdraft.FieldNeighborhood, field.TypeString, value)
	}
	if _u.mutation.NeighborhoodCleared() {
		_spec.ClearField(listingdraft.FieldNeighborhood, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listingdraft.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ListingDraft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listingdraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
