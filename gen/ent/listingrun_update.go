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

// ListingRunUpdate is the builder for updating ListingRun entities.
type ListingRunUpdate struct {
	config
	hooks    []Hook
	mutation *ListingRunMutation
}

// Where appends a list predicates to the ListingRunUpdate builder.
func (_u *ListingRunUpdate) Where(ps ...predicate.ListingRun) *ListingRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ListingRunUpdate) SetRequestID(v uuid.UUID) *ListingRunUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableRequestID(v *uuid.UUID) *ListingRunUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *ListingRunUpdate) ClearRequestID() *ListingRunUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ListingRunUpdate) SetAddress(v string) *ListingRunUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableAddress(v *string) *ListingRunUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetListingType sets the "listing_type" field.
func (_u *ListingRunUpdate) SetListingType(v string) *ListingRunUpdate {
	_u.mutation.SetListingType(v)
	return _u
}

// SetNillableListingType sets the "listing_type" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableListingType(v *string) *ListingRunUpdate {
	if v != nil {
		_u.SetListingType(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ListingRunUpdate) SetRegion(v string) *ListingRunUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableRegion(v *string) *ListingRunUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetPropertyType sets the "property_type" field.
func (_u *ListingRunUpdate) SetPropertyType(v string) *ListingRunUpdate {
	_u.mutation.SetPropertyType(v)
	return _u
}

// SetNillablePropertyType sets the "property_type" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillablePropertyType(v *string) *ListingRunUpdate {
	if v != nil {
		_u.SetPropertyType(*v)
	}
	return _u
}

// ClearPropertyType clears the value of the "property_type" field.
func (_u *ListingRunUpdate) ClearPropertyType() *ListingRunUpdate {
	_u.mutation.ClearPropertyType()
	return _u
}

// SetBedrooms sets the "bedrooms" field.
func (_u *ListingRunUpdate) SetBedrooms(v int) *ListingRunUpdate {
	_u.mutation.ResetBedrooms()
	_u.mutation.SetBedrooms(v)
	return _u
}

// SetNillableBedrooms sets the "bedrooms" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableBedrooms(v *int) *ListingRunUpdate {
	if v != nil {
		_u.SetBedrooms(*v)
	}
	return _u
}

// AddBedrooms adds value to the "bedrooms" field.
func (_u *ListingRunUpdate) AddBedrooms(v int) *ListingRunUpdate {
	_u.mutation.AddBedrooms(v)
	return _u
}

// ClearBedrooms clears the value of the "bedrooms" field.
func (_u *ListingRunUpdate) ClearBedrooms() *ListingRunUpdate {
	_u.mutation.ClearBedrooms()
	return _u
}

// SetBathrooms sets the "bathrooms" field.
func (_u *ListingRunUpdate) SetBathrooms(v float64) *ListingRunUpdate {
	_u.mutation.ResetBathrooms()
	_u.mutation.SetBathrooms(v)
	return _u
}

// SetNillableBathrooms sets the "bathrooms" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableBathrooms(v *float64) *ListingRunUpdate {
	if v != nil {
		_u.SetBathrooms(*v)
	}
	return _u
}

// AddBathrooms adds value to the "bathrooms" field.
func (_u *ListingRunUpdate) AddBathrooms(v float64) *ListingRunUpdate {
	_u.mutation.AddBathrooms(v)
	return _u
}

// ClearBathrooms clears the value of the "bathrooms" field.
func (_u *ListingRunUpdate) ClearBathrooms() *ListingRunUpdate {
	_u.mutation.ClearBathrooms()
	return _u
}

// SetSqft sets the "sqft" field.
func (_u *ListingRunUpdate) SetSqft(v int) *ListingRunUpdate {
	_u.mutation.ResetSqft()
	_u.mutation.SetSqft(v)
	return _u
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableSqft(v *int) *ListingRunUpdate {
	if v != nil {
		_u.SetSqft(*v)
	}
	return _u
}

// AddSqft adds value to the "sqft" field.
func (_u *ListingRunUpdate) AddSqft(v int) *ListingRunUpdate {
	_u.mutation.AddSqft(v)
	return _u
}

// ClearSqft clears the value of the "sqft" field.
func (_u *ListingRunUpdate) ClearSqft() *ListingRunUpdate {
	_u.mutation.ClearSqft()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ListingRunUpdate) SetPrice(v float64) *ListingRunUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillablePrice(v *float64) *ListingRunUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ListingRunUpdate) AddPrice(v float64) *ListingRunUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *ListingRunUpdate) ClearPrice() *ListingRunUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ListingRunUpdate) SetNotes(v string) *ListingRunUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableNotes(v *string) *ListingRunUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ListingRunUpdate) ClearNotes() *ListingRunUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ListingRunUpdate) SetStatus(v string) *ListingRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableStatus(v *string) *ListingRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ListingRunUpdate) SetErrorCount(v int) *ListingRunUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableErrorCount(v *int) *ListingRunUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ListingRunUpdate) AddErrorCount(v int) *ListingRunUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *ListingRunUpdate) SetErrors(v string) *ListingRunUpdate {
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableErrors(v *string) *ListingRunUpdate {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *ListingRunUpdate) ClearErrors() *ListingRunUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ListingRunUpdate) SetDurationMs(v int64) *ListingRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableDurationMs(v *int64) *ListingRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ListingRunUpdate) AddDurationMs(v int64) *ListingRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ListingRunUpdate) ClearDurationMs() *ListingRunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingRunUpdate) SetCreatedAt(v time.Time) *ListingRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableCreatedAt(v *time.Time) *ListingRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingRunUpdate) SetUpdatedAt(v time.Time) *ListingRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDraftID sets the "draft" edge to the ListingDraft entity by ID.
func (_u *ListingRunUpdate) SetDraftID(id uuid.UUID) *ListingRunUpdate {
	_u.mutation.SetDraftID(id)
	return _u
}

// SetNillableDraftID sets the "draft" edge to the ListingDraft entity by ID if the given value is not nil.
func (_u *ListingRunUpdate) SetNillableDraftID(id *uuid.UUID) *ListingRunUpdate {
	if id != nil {
		_u = _u.SetDraftID(*id)
	}
	return _u
}

// SetDraft sets the "draft" edge to the ListingDraft entity.
func (_u *ListingRunUpdate) SetDraft(v *ListingDraft) *ListingRunUpdate {
	return _u.SetDraftID(v.ID)
}

// Mutation returns the ListingRunMutation object of the builder.
func (_u *ListingRunUpdate) Mutation() *ListingRunMutation {
	return _u.mutation
}

// ClearDraft clears the "draft" edge to the ListingDraft entity.
func (_u *ListingRunUpdate) ClearDraft() *ListingRunUpdate {
	_u.mutation.ClearDraft()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListingRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListingRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listingrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := listingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ListingRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ListingRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listingrun.Table, listingrun.Columns, sqlgraph.NewFieldSpec(listingrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(listingrun.FieldRequestID, field.TypeUUID, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(listingrun.FieldRequestID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(listingrun.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.ListingType(); ok {
		_spec.SetField(listingrun.FieldListingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(listingrun.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyType(); ok {
		_spec.SetField(listingrun.FieldPropertyType, field.TypeString, value)
	}
	if _u.mutation.PropertyTypeCleared() {
		_spec.ClearField(listingrun.FieldPropertyType, field.TypeString)
	}
	if value, ok := _u.mutation.Bedrooms(); ok {
		_spec.SetField(listingrun.FieldBedrooms, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBedrooms(); ok {
		_spec.AddField(listingrun.FieldBedrooms, field.TypeInt, value)
	}
	if _u.mutation.BedroomsCleared() {
		_spec.ClearField(listingrun.FieldBedrooms, field.TypeInt)
	}
	if value, ok := _u.mutation.Bathrooms(); ok {
		_spec.SetField(listingrun.FieldBathrooms, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBathrooms(); ok {
		_spec.AddField(listingrun.FieldBathrooms, field.TypeFloat64, value)
	}
	if _u.mutation.BathroomsCleared() {
		_spec.ClearField(listingrun.FieldBathrooms, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sqft(); ok {
		_spec.SetField(listingrun.FieldSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSqft(); ok {
		_spec.AddField(listingrun.FieldSqft, field.TypeInt, value)
	}
	if _u.mutation.SqftCleared() {
		_spec.ClearField(listingrun.FieldSqft, field.TypeInt)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(listingrun.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(listingrun.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(listingrun.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(listingrun.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(listingrun.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(listingrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(listingrun.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(listingrun.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(listingrun.FieldErrors, field.TypeString, value)
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(listingrun.FieldErrors, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(listingrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(listingrun.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(listingrun.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listingrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listingrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DraftCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DraftIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listingrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListingRunUpdateOne is the builder for updating a single ListingRun entity.
type ListingRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListingRunMutation
}

// SetRequestID sets the "request_id" field.
func (_u *ListingRunUpdateOne) SetRequestID(v uuid.UUID) *ListingRunUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableRequestID(v *uuid.UUID) *ListingRunUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *ListingRunUpdateOne) ClearRequestID() *ListingRunUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ListingRunUpdateOne) SetAddress(v string) *ListingRunUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableAddress(v *string) *ListingRunUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetListingType sets the "listing_type" field.
func (_u *ListingRunUpdateOne) SetListingType(v string) *ListingRunUpdateOne {
	_u.mutation.SetListingType(v)
	return _u
}

// SetNillableListingType sets the "listing_type" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableListingType(v *string) *ListingRunUpdateOne {
	if v != nil {
		_u.SetListingType(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ListingRunUpdateOne) SetRegion(v string) *ListingRunUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableRegion(v *string) *ListingRunUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetPropertyType sets the "property_type" field.
func (_u *ListingRunUpdateOne) SetPropertyType(v string) *ListingRunUpdateOne {
	_u.mutation.SetPropertyType(v)
	return _u
}

// SetNillablePropertyType sets the "property_type" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillablePropertyType(v *string) *ListingRunUpdateOne {
	if v != nil {
		_u.SetPropertyType(*v)
	}
	return _u
}

// ClearPropertyType clears the value of the "property_type" field.
func (_u *ListingRunUpdateOne) ClearPropertyType() *ListingRunUpdateOne {
	_u.mutation.ClearPropertyType()
	return _u
}

// SetBedrooms sets the "bedrooms" field.
func (_u *ListingRunUpdateOne) SetBedrooms(v int) *ListingRunUpdateOne {
	_u.mutation.ResetBedrooms()
	_u.mutation.SetBedrooms(v)
	return _u
}

// SetNillableBedrooms sets the "bedrooms" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableBedrooms(v *int) *ListingRunUpdateOne {
	if v != nil {
		_u.SetBedrooms(*v)
	}
	return _u
}

// AddBedrooms adds value to the "bedrooms" field.
func (_u *ListingRunUpdateOne) AddBedrooms(v int) *ListingRunUpdateOne {
	_u.mutation.AddBedrooms(v)
	return _u
}

// ClearBedrooms clears the value of the "bedrooms" field.
func (_u *ListingRunUpdateOne) ClearBedrooms() *ListingRunUpdateOne {
	_u.mutation.ClearBedrooms()
	return _u
}

// SetBathrooms sets the "bathrooms" field.
func (_u *ListingRunUpdateOne) SetBathrooms(v float64) *ListingRunUpdateOne {
	_u.mutation.ResetBathrooms()
	_u.mutation.SetBathrooms(v)
	return _u
}

// SetNillableBathrooms sets the "bathrooms" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableBathrooms(v *float64) *ListingRunUpdateOne {
	if v != nil {
		_u.SetBathrooms(*v)
	}
	return _u
}

// AddBathrooms adds value to the "bathrooms" field.
func (_u *ListingRunUpdateOne) AddBathrooms(v float64) *ListingRunUpdateOne {
	_u.mutation.AddBathrooms(v)
	return _u
}

// ClearBathrooms clears the value of the "bathrooms" field.
func (_u *ListingRunUpdateOne) ClearBathrooms() *ListingRunUpdateOne {
	_u.mutation.ClearBathrooms()
	return _u
}

// SetSqft sets the "sqft" field.
func (_u *ListingRunUpdateOne) SetSqft(v int) *ListingRunUpdateOne {
	_u.mutation.ResetSqft()
	_u.mutation.SetSqft(v)
	return _u
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableSqft(v *int) *ListingRunUpdateOne {
	if v != nil {
		_u.SetSqft(*v)
	}
	return _u
}

// AddSqft adds value to the "sqft" field.
func (_u *ListingRunUpdateOne) AddSqft(v int) *ListingRunUpdateOne {
	_u.mutation.AddSqft(v)
	return _u
}

// ClearSqft clears the value of the "sqft" field.
func (_u *ListingRunUpdateOne) ClearSqft() *ListingRunUpdateOne {
	_u.mutation.ClearSqft()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ListingRunUpdateOne) SetPrice(v float64) *ListingRunUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillablePrice(v *float64) *ListingRunUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ListingRunUpdateOne) AddPrice(v float64) *ListingRunUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *ListingRunUpdateOne) ClearPrice() *ListingRunUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ListingRunUpdateOne) SetNotes(v string) *ListingRunUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableNotes(v *string) *ListingRunUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ListingRunUpdateOne) ClearNotes() *ListingRunUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ListingRunUpdateOne) SetStatus(v string) *ListingRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableStatus(v *string) *ListingRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ListingRunUpdateOne) SetErrorCount(v int) *ListingRunUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableErrorCount(v *int) *ListingRunUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ListingRunUpdateOne) AddErrorCount(v int) *ListingRunUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *ListingRunUpdateOne) SetErrors(v string) *ListingRunUpdateOne {
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableErrors(v *string) *ListingRunUpdateOne {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *ListingRunUpdateOne) ClearErrors() *ListingRunUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ListingRunUpdateOne) SetDurationMs(v int64) *ListingRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableDurationMs(v *int64) *ListingRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ListingRunUpdateOne) AddDurationMs(v int64) *ListingRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ListingRunUpdateOne) ClearDurationMs() *ListingRunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingRunUpdateOne) SetCreatedAt(v time.Time) *ListingRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableCreatedAt(v *time.Time) *ListingRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingRunUpdateOne) SetUpdatedAt(v time.Time) *ListingRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDraftID sets the "draft" edge to the ListingDraft entity by ID.
func (_u *ListingRunUpdateOne) SetDraftID(id uuid.UUID) *ListingRunUpdateOne {
	_u.mutation.SetDraftID(id)
	return _u
}

// SetNillableDraftID sets the "draft" edge to the ListingDraft entity by ID if the given value is not nil.
func (_u *ListingRunUpdateOne) SetNillableDraftID(id *uuid.UUID) *ListingRunUpdateOne {
	if id != nil {
		_u = _u.SetDraftID(*id)
	}
	return _u
}

// SetDraft sets the "draft" edge to the ListingDraft entity.
func (_u *ListingRunUpdateOne) SetDraft(v *ListingDraft) *ListingRunUpdateOne {
	return _u.SetDraftID(v.ID)
}

// Mutation returns the ListingRunMutation object of the builder.
func (_u *ListingRunUpdateOne) Mutation() *ListingRunMutation {
	return _u.mutation
}

// ClearDraft clears the "draft" edge to the ListingDraft entity.
func (_u *ListingRunUpdateOne) ClearDraft() *ListingRunUpdateOne {
	_u.mutation.ClearDraft()
	return _u
}

// Where appends a list predicates to the ListingRunUpdate builder.
func (_u *ListingRunUpdateOne) Where(ps ...predicate.ListingRun) *ListingRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListingRunUpdateOne) Select(field string, fields ...string) *ListingRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ListingRun entity.
func (_u *ListingRunUpdateOne) Save(ctx context.Context) (*ListingRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingRunUpdateOne) SaveX(ctx context.Context) *ListingRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListingRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listingrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := listingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ListingRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ListingRunUpdateOne) sqlSave(ctx context.Context) (_node *ListingRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listingrun.Table, listingrun.Columns, sqlgraph.NewFieldSpec(listingrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ListingRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listingrun.FieldID)
		for _, f := range fields {
			if !listingrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listingrun.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(listingrun.FieldRequestID, field.TypeUUID, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(listingrun.FieldRequestID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(listingrun.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.ListingType(); ok {
		_spec.SetField(listingrun.FieldListingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(listingrun.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyType(); ok {
		_spec.SetField(listingrun.FieldPropertyType, field.TypeString, value)
	}
	if _u.mutation.PropertyTypeCleared() {
		_spec.ClearField(listingrun.FieldPropertyType, field.TypeString)
	}
	if value, ok := _u.mutation.Bedrooms(); ok {
		_spec.SetField(listingrun.FieldBedrooms, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBedrooms(); ok {
		_spec.AddField(listingrun.FieldBedrooms, field.TypeInt, value)
	}
	if _u.mutation.BedroomsCleared() {
		_spec.ClearField(listingrun.FieldBedrooms, field.TypeInt)
	}
	if value, ok := _u.mutation.Bathrooms(); ok {
		_spec.SetField(listingrun.FieldBathrooms, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBathrooms(); ok {
		_spec.AddField(listingrun.FieldBathrooms, field.TypeFloat64, value)
	}
	if _u.mutation.BathroomsCleared() {
		_spec.ClearField(listingrun.FieldBathrooms, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sqft(); ok {
		_spec.SetField(listingrun.FieldSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSqft(); ok {
		_spec.AddField(listingrun.FieldSqft, field.TypeInt, value)
	}
	if _u.mutation.SqftCleared() {
		_spec.ClearField(listingrun.FieldSqft, field.TypeInt)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(listingrun.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(listingrun.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(listingrun.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(listingrun.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(listingrun.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(listingrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(listingrun.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(listingrun.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(listingrun.FieldErrors, field.TypeString, value)
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(listingrun.FieldErrors, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(listingrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(listingrun.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(listingrun.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listingrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listingrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DraftCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DraftIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ListingRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listingrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
