// Code generated by ent, DO NOT EDIT.

package listingrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/homescribe/listinggen/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldRequestID, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldAddress, v))
}

// ListingType applies equality check predicate on the "listing_type" field. It's identical to ListingTypeEQ.
func ListingType(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldListingType, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldRegion, v))
}

// PropertyType applies equality check predicate on the "property_type" field. It's identical to PropertyTypeEQ.
func PropertyType(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldPropertyType, v))
}

// Bedrooms applies equality check predicate on the "bedrooms" field. It's identical to BedroomsEQ.
func Bedrooms(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldBedrooms, v))
}

// Bathrooms applies equality check predicate on the "bathrooms" field. It's identical to BathroomsEQ.
func Bathrooms(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldBathrooms, v))
}

// Sqft applies equality check predicate on the "sqft" field. It's identical to SqftEQ.
func Sqft(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldSqft, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldPrice, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldNotes, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldStatus, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldErrorCount, v))
}

// Errors applies equality check predicate on the "errors" field. It's identical to ErrorsEQ.
func Errors(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldErrors, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v uuid.UUID) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDIsNil applies the IsNil predicate on the "request_id" field.
func RequestIDIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldRequestID))
}

// RequestIDNotNil applies the NotNil predicate on the "request_id" field.
func RequestIDNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldRequestID))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContainsFold(FieldAddress, v))
}

// ListingTypeEQ applies the EQ predicate on the "listing_type" field.
func ListingTypeEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldListingType, v))
}

// ListingTypeNEQ applies the NEQ predicate on the "listing_type" field.
func ListingTypeNEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldListingType, v))
}

// ListingTypeIn applies the In predicate on the "listing_type" field.
func ListingTypeIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldListingType, vs...))
}

// ListingTypeNotIn applies the NotIn predicate on the "listing_type" field.
func ListingTypeNotIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldListingType, vs...))
}

// ListingTypeGT applies the GT predicate on the "listing_type" field.
func ListingTypeGT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldListingType, v))
}

// ListingTypeGTE applies the GTE predicate on the "listing_type" field.
func ListingTypeGTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldListingType, v))
}

// ListingTypeLT applies the LT predicate on the "listing_type" field.
func ListingTypeLT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldListingType, v))
}

// ListingTypeLTE applies the LTE predicate on the "listing_type" field.
func ListingTypeLTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldListingType, v))
}

// ListingTypeContains applies the Contains predicate on the "listing_type" field.
func ListingTypeContains(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContains(FieldListingType, v))
}

// ListingTypeHasPrefix applies the HasPrefix predicate on the "listing_type" field.
func ListingTypeHasPrefix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasPrefix(FieldListingType, v))
}

// ListingTypeHasSuffix applies the HasSuffix predicate on the "listing_type" field.
func ListingTypeHasSuffix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasSuffix(FieldListingType, v))
}

// ListingTypeEqualFold applies the EqualFold predicate on the "listing_type" field.
func ListingTypeEqualFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEqualFold(FieldListingType, v))
}

// ListingTypeContainsFold applies the ContainsFold predicate on the "listing_type" field.
func ListingTypeContainsFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContainsFold(FieldListingType, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContainsFold(FieldRegion, v))
}

// PropertyTypeEQ applies the EQ predicate on the "property_type" field.
func PropertyTypeEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldPropertyType, v))
}

// PropertyTypeNEQ applies the NEQ predicate on the "property_type" field.
func PropertyTypeNEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldPropertyType, v))
}

// PropertyTypeIn applies the In predicate on the "property_type" field.
func PropertyTypeIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldPropertyType, vs...))
}

// PropertyTypeNotIn applies the NotIn predicate on the "property_type" field.
func PropertyTypeNotIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldPropertyType, vs...))
}

// PropertyTypeGT applies the GT predicate on the "property_type" field.
func PropertyTypeGT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldPropertyType, v))
}

// PropertyTypeGTE applies the GTE predicate on the "property_type" field.
func PropertyTypeGTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldPropertyType, v))
}

// PropertyTypeLT applies the LT predicate on the "property_type" field.
func PropertyTypeLT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldPropertyType, v))
}

// PropertyTypeLTE applies the LTE predicate on the "property_type" field.
func PropertyTypeLTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldPropertyType, v))
}

// PropertyTypeContains applies the Contains predicate on the "property_type" field.
func PropertyTypeContains(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContains(FieldPropertyType, v))
}

// PropertyTypeHasPrefix applies the HasPrefix predicate on the "property_type" field.
func PropertyTypeHasPrefix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasPrefix(FieldPropertyType, v))
}

// PropertyTypeHasSuffix applies the HasSuffix predicate on the "property_type" field.
func PropertyTypeHasSuffix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasSuffix(FieldPropertyType, v))
}

// PropertyTypeIsNil applies the IsNil predicate on the "property_type" field.
func PropertyTypeIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldPropertyType))
}

// PropertyTypeNotNil applies the NotNil predicate on the "property_type" field.
func PropertyTypeNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldPropertyType))
}

// PropertyTypeEqualFold applies the EqualFold predicate on the "property_type" field.
func PropertyTypeEqualFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEqualFold(FieldPropertyType, v))
}

// PropertyTypeContainsFold applies the ContainsFold predicate on the "property_type" field.
func PropertyTypeContainsFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContainsFold(FieldPropertyType, v))
}

// BedroomsEQ applies the EQ predicate on the "bedrooms" field.
func BedroomsEQ(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldBedrooms, v))
}

// BedroomsNEQ applies the NEQ predicate on the "bedrooms" field.
func BedroomsNEQ(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldBedrooms, v))
}

// BedroomsIn applies the In predicate on the "bedrooms" field.
func BedroomsIn(vs ...int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldBedrooms, vs...))
}

// BedroomsNotIn applies the NotIn predicate on the "bedrooms" field.
func BedroomsNotIn(vs ...int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldBedrooms, vs...))
}

// BedroomsGT applies the GT predicate on the "bedrooms" field.
func BedroomsGT(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldBedrooms, v))
}

// BedroomsGTE applies the GTE predicate on the "bedrooms" field.
func BedroomsGTE(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldBedrooms, v))
}

// BedroomsLT applies the LT predicate on the "bedrooms" field.
func BedroomsLT(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldBedrooms, v))
}

// BedroomsLTE applies the LTE predicate on the "bedrooms" field.
func BedroomsLTE(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldBedrooms, v))
}

// BedroomsIsNil applies the IsNil predicate on the "bedrooms" field.
func BedroomsIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldBedrooms))
}

// BedroomsNotNil applies the NotNil predicate on the "bedrooms" field.
func BedroomsNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldBedrooms))
}

// BathroomsEQ applies the EQ predicate on the "bathrooms" field.
func BathroomsEQ(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldBathrooms, v))
}

// BathroomsNEQ applies the NEQ predicate on the "bathrooms" field.
func BathroomsNEQ(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldBathrooms, v))
}

// BathroomsIn applies the In predicate on the "bathrooms" field.
func BathroomsIn(vs ...float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldBathrooms, vs...))
}

// BathroomsNotIn applies the NotIn predicate on the "bathrooms" field.
func BathroomsNotIn(vs ...float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldBathrooms, vs...))
}

// BathroomsGT applies the GT predicate on the "bathrooms" field.
func BathroomsGT(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldBathrooms, v))
}

// BathroomsGTE applies the GTE predicate on the "bathrooms" field.
func BathroomsGTE(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldBathrooms, v))
}

// BathroomsLT applies the LT predicate on the "bathrooms" field.
func BathroomsLT(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldBathrooms, v))
}

// BathroomsLTE applies the LTE predicate on the "bathrooms" field.
func BathroomsLTE(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldBathrooms, v))
}

// BathroomsIsNil applies the IsNil predicate on the "bathrooms" field.
func BathroomsIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldBathrooms))
}

// BathroomsNotNil applies the NotNil predicate on the "bathrooms" field.
func BathroomsNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldBathrooms))
}

// SqftEQ applies the EQ predicate on the "sqft" field.
func SqftEQ(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldSqft, v))
}

// SqftNEQ applies the NEQ predicate on the "sqft" field.
func SqftNEQ(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldSqft, v))
}

// SqftIn applies the In predicate on the "sqft" field.
func SqftIn(vs ...int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldSqft, vs...))
}

// SqftNotIn applies the NotIn predicate on the "sqft" field.
func SqftNotIn(vs ...int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldSqft, vs...))
}

// SqftGT applies the GT predicate on the "sqft" field.
func SqftGT(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldSqft, v))
}

// SqftGTE applies the GTE predicate on the "sqft" field.
func SqftGTE(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldSqft, v))
}

// SqftLT applies the LT predicate on the "sqft" field.
func SqftLT(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldSqft, v))
}

// SqftLTE applies the LTE predicate on the "sqft" field.
func SqftLTE(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldSqft, v))
}

// SqftIsNil applies the IsNil predicate on the "sqft" field.
func SqftIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldSqft))
}

// SqftNotNil applies the NotNil predicate on the "sqft" field.
func SqftNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldSqft))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldPrice))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContainsFold(FieldNotes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldErrorCount, v))
}

// ErrorsEQ applies the EQ predicate on the "errors" field.
func ErrorsEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldErrors, v))
}

// ErrorsNEQ applies the NEQ predicate on the "errors" field.
func ErrorsNEQ(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldErrors, v))
}

// ErrorsIn applies the In predicate on the "errors" field.
func ErrorsIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldErrors, vs...))
}

// ErrorsNotIn applies the NotIn predicate on the "errors" field.
func ErrorsNotIn(vs ...string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldErrors, vs...))
}

// ErrorsGT applies the GT predicate on the "errors" field.
func ErrorsGT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldErrors, v))
}

// ErrorsGTE applies the GTE predicate on the "errors" field.
func ErrorsGTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldErrors, v))
}

// ErrorsLT applies the LT predicate on the "errors" field.
func ErrorsLT(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldErrors, v))
}

// ErrorsLTE applies the LTE predicate on the "errors" field.
func ErrorsLTE(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldErrors, v))
}

// ErrorsContains applies the Contains predicate on the "errors" field.
func ErrorsContains(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContains(FieldErrors, v))
}

// ErrorsHasPrefix applies the HasPrefix predicate on the "errors" field.
func ErrorsHasPrefix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasPrefix(FieldErrors, v))
}

// ErrorsHasSuffix applies the HasSuffix predicate on the "errors" field.
func ErrorsHasSuffix(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldHasSuffix(FieldErrors, v))
}

// ErrorsIsNil applies the IsNil predicate on the "errors" field.
func ErrorsIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldErrors))
}

// ErrorsNotNil applies the NotNil predicate on the "errors" field.
func ErrorsNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldErrors))
}

// ErrorsEqualFold applies the EqualFold predicate on the "errors" field.
func ErrorsEqualFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEqualFold(FieldErrors, v))
}

// ErrorsContainsFold applies the ContainsFold predicate on the "errors" field.
func ErrorsContainsFold(v string) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldContainsFold(FieldErrors, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotNull(FieldDurationMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ListingRun {
	return predicate.ListingRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDraft applies the HasEdge predicate on the "draft" edge.
func HasDraft() predicate.ListingRun {
	return predicate.ListingRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, DraftTable, DraftColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDraftWith applies the HasEdge predicate on the "draft" edge with a given conditions (other predicates).
func HasDraftWith(preds ...predicate.ListingDraft) predicate.ListingRun {
	return predicate.ListingRun(func(s *sql.Selector) {
		step := newDraftStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ListingRun) predicate.ListingRun {
	return predicate.ListingRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ListingRun) predicate.ListingRun {
	return predicate.ListingRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ListingRun) predicate.ListingRun {
	return predicate.ListingRun(sql.NotPredicates(p))
}
