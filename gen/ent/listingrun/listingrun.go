// Code generated by ent, DO NOT EDIT.

package listingrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the listingrun type in the database.
	Label = "listing_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldListingType holds the string denoting the listing_type field in the database.
	FieldListingType = "listing_type"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldPropertyType holds the string denoting the property_type field in the database.
	FieldPropertyType = "property_type"
	// FieldBedrooms holds the string denoting the bedrooms field in the database.
	FieldBedrooms = "bedrooms"
	// FieldBathrooms holds the string denoting the bathrooms field in the database.
	FieldBathrooms = "bathrooms"
	// FieldSqft holds the string denoting the sqft field in the database.
	FieldSqft = "sqft"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDraft holds the string denoting the draft edge name in mutations.
	EdgeDraft = "draft"
	// Table holds the table name of the listingrun in the database.
	Table = "listing_runs"
	// DraftTable is the table that holds the draft relation/edge.
	DraftTable = "listing_drafts"
	// DraftInverseTable is the table name for the ListingDraft entity.
	// It exists in this package in order to avoid circular dependency with the "listingdraft" package.
	DraftInverseTable = "listing_drafts"
	// DraftColumn is the table column denoting the draft relation/edge.
	DraftColumn = "run_id"
)

// Columns holds all SQL columns for listingrun fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldAddress,
	FieldListingType,
	FieldRegion,
	FieldPropertyType,
	FieldBedrooms,
	FieldBathrooms,
	FieldSqft,
	FieldPrice,
	FieldNotes,
	FieldStatus,
	FieldErrorCount,
	FieldErrors,
	FieldDurationMs,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ListingRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByListingType orders the results by the listing_type field.
func ByListingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListingType, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByPropertyType orders the results by the property_type field.
func ByPropertyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyType, opts...).ToFunc()
}

// ByBedrooms orders the results by the bedrooms field.
func ByBedrooms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBedrooms, opts...).ToFunc()
}

// ByBathrooms orders the results by the bathrooms field.
func ByBathrooms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBathrooms, opts...).ToFunc()
}

// BySqft orders the results by the sqft field.
func BySqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSqft, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByErrors orders the results by the errors field.
func ByErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrors, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDraftField orders the results by draft field.
func ByDraftField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDraftStep(), sql.OrderByField(field, opts...))
	}
}
func newDraftStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DraftInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DraftTable, DraftColumn),
	)
}
