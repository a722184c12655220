// Code generated by ent, DO NOT EDIT.

package listingdraft

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the listingdraft type in the database.
	Label = "listing_draft"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPriceBlock holds the string denoting the price_block field in the database.
	FieldPriceBlock = "price_block"
	// FieldFormattedListing holds the string denoting the formatted_listing field in the database.
	FieldFormattedListing = "formatted_listing"
	// FieldPredictedPrice holds the string denoting the predicted_price field in the database.
	FieldPredictedPrice = "predicted_price"
	// FieldPredictedPriceReasoning holds the string denoting the predicted_price_reasoning field in the database.
	FieldPredictedPriceReasoning = "predicted_price_reasoning"
	// FieldZipCode holds the string denoting the zip_code field in the database.
	FieldZipCode = "zip_code"
	// FieldNeighborhood holds the string denoting the neighborhood field in the database.
	FieldNeighborhood = "neighborhood"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// Table holds the table name of the listingdraft in the database.
	Table = "listing_drafts"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "listing_drafts"
	// RunInverseTable is the table name for the ListingRun entity.
	// It exists in this package in order to avoid circular dependency with the "listingrun" package.
	RunInverseTable = "listing_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for listingdraft fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldTitle,
	FieldDescription,
	FieldPriceBlock,
	FieldFormattedListing,
	FieldPredictedPrice,
	FieldPredictedPriceReasoning,
	FieldZipCode,
	FieldNeighborhood,
	FieldCreatedAt,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// FormattedListingValidator is a validator for the "formatted_listing" field. It is called by the builders before save.
	FormattedListingValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ListingDraft queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriceBlock orders the results by the price_block field.
func ByPriceBlock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceBlock, opts...).ToFunc()
}

// ByFormattedListing orders the results by the formatted_listing field.
func ByFormattedListing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormattedListing, opts...).ToFunc()
}

// ByPredictedPrice orders the results by the predicted_price field.
func ByPredictedPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedPrice, opts...).ToFunc()
}

// ByPredictedPriceReasoning orders the results by the predicted_price_reasoning field.
func ByPredictedPriceReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedPriceReasoning, opts...).ToFunc()
}

// ByZipCode orders the results by the zip_code field.
func ByZipCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZipCode, opts...).ToFunc()
}

// ByNeighborhood orders the results by the neighborhood field.
func ByNeighborhood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeighborhood, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
	)
}
