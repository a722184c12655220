// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/homescribe/listinggen/gen/ent/listingdraft"
	"github.com/homescribe/listinggen/gen/ent/listingrun"
)

// ListingDraft is the model entity for the ListingDraft schema.
type ListingDraft struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// PriceBlock holds the value of the "price_block" field.
	PriceBlock string `json:"price_block,omitempty"`
	// FormattedListing holds the value of the "formatted_listing" field.
	FormattedListing string `json:"formatted_listing,omitempty"`
	// PredictedPrice holds the value of the "predicted_price" field.
	PredictedPrice *float64 `json:"predicted_price,omitempty"`
	// PredictedPriceReasoning holds the value of the "predicted_price_reasoning" field.
	PredictedPriceReasoning *string `json:"predicted_price_reasoning,omitempty"`
	// ZipCode holds the value of the "zip_code" field.
	ZipCode *string `json:"zip_code,omitempty"`
	// Neighborhood holds the value of the "neighborhood" field.
	Neighborhood *string `json:"neighborhood,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ListingDraftQuery when eager-loading is set.
	Edges        ListingDraftEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ListingDraftEdges holds the relations/edges for other nodes in the graph.
type ListingDraftEdges struct {
	// Run holds the value of the run edge.
	Run *ListingRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ListingDraftEdges) RunOrErr() (*ListingRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: listingrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ListingDraft) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case listingdraft.FieldPredictedPrice:
			values[i] = new(sql.NullFloat64)
		case listingdraft.FieldTitle, listingdraft.FieldDescription, listingdraft.FieldPriceBlock, listingdraft.FieldFormattedListing, listingdraft.FieldPredictedPriceReasoning, listingdraft.FieldZipCode, listingdraft.FieldNeighborhood:
			values[i] = new(sql.NullString)
		case listingdraft.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case listingdraft.FieldID, listingdraft.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ListingDraft fields.
func (_m *ListingDraft) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case listingdraft.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case listingdraft.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case listingdraft.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case listingdraft.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case listingdraft.FieldPriceBlock:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price_block", values[i])
			} else if value.Valid {
				_m.PriceBlock = value.String
			}
		case listingdraft.FieldFormattedListing:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field formatted_listing", values[i])
			} else if value.Valid {
				_m.FormattedListing = value.String
			}
		case listingdraft.FieldPredictedPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_price", values[i])
			} else if value.Valid {
				_m.PredictedPrice = new(float64)
				*_m.PredictedPrice = value.Float64
			}
		case listingdraft.FieldPredictedPriceReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_price_reasoning", values[i])
			} else if value.Valid {
				_m.PredictedPriceReasoning = new(string)
				*_m.PredictedPriceReasoning = value.String
			}
		case listingdraft.FieldZipCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zip_code", values[i])
			} else if value.Valid {
				_m.ZipCode = new(string)
				*_m.ZipCode = value.String
			}
		case listingdraft.FieldNeighborhood:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field neighborhood", values[i])
			} else if value.Valid {
				_m.Neighborhood = new(string)
				*_m.Neighborhood = value.String
			}
		case listingdraft.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ListingDraft.
// This includes values selected through modifiers, order, etc.
func (_m *ListingDraft) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the ListingDraft entity.
func (_m *ListingDraft) QueryRun() *ListingRunQuery {
	return NewListingDraftClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this ListingDraft.
// Note that you need to call ListingDraft.Unwrap() before calling this method if this ListingDraft
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ListingDraft) Update() *ListingDraftUpdateOne {
	return NewListingDraftClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ListingDraft entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ListingDraft) Unwrap() *ListingDraft {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ListingDraft is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ListingDraft) String() string {
	var builder strings.Builder
	builder.WriteString("ListingDraft(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("price_block=")
	builder.WriteString(_m.PriceBlock)
	builder.WriteString(", ")
	builder.WriteString("formatted_listing=")
	builder.WriteString(_m.FormattedListing)
	builder.WriteString(", ")
	if v := _m.PredictedPrice; v != nil {
		builder.WriteString("predicted_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PredictedPriceReasoning; v != nil {
		builder.WriteString("predicted_price_reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ZipCode; v != nil {
		builder.WriteString("zip_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Neighborhood; v != nil {
		builder.WriteString("neighborhood=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ListingDrafts is a parsable slice of ListingDraft.
type ListingDrafts []*ListingDraft
