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

// ListingRun is the model entity for the ListingRun schema.
type ListingRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID *uuid.UUID `json:"request_id,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// ListingType holds the value of the "listing_type" field.
	ListingType string `json:"listing_type,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// PropertyType holds the value of the "property_type" field.
	PropertyType *string `json:"property_type,omitempty"`
	// Bedrooms holds the value of the "bedrooms" field.
	Bedrooms *int `json:"bedrooms,omitempty"`
	// Bathrooms holds the value of the "bathrooms" field.
	Bathrooms *float64 `json:"bathrooms,omitempty"`
	// Sqft holds the value of the "sqft" field.
	Sqft *int `json:"sqft,omitempty"`
	// Price holds the value of the "price" field.
	Price *float64 `json:"price,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// Errors holds the value of the "errors" field.
	Errors *string `json:"errors,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ListingRunQuery when eager-loading is set.
	Edges        ListingRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ListingRunEdges holds the relations/edges for other nodes in the graph.
type ListingRunEdges struct {
	// Draft holds the value of the draft edge.
	Draft *ListingDraft `json:"draft,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DraftOrErr returns the Draft value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ListingRunEdges) DraftOrErr() (*ListingDraft, error) {
	if e.Draft != nil {
		return e.Draft, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: listingdraft.Label}
	}
	return nil, &NotLoadedError{edge: "draft"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ListingRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case listingrun.FieldRequestID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case listingrun.FieldBathrooms, listingrun.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case listingrun.FieldBedrooms, listingrun.FieldSqft, listingrun.FieldErrorCount, listingrun.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case listingrun.FieldAddress, listingrun.FieldListingType, listingrun.FieldRegion, listingrun.FieldPropertyType, listingrun.FieldNotes, listingrun.FieldStatus, listingrun.FieldErrors:
			values[i] = new(sql.NullString)
		case listingrun.FieldCreatedAt, listingrun.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case listingrun.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ListingRun fields.
func (_m *ListingRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case listingrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case listingrun.FieldRequestID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = new(uuid.UUID)
				*_m.RequestID = *value.S.(*uuid.UUID)
			}
		case listingrun.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case listingrun.FieldListingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field listing_type", values[i])
			} else if value.Valid {
				_m.ListingType = value.String
			}
		case listingrun.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case listingrun.FieldPropertyType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_type", values[i])
			} else if value.Valid {
				_m.PropertyType = new(string)
				*_m.PropertyType = value.String
			}
		case listingrun.FieldBedrooms:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bedrooms", values[i])
			} else if value.Valid {
				_m.Bedrooms = new(int)
				*_m.Bedrooms = int(value.Int64)
			}
		case listingrun.FieldBathrooms:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bathrooms", values[i])
			} else if value.Valid {
				_m.Bathrooms = new(float64)
				*_m.Bathrooms = value.Float64
			}
		case listingrun.FieldSqft:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sqft", values[i])
			} else if value.Valid {
				_m.Sqft = new(int)
				*_m.Sqft = int(value.Int64)
			}
		case listingrun.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = new(float64)
				*_m.Price = value.Float64
			}
		case listingrun.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case listingrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case listingrun.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case listingrun.FieldErrors:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field errors", values[i])
			} else if value.Valid {
				_m.Errors = new(string)
				*_m.Errors = value.String
			}
		case listingrun.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		case listingrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case listingrun.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ListingRun.
// This includes values selected through modifiers, order, etc.
func (_m *ListingRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDraft queries the "draft" edge of the ListingRun entity.
func (_m *ListingRun) QueryDraft() *ListingDraftQuery {
	return NewListingRunClient(_m.config).QueryDraft(_m)
}

// Update returns a builder for updating this ListingRun.
// Note that you need to call ListingRun.Unwrap() before calling this method if this ListingRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ListingRun) Update() *ListingRunUpdateOne {
	return NewListingRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ListingRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ListingRun) Unwrap() *ListingRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ListingRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ListingRun) String() string {
	var builder strings.Builder
	builder.WriteString("ListingRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.RequestID; v != nil {
		builder.WriteString("request_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("listing_type=")
	builder.WriteString(_m.ListingType)
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	if v := _m.PropertyType; v != nil {
		builder.WriteString("property_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Bedrooms; v != nil {
		builder.WriteString("bedrooms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Bathrooms; v != nil {
		builder.WriteString("bathrooms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sqft; v != nil {
		builder.WriteString("sqft=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Price; v != nil {
		builder.WriteString("price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	if v := _m.Errors; v != nil {
		builder.WriteString("errors=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ListingRuns is a parsable slice of ListingRun.
type ListingRuns []*ListingRun
