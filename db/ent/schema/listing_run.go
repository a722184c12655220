package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/db/ent/schema/utils"
)

// ListingRun records one generation attempt: the request snapshot, the
// terminal status, and the error summary. Request fields are stored as
// received so failed attempts stay inspectable; only status is constrained.
type ListingRun struct{ ent.Schema }

func (ListingRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "listing_runs"},
	}
}

func (ListingRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// pipeline trace ID, set when the run finishes
		field.UUID("request_id", uuid.UUID{}).
			Optional().Nillable().
			Unique(),
		field.String("address"),
		field.String("listing_type"),
		field.String("region"),
		field.String("property_type").Optional().Nillable(),
		field.Int("bedrooms").Optional().Nillable(),
		field.Float("bathrooms").Optional().Nillable(),
		field.Int("sqft").Optional().Nillable(),
		field.Float("price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.RunStatusesAsStringSlice()...)),
		field.Int("error_count").Default(0),
		field.String("errors").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int64("duration_ms").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ListingRun) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE run -> AT MOST ONE draft
		edge.To("draft", ListingDraft.Type).Unique(),
	}
}

func (ListingRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("created_at"),
	}
}
