package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// ListingDraft is the generated listing text saved for a successful run.
type ListingDraft struct{ ent.Schema }

func (ListingDraft) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "listing_drafts"},
	}
}

func (ListingDraft) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("run_id", uuid.UUID{}).Unique(),
		field.String("title").NotEmpty(),
		field.String("description").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("price_block"),
		field.String("formatted_listing").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("predicted_price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("predicted_price_reasoning").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("zip_code").Optional().Nillable(),
		field.String("neighborhood").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ListingDraft) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY-side cap is one: each run keeps a single draft
		// (FK: listing_drafts.run_id)
		edge.From("run", ListingRun.Type).
			Ref("draft").
			Field("run_id").
			Required().
			Unique(),
	}
}
