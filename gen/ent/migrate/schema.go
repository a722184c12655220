// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ListingDraftsColumns holds the columns for the "listing_drafts" table.
	ListingDraftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "price_block", Type: field.TypeString},
		{Name: "formatted_listing", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "predicted_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "predicted_price_reasoning", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "zip_code", Type: field.TypeString, Nullable: true},
		{Name: "neighborhood", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeUUID, Unique: true},
	}
	// ListingDraftsTable holds the schema information for the "listing_drafts" table.
	ListingDraftsTable = &schema.Table{
		Name:       "listing_drafts",
		Columns:    ListingDraftsColumns,
		PrimaryKey: []*schema.Column{ListingDraftsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "listing_drafts_listing_runs_draft",
				Columns:    []*schema.Column{ListingDraftsColumns[10]},
				RefColumns: []*schema.Column{ListingRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ListingRunsColumns holds the columns for the "listing_runs" table.
	ListingRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "request_id", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "address", Type: field.TypeString},
		{Name: "listing_type", Type: field.TypeString},
		{Name: "region", Type: field.TypeString},
		{Name: "property_type", Type: field.TypeString, Nullable: true},
		{Name: "bedrooms", Type: field.TypeInt, Nullable: true},
		{Name: "bathrooms", Type: field.TypeFloat64, Nullable: true},
		{Name: "sqft", Type: field.TypeInt, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "errors", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ListingRunsTable holds the schema information for the "listing_runs" table.
	ListingRunsTable = &schema.Table{
		Name:       "listing_runs",
		Columns:    ListingRunsColumns,
		PrimaryKey: []*schema.Column{ListingRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "listingrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ListingRunsColumns[11], ListingRunsColumns[15]},
			},
			{
				Name:    "listingrun_created_at",
				Unique:  false,
				Columns: []*schema.Column{ListingRunsColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ListingDraftsTable,
		ListingRunsTable,
	}
)

func init() {
	ListingDraftsTable.ForeignKeys[0].RefTable = ListingRunsTable
	ListingDraftsTable.Annotation = &entsql.Annotation{
		Table: "listing_drafts",
	}
	ListingRunsTable.Annotation = &entsql.Annotation{
		Table: "listing_runs",
	}
}
