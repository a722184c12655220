// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/homescribe/listinggen/db/ent/schema"
	"github.com/homescribe/listinggen/gen/ent/listingdraft"
	"github.com/homescribe/listinggen/gen/ent/listingrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	listingdraftFields := schema.ListingDraft{}.Fields()
	_ = listingdraftFields
	// listingdraftDescTitle is the schema descriptor for title field.
	listingdraftDescTitle := listingdraftFields[2].Descriptor()
	// listingdraft.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	listingdraft.TitleValidator = listingdraftDescTitle.Validators[0].(func(string) error)
	// listingdraftDescFormattedListing is the schema descriptor for formatted_listing field.
	listingdraftDescFormattedListing := listingdraftFields[5].Descriptor()
	// listingdraft.FormattedListingValidator is a validator for the "formatted_listing" field. It is called by the builders before save.
	listingdraft.FormattedListingValidator = listingdraftDescFormattedListing.Validators[0].(func(string) error)
	// listingdraftDescCreatedAt is the schema descriptor for created_at field.
	listingdraftDescCreatedAt := listingdraftFields[10].Descriptor()
	// listingdraft.DefaultCreatedAt holds the default value on creation for the created_at field.
	listingdraft.DefaultCreatedAt = listingdraftDescCreatedAt.Default.(func() time.Time)
	// listingdraftDescID is the schema descriptor for id field.
	listingdraftDescID := listingdraftFields[0].Descriptor()
	// listingdraft.DefaultID holds the default value on creation for the id field.
	listingdraft.DefaultID = listingdraftDescID.Default.(func() uuid.UUID)
	listingrunFields := schema.ListingRun{}.Fields()
	_ = listingrunFields
	// listingrunDescStatus is the schema descriptor for status field.
	listingrunDescStatus := listingrunFields[11].Descriptor()
	// listingrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	listingrun.StatusValidator = func() func(string) error {
		validators := listingrunDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// listingrunDescErrorCount is the schema descriptor for error_count field.
	listingrunDescErrorCount := listingrunFields[12].Descriptor()
	// listingrun.DefaultErrorCount holds the default value on creation for the error_count field.
	listingrun.DefaultErrorCount = listingrunDescErrorCount.Default.(int)
	// listingrunDescCreatedAt is the schema descriptor for created_at field.
	listingrunDescCreatedAt := listingrunFields[15].Descriptor()
	// listingrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	listingrun.DefaultCreatedAt = listingrunDescCreatedAt.Default.(func() time.Time)
	// listingrunDescUpdatedAt is the schema descriptor for updated_at field.
	listingrunDescUpdatedAt := listingrunFields[16].Descriptor()
	// listingrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	listingrun.DefaultUpdatedAt = listingrunDescUpdatedAt.Default.(func() time.Time)
	// listingrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	listingrun.UpdateDefaultUpdatedAt = listingrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	// listingrunDescID is the schema descriptor for id field.
	listingrunDescID := listingrunFields[0].Descriptor()
	// listingrun.DefaultID holds the default value on creation for the id field.
	listingrun.DefaultID = listingrunDescID.Default.(func() uuid.UUID)
}
