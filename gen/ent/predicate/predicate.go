// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ListingDraft is the predicate function for listingdraft builders.
type ListingDraft func(*sql.Selector)

// ListingRun is the predicate function for listingrun builders.
type ListingRun func(*sql.Selector)
