// Code generated by ent, DO NOT EDIT.

package listingdraft

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/homescribe/listinggen/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldRunID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldDescription, v))
}

// PriceBlock applies equality check predicate on the "price_block" field. It's identical to PriceBlockEQ.
func PriceBlock(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldPriceBlock, v))
}

// FormattedListing applies equality check predicate on the "formatted_listing" field. It's identical to FormattedListingEQ.
func FormattedListing(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldFormattedListing, v))
}

// PredictedPrice applies equality check predicate on the "predicted_price" field. It's identical to PredictedPriceEQ.
func PredictedPrice(v float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldPredictedPrice, v))
}

// PredictedPriceReasoning applies equality check predicate on the "predicted_price_reasoning" field. It's identical to PredictedPriceReasoningEQ.
func PredictedPriceReasoning(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldPredictedPriceReasoning, v))
}

// ZipCode applies equality check predicate on the "zip_code" field. It's identical to ZipCodeEQ.
func ZipCode(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldZipCode, v))
}

// Neighborhood applies equality check predicate on the "neighborhood" field. It's identical to NeighborhoodEQ.
func Neighborhood(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldNeighborhood, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldRunID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContainsFold(FieldDescription, v))
}

// PriceBlockEQ applies the EQ predicate on the "price_block" field.
func PriceBlockEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldPriceBlock, v))
}

// PriceBlockNEQ applies the NEQ predicate on the "price_block" field.
func PriceBlockNEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldPriceBlock, v))
}

// PriceBlockIn applies the In predicate on the "price_block" field.
func PriceBlockIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldPriceBlock, vs...))
}

// PriceBlockNotIn applies the NotIn predicate on the "price_block" field.
func PriceBlockNotIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldPriceBlock, vs...))
}

// PriceBlockGT applies the GT predicate on the "price_block" field.
func PriceBlockGT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldPriceBlock, v))
}

// PriceBlockGTE applies the GTE predicate on the "price_block" field.
func PriceBlockGTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldPriceBlock, v))
}

// PriceBlockLT applies the LT predicate on the "price_block" field.
func PriceBlockLT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldPriceBlock, v))
}

// PriceBlockLTE applies the LTE predicate on the "price_block" field.
func PriceBlockLTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldPriceBlock, v))
}

// PriceBlockContains applies the Contains predicate on the "price_block" field.
func PriceBlockContains(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContains(FieldPriceBlock, v))
}

// PriceBlockHasPrefix applies the HasPrefix predicate on the "price_block" field.
func PriceBlockHasPrefix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasPrefix(FieldPriceBlock, v))
}

// PriceBlockHasSuffix applies the HasSuffix predicate on the "price_block" field.
func PriceBlockHasSuffix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasSuffix(FieldPriceBlock, v))
}

// PriceBlockEqualFold applies the EqualFold predicate on the "price_block" field.
func PriceBlockEqualFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEqualFold(FieldPriceBlock, v))
}

// PriceBlockContainsFold applies the ContainsFold predicate on the "price_block" field.
func PriceBlockContainsFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContainsFold(FieldPriceBlock, v))
}

// FormattedListingEQ applies the EQ predicate on the "formatted_listing" field.
func FormattedListingEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldFormattedListing, v))
}

// FormattedListingNEQ applies the NEQ predicate on the "formatted_listing" field.
func FormattedListingNEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldFormattedListing, v))
}

// FormattedListingIn applies the In predicate on the "formatted_listing" field.
func FormattedListingIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldFormattedListing, vs...))
}

// FormattedListingNotIn applies the NotIn predicate on the "formatted_listing" field.
func FormattedListingNotIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldFormattedListing, vs...))
}

// FormattedListingGT applies the GT predicate on the "formatted_listing" field.
func FormattedListingGT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldFormattedListing, v))
}

// FormattedListingGTE applies the GTE predicate on the "formatted_listing" field.
func FormattedListingGTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldFormattedListing, v))
}

// FormattedListingLT applies the LT predicate on the "formatted_listing" field.
func FormattedListingLT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldFormattedListing, v))
}

// FormattedListingLTE applies the LTE predicate on the "formatted_listing" field.
func FormattedListingLTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldFormattedListing, v))
}

// FormattedListingContains applies the Contains predicate on the "formatted_listing" field.
func FormattedListingContains(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContains(FieldFormattedListing, v))
}

// FormattedListingHasPrefix applies the HasPrefix predicate on the "formatted_listing" field.
func FormattedListingHasPrefix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasPrefix(FieldFormattedListing, v))
}

// FormattedListingHasSuffix applies the HasSuffix predicate on the "formatted_listing" field.
func FormattedListingHasSuffix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasSuffix(FieldFormattedListing, v))
}

// FormattedListingEqualFold applies the EqualFold predicate on the "formatted_listing" field.
func FormattedListingEqualFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEqualFold(FieldFormattedListing, v))
}

// FormattedListingContainsFold applies the ContainsFold predicate on the "formatted_listing" field.
func FormattedListingContainsFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContainsFold(FieldFormattedListing, v))
}

// PredictedPriceEQ applies the EQ predicate on the "predicted_price" field.
func PredictedPriceEQ(v float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldPredictedPrice, v))
}

// PredictedPriceNEQ applies the NEQ predicate on the "predicted_price" field.
func PredictedPriceNEQ(v float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldPredictedPrice, v))
}

// PredictedPriceIn applies the In predicate on the "predicted_price" field.
func PredictedPriceIn(vs ...float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldPredictedPrice, vs...))
}

// PredictedPriceNotIn applies the NotIn predicate on the "predicted_price" field.
func PredictedPriceNotIn(vs ...float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldPredictedPrice, vs...))
}

// PredictedPriceGT applies the GT predicate on the "predicted_price" field.
func PredictedPriceGT(v float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldPredictedPrice, v))
}

// PredictedPriceGTE applies the GTE predicate on the "predicted_price" field.
func PredictedPriceGTE(v float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldPredictedPrice, v))
}

// PredictedPriceLT applies the LT predicate on the "predicted_price" field.
func PredictedPriceLT(v float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldPredictedPrice, v))
}

// PredictedPriceLTE applies the LTE predicate on the "predicted_price" field.
func PredictedPriceLTE(v float64) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldPredictedPrice, v))
}

// PredictedPriceIsNil applies the IsNil predicate on the "predicted_price" field.
func PredictedPriceIsNil() predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIsNull(FieldPredictedPrice))
}

// PredictedPriceNotNil applies the NotNil predicate on the "predicted_price" field.
func PredictedPriceNotNil() predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotNull(FieldPredictedPrice))
}

// PredictedPriceReasoningEQ applies the EQ predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningNEQ applies the NEQ predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningNEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningIn applies the In predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldPredictedPriceReasoning, vs...))
}

// PredictedPriceReasoningNotIn applies the NotIn predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningNotIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldPredictedPriceReasoning, vs...))
}

// PredictedPriceReasoningGT applies the GT predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningGT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningGTE applies the GTE predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningGTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningLT applies the LT predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningLT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningLTE applies the LTE predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningLTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningContains applies the Contains predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningContains(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContains(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningHasPrefix applies the HasPrefix predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningHasPrefix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasPrefix(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningHasSuffix applies the HasSuffix predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningHasSuffix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasSuffix(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningIsNil applies the IsNil predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningIsNil() predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIsNull(FieldPredictedPriceReasoning))
}

// PredictedPriceReasoningNotNil applies the NotNil predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningNotNil() predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotNull(FieldPredictedPriceReasoning))
}

// PredictedPriceReasoningEqualFold applies the EqualFold predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningEqualFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEqualFold(FieldPredictedPriceReasoning, v))
}

// PredictedPriceReasoningContainsFold applies the ContainsFold predicate on the "predicted_price_reasoning" field.
func PredictedPriceReasoningContainsFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContainsFold(FieldPredictedPriceReasoning, v))
}

// ZipCodeEQ applies the EQ predicate on the "zip_code" field.
func ZipCodeEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldZipCode, v))
}

// ZipCodeNEQ applies the NEQ predicate on the "zip_code" field.
func ZipCodeNEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldZipCode, v))
}

// ZipCodeIn applies the In predicate on the "zip_code" field.
func ZipCodeIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldZipCode, vs...))
}

// ZipCodeNotIn applies the NotIn predicate on the "zip_code" field.
func ZipCodeNotIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldZipCode, vs...))
}

// ZipCodeGT applies the GT predicate on the "zip_code" field.
func ZipCodeGT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldZipCode, v))
}

// ZipCodeGTE applies the GTE predicate on the "zip_code" field.
func ZipCodeGTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldZipCode, v))
}

// ZipCodeLT applies the LT predicate on the "zip_code" field.
func ZipCodeLT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldZipCode, v))
}

// ZipCodeLTE applies the LTE predicate on the "zip_code" field.
func ZipCodeLTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldZipCode, v))
}

// ZipCodeContains applies the Contains predicate on the "zip_code" field.
func ZipCodeContains(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContains(FieldZipCode, v))
}

// ZipCodeHasPrefix applies the HasPrefix predicate on the "zip_code" field.
func ZipCodeHasPrefix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasPrefix(FieldZipCode, v))
}

// ZipCodeHasSuffix applies the HasSuffix predicate on the "zip_code" field.
func ZipCodeHasSuffix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasSuffix(FieldZipCode, v))
}

// ZipCodeIsNil applies the IsNil predicate on the "zip_code" field.
func ZipCodeIsNil() predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIsNull(FieldZipCode))
}

// ZipCodeNotNil applies the NotNil predicate on the "zip_code" field.
func ZipCodeNotNil() predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotNull(FieldZipCode))
}

// ZipCodeEqualFold applies the EqualFold predicate on the "zip_code" field.
func ZipCodeEqualFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEqualFold(FieldZipCode, v))
}

// ZipCodeContainsFold applies the ContainsFold predicate on the "zip_code" field.
func ZipCodeContainsFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContainsFold(FieldZipCode, v))
}

// NeighborhoodEQ applies the EQ predicate on the "neighborhood" field.
func NeighborhoodEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldNeighborhood, v))
}

// NeighborhoodNEQ applies the NEQ predicate on the "neighborhood" field.
func NeighborhoodNEQ(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldNeighborhood, v))
}

// NeighborhoodIn applies the In predicate on the "neighborhood" field.
func NeighborhoodIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldNeighborhood, vs...))
}

// NeighborhoodNotIn applies the NotIn predicate on the "neighborhood" field.
func NeighborhoodNotIn(vs ...string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldNeighborhood, vs...))
}

// NeighborhoodGT applies the GT predicate on the "neighborhood" field.
func NeighborhoodGT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldNeighborhood, v))
}

// NeighborhoodGTE applies the GTE predicate on the "neighborhood" field.
func NeighborhoodGTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldNeighborhood, v))
}

// NeighborhoodLT applies the LT predicate on the "neighborhood" field.
func NeighborhoodLT(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldNeighborhood, v))
}

// NeighborhoodLTE applies the LTE predicate on the "neighborhood" field.
func NeighborhoodLTE(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldNeighborhood, v))
}

// NeighborhoodContains applies the Contains predicate on the "neighborhood" field.
func NeighborhoodContains(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContains(FieldNeighborhood, v))
}

// NeighborhoodHasPrefix applies the HasPrefix predicate on the "neighborhood" field.
func NeighborhoodHasPrefix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasPrefix(FieldNeighborhood, v))
}

// NeighborhoodHasSuffix applies the HasSuffix predicate on the "neighborhood" field.
func NeighborhoodHasSuffix(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldHasSuffix(FieldNeighborhood, v))
}

// NeighborhoodIsNil applies the IsNil predicate on the "neighborhood" field.
func NeighborhoodIsNil() predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIsNull(FieldNeighborhood))
}

// NeighborhoodNotNil applies the NotNil predicate on the "neighborhood" field.
func NeighborhoodNotNil() predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotNull(FieldNeighborhood))
}

// NeighborhoodEqualFold applies the EqualFold predicate on the "neighborhood" field.
func NeighborhoodEqualFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEqualFold(FieldNeighborhood, v))
}

// NeighborhoodContainsFold applies the ContainsFold predicate on the "neighborhood" field.
func NeighborhoodContainsFold(v string) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldContainsFold(FieldNeighborhood, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ListingDraft {
	return predicate.ListingDraft(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.ListingDraft {
	return predicate.ListingDraft(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.ListingRun) predicate.ListingDraft {
	return predicate.ListingDraft(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ListingDraft) predicate.ListingDraft {
	return predicate.ListingDraft(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ListingDraft) predicate.ListingDraft {
	return predicate.ListingDraft(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ListingDraft) predicate.ListingDraft {
	return predicate.ListingDraft(sql.NotPredicates(p))
}
