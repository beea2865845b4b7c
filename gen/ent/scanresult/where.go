// Code generated by ent, DO NOT EDIT.

package scanresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/marketlens/marketlens/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLTE(FieldID, id))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldTargetID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldStatus, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldContent, v))
}

// ExtractedData applies equality check predicate on the "extracted_data" field. It's identical to ExtractedDataEQ.
func ExtractedData(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldExtractedData, v))
}

// Screenshot applies equality check predicate on the "screenshot" field. It's identical to ScreenshotEQ.
func Screenshot(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldScreenshot, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ReviewStatus applies equality check predicate on the "review_status" field. It's identical to ReviewStatusEQ.
func ReviewStatus(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldReviewStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...uuid.UUID) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldTargetID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContainsFold(FieldStatus, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContainsFold(FieldContent, v))
}

// ExtractedDataEQ applies the EQ predicate on the "extracted_data" field.
func ExtractedDataEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldExtractedData, v))
}

// ExtractedDataNEQ applies the NEQ predicate on the "extracted_data" field.
func ExtractedDataNEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldExtractedData, v))
}

// ExtractedDataIn applies the In predicate on the "extracted_data" field.
func ExtractedDataIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldExtractedData, vs...))
}

// ExtractedDataNotIn applies the NotIn predicate on the "extracted_data" field.
func ExtractedDataNotIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldExtractedData, vs...))
}

// ExtractedDataGT applies the GT predicate on the "extracted_data" field.
func ExtractedDataGT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGT(FieldExtractedData, v))
}

// ExtractedDataGTE applies the GTE predicate on the "extracted_data" field.
func ExtractedDataGTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGTE(FieldExtractedData, v))
}

// ExtractedDataLT applies the LT predicate on the "extracted_data" field.
func ExtractedDataLT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLT(FieldExtractedData, v))
}

// ExtractedDataLTE applies the LTE predicate on the "extracted_data" field.
func ExtractedDataLTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLTE(FieldExtractedData, v))
}

// ExtractedDataContains applies the Contains predicate on the "extracted_data" field.
func ExtractedDataContains(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContains(FieldExtractedData, v))
}

// ExtractedDataHasPrefix applies the HasPrefix predicate on the "extracted_data" field.
func ExtractedDataHasPrefix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasPrefix(FieldExtractedData, v))
}

// ExtractedDataHasSuffix applies the HasSuffix predicate on the "extracted_data" field.
func ExtractedDataHasSuffix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasSuffix(FieldExtractedData, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotNull(FieldExtractedData))
}

// ExtractedDataEqualFold applies the EqualFold predicate on the "extracted_data" field.
func ExtractedDataEqualFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEqualFold(FieldExtractedData, v))
}

// ExtractedDataContainsFold applies the ContainsFold predicate on the "extracted_data" field.
func ExtractedDataContainsFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContainsFold(FieldExtractedData, v))
}

// ScreenshotEQ applies the EQ predicate on the "screenshot" field.
func ScreenshotEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldScreenshot, v))
}

// ScreenshotNEQ applies the NEQ predicate on the "screenshot" field.
func ScreenshotNEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldScreenshot, v))
}

// ScreenshotIn applies the In predicate on the "screenshot" field.
func ScreenshotIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldScreenshot, vs...))
}

// ScreenshotNotIn applies the NotIn predicate on the "screenshot" field.
func ScreenshotNotIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldScreenshot, vs...))
}

// ScreenshotGT applies the GT predicate on the "screenshot" field.
func ScreenshotGT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGT(FieldScreenshot, v))
}

// ScreenshotGTE applies the GTE predicate on the "screenshot" field.
func ScreenshotGTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGTE(FieldScreenshot, v))
}

// ScreenshotLT applies the LT predicate on the "screenshot" field.
func ScreenshotLT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLT(FieldScreenshot, v))
}

// ScreenshotLTE applies the LTE predicate on the "screenshot" field.
func ScreenshotLTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLTE(FieldScreenshot, v))
}

// ScreenshotContains applies the Contains predicate on the "screenshot" field.
func ScreenshotContains(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContains(FieldScreenshot, v))
}

// ScreenshotHasPrefix applies the HasPrefix predicate on the "screenshot" field.
func ScreenshotHasPrefix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasPrefix(FieldScreenshot, v))
}

// ScreenshotHasSuffix applies the HasSuffix predicate on the "screenshot" field.
func ScreenshotHasSuffix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasSuffix(FieldScreenshot, v))
}

// ScreenshotIsNil applies the IsNil predicate on the "screenshot" field.
func ScreenshotIsNil() predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIsNull(FieldScreenshot))
}

// ScreenshotNotNil applies the NotNil predicate on the "screenshot" field.
func ScreenshotNotNil() predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotNull(FieldScreenshot))
}

// ScreenshotEqualFold applies the EqualFold predicate on the "screenshot" field.
func ScreenshotEqualFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEqualFold(FieldScreenshot, v))
}

// ScreenshotContainsFold applies the ContainsFold predicate on the "screenshot" field.
func ScreenshotContainsFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContainsFold(FieldScreenshot, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ReviewStatusGT applies the GT predicate on the "review_status" field.
func ReviewStatusGT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGT(FieldReviewStatus, v))
}

// ReviewStatusGTE applies the GTE predicate on the "review_status" field.
func ReviewStatusGTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGTE(FieldReviewStatus, v))
}

// ReviewStatusLT applies the LT predicate on the "review_status" field.
func ReviewStatusLT(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLT(FieldReviewStatus, v))
}

// ReviewStatusLTE applies the LTE predicate on the "review_status" field.
func ReviewStatusLTE(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLTE(FieldReviewStatus, v))
}

// ReviewStatusContains applies the Contains predicate on the "review_status" field.
func ReviewStatusContains(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContains(FieldReviewStatus, v))
}

// ReviewStatusHasPrefix applies the HasPrefix predicate on the "review_status" field.
func ReviewStatusHasPrefix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasPrefix(FieldReviewStatus, v))
}

// ReviewStatusHasSuffix applies the HasSuffix predicate on the "review_status" field.
func ReviewStatusHasSuffix(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldHasSuffix(FieldReviewStatus, v))
}

// ReviewStatusEqualFold applies the EqualFold predicate on the "review_status" field.
func ReviewStatusEqualFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEqualFold(FieldReviewStatus, v))
}

// ReviewStatusContainsFold applies the ContainsFold predicate on the "review_status" field.
func ReviewStatusContainsFold(v string) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldContainsFold(FieldReviewStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScanResult {
	return predicate.ScanResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTarget applies the HasEdge predicate on the "target" edge.
func HasTarget() predicate.ScanResult {
	return predicate.ScanResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TargetTable, TargetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTargetWith applies the HasEdge predicate on the "target" edge with a given conditions (other predicates).
func HasTargetWith(preds ...predicate.Target) predicate.ScanResult {
	return predicate.ScanResult(func(s *sql.Selector) {
		step := newTargetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScanResult) predicate.ScanResult {
	return predicate.ScanResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScanResult) predicate.ScanResult {
	return predicate.ScanResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScanResult) predicate.ScanResult {
	return predicate.ScanResult(sql.NotPredicates(p))
}
