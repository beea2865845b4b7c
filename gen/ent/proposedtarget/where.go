// Code generated by ent, DO NOT EDIT.

package proposedtarget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/marketlens/marketlens/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldUserID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldDescription, v))
}

// SourcePrompt applies equality check predicate on the "source_prompt" field. It's identical to SourcePromptEQ.
func SourcePrompt(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldSourcePrompt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLTE(FieldUserID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContainsFold(FieldURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContainsFold(FieldDescription, v))
}

// SourcePromptEQ applies the EQ predicate on the "source_prompt" field.
func SourcePromptEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldSourcePrompt, v))
}

// SourcePromptNEQ applies the NEQ predicate on the "source_prompt" field.
func SourcePromptNEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNEQ(FieldSourcePrompt, v))
}

// SourcePromptIn applies the In predicate on the "source_prompt" field.
func SourcePromptIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIn(FieldSourcePrompt, vs...))
}

// SourcePromptNotIn applies the NotIn predicate on the "source_prompt" field.
func SourcePromptNotIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotIn(FieldSourcePrompt, vs...))
}

// SourcePromptGT applies the GT predicate on the "source_prompt" field.
func SourcePromptGT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGT(FieldSourcePrompt, v))
}

// SourcePromptGTE applies the GTE predicate on the "source_prompt" field.
func SourcePromptGTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGTE(FieldSourcePrompt, v))
}

// SourcePromptLT applies the LT predicate on the "source_prompt" field.
func SourcePromptLT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLT(FieldSourcePrompt, v))
}

// SourcePromptLTE applies the LTE predicate on the "source_prompt" field.
func SourcePromptLTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLTE(FieldSourcePrompt, v))
}

// SourcePromptContains applies the Contains predicate on the "source_prompt" field.
func SourcePromptContains(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContains(FieldSourcePrompt, v))
}

// SourcePromptHasPrefix applies the HasPrefix predicate on the "source_prompt" field.
func SourcePromptHasPrefix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasPrefix(FieldSourcePrompt, v))
}

// SourcePromptHasSuffix applies the HasSuffix predicate on the "source_prompt" field.
func SourcePromptHasSuffix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasSuffix(FieldSourcePrompt, v))
}

// SourcePromptEqualFold applies the EqualFold predicate on the "source_prompt" field.
func SourcePromptEqualFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEqualFold(FieldSourcePrompt, v))
}

// SourcePromptContainsFold applies the ContainsFold predicate on the "source_prompt" field.
func SourcePromptContainsFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContainsFold(FieldSourcePrompt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProposedTarget) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProposedTarget) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProposedTarget) predicate.ProposedTarget {
	return predicate.ProposedTarget(sql.NotPredicates(p))
}
