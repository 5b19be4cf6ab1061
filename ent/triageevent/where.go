// Code generated by ent, DO NOT EDIT.

package triageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clinsaude/clin/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldSubmissionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldEmail, v))
}

// FunctionRole applies equality check predicate on the "function_role" field. It's identical to FunctionRoleEQ.
func FunctionRole(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldFunctionRole, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldAge, v))
}

// Sector applies equality check predicate on the "sector" field. It's identical to SectorEQ.
func Sector(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldSector, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldRiskScore, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// Suggestion applies equality check predicate on the "suggestion" field. It's identical to SuggestionEQ.
func Suggestion(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldSuggestion, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// SubmissionIDGT applies the GT predicate on the "submission_id" field.
func SubmissionIDGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldSubmissionID, v))
}

// SubmissionIDGTE applies the GTE predicate on the "submission_id" field.
func SubmissionIDGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldSubmissionID, v))
}

// SubmissionIDLT applies the LT predicate on the "submission_id" field.
func SubmissionIDLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldSubmissionID, v))
}

// SubmissionIDLTE applies the LTE predicate on the "submission_id" field.
func SubmissionIDLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldSubmissionID, v))
}

// SubmissionIDContains applies the Contains predicate on the "submission_id" field.
func SubmissionIDContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldSubmissionID, v))
}

// SubmissionIDHasPrefix applies the HasPrefix predicate on the "submission_id" field.
func SubmissionIDHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldSubmissionID, v))
}

// SubmissionIDHasSuffix applies the HasSuffix predicate on the "submission_id" field.
func SubmissionIDHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldSubmissionID, v))
}

// SubmissionIDEqualFold applies the EqualFold predicate on the "submission_id" field.
func SubmissionIDEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldSubmissionID, v))
}

// SubmissionIDContainsFold applies the ContainsFold predicate on the "submission_id" field.
func SubmissionIDContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldSubmissionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldEmail, v))
}

// FunctionRoleEQ applies the EQ predicate on the "function_role" field.
func FunctionRoleEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldFunctionRole, v))
}

// FunctionRoleNEQ applies the NEQ predicate on the "function_role" field.
func FunctionRoleNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldFunctionRole, v))
}

// FunctionRoleIn applies the In predicate on the "function_role" field.
func FunctionRoleIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldFunctionRole, vs...))
}

// FunctionRoleNotIn applies the NotIn predicate on the "function_role" field.
func FunctionRoleNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldFunctionRole, vs...))
}

// FunctionRoleGT applies the GT predicate on the "function_role" field.
func FunctionRoleGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldFunctionRole, v))
}

// FunctionRoleGTE applies the GTE predicate on the "function_role" field.
func FunctionRoleGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldFunctionRole, v))
}

// FunctionRoleLT applies the LT predicate on the "function_role" field.
func FunctionRoleLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldFunctionRole, v))
}

// FunctionRoleLTE applies the LTE predicate on the "function_role" field.
func FunctionRoleLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldFunctionRole, v))
}

// FunctionRoleContains applies the Contains predicate on the "function_role" field.
func FunctionRoleContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldFunctionRole, v))
}

// FunctionRoleHasPrefix applies the HasPrefix predicate on the "function_role" field.
func FunctionRoleHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldFunctionRole, v))
}

// FunctionRoleHasSuffix applies the HasSuffix predicate on the "function_role" field.
func FunctionRoleHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldFunctionRole, v))
}

// FunctionRoleEqualFold applies the EqualFold predicate on the "function_role" field.
func FunctionRoleEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldFunctionRole, v))
}

// FunctionRoleContainsFold applies the ContainsFold predicate on the "function_role" field.
func FunctionRoleContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldFunctionRole, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldAge, v))
}

// SectorEQ applies the EQ predicate on the "sector" field.
func SectorEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldSector, v))
}

// SectorNEQ applies the NEQ predicate on the "sector" field.
func SectorNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldSector, v))
}

// SectorIn applies the In predicate on the "sector" field.
func SectorIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldSector, vs...))
}

// SectorNotIn applies the NotIn predicate on the "sector" field.
func SectorNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldSector, vs...))
}

// SectorGT applies the GT predicate on the "sector" field.
func SectorGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldSector, v))
}

// SectorGTE applies the GTE predicate on the "sector" field.
func SectorGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldSector, v))
}

// SectorLT applies the LT predicate on the "sector" field.
func SectorLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldSector, v))
}

// SectorLTE applies the LTE predicate on the "sector" field.
func SectorLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldSector, v))
}

// SectorContains applies the Contains predicate on the "sector" field.
func SectorContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldSector, v))
}

// SectorHasPrefix applies the HasPrefix predicate on the "sector" field.
func SectorHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldSector, v))
}

// SectorHasSuffix applies the HasSuffix predicate on the "sector" field.
func SectorHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldSector, v))
}

// SectorEqualFold applies the EqualFold predicate on the "sector" field.
func SectorEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldSector, v))
}

// SectorContainsFold applies the ContainsFold predicate on the "sector" field.
func SectorContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldSector, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v int) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldRiskScore, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldRiskLevel, v))
}

// SuggestionEQ applies the EQ predicate on the "suggestion" field.
func SuggestionEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEQ(FieldSuggestion, v))
}

// SuggestionNEQ applies the NEQ predicate on the "suggestion" field.
func SuggestionNEQ(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNEQ(FieldSuggestion, v))
}

// SuggestionIn applies the In predicate on the "suggestion" field.
func SuggestionIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldIn(FieldSuggestion, vs...))
}

// SuggestionNotIn applies the NotIn predicate on the "suggestion" field.
func SuggestionNotIn(vs ...string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldNotIn(FieldSuggestion, vs...))
}

// SuggestionGT applies the GT predicate on the "suggestion" field.
func SuggestionGT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGT(FieldSuggestion, v))
}

// SuggestionGTE applies the GTE predicate on the "suggestion" field.
func SuggestionGTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldGTE(FieldSuggestion, v))
}

// SuggestionLT applies the LT predicate on the "suggestion" field.
func SuggestionLT(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLT(FieldSuggestion, v))
}

// SuggestionLTE applies the LTE predicate on the "suggestion" field.
func SuggestionLTE(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldLTE(FieldSuggestion, v))
}

// SuggestionContains applies the Contains predicate on the "suggestion" field.
func SuggestionContains(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContains(FieldSuggestion, v))
}

// SuggestionHasPrefix applies the HasPrefix predicate on the "suggestion" field.
func SuggestionHasPrefix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasPrefix(FieldSuggestion, v))
}

// SuggestionHasSuffix applies the HasSuffix predicate on the "suggestion" field.
func SuggestionHasSuffix(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldHasSuffix(FieldSuggestion, v))
}

// SuggestionEqualFold applies the EqualFold predicate on the "suggestion" field.
func SuggestionEqualFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldEqualFold(FieldSuggestion, v))
}

// SuggestionContainsFold applies the ContainsFold predicate on the "suggestion" field.
func SuggestionContainsFold(v string) predicate.TriageEvent {
	return predicate.TriageEvent(sql.FieldContainsFold(FieldSuggestion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriageEvent) predicate.TriageEvent {
	return predicate.TriageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriageEvent) predicate.TriageEvent {
	return predicate.TriageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriageEvent) predicate.TriageEvent {
	return predicate.TriageEvent(sql.NotPredicates(p))
}
