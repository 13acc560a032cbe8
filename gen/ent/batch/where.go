// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// TotalDocuments applies equality check predicate on the "total_documents" field. It's identical to TotalDocumentsEQ.
func TotalDocuments(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalDocuments, v))
}

// ProcessedDocuments applies equality check predicate on the "processed_documents" field. It's identical to ProcessedDocumentsEQ.
func ProcessedDocuments(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProcessedDocuments, v))
}

// ValidatedDocuments applies equality check predicate on the "validated_documents" field. It's identical to ValidatedDocumentsEQ.
func ValidatedDocuments(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldValidatedDocuments, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldErrorCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldProjectID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldName, v))
}

// TotalDocumentsEQ applies the EQ predicate on the "total_documents" field.
func TotalDocumentsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalDocuments, v))
}

// TotalDocumentsNEQ applies the NEQ predicate on the "total_documents" field.
func TotalDocumentsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalDocuments, v))
}

// TotalDocumentsIn applies the In predicate on the "total_documents" field.
func TotalDocumentsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalDocuments, vs...))
}

// TotalDocumentsNotIn applies the NotIn predicate on the "total_documents" field.
func TotalDocumentsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalDocuments, vs...))
}

// TotalDocumentsGT applies the GT predicate on the "total_documents" field.
func TotalDocumentsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalDocuments, v))
}

// TotalDocumentsGTE applies the GTE predicate on the "total_documents" field.
func TotalDocumentsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalDocuments, v))
}

// TotalDocumentsLT applies the LT predicate on the "total_documents" field.
func TotalDocumentsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalDocuments, v))
}

// TotalDocumentsLTE applies the LTE predicate on the "total_documents" field.
func TotalDocumentsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalDocuments, v))
}

// ProcessedDocumentsEQ applies the EQ predicate on the "processed_documents" field.
func ProcessedDocumentsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProcessedDocuments, v))
}

// ProcessedDocumentsNEQ applies the NEQ predicate on the "processed_documents" field.
func ProcessedDocumentsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldProcessedDocuments, v))
}

// ProcessedDocumentsIn applies the In predicate on the "processed_documents" field.
func ProcessedDocumentsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldProcessedDocuments, vs...))
}

// ProcessedDocumentsNotIn applies the NotIn predicate on the "processed_documents" field.
func ProcessedDocumentsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldProcessedDocuments, vs...))
}

// ProcessedDocumentsGT applies the GT predicate on the "processed_documents" field.
func ProcessedDocumentsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldProcessedDocuments, v))
}

// ProcessedDocumentsGTE applies the GTE predicate on the "processed_documents" field.
func ProcessedDocumentsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldProcessedDocuments, v))
}

// ProcessedDocumentsLT applies the LT predicate on the "processed_documents" field.
func ProcessedDocumentsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldProcessedDocuments, v))
}

// ProcessedDocumentsLTE applies the LTE predicate on the "processed_documents" field.
func ProcessedDocumentsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldProcessedDocuments, v))
}

// ValidatedDocumentsEQ applies the EQ predicate on the "validated_documents" field.
func ValidatedDocumentsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldValidatedDocuments, v))
}

// ValidatedDocumentsNEQ applies the NEQ predicate on the "validated_documents" field.
func ValidatedDocumentsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldValidatedDocuments, v))
}

// ValidatedDocumentsIn applies the In predicate on the "validated_documents" field.
func ValidatedDocumentsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldValidatedDocuments, vs...))
}

// ValidatedDocumentsNotIn applies the NotIn predicate on the "validated_documents" field.
func ValidatedDocumentsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldValidatedDocuments, vs...))
}

// ValidatedDocumentsGT applies the GT predicate on the "validated_documents" field.
func ValidatedDocumentsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldValidatedDocuments, v))
}

// ValidatedDocumentsGTE applies the GTE predicate on the "validated_documents" field.
func ValidatedDocumentsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldValidatedDocuments, v))
}

// ValidatedDocumentsLT applies the LT predicate on the "validated_documents" field.
func ValidatedDocumentsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldValidatedDocuments, v))
}

// ValidatedDocumentsLTE applies the LTE predicate on the "validated_documents" field.
func ValidatedDocumentsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldValidatedDocuments, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldErrorCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.NotPredicates(p))
}
