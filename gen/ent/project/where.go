// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// FileNamingTemplate applies equality check predicate on the "file_naming_template" field. It's identical to FileNamingTemplateEQ.
func FileNamingTemplate(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldFileNamingTemplate, v))
}

// CheckScanningMode applies equality check predicate on the "check_scanning_mode" field. It's identical to CheckScanningModeEQ.
func CheckScanningMode(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCheckScanningMode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// FileNamingTemplateEQ applies the EQ predicate on the "file_naming_template" field.
func FileNamingTemplateEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldFileNamingTemplate, v))
}

// FileNamingTemplateNEQ applies the NEQ predicate on the "file_naming_template" field.
func FileNamingTemplateNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldFileNamingTemplate, v))
}

// FileNamingTemplateIn applies the In predicate on the "file_naming_template" field.
func FileNamingTemplateIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldFileNamingTemplate, vs...))
}

// FileNamingTemplateNotIn applies the NotIn predicate on the "file_naming_template" field.
func FileNamingTemplateNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldFileNamingTemplate, vs...))
}

// FileNamingTemplateGT applies the GT predicate on the "file_naming_template" field.
func FileNamingTemplateGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldFileNamingTemplate, v))
}

// FileNamingTemplateGTE applies the GTE predicate on the "file_naming_template" field.
func FileNamingTemplateGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldFileNamingTemplate, v))
}

// FileNamingTemplateLT applies the LT predicate on the "file_naming_template" field.
func FileNamingTemplateLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldFileNamingTemplate, v))
}

// FileNamingTemplateLTE applies the LTE predicate on the "file_naming_template" field.
func FileNamingTemplateLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldFileNamingTemplate, v))
}

// FileNamingTemplateContains applies the Contains predicate on the "file_naming_template" field.
func FileNamingTemplateContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldFileNamingTemplate, v))
}

// FileNamingTemplateHasPrefix applies the HasPrefix predicate on the "file_naming_template" field.
func FileNamingTemplateHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldFileNamingTemplate, v))
}

// FileNamingTemplateHasSuffix applies the HasSuffix predicate on the "file_naming_template" field.
func FileNamingTemplateHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldFileNamingTemplate, v))
}

// FileNamingTemplateIsNil applies the IsNil predicate on the "file_naming_template" field.
func FileNamingTemplateIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldFileNamingTemplate))
}

// FileNamingTemplateNotNil applies the NotNil predicate on the "file_naming_template" field.
func FileNamingTemplateNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldFileNamingTemplate))
}

// FileNamingTemplateEqualFold applies the EqualFold predicate on the "file_naming_template" field.
func FileNamingTemplateEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldFileNamingTemplate, v))
}

// FileNamingTemplateContainsFold applies the ContainsFold predicate on the "file_naming_template" field.
func FileNamingTemplateContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldFileNamingTemplate, v))
}

// ExtractionFieldsIsNil applies the IsNil predicate on the "extraction_fields" field.
func ExtractionFieldsIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldExtractionFields))
}

// ExtractionFieldsNotNil applies the NotNil predicate on the "extraction_fields" field.
func ExtractionFieldsNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldExtractionFields))
}

// TableExtractionFieldsIsNil applies the IsNil predicate on the "table_extraction_fields" field.
func TableExtractionFieldsIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldTableExtractionFields))
}

// TableExtractionFieldsNotNil applies the NotNil predicate on the "table_extraction_fields" field.
func TableExtractionFieldsNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldTableExtractionFields))
}

// CheckScanningModeEQ applies the EQ predicate on the "check_scanning_mode" field.
func CheckScanningModeEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCheckScanningMode, v))
}

// CheckScanningModeNEQ applies the NEQ predicate on the "check_scanning_mode" field.
func CheckScanningModeNEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCheckScanningMode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBatches applies the HasEdge predicate on the "batches" edge.
func HasBatches() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchesWith applies the HasEdge predicate on the "batches" edge with a given conditions (other predicates).
func HasBatchesWith(preds ...predicate.Batch) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newBatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
