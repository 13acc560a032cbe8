// Code generated by ent, DO NOT EDIT.

package license

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.License {
	return predicate.License(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.License {
	return predicate.License(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.License {
	return predicate.License(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.License {
	return predicate.License(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.License {
	return predicate.License(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.License {
	return predicate.License(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.License {
	return predicate.License(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.License {
	return predicate.License(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.License {
	return predicate.License(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.License {
	return predicate.License(sql.FieldEQ(FieldTenantID, v))
}

// RemainingDocuments applies equality check predicate on the "remaining_documents" field. It's identical to RemainingDocumentsEQ.
func RemainingDocuments(v int) predicate.License {
	return predicate.License(sql.FieldEQ(FieldRemainingDocuments, v))
}

// TotalDocuments applies equality check predicate on the "total_documents" field. It's identical to TotalDocumentsEQ.
func TotalDocuments(v int) predicate.License {
	return predicate.License(sql.FieldEQ(FieldTotalDocuments, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.License {
	return predicate.License(sql.FieldEQ(FieldExpiresAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.License {
	return predicate.License(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.License {
	return predicate.License(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.License {
	return predicate.License(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.License {
	return predicate.License(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.License {
	return predicate.License(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v uuid.UUID) predicate.License {
	return predicate.License(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v uuid.UUID) predicate.License {
	return predicate.License(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v uuid.UUID) predicate.License {
	return predicate.License(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v uuid.UUID) predicate.License {
	return predicate.License(sql.FieldLTE(FieldTenantID, v))
}

// RemainingDocumentsEQ applies the EQ predicate on the "remaining_documents" field.
func RemainingDocumentsEQ(v int) predicate.License {
	return predicate.License(sql.FieldEQ(FieldRemainingDocuments, v))
}

// RemainingDocumentsNEQ applies the NEQ predicate on the "remaining_documents" field.
func RemainingDocumentsNEQ(v int) predicate.License {
	return predicate.License(sql.FieldNEQ(FieldRemainingDocuments, v))
}

// RemainingDocumentsIn applies the In predicate on the "remaining_documents" field.
func RemainingDocumentsIn(vs ...int) predicate.License {
	return predicate.License(sql.FieldIn(FieldRemainingDocuments, vs...))
}

// RemainingDocumentsNotIn applies the NotIn predicate on the "remaining_documents" field.
func RemainingDocumentsNotIn(vs ...int) predicate.License {
	return predicate.License(sql.FieldNotIn(FieldRemainingDocuments, vs...))
}

// RemainingDocumentsGT applies the GT predicate on the "remaining_documents" field.
func RemainingDocumentsGT(v int) predicate.License {
	return predicate.License(sql.FieldGT(FieldRemainingDocuments, v))
}

// RemainingDocumentsGTE applies the GTE predicate on the "remaining_documents" field.
func RemainingDocumentsGTE(v int) predicate.License {
	return predicate.License(sql.FieldGTE(FieldRemainingDocuments, v))
}

// RemainingDocumentsLT applies the LT predicate on the "remaining_documents" field.
func RemainingDocumentsLT(v int) predicate.License {
	return predicate.License(sql.FieldLT(FieldRemainingDocuments, v))
}

// RemainingDocumentsLTE applies the LTE predicate on the "remaining_documents" field.
func RemainingDocumentsLTE(v int) predicate.License {
	return predicate.License(sql.FieldLTE(FieldRemainingDocuments, v))
}

// TotalDocumentsEQ applies the EQ predicate on the "total_documents" field.
func TotalDocumentsEQ(v int) predicate.License {
	return predicate.License(sql.FieldEQ(FieldTotalDocuments, v))
}

// TotalDocumentsNEQ applies the NEQ predicate on the "total_documents" field.
func TotalDocumentsNEQ(v int) predicate.License {
	return predicate.License(sql.FieldNEQ(FieldTotalDocuments, v))
}

// TotalDocumentsIn applies the In predicate on the "total_documents" field.
func TotalDocumentsIn(vs ...int) predicate.License {
	return predicate.License(sql.FieldIn(FieldTotalDocuments, vs...))
}

// TotalDocumentsNotIn applies the NotIn predicate on the "total_documents" field.
func TotalDocumentsNotIn(vs ...int) predicate.License {
	return predicate.License(sql.FieldNotIn(FieldTotalDocuments, vs...))
}

// TotalDocumentsGT applies the GT predicate on the "total_documents" field.
func TotalDocumentsGT(v int) predicate.License {
	return predicate.License(sql.FieldGT(FieldTotalDocuments, v))
}

// TotalDocumentsGTE applies the GTE predicate on the "total_documents" field.
func TotalDocumentsGTE(v int) predicate.License {
	return predicate.License(sql.FieldGTE(FieldTotalDocuments, v))
}

// TotalDocumentsLT applies the LT predicate on the "total_documents" field.
func TotalDocumentsLT(v int) predicate.License {
	return predicate.License(sql.FieldLT(FieldTotalDocuments, v))
}

// TotalDocumentsLTE applies the LTE predicate on the "total_documents" field.
func TotalDocumentsLTE(v int) predicate.License {
	return predicate.License(sql.FieldLTE(FieldTotalDocuments, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.License {
	return predicate.License(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.License {
	return predicate.License(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.License {
	return predicate.License(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.License {
	return predicate.License(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.License {
	return predicate.License(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.License {
	return predicate.License(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.License {
	return predicate.License(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.License {
	return predicate.License(sql.FieldLTE(FieldExpiresAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.License {
	return predicate.License(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.License {
	return predicate.License(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.License {
	return predicate.License(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.License {
	return predicate.License(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.License {
	return predicate.License(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.License {
	return predicate.License(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.License {
	return predicate.License(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.License {
	return predicate.License(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUsages applies the HasEdge predicate on the "usages" edge.
func HasUsages() predicate.License {
	return predicate.License(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UsagesTable, UsagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsagesWith applies the HasEdge predicate on the "usages" edge with a given conditions (other predicates).
func HasUsagesWith(preds ...predicate.LicenseUsage) predicate.License {
	return predicate.License(func(s *sql.Selector) {
		step := newUsagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.License) predicate.License {
	return predicate.License(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.License) predicate.License {
	return predicate.License(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.License) predicate.License {
	return predicate.License(sql.NotPredicates(p))
}
