// Code generated by ent, DO NOT EDIT.

package license

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the license type in the database.
	Label = "license"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldRemainingDocuments holds the string denoting the remaining_documents field in the database.
	FieldRemainingDocuments = "remaining_documents"
	// FieldTotalDocuments holds the string denoting the total_documents field in the database.
	FieldTotalDocuments = "total_documents"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUsages holds the string denoting the usages edge name in mutations.
	EdgeUsages = "usages"
	// Table holds the table name of the license in the database.
	Table = "licenses"
	// UsagesTable is the table that holds the usages relation/edge.
	UsagesTable = "license_usages"
	// UsagesInverseTable is the table name for the LicenseUsage entity.
	// It exists in this package in order to avoid circular dependency with the "licenseusage" package.
	UsagesInverseTable = "license_usages"
	// UsagesColumn is the table column denoting the usages relation/edge.
	UsagesColumn = "license_id"
)

// Columns holds all SQL columns for license fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldRemainingDocuments,
	FieldTotalDocuments,
	FieldExpiresAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RemainingDocumentsValidator is a validator for the "remaining_documents" field. It is called by the builders before save.
	RemainingDocumentsValidator func(int) error
	// TotalDocumentsValidator is a validator for the "total_documents" field. It is called by the builders before save.
	TotalDocumentsValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the License queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByRemainingDocuments orders the results by the remaining_documents field.
func ByRemainingDocuments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemainingDocuments, opts...).ToFunc()
}

// ByTotalDocuments orders the results by the total_documents field.
func ByTotalDocuments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDocuments, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUsagesCount orders the results by usages count.
func ByUsagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsagesStep(), opts...)
	}
}

// ByUsages orders the results by usages terms.
func ByUsages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUsagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsagesTable, UsagesColumn),
	)
}
