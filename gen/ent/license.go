// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/license"
	"github.com/google/uuid"
)

// License is the model entity for the License schema.
type License struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	// RemainingDocuments holds the value of the "remaining_documents" field.
	RemainingDocuments int `json:"remaining_documents,omitempty"`
	// TotalDocuments holds the value of the "total_documents" field.
	TotalDocuments int `json:"total_documents,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LicenseQuery when eager-loading is set.
	Edges        LicenseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LicenseEdges holds the relations/edges for other nodes in the graph.
type LicenseEdges struct {
	// Usages holds the value of the usages edge.
	Usages []*LicenseUsage `json:"usages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UsagesOrErr returns the Usages value or an error if the edge
// was not loaded in eager-loading.
func (e LicenseEdges) UsagesOrErr() ([]*LicenseUsage, error) {
	if e.loadedTypes[0] {
		return e.Usages, nil
	}
	return nil, &NotLoadedError{edge: "usages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*License) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case license.FieldRemainingDocuments, license.FieldTotalDocuments:
			values[i] = new(sql.NullInt64)
		case license.FieldExpiresAt, license.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case license.FieldID, license.FieldTenantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the License fields.
func (_m *License) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case license.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case license.FieldTenantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value != nil {
				_m.TenantID = *value
			}
		case license.FieldRemainingDocuments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining_documents", values[i])
			} else if value.Valid {
				_m.RemainingDocuments = int(value.Int64)
			}
		case license.FieldTotalDocuments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_documents", values[i])
			} else if value.Valid {
				_m.TotalDocuments = int(value.Int64)
			}
		case license.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case license.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the License.
// This includes values selected through modifiers, order, etc.
func (_m *License) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsages queries the "usages" edge of the License entity.
func (_m *License) QueryUsages() *LicenseUsageQuery {
	return NewLicenseClient(_m.config).QueryUsages(_m)
}

// Update returns a builder for updating this License.
// Note that you need to call License.Unwrap() before calling this method if this License
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *License) Update() *LicenseUpdateOne {
	return NewLicenseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the License entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *License) Unwrap() *License {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: License is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *License) String() string {
	var builder strings.Builder
	builder.WriteString("License(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("remaining_documents=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemainingDocuments))
	builder.WriteString(", ")
	builder.WriteString("total_documents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDocuments))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Licenses is a parsable slice of License.
type Licenses []*License
