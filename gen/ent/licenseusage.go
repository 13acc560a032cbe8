// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/license"
	"github.com/docflowhq/docflow/gen/ent/licenseusage"
	"github.com/google/uuid"
)

// LicenseUsage is the model entity for the LicenseUsage schema.
type LicenseUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LicenseID holds the value of the "license_id" field.
	LicenseID uuid.UUID `json:"license_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Units holds the value of the "units" field.
	Units int `json:"units,omitempty"`
	// ConsumedAt holds the value of the "consumed_at" field.
	ConsumedAt time.Time `json:"consumed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LicenseUsageQuery when eager-loading is set.
	Edges        LicenseUsageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LicenseUsageEdges holds the relations/edges for other nodes in the graph.
type LicenseUsageEdges struct {
	// License holds the value of the license edge.
	License *License `json:"license,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LicenseOrErr returns the License value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LicenseUsageEdges) LicenseOrErr() (*License, error) {
	if e.License != nil {
		return e.License, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: license.Label}
	}
	return nil, &NotLoadedError{edge: "license"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LicenseUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case licenseusage.FieldUnits:
			values[i] = new(sql.NullInt64)
		case licenseusage.FieldConsumedAt:
			values[i] = new(sql.NullTime)
		case licenseusage.FieldID, licenseusage.FieldLicenseID, licenseusage.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LicenseUsage fields.
func (_m *LicenseUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case licenseusage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case licenseusage.FieldLicenseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field license_id", values[i])
			} else if value != nil {
				_m.LicenseID = *value
			}
		case licenseusage.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case licenseusage.FieldUnits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field units", values[i])
			} else if value.Valid {
				_m.Units = int(value.Int64)
			}
		case licenseusage.FieldConsumedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field consumed_at", values[i])
			} else if value.Valid {
				_m.ConsumedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LicenseUsage.
// This includes values selected through modifiers, order, etc.
func (_m *LicenseUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLicense queries the "license" edge of the LicenseUsage entity.
func (_m *LicenseUsage) QueryLicense() *LicenseQuery {
	return NewLicenseUsageClient(_m.config).QueryLicense(_m)
}

// Update returns a builder for updating this LicenseUsage.
// Note that you need to call LicenseUsage.Unwrap() before calling this method if this LicenseUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LicenseUsage) Update() *LicenseUsageUpdateOne {
	return NewLicenseUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LicenseUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LicenseUsage) Unwrap() *LicenseUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LicenseUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LicenseUsage) String() string {
	var builder strings.Builder
	builder.WriteString("LicenseUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("license_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LicenseID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("units=")
	builder.WriteString(fmt.Sprintf("%v", _m.Units))
	builder.WriteString(", ")
	builder.WriteString("consumed_at=")
	builder.WriteString(_m.ConsumedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LicenseUsages is a parsable slice of LicenseUsage.
type LicenseUsages []*LicenseUsage
