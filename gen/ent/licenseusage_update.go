// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/license"
	"github.com/docflowhq/docflow/gen/ent/licenseusage"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// LicenseUsageUpdate is the builder for updating LicenseUsage entities.
type LicenseUsageUpdate struct {
	config
	hooks    []Hook
	mutation *LicenseUsageMutation
}

// Where appends a list predicates to the LicenseUsageUpdate builder.
func (_u *LicenseUsageUpdate) Where(ps ...predicate.LicenseUsage) *LicenseUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLicenseID sets the "license_id" field.
func (_u *LicenseUsageUpdate) SetLicenseID(v uuid.UUID) *LicenseUsageUpdate {
	_u.mutation.SetLicenseID(v)
	return _u
}

// SetNillableLicenseID sets the "license_id" field if the given value is not nil.
func (_u *LicenseUsageUpdate) SetNillableLicenseID(v *uuid.UUID) *LicenseUsageUpdate {
	if v != nil {
		_u.SetLicenseID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *LicenseUsageUpdate) SetDocumentID(v uuid.UUID) *LicenseUsageUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *LicenseUsageUpdate) SetNillableDocumentID(v *uuid.UUID) *LicenseUsageUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *LicenseUsageUpdate) SetUnits(v int) *LicenseUsageUpdate {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *LicenseUsageUpdate) SetNillableUnits(v *int) *LicenseUsageUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *LicenseUsageUpdate) AddUnits(v int) *LicenseUsageUpdate {
	_u.mutation.AddUnits(v)
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *LicenseUsageUpdate) SetConsumedAt(v time.Time) *LicenseUsageUpdate {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *LicenseUsageUpdate) SetNillableConsumedAt(v *time.Time) *LicenseUsageUpdate {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// SetLicense sets the "license" edge to the License entity.
func (_u *LicenseUsageUpdate) SetLicense(v *License) *LicenseUsageUpdate {
	return _u.SetLicenseID(v.ID)
}

// Mutation returns the LicenseUsageMutation object of the builder.
func (_u *LicenseUsageUpdate) Mutation() *LicenseUsageMutation {
	return _u.mutation
}

// ClearLicense clears the "license" edge to the License entity.
func (_u *LicenseUsageUpdate) ClearLicense() *LicenseUsageUpdate {
	_u.mutation.ClearLicense()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LicenseUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LicenseUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LicenseUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LicenseUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LicenseUsageUpdate) check() error {
	if v, ok := _u.mutation.Units(); ok {
		if err := licenseusage.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`ent: validator failed for field "LicenseUsage.units": %w`, err)}
		}
	}
	if _u.mutation.LicenseCleared() && len(_u.mutation.LicenseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LicenseUsage.license"`)
	}
	return nil
}

func (_u *LicenseUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(licenseusage.Table, licenseusage.Columns, sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(licenseusage.FieldDocumentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(licenseusage.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(licenseusage.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(licenseusage.FieldConsumedAt, field.TypeTime, value)
	}
	if _u.mutation.LicenseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   licenseusage.LicenseTable,
			Columns: []string{licenseusage.LicenseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(license.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LicenseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   licenseusage.LicenseTable,
			Columns: []string{licenseusage.LicenseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(license.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{licenseusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LicenseUsageUpdateOne is the builder for updating a single LicenseUsage entity.
type LicenseUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LicenseUsageMutation
}

// SetLicenseID sets the "license_id" field.
func (_u *LicenseUsageUpdateOne) SetLicenseID(v uuid.UUID) *LicenseUsageUpdateOne {
	_u.mutation.SetLicenseID(v)
	return _u
}

// SetNillableLicenseID sets the "license_id" field if the given value is not nil.
func (_u *LicenseUsageUpdateOne) SetNillableLicenseID(v *uuid.UUID) *LicenseUsageUpdateOne {
	if v != nil {
		_u.SetLicenseID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *LicenseUsageUpdateOne) SetDocumentID(v uuid.UUID) *LicenseUsageUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *LicenseUsageUpdateOne) SetNillableDocumentID(v *uuid.UUID) *LicenseUsageUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *LicenseUsageUpdateOne) SetUnits(v int) *LicenseUsageUpdateOne {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *LicenseUsageUpdateOne) SetNillableUnits(v *int) *LicenseUsageUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *LicenseUsageUpdateOne) AddUnits(v int) *LicenseUsageUpdateOne {
	_u.mutation.AddUnits(v)
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *LicenseUsageUpdateOne) SetConsumedAt(v time.Time) *LicenseUsageUpdateOne {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *LicenseUsageUpdateOne) SetNillableConsumedAt(v *time.Time) *LicenseUsageUpdateOne {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// SetLicense sets the "license" edge to the License entity.
func (_u *LicenseUsageUpdateOne) SetLicense(v *License) *LicenseUsageUpdateOne {
	return _u.SetLicenseID(v.ID)
}

// Mutation returns the LicenseUsageMutation object of the builder.
func (_u *LicenseUsageUpdateOne) Mutation() *LicenseUsageMutation {
	return _u.mutation
}

// ClearLicense clears the "license" edge to the License entity.
func (_u *LicenseUsageUpdateOne) ClearLicense() *LicenseUsageUpdateOne {
	_u.mutation.ClearLicense()
	return _u
}

// Where appends a list predicates to the LicenseUsageUpdate builder.
func (_u *LicenseUsageUpdateOne) Where(ps ...predicate.LicenseUsage) *LicenseUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LicenseUsageUpdateOne) Select(field string, fields ...string) *LicenseUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LicenseUsage entity.
func (_u *LicenseUsageUpdateOne) Save(ctx context.Context) (*LicenseUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LicenseUsageUpdateOne) SaveX(ctx context.Context) *LicenseUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LicenseUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LicenseUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LicenseUsageUpdateOne) check() error {
	if v, ok := _u.mutation.Units(); ok {
		if err := licenseusage.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`ent: validator failed for field "LicenseUsage.units": %w`, err)}
		}
	}
	if _u.mutation.LicenseCleared() && len(_u.mutation.LicenseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LicenseUsage.license"`)
	}
	return nil
}

func (_u *LicenseUsageUpdateOne) sqlSave(ctx context.Context) (_node *LicenseUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(licenseusage.Table, licenseusage.Columns, sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LicenseUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, licenseusage.FieldID)
		for _, f := range fields {
			if !licenseusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != licenseusage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(licenseusage.FieldDocumentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(licenseusage.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(licenseusage.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(licenseusage.FieldConsumedAt, field.TypeTime, value)
	}
	if _u.mutation.LicenseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   licenseusage.LicenseTable,
			Columns: []string{licenseusage.LicenseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(license.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LicenseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   licenseusage.LicenseTable,
			Columns: []string{licenseusage.LicenseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(license.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LicenseUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{licenseusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
