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

// LicenseUpdate is the builder for updating License entities.
type LicenseUpdate struct {
	config
	hooks    []Hook
	mutation *LicenseMutation
}

// Where appends a list predicates to the LicenseUpdate builder.
func (_u *LicenseUpdate) Where(ps ...predicate.License) *LicenseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *LicenseUpdate) SetTenantID(v uuid.UUID) *LicenseUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *LicenseUpdate) SetNillableTenantID(v *uuid.UUID) *LicenseUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetRemainingDocuments sets the "remaining_documents" field.
func (_u *LicenseUpdate) SetRemainingDocuments(v int) *LicenseUpdate {
	_u.mutation.ResetRemainingDocuments()
	_u.mutation.SetRemainingDocuments(v)
	return _u
}

// SetNillableRemainingDocuments sets the "remaining_documents" field if the given value is not nil.
func (_u *LicenseUpdate) SetNillableRemainingDocuments(v *int) *LicenseUpdate {
	if v != nil {
		_u.SetRemainingDocuments(*v)
	}
	return _u
}

// AddRemainingDocuments adds value to the "remaining_documents" field.
func (_u *LicenseUpdate) AddRemainingDocuments(v int) *LicenseUpdate {
	_u.mutation.AddRemainingDocuments(v)
	return _u
}

// SetTotalDocuments sets the "total_documents" field.
func (_u *LicenseUpdate) SetTotalDocuments(v int) *LicenseUpdate {
	_u.mutation.ResetTotalDocuments()
	_u.mutation.SetTotalDocuments(v)
	return _u
}

// SetNillableTotalDocuments sets the "total_documents" field if the given value is not nil.
func (_u *LicenseUpdate) SetNillableTotalDocuments(v *int) *LicenseUpdate {
	if v != nil {
		_u.SetTotalDocuments(*v)
	}
	return _u
}

// AddTotalDocuments adds value to the "total_documents" field.
func (_u *LicenseUpdate) AddTotalDocuments(v int) *LicenseUpdate {
	_u.mutation.AddTotalDocuments(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *LicenseUpdate) SetExpiresAt(v time.Time) *LicenseUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *LicenseUpdate) SetNillableExpiresAt(v *time.Time) *LicenseUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LicenseUpdate) SetUpdatedAt(v time.Time) *LicenseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUsageIDs adds the "usages" edge to the LicenseUsage entity by IDs.
func (_u *LicenseUpdate) AddUsageIDs(ids ...uuid.UUID) *LicenseUpdate {
	_u.mutation.AddUsageIDs(ids...)
	return _u
}

// AddUsages adds the "usages" edges to the LicenseUsage entity.
func (_u *LicenseUpdate) AddUsages(v ...*LicenseUsage) *LicenseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageIDs(ids...)
}

// Mutation returns the LicenseMutation object of the builder.
func (_u *LicenseUpdate) Mutation() *LicenseMutation {
	return _u.mutation
}

// ClearUsages clears all "usages" edges to the LicenseUsage entity.
func (_u *LicenseUpdate) ClearUsages() *LicenseUpdate {
	_u.mutation.ClearUsages()
	return _u
}

// RemoveUsageIDs removes the "usages" edge to LicenseUsage entities by IDs.
func (_u *LicenseUpdate) RemoveUsageIDs(ids ...uuid.UUID) *LicenseUpdate {
	_u.mutation.RemoveUsageIDs(ids...)
	return _u
}

// RemoveUsages removes "usages" edges to LicenseUsage entities.
func (_u *LicenseUpdate) RemoveUsages(v ...*LicenseUsage) *LicenseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LicenseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LicenseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LicenseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LicenseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LicenseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := license.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LicenseUpdate) check() error {
	if v, ok := _u.mutation.RemainingDocuments(); ok {
		if err := license.RemainingDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "remaining_documents", err: fmt.Errorf(`ent: validator failed for field "License.remaining_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDocuments(); ok {
		if err := license.TotalDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "total_documents", err: fmt.Errorf(`ent: validator failed for field "License.total_documents": %w`, err)}
		}
	}
	return nil
}

func (_u *LicenseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(license.Table, license.Columns, sqlgraph.NewFieldSpec(license.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(license.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RemainingDocuments(); ok {
		_spec.SetField(license.FieldRemainingDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingDocuments(); ok {
		_spec.AddField(license.FieldRemainingDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalDocuments(); ok {
		_spec.SetField(license.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDocuments(); ok {
		_spec.AddField(license.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(license.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(license.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   license.UsagesTable,
			Columns: []string{license.UsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsagesIDs(); len(nodes) > 0 && !_u.mutation.UsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   license.UsagesTable,
			Columns: []string{license.UsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   license.UsagesTable,
			Columns: []string{license.UsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{license.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LicenseUpdateOne is the builder for updating a single License entity.
type LicenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LicenseMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *LicenseUpdateOne) SetTenantID(v uuid.UUID) *LicenseUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *LicenseUpdateOne) SetNillableTenantID(v *uuid.UUID) *LicenseUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetRemainingDocuments sets the "remaining_documents" field.
func (_u *LicenseUpdateOne) SetRemainingDocuments(v int) *LicenseUpdateOne {
	_u.mutation.ResetRemainingDocuments()
	_u.mutation.SetRemainingDocuments(v)
	return _u
}

// SetNillableRemainingDocuments sets the "remaining_documents" field if the given value is not nil.
func (_u *LicenseUpdateOne) SetNillableRemainingDocuments(v *int) *LicenseUpdateOne {
	if v != nil {
		_u.SetRemainingDocuments(*v)
	}
	return _u
}

// AddRemainingDocuments adds value to the "remaining_documents" field.
func (_u *LicenseUpdateOne) AddRemainingDocuments(v int) *LicenseUpdateOne {
	_u.mutation.AddRemainingDocuments(v)
	return _u
}

// SetTotalDocuments sets the "total_documents" field.
func (_u *LicenseUpdateOne) SetTotalDocuments(v int) *LicenseUpdateOne {
	_u.mutation.ResetTotalDocuments()
	_u.mutation.SetTotalDocuments(v)
	return _u
}

// SetNillableTotalDocuments sets the "total_documents" field if the given value is not nil.
func (_u *LicenseUpdateOne) SetNillableTotalDocuments(v *int) *LicenseUpdateOne {
	if v != nil {
		_u.SetTotalDocuments(*v)
	}
	return _u
}

// AddTotalDocuments adds value to the "total_documents" field.
func (_u *LicenseUpdateOne) AddTotalDocuments(v int) *LicenseUpdateOne {
	_u.mutation.AddTotalDocuments(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *LicenseUpdateOne) SetExpiresAt(v time.Time) *LicenseUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *LicenseUpdateOne) SetNillableExpiresAt(v *time.Time) *LicenseUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LicenseUpdateOne) SetUpdatedAt(v time.Time) *LicenseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUsageIDs adds the "usages" edge to the LicenseUsage entity by IDs.
func (_u *LicenseUpdateOne) AddUsageIDs(ids ...uuid.UUID) *LicenseUpdateOne {
	_u.mutation.AddUsageIDs(ids...)
	return _u
}

// AddUsages adds the "usages" edges to the LicenseUsage entity.
func (_u *LicenseUpdateOne) AddUsages(v ...*LicenseUsage) *LicenseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageIDs(ids...)
}

// Mutation returns the LicenseMutation object of the builder.
func (_u *LicenseUpdateOne) Mutation() *LicenseMutation {
	return _u.mutation
}

// ClearUsages clears all "usages" edges to the LicenseUsage entity.
func (_u *LicenseUpdateOne) ClearUsages() *LicenseUpdateOne {
	_u.mutation.ClearUsages()
	return _u
}

// RemoveUsageIDs removes the "usages" edge to LicenseUsage entities by IDs.
func (_u *LicenseUpdateOne) RemoveUsageIDs(ids ...uuid.UUID) *LicenseUpdateOne {
	_u.mutation.RemoveUsageIDs(ids...)
	return _u
}

// RemoveUsages removes "usages" edges to LicenseUsage entities.
func (_u *LicenseUpdateOne) RemoveUsages(v ...*LicenseUsage) *LicenseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageIDs(ids...)
}

// Where appends a list predicates to the LicenseUpdate builder.
func (_u *LicenseUpdateOne) Where(ps ...predicate.License) *LicenseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LicenseUpdateOne) Select(field string, fields ...string) *LicenseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated License entity.
func (_u *LicenseUpdateOne) Save(ctx context.Context) (*License, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LicenseUpdateOne) SaveX(ctx context.Context) *License {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LicenseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LicenseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LicenseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := license.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LicenseUpdateOne) check() error {
	if v, ok := _u.mutation.RemainingDocuments(); ok {
		if err := license.RemainingDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "remaining_documents", err: fmt.Errorf(`ent: validator failed for field "License.remaining_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDocuments(); ok {
		if err := license.TotalDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "total_documents", err: fmt.Errorf(`ent: validator failed for field "License.total_documents": %w`, err)}
		}
	}
	return nil
}

func (_u *LicenseUpdateOne) sqlSave(ctx context.Context) (_node *License, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(license.Table, license.Columns, sqlgraph.NewFieldSpec(license.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "License.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, license.FieldID)
		for _, f := range fields {
			if !license.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != license.FieldID {
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
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(license.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RemainingDocuments(); ok {
		_spec.SetField(license.FieldRemainingDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingDocuments(); ok {
		_spec.AddField(license.FieldRemainingDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalDocuments(); ok {
		_spec.SetField(license.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDocuments(); ok {
		_spec.AddField(license.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(license.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(license.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   license.UsagesTable,
			Columns: []string{license.UsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsagesIDs(); len(nodes) > 0 && !_u.mutation.UsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   license.UsagesTable,
			Columns: []string{license.UsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   license.UsagesTable,
			Columns: []string{license.UsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &License{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{license.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
