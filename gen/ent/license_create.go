// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/license"
	"github.com/docflowhq/docflow/gen/ent/licenseusage"
	"github.com/google/uuid"
)

// LicenseCreate is the builder for creating a License entity.
type LicenseCreate struct {
	config
	mutation *LicenseMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *LicenseCreate) SetTenantID(v uuid.UUID) *LicenseCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRemainingDocuments sets the "remaining_documents" field.
func (_c *LicenseCreate) SetRemainingDocuments(v int) *LicenseCreate {
	_c.mutation.SetRemainingDocuments(v)
	return _c
}

// SetTotalDocuments sets the "total_documents" field.
func (_c *LicenseCreate) SetTotalDocuments(v int) *LicenseCreate {
	_c.mutation.SetTotalDocuments(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *LicenseCreate) SetExpiresAt(v time.Time) *LicenseCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LicenseCreate) SetUpdatedAt(v time.Time) *LicenseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LicenseCreate) SetNillableUpdatedAt(v *time.Time) *LicenseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LicenseCreate) SetID(v uuid.UUID) *LicenseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LicenseCreate) SetNillableID(v *uuid.UUID) *LicenseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddUsageIDs adds the "usages" edge to the LicenseUsage entity by IDs.
func (_c *LicenseCreate) AddUsageIDs(ids ...uuid.UUID) *LicenseCreate {
	_c.mutation.AddUsageIDs(ids...)
	return _c
}

// AddUsages adds the "usages" edges to the LicenseUsage entity.
func (_c *LicenseCreate) AddUsages(v ...*LicenseUsage) *LicenseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUsageIDs(ids...)
}

// Mutation returns the LicenseMutation object of the builder.
func (_c *LicenseCreate) Mutation() *LicenseMutation {
	return _c.mutation
}

// Save creates the License in the database.
func (_c *LicenseCreate) Save(ctx context.Context) (*License, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LicenseCreate) SaveX(ctx context.Context) *License {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LicenseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LicenseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LicenseCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := license.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := license.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LicenseCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "License.tenant_id"`)}
	}
	if _, ok := _c.mutation.RemainingDocuments(); !ok {
		return &ValidationError{Name: "remaining_documents", err: errors.New(`ent: missing required field "License.remaining_documents"`)}
	}
	if v, ok := _c.mutation.RemainingDocuments(); ok {
		if err := license.RemainingDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "remaining_documents", err: fmt.Errorf(`ent: validator failed for field "License.remaining_documents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalDocuments(); !ok {
		return &ValidationError{Name: "total_documents", err: errors.New(`ent: missing required field "License.total_documents"`)}
	}
	if v, ok := _c.mutation.TotalDocuments(); ok {
		if err := license.TotalDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "total_documents", err: fmt.Errorf(`ent: validator failed for field "License.total_documents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "License.expires_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "License.updated_at"`)}
	}
	return nil
}

func (_c *LicenseCreate) sqlSave(ctx context.Context) (*License, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LicenseCreate) createSpec() (*License, *sqlgraph.CreateSpec) {
	var (
		_node = &License{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(license.Table, sqlgraph.NewFieldSpec(license.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(license.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.RemainingDocuments(); ok {
		_spec.SetField(license.FieldRemainingDocuments, field.TypeInt, value)
		_node.RemainingDocuments = value
	}
	if value, ok := _c.mutation.TotalDocuments(); ok {
		_spec.SetField(license.FieldTotalDocuments, field.TypeInt, value)
		_node.TotalDocuments = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(license.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(license.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LicenseCreateBulk is the builder for creating many License entities in bulk.
type LicenseCreateBulk struct {
	config
	err      error
	builders []*LicenseCreate
}

// Save creates the License entities in the database.
func (_c *LicenseCreateBulk) Save(ctx context.Context) ([]*License, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*License, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LicenseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LicenseCreateBulk) SaveX(ctx context.Context) []*License {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LicenseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LicenseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
