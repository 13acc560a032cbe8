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

// LicenseUsageCreate is the builder for creating a LicenseUsage entity.
type LicenseUsageCreate struct {
	config
	mutation *LicenseUsageMutation
	hooks    []Hook
}

// SetLicenseID sets the "license_id" field.
func (_c *LicenseUsageCreate) SetLicenseID(v uuid.UUID) *LicenseUsageCreate {
	_c.mutation.SetLicenseID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *LicenseUsageCreate) SetDocumentID(v uuid.UUID) *LicenseUsageCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetUnits sets the "units" field.
func (_c *LicenseUsageCreate) SetUnits(v int) *LicenseUsageCreate {
	_c.mutation.SetUnits(v)
	return _c
}

// SetConsumedAt sets the "consumed_at" field.
func (_c *LicenseUsageCreate) SetConsumedAt(v time.Time) *LicenseUsageCreate {
	_c.mutation.SetConsumedAt(v)
	return _c
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_c *LicenseUsageCreate) SetNillableConsumedAt(v *time.Time) *LicenseUsageCreate {
	if v != nil {
		_c.SetConsumedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LicenseUsageCreate) SetID(v uuid.UUID) *LicenseUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LicenseUsageCreate) SetNillableID(v *uuid.UUID) *LicenseUsageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLicense sets the "license" edge to the License entity.
func (_c *LicenseUsageCreate) SetLicense(v *License) *LicenseUsageCreate {
	return _c.SetLicenseID(v.ID)
}

// Mutation returns the LicenseUsageMutation object of the builder.
func (_c *LicenseUsageCreate) Mutation() *LicenseUsageMutation {
	return _c.mutation
}

// Save creates the LicenseUsage in the database.
func (_c *LicenseUsageCreate) Save(ctx context.Context) (*LicenseUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LicenseUsageCreate) SaveX(ctx context.Context) *LicenseUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LicenseUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LicenseUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LicenseUsageCreate) defaults() {
	if _, ok := _c.mutation.ConsumedAt(); !ok {
		v := licenseusage.DefaultConsumedAt()
		_c.mutation.SetConsumedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := licenseusage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LicenseUsageCreate) check() error {
	if _, ok := _c.mutation.LicenseID(); !ok {
		return &ValidationError{Name: "license_id", err: errors.New(`ent: missing required field "LicenseUsage.license_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "LicenseUsage.document_id"`)}
	}
	if _, ok := _c.mutation.Units(); !ok {
		return &ValidationError{Name: "units", err: errors.New(`ent: missing required field "LicenseUsage.units"`)}
	}
	if v, ok := _c.mutation.Units(); ok {
		if err := licenseusage.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`ent: validator failed for field "LicenseUsage.units": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsumedAt(); !ok {
		return &ValidationError{Name: "consumed_at", err: errors.New(`ent: missing required field "LicenseUsage.consumed_at"`)}
	}
	if len(_c.mutation.LicenseIDs()) == 0 {
		return &ValidationError{Name: "license", err: errors.New(`ent: missing required edge "LicenseUsage.license"`)}
	}
	return nil
}

func (_c *LicenseUsageCreate) sqlSave(ctx context.Context) (*LicenseUsage, error) {
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

func (_c *LicenseUsageCreate) createSpec() (*LicenseUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &LicenseUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(licenseusage.Table, sqlgraph.NewFieldSpec(licenseusage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(licenseusage.FieldDocumentID, field.TypeUUID, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Units(); ok {
		_spec.SetField(licenseusage.FieldUnits, field.TypeInt, value)
		_node.Units = value
	}
	if value, ok := _c.mutation.ConsumedAt(); ok {
		_spec.SetField(licenseusage.FieldConsumedAt, field.TypeTime, value)
		_node.ConsumedAt = value
	}
	if nodes := _c.mutation.LicenseIDs(); len(nodes) > 0 {
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
		_node.LicenseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LicenseUsageCreateBulk is the builder for creating many LicenseUsage entities in bulk.
type LicenseUsageCreateBulk struct {
	config
	err      error
	builders []*LicenseUsageCreate
}

// Save creates the LicenseUsage entities in the database.
func (_c *LicenseUsageCreateBulk) Save(ctx context.Context) ([]*LicenseUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LicenseUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LicenseUsageMutation)
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
func (_c *LicenseUsageCreateBulk) SaveX(ctx context.Context) []*LicenseUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LicenseUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LicenseUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
