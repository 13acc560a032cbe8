// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/document"
	"github.com/docflowhq/docflow/gen/ent/extractionjob"
	"github.com/google/uuid"
)

// ExtractionJobCreate is the builder for creating a ExtractionJob entity.
type ExtractionJobCreate struct {
	config
	mutation *ExtractionJobMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionJobCreate) SetDocumentID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *ExtractionJobCreate) SetJobType(v string) *ExtractionJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ExtractionJobCreate) SetPayload(v json.RawMessage) *ExtractionJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ExtractionJobCreate) SetPriority(v int) *ExtractionJobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillablePriority(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *ExtractionJobCreate) SetSubmittedBy(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *ExtractionJobCreate) SetTenantID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionJobCreate) SetCreatedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableCreatedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionJobCreate) SetID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableID(v *uuid.UUID) *ExtractionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionJobCreate) SetDocument(v *Document) *ExtractionJobCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_c *ExtractionJobCreate) Mutation() *ExtractionJobMutation {
	return _c.mutation
}

// Save creates the ExtractionJob in the database.
func (_c *ExtractionJobCreate) Save(ctx context.Context) (*ExtractionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionJobCreate) SaveX(ctx context.Context) *ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionJobCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := extractionjob.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionJobCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionJob.document_id"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "ExtractionJob.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := extractionjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ExtractionJob.payload"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ExtractionJob.priority"`)}
	}
	if _, ok := _c.mutation.SubmittedBy(); !ok {
		return &ValidationError{Name: "submitted_by", err: errors.New(`ent: missing required field "ExtractionJob.submitted_by"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ExtractionJob.tenant_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionJob.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionJob.document"`)}
	}
	return nil
}

func (_c *ExtractionJobCreate) sqlSave(ctx context.Context) (*ExtractionJob, error) {
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

func (_c *ExtractionJobCreate) createSpec() (*ExtractionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionjob.Table, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(extractionjob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(extractionjob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(extractionjob.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.SubmittedBy(); ok {
		_spec.SetField(extractionjob.FieldSubmittedBy, field.TypeUUID, value)
		_node.SubmittedBy = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(extractionjob.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.DocumentTable,
			Columns: []string{extractionjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionJobCreateBulk is the builder for creating many ExtractionJob entities in bulk.
type ExtractionJobCreateBulk struct {
	config
	err      error
	builders []*ExtractionJobCreate
}

// Save creates the ExtractionJob entities in the database.
func (_c *ExtractionJobCreateBulk) Save(ctx context.Context) ([]*ExtractionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionJobMutation)
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
func (_c *ExtractionJobCreateBulk) SaveX(ctx context.Context) []*ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
