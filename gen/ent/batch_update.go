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
	"github.com/docflowhq/docflow/gen/ent/batch"
	"github.com/docflowhq/docflow/gen/ent/document"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/docflowhq/docflow/gen/ent/project"
	"github.com/google/uuid"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *BatchUpdate) SetProjectID(v uuid.UUID) *BatchUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableProjectID(v *uuid.UUID) *BatchUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BatchUpdate) SetName(v string) *BatchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableName(v *string) *BatchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTotalDocuments sets the "total_documents" field.
func (_u *BatchUpdate) SetTotalDocuments(v int) *BatchUpdate {
	_u.mutation.ResetTotalDocuments()
	_u.mutation.SetTotalDocuments(v)
	return _u
}

// SetNillableTotalDocuments sets the "total_documents" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalDocuments(v *int) *BatchUpdate {
	if v != nil {
		_u.SetTotalDocuments(*v)
	}
	return _u
}

// AddTotalDocuments adds value to the "total_documents" field.
func (_u *BatchUpdate) AddTotalDocuments(v int) *BatchUpdate {
	_u.mutation.AddTotalDocuments(v)
	return _u
}

// SetProcessedDocuments sets the "processed_documents" field.
func (_u *BatchUpdate) SetProcessedDocuments(v int) *BatchUpdate {
	_u.mutation.ResetProcessedDocuments()
	_u.mutation.SetProcessedDocuments(v)
	return _u
}

// SetNillableProcessedDocuments sets the "processed_documents" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableProcessedDocuments(v *int) *BatchUpdate {
	if v != nil {
		_u.SetProcessedDocuments(*v)
	}
	return _u
}

// AddProcessedDocuments adds value to the "processed_documents" field.
func (_u *BatchUpdate) AddProcessedDocuments(v int) *BatchUpdate {
	_u.mutation.AddProcessedDocuments(v)
	return _u
}

// SetValidatedDocuments sets the "validated_documents" field.
func (_u *BatchUpdate) SetValidatedDocuments(v int) *BatchUpdate {
	_u.mutation.ResetValidatedDocuments()
	_u.mutation.SetValidatedDocuments(v)
	return _u
}

// SetNillableValidatedDocuments sets the "validated_documents" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableValidatedDocuments(v *int) *BatchUpdate {
	if v != nil {
		_u.SetValidatedDocuments(*v)
	}
	return _u
}

// AddValidatedDocuments adds value to the "validated_documents" field.
func (_u *BatchUpdate) AddValidatedDocuments(v int) *BatchUpdate {
	_u.mutation.AddValidatedDocuments(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *BatchUpdate) SetErrorCount(v int) *BatchUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableErrorCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *BatchUpdate) AddErrorCount(v int) *BatchUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdate) SetStatus(v string) *BatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableStatus(v *string) *BatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BatchUpdate) SetCreatedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCreatedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchUpdate) SetUpdatedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *BatchUpdate) SetProject(v *Project) *BatchUpdate {
	return _u.SetProjectID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *BatchUpdate) AddDocumentIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *BatchUpdate) AddDocuments(v ...*Document) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdate) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *BatchUpdate) ClearProject() *BatchUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *BatchUpdate) ClearDocuments() *BatchUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *BatchUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *BatchUpdate) RemoveDocuments(v ...*Document) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := batch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Batch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDocuments(); ok {
		if err := batch.TotalDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "total_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.total_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedDocuments(); ok {
		if err := batch.ProcessedDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "processed_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.processed_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidatedDocuments(); ok {
		if err := batch.ValidatedDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "validated_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.validated_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCount(); ok {
		if err := batch.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "Batch.error_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Batch.project"`)
	}
	return nil
}

func (_u *BatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDocuments(); ok {
		_spec.SetField(batch.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDocuments(); ok {
		_spec.AddField(batch.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedDocuments(); ok {
		_spec.SetField(batch.FieldProcessedDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedDocuments(); ok {
		_spec.AddField(batch.FieldProcessedDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidatedDocuments(); ok {
		_spec.SetField(batch.FieldValidatedDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidatedDocuments(); ok {
		_spec.AddField(batch.FieldValidatedDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(batch.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(batch.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batch.ProjectTable,
			Columns: []string{batch.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batch.ProjectTable,
			Columns: []string{batch.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetProjectID sets the "project_id" field.
func (_u *BatchUpdateOne) SetProjectID(v uuid.UUID) *BatchUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableProjectID(v *uuid.UUID) *BatchUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BatchUpdateOne) SetName(v string) *BatchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableName(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTotalDocuments sets the "total_documents" field.
func (_u *BatchUpdateOne) SetTotalDocuments(v int) *BatchUpdateOne {
	_u.mutation.ResetTotalDocuments()
	_u.mutation.SetTotalDocuments(v)
	return _u
}

// SetNillableTotalDocuments sets the "total_documents" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalDocuments(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalDocuments(*v)
	}
	return _u
}

// AddTotalDocuments adds value to the "total_documents" field.
func (_u *BatchUpdateOne) AddTotalDocuments(v int) *BatchUpdateOne {
	_u.mutation.AddTotalDocuments(v)
	return _u
}

// SetProcessedDocuments sets the "processed_documents" field.
func (_u *BatchUpdateOne) SetProcessedDocuments(v int) *BatchUpdateOne {
	_u.mutation.ResetProcessedDocuments()
	_u.mutation.SetProcessedDocuments(v)
	return _u
}

// SetNillableProcessedDocuments sets the "processed_documents" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableProcessedDocuments(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetProcessedDocuments(*v)
	}
	return _u
}

// AddProcessedDocuments adds value to the "processed_documents" field.
func (_u *BatchUpdateOne) AddProcessedDocuments(v int) *BatchUpdateOne {
	_u.mutation.AddProcessedDocuments(v)
	return _u
}

// SetValidatedDocuments sets the "validated_documents" field.
func (_u *BatchUpdateOne) SetValidatedDocuments(v int) *BatchUpdateOne {
	_u.mutation.ResetValidatedDocuments()
	_u.mutation.SetValidatedDocuments(v)
	return _u
}

// SetNillableValidatedDocuments sets the "validated_documents" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableValidatedDocuments(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetValidatedDocuments(*v)
	}
	return _u
}

// AddValidatedDocuments adds value to the "validated_documents" field.
func (_u *BatchUpdateOne) AddValidatedDocuments(v int) *BatchUpdateOne {
	_u.mutation.AddValidatedDocuments(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *BatchUpdateOne) SetErrorCount(v int) *BatchUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableErrorCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *BatchUpdateOne) AddErrorCount(v int) *BatchUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdateOne) SetStatus(v string) *BatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableStatus(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BatchUpdateOne) SetCreatedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCreatedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchUpdateOne) SetUpdatedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *BatchUpdateOne) SetProject(v *Project) *BatchUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *BatchUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *BatchUpdateOne) AddDocuments(v ...*Document) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdateOne) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *BatchUpdateOne) ClearProject() *BatchUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *BatchUpdateOne) ClearDocuments() *BatchUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *BatchUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *BatchUpdateOne) RemoveDocuments(v ...*Document) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Batch entity.
func (_u *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := batch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Batch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDocuments(); ok {
		if err := batch.TotalDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "total_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.total_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedDocuments(); ok {
		if err := batch.ProcessedDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "processed_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.processed_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidatedDocuments(); ok {
		if err := batch.ValidatedDocumentsValidator(v); err != nil {
			return &ValidationError{Name: "validated_documents", err: fmt.Errorf(`ent: validator failed for field "Batch.validated_documents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCount(); ok {
		if err := batch.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "Batch.error_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Batch.project"`)
	}
	return nil
}

func (_u *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDocuments(); ok {
		_spec.SetField(batch.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDocuments(); ok {
		_spec.AddField(batch.FieldTotalDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedDocuments(); ok {
		_spec.SetField(batch.FieldProcessedDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedDocuments(); ok {
		_spec.AddField(batch.FieldProcessedDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidatedDocuments(); ok {
		_spec.SetField(batch.FieldValidatedDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidatedDocuments(); ok {
		_spec.AddField(batch.FieldValidatedDocuments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(batch.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(batch.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batch.ProjectTable,
			Columns: []string{batch.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batch.ProjectTable,
			Columns: []string{batch.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.DocumentsTable,
			Columns: []string{batch.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Batch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
