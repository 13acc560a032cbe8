// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docflowhq/docflow/gen/ent/batch"
	"github.com/docflowhq/docflow/gen/ent/document"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/docflowhq/docflow/gen/ent/project"
	"github.com/google/uuid"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *ProjectUpdate) SetTenantID(v uuid.UUID) *ProjectUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableTenantID(v *uuid.UUID) *ProjectUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFileNamingTemplate sets the "file_naming_template" field.
func (_u *ProjectUpdate) SetFileNamingTemplate(v string) *ProjectUpdate {
	_u.mutation.SetFileNamingTemplate(v)
	return _u
}

// SetNillableFileNamingTemplate sets the "file_naming_template" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableFileNamingTemplate(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetFileNamingTemplate(*v)
	}
	return _u
}

// ClearFileNamingTemplate clears the value of the "file_naming_template" field.
func (_u *ProjectUpdate) ClearFileNamingTemplate() *ProjectUpdate {
	_u.mutation.ClearFileNamingTemplate()
	return _u
}

// SetExtractionFields sets the "extraction_fields" field.
func (_u *ProjectUpdate) SetExtractionFields(v json.RawMessage) *ProjectUpdate {
	_u.mutation.SetExtractionFields(v)
	return _u
}

// AppendExtractionFields appends value to the "extraction_fields" field.
func (_u *ProjectUpdate) AppendExtractionFields(v json.RawMessage) *ProjectUpdate {
	_u.mutation.AppendExtractionFields(v)
	return _u
}

// ClearExtractionFields clears the value of the "extraction_fields" field.
func (_u *ProjectUpdate) ClearExtractionFields() *ProjectUpdate {
	_u.mutation.ClearExtractionFields()
	return _u
}

// SetTableExtractionFields sets the "table_extraction_fields" field.
func (_u *ProjectUpdate) SetTableExtractionFields(v json.RawMessage) *ProjectUpdate {
	_u.mutation.SetTableExtractionFields(v)
	return _u
}

// AppendTableExtractionFields appends value to the "table_extraction_fields" field.
func (_u *ProjectUpdate) AppendTableExtractionFields(v json.RawMessage) *ProjectUpdate {
	_u.mutation.AppendTableExtractionFields(v)
	return _u
}

// ClearTableExtractionFields clears the value of the "table_extraction_fields" field.
func (_u *ProjectUpdate) ClearTableExtractionFields() *ProjectUpdate {
	_u.mutation.ClearTableExtractionFields()
	return _u
}

// SetCheckScanningMode sets the "check_scanning_mode" field.
func (_u *ProjectUpdate) SetCheckScanningMode(v bool) *ProjectUpdate {
	_u.mutation.SetCheckScanningMode(v)
	return _u
}

// SetNillableCheckScanningMode sets the "check_scanning_mode" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCheckScanningMode(v *bool) *ProjectUpdate {
	if v != nil {
		_u.SetCheckScanningMode(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProjectUpdate) SetCreatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCreatedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_u *ProjectUpdate) AddBatchIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_u *ProjectUpdate) AddBatches(v ...*Batch) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ProjectUpdate) AddDocumentIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ProjectUpdate) AddDocuments(v ...*Document) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearBatches clears all "batches" edges to the Batch entity.
func (_u *ProjectUpdate) ClearBatches() *ProjectUpdate {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to Batch entities by IDs.
func (_u *ProjectUpdate) RemoveBatchIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to Batch entities.
func (_u *ProjectUpdate) RemoveBatches(v ...*Batch) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ProjectUpdate) ClearDocuments() *ProjectUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ProjectUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *ProjectUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ProjectUpdate) RemoveDocuments(v ...*Document) *ProjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(project.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileNamingTemplate(); ok {
		_spec.SetField(project.FieldFileNamingTemplate, field.TypeString, value)
	}
	if _u.mutation.FileNamingTemplateCleared() {
		_spec.ClearField(project.FieldFileNamingTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionFields(); ok {
		_spec.SetField(project.FieldExtractionFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldExtractionFields, value)
		})
	}
	if _u.mutation.ExtractionFieldsCleared() {
		_spec.ClearField(project.FieldExtractionFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.TableExtractionFields(); ok {
		_spec.SetField(project.FieldTableExtractionFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableExtractionFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldTableExtractionFields, value)
		})
	}
	if _u.mutation.TableExtractionFieldsCleared() {
		_spec.ClearField(project.FieldTableExtractionFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.CheckScanningMode(); ok {
		_spec.SetField(project.FieldCheckScanningMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.BatchesTable,
			Columns: []string{project.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.BatchesTable,
			Columns: []string{project.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.BatchesTable,
			Columns: []string{project.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
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
			Table:   project.DocumentsTable,
			Columns: []string{project.DocumentsColumn},
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
			Table:   project.DocumentsTable,
			Columns: []string{project.DocumentsColumn},
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
			Table:   project.DocumentsTable,
			Columns: []string{project.DocumentsColumn},
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
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *ProjectUpdateOne) SetTenantID(v uuid.UUID) *ProjectUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableTenantID(v *uuid.UUID) *ProjectUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFileNamingTemplate sets the "file_naming_template" field.
func (_u *ProjectUpdateOne) SetFileNamingTemplate(v string) *ProjectUpdateOne {
	_u.mutation.SetFileNamingTemplate(v)
	return _u
}

// SetNillableFileNamingTemplate sets the "file_naming_template" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableFileNamingTemplate(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetFileNamingTemplate(*v)
	}
	return _u
}

// ClearFileNamingTemplate clears the value of the "file_naming_template" field.
func (_u *ProjectUpdateOne) ClearFileNamingTemplate() *ProjectUpdateOne {
	_u.mutation.ClearFileNamingTemplate()
	return _u
}

// SetExtractionFields sets the "extraction_fields" field.
func (_u *ProjectUpdateOne) SetExtractionFields(v json.RawMessage) *ProjectUpdateOne {
	_u.mutation.SetExtractionFields(v)
	return _u
}

// AppendExtractionFields appends value to the "extraction_fields" field.
func (_u *ProjectUpdateOne) AppendExtractionFields(v json.RawMessage) *ProjectUpdateOne {
	_u.mutation.AppendExtractionFields(v)
	return _u
}

// ClearExtractionFields clears the value of the "extraction_fields" field.
func (_u *ProjectUpdateOne) ClearExtractionFields() *ProjectUpdateOne {
	_u.mutation.ClearExtractionFields()
	return _u
}

// SetTableExtractionFields sets the "table_extraction_fields" field.
func (_u *ProjectUpdateOne) SetTableExtractionFields(v json.RawMessage) *ProjectUpdateOne {
	_u.mutation.SetTableExtractionFields(v)
	return _u
}

// AppendTableExtractionFields appends value to the "table_extraction_fields" field.
func (_u *ProjectUpdateOne) AppendTableExtractionFields(v json.RawMessage) *ProjectUpdateOne {
	_u.mutation.AppendTableExtractionFields(v)
	return _u
}

// ClearTableExtractionFields clears the value of the "table_extraction_fields" field.
func (_u *ProjectUpdateOne) ClearTableExtractionFields() *ProjectUpdateOne {
	_u.mutation.ClearTableExtractionFields()
	return _u
}

// SetCheckScanningMode sets the "check_scanning_mode" field.
func (_u *ProjectUpdateOne) SetCheckScanningMode(v bool) *ProjectUpdateOne {
	_u.mutation.SetCheckScanningMode(v)
	return _u
}

// SetNillableCheckScanningMode sets the "check_scanning_mode" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCheckScanningMode(v *bool) *ProjectUpdateOne {
	if v != nil {
		_u.SetCheckScanningMode(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProjectUpdateOne) SetCreatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCreatedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_u *ProjectUpdateOne) AddBatchIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_u *ProjectUpdateOne) AddBatches(v ...*Batch) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ProjectUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ProjectUpdateOne) AddDocuments(v ...*Document) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearBatches clears all "batches" edges to the Batch entity.
func (_u *ProjectUpdateOne) ClearBatches() *ProjectUpdateOne {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to Batch entities by IDs.
func (_u *ProjectUpdateOne) RemoveBatchIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to Batch entities.
func (_u *ProjectUpdateOne) RemoveBatches(v ...*Batch) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ProjectUpdateOne) ClearDocuments() *ProjectUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ProjectUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *ProjectUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ProjectUpdateOne) RemoveDocuments(v ...*Document) *ProjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
		_spec.SetField(project.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileNamingTemplate(); ok {
		_spec.SetField(project.FieldFileNamingTemplate, field.TypeString, value)
	}
	if _u.mutation.FileNamingTemplateCleared() {
		_spec.ClearField(project.FieldFileNamingTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionFields(); ok {
		_spec.SetField(project.FieldExtractionFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldExtractionFields, value)
		})
	}
	if _u.mutation.ExtractionFieldsCleared() {
		_spec.ClearField(project.FieldExtractionFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.TableExtractionFields(); ok {
		_spec.SetField(project.FieldTableExtractionFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableExtractionFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldTableExtractionFields, value)
		})
	}
	if _u.mutation.TableExtractionFieldsCleared() {
		_spec.ClearField(project.FieldTableExtractionFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.CheckScanningMode(); ok {
		_spec.SetField(project.FieldCheckScanningMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.BatchesTable,
			Columns: []string{project.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.BatchesTable,
			Columns: []string{project.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.BatchesTable,
			Columns: []string{project.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
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
			Table:   project.DocumentsTable,
			Columns: []string{project.DocumentsColumn},
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
			Table:   project.DocumentsTable,
			Columns: []string{project.DocumentsColumn},
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
			Table:   project.DocumentsTable,
			Columns: []string{project.DocumentsColumn},
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
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
