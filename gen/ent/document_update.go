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
	"github.com/docflowhq/docflow/gen/ent/extractionjob"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/docflowhq/docflow/gen/ent/project"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *DocumentUpdate) SetProjectID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProjectID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *DocumentUpdate) SetBatchID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBatchID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DocumentUpdate) SetFileType(v string) *DocumentUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStorageRef sets the "storage_ref" field.
func (_u *DocumentUpdate) SetStorageRef(v string) *DocumentUpdate {
	_u.mutation.SetStorageRef(v)
	return _u
}

// SetNillableStorageRef sets the "storage_ref" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStorageRef(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStorageRef(*v)
	}
	return _u
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (_u *DocumentUpdate) ClearStorageRef() *DocumentUpdate {
	_u.mutation.ClearStorageRef()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdate) SetExtractedText(v string) *DocumentUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetExtractedMetadata sets the "extracted_metadata" field.
func (_u *DocumentUpdate) SetExtractedMetadata(v map[string]string) *DocumentUpdate {
	_u.mutation.SetExtractedMetadata(v)
	return _u
}

// ClearExtractedMetadata clears the value of the "extracted_metadata" field.
func (_u *DocumentUpdate) ClearExtractedMetadata() *DocumentUpdate {
	_u.mutation.ClearExtractedMetadata()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *DocumentUpdate) SetLineItems(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *DocumentUpdate) AppendLineItems(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *DocumentUpdate) ClearLineItems() *DocumentUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// SetWordBoxes sets the "word_boxes" field.
func (_u *DocumentUpdate) SetWordBoxes(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetWordBoxes(v)
	return _u
}

// AppendWordBoxes appends value to the "word_boxes" field.
func (_u *DocumentUpdate) AppendWordBoxes(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendWordBoxes(v)
	return _u
}

// ClearWordBoxes clears the value of the "word_boxes" field.
func (_u *DocumentUpdate) ClearWordBoxes() *DocumentUpdate {
	_u.mutation.ClearWordBoxes()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *DocumentUpdate) SetValidationStatus(v string) *DocumentUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableValidationStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentUpdate) SetConfidence(v float32) *DocumentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableConfidence(v *float32) *DocumentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentUpdate) AddConfidence(v float32) *DocumentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DocumentUpdate) ClearConfidence() *DocumentUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *DocumentUpdate) SetUploadedBy(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedBy(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *DocumentUpdate) SetProject(v *Project) *DocumentUpdate {
	return _u.SetProjectID(v.ID)
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *DocumentUpdate) SetBatch(v *Batch) *DocumentUpdate {
	return _u.SetBatchID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *DocumentUpdate) AddJobIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *DocumentUpdate) AddJobs(v ...*ExtractionJob) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *DocumentUpdate) ClearProject() *DocumentUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *DocumentUpdate) ClearBatch() *DocumentUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *DocumentUpdate) ClearJobs() *DocumentUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *DocumentUpdate) RemoveJobIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *DocumentUpdate) RemoveJobs(v ...*ExtractionJob) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := document.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "Document.validation_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.project"`)
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.batch"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageRef(); ok {
		_spec.SetField(document.FieldStorageRef, field.TypeString, value)
	}
	if _u.mutation.StorageRefCleared() {
		_spec.ClearField(document.FieldStorageRef, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedMetadata(); ok {
		_spec.SetField(document.FieldExtractedMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedMetadataCleared() {
		_spec.ClearField(document.FieldExtractedMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(document.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(document.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.WordBoxes(); ok {
		_spec.SetField(document.FieldWordBoxes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWordBoxes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldWordBoxes, value)
		})
	}
	if _u.mutation.WordBoxesCleared() {
		_spec.ClearField(document.FieldWordBoxes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(document.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(document.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(document.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(document.FieldUploadedBy, field.TypeUUID, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ProjectTable,
			Columns: []string{document.ProjectColumn},
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
			Table:   document.ProjectTable,
			Columns: []string{document.ProjectColumn},
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
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetProjectID sets the "project_id" field.
func (_u *DocumentUpdateOne) SetProjectID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProjectID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *DocumentUpdateOne) SetBatchID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBatchID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DocumentUpdateOne) SetFileType(v string) *DocumentUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStorageRef sets the "storage_ref" field.
func (_u *DocumentUpdateOne) SetStorageRef(v string) *DocumentUpdateOne {
	_u.mutation.SetStorageRef(v)
	return _u
}

// SetNillableStorageRef sets the "storage_ref" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStorageRef(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStorageRef(*v)
	}
	return _u
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (_u *DocumentUpdateOne) ClearStorageRef() *DocumentUpdateOne {
	_u.mutation.ClearStorageRef()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdateOne) SetExtractedText(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetExtractedMetadata sets the "extracted_metadata" field.
func (_u *DocumentUpdateOne) SetExtractedMetadata(v map[string]string) *DocumentUpdateOne {
	_u.mutation.SetExtractedMetadata(v)
	return _u
}

// ClearExtractedMetadata clears the value of the "extracted_metadata" field.
func (_u *DocumentUpdateOne) ClearExtractedMetadata() *DocumentUpdateOne {
	_u.mutation.ClearExtractedMetadata()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *DocumentUpdateOne) SetLineItems(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *DocumentUpdateOne) AppendLineItems(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *DocumentUpdateOne) ClearLineItems() *DocumentUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// SetWordBoxes sets the "word_boxes" field.
func (_u *DocumentUpdateOne) SetWordBoxes(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetWordBoxes(v)
	return _u
}

// AppendWordBoxes appends value to the "word_boxes" field.
func (_u *DocumentUpdateOne) AppendWordBoxes(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendWordBoxes(v)
	return _u
}

// ClearWordBoxes clears the value of the "word_boxes" field.
func (_u *DocumentUpdateOne) ClearWordBoxes() *DocumentUpdateOne {
	_u.mutation.ClearWordBoxes()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *DocumentUpdateOne) SetValidationStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableValidationStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentUpdateOne) SetConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableConfidence(v *float32) *DocumentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentUpdateOne) AddConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DocumentUpdateOne) ClearConfidence() *DocumentUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *DocumentUpdateOne) SetUploadedBy(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedBy(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *DocumentUpdateOne) SetProject(v *Project) *DocumentUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *DocumentUpdateOne) SetBatch(v *Batch) *DocumentUpdateOne {
	return _u.SetBatchID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *DocumentUpdateOne) AddJobIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *DocumentUpdateOne) AddJobs(v ...*ExtractionJob) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *DocumentUpdateOne) ClearProject() *DocumentUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *DocumentUpdateOne) ClearBatch() *DocumentUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *DocumentUpdateOne) ClearJobs() *DocumentUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *DocumentUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *DocumentUpdateOne) RemoveJobs(v ...*ExtractionJob) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := document.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "Document.validation_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.project"`)
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.batch"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageRef(); ok {
		_spec.SetField(document.FieldStorageRef, field.TypeString, value)
	}
	if _u.mutation.StorageRefCleared() {
		_spec.ClearField(document.FieldStorageRef, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedMetadata(); ok {
		_spec.SetField(document.FieldExtractedMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedMetadataCleared() {
		_spec.ClearField(document.FieldExtractedMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(document.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(document.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.WordBoxes(); ok {
		_spec.SetField(document.FieldWordBoxes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWordBoxes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldWordBoxes, value)
		})
	}
	if _u.mutation.WordBoxesCleared() {
		_spec.ClearField(document.FieldWordBoxes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(document.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(document.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(document.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(document.FieldUploadedBy, field.TypeUUID, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ProjectTable,
			Columns: []string{document.ProjectColumn},
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
			Table:   document.ProjectTable,
			Columns: []string{document.ProjectColumn},
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
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
