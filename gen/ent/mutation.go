// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/batch"
	"github.com/docflowhq/docflow/gen/ent/document"
	"github.com/docflowhq/docflow/gen/ent/extractionjob"
	"github.com/docflowhq/docflow/gen/ent/license"
	"github.com/docflowhq/docflow/gen/ent/licenseusage"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/docflowhq/docflow/gen/ent/project"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatch         = "Batch"
	TypeDocument      = "Document"
	TypeExtractionJob = "ExtractionJob"
	TypeLicense       = "License"
	TypeLicenseUsage  = "LicenseUsage"
	TypeProject       = "Project"
)

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	total_documents        *int
	addtotal_documents     *int
	processed_documents    *int
	addprocessed_documents *int
	validated_documents    *int
	addvalidated_documents *int
	error_count            *int
	adderror_count         *int
	status                 *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	project                *uuid.UUID
	clearedproject         bool
	documents              map[uuid.UUID]struct{}
	removeddocuments       map[uuid.UUID]struct{}
	cleareddocuments       bool
	done                   bool
	oldValue               func(context.Context) (*Batch, error)
	predicates             []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id uuid.UUID) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *BatchMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *BatchMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *BatchMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *BatchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BatchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BatchMutation) ResetName() {
	m.name = nil
}

// SetTotalDocuments sets the "total_documents" field.
func (m *BatchMutation) SetTotalDocuments(i int) {
	m.total_documents = &i
	m.addtotal_documents = nil
}

// TotalDocuments returns the value of the "total_documents" field in the mutation.
func (m *BatchMutation) TotalDocuments() (r int, exists bool) {
	v := m.total_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDocuments returns the old "total_documents" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalDocuments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDocuments: %w", err)
	}
	return oldValue.TotalDocuments, nil
}

// AddTotalDocuments adds i to the "total_documents" field.
func (m *BatchMutation) AddTotalDocuments(i int) {
	if m.addtotal_documents != nil {
		*m.addtotal_documents += i
	} else {
		m.addtotal_documents = &i
	}
}

// AddedTotalDocuments returns the value that was added to the "total_documents" field in this mutation.
func (m *BatchMutation) AddedTotalDocuments() (r int, exists bool) {
	v := m.addtotal_documents
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalDocuments resets all changes to the "total_documents" field.
func (m *BatchMutation) ResetTotalDocuments() {
	m.total_documents = nil
	m.addtotal_documents = nil
}

// SetProcessedDocuments sets the "processed_documents" field.
func (m *BatchMutation) SetProcessedDocuments(i int) {
	m.processed_documents = &i
	m.addprocessed_documents = nil
}

// ProcessedDocuments returns the value of the "processed_documents" field in the mutation.
func (m *BatchMutation) ProcessedDocuments() (r int, exists bool) {
	v := m.processed_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedDocuments returns the old "processed_documents" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldProcessedDocuments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedDocuments: %w", err)
	}
	return oldValue.ProcessedDocuments, nil
}

// AddProcessedDocuments adds i to the "processed_documents" field.
func (m *BatchMutation) AddProcessedDocuments(i int) {
	if m.addprocessed_documents != nil {
		*m.addprocessed_documents += i
	} else {
		m.addprocessed_documents = &i
	}
}

// AddedProcessedDocuments returns the value that was added to the "processed_documents" field in this mutation.
func (m *BatchMutation) AddedProcessedDocuments() (r int, exists bool) {
	v := m.addprocessed_documents
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedDocuments resets all changes to the "processed_documents" field.
func (m *BatchMutation) ResetProcessedDocuments() {
	m.processed_documents = nil
	m.addprocessed_documents = nil
}

// SetValidatedDocuments sets the "validated_documents" field.
func (m *BatchMutation) SetValidatedDocuments(i int) {
	m.validated_documents = &i
	m.addvalidated_documents = nil
}

// ValidatedDocuments returns the value of the "validated_documents" field in the mutation.
func (m *BatchMutation) ValidatedDocuments() (r int, exists bool) {
	v := m.validated_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedDocuments returns the old "validated_documents" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldValidatedDocuments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedDocuments: %w", err)
	}
	return oldValue.ValidatedDocuments, nil
}

// AddValidatedDocuments adds i to the "validated_documents" field.
func (m *BatchMutation) AddValidatedDocuments(i int) {
	if m.addvalidated_documents != nil {
		*m.addvalidated_documents += i
	} else {
		m.addvalidated_documents = &i
	}
}

// AddedValidatedDocuments returns the value that was added to the "validated_documents" field in this mutation.
func (m *BatchMutation) AddedValidatedDocuments() (r int, exists bool) {
	v := m.addvalidated_documents
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidatedDocuments resets all changes to the "validated_documents" field.
func (m *BatchMutation) ResetValidatedDocuments() {
	m.validated_documents = nil
	m.addvalidated_documents = nil
}

// SetErrorCount sets the "error_count" field.
func (m *BatchMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *BatchMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *BatchMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *BatchMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *BatchMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetStatus sets the "status" field.
func (m *BatchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *BatchMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[batch.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *BatchMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *BatchMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *BatchMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *BatchMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *BatchMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *BatchMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *BatchMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *BatchMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *BatchMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *BatchMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, batch.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, batch.FieldName)
	}
	if m.total_documents != nil {
		fields = append(fields, batch.FieldTotalDocuments)
	}
	if m.processed_documents != nil {
		fields = append(fields, batch.FieldProcessedDocuments)
	}
	if m.validated_documents != nil {
		fields = append(fields, batch.FieldValidatedDocuments)
	}
	if m.error_count != nil {
		fields = append(fields, batch.FieldErrorCount)
	}
	if m.status != nil {
		fields = append(fields, batch.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, batch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, batch.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldProjectID:
		return m.ProjectID()
	case batch.FieldName:
		return m.Name()
	case batch.FieldTotalDocuments:
		return m.TotalDocuments()
	case batch.FieldProcessedDocuments:
		return m.ProcessedDocuments()
	case batch.FieldValidatedDocuments:
		return m.ValidatedDocuments()
	case batch.FieldErrorCount:
		return m.ErrorCount()
	case batch.FieldStatus:
		return m.Status()
	case batch.FieldCreatedAt:
		return m.CreatedAt()
	case batch.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldProjectID:
		return m.OldProjectID(ctx)
	case batch.FieldName:
		return m.OldName(ctx)
	case batch.FieldTotalDocuments:
		return m.OldTotalDocuments(ctx)
	case batch.FieldProcessedDocuments:
		return m.OldProcessedDocuments(ctx)
	case batch.FieldValidatedDocuments:
		return m.OldValidatedDocuments(ctx)
	case batch.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case batch.FieldStatus:
		return m.OldStatus(ctx)
	case batch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case batch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case batch.FieldTotalDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDocuments(v)
		return nil
	case batch.FieldProcessedDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedDocuments(v)
		return nil
	case batch.FieldValidatedDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedDocuments(v)
		return nil
	case batch.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case batch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_documents != nil {
		fields = append(fields, batch.FieldTotalDocuments)
	}
	if m.addprocessed_documents != nil {
		fields = append(fields, batch.FieldProcessedDocuments)
	}
	if m.addvalidated_documents != nil {
		fields = append(fields, batch.FieldValidatedDocuments)
	}
	if m.adderror_count != nil {
		fields = append(fields, batch.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldTotalDocuments:
		return m.AddedTotalDocuments()
	case batch.FieldProcessedDocuments:
		return m.AddedProcessedDocuments()
	case batch.FieldValidatedDocuments:
		return m.AddedValidatedDocuments()
	case batch.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldTotalDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDocuments(v)
		return nil
	case batch.FieldProcessedDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedDocuments(v)
		return nil
	case batch.FieldValidatedDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidatedDocuments(v)
		return nil
	case batch.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldProjectID:
		m.ResetProjectID()
		return nil
	case batch.FieldName:
		m.ResetName()
		return nil
	case batch.FieldTotalDocuments:
		m.ResetTotalDocuments()
		return nil
	case batch.FieldProcessedDocuments:
		m.ResetProcessedDocuments()
		return nil
	case batch.FieldValidatedDocuments:
		m.ResetValidatedDocuments()
		return nil
	case batch.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case batch.FieldStatus:
		m.ResetStatus()
		return nil
	case batch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, batch.EdgeProject)
	}
	if m.documents != nil {
		edges = append(edges, batch.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case batch.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, batch.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, batch.EdgeProject)
	}
	if m.cleareddocuments {
		edges = append(edges, batch.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	switch name {
	case batch.EdgeProject:
		return m.clearedproject
	case batch.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	switch name {
	case batch.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	switch name {
	case batch.EdgeProject:
		m.ResetProject()
		return nil
	case batch.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Batch edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	filename           *string
	file_type          *string
	storage_ref        *string
	extracted_text     *string
	extracted_metadata *map[string]string
	line_items         *json.RawMessage
	appendline_items   json.RawMessage
	word_boxes         *json.RawMessage
	appendword_boxes   json.RawMessage
	validation_status  *string
	confidence         *float32
	addconfidence      *float32
	created_at         *time.Time
	uploaded_by        *uuid.UUID
	clearedFields      map[string]struct{}
	project            *uuid.UUID
	clearedproject     bool
	batch              *uuid.UUID
	clearedbatch       bool
	jobs               map[uuid.UUID]struct{}
	removedjobs        map[uuid.UUID]struct{}
	clearedjobs        bool
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *DocumentMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *DocumentMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *DocumentMutation) ResetProjectID() {
	m.project = nil
}

// SetBatchID sets the "batch_id" field.
func (m *DocumentMutation) SetBatchID(u uuid.UUID) {
	m.batch = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *DocumentMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBatchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *DocumentMutation) ResetBatchID() {
	m.batch = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileType sets the "file_type" field.
func (m *DocumentMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *DocumentMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *DocumentMutation) ResetFileType() {
	m.file_type = nil
}

// SetStorageRef sets the "storage_ref" field.
func (m *DocumentMutation) SetStorageRef(s string) {
	m.storage_ref = &s
}

// StorageRef returns the value of the "storage_ref" field in the mutation.
func (m *DocumentMutation) StorageRef() (r string, exists bool) {
	v := m.storage_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageRef returns the old "storage_ref" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStorageRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageRef: %w", err)
	}
	return oldValue.StorageRef, nil
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (m *DocumentMutation) ClearStorageRef() {
	m.storage_ref = nil
	m.clearedFields[document.FieldStorageRef] = struct{}{}
}

// StorageRefCleared returns if the "storage_ref" field was cleared in this mutation.
func (m *DocumentMutation) StorageRefCleared() bool {
	_, ok := m.clearedFields[document.FieldStorageRef]
	return ok
}

// ResetStorageRef resets all changes to the "storage_ref" field.
func (m *DocumentMutation) ResetStorageRef() {
	m.storage_ref = nil
	delete(m.clearedFields, document.FieldStorageRef)
}

// SetExtractedText sets the "extracted_text" field.
func (m *DocumentMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *DocumentMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *DocumentMutation) ResetExtractedText() {
	m.extracted_text = nil
}

// SetExtractedMetadata sets the "extracted_metadata" field.
func (m *DocumentMutation) SetExtractedMetadata(value map[string]string) {
	m.extracted_metadata = &value
}

// ExtractedMetadata returns the value of the "extracted_metadata" field in the mutation.
func (m *DocumentMutation) ExtractedMetadata() (r map[string]string, exists bool) {
	v := m.extracted_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedMetadata returns the old "extracted_metadata" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedMetadata: %w", err)
	}
	return oldValue.ExtractedMetadata, nil
}

// ClearExtractedMetadata clears the value of the "extracted_metadata" field.
func (m *DocumentMutation) ClearExtractedMetadata() {
	m.extracted_metadata = nil
	m.clearedFields[document.FieldExtractedMetadata] = struct{}{}
}

// ExtractedMetadataCleared returns if the "extracted_metadata" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedMetadataCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedMetadata]
	return ok
}

// ResetExtractedMetadata resets all changes to the "extracted_metadata" field.
func (m *DocumentMutation) ResetExtractedMetadata() {
	m.extracted_metadata = nil
	delete(m.clearedFields, document.FieldExtractedMetadata)
}

// SetLineItems sets the "line_items" field.
func (m *DocumentMutation) SetLineItems(jm json.RawMessage) {
	m.line_items = &jm
	m.appendline_items = nil
}

// LineItems returns the value of the "line_items" field in the mutation.
func (m *DocumentMutation) LineItems() (r json.RawMessage, exists bool) {
	v := m.line_items
	if v == nil {
		return
	}
	return *v, true
}

// OldLineItems returns the old "line_items" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLineItems(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineItems: %w", err)
	}
	return oldValue.LineItems, nil
}

// AppendLineItems adds jm to the "line_items" field.
func (m *DocumentMutation) AppendLineItems(jm json.RawMessage) {
	m.appendline_items = append(m.appendline_items, jm...)
}

// AppendedLineItems returns the list of values that were appended to the "line_items" field in this mutation.
func (m *DocumentMutation) AppendedLineItems() (json.RawMessage, bool) {
	if len(m.appendline_items) == 0 {
		return nil, false
	}
	return m.appendline_items, true
}

// ClearLineItems clears the value of the "line_items" field.
func (m *DocumentMutation) ClearLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	m.clearedFields[document.FieldLineItems] = struct{}{}
}

// LineItemsCleared returns if the "line_items" field was cleared in this mutation.
func (m *DocumentMutation) LineItemsCleared() bool {
	_, ok := m.clearedFields[document.FieldLineItems]
	return ok
}

// ResetLineItems resets all changes to the "line_items" field.
func (m *DocumentMutation) ResetLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	delete(m.clearedFields, document.FieldLineItems)
}

// SetWordBoxes sets the "word_boxes" field.
func (m *DocumentMutation) SetWordBoxes(jm json.RawMessage) {
	m.word_boxes = &jm
	m.appendword_boxes = nil
}

// WordBoxes returns the value of the "word_boxes" field in the mutation.
func (m *DocumentMutation) WordBoxes() (r json.RawMessage, exists bool) {
	v := m.word_boxes
	if v == nil {
		return
	}
	return *v, true
}

// OldWordBoxes returns the old "word_boxes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldWordBoxes(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordBoxes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordBoxes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordBoxes: %w", err)
	}
	return oldValue.WordBoxes, nil
}

// AppendWordBoxes adds jm to the "word_boxes" field.
func (m *DocumentMutation) AppendWordBoxes(jm json.RawMessage) {
	m.appendword_boxes = append(m.appendword_boxes, jm...)
}

// AppendedWordBoxes returns the list of values that were appended to the "word_boxes" field in this mutation.
func (m *DocumentMutation) AppendedWordBoxes() (json.RawMessage, bool) {
	if len(m.appendword_boxes) == 0 {
		return nil, false
	}
	return m.appendword_boxes, true
}

// ClearWordBoxes clears the value of the "word_boxes" field.
func (m *DocumentMutation) ClearWordBoxes() {
	m.word_boxes = nil
	m.appendword_boxes = nil
	m.clearedFields[document.FieldWordBoxes] = struct{}{}
}

// WordBoxesCleared returns if the "word_boxes" field was cleared in this mutation.
func (m *DocumentMutation) WordBoxesCleared() bool {
	_, ok := m.clearedFields[document.FieldWordBoxes]
	return ok
}

// ResetWordBoxes resets all changes to the "word_boxes" field.
func (m *DocumentMutation) ResetWordBoxes() {
	m.word_boxes = nil
	m.appendword_boxes = nil
	delete(m.clearedFields, document.FieldWordBoxes)
}

// SetValidationStatus sets the "validation_status" field.
func (m *DocumentMutation) SetValidationStatus(s string) {
	m.validation_status = &s
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *DocumentMutation) ValidationStatus() (r string, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldValidationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *DocumentMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetConfidence sets the "confidence" field.
func (m *DocumentMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DocumentMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DocumentMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DocumentMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *DocumentMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[document.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *DocumentMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DocumentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, document.FieldConfidence)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *DocumentMutation) SetUploadedBy(u uuid.UUID) {
	m.uploaded_by = &u
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *DocumentMutation) UploadedBy() (r uuid.UUID, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *DocumentMutation) ResetUploadedBy() {
	m.uploaded_by = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *DocumentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[document.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *DocumentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *DocumentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (m *DocumentMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[document.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the Batch entity was cleared.
func (m *DocumentMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) BatchIDs() (ids []uuid.UUID) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *DocumentMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by ids.
func (m *DocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractionJob entity.
func (m *DocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractionJob entity was cleared.
func (m *DocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractionJob entity by IDs.
func (m *DocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractionJob entity.
func (m *DocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.project != nil {
		fields = append(fields, document.FieldProjectID)
	}
	if m.batch != nil {
		fields = append(fields, document.FieldBatchID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_type != nil {
		fields = append(fields, document.FieldFileType)
	}
	if m.storage_ref != nil {
		fields = append(fields, document.FieldStorageRef)
	}
	if m.extracted_text != nil {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.extracted_metadata != nil {
		fields = append(fields, document.FieldExtractedMetadata)
	}
	if m.line_items != nil {
		fields = append(fields, document.FieldLineItems)
	}
	if m.word_boxes != nil {
		fields = append(fields, document.FieldWordBoxes)
	}
	if m.validation_status != nil {
		fields = append(fields, document.FieldValidationStatus)
	}
	if m.confidence != nil {
		fields = append(fields, document.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.uploaded_by != nil {
		fields = append(fields, document.FieldUploadedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldProjectID:
		return m.ProjectID()
	case document.FieldBatchID:
		return m.BatchID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileType:
		return m.FileType()
	case document.FieldStorageRef:
		return m.StorageRef()
	case document.FieldExtractedText:
		return m.ExtractedText()
	case document.FieldExtractedMetadata:
		return m.ExtractedMetadata()
	case document.FieldLineItems:
		return m.LineItems()
	case document.FieldWordBoxes:
		return m.WordBoxes()
	case document.FieldValidationStatus:
		return m.ValidationStatus()
	case document.FieldConfidence:
		return m.Confidence()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUploadedBy:
		return m.UploadedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldProjectID:
		return m.OldProjectID(ctx)
	case document.FieldBatchID:
		return m.OldBatchID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileType:
		return m.OldFileType(ctx)
	case document.FieldStorageRef:
		return m.OldStorageRef(ctx)
	case document.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case document.FieldExtractedMetadata:
		return m.OldExtractedMetadata(ctx)
	case document.FieldLineItems:
		return m.OldLineItems(ctx)
	case document.FieldWordBoxes:
		return m.OldWordBoxes(ctx)
	case document.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case document.FieldConfidence:
		return m.OldConfidence(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case document.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case document.FieldStorageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageRef(v)
		return nil
	case document.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case document.FieldExtractedMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedMetadata(v)
		return nil
	case document.FieldLineItems:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineItems(v)
		return nil
	case document.FieldWordBoxes:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordBoxes(v)
		return nil
	case document.FieldValidationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case document.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUploadedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, document.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldStorageRef) {
		fields = append(fields, document.FieldStorageRef)
	}
	if m.FieldCleared(document.FieldExtractedMetadata) {
		fields = append(fields, document.FieldExtractedMetadata)
	}
	if m.FieldCleared(document.FieldLineItems) {
		fields = append(fields, document.FieldLineItems)
	}
	if m.FieldCleared(document.FieldWordBoxes) {
		fields = append(fields, document.FieldWordBoxes)
	}
	if m.FieldCleared(document.FieldConfidence) {
		fields = append(fields, document.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldStorageRef:
		m.ClearStorageRef()
		return nil
	case document.FieldExtractedMetadata:
		m.ClearExtractedMetadata()
		return nil
	case document.FieldLineItems:
		m.ClearLineItems()
		return nil
	case document.FieldWordBoxes:
		m.ClearWordBoxes()
		return nil
	case document.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldProjectID:
		m.ResetProjectID()
		return nil
	case document.FieldBatchID:
		m.ResetBatchID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileType:
		m.ResetFileType()
		return nil
	case document.FieldStorageRef:
		m.ResetStorageRef()
		return nil
	case document.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case document.FieldExtractedMetadata:
		m.ResetExtractedMetadata()
		return nil
	case document.FieldLineItems:
		m.ResetLineItems()
		return nil
	case document.FieldWordBoxes:
		m.ResetWordBoxes()
		return nil
	case document.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case document.FieldConfidence:
		m.ResetConfidence()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, document.EdgeProject)
	}
	if m.batch != nil {
		edges = append(edges, document.EdgeBatch)
	}
	if m.jobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, document.EdgeProject)
	}
	if m.clearedbatch {
		edges = append(edges, document.EdgeBatch)
	}
	if m.clearedjobs {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeProject:
		return m.clearedproject
	case document.EdgeBatch:
		return m.clearedbatch
	case document.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeProject:
		m.ClearProject()
		return nil
	case document.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeProject:
		m.ResetProject()
		return nil
	case document.EdgeBatch:
		m.ResetBatch()
		return nil
	case document.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	job_type        *string
	payload         *json.RawMessage
	appendpayload   json.RawMessage
	priority        *int
	addpriority     *int
	submitted_by    *uuid.UUID
	tenant_id       *uuid.UUID
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*ExtractionJob, error)
	predicates      []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id uuid.UUID) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionJobMutation) ResetDocumentID() {
	m.document = nil
}

// SetJobType sets the "job_type" field.
func (m *ExtractionJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *ExtractionJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *ExtractionJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetPayload sets the "payload" field.
func (m *ExtractionJobMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ExtractionJobMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *ExtractionJobMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *ExtractionJobMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *ExtractionJobMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetPriority sets the "priority" field.
func (m *ExtractionJobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ExtractionJobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ExtractionJobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ExtractionJobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ExtractionJobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetSubmittedBy sets the "submitted_by" field.
func (m *ExtractionJobMutation) SetSubmittedBy(u uuid.UUID) {
	m.submitted_by = &u
}

// SubmittedBy returns the value of the "submitted_by" field in the mutation.
func (m *ExtractionJobMutation) SubmittedBy() (r uuid.UUID, exists bool) {
	v := m.submitted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedBy returns the old "submitted_by" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldSubmittedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedBy: %w", err)
	}
	return oldValue.SubmittedBy, nil
}

// ResetSubmittedBy resets all changes to the "submitted_by" field.
func (m *ExtractionJobMutation) ResetSubmittedBy() {
	m.submitted_by = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *ExtractionJobMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ExtractionJobMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ExtractionJobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionjob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionJobMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.document != nil {
		fields = append(fields, extractionjob.FieldDocumentID)
	}
	if m.job_type != nil {
		fields = append(fields, extractionjob.FieldJobType)
	}
	if m.payload != nil {
		fields = append(fields, extractionjob.FieldPayload)
	}
	if m.priority != nil {
		fields = append(fields, extractionjob.FieldPriority)
	}
	if m.submitted_by != nil {
		fields = append(fields, extractionjob.FieldSubmittedBy)
	}
	if m.tenant_id != nil {
		fields = append(fields, extractionjob.FieldTenantID)
	}
	if m.created_at != nil {
		fields = append(fields, extractionjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldDocumentID:
		return m.DocumentID()
	case extractionjob.FieldJobType:
		return m.JobType()
	case extractionjob.FieldPayload:
		return m.Payload()
	case extractionjob.FieldPriority:
		return m.Priority()
	case extractionjob.FieldSubmittedBy:
		return m.SubmittedBy()
	case extractionjob.FieldTenantID:
		return m.TenantID()
	case extractionjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionjob.FieldJobType:
		return m.OldJobType(ctx)
	case extractionjob.FieldPayload:
		return m.OldPayload(ctx)
	case extractionjob.FieldPriority:
		return m.OldPriority(ctx)
	case extractionjob.FieldSubmittedBy:
		return m.OldSubmittedBy(ctx)
	case extractionjob.FieldTenantID:
		return m.OldTenantID(ctx)
	case extractionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionjob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case extractionjob.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case extractionjob.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case extractionjob.FieldSubmittedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedBy(v)
		return nil
	case extractionjob.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case extractionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, extractionjob.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionjob.FieldJobType:
		m.ResetJobType()
		return nil
	case extractionjob.FieldPayload:
		m.ResetPayload()
		return nil
	case extractionjob.FieldPriority:
		m.ResetPriority()
		return nil
	case extractionjob.FieldSubmittedBy:
		m.ResetSubmittedBy()
		return nil
	case extractionjob.FieldTenantID:
		m.ResetTenantID()
		return nil
	case extractionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extractionjob.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extractionjob.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	case extractionjob.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// LicenseMutation represents an operation that mutates the License nodes in the graph.
type LicenseMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	tenant_id              *uuid.UUID
	remaining_documents    *int
	addremaining_documents *int
	total_documents        *int
	addtotal_documents     *int
	expires_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	usages                 map[uuid.UUID]struct{}
	removedusages          map[uuid.UUID]struct{}
	clearedusages          bool
	done                   bool
	oldValue               func(context.Context) (*License, error)
	predicates             []predicate.License
}

var _ ent.Mutation = (*LicenseMutation)(nil)

// licenseOption allows management of the mutation configuration using functional options.
type licenseOption func(*LicenseMutation)

// newLicenseMutation creates new mutation for the License entity.
func newLicenseMutation(c config, op Op, opts ...licenseOption) *LicenseMutation {
	m := &LicenseMutation{
		config:        c,
		op:            op,
		typ:           TypeLicense,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLicenseID sets the ID field of the mutation.
func withLicenseID(id uuid.UUID) licenseOption {
	return func(m *LicenseMutation) {
		var (
			err   error
			once  sync.Once
			value *License
		)
		m.oldValue = func(ctx context.Context) (*License, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().License.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLicense sets the old License of the mutation.
func withLicense(node *License) licenseOption {
	return func(m *LicenseMutation) {
		m.oldValue = func(context.Context) (*License, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LicenseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LicenseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of License entities.
func (m *LicenseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LicenseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LicenseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().License.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *LicenseMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *LicenseMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the License entity.
// If the License object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *LicenseMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRemainingDocuments sets the "remaining_documents" field.
func (m *LicenseMutation) SetRemainingDocuments(i int) {
	m.remaining_documents = &i
	m.addremaining_documents = nil
}

// RemainingDocuments returns the value of the "remaining_documents" field in the mutation.
func (m *LicenseMutation) RemainingDocuments() (r int, exists bool) {
	v := m.remaining_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldRemainingDocuments returns the old "remaining_documents" field's value of the License entity.
// If the License object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseMutation) OldRemainingDocuments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemainingDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemainingDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemainingDocuments: %w", err)
	}
	return oldValue.RemainingDocuments, nil
}

// AddRemainingDocuments adds i to the "remaining_documents" field.
func (m *LicenseMutation) AddRemainingDocuments(i int) {
	if m.addremaining_documents != nil {
		*m.addremaining_documents += i
	} else {
		m.addremaining_documents = &i
	}
}

// AddedRemainingDocuments returns the value that was added to the "remaining_documents" field in this mutation.
func (m *LicenseMutation) AddedRemainingDocuments() (r int, exists bool) {
	v := m.addremaining_documents
	if v == nil {
		return
	}
	return *v, true
}

// ResetRemainingDocuments resets all changes to the "remaining_documents" field.
func (m *LicenseMutation) ResetRemainingDocuments() {
	m.remaining_documents = nil
	m.addremaining_documents = nil
}

// SetTotalDocuments sets the "total_documents" field.
func (m *LicenseMutation) SetTotalDocuments(i int) {
	m.total_documents = &i
	m.addtotal_documents = nil
}

// TotalDocuments returns the value of the "total_documents" field in the mutation.
func (m *LicenseMutation) TotalDocuments() (r int, exists bool) {
	v := m.total_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDocuments returns the old "total_documents" field's value of the License entity.
// If the License object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseMutation) OldTotalDocuments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDocuments: %w", err)
	}
	return oldValue.TotalDocuments, nil
}

// AddTotalDocuments adds i to the "total_documents" field.
func (m *LicenseMutation) AddTotalDocuments(i int) {
	if m.addtotal_documents != nil {
		*m.addtotal_documents += i
	} else {
		m.addtotal_documents = &i
	}
}

// AddedTotalDocuments returns the value that was added to the "total_documents" field in this mutation.
func (m *LicenseMutation) AddedTotalDocuments() (r int, exists bool) {
	v := m.addtotal_documents
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalDocuments resets all changes to the "total_documents" field.
func (m *LicenseMutation) ResetTotalDocuments() {
	m.total_documents = nil
	m.addtotal_documents = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *LicenseMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *LicenseMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the License entity.
// If the License object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *LicenseMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LicenseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LicenseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the License entity.
// If the License object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LicenseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUsageIDs adds the "usages" edge to the LicenseUsage entity by ids.
func (m *LicenseMutation) AddUsageIDs(ids ...uuid.UUID) {
	if m.usages == nil {
		m.usages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.usages[ids[i]] = struct{}{}
	}
}

// ClearUsages clears the "usages" edge to the LicenseUsage entity.
func (m *LicenseMutation) ClearUsages() {
	m.clearedusages = true
}

// UsagesCleared reports if the "usages" edge to the LicenseUsage entity was cleared.
func (m *LicenseMutation) UsagesCleared() bool {
	return m.clearedusages
}

// RemoveUsageIDs removes the "usages" edge to the LicenseUsage entity by IDs.
func (m *LicenseMutation) RemoveUsageIDs(ids ...uuid.UUID) {
	if m.removedusages == nil {
		m.removedusages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.usages, ids[i])
		m.removedusages[ids[i]] = struct{}{}
	}
}

// RemovedUsages returns the removed IDs of the "usages" edge to the LicenseUsage entity.
func (m *LicenseMutation) RemovedUsagesIDs() (ids []uuid.UUID) {
	for id := range m.removedusages {
		ids = append(ids, id)
	}
	return
}

// UsagesIDs returns the "usages" edge IDs in the mutation.
func (m *LicenseMutation) UsagesIDs() (ids []uuid.UUID) {
	for id := range m.usages {
		ids = append(ids, id)
	}
	return
}

// ResetUsages resets all changes to the "usages" edge.
func (m *LicenseMutation) ResetUsages() {
	m.usages = nil
	m.clearedusages = false
	m.removedusages = nil
}

// Where appends a list predicates to the LicenseMutation builder.
func (m *LicenseMutation) Where(ps ...predicate.License) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LicenseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LicenseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.License, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LicenseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LicenseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (License).
func (m *LicenseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LicenseMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, license.FieldTenantID)
	}
	if m.remaining_documents != nil {
		fields = append(fields, license.FieldRemainingDocuments)
	}
	if m.total_documents != nil {
		fields = append(fields, license.FieldTotalDocuments)
	}
	if m.expires_at != nil {
		fields = append(fields, license.FieldExpiresAt)
	}
	if m.updated_at != nil {
		fields = append(fields, license.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LicenseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case license.FieldTenantID:
		return m.TenantID()
	case license.FieldRemainingDocuments:
		return m.RemainingDocuments()
	case license.FieldTotalDocuments:
		return m.TotalDocuments()
	case license.FieldExpiresAt:
		return m.ExpiresAt()
	case license.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LicenseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case license.FieldTenantID:
		return m.OldTenantID(ctx)
	case license.FieldRemainingDocuments:
		return m.OldRemainingDocuments(ctx)
	case license.FieldTotalDocuments:
		return m.OldTotalDocuments(ctx)
	case license.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case license.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown License field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LicenseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case license.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case license.FieldRemainingDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemainingDocuments(v)
		return nil
	case license.FieldTotalDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDocuments(v)
		return nil
	case license.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case license.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown License field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LicenseMutation) AddedFields() []string {
	var fields []string
	if m.addremaining_documents != nil {
		fields = append(fields, license.FieldRemainingDocuments)
	}
	if m.addtotal_documents != nil {
		fields = append(fields, license.FieldTotalDocuments)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LicenseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case license.FieldRemainingDocuments:
		return m.AddedRemainingDocuments()
	case license.FieldTotalDocuments:
		return m.AddedTotalDocuments()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LicenseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case license.FieldRemainingDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRemainingDocuments(v)
		return nil
	case license.FieldTotalDocuments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDocuments(v)
		return nil
	}
	return fmt.Errorf("unknown License numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LicenseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LicenseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LicenseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown License nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LicenseMutation) ResetField(name string) error {
	switch name {
	case license.FieldTenantID:
		m.ResetTenantID()
		return nil
	case license.FieldRemainingDocuments:
		m.ResetRemainingDocuments()
		return nil
	case license.FieldTotalDocuments:
		m.ResetTotalDocuments()
		return nil
	case license.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case license.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown License field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LicenseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.usages != nil {
		edges = append(edges, license.EdgeUsages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LicenseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case license.EdgeUsages:
		ids := make([]ent.Value, 0, len(m.usages))
		for id := range m.usages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LicenseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedusages != nil {
		edges = append(edges, license.EdgeUsages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LicenseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case license.EdgeUsages:
		ids := make([]ent.Value, 0, len(m.removedusages))
		for id := range m.removedusages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LicenseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedusages {
		edges = append(edges, license.EdgeUsages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LicenseMutation) EdgeCleared(name string) bool {
	switch name {
	case license.EdgeUsages:
		return m.clearedusages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LicenseMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown License unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LicenseMutation) ResetEdge(name string) error {
	switch name {
	case license.EdgeUsages:
		m.ResetUsages()
		return nil
	}
	return fmt.Errorf("unknown License edge %s", name)
}

// LicenseUsageMutation represents an operation that mutates the LicenseUsage nodes in the graph.
type LicenseUsageMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	document_id    *uuid.UUID
	units          *int
	addunits       *int
	consumed_at    *time.Time
	clearedFields  map[string]struct{}
	license        *uuid.UUID
	clearedlicense bool
	done           bool
	oldValue       func(context.Context) (*LicenseUsage, error)
	predicates     []predicate.LicenseUsage
}

var _ ent.Mutation = (*LicenseUsageMutation)(nil)

// licenseusageOption allows management of the mutation configuration using functional options.
type licenseusageOption func(*LicenseUsageMutation)

// newLicenseUsageMutation creates new mutation for the LicenseUsage entity.
func newLicenseUsageMutation(c config, op Op, opts ...licenseusageOption) *LicenseUsageMutation {
	m := &LicenseUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeLicenseUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLicenseUsageID sets the ID field of the mutation.
func withLicenseUsageID(id uuid.UUID) licenseusageOption {
	return func(m *LicenseUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *LicenseUsage
		)
		m.oldValue = func(ctx context.Context) (*LicenseUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LicenseUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLicenseUsage sets the old LicenseUsage of the mutation.
func withLicenseUsage(node *LicenseUsage) licenseusageOption {
	return func(m *LicenseUsageMutation) {
		m.oldValue = func(context.Context) (*LicenseUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LicenseUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LicenseUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LicenseUsage entities.
func (m *LicenseUsageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LicenseUsageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LicenseUsageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LicenseUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLicenseID sets the "license_id" field.
func (m *LicenseUsageMutation) SetLicenseID(u uuid.UUID) {
	m.license = &u
}

// LicenseID returns the value of the "license_id" field in the mutation.
func (m *LicenseUsageMutation) LicenseID() (r uuid.UUID, exists bool) {
	v := m.license
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseID returns the old "license_id" field's value of the LicenseUsage entity.
// If the LicenseUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseUsageMutation) OldLicenseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseID: %w", err)
	}
	return oldValue.LicenseID, nil
}

// ResetLicenseID resets all changes to the "license_id" field.
func (m *LicenseUsageMutation) ResetLicenseID() {
	m.license = nil
}

// SetDocumentID sets the "document_id" field.
func (m *LicenseUsageMutation) SetDocumentID(u uuid.UUID) {
	m.document_id = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *LicenseUsageMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the LicenseUsage entity.
// If the LicenseUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseUsageMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *LicenseUsageMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetUnits sets the "units" field.
func (m *LicenseUsageMutation) SetUnits(i int) {
	m.units = &i
	m.addunits = nil
}

// Units returns the value of the "units" field in the mutation.
func (m *LicenseUsageMutation) Units() (r int, exists bool) {
	v := m.units
	if v == nil {
		return
	}
	return *v, true
}

// OldUnits returns the old "units" field's value of the LicenseUsage entity.
// If the LicenseUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseUsageMutation) OldUnits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnits: %w", err)
	}
	return oldValue.Units, nil
}

// AddUnits adds i to the "units" field.
func (m *LicenseUsageMutation) AddUnits(i int) {
	if m.addunits != nil {
		*m.addunits += i
	} else {
		m.addunits = &i
	}
}

// AddedUnits returns the value that was added to the "units" field in this mutation.
func (m *LicenseUsageMutation) AddedUnits() (r int, exists bool) {
	v := m.addunits
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnits resets all changes to the "units" field.
func (m *LicenseUsageMutation) ResetUnits() {
	m.units = nil
	m.addunits = nil
}

// SetConsumedAt sets the "consumed_at" field.
func (m *LicenseUsageMutation) SetConsumedAt(t time.Time) {
	m.consumed_at = &t
}

// ConsumedAt returns the value of the "consumed_at" field in the mutation.
func (m *LicenseUsageMutation) ConsumedAt() (r time.Time, exists bool) {
	v := m.consumed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumedAt returns the old "consumed_at" field's value of the LicenseUsage entity.
// If the LicenseUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LicenseUsageMutation) OldConsumedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumedAt: %w", err)
	}
	return oldValue.ConsumedAt, nil
}

// ResetConsumedAt resets all changes to the "consumed_at" field.
func (m *LicenseUsageMutation) ResetConsumedAt() {
	m.consumed_at = nil
}

// ClearLicense clears the "license" edge to the License entity.
func (m *LicenseUsageMutation) ClearLicense() {
	m.clearedlicense = true
	m.clearedFields[licenseusage.FieldLicenseID] = struct{}{}
}

// LicenseCleared reports if the "license" edge to the License entity was cleared.
func (m *LicenseUsageMutation) LicenseCleared() bool {
	return m.clearedlicense
}

// LicenseIDs returns the "license" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LicenseID instead. It exists only for internal usage by the builders.
func (m *LicenseUsageMutation) LicenseIDs() (ids []uuid.UUID) {
	if id := m.license; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLicense resets all changes to the "license" edge.
func (m *LicenseUsageMutation) ResetLicense() {
	m.license = nil
	m.clearedlicense = false
}

// Where appends a list predicates to the LicenseUsageMutation builder.
func (m *LicenseUsageMutation) Where(ps ...predicate.LicenseUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LicenseUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LicenseUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LicenseUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LicenseUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LicenseUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LicenseUsage).
func (m *LicenseUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LicenseUsageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.license != nil {
		fields = append(fields, licenseusage.FieldLicenseID)
	}
	if m.document_id != nil {
		fields = append(fields, licenseusage.FieldDocumentID)
	}
	if m.units != nil {
		fields = append(fields, licenseusage.FieldUnits)
	}
	if m.consumed_at != nil {
		fields = append(fields, licenseusage.FieldConsumedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LicenseUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case licenseusage.FieldLicenseID:
		return m.LicenseID()
	case licenseusage.FieldDocumentID:
		return m.DocumentID()
	case licenseusage.FieldUnits:
		return m.Units()
	case licenseusage.FieldConsumedAt:
		return m.ConsumedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LicenseUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case licenseusage.FieldLicenseID:
		return m.OldLicenseID(ctx)
	case licenseusage.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case licenseusage.FieldUnits:
		return m.OldUnits(ctx)
	case licenseusage.FieldConsumedAt:
		return m.OldConsumedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LicenseUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LicenseUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case licenseusage.FieldLicenseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseID(v)
		return nil
	case licenseusage.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case licenseusage.FieldUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnits(v)
		return nil
	case licenseusage.FieldConsumedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LicenseUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LicenseUsageMutation) AddedFields() []string {
	var fields []string
	if m.addunits != nil {
		fields = append(fields, licenseusage.FieldUnits)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LicenseUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case licenseusage.FieldUnits:
		return m.AddedUnits()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LicenseUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case licenseusage.FieldUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnits(v)
		return nil
	}
	return fmt.Errorf("unknown LicenseUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LicenseUsageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LicenseUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LicenseUsageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LicenseUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LicenseUsageMutation) ResetField(name string) error {
	switch name {
	case licenseusage.FieldLicenseID:
		m.ResetLicenseID()
		return nil
	case licenseusage.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case licenseusage.FieldUnits:
		m.ResetUnits()
		return nil
	case licenseusage.FieldConsumedAt:
		m.ResetConsumedAt()
		return nil
	}
	return fmt.Errorf("unknown LicenseUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LicenseUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.license != nil {
		edges = append(edges, licenseusage.EdgeLicense)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LicenseUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case licenseusage.EdgeLicense:
		if id := m.license; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LicenseUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LicenseUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LicenseUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlicense {
		edges = append(edges, licenseusage.EdgeLicense)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LicenseUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case licenseusage.EdgeLicense:
		return m.clearedlicense
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LicenseUsageMutation) ClearEdge(name string) error {
	switch name {
	case licenseusage.EdgeLicense:
		m.ClearLicense()
		return nil
	}
	return fmt.Errorf("unknown LicenseUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LicenseUsageMutation) ResetEdge(name string) error {
	switch name {
	case licenseusage.EdgeLicense:
		m.ResetLicense()
		return nil
	}
	return fmt.Errorf("unknown LicenseUsage edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                            Op
	typ                           string
	id                            *uuid.UUID
	tenant_id                     *uuid.UUID
	name                          *string
	file_naming_template          *string
	extraction_fields             *json.RawMessage
	appendextraction_fields       json.RawMessage
	table_extraction_fields       *json.RawMessage
	appendtable_extraction_fields json.RawMessage
	check_scanning_mode           *bool
	created_at                    *time.Time
	updated_at                    *time.Time
	clearedFields                 map[string]struct{}
	batches                       map[uuid.UUID]struct{}
	removedbatches                map[uuid.UUID]struct{}
	clearedbatches                bool
	documents                     map[uuid.UUID]struct{}
	removeddocuments              map[uuid.UUID]struct{}
	cleareddocuments              bool
	done                          bool
	oldValue                      func(context.Context) (*Project, error)
	predicates                    []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id uuid.UUID) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProjectMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProjectMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProjectMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetFileNamingTemplate sets the "file_naming_template" field.
func (m *ProjectMutation) SetFileNamingTemplate(s string) {
	m.file_naming_template = &s
}

// FileNamingTemplate returns the value of the "file_naming_template" field in the mutation.
func (m *ProjectMutation) FileNamingTemplate() (r string, exists bool) {
	v := m.file_naming_template
	if v == nil {
		return
	}
	return *v, true
}

// OldFileNamingTemplate returns the old "file_naming_template" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldFileNamingTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileNamingTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileNamingTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileNamingTemplate: %w", err)
	}
	return oldValue.FileNamingTemplate, nil
}

// ClearFileNamingTemplate clears the value of the "file_naming_template" field.
func (m *ProjectMutation) ClearFileNamingTemplate() {
	m.file_naming_template = nil
	m.clearedFields[project.FieldFileNamingTemplate] = struct{}{}
}

// FileNamingTemplateCleared returns if the "file_naming_template" field was cleared in this mutation.
func (m *ProjectMutation) FileNamingTemplateCleared() bool {
	_, ok := m.clearedFields[project.FieldFileNamingTemplate]
	return ok
}

// ResetFileNamingTemplate resets all changes to the "file_naming_template" field.
func (m *ProjectMutation) ResetFileNamingTemplate() {
	m.file_naming_template = nil
	delete(m.clearedFields, project.FieldFileNamingTemplate)
}

// SetExtractionFields sets the "extraction_fields" field.
func (m *ProjectMutation) SetExtractionFields(jm json.RawMessage) {
	m.extraction_fields = &jm
	m.appendextraction_fields = nil
}

// ExtractionFields returns the value of the "extraction_fields" field in the mutation.
func (m *ProjectMutation) ExtractionFields() (r json.RawMessage, exists bool) {
	v := m.extraction_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionFields returns the old "extraction_fields" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldExtractionFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionFields: %w", err)
	}
	return oldValue.ExtractionFields, nil
}

// AppendExtractionFields adds jm to the "extraction_fields" field.
func (m *ProjectMutation) AppendExtractionFields(jm json.RawMessage) {
	m.appendextraction_fields = append(m.appendextraction_fields, jm...)
}

// AppendedExtractionFields returns the list of values that were appended to the "extraction_fields" field in this mutation.
func (m *ProjectMutation) AppendedExtractionFields() (json.RawMessage, bool) {
	if len(m.appendextraction_fields) == 0 {
		return nil, false
	}
	return m.appendextraction_fields, true
}

// ClearExtractionFields clears the value of the "extraction_fields" field.
func (m *ProjectMutation) ClearExtractionFields() {
	m.extraction_fields = nil
	m.appendextraction_fields = nil
	m.clearedFields[project.FieldExtractionFields] = struct{}{}
}

// ExtractionFieldsCleared returns if the "extraction_fields" field was cleared in this mutation.
func (m *ProjectMutation) ExtractionFieldsCleared() bool {
	_, ok := m.clearedFields[project.FieldExtractionFields]
	return ok
}

// ResetExtractionFields resets all changes to the "extraction_fields" field.
func (m *ProjectMutation) ResetExtractionFields() {
	m.extraction_fields = nil
	m.appendextraction_fields = nil
	delete(m.clearedFields, project.FieldExtractionFields)
}

// SetTableExtractionFields sets the "table_extraction_fields" field.
func (m *ProjectMutation) SetTableExtractionFields(jm json.RawMessage) {
	m.table_extraction_fields = &jm
	m.appendtable_extraction_fields = nil
}

// TableExtractionFields returns the value of the "table_extraction_fields" field in the mutation.
func (m *ProjectMutation) TableExtractionFields() (r json.RawMessage, exists bool) {
	v := m.table_extraction_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldTableExtractionFields returns the old "table_extraction_fields" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTableExtractionFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableExtractionFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableExtractionFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableExtractionFields: %w", err)
	}
	return oldValue.TableExtractionFields, nil
}

// AppendTableExtractionFields adds jm to the "table_extraction_fields" field.
func (m *ProjectMutation) AppendTableExtractionFields(jm json.RawMessage) {
	m.appendtable_extraction_fields = append(m.appendtable_extraction_fields, jm...)
}

// AppendedTableExtractionFields returns the list of values that were appended to the "table_extraction_fields" field in this mutation.
func (m *ProjectMutation) AppendedTableExtractionFields() (json.RawMessage, bool) {
	if len(m.appendtable_extraction_fields) == 0 {
		return nil, false
	}
	return m.appendtable_extraction_fields, true
}

// ClearTableExtractionFields clears the value of the "table_extraction_fields" field.
func (m *ProjectMutation) ClearTableExtractionFields() {
	m.table_extraction_fields = nil
	m.appendtable_extraction_fields = nil
	m.clearedFields[project.FieldTableExtractionFields] = struct{}{}
}

// TableExtractionFieldsCleared returns if the "table_extraction_fields" field was cleared in this mutation.
func (m *ProjectMutation) TableExtractionFieldsCleared() bool {
	_, ok := m.clearedFields[project.FieldTableExtractionFields]
	return ok
}

// ResetTableExtractionFields resets all changes to the "table_extraction_fields" field.
func (m *ProjectMutation) ResetTableExtractionFields() {
	m.table_extraction_fields = nil
	m.appendtable_extraction_fields = nil
	delete(m.clearedFields, project.FieldTableExtractionFields)
}

// SetCheckScanningMode sets the "check_scanning_mode" field.
func (m *ProjectMutation) SetCheckScanningMode(b bool) {
	m.check_scanning_mode = &b
}

// CheckScanningMode returns the value of the "check_scanning_mode" field in the mutation.
func (m *ProjectMutation) CheckScanningMode() (r bool, exists bool) {
	v := m.check_scanning_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckScanningMode returns the old "check_scanning_mode" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCheckScanningMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckScanningMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckScanningMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckScanningMode: %w", err)
	}
	return oldValue.CheckScanningMode, nil
}

// ResetCheckScanningMode resets all changes to the "check_scanning_mode" field.
func (m *ProjectMutation) ResetCheckScanningMode() {
	m.check_scanning_mode = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBatchIDs adds the "batches" edge to the Batch entity by ids.
func (m *ProjectMutation) AddBatchIDs(ids ...uuid.UUID) {
	if m.batches == nil {
		m.batches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.batches[ids[i]] = struct{}{}
	}
}

// ClearBatches clears the "batches" edge to the Batch entity.
func (m *ProjectMutation) ClearBatches() {
	m.clearedbatches = true
}

// BatchesCleared reports if the "batches" edge to the Batch entity was cleared.
func (m *ProjectMutation) BatchesCleared() bool {
	return m.clearedbatches
}

// RemoveBatchIDs removes the "batches" edge to the Batch entity by IDs.
func (m *ProjectMutation) RemoveBatchIDs(ids ...uuid.UUID) {
	if m.removedbatches == nil {
		m.removedbatches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.batches, ids[i])
		m.removedbatches[ids[i]] = struct{}{}
	}
}

// RemovedBatches returns the removed IDs of the "batches" edge to the Batch entity.
func (m *ProjectMutation) RemovedBatchesIDs() (ids []uuid.UUID) {
	for id := range m.removedbatches {
		ids = append(ids, id)
	}
	return
}

// BatchesIDs returns the "batches" edge IDs in the mutation.
func (m *ProjectMutation) BatchesIDs() (ids []uuid.UUID) {
	for id := range m.batches {
		ids = append(ids, id)
	}
	return
}

// ResetBatches resets all changes to the "batches" edge.
func (m *ProjectMutation) ResetBatches() {
	m.batches = nil
	m.clearedbatches = false
	m.removedbatches = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ProjectMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ProjectMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ProjectMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ProjectMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ProjectMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ProjectMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ProjectMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, project.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.file_naming_template != nil {
		fields = append(fields, project.FieldFileNamingTemplate)
	}
	if m.extraction_fields != nil {
		fields = append(fields, project.FieldExtractionFields)
	}
	if m.table_extraction_fields != nil {
		fields = append(fields, project.FieldTableExtractionFields)
	}
	if m.check_scanning_mode != nil {
		fields = append(fields, project.FieldCheckScanningMode)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldTenantID:
		return m.TenantID()
	case project.FieldName:
		return m.Name()
	case project.FieldFileNamingTemplate:
		return m.FileNamingTemplate()
	case project.FieldExtractionFields:
		return m.ExtractionFields()
	case project.FieldTableExtractionFields:
		return m.TableExtractionFields()
	case project.FieldCheckScanningMode:
		return m.CheckScanningMode()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldTenantID:
		return m.OldTenantID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldFileNamingTemplate:
		return m.OldFileNamingTemplate(ctx)
	case project.FieldExtractionFields:
		return m.OldExtractionFields(ctx)
	case project.FieldTableExtractionFields:
		return m.OldTableExtractionFields(ctx)
	case project.FieldCheckScanningMode:
		return m.OldCheckScanningMode(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldFileNamingTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileNamingTemplate(v)
		return nil
	case project.FieldExtractionFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionFields(v)
		return nil
	case project.FieldTableExtractionFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableExtractionFields(v)
		return nil
	case project.FieldCheckScanningMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckScanningMode(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldFileNamingTemplate) {
		fields = append(fields, project.FieldFileNamingTemplate)
	}
	if m.FieldCleared(project.FieldExtractionFields) {
		fields = append(fields, project.FieldExtractionFields)
	}
	if m.FieldCleared(project.FieldTableExtractionFields) {
		fields = append(fields, project.FieldTableExtractionFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldFileNamingTemplate:
		m.ClearFileNamingTemplate()
		return nil
	case project.FieldExtractionFields:
		m.ClearExtractionFields()
		return nil
	case project.FieldTableExtractionFields:
		m.ClearTableExtractionFields()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldTenantID:
		m.ResetTenantID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldFileNamingTemplate:
		m.ResetFileNamingTemplate()
		return nil
	case project.FieldExtractionFields:
		m.ResetExtractionFields()
		return nil
	case project.FieldTableExtractionFields:
		m.ResetTableExtractionFields()
		return nil
	case project.FieldCheckScanningMode:
		m.ResetCheckScanningMode()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.batches != nil {
		edges = append(edges, project.EdgeBatches)
	}
	if m.documents != nil {
		edges = append(edges, project.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.batches))
		for id := range m.batches {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbatches != nil {
		edges = append(edges, project.EdgeBatches)
	}
	if m.removeddocuments != nil {
		edges = append(edges, project.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.removedbatches))
		for id := range m.removedbatches {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbatches {
		edges = append(edges, project.EdgeBatches)
	}
	if m.cleareddocuments {
		edges = append(edges, project.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeBatches:
		return m.clearedbatches
	case project.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeBatches:
		m.ResetBatches()
		return nil
	case project.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}
