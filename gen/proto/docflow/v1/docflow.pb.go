// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docflow/v1/docflow.proto

package docflowv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Project struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Id                    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId              string                 `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Name                  string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	FileNamingTemplate    string                 `protobuf:"bytes,4,opt,name=file_naming_template,json=fileNamingTemplate,proto3" json:"file_naming_template,omitempty"`
	ExtractionFields      string                 `protobuf:"bytes,5,opt,name=extraction_fields,json=extractionFields,proto3" json:"extraction_fields,omitempty"`                  // JSON field list
	TableExtractionFields string                 `protobuf:"bytes,6,opt,name=table_extraction_fields,json=tableExtractionFields,proto3" json:"table_extraction_fields,omitempty"` // JSON field list
	CheckScanningMode     bool                   `protobuf:"varint,7,opt,name=check_scanning_mode,json=checkScanningMode,proto3" json:"check_scanning_mode,omitempty"`
	CreatedAt             string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Project) Reset() {
	*x = Project{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Project) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Project) ProtoMessage() {}

func (x *Project) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Project.ProtoReflect.Descriptor instead.
func (*Project) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{0}
}

func (x *Project) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Project) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *Project) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Project) GetFileNamingTemplate() string {
	if x != nil {
		return x.FileNamingTemplate
	}
	return ""
}

func (x *Project) GetExtractionFields() string {
	if x != nil {
		return x.ExtractionFields
	}
	return ""
}

func (x *Project) GetTableExtractionFields() string {
	if x != nil {
		return x.TableExtractionFields
	}
	return ""
}

func (x *Project) GetCheckScanningMode() bool {
	if x != nil {
		return x.CheckScanningMode
	}
	return false
}

func (x *Project) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Batch struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId          string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name               string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	TotalDocuments     int32                  `protobuf:"varint,4,opt,name=total_documents,json=totalDocuments,proto3" json:"total_documents,omitempty"`
	ProcessedDocuments int32                  `protobuf:"varint,5,opt,name=processed_documents,json=processedDocuments,proto3" json:"processed_documents,omitempty"`
	ValidatedDocuments int32                  `protobuf:"varint,6,opt,name=validated_documents,json=validatedDocuments,proto3" json:"validated_documents,omitempty"`
	ErrorCount         int32                  `protobuf:"varint,7,opt,name=error_count,json=errorCount,proto3" json:"error_count,omitempty"`
	Status             string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Batch) Reset() {
	*x = Batch{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Batch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Batch) ProtoMessage() {}

func (x *Batch) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Batch.ProtoReflect.Descriptor instead.
func (*Batch) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{1}
}

func (x *Batch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Batch) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Batch) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Batch) GetTotalDocuments() int32 {
	if x != nil {
		return x.TotalDocuments
	}
	return 0
}

func (x *Batch) GetProcessedDocuments() int32 {
	if x != nil {
		return x.ProcessedDocuments
	}
	return 0
}

func (x *Batch) GetValidatedDocuments() int32 {
	if x != nil {
		return x.ValidatedDocuments
	}
	return 0
}

func (x *Batch) GetErrorCount() int32 {
	if x != nil {
		return x.ErrorCount
	}
	return 0
}

func (x *Batch) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Batch) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Document struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId         string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	BatchId           string                 `protobuf:"bytes,3,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Filename          string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	FileType          string                 `protobuf:"bytes,5,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"` // PDF | IMAGE
	StorageRef        string                 `protobuf:"bytes,6,opt,name=storage_ref,json=storageRef,proto3" json:"storage_ref,omitempty"`
	ExtractedText     string                 `protobuf:"bytes,7,opt,name=extracted_text,json=extractedText,proto3" json:"extracted_text,omitempty"`
	ExtractedMetadata map[string]string      `protobuf:"bytes,8,rep,name=extracted_metadata,json=extractedMetadata,proto3" json:"extracted_metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	LineItems         string                 `protobuf:"bytes,9,opt,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`  // JSON
	WordBoxes         string                 `protobuf:"bytes,10,opt,name=word_boxes,json=wordBoxes,proto3" json:"word_boxes,omitempty"` // JSON
	ValidationStatus  string                 `protobuf:"bytes,11,opt,name=validation_status,json=validationStatus,proto3" json:"validation_status,omitempty"`
	Confidence        *float32               `protobuf:"fixed32,12,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	UploadedBy        string                 `protobuf:"bytes,13,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{2}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Document) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

func (x *Document) GetStorageRef() string {
	if x != nil {
		return x.StorageRef
	}
	return ""
}

func (x *Document) GetExtractedText() string {
	if x != nil {
		return x.ExtractedText
	}
	return ""
}

func (x *Document) GetExtractedMetadata() map[string]string {
	if x != nil {
		return x.ExtractedMetadata
	}
	return nil
}

func (x *Document) GetLineItems() string {
	if x != nil {
		return x.LineItems
	}
	return ""
}

func (x *Document) GetWordBoxes() string {
	if x != nil {
		return x.WordBoxes
	}
	return ""
}

func (x *Document) GetValidationStatus() string {
	if x != nil {
		return x.ValidationStatus
	}
	return ""
}

func (x *Document) GetConfidence() float32 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

func (x *Document) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type FileCapture struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Data          []byte                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,3,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"` // known values for naming-template substitution
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileCapture) Reset() {
	*x = FileCapture{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileCapture) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileCapture) ProtoMessage() {}

func (x *FileCapture) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileCapture.ProtoReflect.Descriptor instead.
func (*FileCapture) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{3}
}

func (x *FileCapture) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *FileCapture) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *FileCapture) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type ExtractionResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,2,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	LineItems     string                 `protobuf:"bytes,3,opt,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"` // JSON
	WordBoxes     string                 `protobuf:"bytes,4,opt,name=word_boxes,json=wordBoxes,proto3" json:"word_boxes,omitempty"` // JSON
	Confidence    *float32               `protobuf:"fixed32,5,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	Attempts      int32                  `protobuf:"varint,6,opt,name=attempts,proto3" json:"attempts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionResult) Reset() {
	*x = ExtractionResult{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionResult) ProtoMessage() {}

func (x *ExtractionResult) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionResult.ProtoReflect.Descriptor instead.
func (*ExtractionResult) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractionResult) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExtractionResult) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *ExtractionResult) GetLineItems() string {
	if x != nil {
		return x.LineItems
	}
	return ""
}

func (x *ExtractionResult) GetWordBoxes() string {
	if x != nil {
		return x.WordBoxes
	}
	return ""
}

func (x *ExtractionResult) GetConfidence() float32 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

func (x *ExtractionResult) GetAttempts() int32 {
	if x != nil {
		return x.Attempts
	}
	return 0
}

type CreateProjectRequest struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	TenantId              string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Name                  string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	FileNamingTemplate    string                 `protobuf:"bytes,3,opt,name=file_naming_template,json=fileNamingTemplate,proto3" json:"file_naming_template,omitempty"`
	ExtractionFields      string                 `protobuf:"bytes,4,opt,name=extraction_fields,json=extractionFields,proto3" json:"extraction_fields,omitempty"`
	TableExtractionFields string                 `protobuf:"bytes,5,opt,name=table_extraction_fields,json=tableExtractionFields,proto3" json:"table_extraction_fields,omitempty"`
	CheckScanningMode     bool                   `protobuf:"varint,6,opt,name=check_scanning_mode,json=checkScanningMode,proto3" json:"check_scanning_mode,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *CreateProjectRequest) Reset() {
	*x = CreateProjectRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectRequest) ProtoMessage() {}

func (x *CreateProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectRequest.ProtoReflect.Descriptor instead.
func (*CreateProjectRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{5}
}

func (x *CreateProjectRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *CreateProjectRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProjectRequest) GetFileNamingTemplate() string {
	if x != nil {
		return x.FileNamingTemplate
	}
	return ""
}

func (x *CreateProjectRequest) GetExtractionFields() string {
	if x != nil {
		return x.ExtractionFields
	}
	return ""
}

func (x *CreateProjectRequest) GetTableExtractionFields() string {
	if x != nil {
		return x.TableExtractionFields
	}
	return ""
}

func (x *CreateProjectRequest) GetCheckScanningMode() bool {
	if x != nil {
		return x.CheckScanningMode
	}
	return false
}

type CreateProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectResponse) Reset() {
	*x = CreateProjectResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectResponse) ProtoMessage() {}

func (x *CreateProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectResponse.ProtoReflect.Descriptor instead.
func (*CreateProjectResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{6}
}

func (x *CreateProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type CreateBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBatchRequest) Reset() {
	*x = CreateBatchRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBatchRequest) ProtoMessage() {}

func (x *CreateBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBatchRequest.ProtoReflect.Descriptor instead.
func (*CreateBatchRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{7}
}

func (x *CreateBatchRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *CreateBatchRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *Batch                 `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBatchResponse) Reset() {
	*x = CreateBatchResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBatchResponse) ProtoMessage() {}

func (x *CreateBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBatchResponse.ProtoReflect.Descriptor instead.
func (*CreateBatchResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{8}
}

func (x *CreateBatchResponse) GetBatch() *Batch {
	if x != nil {
		return x.Batch
	}
	return nil
}

type SubmitCaptureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	BatchId       string                 `protobuf:"bytes,2,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	UploadedBy    string                 `protobuf:"bytes,3,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	File          *FileCapture           `protobuf:"bytes,4,opt,name=file,proto3" json:"file,omitempty"`
	Wait          bool                   `protobuf:"varint,5,opt,name=wait,proto3" json:"wait,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitCaptureRequest) Reset() {
	*x = SubmitCaptureRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitCaptureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitCaptureRequest) ProtoMessage() {}

func (x *SubmitCaptureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitCaptureRequest.ProtoReflect.Descriptor instead.
func (*SubmitCaptureRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{9}
}

func (x *SubmitCaptureRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *SubmitCaptureRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *SubmitCaptureRequest) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *SubmitCaptureRequest) GetFile() *FileCapture {
	if x != nil {
		return x.File
	}
	return nil
}

func (x *SubmitCaptureRequest) GetWait() bool {
	if x != nil {
		return x.Wait
	}
	return false
}

type SubmitCaptureResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Extraction    *ExtractionResult      `protobuf:"bytes,3,opt,name=extraction,proto3" json:"extraction,omitempty"` // set only when wait=true
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitCaptureResponse) Reset() {
	*x = SubmitCaptureResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitCaptureResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitCaptureResponse) ProtoMessage() {}

func (x *SubmitCaptureResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitCaptureResponse.ProtoReflect.Descriptor instead.
func (*SubmitCaptureResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{10}
}

func (x *SubmitCaptureResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SubmitCaptureResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitCaptureResponse) GetExtraction() *ExtractionResult {
	if x != nil {
		return x.Extraction
	}
	return nil
}

type SubmitBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	BatchId       string                 `protobuf:"bytes,2,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	UploadedBy    string                 `protobuf:"bytes,3,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	Files         []*FileCapture         `protobuf:"bytes,4,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchRequest) Reset() {
	*x = SubmitBatchRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchRequest) ProtoMessage() {}

func (x *SubmitBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchRequest.ProtoReflect.Descriptor instead.
func (*SubmitBatchRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{11}
}

func (x *SubmitBatchRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *SubmitBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *SubmitBatchRequest) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *SubmitBatchRequest) GetFiles() []*FileCapture {
	if x != nil {
		return x.Files
	}
	return nil
}

type FileOutcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobId         string                 `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"` // empty on success
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileOutcome) Reset() {
	*x = FileOutcome{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileOutcome) ProtoMessage() {}

func (x *FileOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileOutcome.ProtoReflect.Descriptor instead.
func (*FileOutcome) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{12}
}

func (x *FileOutcome) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *FileOutcome) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *FileOutcome) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *FileOutcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type BatchStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Submitted     uint32                 `protobuf:"varint,1,opt,name=submitted,proto3" json:"submitted,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,2,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        uint32                 `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchStats) Reset() {
	*x = BatchStats{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchStats) ProtoMessage() {}

func (x *BatchStats) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchStats.ProtoReflect.Descriptor instead.
func (*BatchStats) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{13}
}

func (x *BatchStats) GetSubmitted() uint32 {
	if x != nil {
		return x.Submitted
	}
	return 0
}

func (x *BatchStats) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *BatchStats) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type SubmitBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outcomes      []*FileOutcome         `protobuf:"bytes,1,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	Stats         *BatchStats            `protobuf:"bytes,2,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchResponse) Reset() {
	*x = SubmitBatchResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchResponse) ProtoMessage() {}

func (x *SubmitBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchResponse.ProtoReflect.Descriptor instead.
func (*SubmitBatchResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{14}
}

func (x *SubmitBatchResponse) GetOutcomes() []*FileOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

func (x *SubmitBatchResponse) GetStats() *BatchStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{15}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{16}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchRequest) Reset() {
	*x = GetBatchRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchRequest) ProtoMessage() {}

func (x *GetBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchRequest.ProtoReflect.Descriptor instead.
func (*GetBatchRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{17}
}

func (x *GetBatchRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *Batch                 `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchResponse) Reset() {
	*x = GetBatchResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchResponse) ProtoMessage() {}

func (x *GetBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchResponse.ProtoReflect.Descriptor instead.
func (*GetBatchResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{18}
}

func (x *GetBatchResponse) GetBatch() *Batch {
	if x != nil {
		return x.Batch
	}
	return nil
}

var File_docflow_v1_docflow_proto protoreflect.FileDescriptor

const file_docflow_v1_docflow_proto_rawDesc = "" +
	"\n" +
	"\x18docflow/v1/docflow.proto\x12\n" +
	"docflow.v1\"\xb0\x02\n" +
	"\aProject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttenant_id\x18\x02 \x01(\tR\btenantId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x120\n" +
	"\x14file_naming_template\x18\x04 \x01(\tR\x12fileNamingTemplate\x12+\n" +
	"\x11extraction_fields\x18\x05 \x01(\tR\x10extractionFields\x126\n" +
	"\x17table_extraction_fields\x18\x06 \x01(\tR\x15tableExtractionFields\x12.\n" +
	"\x13check_scanning_mode\x18\a \x01(\bR\x11checkScanningMode\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\xad\x02\n" +
	"\x05Batch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12'\n" +
	"\x0ftotal_documents\x18\x04 \x01(\x05R\x0etotalDocuments\x12/\n" +
	"\x13processed_documents\x18\x05 \x01(\x05R\x12processedDocuments\x12/\n" +
	"\x13validated_documents\x18\x06 \x01(\x05R\x12validatedDocuments\x12\x1f\n" +
	"\verror_count\x18\a \x01(\x05R\n" +
	"errorCount\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"\xd6\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x19\n" +
	"\bbatch_id\x18\x03 \x01(\tR\abatchId\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12\x1b\n" +
	"\tfile_type\x18\x05 \x01(\tR\bfileType\x12\x1f\n" +
	"\vstorage_ref\x18\x06 \x01(\tR\n" +
	"storageRef\x12%\n" +
	"\x0eextracted_text\x18\a \x01(\tR\rextractedText\x12Z\n" +
	"\x12extracted_metadata\x18\b \x03(\v2+.docflow.v1.Document.ExtractedMetadataEntryR\x11extractedMetadata\x12\x1d\n" +
	"\n" +
	"line_items\x18\t \x01(\tR\tlineItems\x12\x1d\n" +
	"\n" +
	"word_boxes\x18\n" +
	" \x01(\tR\twordBoxes\x12+\n" +
	"\x11validation_status\x18\v \x01(\tR\x10validationStatus\x12#\n" +
	"\n" +
	"confidence\x18\f \x01(\x02H\x00R\n" +
	"confidence\x88\x01\x01\x12\x1f\n" +
	"\vuploaded_by\x18\r \x01(\tR\n" +
	"uploadedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x1aD\n" +
	"\x16ExtractedMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01B\r\n" +
	"\v_confidence\"\xbd\x01\n" +
	"\vFileCapture\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x12\n" +
	"\x04data\x18\x02 \x01(\fR\x04data\x12A\n" +
	"\bmetadata\x18\x03 \x03(\v2%.docflow.v1.FileCapture.MetadataEntryR\bmetadata\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xb9\x02\n" +
	"\x10ExtractionResult\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12F\n" +
	"\bmetadata\x18\x02 \x03(\v2*.docflow.v1.ExtractionResult.MetadataEntryR\bmetadata\x12\x1d\n" +
	"\n" +
	"line_items\x18\x03 \x01(\tR\tlineItems\x12\x1d\n" +
	"\n" +
	"word_boxes\x18\x04 \x01(\tR\twordBoxes\x12#\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02H\x00R\n" +
	"confidence\x88\x01\x01\x12\x1a\n" +
	"\battempts\x18\x06 \x01(\x05R\battempts\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01B\r\n" +
	"\v_confidence\"\x8e\x02\n" +
	"\x14CreateProjectRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x120\n" +
	"\x14file_naming_template\x18\x03 \x01(\tR\x12fileNamingTemplate\x12+\n" +
	"\x11extraction_fields\x18\x04 \x01(\tR\x10extractionFields\x126\n" +
	"\x17table_extraction_fields\x18\x05 \x01(\tR\x15tableExtractionFields\x12.\n" +
	"\x13check_scanning_mode\x18\x06 \x01(\bR\x11checkScanningMode\"F\n" +
	"\x15CreateProjectResponse\x12-\n" +
	"\aproject\x18\x01 \x01(\v2\x13.docflow.v1.ProjectR\aproject\"G\n" +
	"\x12CreateBatchRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\">\n" +
	"\x13CreateBatchResponse\x12'\n" +
	"\x05batch\x18\x01 \x01(\v2\x11.docflow.v1.BatchR\x05batch\"\xb2\x01\n" +
	"\x14SubmitCaptureRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x19\n" +
	"\bbatch_id\x18\x02 \x01(\tR\abatchId\x12\x1f\n" +
	"\vuploaded_by\x18\x03 \x01(\tR\n" +
	"uploadedBy\x12+\n" +
	"\x04file\x18\x04 \x01(\v2\x17.docflow.v1.FileCaptureR\x04file\x12\x12\n" +
	"\x04wait\x18\x05 \x01(\bR\x04wait\"\x8d\x01\n" +
	"\x15SubmitCaptureResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12<\n" +
	"\n" +
	"extraction\x18\x03 \x01(\v2\x1c.docflow.v1.ExtractionResultR\n" +
	"extraction\"\x9e\x01\n" +
	"\x12SubmitBatchRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x19\n" +
	"\bbatch_id\x18\x02 \x01(\tR\abatchId\x12\x1f\n" +
	"\vuploaded_by\x18\x03 \x01(\tR\n" +
	"uploadedBy\x12-\n" +
	"\x05files\x18\x04 \x03(\v2\x17.docflow.v1.FileCaptureR\x05files\"w\n" +
	"\vFileOutcome\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x15\n" +
	"\x06job_id\x18\x03 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"`\n" +
	"\n" +
	"BatchStats\x12\x1c\n" +
	"\tsubmitted\x18\x01 \x01(\rR\tsubmitted\x12\x1c\n" +
	"\tsucceeded\x18\x02 \x01(\rR\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\rR\x06failed\"x\n" +
	"\x13SubmitBatchResponse\x123\n" +
	"\boutcomes\x18\x01 \x03(\v2\x17.docflow.v1.FileOutcomeR\boutcomes\x12,\n" +
	"\x05stats\x18\x02 \x01(\v2\x16.docflow.v1.BatchStatsR\x05stats\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"G\n" +
	"\x13GetDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docflow.v1.DocumentR\bdocument\"!\n" +
	"\x0fGetBatchRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\";\n" +
	"\x10GetBatchResponse\x12'\n" +
	"\x05batch\x18\x01 \x01(\v2\x11.docflow.v1.BatchR\x05batch2\xf3\x03\n" +
	"\x0eCaptureService\x12T\n" +
	"\rCreateProject\x12 .docflow.v1.CreateProjectRequest\x1a!.docflow.v1.CreateProjectResponse\x12N\n" +
	"\vCreateBatch\x12\x1e.docflow.v1.CreateBatchRequest\x1a\x1f.docflow.v1.CreateBatchResponse\x12T\n" +
	"\rSubmitCapture\x12 .docflow.v1.SubmitCaptureRequest\x1a!.docflow.v1.SubmitCaptureResponse\x12N\n" +
	"\vSubmitBatch\x12\x1e.docflow.v1.SubmitBatchRequest\x1a\x1f.docflow.v1.SubmitBatchResponse\x12N\n" +
	"\vGetDocument\x12\x1e.docflow.v1.GetDocumentRequest\x1a\x1f.docflow.v1.GetDocumentResponse\x12E\n" +
	"\bGetBatch\x12\x1b.docflow.v1.GetBatchRequest\x1a\x1c.docflow.v1.GetBatchResponseB=Z;github.com/docflowhq/docflow/gen/proto/docflow/v1;docflowv1b\x06proto3"

var (
	file_docflow_v1_docflow_proto_rawDescOnce sync.Once
	file_docflow_v1_docflow_proto_rawDescData []byte
)

func file_docflow_v1_docflow_proto_rawDescGZIP() []byte {
	file_docflow_v1_docflow_proto_rawDescOnce.Do(func() {
		file_docflow_v1_docflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)))
	})
	return file_docflow_v1_docflow_proto_rawDescData
}

var file_docflow_v1_docflow_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_docflow_v1_docflow_proto_goTypes = []any{
	(*Project)(nil),               // 0: docflow.v1.Project
	(*Batch)(nil),                 // 1: docflow.v1.Batch
	(*Document)(nil),              // 2: docflow.v1.Document
	(*FileCapture)(nil),           // 3: docflow.v1.FileCapture
	(*ExtractionResult)(nil),      // 4: docflow.v1.ExtractionResult
	(*CreateProjectRequest)(nil),  // 5: docflow.v1.CreateProjectRequest
	(*CreateProjectResponse)(nil), // 6: docflow.v1.CreateProjectResponse
	(*CreateBatchRequest)(nil),    // 7: docflow.v1.CreateBatchRequest
	(*CreateBatchResponse)(nil),   // 8: docflow.v1.CreateBatchResponse
	(*SubmitCaptureRequest)(nil),  // 9: docflow.v1.SubmitCaptureRequest
	(*SubmitCaptureResponse)(nil), // 10: docflow.v1.SubmitCaptureResponse
	(*SubmitBatchRequest)(nil),    // 11: docflow.v1.SubmitBatchRequest
	(*FileOutcome)(nil),           // 12: docflow.v1.FileOutcome
	(*BatchStats)(nil),            // 13: docflow.v1.BatchStats
	(*SubmitBatchResponse)(nil),   // 14: docflow.v1.SubmitBatchResponse
	(*GetDocumentRequest)(nil),    // 15: docflow.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),   // 16: docflow.v1.GetDocumentResponse
	(*GetBatchRequest)(nil),       // 17: docflow.v1.GetBatchRequest
	(*GetBatchResponse)(nil),      // 18: docflow.v1.GetBatchResponse
	nil,                           // 19: docflow.v1.Document.ExtractedMetadataEntry
	nil,                           // 20: docflow.v1.FileCapture.MetadataEntry
	nil,                           // 21: docflow.v1.ExtractionResult.MetadataEntry
}
var file_docflow_v1_docflow_proto_depIdxs = []int32{
	19, // 0: docflow.v1.Document.extracted_metadata:type_name -> docflow.v1.Document.ExtractedMetadataEntry
	20, // 1: docflow.v1.FileCapture.metadata:type_name -> docflow.v1.FileCapture.MetadataEntry
	21, // 2: docflow.v1.ExtractionResult.metadata:type_name -> docflow.v1.ExtractionResult.MetadataEntry
	0,  // 3: docflow.v1.CreateProjectResponse.project:type_name -> docflow.v1.Project
	1,  // 4: docflow.v1.CreateBatchResponse.batch:type_name -> docflow.v1.Batch
	3,  // 5: docflow.v1.SubmitCaptureRequest.file:type_name -> docflow.v1.FileCapture
	4,  // 6: docflow.v1.SubmitCaptureResponse.extraction:type_name -> docflow.v1.ExtractionResult
	3,  // 7: docflow.v1.SubmitBatchRequest.files:type_name -> docflow.v1.FileCapture
	12, // 8: docflow.v1.SubmitBatchResponse.outcomes:type_name -> docflow.v1.FileOutcome
	13, // 9: docflow.v1.SubmitBatchResponse.stats:type_name -> docflow.v1.BatchStats
	2,  // 10: docflow.v1.GetDocumentResponse.document:type_name -> docflow.v1.Document
	1,  // 11: docflow.v1.GetBatchResponse.batch:type_name -> docflow.v1.Batch
	5,  // 12: docflow.v1.CaptureService.CreateProject:input_type -> docflow.v1.CreateProjectRequest
	7,  // 13: docflow.v1.CaptureService.CreateBatch:input_type -> docflow.v1.CreateBatchRequest
	9,  // 14: docflow.v1.CaptureService.SubmitCapture:input_type -> docflow.v1.SubmitCaptureRequest
	11, // 15: docflow.v1.CaptureService.SubmitBatch:input_type -> docflow.v1.SubmitBatchRequest
	15, // 16: docflow.v1.CaptureService.GetDocument:input_type -> docflow.v1.GetDocumentRequest
	17, // 17: docflow.v1.CaptureService.GetBatch:input_type -> docflow.v1.GetBatchRequest
	6,  // 18: docflow.v1.CaptureService.CreateProject:output_type -> docflow.v1.CreateProjectResponse
	8,  // 19: docflow.v1.CaptureService.CreateBatch:output_type -> docflow.v1.CreateBatchResponse
	10, // 20: docflow.v1.CaptureService.SubmitCapture:output_type -> docflow.v1.SubmitCaptureResponse
	14, // 21: docflow.v1.CaptureService.SubmitBatch:output_type -> docflow.v1.SubmitBatchResponse
	16, // 22: docflow.v1.CaptureService.GetDocument:output_type -> docflow.v1.GetDocumentResponse
	18, // 23: docflow.v1.CaptureService.GetBatch:output_type -> docflow.v1.GetBatchResponse
	18, // [18:24] is the sub-list for method output_type
	12, // [12:18] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_docflow_v1_docflow_proto_init() }
func file_docflow_v1_docflow_proto_init() {
	if File_docflow_v1_docflow_proto != nil {
		return
	}
	file_docflow_v1_docflow_proto_msgTypes[2].OneofWrappers = []any{}
	file_docflow_v1_docflow_proto_msgTypes[4].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docflow_v1_docflow_proto_goTypes,
		DependencyIndexes: file_docflow_v1_docflow_proto_depIdxs,
		MessageInfos:      file_docflow_v1_docflow_proto_msgTypes,
	}.Build()
	File_docflow_v1_docflow_proto = out.File
	file_docflow_v1_docflow_proto_goTypes = nil
	file_docflow_v1_docflow_proto_depIdxs = nil
}
