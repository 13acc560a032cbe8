// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docflowhq/docflow/db/ent/schema"
	"github.com/docflowhq/docflow/gen/ent/batch"
	"github.com/docflowhq/docflow/gen/ent/document"
	"github.com/docflowhq/docflow/gen/ent/extractionjob"
	"github.com/docflowhq/docflow/gen/ent/license"
	"github.com/docflowhq/docflow/gen/ent/licenseusage"
	"github.com/docflowhq/docflow/gen/ent/project"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescName is the schema descriptor for name field.
	batchDescName := batchFields[2].Descriptor()
	// batch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	batch.NameValidator = batchDescName.Validators[0].(func(string) error)
	// batchDescTotalDocuments is the schema descriptor for total_documents field.
	batchDescTotalDocuments := batchFields[3].Descriptor()
	// batch.DefaultTotalDocuments holds the default value on creation for the total_documents field.
	batch.DefaultTotalDocuments = batchDescTotalDocuments.Default.(int)
	// batch.TotalDocumentsValidator is a validator for the "total_documents" field. It is called by the builders before save.
	batch.TotalDocumentsValidator = batchDescTotalDocuments.Validators[0].(func(int) error)
	// batchDescProcessedDocuments is the schema descriptor for processed_documents field.
	batchDescProcessedDocuments := batchFields[4].Descriptor()
	// batch.DefaultProcessedDocuments holds the default value on creation for the processed_documents field.
	batch.DefaultProcessedDocuments = batchDescProcessedDocuments.Default.(int)
	// batch.ProcessedDocumentsValidator is a validator for the "processed_documents" field. It is called by the builders before save.
	batch.ProcessedDocumentsValidator = batchDescProcessedDocuments.Validators[0].(func(int) error)
	// batchDescValidatedDocuments is the schema descriptor for validated_documents field.
	batchDescValidatedDocuments := batchFields[5].Descriptor()
	// batch.DefaultValidatedDocuments holds the default value on creation for the validated_documents field.
	batch.DefaultValidatedDocuments = batchDescValidatedDocuments.Default.(int)
	// batch.ValidatedDocumentsValidator is a validator for the "validated_documents" field. It is called by the builders before save.
	batch.ValidatedDocumentsValidator = batchDescValidatedDocuments.Validators[0].(func(int) error)
	// batchDescErrorCount is the schema descriptor for error_count field.
	batchDescErrorCount := batchFields[6].Descriptor()
	// batch.DefaultErrorCount holds the default value on creation for the error_count field.
	batch.DefaultErrorCount = batchDescErrorCount.Default.(int)
	// batch.ErrorCountValidator is a validator for the "error_count" field. It is called by the builders before save.
	batch.ErrorCountValidator = batchDescErrorCount.Validators[0].(func(int) error)
	// batchDescStatus is the schema descriptor for status field.
	batchDescStatus := batchFields[7].Descriptor()
	// batch.DefaultStatus holds the default value on creation for the status field.
	batch.DefaultStatus = batchDescStatus.Default.(string)
	// batch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batch.StatusValidator = batchDescStatus.Validators[0].(func(string) error)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[8].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescUpdatedAt is the schema descriptor for updated_at field.
	batchDescUpdatedAt := batchFields[9].Descriptor()
	// batch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	batch.DefaultUpdatedAt = batchDescUpdatedAt.Default.(func() time.Time)
	// batch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	batch.UpdateDefaultUpdatedAt = batchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileType is the schema descriptor for file_type field.
	documentDescFileType := documentFields[4].Descriptor()
	// document.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	document.FileTypeValidator = func() func(string) error {
		validators := documentDescFileType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_type string) error {
			for _, fn := range fns {
				if err := fn(file_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescExtractedText is the schema descriptor for extracted_text field.
	documentDescExtractedText := documentFields[6].Descriptor()
	// document.DefaultExtractedText holds the default value on creation for the extracted_text field.
	document.DefaultExtractedText = documentDescExtractedText.Default.(string)
	// documentDescValidationStatus is the schema descriptor for validation_status field.
	documentDescValidationStatus := documentFields[10].Descriptor()
	// document.DefaultValidationStatus holds the default value on creation for the validation_status field.
	document.DefaultValidationStatus = documentDescValidationStatus.Default.(string)
	// document.ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	document.ValidationStatusValidator = documentDescValidationStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[12].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescJobType is the schema descriptor for job_type field.
	extractionjobDescJobType := extractionjobFields[2].Descriptor()
	// extractionjob.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	extractionjob.JobTypeValidator = extractionjobDescJobType.Validators[0].(func(string) error)
	// extractionjobDescPriority is the schema descriptor for priority field.
	extractionjobDescPriority := extractionjobFields[4].Descriptor()
	// extractionjob.DefaultPriority holds the default value on creation for the priority field.
	extractionjob.DefaultPriority = extractionjobDescPriority.Default.(int)
	// extractionjobDescCreatedAt is the schema descriptor for created_at field.
	extractionjobDescCreatedAt := extractionjobFields[7].Descriptor()
	// extractionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionjob.DefaultCreatedAt = extractionjobDescCreatedAt.Default.(func() time.Time)
	// extractionjobDescID is the schema descriptor for id field.
	extractionjobDescID := extractionjobFields[0].Descriptor()
	// extractionjob.DefaultID holds the default value on creation for the id field.
	extractionjob.DefaultID = extractionjobDescID.Default.(func() uuid.UUID)
	licenseFields := schema.License{}.Fields()
	_ = licenseFields
	// licenseDescRemainingDocuments is the schema descriptor for remaining_documents field.
	licenseDescRemainingDocuments := licenseFields[2].Descriptor()
	// license.RemainingDocumentsValidator is a validator for the "remaining_documents" field. It is called by the builders before save.
	license.RemainingDocumentsValidator = licenseDescRemainingDocuments.Validators[0].(func(int) error)
	// licenseDescTotalDocuments is the schema descriptor for total_documents field.
	licenseDescTotalDocuments := licenseFields[3].Descriptor()
	// license.TotalDocumentsValidator is a validator for the "total_documents" field. It is called by the builders before save.
	license.TotalDocumentsValidator = licenseDescTotalDocuments.Validators[0].(func(int) error)
	// licenseDescUpdatedAt is the schema descriptor for updated_at field.
	licenseDescUpdatedAt := licenseFields[5].Descriptor()
	// license.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	license.DefaultUpdatedAt = licenseDescUpdatedAt.Default.(func() time.Time)
	// license.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	license.UpdateDefaultUpdatedAt = licenseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// licenseDescID is the schema descriptor for id field.
	licenseDescID := licenseFields[0].Descriptor()
	// license.DefaultID holds the default value on creation for the id field.
	license.DefaultID = licenseDescID.Default.(func() uuid.UUID)
	licenseusageFields := schema.LicenseUsage{}.Fields()
	_ = licenseusageFields
	// licenseusageDescUnits is the schema descriptor for units field.
	licenseusageDescUnits := licenseusageFields[3].Descriptor()
	// licenseusage.UnitsValidator is a validator for the "units" field. It is called by the builders before save.
	licenseusage.UnitsValidator = licenseusageDescUnits.Validators[0].(func(int) error)
	// licenseusageDescConsumedAt is the schema descriptor for consumed_at field.
	licenseusageDescConsumedAt := licenseusageFields[4].Descriptor()
	// licenseusage.DefaultConsumedAt holds the default value on creation for the consumed_at field.
	licenseusage.DefaultConsumedAt = licenseusageDescConsumedAt.Default.(func() time.Time)
	// licenseusageDescID is the schema descriptor for id field.
	licenseusageDescID := licenseusageFields[0].Descriptor()
	// licenseusage.DefaultID holds the default value on creation for the id field.
	licenseusage.DefaultID = licenseusageDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[2].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCheckScanningMode is the schema descriptor for check_scanning_mode field.
	projectDescCheckScanningMode := projectFields[6].Descriptor()
	// project.DefaultCheckScanningMode holds the default value on creation for the check_scanning_mode field.
	project.DefaultCheckScanningMode = projectDescCheckScanningMode.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[7].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[8].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
}
