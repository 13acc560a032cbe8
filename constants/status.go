package constants

// DocumentStatus is the canonical validation status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusPending     DocumentStatus = "PENDING"      // registered, no extracted text yet
	DocStatusValidated   DocumentStatus = "VALIDATED"    // operator accepted the extraction
	DocStatusRejected    DocumentStatus = "REJECTED"     // operator rejected the extraction
	DocStatusNeedsReview DocumentStatus = "NEEDS_REVIEW" // flagged for manual review
)

// BatchStatus is the lifecycle status for rows in batches.
// ERROR is reachable from any other state.
type BatchStatus string

const (
	BatchStatusNew        BatchStatus = "NEW"
	BatchStatusScanning   BatchStatus = "SCANNING"
	BatchStatusIndexing   BatchStatus = "INDEXING"
	BatchStatusValidation BatchStatus = "VALIDATION"
	BatchStatusValidated  BatchStatus = "VALIDATED"
	BatchStatusComplete   BatchStatus = "COMPLETE"
	BatchStatusExported   BatchStatus = "EXPORTED"
	BatchStatusError      BatchStatus = "ERROR"
)

// JobTypeExtractDocument is the only job type the pipeline enqueues.
const JobTypeExtractDocument = "extract_document"

// BatchStatuses lists every valid batch status for schema validation.
var BatchStatuses = []string{
	string(BatchStatusNew),
	string(BatchStatusScanning),
	string(BatchStatusIndexing),
	string(BatchStatusValidation),
	string(BatchStatusValidated),
	string(BatchStatusComplete),
	string(BatchStatusExported),
	string(BatchStatusError),
}

// DocumentStatuses lists every valid document validation status.
var DocumentStatuses = []string{
	string(DocStatusPending),
	string(DocStatusValidated),
	string(DocStatusRejected),
	string(DocStatusNeedsReview),
}
