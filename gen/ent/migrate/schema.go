// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "total_documents", Type: field.TypeInt, Default: 0},
		{Name: "processed_documents", Type: field.TypeInt, Default: 0},
		{Name: "validated_documents", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "NEW"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batches_projects_batches",
				Columns:    []*schema.Column{BatchesColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batch_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[9], BatchesColumns[6]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "storage_ref", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "line_items", Type: field.TypeJSON, Nullable: true},
		{Name: "word_boxes", Type: field.TypeJSON, Nullable: true},
		{Name: "validation_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "uploaded_by", Type: field.TypeUUID},
		{Name: "batch_id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_batches_documents",
				Columns:    []*schema.Column{DocumentsColumns[12]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "documents_projects_documents",
				Columns:    []*schema.Column{DocumentsColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_batch_id_validation_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[8]},
			},
			{
				Name:    "document_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[13], DocumentsColumns[10]},
			},
		},
	}
	// ExtractionJobsColumns holds the columns for the "extraction_jobs" table.
	ExtractionJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "submitted_by", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractionJobsTable holds the schema information for the "extraction_jobs" table.
	ExtractionJobsTable = &schema.Table{
		Name:       "extraction_jobs",
		Columns:    ExtractionJobsColumns,
		PrimaryKey: []*schema.Column{ExtractionJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_jobs_documents_jobs",
				Columns:    []*schema.Column{ExtractionJobsColumns[7]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[7]},
			},
			{
				Name:    "extractionjob_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[5], ExtractionJobsColumns[6]},
			},
		},
	}
	// LicensesColumns holds the columns for the "licenses" table.
	LicensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID, Unique: true},
		{Name: "remaining_documents", Type: field.TypeInt},
		{Name: "total_documents", Type: field.TypeInt},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LicensesTable holds the schema information for the "licenses" table.
	LicensesTable = &schema.Table{
		Name:       "licenses",
		Columns:    LicensesColumns,
		PrimaryKey: []*schema.Column{LicensesColumns[0]},
	}
	// LicenseUsagesColumns holds the columns for the "license_usages" table.
	LicenseUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "units", Type: field.TypeInt},
		{Name: "consumed_at", Type: field.TypeTime},
		{Name: "license_id", Type: field.TypeUUID},
	}
	// LicenseUsagesTable holds the schema information for the "license_usages" table.
	LicenseUsagesTable = &schema.Table{
		Name:       "license_usages",
		Columns:    LicenseUsagesColumns,
		PrimaryKey: []*schema.Column{LicenseUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "license_usages_licenses_usages",
				Columns:    []*schema.Column{LicenseUsagesColumns[4]},
				RefColumns: []*schema.Column{LicensesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "licenseusage_license_id_consumed_at",
				Unique:  false,
				Columns: []*schema.Column{LicenseUsagesColumns[4], LicenseUsagesColumns[3]},
			},
			{
				Name:    "licenseusage_document_id",
				Unique:  false,
				Columns: []*schema.Column{LicenseUsagesColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "file_naming_template", Type: field.TypeString, Nullable: true},
		{Name: "extraction_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "table_extraction_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "check_scanning_mode", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchesTable,
		DocumentsTable,
		ExtractionJobsTable,
		LicensesTable,
		LicenseUsagesTable,
		ProjectsTable,
	}
)

func init() {
	BatchesTable.ForeignKeys[0].RefTable = ProjectsTable
	BatchesTable.Annotation = &entsql.Annotation{
		Table: "batches",
	}
	DocumentsTable.ForeignKeys[0].RefTable = BatchesTable
	DocumentsTable.ForeignKeys[1].RefTable = ProjectsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionJobsTable.Annotation = &entsql.Annotation{
		Table: "extraction_jobs",
	}
	LicensesTable.Annotation = &entsql.Annotation{
		Table: "licenses",
	}
	LicenseUsagesTable.ForeignKeys[0].RefTable = LicensesTable
	LicenseUsagesTable.Annotation = &entsql.Annotation{
		Table: "license_usages",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
}
