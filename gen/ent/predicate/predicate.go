// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// License is the predicate function for license builders.
type License func(*sql.Selector)

// LicenseUsage is the predicate function for licenseusage builders.
type LicenseUsage func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)
