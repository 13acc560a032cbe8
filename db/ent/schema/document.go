package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("project_id", uuid.UUID{}),
		field.UUID("batch_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("file_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("storage_ref").Optional(),
		// Always empty at creation; the extraction worker writes it back.
		field.String("extracted_text").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_metadata", map[string]string{}).Optional(),
		field.JSON("line_items", json.RawMessage{}).Optional(),
		field.JSON("word_boxes", json.RawMessage{}).Optional(),
		field.String("validation_status").Default(string(constants.DocStatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.Float32("confidence").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.UUID("uploaded_by", uuid.UUID{}),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("documents").
			Field("project_id").
			Unique().
			Required(),
		edge.From("batch", Batch.Type).
			Ref("documents").
			Field("batch_id").
			Unique().
			Required(),
		edge.To("jobs", ExtractionJob.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "validation_status"),
		index.Fields("project_id", "created_at"),
	}
}
