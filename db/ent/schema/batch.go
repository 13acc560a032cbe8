package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batches"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// Counters only ever move up; see docs on document deletion.
		field.Int("total_documents").Default(0).NonNegative(),
		field.Int("processed_documents").Default(0).NonNegative(),
		field.Int("validated_documents").Default(0).NonNegative(),
		field.Int("error_count").Default(0).NonNegative(),
		field.String("status").Default(string(constants.BatchStatusNew)).
			Validate(utils.EnumValidator(constants.BatchStatuses...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("batches").
			Field("project_id").
			Unique().
			Required(),
		edge.To("documents", Document.Type),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
	}
}
