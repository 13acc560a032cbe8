package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type License struct{ ent.Schema }

func (License) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "licenses"},
	}
}

func (License) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("tenant_id", uuid.UUID{}).Unique(),
		field.Int("remaining_documents").NonNegative(),
		field.Int("total_documents").NonNegative(),
		field.Time("expires_at"),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (License) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("usages", LicenseUsage.Type),
	}
}

type LicenseUsage struct{ ent.Schema }

func (LicenseUsage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "license_usages"},
	}
}

func (LicenseUsage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("license_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.Int("units").Positive(),
		field.Time("consumed_at").Default(time.Now),
	}
}

func (LicenseUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("license", License.Type).
			Ref("usages").
			Field("license_id").
			Unique().
			Required(),
	}
}

func (LicenseUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("license_id", "consumed_at"),
		index.Fields("document_id"),
	}
}
