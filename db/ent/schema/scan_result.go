package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/db/ent/schema/utils"
)

// ScanResult is one fetch-and-extract attempt against a target. Rows are
// immutable after creation except for review_status.
type ScanResult struct{ ent.Schema }

func (ScanResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_results"},
	}
}

func (ScanResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so indexes can reference it
		field.UUID("target_id", uuid.UUID{}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.ScanStatusSuccess),
				string(constants.ScanStatusFailed),
			)),
		// snippet of the rendered page text
		field.String("content").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// raw LLM payload: envelope JSON, legacy flat JSON, or free text
		field.String("extracted_data").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// base64 PNG, best-effort
		field.String("screenshot").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("error_message").Optional().Nillable(),
		field.String("review_status").
			Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(
				string(constants.ReviewPending),
				string(constants.ReviewApproved),
				string(constants.ReviewRejected),
			)),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ScanResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("target", Target.Type).
			Ref("scans").
			Field("target_id").
			Unique().
			Required(),
	}
}

func (ScanResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_id", "created_at"),
		index.Fields("target_id", "status", "created_at"),
	}
}
