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

type Target struct{ ent.Schema }

func (Target) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "targets"},
	}
}

func (Target) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// owning user comes from the external credential service; no local edge
		field.UUID("user_id", uuid.UUID{}),
		field.String("url").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("prompt").Optional().Nillable(),
		field.String("schedule").
			Default(string(constants.ScheduleMonthly)).
			Validate(utils.EnumValidator(constants.Schedules...)),
		field.JSON("custom_fields", []string{}).Optional(),
		field.Bool("active").Default(true),
		// envelope JSON, legacy flat JSON, or plain text; parsed defensively
		field.String("master_data").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Target) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE target -> MANY scans; deleting a target removes its history
		edge.To("scans", ScanResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Target) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "active"),
	}
}
