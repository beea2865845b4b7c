package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/db/ent/schema/utils"
)

// ProposedTarget is an LLM-suggested URL awaiting user review.
type ProposedTarget struct{ ent.Schema }

func (ProposedTarget) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proposed_targets"},
	}
}

func (ProposedTarget) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("url").NotEmpty(),
		field.String("title").NotEmpty(),
		field.String("description").Optional().Nillable(),
		// the topic prompt that produced this proposal
		field.String("source_prompt").NotEmpty(),
		field.String("status").
			Default(string(constants.ProposalPending)).
			Validate(utils.EnumValidator(
				string(constants.ProposalPending),
				string(constants.ProposalPromoted),
				string(constants.ProposalDismissed),
			)),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ProposedTarget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
	}
}
