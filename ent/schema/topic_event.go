package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicEvent records a finished lesson run, including review replays.
type TopicEvent struct {
	ent.Schema
}

func (TopicEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TopicEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("topic_id").NotEmpty(),
		field.String("level").NotEmpty(),
		field.Int("score").
			Comment("Completion score, 0-100"),
		field.Bool("review").
			Comment("True when the run was a replay of a completed topic"),
	}
}

func (TopicEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
	}
}
