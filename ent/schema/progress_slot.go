package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressSlot holds the learner's persisted progress. The app keeps exactly
// one row and overwrites it on every save; there is no history here, the
// event tables carry that.
type ProgressSlot struct {
	ent.Schema
}

func (ProgressSlot) Fields() []ent.Field {
	return []ent.Field{
		field.JSON("data", map[string]any{}).
			Comment("Learner progress as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save time"),
	}
}
