// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// HintEvent is the predicate function for hintevent builders.
type HintEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProgressSlot is the predicate function for progressslot builders.
type ProgressSlot func(*sql.Selector)

// TopicEvent is the predicate function for topicevent builders.
type TopicEvent func(*sql.Selector)
