// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/derivio/ent/hintevent"
	"github.com/abhisek/derivio/ent/llmrequestevent"
	"github.com/abhisek/derivio/ent/progressslot"
	"github.com/abhisek/derivio/ent/schema"
	"github.com/abhisek/derivio/ent/topicevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescTopicID is the schema descriptor for topic_id field.
	hinteventDescTopicID := hinteventFields[1].Descriptor()
	// hintevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	hintevent.TopicIDValidator = hinteventDescTopicID.Validators[0].(func(string) error)
	// hinteventDescQuestionText is the schema descriptor for question_text field.
	hinteventDescQuestionText := hinteventFields[2].Descriptor()
	// hintevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	hintevent.QuestionTextValidator = hinteventDescQuestionText.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[3].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	progressslotFields := schema.ProgressSlot{}.Fields()
	_ = progressslotFields
	// progressslotDescUpdatedAt is the schema descriptor for updated_at field.
	progressslotDescUpdatedAt := progressslotFields[1].Descriptor()
	// progressslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressslot.DefaultUpdatedAt = progressslotDescUpdatedAt.Default.(func() time.Time)
	// progressslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressslot.UpdateDefaultUpdatedAt = progressslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	topiceventMixin := schema.TopicEvent{}.Mixin()
	topiceventMixinFields0 := topiceventMixin[0].Fields()
	_ = topiceventMixinFields0
	topiceventFields := schema.TopicEvent{}.Fields()
	_ = topiceventFields
	// topiceventDescTimestamp is the schema descriptor for timestamp field.
	topiceventDescTimestamp := topiceventMixinFields0[1].Descriptor()
	// topicevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	topicevent.DefaultTimestamp = topiceventDescTimestamp.Default.(func() time.Time)
	// topiceventDescSessionID is the schema descriptor for session_id field.
	topiceventDescSessionID := topiceventFields[0].Descriptor()
	// topicevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	topicevent.SessionIDValidator = topiceventDescSessionID.Validators[0].(func(string) error)
	// topiceventDescTopicID is the schema descriptor for topic_id field.
	topiceventDescTopicID := topiceventFields[1].Descriptor()
	// topicevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topicevent.TopicIDValidator = topiceventDescTopicID.Validators[0].(func(string) error)
	// topiceventDescLevel is the schema descriptor for level field.
	topiceventDescLevel := topiceventFields[2].Descriptor()
	// topicevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	topicevent.LevelValidator = topiceventDescLevel.Validators[0].(func(string) error)
}
