// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "hint_text", Type: field.TypeString},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
			{
				Name:    "hintevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProgressSlotsColumns holds the columns for the "progress_slots" table.
	ProgressSlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressSlotsTable holds the schema information for the "progress_slots" table.
	ProgressSlotsTable = &schema.Table{
		Name:       "progress_slots",
		Columns:    ProgressSlotsColumns,
		PrimaryKey: []*schema.Column{ProgressSlotsColumns[0]},
	}
	// TopicEventsColumns holds the columns for the "topic_events" table.
	TopicEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "review", Type: field.TypeBool},
	}
	// TopicEventsTable holds the schema information for the "topic_events" table.
	TopicEventsTable = &schema.Table{
		Name:       "topic_events",
		Columns:    TopicEventsColumns,
		PrimaryKey: []*schema.Column{TopicEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TopicEventsColumns[1]},
			},
			{
				Name:    "topicevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TopicEventsColumns[2]},
			},
			{
				Name:    "topicevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TopicEventsColumns[3]},
			},
			{
				Name:    "topicevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{TopicEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HintEventsTable,
		LlmRequestEventsTable,
		ProgressSlotsTable,
		TopicEventsTable,
	}
)

func init() {
}
