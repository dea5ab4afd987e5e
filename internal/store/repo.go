package store

import (
	"context"
	"time"

	"github.com/abhisek/derivio/internal/assessment"
)

// Phase is the learner's position in the overall flow. New learners start in
// the assessment phase and move to learning exactly once.
type Phase string

const (
	PhaseAssessment Phase = "assessment"
	PhaseLearning   Phase = "learning"
)

// ProgressData is the learner state persisted in the single progress slot.
type ProgressData struct {
	Version         int                `json:"version"`
	Phase           Phase              `json:"phase"`
	Assessment      *assessment.Result `json:"assessment,omitempty"`
	CompletedTopics []string           `json:"completedTopics"`
	TotalScore      int                `json:"totalScore"`
}

// DefaultProgress returns the state of a learner who has never run the app.
func DefaultProgress() ProgressData {
	return ProgressData{
		Version: 1,
		Phase:   PhaseAssessment,
	}
}

// ProgressRepo manages the single learner progress slot.
type ProgressRepo interface {
	// Load returns the persisted progress. An absent or unreadable slot
	// yields DefaultProgress, never an error for those cases.
	Load(ctx context.Context) (ProgressData, error)

	// Save overwrites the slot with data.
	Save(ctx context.Context, data ProgressData) error

	// Clear removes the slot so the next Load returns defaults.
	Clear(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// HintEventData captures a tutor hint given during a lesson.
type HintEventData struct {
	SessionID    string
	TopicID      string
	QuestionText string
	HintText     string
}

// TopicCompletionData captures a finished lesson run.
type TopicCompletionData struct {
	SessionID string
	TopicID   string
	Level     string
	Score     int
	Review    bool
}

// TopicCompletion is a stored topic event, for history listings.
type TopicCompletion struct {
	Timestamp time.Time
	TopicID   string
	Level     string
	Score     int
	Review    bool
}

// LLMUsage aggregates token consumption for one model.
type LLMUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsage returns per-model token totals across all recorded requests.
	LLMUsage(ctx context.Context) ([]LLMUsage, error)

	// AppendHint records a tutor hint event.
	AppendHint(ctx context.Context, data HintEventData) error

	// AppendTopicCompletion records a finished lesson run.
	AppendTopicCompletion(ctx context.Context, data TopicCompletionData) error

	// TopicHistory returns all topic events in chronological order.
	TopicHistory(ctx context.Context) ([]TopicCompletion, error)
}
