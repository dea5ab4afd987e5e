// Package progress owns the learner's persisted journey: the one-time
// assessment-to-learning transition, completed topics, and the running score.
package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/store"
)

// Completion describes one finished lesson run.
type Completion struct {
	SessionID string
	TopicID   string
	Level     assessment.Level
	Score     int
	Review    bool
}

// Tracker keeps the in-memory copy of the progress slot and writes it back
// on every state change. In-memory state only changes after a successful
// save, so a write failure never leaves memory ahead of disk.
type Tracker struct {
	repo   store.ProgressRepo
	events store.EventRepo
	data   store.ProgressData
}

// NewTracker creates a tracker and loads the persisted slot. events may be
// nil; completions then go unrecorded in the event log but progress still
// works.
func NewTracker(ctx context.Context, repo store.ProgressRepo, events store.EventRepo) (*Tracker, error) {
	data, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return &Tracker{repo: repo, events: events, data: data}, nil
}

// Current returns a copy of the learner's progress.
func (t *Tracker) Current() store.ProgressData {
	out := t.data
	out.CompletedTopics = append([]string(nil), t.data.CompletedTopics...)
	if t.data.Assessment != nil {
		a := *t.data.Assessment
		a.Strengths = append([]string(nil), t.data.Assessment.Strengths...)
		a.Weaknesses = append([]string(nil), t.data.Assessment.Weaknesses...)
		out.Assessment = &a
	}
	return out
}

// Phase returns the learner's current phase.
func (t *Tracker) Phase() store.Phase { return t.data.Phase }

// Assessment returns the stored diagnostic result, nil before the
// assessment has been completed.
func (t *Tracker) Assessment() *assessment.Result {
	if t.data.Assessment == nil {
		return nil
	}
	a := *t.data.Assessment
	return &a
}

// Level returns the learner's placed level, defaulting to beginner before
// the assessment has run.
func (t *Tracker) Level() assessment.Level {
	if t.data.Assessment == nil {
		return assessment.LevelBeginner
	}
	return t.data.Assessment.Level
}

// CompletedTopics returns the completed topic ids in completion order.
func (t *Tracker) CompletedTopics() []string {
	return append([]string(nil), t.data.CompletedTopics...)
}

// HasCompleted reports whether the topic has been completed.
func (t *Tracker) HasCompleted(topicID string) bool {
	for _, id := range t.data.CompletedTopics {
		if id == topicID {
			return true
		}
	}
	return false
}

// TotalScore returns the sum of completion scores earned so far.
func (t *Tracker) TotalScore() int { return t.data.TotalScore }

// CompleteAssessment records the diagnostic result and moves the learner to
// the learning phase. The transition happens once; a second call overwrites
// nothing and is an error.
func (t *Tracker) CompleteAssessment(ctx context.Context, result assessment.Result) error {
	if t.data.Phase == store.PhaseLearning {
		return fmt.Errorf("assessment already completed")
	}

	next := t.data
	next.Phase = store.PhaseLearning
	next.Assessment = &result
	if err := t.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	t.data = next
	return nil
}

// CompleteTopic records a finished lesson run. Review runs and repeat
// completions of an already-completed topic are logged as review events and
// never mutate progress. First-time completions add the topic and its score.
func (t *Tracker) CompleteTopic(ctx context.Context, c Completion) error {
	review := c.Review || t.HasCompleted(c.TopicID)

	if t.events != nil {
		err := t.events.AppendTopicCompletion(ctx, store.TopicCompletionData{
			SessionID: c.SessionID,
			TopicID:   c.TopicID,
			Level:     string(c.Level),
			Score:     c.Score,
			Review:    review,
		})
		if err != nil {
			return fmt.Errorf("record topic event: %w", err)
		}
	}

	if review {
		return nil
	}

	next := t.data
	next.CompletedTopics = append(append([]string(nil), t.data.CompletedTopics...), c.TopicID)
	next.TotalScore += c.Score
	if err := t.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	t.data = next
	return nil
}

// Reset clears the slot and returns the in-memory state to defaults. The
// event log is untouched.
func (t *Tracker) Reset(ctx context.Context) error {
	if err := t.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	t.data = store.DefaultProgress()
	return nil
}
