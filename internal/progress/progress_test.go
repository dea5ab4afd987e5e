package progress

import (
	"context"
	"testing"

	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/store"
)

func testTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	tr, err := NewTracker(context.Background(), s.ProgressRepo(), s.EventRepo())
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr, s
}

func intermediateResult() assessment.Result {
	return assessment.Result{
		Level:          assessment.LevelIntermediate,
		Strengths:      []string{"basic-rules"},
		Weaknesses:     []string{"chain-rule"},
		Score:          4,
		TotalQuestions: 6,
	}
}

func TestFreshTrackerDefaults(t *testing.T) {
	tr, _ := testTracker(t)

	if tr.Phase() != store.PhaseAssessment {
		t.Errorf("phase = %q, want assessment", tr.Phase())
	}
	if tr.Assessment() != nil {
		t.Error("fresh tracker should have no assessment result")
	}
	if tr.Level() != assessment.LevelBeginner {
		t.Errorf("level = %q, want beginner default", tr.Level())
	}
}

func TestCompleteAssessment_TransitionsOnce(t *testing.T) {
	tr, _ := testTracker(t)
	ctx := context.Background()

	if err := tr.CompleteAssessment(ctx, intermediateResult()); err != nil {
		t.Fatalf("complete assessment: %v", err)
	}
	if tr.Phase() != store.PhaseLearning {
		t.Errorf("phase = %q, want learning", tr.Phase())
	}
	if tr.Level() != assessment.LevelIntermediate {
		t.Errorf("level = %q, want intermediate", tr.Level())
	}

	if err := tr.CompleteAssessment(ctx, intermediateResult()); err == nil {
		t.Error("second assessment completion should fail")
	}
}

func TestCompleteAssessment_Persists(t *testing.T) {
	tr, s := testTracker(t)
	ctx := context.Background()

	if err := tr.CompleteAssessment(ctx, intermediateResult()); err != nil {
		t.Fatal(err)
	}

	// A fresh tracker over the same store sees the saved state.
	reloaded, err := NewTracker(ctx, s.ProgressRepo(), s.EventRepo())
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Phase() != store.PhaseLearning {
		t.Errorf("reloaded phase = %q, want learning", reloaded.Phase())
	}
	a := reloaded.Assessment()
	if a == nil || len(a.Weaknesses) != 1 || a.Weaknesses[0] != "chain-rule" {
		t.Errorf("reloaded assessment = %+v", a)
	}
}

func TestCompleteTopic_FirstTime(t *testing.T) {
	tr, _ := testTracker(t)
	ctx := context.Background()

	err := tr.CompleteTopic(ctx, Completion{
		SessionID: "sess-1",
		TopicID:   "basic-rules",
		Level:     assessment.LevelBeginner,
		Score:     83,
	})
	if err != nil {
		t.Fatalf("complete topic: %v", err)
	}
	if !tr.HasCompleted("basic-rules") {
		t.Error("topic should be marked completed")
	}
	if tr.TotalScore() != 83 {
		t.Errorf("total score = %d, want 83", tr.TotalScore())
	}
}

func TestCompleteTopic_DuplicateDoesNotMutate(t *testing.T) {
	tr, s := testTracker(t)
	ctx := context.Background()

	c := Completion{SessionID: "sess-1", TopicID: "basic-rules", Level: assessment.LevelBeginner, Score: 83}
	if err := tr.CompleteTopic(ctx, c); err != nil {
		t.Fatal(err)
	}
	c.SessionID = "sess-2"
	c.Score = 100
	if err := tr.CompleteTopic(ctx, c); err != nil {
		t.Fatal(err)
	}

	if got := len(tr.CompletedTopics()); got != 1 {
		t.Errorf("completed topics = %d, want 1", got)
	}
	if tr.TotalScore() != 83 {
		t.Errorf("total score = %d, want 83 (repeat must not add)", tr.TotalScore())
	}

	// Both runs still show up in the event log, the second as a review.
	history, err := s.EventRepo().TopicHistory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].Review || !history[1].Review {
		t.Errorf("review flags = %v, %v", history[0].Review, history[1].Review)
	}
}

func TestCompleteTopic_ReviewNeverMutates(t *testing.T) {
	tr, _ := testTracker(t)
	ctx := context.Background()

	err := tr.CompleteTopic(ctx, Completion{
		SessionID: "sess-1",
		TopicID:   "chain-rule",
		Level:     assessment.LevelIntermediate,
		Score:     100,
		Review:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if tr.HasCompleted("chain-rule") {
		t.Error("review run must not mark the topic completed")
	}
	if tr.TotalScore() != 0 {
		t.Errorf("total score = %d, want 0 after review", tr.TotalScore())
	}
}

func TestReset(t *testing.T) {
	tr, s := testTracker(t)
	ctx := context.Background()

	if err := tr.CompleteAssessment(ctx, intermediateResult()); err != nil {
		t.Fatal(err)
	}
	if err := tr.CompleteTopic(ctx, Completion{SessionID: "s", TopicID: "basic-rules", Level: assessment.LevelBeginner, Score: 50}); err != nil {
		t.Fatal(err)
	}

	if err := tr.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if tr.Phase() != store.PhaseAssessment || tr.TotalScore() != 0 || len(tr.CompletedTopics()) != 0 {
		t.Errorf("state after reset = %+v", tr.Current())
	}

	// Reset survives a reload.
	reloaded, err := NewTracker(ctx, s.ProgressRepo(), s.EventRepo())
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Phase() != store.PhaseAssessment {
		t.Errorf("reloaded phase = %q, want assessment", reloaded.Phase())
	}
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	tr, _ := testTracker(t)
	ctx := context.Background()

	if err := tr.CompleteAssessment(ctx, intermediateResult()); err != nil {
		t.Fatal(err)
	}

	snapshot := tr.Current()
	snapshot.Assessment.Strengths[0] = "mutated"
	snapshot.TotalScore = 999

	if tr.Assessment().Strengths[0] != "basic-rules" {
		t.Error("mutating the copy must not affect tracker state")
	}
	if tr.TotalScore() != 0 {
		t.Error("mutating the copy must not affect total score")
	}
}
