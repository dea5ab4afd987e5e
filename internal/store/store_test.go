package store

import (
	"context"
	"testing"

	"github.com/abhisek/derivio/internal/assessment"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressLoadDefaultsWhenEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	data, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data.Phase != PhaseAssessment {
		t.Errorf("phase = %q, want assessment for fresh learner", data.Phase)
	}
	if len(data.CompletedTopics) != 0 || data.TotalScore != 0 {
		t.Errorf("fresh progress should be empty, got %+v", data)
	}
}

func TestProgressSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	saved := ProgressData{
		Version: 1,
		Phase:   PhaseLearning,
		Assessment: &assessment.Result{
			Level:          assessment.LevelIntermediate,
			Strengths:      []string{"basic-rules"},
			Weaknesses:     []string{"chain-rule"},
			Score:          4,
			TotalQuestions: 6,
		},
		CompletedTopics: []string{"basic-rules"},
		TotalScore:      83,
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Phase != PhaseLearning {
		t.Errorf("phase = %q, want learning", got.Phase)
	}
	if got.Assessment == nil || got.Assessment.Level != assessment.LevelIntermediate {
		t.Errorf("assessment = %+v", got.Assessment)
	}
	if len(got.CompletedTopics) != 1 || got.CompletedTopics[0] != "basic-rules" {
		t.Errorf("completedTopics = %v", got.CompletedTopics)
	}
	if got.TotalScore != 83 {
		t.Errorf("totalScore = %d, want 83", got.TotalScore)
	}
}

func TestProgressSaveOverwritesSingleSlot(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		data := DefaultProgress()
		data.TotalScore = i * 10
		if err := repo.Save(ctx, data); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	count, err := s.Client().ProgressSlot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("slot rows = %d, want exactly 1", count)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TotalScore != 20 {
		t.Errorf("totalScore = %d, want last saved value 20", got.TotalScore)
	}
}

func TestProgressClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	data := DefaultProgress()
	data.Phase = PhaseLearning
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if got.Phase != PhaseAssessment {
		t.Errorf("phase = %q after clear, want assessment", got.Phase)
	}
}

func TestProgressLoadMalformedSlotYieldsDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().ProgressSlot.Create().
		SetData(map[string]any{"phase": "banana"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed malformed slot: %v", err)
	}

	got, err := s.ProgressRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Phase != PhaseAssessment {
		t.Errorf("phase = %q for malformed slot, want defaults", got.Phase)
	}
}

func TestEventAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		Purpose:  "tutor",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	err = repo.AppendHint(ctx, HintEventData{
		SessionID:    "sess-1",
		TopicID:      "chain-rule",
		QuestionText: "d/dx (3x+1)^2",
		HintText:     "Differentiate the outer function first.",
	})
	if err != nil {
		t.Fatalf("append hint: %v", err)
	}

	completions := []TopicCompletionData{
		{SessionID: "sess-1", TopicID: "basic-rules", Level: "beginner", Score: 100, Review: false},
		{SessionID: "sess-2", TopicID: "basic-rules", Level: "beginner", Score: 50, Review: true},
	}
	for _, c := range completions {
		if err := repo.AppendTopicCompletion(ctx, c); err != nil {
			t.Fatalf("append topic completion: %v", err)
		}
	}

	history, err := repo.TopicHistory(ctx)
	if err != nil {
		t.Fatalf("topic history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].Review || !history[1].Review {
		t.Error("history should preserve append order")
	}
	if history[0].Score != 100 || history[1].Score != 50 {
		t.Errorf("history scores = %d, %d", history[0].Score, history[1].Score)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"progress_slots", "topic_events", "hint_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
