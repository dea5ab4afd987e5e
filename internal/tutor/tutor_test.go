package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/lesson"
	"github.com/abhisek/derivio/internal/llm"
	"github.com/abhisek/derivio/internal/store"
)

func chainRuleTopic() catalog.Topic {
	return catalog.Topic{
		ID:          "chain-rule",
		Title:       "Chain Rule",
		Description: "Differentiating composite functions",
	}
}

// waitForReply polls ConsumeReply until the async generation lands.
func waitForReply(t *testing.T, s *Service) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if reply, ok := s.ConsumeReply(); ok {
			return reply
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no reply within deadline")
	return ""
}

func TestStart_GreetsViaProvider(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Hello! What part of the chain rule is tricky?"},
	)
	s := NewService(mock, nil, DefaultConfig())

	s.Start(context.Background(), chainRuleTopic(), assessment.LevelIntermediate, "sess-1", nil)

	reply := waitForReply(t, s)
	if reply != "Hello! What part of the chain rule is tricky?" {
		t.Errorf("greeting = %q", reply)
	}

	transcript := s.Transcript()
	if len(transcript) != 1 || transcript[0].Role != llm.RoleAssistant {
		t.Errorf("transcript = %+v", transcript)
	}
}

func TestStart_FallsBackWhenProviderFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewService(mock, nil, DefaultConfig())

	s.Start(context.Background(), chainRuleTopic(), assessment.LevelBeginner, "sess-1", nil)

	if reply := waitForReply(t, s); reply != fallbackGreeting {
		t.Errorf("reply = %q, want fallback greeting", reply)
	}
}

// hungProvider blocks until its context is cancelled, like a stalled
// upstream connection.
type hungProvider struct{}

func (h *hungProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (h *hungProvider) ModelID() string { return "hung" }

func TestStart_HungProviderDoesNotWedgeService(t *testing.T) {
	p := llm.WithTimeout(&hungProvider{}, 20*time.Millisecond)
	s := NewService(p, nil, DefaultConfig())

	s.Start(context.Background(), chainRuleTopic(), assessment.LevelBeginner, "sess-1", nil)

	// The deadline turns the hang into a fallback reply instead of
	// leaving the service busy forever.
	if reply := waitForReply(t, s); reply != fallbackGreeting {
		t.Errorf("reply = %q, want fallback greeting", reply)
	}
	if s.Busy() {
		t.Error("service should accept new requests after the timeout")
	}
}

func TestSend_ConversationAccumulates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "greeting"},
		llm.MockResponse{Text: "Start by identifying the outer function."},
	)
	s := NewService(mock, nil, DefaultConfig())
	ctx := context.Background()

	s.Start(ctx, chainRuleTopic(), assessment.LevelIntermediate, "sess-1", nil)
	waitForReply(t, s)

	s.Send(ctx, "I don't know where to begin with (3x+1)^2.")
	reply := waitForReply(t, s)
	if reply != "Start by identifying the outer function." {
		t.Errorf("reply = %q", reply)
	}

	transcript := s.Transcript()
	if len(transcript) != 3 {
		t.Fatalf("transcript len = %d, want 3", len(transcript))
	}
	if transcript[1].Role != llm.RoleUser {
		t.Errorf("transcript[1].Role = %q", transcript[1].Role)
	}

	// The second request should carry the full history.
	lastCall := mock.Calls[len(mock.Calls)-1]
	if len(lastCall.Messages) != 2 {
		t.Errorf("request messages = %d, want greeting + learner turn", len(lastCall.Messages))
	}
}

func TestRequests_UseSmartModelHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "hi"})
	s := NewService(mock, nil, DefaultConfig())

	s.Start(context.Background(), chainRuleTopic(), assessment.LevelAdvanced, "sess-1", nil)
	waitForReply(t, s)

	if mock.Calls[0].Hint != llm.ModelSmart {
		t.Errorf("hint = %q, want smart", mock.Calls[0].Hint)
	}
}

func TestMismatch_ShapesPromptAndLogsHint(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Look at what happens to the inner function."},
	)
	s := NewService(mock, st.EventRepo(), DefaultConfig())

	mismatch := &lesson.Mismatch{
		Question:  "d/dx (3x+1)^2",
		Expected:  "6(3x+1)",
		Submitted: "2(3x+1)",
		Hint:      "Don't forget the inner derivative.",
	}
	s.Start(context.Background(), chainRuleTopic(), assessment.LevelIntermediate, "sess-1", mismatch)
	waitForReply(t, s)

	system := mock.Calls[0].System
	for _, want := range []string{"d/dx (3x+1)^2", "2(3x+1)", "6(3x+1)"} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}

	// The first successful reply is recorded as a hint event.
	var count int
	row := st.DB().QueryRow("SELECT COUNT(*) FROM hint_events")
	if err := row.Scan(&count); err != nil {
		t.Fatalf("count hint events: %v", err)
	}
	if count != 1 {
		t.Errorf("hint events = %d, want 1", count)
	}
}

func TestReset_DropsConversation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "hi"})
	s := NewService(mock, nil, DefaultConfig())

	s.Start(context.Background(), chainRuleTopic(), assessment.LevelBeginner, "sess-1", nil)
	waitForReply(t, s)

	s.Reset()
	if len(s.Transcript()) != 0 {
		t.Error("transcript should be empty after reset")
	}
	if _, ok := s.ConsumeReply(); ok {
		t.Error("no reply should be pending after reset")
	}
}
