// Package tutor runs the in-lesson conversation with the LLM. Replies are
// generated asynchronously so the TUI can keep rendering; when the provider
// is unreachable the learner gets a canned response instead of an error.
package tutor

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/abhisek/derivio/internal/assessment"
	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/lesson"
	"github.com/abhisek/derivio/internal/llm"
	"github.com/abhisek/derivio/internal/store"
)

// Fallback replies used when the provider fails.
const (
	fallbackGreeting = "Hi! I'm your tutor. Which part of this problem is giving you trouble?"
	fallbackReply    = "I can't reach the tutoring service right now. Try re-reading the worked example and pay close attention to each step."
)

// Config tunes reply generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the tuning used in the app.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.7,
	}
}

// Service manages one tutoring conversation at a time.
type Service struct {
	provider llm.Provider
	events   store.EventRepo // may be nil
	cfg      Config

	mu         sync.Mutex
	topic      catalog.Topic
	level      assessment.Level
	sessionID  string
	mismatch   *lesson.Mismatch
	transcript []llm.Message
	pending    string
	ready      bool
	busy       bool
	hintLogged bool
}

// NewService creates a tutor backed by the given provider.
func NewService(provider llm.Provider, events store.EventRepo, cfg Config) *Service {
	return &Service{provider: provider, events: events, cfg: cfg}
}

// Start opens a conversation about the topic, optionally anchored to a wrong
// exercise answer, and requests the opening message. Any previous
// conversation is discarded.
func (s *Service) Start(ctx context.Context, topic catalog.Topic, level assessment.Level, sessionID string, mismatch *lesson.Mismatch) {
	s.mu.Lock()
	s.topic = topic
	s.level = level
	s.sessionID = sessionID
	s.mismatch = mismatch
	s.transcript = nil
	s.pending = ""
	s.ready = false
	s.hintLogged = false
	s.mu.Unlock()

	s.request(ctx, fallbackGreeting)
}

// Send appends the learner's message and requests a reply.
func (s *Service) Send(ctx context.Context, text string) {
	s.mu.Lock()
	s.transcript = append(s.transcript, llm.Message{Role: llm.RoleUser, Content: text})
	s.mu.Unlock()

	s.request(ctx, fallbackReply)
}

// ConsumeReply returns the tutor's reply if one is ready and appends it to
// the transcript. Returns ("", false) while generation is still in flight.
func (s *Service) ConsumeReply() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", false
	}
	reply := s.pending
	s.transcript = append(s.transcript, llm.Message{Role: llm.RoleAssistant, Content: reply})
	s.pending = ""
	s.ready = false
	return reply, true
}

// Busy reports whether a reply is being generated.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Transcript returns a copy of the conversation so far.
func (s *Service) Transcript() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.Message(nil), s.transcript...)
}

// Reset drops the current conversation.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topic = catalog.Topic{}
	s.mismatch = nil
	s.transcript = nil
	s.pending = ""
	s.ready = false
	s.hintLogged = false
}

// request generates the next reply asynchronously. Only one request is in
// flight at a time; fallback is used when the provider fails.
func (s *Service) request(ctx context.Context, fallback string) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return
	}
	s.busy = true
	req := llm.Request{
		System:      buildSystemPrompt(s.topic, s.level, s.mismatch),
		Messages:    append([]llm.Message(nil), s.transcript...),
		Hint:        llm.ModelSmart,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
	s.mu.Unlock()

	if len(req.Messages) == 0 {
		// Providers reject empty conversations; seed the opening turn.
		req.Messages = []llm.Message{{Role: llm.RoleUser, Content: openingUserTurn}}
	}

	go func() {
		ctx = llm.WithPurpose(ctx, "tutor")
		resp, err := s.provider.Generate(ctx, req)

		reply := fallback
		if err == nil && resp.Text != "" {
			reply = resp.Text
		}

		s.mu.Lock()
		logHint := err == nil && s.mismatch != nil && !s.hintLogged
		if logHint {
			s.hintLogged = true
		}
		mismatch := s.mismatch
		sessionID := s.sessionID
		topicID := s.topic.ID
		s.mu.Unlock()

		if logHint && s.events != nil {
			hintErr := s.events.AppendHint(ctx, store.HintEventData{
				SessionID:    sessionID,
				TopicID:      topicID,
				QuestionText: mismatch.Question,
				HintText:     reply,
			})
			if hintErr != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to log hint event: %v\n", hintErr)
			}
		}

		s.mu.Lock()
		s.pending = reply
		s.ready = true
		s.busy = false
		s.mu.Unlock()
	}()
}
