package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockedProvider hangs until its context is cancelled.
type blockedProvider struct{}

func (b *blockedProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockedProvider) ModelID() string { return "blocked" }

// deafProvider hangs forever and ignores its context entirely.
type deafProvider struct {
	release chan struct{}
}

func (d *deafProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	<-d.release
	return &Response{Text: "late"}, nil
}

func (d *deafProvider) ModelID() string { return "deaf" }

func TestTimeout_PassthroughOnSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestTimeout_CancelsHungProvider(t *testing.T) {
	p := WithTimeout(&blockedProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("call took %v, deadline did not bound it", elapsed)
	}
}

func TestTimeout_ReturnsEvenWhenContextIgnored(t *testing.T) {
	deaf := &deafProvider{release: make(chan struct{})}
	defer close(deaf.release)
	p := WithTimeout(deaf, 20*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
}

func TestTimeout_ZeroDisablesBound(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithTimeout(mock, 0)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil || resp.Text != "ok" {
		t.Fatalf("resp = %v, err = %v", resp, err)
	}
}
