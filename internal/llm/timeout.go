package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that bounds each Generate call with a
// deadline, retries included.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-request deadline. A zero or
// negative duration disables the bound.
func WithTimeout(p Provider, d time.Duration) Provider {
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if t.timeout <= 0 {
		return t.inner.Generate(ctx, req)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	type result struct {
		resp *Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := t.inner.Generate(ctx, req)
		done <- result{resp, err}
	}()

	// The deadline must win even when the inner provider ignores its
	// context and hangs.
	select {
	case r := <-done:
		return r.resp, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
