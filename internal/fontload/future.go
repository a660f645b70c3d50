package fontload

import (
	"context"
	"fmt"
)

type result struct {
	font Font
	err  error
}

// Future is the single-shot result of a font load. The load runs on its own
// goroutine; the continuations run on whichever goroutine calls Dispatch,
// which is the render loop. Exactly one of them runs, exactly once.
type Future struct {
	ch        chan result
	settled   bool
	onSuccess func(Font)
	onFailure func(error)
}

func newFuture() *Future {
	return &Future{ch: make(chan result, 1)}
}

// Load starts fetching and parsing url. There is no retry and no timeout
// beyond what ctx imposes.
func Load(ctx context.Context, c *Client, url string) *Future {
	f := newFuture()
	go func() {
		data, err := c.Fetch(ctx, url)
		if err != nil {
			f.ch <- result{err: err}
			return
		}
		font, err := Parse(data)
		if err != nil {
			err = fmt.Errorf("parse font %s: %w", url, err)
		}
		f.ch <- result{font: font, err: err}
	}()
	return f
}

// Resolved returns a future that succeeds with font.
func Resolved(font Font) *Future {
	f := newFuture()
	f.ch <- result{font: font}
	return f
}

// Rejected returns a future that fails with err.
func Rejected(err error) *Future {
	f := newFuture()
	f.ch <- result{err: err}
	return f
}

// Then sets the continuations. Call it before the first Dispatch; a later
// call replaces the earlier pair.
func (f *Future) Then(onSuccess func(Font), onFailure func(error)) *Future {
	f.onSuccess = onSuccess
	f.onFailure = onFailure
	return f
}

// Dispatch runs the matching continuation if the result has arrived and no
// continuation has run yet. It never blocks and reports whether one ran.
func (f *Future) Dispatch() bool {
	if f.settled {
		return false
	}
	select {
	case r := <-f.ch:
		f.settled = true
		if r.err != nil {
			if f.onFailure != nil {
				f.onFailure(r.err)
			}
			return true
		}
		if f.onSuccess != nil {
			f.onSuccess(r.font)
		}
		return true
	default:
		return false
	}
}

// Settled reports whether a continuation has run.
func (f *Future) Settled() bool {
	return f.settled
}
