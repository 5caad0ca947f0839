// Package clock provides cancellable timers whose callbacks run on a single
// owner goroutine, so that interaction state is only ever touched serially.
package clock

import (
	"sync/atomic"
	"time"
)

// Timer is a pending callback. Stop reports whether it prevented the callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Implementations run callbacks on the same
// goroutine that handles input events.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real is a Clock backed by time.AfterFunc. Expired timers are handed to
// post, which must run the callback on the owner goroutine.
type Real struct {
	post func(func())
}

// New creates a Real clock that delivers callbacks through post.
func New(post func(func())) *Real {
	if post == nil {
		panic("clock.New: post function cannot be nil")
	}
	return &Real{post: post}
}

// Now returns the wall clock time.
func (c *Real) Now() time.Time { return time.Now() }

// AfterFunc schedules fn after d.
func (c *Real) AfterFunc(d time.Duration, fn func()) Timer {
	t := &realTimer{}
	t.timer = time.AfterFunc(d, func() {
		c.post(func() {
			// Stop may have raced with expiry; the flag is checked on the owner goroutine.
			if t.stopped.Load() {
				return
			}
			t.fired.Store(true)
			fn()
		})
	})
	return t
}

type realTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

func (t *realTimer) Stop() bool {
	t.timer.Stop()
	if t.fired.Load() {
		return false
	}
	return !t.stopped.Swap(true)
}
