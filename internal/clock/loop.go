package clock

import (
	"context"
	"sync"
)

// Loop is a serial executor. Every task posted to it runs on the goroutine
// calling Run, one at a time, in post order.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with the given task buffer.
func NewLoop(buffer int) *Loop {
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Post queues fn. Tasks posted after Run returns are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// Run executes tasks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Clock returns a Real clock whose callbacks run on this loop.
func (l *Loop) Clock() *Real {
	return New(l.Post)
}
