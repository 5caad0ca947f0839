package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_FiresInOrder(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	var got []string
	m.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(200*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, m.Pending())

	m.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, time.Unix(0, 0).Add(300*time.Millisecond), m.Now())
}

func TestManual_StopPreventsCallback(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing to cancel")

	m.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManual_NestedScheduling(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			m.AfterFunc(10*time.Millisecond, tick)
		}
	}
	m.AfterFunc(10*time.Millisecond, tick)

	m.Advance(35 * time.Millisecond)
	assert.Equal(t, 3, count)

	m.Advance(time.Second)
	assert.Equal(t, 5, count)
	assert.Zero(t, m.Pending())
}

func TestLoop_RunsPostedTasksSerially(t *testing.T) {
	loop := NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	results := make(chan int, 3)
	for i := 0; i < 3; i++ {
		n := i
		loop.Post(func() { results <- n })
	}

	for i := 0; i < 3; i++ {
		select {
		case n := <-results:
			assert.Equal(t, i, n)
		case <-time.After(time.Second):
			t.Fatal("task did not run")
		}
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	// Posting after shutdown must not block.
	loop.Post(func() { t.Error("task ran after loop stopped") })
}

func TestReal_TimerRunsOnLoop(t *testing.T) {
	loop := NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	clk := loop.Clock()
	fired := make(chan struct{})
	clk.AfterFunc(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestReal_StopBeforeExpiry(t *testing.T) {
	var posted []func()
	clk := New(func(fn func()) { posted = append(posted, fn) })

	timer := clk.AfterFunc(time.Hour, func() { t.Error("stopped timer fired") })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.Empty(t, posted)
}

func TestNew_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
