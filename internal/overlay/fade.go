package overlay

import (
	"time"

	"github.com/phinze/hoverdeck/internal/clock"
)

// frameInterval is the step between opacity updates during a fade.
const frameInterval = 16 * time.Millisecond

// fade animates opacity on a renderer. Starting a fade cancels the one in
// flight and continues from whatever opacity was last applied.
type fade struct {
	clock    clock.Clock
	renderer Renderer

	current float64

	from, to float64
	start    time.Time
	duration time.Duration
	done     func()
	timer    clock.Timer

	// started counts fades begun, for observing restarts.
	started int
}

// run starts a fade towards target over d and calls done when it lands.
// A zero duration applies the target immediately.
func (f *fade) run(target float64, d time.Duration, done func()) {
	f.cancel()
	f.started++

	f.from = f.current
	f.to = target
	f.start = f.clock.Now()
	f.duration = d
	f.done = done

	if d <= 0 {
		f.finish()
		return
	}
	f.timer = f.clock.AfterFunc(frameInterval, f.step)
}

// cancel stops an in-flight fade without calling its completion.
func (f *fade) cancel() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.done = nil
}

func (f *fade) step() {
	f.timer = nil

	elapsed := f.clock.Now().Sub(f.start)
	if elapsed >= f.duration {
		f.finish()
		return
	}

	t := float64(elapsed) / float64(f.duration)
	f.apply(f.from + (f.to-f.from)*t)
	f.timer = f.clock.AfterFunc(frameInterval, f.step)
}

func (f *fade) finish() {
	f.apply(f.to)
	done := f.done
	f.done = nil
	if done != nil {
		done()
	}
}

func (f *fade) apply(v float64) {
	f.current = v
	f.renderer.SetOpacity(v)
}

// running reports whether a timed fade is still in progress.
func (f *fade) running() bool { return f.timer != nil }
