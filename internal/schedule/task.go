package schedule

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the poll cycle of the player
const DefaultInterval = time.Second

// Dispatcher runs fn on the thread that owns the UI. fyne.Do is one.
type Dispatcher func(fn func())

// Direct runs fn on the calling goroutine
func Direct(fn func()) { fn() }

// Task is a repeating fixed-delay job that can be cancelled
type Task struct {
	interval time.Duration
	dispatch Dispatcher
	run      func()
	onPanic  func(recovered any)

	mu      sync.Mutex
	timer   *time.Timer
	started bool
	stopped bool
	runs    int
}

// NewTask creates a task that calls run every interval through dispatch
func NewTask(interval time.Duration, dispatch Dispatcher, run func()) *Task {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if dispatch == nil {
		dispatch = Direct
	}
	return &Task{
		interval: interval,
		dispatch: dispatch,
		run:      run,
	}
}

// OnPanic sets a hook receiving panics recovered from run. Without a hook
// panics are swallowed; the task keeps firing either way.
func (t *Task) OnPanic(fn func(recovered any)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onPanic = fn
}

// Start arms the first run one interval from now. Cancelling ctx stops the task.
func (t *Task) Start(ctx context.Context) {
	t.mu.Lock()
	if t.started || t.stopped {
		t.mu.Unlock()
		return
	}
	t.started = true
	t.timer = time.AfterFunc(t.interval, t.fire)
	t.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			t.Stop()
		}()
	}
}

// Stop cancels the pending run; a run in progress finishes but is not re-armed
func (t *Task) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
	}
}

// Stopped reports whether Stop was called
func (t *Task) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// runCount returns how many times run has been invoked
func (t *Task) runCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runs
}

func (t *Task) fire() {
	if t.Stopped() {
		return
	}
	t.dispatch(func() {
		defer t.rearm()
		defer t.recoverPanic()

		t.mu.Lock()
		if t.stopped {
			t.mu.Unlock()
			return
		}
		t.runs++
		t.mu.Unlock()

		t.run()
	})
}

func (t *Task) recoverPanic() {
	if r := recover(); r != nil {
		t.mu.Lock()
		hook := t.onPanic
		t.mu.Unlock()
		if hook != nil {
			hook(r)
		}
	}
}

// rearm schedules the next run exactly one interval after this one ended
func (t *Task) rearm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.timer = time.AfterFunc(t.interval, t.fire)
}
