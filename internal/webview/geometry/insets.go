package geometry

import (
	"context"
	"sync"

	dErrors "cmbridge/pkg/domain-errors"
)

// InsetsSource reads the device's current safe-area insets. Implementations
// may need to hop onto the platform UI thread; the read is synchronous from
// the bridge's point of view.
type InsetsSource interface {
	Insets(ctx context.Context) (EdgeInsets, error)
}

// StaticSource returns fixed insets, for tests and headless use.
type StaticSource EdgeInsets

func (s StaticSource) Insets(context.Context) (EdgeInsets, error) {
	return EdgeInsets(s), nil
}

// Runner executes work on the platform UI thread. RunSync blocks the calling
// goroutine until fn has run.
type Runner interface {
	RunSync(fn func())
	// OnUIThread reports whether the current goroutine is already executing a
	// UI-thread callback.
	OnUIThread() bool
}

// MainThreadSource reads insets by hopping onto the UI thread. The calling
// goroutine blocks until the value is available, with no timeout of its own:
// a hang on the UI thread hangs the caller until the context is cancelled.
//
// Calling from within a UI-thread callback already in progress would
// deadlock, so that case is rejected up front.
type MainThreadSource struct {
	runner Runner
	read   func() EdgeInsets

	mu     sync.Mutex
	cached EdgeInsets
	valid  bool
}

// NewMainThreadSource builds a source that runs read on the UI thread via
// runner.
func NewMainThreadSource(runner Runner, read func() EdgeInsets) *MainThreadSource {
	return &MainThreadSource{runner: runner, read: read}
}

func (m *MainThreadSource) Insets(ctx context.Context) (EdgeInsets, error) {
	if m.runner.OnUIThread() {
		return EdgeInsets{}, dErrors.New(dErrors.CodeReentrantCall, "safe-area read invoked from a UI-thread callback")
	}

	done := make(chan EdgeInsets, 1)
	go m.runner.RunSync(func() {
		done <- m.read()
	})

	select {
	case insets := <-done:
		m.mu.Lock()
		m.cached = insets
		m.valid = true
		m.mu.Unlock()
		return insets, nil
	case <-ctx.Done():
		return EdgeInsets{}, dErrors.Wrap(ctx.Err(), dErrors.CodeTimeout, "safe-area read abandoned")
	}
}

// Last returns the most recently observed insets, if any. Useful when the
// render layer needs a value while a fresh read is still in flight.
func (m *MainThreadSource) Last() (EdgeInsets, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cached, m.valid
}
