package geometry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmbridge/internal/webview/models"
	dErrors "cmbridge/pkg/domain-errors"
)

var phone = Screen{
	Width:  390,
	Height: 844,
	Insets: EdgeInsets{Top: 47, Bottom: 34},
}

func normalized(position models.Position, rect *models.WebViewRect, safeArea bool) models.NormalizedConfig {
	return models.NormalizedConfig{
		Position:         position,
		CustomRect:       rect,
		RespectsSafeArea: safeArea,
	}
}

func TestResolveFullScreen(t *testing.T) {
	t.Run("ignoring safe area covers the whole screen", func(t *testing.T) {
		got := Resolve(normalized(models.PositionFullScreen, nil, false), phone)
		assert.Equal(t, Rect{X: 0, Y: 0, Width: 390, Height: 844}, got)
	})

	t.Run("respecting safe area insets every edge", func(t *testing.T) {
		got := Resolve(normalized(models.PositionFullScreen, nil, true), phone)
		assert.Equal(t, Rect{X: 0, Y: 47, Width: 390, Height: 844 - 47 - 34}, got)
	})
}

func TestResolveHalfScreen(t *testing.T) {
	t.Run("top half splits exactly in half", func(t *testing.T) {
		got := Resolve(normalized(models.PositionHalfScreenTop, nil, false), phone)
		assert.Equal(t, Rect{X: 0, Y: 0, Width: 390, Height: 422}, got)
	})

	t.Run("top half gives up the top inset", func(t *testing.T) {
		got := Resolve(normalized(models.PositionHalfScreenTop, nil, true), phone)
		assert.Equal(t, Rect{X: 0, Y: 47, Width: 390, Height: 422 - 47}, got)
	})

	t.Run("bottom half starts at the midline", func(t *testing.T) {
		got := Resolve(normalized(models.PositionHalfScreenBottom, nil, false), phone)
		assert.Equal(t, Rect{X: 0, Y: 422, Width: 390, Height: 422}, got)
	})

	t.Run("bottom half gives up the bottom inset", func(t *testing.T) {
		got := Resolve(normalized(models.PositionHalfScreenBottom, nil, true), phone)
		assert.Equal(t, Rect{X: 0, Y: 422, Width: 390, Height: 422 - 34}, got)
	})
}

func TestResolveCustom(t *testing.T) {
	rect := &models.WebViewRect{X: 20, Y: 100, Width: 350, Height: 500}

	t.Run("caller rect applies verbatim without safe area", func(t *testing.T) {
		got := Resolve(normalized(models.PositionCustom, rect, false), phone)
		assert.Equal(t, Rect{X: 20, Y: 100, Width: 350, Height: 500}, got)
	})

	t.Run("caller rect moves inward per edge with safe area", func(t *testing.T) {
		got := Resolve(normalized(models.PositionCustom, rect, true), phone)
		assert.Equal(t, Rect{X: 20, Y: 147, Width: 350, Height: 500 - 47 - 34}, got)
	})

	t.Run("oversized rect is clamped to screen bounds", func(t *testing.T) {
		big := &models.WebViewRect{X: 300, Y: 800, Width: 500, Height: 500}
		got := Resolve(normalized(models.PositionCustom, big, false), phone)
		assert.Equal(t, Rect{X: 300, Y: 800, Width: 90, Height: 44}, got)
	})

	t.Run("missing rect renders full-screen", func(t *testing.T) {
		got := Resolve(normalized(models.PositionCustom, nil, false), phone)
		assert.Equal(t, Rect{X: 0, Y: 0, Width: 390, Height: 844}, got)
	})
}

// fakeRunner executes UI-thread work inline on a dedicated goroutine.
type fakeRunner struct {
	onUI bool
}

func (r *fakeRunner) RunSync(fn func()) { fn() }
func (r *fakeRunner) OnUIThread() bool  { return r.onUI }

func TestMainThreadSource(t *testing.T) {
	t.Run("reads synchronously via the runner", func(t *testing.T) {
		src := NewMainThreadSource(&fakeRunner{}, func() EdgeInsets {
			return EdgeInsets{Top: 47, Bottom: 34}
		})
		insets, err := src.Insets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, EdgeInsets{Top: 47, Bottom: 34}, insets)

		last, ok := src.Last()
		assert.True(t, ok)
		assert.Equal(t, insets, last)
	})

	t.Run("rejects reentrant reads from the UI thread", func(t *testing.T) {
		src := NewMainThreadSource(&fakeRunner{onUI: true}, func() EdgeInsets { return EdgeInsets{} })
		_, err := src.Insets(context.Background())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeReentrantCall))
	})

	t.Run("abandons the read when the context is cancelled", func(t *testing.T) {
		blocked := make(chan struct{})
		src := NewMainThreadSource(&stuckRunner{release: blocked}, func() EdgeInsets { return EdgeInsets{} })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Insets(ctx)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
		close(blocked)
	})
}

// stuckRunner simulates a hung UI thread until released.
type stuckRunner struct {
	release chan struct{}
}

func (r *stuckRunner) RunSync(fn func()) {
	<-r.release
	fn()
}

func (r *stuckRunner) OnUIThread() bool { return false }
