package geometry

import (
	"cmbridge/internal/webview/models"
)

// Rect is a resolved layer frame in logical screen coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// EdgeInsets are the device safe-area insets, one per screen edge.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// Screen captures the metrics the resolver needs: the full screen bounds and
// the current safe-area insets.
type Screen struct {
	Width  float64
	Height float64
	Insets EdgeInsets
}

// Resolve converts a normalized position (or the caller's custom rectangle)
// plus the safe-area preference into a concrete frame.
//
// Half-screen positions split the screen exactly in half; when the safe area
// is respected, the half adjacent to a screen edge gives up the inset on that
// edge. The custom rectangle is moved inward by the insets on each edge and
// clamped to the screen bounds.
func Resolve(cfg models.NormalizedConfig, screen Screen) Rect {
	insets := screen.Insets
	if !cfg.RespectsSafeArea {
		insets = EdgeInsets{}
	}

	switch cfg.Position {
	case models.PositionHalfScreenTop:
		return Rect{
			X:      insets.Left,
			Y:      insets.Top,
			Width:  screen.Width - insets.Left - insets.Right,
			Height: screen.Height/2 - insets.Top,
		}
	case models.PositionHalfScreenBottom:
		return Rect{
			X:      insets.Left,
			Y:      screen.Height / 2,
			Width:  screen.Width - insets.Left - insets.Right,
			Height: screen.Height/2 - insets.Bottom,
		}
	case models.PositionCustom:
		if cfg.CustomRect != nil {
			return customRect(*cfg.CustomRect, screen, insets)
		}
		// Normalization guarantees a rect for custom; a missing one means the
		// caller bypassed the normalizer, so render full-screen like platforms
		// without custom-rect support do.
		fallthrough
	default:
		return Rect{
			X:      insets.Left,
			Y:      insets.Top,
			Width:  screen.Width - insets.Left - insets.Right,
			Height: screen.Height - insets.Top - insets.Bottom,
		}
	}
}

func customRect(r models.WebViewRect, screen Screen, insets EdgeInsets) Rect {
	out := Rect{
		X:      r.X + insets.Left,
		Y:      r.Y + insets.Top,
		Width:  r.Width - insets.Left - insets.Right,
		Height: r.Height - insets.Top - insets.Bottom,
	}
	if out.X < 0 {
		out.X = 0
	}
	if out.Y < 0 {
		out.Y = 0
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	if out.X+out.Width > screen.Width {
		out.Width = screen.Width - out.X
	}
	if out.Y+out.Height > screen.Height {
		out.Height = screen.Height - out.Y
	}
	return out
}
