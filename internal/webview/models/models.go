package models

// WebViewRect is a caller-supplied layer rectangle in logical coordinates,
// before any safe-area adjustment.
type WebViewRect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// BackgroundStyle is a closed sum over the four background variants. Exactly
// one variant is active, tagged by Kind; fields not belonging to the active
// variant stay nil/zero. Construction goes through the factory functions
// below, which fill defaults only and never validate.
type BackgroundStyle struct {
	Kind    BackgroundStyleKind `json:"type" yaml:"type"`
	Color   *Color              `json:"color,omitempty" yaml:"color,omitempty"`
	Opacity *float64            `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Blur    BlurStyle           `json:"blurEffectStyle,omitempty" yaml:"blur_effect_style,omitempty"`
}

// NewDimmed builds a dimmed background. A nil color or opacity is left unset
// and resolved to black/0.5 by the normalizer.
func NewDimmed(color *Color, opacity *float64) BackgroundStyle {
	return BackgroundStyle{Kind: BackgroundDimmed, Color: color, Opacity: opacity}
}

// NewColored builds a solid-color background. The color is semantically
// required, but enforcement is the normalizer's job, not the factory's.
func NewColored(color *Color) BackgroundStyle {
	return BackgroundStyle{Kind: BackgroundColor, Color: color}
}

// NewBlur builds a blur background, defaulting the material to dark.
func NewBlur(style BlurStyle) BackgroundStyle {
	if style == "" {
		style = BlurDark
	}
	return BackgroundStyle{Kind: BackgroundBlur, Blur: style}
}

// NewNone builds a background-less style.
func NewNone() BackgroundStyle {
	return BackgroundStyle{Kind: BackgroundNone}
}

// WebViewConfig is the declarative consent-layer configuration. Pointer-typed
// fields distinguish "unset, apply default" from an explicit zero value; the
// normalizer produces the fully-populated form.
//
// Invariant: Position == custom requires CustomRect; absence is a caller error.
type WebViewConfig struct {
	Position                 Position         `json:"position" yaml:"position"`
	CustomRect               *WebViewRect     `json:"customRect,omitempty" yaml:"custom_rect,omitempty"`
	CornerRadius             *float64         `json:"cornerRadius,omitempty" yaml:"corner_radius,omitempty"`
	RespectsSafeArea         *bool            `json:"respectsSafeArea,omitempty" yaml:"respects_safe_area,omitempty"`
	AllowsOrientationChanges *bool            `json:"allowsOrientationChanges,omitempty" yaml:"allows_orientation_changes,omitempty"`
	BackgroundStyle          *BackgroundStyle `json:"backgroundStyle,omitempty" yaml:"background_style,omitempty"`
}

// NormalizedConfig is the fully-populated result of normalization. Every
// field carries a concrete value; colors are resolved to their native
// representation.
type NormalizedConfig struct {
	Position                 Position
	CustomRect               *WebViewRect
	CornerRadius             float64
	RespectsSafeArea         bool
	AllowsOrientationChanges bool
	BackgroundStyle          ResolvedBackgroundStyle
}

// ResolvedBackgroundStyle is a BackgroundStyle with all defaults applied and
// colors resolved. For the dimmed and color variants Color is always set;
// for dimmed Opacity is always set.
type ResolvedBackgroundStyle struct {
	Kind    BackgroundStyleKind
	Color   Color
	Opacity float64
	Blur    BlurStyle
}
