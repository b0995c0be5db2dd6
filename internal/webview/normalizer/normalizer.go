package normalizer

import (
	"fmt"
	"log/slog"

	"cmbridge/internal/webview/models"
	dErrors "cmbridge/pkg/domain-errors"
)

// Capabilities describes what the target platform's render layer can honor.
// A missing capability is never an error: the normalizer emits an advisory
// warning and the render layer applies the documented fallback.
type Capabilities struct {
	Platform        string
	CustomRect      bool
	Blur            bool
	BackgroundStyle bool
}

// Platform capability presets.
var (
	CapabilitiesIOS = Capabilities{
		Platform:        "ios",
		CustomRect:      true,
		Blur:            true,
		BackgroundStyle: true,
	}
	CapabilitiesAndroid = Capabilities{
		Platform:        "android",
		CustomRect:      true,
		Blur:            false,
		BackgroundStyle: true,
	}
)

// Warning is a non-fatal capability advisory. The requested feature is kept
// in the normalized config; the render layer substitutes the fallback.
type Warning struct {
	Feature  string
	Fallback string
	Message  string
}

func (w Warning) String() string {
	return w.Message
}

// Defaults applied when the caller leaves a field unset.
const (
	DefaultCornerRadius = 5.0
	DefaultOpacity      = 0.5
)

// Normalizer validates and fills a declarative WebViewConfig for one target
// platform. All failures are synchronous caller errors raised before any call
// crosses the bridge; capability gaps degrade with a warning instead.
type Normalizer struct {
	caps   Capabilities
	logger *slog.Logger
}

// Option configures the Normalizer.
type Option func(*Normalizer)

// WithLogger sets a logger used to surface capability warnings as they are
// produced. Warnings are also returned to the caller either way.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// New builds a Normalizer for the given platform capabilities.
func New(caps Capabilities, opts ...Option) *Normalizer {
	n := &Normalizer{caps: caps}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize produces a fully-populated configuration from a partially
// populated one, or a validation error.
func (n *Normalizer) Normalize(cfg models.WebViewConfig) (models.NormalizedConfig, []Warning, error) {
	var warnings []Warning

	position, warn, err := n.resolvePosition(cfg)
	if err != nil {
		return models.NormalizedConfig{}, nil, err
	}
	warnings = append(warnings, warn...)

	background, warn, err := n.resolveBackground(cfg.BackgroundStyle)
	if err != nil {
		return models.NormalizedConfig{}, nil, err
	}
	warnings = append(warnings, warn...)

	normalized := models.NormalizedConfig{
		Position:                 position,
		CustomRect:               cfg.CustomRect,
		CornerRadius:             DefaultCornerRadius,
		RespectsSafeArea:         true,
		AllowsOrientationChanges: true,
		BackgroundStyle:          background,
	}
	if cfg.CornerRadius != nil {
		normalized.CornerRadius = *cfg.CornerRadius
	}
	if cfg.RespectsSafeArea != nil {
		normalized.RespectsSafeArea = *cfg.RespectsSafeArea
	}
	if cfg.AllowsOrientationChanges != nil {
		normalized.AllowsOrientationChanges = *cfg.AllowsOrientationChanges
	}

	for _, w := range warnings {
		n.warn(w)
	}
	return normalized, warnings, nil
}

func (n *Normalizer) resolvePosition(cfg models.WebViewConfig) (models.Position, []Warning, error) {
	position := cfg.Position
	if position == "" {
		position = models.PositionFullScreen
	}
	if !position.IsValid() {
		return "", nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("invalid position: %q", cfg.Position))
	}
	if position != models.PositionCustom {
		return position, nil, nil
	}
	if cfg.CustomRect == nil {
		return "", nil, dErrors.New(dErrors.CodeValidation, "customRect is required when position is custom")
	}
	if !n.caps.CustomRect {
		return position, []Warning{{
			Feature:  "customRect",
			Fallback: string(models.PositionFullScreen),
			Message:  fmt.Sprintf("platform %s does not support custom rects, layer renders full-screen", n.caps.Platform),
		}}, nil
	}
	return position, nil, nil
}

func (n *Normalizer) resolveBackground(style *models.BackgroundStyle) (models.ResolvedBackgroundStyle, []Warning, error) {
	if style == nil {
		defaulted := models.NewDimmed(nil, nil)
		style = &defaulted
	}

	var warnings []Warning
	if !n.caps.BackgroundStyle && style.Kind != models.BackgroundDimmed {
		warnings = append(warnings, Warning{
			Feature:  "backgroundStyle",
			Fallback: string(models.BackgroundDimmed),
			Message:  fmt.Sprintf("platform %s does not support background styles, dimmed is used regardless", n.caps.Platform),
		})
	}

	switch style.Kind {
	case models.BackgroundDimmed:
		color := models.Black()
		if style.Color != nil {
			resolved, err := style.Color.Resolve()
			if err != nil {
				return models.ResolvedBackgroundStyle{}, nil, err
			}
			color = resolved
		}
		opacity := DefaultOpacity
		if style.Opacity != nil {
			opacity = *style.Opacity
		}
		return models.ResolvedBackgroundStyle{Kind: models.BackgroundDimmed, Color: color, Opacity: opacity}, warnings, nil

	case models.BackgroundColor:
		if style.Color == nil {
			return models.ResolvedBackgroundStyle{}, nil, dErrors.New(dErrors.CodeValidation, "color is required for the color background style")
		}
		resolved, err := style.Color.Resolve()
		if err != nil {
			return models.ResolvedBackgroundStyle{}, nil, err
		}
		return models.ResolvedBackgroundStyle{Kind: models.BackgroundColor, Color: resolved}, warnings, nil

	case models.BackgroundBlur:
		blur := style.Blur
		if blur == "" {
			blur = models.BlurDark
		}
		if !blur.IsValid() {
			return models.ResolvedBackgroundStyle{}, nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("invalid blur style: %q", style.Blur))
		}
		if !n.caps.Blur {
			warnings = append(warnings, Warning{
				Feature:  "blur",
				Fallback: string(models.BackgroundDimmed),
				Message:  fmt.Sprintf("platform %s does not support blur, layer falls back to dimmed", n.caps.Platform),
			})
		}
		return models.ResolvedBackgroundStyle{Kind: models.BackgroundBlur, Blur: blur}, warnings, nil

	case models.BackgroundNone:
		return models.ResolvedBackgroundStyle{Kind: models.BackgroundNone}, warnings, nil
	}

	return models.ResolvedBackgroundStyle{}, nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unrecognized background style: %q", style.Kind))
}

func (n *Normalizer) warn(w Warning) {
	if n.logger == nil {
		return
	}
	n.logger.Warn("webview capability degraded",
		"platform", n.caps.Platform,
		"feature", w.Feature,
		"fallback", w.Fallback,
	)
}
