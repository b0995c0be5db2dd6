package normalizer

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"cmbridge/internal/webview/models"
	dErrors "cmbridge/pkg/domain-errors"
)

// NormalizerSuite covers the validation and default-fill rules of the config
// normalizer, including capability-gap warnings.
type NormalizerSuite struct {
	suite.Suite
}

func TestNormalizerSuite(t *testing.T) {
	suite.Run(t, new(NormalizerSuite))
}

func (s *NormalizerSuite) newIOS() *Normalizer {
	return New(CapabilitiesIOS, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func (s *NormalizerSuite) TestEmptyConfigFillsAllDefaults() {
	normalized, warnings, err := s.newIOS().Normalize(models.WebViewConfig{})
	s.Require().NoError(err)
	s.Empty(warnings)

	s.Equal(models.PositionFullScreen, normalized.Position)
	s.Equal(5.0, normalized.CornerRadius)
	s.True(normalized.RespectsSafeArea)
	s.True(normalized.AllowsOrientationChanges)
	s.Equal(models.BackgroundDimmed, normalized.BackgroundStyle.Kind)
	s.Equal("black", normalized.BackgroundStyle.Color.Raw)
	s.True(normalized.BackgroundStyle.Color.Resolved())
	s.Equal(0.5, normalized.BackgroundStyle.Opacity)
}

func (s *NormalizerSuite) TestHalfScreenBottomScenario() {
	normalized, warnings, err := s.newIOS().Normalize(models.WebViewConfig{Position: models.PositionHalfScreenBottom})
	s.Require().NoError(err)
	s.Empty(warnings)

	s.Equal(models.PositionHalfScreenBottom, normalized.Position)
	s.Equal(5.0, normalized.CornerRadius)
	s.True(normalized.RespectsSafeArea)
	s.True(normalized.AllowsOrientationChanges)
	s.Equal(models.BackgroundDimmed, normalized.BackgroundStyle.Kind)
	s.Equal("black", normalized.BackgroundStyle.Color.Raw)
	s.Equal(0.5, normalized.BackgroundStyle.Opacity)
}

func (s *NormalizerSuite) TestExplicitFalseSurvivesNormalization() {
	f := false
	radius := 12.0
	normalized, _, err := s.newIOS().Normalize(models.WebViewConfig{
		CornerRadius:             &radius,
		RespectsSafeArea:         &f,
		AllowsOrientationChanges: &f,
	})
	s.Require().NoError(err)
	s.Equal(12.0, normalized.CornerRadius)
	s.False(normalized.RespectsSafeArea)
	s.False(normalized.AllowsOrientationChanges)
}

func (s *NormalizerSuite) TestInvalidPositionRejected() {
	_, _, err := s.newIOS().Normalize(models.WebViewConfig{Position: "bottomSheet"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *NormalizerSuite) TestCustomPositionRequiresRect() {
	_, _, err := s.newIOS().Normalize(models.WebViewConfig{Position: models.PositionCustom})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *NormalizerSuite) TestCustomRectAccepted() {
	rect := models.WebViewRect{X: 10, Y: 20, Width: 300, Height: 400}
	normalized, warnings, err := s.newIOS().Normalize(models.WebViewConfig{
		Position:   models.PositionCustom,
		CustomRect: &rect,
	})
	s.Require().NoError(err)
	s.Empty(warnings)
	s.Equal(models.PositionCustom, normalized.Position)
	s.Equal(&rect, normalized.CustomRect)
}

func (s *NormalizerSuite) TestCustomRectWithoutSupportWarns() {
	caps := Capabilities{Platform: "tvos", Blur: true, BackgroundStyle: true}
	rect := models.WebViewRect{Width: 100, Height: 100}
	normalized, warnings, err := New(caps).Normalize(models.WebViewConfig{
		Position:   models.PositionCustom,
		CustomRect: &rect,
	})
	s.Require().NoError(err)
	// Position survives; the render layer substitutes full-screen.
	s.Equal(models.PositionCustom, normalized.Position)
	s.Require().Len(warnings, 1)
	s.Equal("customRect", warnings[0].Feature)
	s.Equal("fullScreen", warnings[0].Fallback)
}

func (s *NormalizerSuite) TestColorStyleRequiresColor() {
	style := models.NewColored(nil)
	_, _, err := s.newIOS().Normalize(models.WebViewConfig{BackgroundStyle: &style})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *NormalizerSuite) TestColorStyleResolvesColor() {
	style := models.NewColored(models.NamedColor("#336699"))
	normalized, _, err := s.newIOS().Normalize(models.WebViewConfig{BackgroundStyle: &style})
	s.Require().NoError(err)
	s.Equal(models.BackgroundColor, normalized.BackgroundStyle.Kind)
	s.Equal(uint8(0x33), normalized.BackgroundStyle.Color.R)
	s.Equal(uint8(0x66), normalized.BackgroundStyle.Color.G)
	s.Equal(uint8(0x99), normalized.BackgroundStyle.Color.B)
}

func (s *NormalizerSuite) TestUnresolvableColorFails() {
	style := models.NewDimmed(models.NamedColor("chartreuse"), nil)
	_, _, err := s.newIOS().Normalize(models.WebViewConfig{BackgroundStyle: &style})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *NormalizerSuite) TestBlurDefaultsToDark() {
	style := models.BackgroundStyle{Kind: models.BackgroundBlur}
	normalized, warnings, err := s.newIOS().Normalize(models.WebViewConfig{BackgroundStyle: &style})
	s.Require().NoError(err)
	s.Empty(warnings)
	s.Equal(models.BlurDark, normalized.BackgroundStyle.Blur)
}

func (s *NormalizerSuite) TestInvalidBlurStyleRejected() {
	style := models.BackgroundStyle{Kind: models.BackgroundBlur, Blur: "frosted"}
	_, _, err := s.newIOS().Normalize(models.WebViewConfig{BackgroundStyle: &style})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *NormalizerSuite) TestBlurWithoutSupportWarns() {
	style := models.NewBlur(models.BlurLight)
	normalized, warnings, err := New(CapabilitiesAndroid).Normalize(models.WebViewConfig{BackgroundStyle: &style})
	s.Require().NoError(err)
	s.Equal(models.BlurLight, normalized.BackgroundStyle.Blur)
	s.Require().Len(warnings, 1)
	s.Equal("blur", warnings[0].Feature)
	s.Equal("dimmed", warnings[0].Fallback)
}

func (s *NormalizerSuite) TestNoBackgroundStyleSupportWarns() {
	caps := Capabilities{Platform: "watchos", CustomRect: true, Blur: false}
	style := models.NewNone()
	_, warnings, err := New(caps).Normalize(models.WebViewConfig{BackgroundStyle: &style})
	s.Require().NoError(err)
	s.Require().Len(warnings, 1)
	s.Equal("backgroundStyle", warnings[0].Feature)
	s.Equal("dimmed", warnings[0].Fallback)
}

func (s *NormalizerSuite) TestUnrecognizedBackgroundTagRejected() {
	style := models.BackgroundStyle{Kind: "gradient"}
	_, _, err := s.newIOS().Normalize(models.WebViewConfig{BackgroundStyle: &style})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
