package service

// Unit tests for the bridge call surface.
//
// The call surface is pass-through by design, so these tests focus on the two
// things it owns: local validation raised before any native call, and
// faithful propagation of native-SDK failures and results.

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cmbridge/internal/bridge/service/mocks"
	consent "cmbridge/internal/consent/models"
	"cmbridge/internal/webview/geometry"
	webview "cmbridge/internal/webview/models"
	"cmbridge/internal/webview/normalizer"
	dErrors "cmbridge/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	sdk     *mocks.MockConsentSDK
	service *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sdk = mocks.NewMockConsentSDK(s.ctrl)
	s.service = New(
		s.sdk,
		normalizer.New(normalizer.CapabilitiesIOS),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestSetUrlConfig_ValidationBeforeBridge() {
	// No SDK expectation: an invalid config must never cross the bridge.
	err := s.service.SetUrlConfig(context.Background(), consent.UrlConfig{Domain: "delivery.consentmanager.net"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestSetUrlConfig_ForwardsVerbatim() {
	cfg := consent.UrlConfig{ID: "09cb5dca91e6b", Domain: "delivery.consentmanager.net", Language: "EN", AppName: "CMDemoApp", NoHash: true}
	s.sdk.EXPECT().SetUrlConfig(gomock.Any(), cfg).Return(nil)

	s.NoError(s.service.SetUrlConfig(context.Background(), cfg))
}

func (s *ServiceSuite) TestSetWebViewConfig_NormalizesBeforeForwarding() {
	var forwarded webview.NormalizedConfig
	s.sdk.EXPECT().
		SetWebViewConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg webview.NormalizedConfig) error {
			forwarded = cfg
			return nil
		})

	err := s.service.SetWebViewConfig(context.Background(), webview.WebViewConfig{Position: webview.PositionHalfScreenBottom})
	s.Require().NoError(err)

	s.Equal(webview.PositionHalfScreenBottom, forwarded.Position)
	s.Equal(5.0, forwarded.CornerRadius)
	s.True(forwarded.RespectsSafeArea)
	s.True(forwarded.AllowsOrientationChanges)
	s.Equal(webview.BackgroundDimmed, forwarded.BackgroundStyle.Kind)
	s.Equal(0.5, forwarded.BackgroundStyle.Opacity)
}

func (s *ServiceSuite) TestSetWebViewConfig_ValidationBeforeBridge() {
	err := s.service.SetWebViewConfig(context.Background(), webview.WebViewConfig{Position: webview.PositionCustom})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestSetATTStatus() {
	s.Run("valid statuses forward the enum", func() {
		for raw, want := range map[int]consent.ATTStatus{
			0: consent.ATTNotDetermined,
			1: consent.ATTRestricted,
			2: consent.ATTDenied,
			3: consent.ATTAuthorized,
		} {
			s.sdk.EXPECT().SetATTStatus(gomock.Any(), want).Return(nil)
			s.NoError(s.service.SetATTStatus(context.Background(), raw))
		}
	})

	s.Run("out-of-range integers are rejected locally", func() {
		err := s.service.SetATTStatus(context.Background(), 4)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *ServiceSuite) TestOpenCalls() {
	s.Run("checkAndOpen reports shown", func() {
		s.sdk.EXPECT().CheckAndOpen(gomock.Any(), false).Return(true, nil)
		shown, err := s.service.CheckAndOpen(context.Background(), false)
		s.Require().NoError(err)
		s.True(shown)
	})

	s.Run("forceOpen forwards jumpToSettings", func() {
		s.sdk.EXPECT().ForceOpen(gomock.Any(), true).Return(true, nil)
		shown, err := s.service.ForceOpen(context.Background(), true)
		s.Require().NoError(err)
		s.True(shown)
	})

	s.Run("native failure surfaces verbatim", func() {
		s.sdk.EXPECT().CheckAndOpen(gomock.Any(), false).
			Return(false, errors.New("network failure while fetching consent rules"))
		_, err := s.service.CheckAndOpen(context.Background(), false)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNativeSDK))
		s.Contains(err.Error(), "network failure while fetching consent rules")
	})
}

func (s *ServiceSuite) TestStatusReads() {
	s.Run("getUserStatus relays the snapshot untouched", func() {
		snapshot := consent.UserStatus{
			Status:       consent.StatusGranted,
			Vendors:      map[string]consent.ConsentStatus{"s2789": consent.StatusGranted},
			Purposes:     map[string]consent.ConsentStatus{"c53": consent.StatusDenied},
			TCF:          "CQQ9dEAQQ9dEAAfQ6BENA5EgAAAAAAAAAAAAAAAAAA",
			AddtlConsent: "1~",
			Regulation:   consent.RegulationGDPR,
		}
		s.sdk.EXPECT().UserStatus(gomock.Any()).Return(snapshot, nil)

		got, err := s.service.GetUserStatus(context.Background())
		s.Require().NoError(err)
		s.Equal(snapshot, got)
	})

	s.Run("per-purpose and per-vendor reads require an id", func() {
		_, err := s.service.GetStatusForPurpose(context.Background(), "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		_, err = s.service.GetStatusForVendor(context.Background(), "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("per-purpose read forwards", func() {
		s.sdk.EXPECT().StatusForPurpose(gomock.Any(), "c53").Return(consent.StatusGranted, nil)
		status, err := s.service.GetStatusForPurpose(context.Background(), "c53")
		s.Require().NoError(err)
		s.Equal(consent.StatusGranted, status)
	})

	s.Run("google consent mode forwards", func() {
		want := consent.GoogleConsentModeStatus{
			AnalyticsStorage:  consent.StatusGranted,
			AdStorage:         consent.StatusDenied,
			AdUserData:        consent.StatusDenied,
			AdPersonalization: consent.StatusDenied,
		}
		s.sdk.EXPECT().GoogleConsentModeStatus(gomock.Any()).Return(want, nil)
		got, err := s.service.GetGoogleConsentModeStatus(context.Background())
		s.Require().NoError(err)
		s.Equal(want, got)
	})
}

func (s *ServiceSuite) TestExportImportOpaque() {
	opaque := "Q1FBOURFQVFROWRFQUFmUTZCRU5BNUVn#_gcm"
	s.sdk.EXPECT().ExportCMPInfo(gomock.Any()).Return(opaque, nil)
	exported, err := s.service.ExportCMPInfo(context.Background())
	s.Require().NoError(err)
	s.Equal(opaque, exported)

	// The bridge must hand the string back byte for byte.
	s.sdk.EXPECT().ImportCMPInfo(gomock.Any(), opaque).Return(true, nil)
	ok, err := s.service.ImportCMPInfo(context.Background(), exported)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestActionCalls() {
	ctx := context.Background()
	vendors := []string{"s2789", "s123"}
	purposes := []string{"c52", "c53"}

	s.sdk.EXPECT().AcceptVendors(gomock.Any(), vendors).Return(true, nil)
	ok, err := s.service.AcceptVendors(ctx, vendors)
	s.Require().NoError(err)
	s.True(ok)

	s.sdk.EXPECT().RejectVendors(gomock.Any(), vendors).Return(true, nil)
	ok, err = s.service.RejectVendors(ctx, vendors)
	s.Require().NoError(err)
	s.True(ok)

	s.sdk.EXPECT().AcceptPurposes(gomock.Any(), purposes, true).Return(true, nil)
	ok, err = s.service.AcceptPurposes(ctx, purposes, true)
	s.Require().NoError(err)
	s.True(ok)

	s.sdk.EXPECT().RejectPurposes(gomock.Any(), purposes, false).Return(true, nil)
	ok, err = s.service.RejectPurposes(ctx, purposes, false)
	s.Require().NoError(err)
	s.True(ok)

	s.sdk.EXPECT().AcceptAll(gomock.Any()).Return(true, nil)
	ok, err = s.service.AcceptAll(ctx)
	s.Require().NoError(err)
	s.True(ok)

	s.sdk.EXPECT().RejectAll(gomock.Any()).Return(true, nil)
	ok, err = s.service.RejectAll(ctx)
	s.Require().NoError(err)
	s.True(ok)

	s.sdk.EXPECT().ResetConsentManagementData(gomock.Any()).Return(true, nil)
	ok, err = s.service.ResetConsentManagementData(ctx)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestResolveLayout_DefaultsBeforeAnyConfig() {
	screen := geometry.Screen{Width: 390, Height: 844, Insets: geometry.EdgeInsets{Top: 47, Bottom: 34}}

	// No config applied yet: full-screen with safe area respected.
	rect, err := s.service.ResolveLayout(context.Background(), screen)
	s.Require().NoError(err)
	s.Equal(geometry.Rect{X: 0, Y: 47, Width: 390, Height: 763}, rect)
}

func (s *ServiceSuite) TestResolveLayout_UsesAppliedConfig() {
	s.sdk.EXPECT().SetWebViewConfig(gomock.Any(), gomock.Any()).Return(nil)
	s.Require().NoError(s.service.SetWebViewConfig(context.Background(), webview.WebViewConfig{
		Position: webview.PositionHalfScreenBottom,
	}))

	screen := geometry.Screen{Width: 390, Height: 844, Insets: geometry.EdgeInsets{Top: 47, Bottom: 34}}
	rect, err := s.service.ResolveLayout(context.Background(), screen)
	s.Require().NoError(err)
	s.Equal(geometry.Rect{X: 0, Y: 422, Width: 390, Height: 388}, rect)
}

func TestNativeErrorKeepsMessage(t *testing.T) {
	err := native(errors.New("invalid CMP id"), "setUrlConfig")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNativeSDK))
	assert.Equal(t, "setUrlConfig: invalid CMP id", err.Error())
}
