package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cmbridge/internal/bridge/metrics"
	consent "cmbridge/internal/consent/models"
	"cmbridge/internal/platform/tracer"
	"cmbridge/internal/webview/geometry"
	webview "cmbridge/internal/webview/models"
	"cmbridge/internal/webview/normalizer"
	dErrors "cmbridge/pkg/domain-errors"
)

// Service is the bridge call surface. Every operation accepts a plain data
// payload, suspends the caller until the native SDK responds, and returns a
// single-shot result. There is no batching, no retry, and no timeout
// management at this layer; concurrent calls race inside the native SDK with
// undefined ordering, exactly as the underlying SDK behaves.
type Service struct {
	sdk        ConsentSDK
	normalizer *normalizer.Normalizer
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     tracer.Tracer

	mu     sync.RWMutex
	layout *webview.NormalizedConfig
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger instance for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer for per-call spans.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New builds the bridge service around an injected SDK handle and a
// platform-specific config normalizer.
func New(sdk ConsentSDK, norm *normalizer.Normalizer, opts ...Option) *Service {
	s := &Service{
		sdk:        sdk,
		normalizer: norm,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	return s
}

// begin opens a span and returns a completion func recording outcome metrics.
func (s *Service) begin(ctx context.Context, operation string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "bridge."+operation, tracer.String(tracer.AttrOperation, operation))
	return ctx, func(err error) {
		span.End(err)
		if s.metrics != nil {
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			s.metrics.ObserveCall(operation, outcome, time.Since(start).Seconds())
		}
	}
}

// native wraps an SDK failure, preserving its message verbatim.
func native(err error, operation string) error {
	return dErrors.Wrap(err, dErrors.CodeNativeSDK, operation+": "+err.Error())
}

// SetUrlConfig points the native SDK at the remote consent-rule source.
// Presence of the identifying fields is the only local validation.
func (s *Service) SetUrlConfig(ctx context.Context, cfg consent.UrlConfig) (err error) {
	ctx, done := s.begin(ctx, "setUrlConfig")
	defer func() { done(err) }()

	if err = cfg.Validate(); err != nil {
		return err
	}
	if sdkErr := s.sdk.SetUrlConfig(ctx, cfg); sdkErr != nil {
		err = native(sdkErr, "setUrlConfig")
		return err
	}
	if s.logger != nil {
		s.logger.Info("url config set", "cmp_id", cfg.ID, "domain", cfg.Domain)
	}
	return nil
}

// SetWebViewConfig normalizes the declarative layer configuration and hands
// the fully-populated form to the native SDK. Validation failures surface
// before anything crosses the bridge; capability gaps degrade with a warning.
func (s *Service) SetWebViewConfig(ctx context.Context, cfg webview.WebViewConfig) (err error) {
	ctx, done := s.begin(ctx, "setWebViewConfig")
	defer func() { done(err) }()

	normalized, warnings, err := s.normalizer.Normalize(cfg)
	if err != nil {
		return err
	}
	if sdkErr := s.sdk.SetWebViewConfig(ctx, normalized); sdkErr != nil {
		err = native(sdkErr, "setWebViewConfig")
		return err
	}
	s.mu.Lock()
	s.layout = &normalized
	s.mu.Unlock()
	if s.logger != nil {
		s.logger.Info("webview config set",
			"position", normalized.Position,
			"background", normalized.BackgroundStyle.Kind,
			"warnings", len(warnings),
		)
	}
	return nil
}

// ResolveLayout computes the consent-layer frame for the given screen from
// the most recently applied layer configuration. Before any SetWebViewConfig
// call the platform defaults apply (full-screen, safe area respected).
func (s *Service) ResolveLayout(ctx context.Context, screen geometry.Screen) (rect geometry.Rect, err error) {
	_, done := s.begin(ctx, "resolveLayout")
	defer func() { done(err) }()

	s.mu.RLock()
	cfg := s.layout
	s.mu.RUnlock()

	if cfg == nil {
		defaults, _, normErr := s.normalizer.Normalize(webview.WebViewConfig{})
		if normErr != nil {
			err = normErr
			return geometry.Rect{}, err
		}
		cfg = &defaults
	}
	return geometry.Resolve(*cfg, screen), nil
}

// SetATTStatus reports the platform tracking-authorization state. Any integer
// outside the platform-defined 0-3 range is rejected locally.
func (s *Service) SetATTStatus(ctx context.Context, raw int) (err error) {
	ctx, done := s.begin(ctx, "setATTStatus")
	defer func() { done(err) }()

	status, err := consent.ATTStatusFromInt(raw)
	if err != nil {
		return err
	}
	if sdkErr := s.sdk.SetATTStatus(ctx, status); sdkErr != nil {
		err = native(sdkErr, "setATTStatus")
		return err
	}
	return nil
}

// CheckAndOpen shows the consent layer if the native SDK determines consent
// is required. Returns whether the layer was shown.
func (s *Service) CheckAndOpen(ctx context.Context, jumpToSettings bool) (shown bool, err error) {
	ctx, done := s.begin(ctx, "checkAndOpen")
	defer func() { done(err) }()

	shown, sdkErr := s.sdk.CheckAndOpen(ctx, jumpToSettings)
	if sdkErr != nil {
		err = native(sdkErr, "checkAndOpen")
		return false, err
	}
	return shown, nil
}

// ForceOpen shows the consent layer unconditionally.
func (s *Service) ForceOpen(ctx context.Context, jumpToSettings bool) (shown bool, err error) {
	ctx, done := s.begin(ctx, "forceOpen")
	defer func() { done(err) }()

	shown, sdkErr := s.sdk.ForceOpen(ctx, jumpToSettings)
	if sdkErr != nil {
		err = native(sdkErr, "forceOpen")
		return false, err
	}
	return shown, nil
}

// GetUserStatus returns the native SDK's current consent snapshot, relayed
// without mutation or caching.
func (s *Service) GetUserStatus(ctx context.Context) (status consent.UserStatus, err error) {
	ctx, done := s.begin(ctx, "getUserStatus")
	defer func() { done(err) }()

	status, sdkErr := s.sdk.UserStatus(ctx)
	if sdkErr != nil {
		err = native(sdkErr, "getUserStatus")
		return consent.UserStatus{}, err
	}
	return status, nil
}

// IsConsentRequired reports whether the native SDK considers user interaction
// necessary.
func (s *Service) IsConsentRequired(ctx context.Context) (required bool, err error) {
	ctx, done := s.begin(ctx, "isConsentRequired")
	defer func() { done(err) }()

	required, sdkErr := s.sdk.IsConsentRequired(ctx)
	if sdkErr != nil {
		err = native(sdkErr, "isConsentRequired")
		return false, err
	}
	return required, nil
}

// GetStatusForPurpose returns the decision state for one purpose.
func (s *Service) GetStatusForPurpose(ctx context.Context, purposeID string) (status consent.ConsentStatus, err error) {
	ctx, done := s.begin(ctx, "getStatusForPurpose")
	defer func() { done(err) }()

	if purposeID == "" {
		err = dErrors.New(dErrors.CodeValidation, "purpose id must not be empty")
		return "", err
	}
	status, sdkErr := s.sdk.StatusForPurpose(ctx, purposeID)
	if sdkErr != nil {
		err = native(sdkErr, "getStatusForPurpose")
		return "", err
	}
	return status, nil
}

// GetStatusForVendor returns the decision state for one vendor.
func (s *Service) GetStatusForVendor(ctx context.Context, vendorID string) (status consent.ConsentStatus, err error) {
	ctx, done := s.begin(ctx, "getStatusForVendor")
	defer func() { done(err) }()

	if vendorID == "" {
		err = dErrors.New(dErrors.CodeValidation, "vendor id must not be empty")
		return "", err
	}
	status, sdkErr := s.sdk.StatusForVendor(ctx, vendorID)
	if sdkErr != nil {
		err = native(sdkErr, "getStatusForVendor")
		return "", err
	}
	return status, nil
}

// GetGoogleConsentModeStatus returns the Consent Mode v2 signals.
func (s *Service) GetGoogleConsentModeStatus(ctx context.Context) (status consent.GoogleConsentModeStatus, err error) {
	ctx, done := s.begin(ctx, "getGoogleConsentModeStatus")
	defer func() { done(err) }()

	status, sdkErr := s.sdk.GoogleConsentModeStatus(ctx)
	if sdkErr != nil {
		err = native(sdkErr, "getGoogleConsentModeStatus")
		return consent.GoogleConsentModeStatus{}, err
	}
	return status, nil
}

// ExportCMPInfo returns the SDK's opaque consent snapshot string, unchanged.
func (s *Service) ExportCMPInfo(ctx context.Context) (info string, err error) {
	ctx, done := s.begin(ctx, "exportCMPInfo")
	defer func() { done(err) }()

	info, sdkErr := s.sdk.ExportCMPInfo(ctx)
	if sdkErr != nil {
		err = native(sdkErr, "exportCMPInfo")
		return "", err
	}
	return info, nil
}

// ImportCMPInfo replays a previously exported snapshot. The string is passed
// through opaque; the bridge must not alter it.
func (s *Service) ImportCMPInfo(ctx context.Context, cmpInfo string) (ok bool, err error) {
	ctx, done := s.begin(ctx, "importCMPInfo")
	defer func() { done(err) }()

	ok, sdkErr := s.sdk.ImportCMPInfo(ctx, cmpInfo)
	if sdkErr != nil {
		err = native(sdkErr, "importCMPInfo")
		return false, err
	}
	return ok, nil
}

// ResetConsentManagementData clears all consent state held by the native SDK.
func (s *Service) ResetConsentManagementData(ctx context.Context) (ok bool, err error) {
	ctx, done := s.begin(ctx, "resetConsentManagementData")
	defer func() { done(err) }()

	ok, sdkErr := s.sdk.ResetConsentManagementData(ctx)
	if sdkErr != nil {
		err = native(sdkErr, "resetConsentManagementData")
		return false, err
	}
	return ok, nil
}

// AcceptVendors grants consent for the given vendors.
func (s *Service) AcceptVendors(ctx context.Context, vendorIDs []string) (ok bool, err error) {
	ctx, done := s.begin(ctx, "acceptVendors")
	defer func() { done(err) }()

	ok, sdkErr := s.sdk.AcceptVendors(ctx, vendorIDs)
	if sdkErr != nil {
		err = native(sdkErr, "acceptVendors")
		return false, err
	}
	return ok, nil
}

// RejectVendors withdraws consent for the given vendors.
func (s *Service) RejectVendors(ctx context.Context, vendorIDs []string) (ok bool, err error) {
	ctx, done := s.begin(ctx, "rejectVendors")
	defer func() { done(err) }()

	ok, sdkErr := s.sdk.RejectVendors(ctx, vendorIDs)
	if sdkErr != nil {
		err = native(sdkErr, "rejectVendors")
		return false, err
	}
	return ok, nil
}

// AcceptPurposes grants consent for the given purposes. updateVendors also
// grants the vendors attached to those purposes.
func (s *Service) AcceptPurposes(ctx context.Context, purposeIDs []string, updateVendors bool) (ok bool, err error) {
	ctx, done := s.begin(ctx, "acceptPurposes")
	defer func() { done(err) }()

	ok, sdkErr := s.sdk.AcceptPurposes(ctx, purposeIDs, updateVendors)
	if sdkErr != nil {
		err = native(sdkErr, "acceptPurposes")
		return false, err
	}
	return ok, nil
}

// RejectPurposes withdraws consent for the given purposes. updateVendors also
// rejects the vendors attached to those purposes.
func (s *Service) RejectPurposes(ctx context.Context, purposeIDs []string, updateVendors bool) (ok bool, err error) {
	ctx, done := s.begin(ctx, "rejectPurposes")
	defer func() { done(err) }()

	ok, sdkErr := s.sdk.RejectPurposes(ctx, purposeIDs, updateVendors)
	if sdkErr != nil {
		err = native(sdkErr, "rejectPurposes")
		return false, err
	}
	return ok, nil
}

// AcceptAll grants consent for every vendor and purpose.
func (s *Service) AcceptAll(ctx context.Context) (ok bool, err error) {
	ctx, done := s.begin(ctx, "acceptAll")
	defer func() { done(err) }()

	ok, sdkErr := s.sdk.AcceptAll(ctx)
	if sdkErr != nil {
		err = native(sdkErr, "acceptAll")
		return false, err
	}
	return ok, nil
}

// RejectAll withdraws consent for every vendor and purpose.
func (s *Service) RejectAll(ctx context.Context) (ok bool, err error) {
	ctx, done := s.begin(ctx, "rejectAll")
	defer func() { done(err) }()

	ok, sdkErr := s.sdk.RejectAll(ctx)
	if sdkErr != nil {
		err = native(sdkErr, "rejectAll")
		return false, err
	}
	return ok, nil
}
