package service

import (
	"context"

	consent "cmbridge/internal/consent/models"
	webview "cmbridge/internal/webview/models"
)

// ConsentSDK is the native CMP SDK handle the bridge forwards to. It owns all
// consent logic, storage, and regulatory computation; the bridge only
// validates and marshals.
//
// Error Contract:
//   - Operational failures (network, invalid CMP id) are returned as plain
//     errors with a human-readable message; the service surfaces them
//     verbatim under CodeNativeSDK.
//   - No method retries internally and none is cancelable once issued;
//     ctx cancellation only abandons waiting for the result.
//
// The handle is injected rather than reached through a process-wide
// singleton so tests can substitute it.
//
//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks ConsentSDK
type ConsentSDK interface {
	SetUrlConfig(ctx context.Context, cfg consent.UrlConfig) error
	SetWebViewConfig(ctx context.Context, cfg webview.NormalizedConfig) error
	SetATTStatus(ctx context.Context, status consent.ATTStatus) error

	CheckAndOpen(ctx context.Context, jumpToSettings bool) (bool, error)
	ForceOpen(ctx context.Context, jumpToSettings bool) (bool, error)

	UserStatus(ctx context.Context) (consent.UserStatus, error)
	IsConsentRequired(ctx context.Context) (bool, error)
	StatusForPurpose(ctx context.Context, purposeID string) (consent.ConsentStatus, error)
	StatusForVendor(ctx context.Context, vendorID string) (consent.ConsentStatus, error)
	GoogleConsentModeStatus(ctx context.Context) (consent.GoogleConsentModeStatus, error)

	ExportCMPInfo(ctx context.Context) (string, error)
	ImportCMPInfo(ctx context.Context, cmpInfo string) (bool, error)
	ResetConsentManagementData(ctx context.Context) (bool, error)

	AcceptVendors(ctx context.Context, vendorIDs []string) (bool, error)
	RejectVendors(ctx context.Context, vendorIDs []string) (bool, error)
	AcceptPurposes(ctx context.Context, purposeIDs []string, updateVendors bool) (bool, error)
	RejectPurposes(ctx context.Context, purposeIDs []string, updateVendors bool) (bool, error)
	AcceptAll(ctx context.Context) (bool, error)
	RejectAll(ctx context.Context) (bool, error)
}
