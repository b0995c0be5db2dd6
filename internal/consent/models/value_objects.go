package models

import (
	"fmt"

	dErrors "cmbridge/pkg/domain-errors"
)

// ConsentStatus is the per-vendor / per-purpose decision state as reported by
// the native CMP SDK. The bridge never computes these values, it only relays
// them.
type ConsentStatus string

const (
	StatusGranted       ConsentStatus = "granted"
	StatusDenied        ConsentStatus = "denied"
	StatusChoiceUnknown ConsentStatus = "choiceUnknown"
)

// IsValid checks if the status is one of the supported enum values.
func (s ConsentStatus) IsValid() bool {
	return s == StatusGranted || s == StatusDenied || s == StatusChoiceUnknown
}

// Regulation identifies which privacy regime the native SDK determined to be
// applicable for the current user.
type Regulation string

const (
	RegulationNone Regulation = "none"
	RegulationGDPR Regulation = "gdpr"
	RegulationCCPA Regulation = "ccpa"
	RegulationLGPD Regulation = "lgpd"
)

// IsValid checks if the regulation is one of the supported enum values.
func (r Regulation) IsValid() bool {
	switch r {
	case RegulationNone, RegulationGDPR, RegulationCCPA, RegulationLGPD:
		return true
	}
	return false
}

// ATTStatus mirrors the platform App Tracking Transparency authorization
// state. The integer values are platform-defined and must match exactly.
type ATTStatus int

const (
	ATTNotDetermined ATTStatus = 0
	ATTRestricted    ATTStatus = 1
	ATTDenied        ATTStatus = 2
	ATTAuthorized    ATTStatus = 3
)

// IsValid checks if the status is one of the four platform-defined values.
func (a ATTStatus) IsValid() bool {
	return a >= ATTNotDetermined && a <= ATTAuthorized
}

// ATTStatusFromInt converts a raw integer to an ATTStatus, rejecting anything
// outside the platform-defined 0-3 range.
func ATTStatusFromInt(v int) (ATTStatus, error) {
	status := ATTStatus(v)
	if !status.IsValid() {
		return 0, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("invalid ATT status: %d", v))
	}
	return status, nil
}

// String returns the canonical name for logging.
func (a ATTStatus) String() string {
	switch a {
	case ATTNotDetermined:
		return "notDetermined"
	case ATTRestricted:
		return "restricted"
	case ATTDenied:
		return "denied"
	case ATTAuthorized:
		return "authorized"
	}
	return fmt.Sprintf("ATTStatus(%d)", int(a))
}
