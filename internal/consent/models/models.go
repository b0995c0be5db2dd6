package models

import (
	"strings"
	"time"

	dErrors "cmbridge/pkg/domain-errors"
)

// UrlConfig identifies the remote consent-rule source served by the CMP
// backend. It is immutable once sent to the native SDK; the bridge performs
// no validation beyond presence of the identifying fields.
type UrlConfig struct {
	ID       string `json:"id" yaml:"id"`
	Domain   string `json:"domain" yaml:"domain"`
	Language string `json:"language" yaml:"language"`
	AppName  string `json:"appName" yaml:"app_name"`
	NoHash   bool   `json:"noHash,omitempty" yaml:"no_hash,omitempty"`
}

// Validate checks presence of the identifying fields.
func (c UrlConfig) Validate() error {
	var missing []string
	if c.ID == "" {
		missing = append(missing, "id")
	}
	if c.Domain == "" {
		missing = append(missing, "domain")
	}
	if c.AppName == "" {
		missing = append(missing, "appName")
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation, "urlConfig missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}

// UserStatus is a read-only snapshot of the user's consent state, produced
// entirely by the native SDK. The bridge neither mutates nor caches it.
type UserStatus struct {
	Status       ConsentStatus            `json:"status"`
	Vendors      map[string]ConsentStatus `json:"vendors"`
	Purposes     map[string]ConsentStatus `json:"purposes"`
	TCF          string                   `json:"tcf"`
	AddtlConsent string                   `json:"addtlConsent"`
	Regulation   Regulation               `json:"regulation"`
}

// GoogleConsentModeStatus carries the Consent Mode v2 signals as computed by
// the native SDK.
type GoogleConsentModeStatus struct {
	AnalyticsStorage  ConsentStatus `json:"analyticsStorage"`
	AdStorage         ConsentStatus `json:"adStorage"`
	AdUserData        ConsentStatus `json:"adUserData"`
	AdPersonalization ConsentStatus `json:"adPersonalization"`
}

// ATTStatusChange records a transition of the platform tracking-authorization
// state, as delivered by the ATT-status-changed event.
type ATTStatusChange struct {
	Old         ATTStatus `json:"oldStatus"`
	New         ATTStatus `json:"newStatus"`
	LastUpdated time.Time `json:"lastUpdated"`
}
