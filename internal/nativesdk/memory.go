// Package nativesdk provides an in-memory stand-in for the native CMP SDK.
//
// The real SDK lives on the device and owns consent computation, storage, and
// the consent web surface. This implementation keeps just enough state to
// exercise the bridge end to end in tests and in the diagnostics server: it
// tracks per-vendor and per-purpose decisions, opens and closes a pretend
// layer through the event dispatcher, and round-trips its state through the
// export/import snapshot string.
package nativesdk

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cmbridge/internal/bridge/events"
	consent "cmbridge/internal/consent/models"
	webview "cmbridge/internal/webview/models"
)

// Memory is an in-memory ConsentSDK.
type Memory struct {
	dispatcher *events.Dispatcher

	mu         sync.Mutex
	urlConfig  *consent.UrlConfig
	webConfig  *webview.NormalizedConfig
	attStatus  consent.ATTStatus
	attUpdated time.Time
	regulation consent.Regulation
	vendors    map[string]consent.ConsentStatus
	purposes   map[string]consent.ConsentStatus
	choiceMade bool
	layerOpen  bool
}

// Option configures the in-memory SDK.
type Option func(*Memory)

// WithVendors seeds the known vendor ids, all starting undecided.
func WithVendors(ids ...string) Option {
	return func(m *Memory) {
		for _, id := range ids {
			m.vendors[id] = consent.StatusChoiceUnknown
		}
	}
}

// WithPurposes seeds the known purpose ids, all starting undecided.
func WithPurposes(ids ...string) Option {
	return func(m *Memory) {
		for _, id := range ids {
			m.purposes[id] = consent.StatusChoiceUnknown
		}
	}
}

// WithRegulation sets which privacy regime the fake reports.
func WithRegulation(r consent.Regulation) Option {
	return func(m *Memory) {
		m.regulation = r
	}
}

// New builds an in-memory SDK emitting through dispatcher. A nil dispatcher
// disables event emission.
func New(dispatcher *events.Dispatcher, opts ...Option) *Memory {
	m := &Memory{
		dispatcher: dispatcher,
		regulation: consent.RegulationGDPR,
		vendors:    make(map[string]consent.ConsentStatus),
		purposes:   make(map[string]consent.ConsentStatus),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) SetUrlConfig(_ context.Context, cfg consent.UrlConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urlConfig = &cfg
	return nil
}

func (m *Memory) SetWebViewConfig(_ context.Context, cfg webview.NormalizedConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.webConfig = &cfg
	return nil
}

func (m *Memory) SetATTStatus(_ context.Context, status consent.ATTStatus) error {
	m.mu.Lock()
	prev := m.attStatus
	m.attStatus = status
	m.attUpdated = time.Now()
	updated := m.attUpdated
	m.mu.Unlock()

	if prev != status && m.dispatcher != nil {
		m.dispatcher.EmitATTStatusChanged(prev, status, updated)
	}
	return nil
}

func (m *Memory) CheckAndOpen(ctx context.Context, jumpToSettings bool) (bool, error) {
	m.mu.Lock()
	required := !m.choiceMade
	m.mu.Unlock()
	if !required {
		return false, nil
	}
	return m.ForceOpen(ctx, jumpToSettings)
}

func (m *Memory) ForceOpen(_ context.Context, _ bool) (bool, error) {
	m.mu.Lock()
	if m.urlConfig == nil {
		m.mu.Unlock()
		return false, fmt.Errorf("no url config set")
	}
	alreadyOpen := m.layerOpen
	m.layerOpen = true
	m.mu.Unlock()

	if !alreadyOpen && m.dispatcher != nil {
		m.dispatcher.EmitLayerShown()
	}
	return true, nil
}

// CloseLayer simulates the user dismissing the consent layer.
func (m *Memory) CloseLayer() {
	m.mu.Lock()
	wasOpen := m.layerOpen
	m.layerOpen = false
	m.mu.Unlock()

	if wasOpen && m.dispatcher != nil {
		m.dispatcher.EmitLayerClosed()
	}
}

// ClickLink simulates a link activated inside the consent layer.
func (m *Memory) ClickLink(url string) {
	if m.dispatcher != nil {
		m.dispatcher.EmitLinkClicked(url)
	}
}

func (m *Memory) UserStatus(_ context.Context) (consent.UserStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return consent.UserStatus{
		Status:       m.overallLocked(),
		Vendors:      cloneStatuses(m.vendors),
		Purposes:     cloneStatuses(m.purposes),
		TCF:          m.tcfLocked(),
		AddtlConsent: "1~",
		Regulation:   m.regulation,
	}, nil
}

func (m *Memory) IsConsentRequired(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.choiceMade, nil
}

func (m *Memory) StatusForPurpose(_ context.Context, purposeID string) (consent.ConsentStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if status, ok := m.purposes[purposeID]; ok {
		return status, nil
	}
	return consent.StatusChoiceUnknown, nil
}

func (m *Memory) StatusForVendor(_ context.Context, vendorID string) (consent.ConsentStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if status, ok := m.vendors[vendorID]; ok {
		return status, nil
	}
	return consent.StatusChoiceUnknown, nil
}

func (m *Memory) GoogleConsentModeStatus(_ context.Context) (consent.GoogleConsentModeStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	overall := m.overallLocked()
	mapped := consent.StatusDenied
	if overall == consent.StatusGranted {
		mapped = consent.StatusGranted
	}
	return consent.GoogleConsentModeStatus{
		AnalyticsStorage:  mapped,
		AdStorage:         mapped,
		AdUserData:        mapped,
		AdPersonalization: mapped,
	}, nil
}

// snapshot is the export/import wire form.
type snapshot struct {
	Vendors    map[string]consent.ConsentStatus `json:"vendors"`
	Purposes   map[string]consent.ConsentStatus `json:"purposes"`
	ATTStatus  consent.ATTStatus                `json:"attStatus"`
	ChoiceMade bool                             `json:"choiceMade"`
	Regulation consent.Regulation               `json:"regulation"`
}

func (m *Memory) ExportCMPInfo(_ context.Context) (string, error) {
	m.mu.Lock()
	snap := snapshot{
		Vendors:    cloneStatuses(m.vendors),
		Purposes:   cloneStatuses(m.purposes),
		ATTStatus:  m.attStatus,
		ChoiceMade: m.choiceMade,
		Regulation: m.regulation,
	}
	m.mu.Unlock()

	raw, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func (m *Memory) ImportCMPInfo(_ context.Context, cmpInfo string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(cmpInfo)
	if err != nil {
		return false, fmt.Errorf("malformed CMP info: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return false, fmt.Errorf("malformed CMP info: %w", err)
	}

	m.mu.Lock()
	m.vendors = snap.Vendors
	m.purposes = snap.Purposes
	m.attStatus = snap.ATTStatus
	m.choiceMade = snap.ChoiceMade
	if snap.Regulation != "" {
		m.regulation = snap.Regulation
	}
	if m.vendors == nil {
		m.vendors = make(map[string]consent.ConsentStatus)
	}
	if m.purposes == nil {
		m.purposes = make(map[string]consent.ConsentStatus)
	}
	m.mu.Unlock()
	return true, nil
}

func (m *Memory) ResetConsentManagementData(_ context.Context) (bool, error) {
	m.mu.Lock()
	for id := range m.vendors {
		m.vendors[id] = consent.StatusChoiceUnknown
	}
	for id := range m.purposes {
		m.purposes[id] = consent.StatusChoiceUnknown
	}
	m.choiceMade = false
	m.mu.Unlock()
	return true, nil
}

func (m *Memory) AcceptVendors(_ context.Context, vendorIDs []string) (bool, error) {
	return m.decideVendors(vendorIDs, consent.StatusGranted), nil
}

func (m *Memory) RejectVendors(_ context.Context, vendorIDs []string) (bool, error) {
	return m.decideVendors(vendorIDs, consent.StatusDenied), nil
}

func (m *Memory) AcceptPurposes(_ context.Context, purposeIDs []string, updateVendors bool) (bool, error) {
	return m.decidePurposes(purposeIDs, consent.StatusGranted, updateVendors), nil
}

func (m *Memory) RejectPurposes(_ context.Context, purposeIDs []string, updateVendors bool) (bool, error) {
	return m.decidePurposes(purposeIDs, consent.StatusDenied, updateVendors), nil
}

func (m *Memory) AcceptAll(_ context.Context) (bool, error) {
	m.decideAll(consent.StatusGranted)
	return true, nil
}

func (m *Memory) RejectAll(_ context.Context) (bool, error) {
	m.decideAll(consent.StatusDenied)
	return true, nil
}

func (m *Memory) decideVendors(vendorIDs []string, status consent.ConsentStatus) bool {
	m.mu.Lock()
	for _, id := range vendorIDs {
		m.vendors[id] = status
	}
	m.choiceMade = true
	m.mu.Unlock()

	m.concludeChoice()
	return true
}

func (m *Memory) decidePurposes(purposeIDs []string, status consent.ConsentStatus, updateVendors bool) bool {
	m.mu.Lock()
	for _, id := range purposeIDs {
		m.purposes[id] = status
	}
	if updateVendors {
		for id := range m.vendors {
			m.vendors[id] = status
		}
	}
	m.choiceMade = true
	m.mu.Unlock()

	m.concludeChoice()
	return true
}

func (m *Memory) decideAll(status consent.ConsentStatus) {
	m.mu.Lock()
	for id := range m.vendors {
		m.vendors[id] = status
	}
	for id := range m.purposes {
		m.purposes[id] = status
	}
	m.choiceMade = true
	m.mu.Unlock()

	m.concludeChoice()
}

// concludeChoice mirrors the real SDK: a decision delivers the consent string
// and dismisses the layer if one is showing.
func (m *Memory) concludeChoice() {
	if m.dispatcher == nil {
		return
	}

	m.mu.Lock()
	tcf := m.tcfLocked()
	payload := map[string]any{
		"vendors":  cloneStatuses(m.vendors),
		"purposes": cloneStatuses(m.purposes),
	}
	wasOpen := m.layerOpen
	m.layerOpen = false
	m.mu.Unlock()

	m.dispatcher.EmitConsentReceived(tcf, payload)
	if wasOpen {
		m.dispatcher.EmitLayerClosed()
	}
}

func (m *Memory) overallLocked() consent.ConsentStatus {
	if !m.choiceMade {
		return consent.StatusChoiceUnknown
	}
	for _, status := range m.purposes {
		if status == consent.StatusGranted {
			return consent.StatusGranted
		}
	}
	for _, status := range m.vendors {
		if status == consent.StatusGranted {
			return consent.StatusGranted
		}
	}
	return consent.StatusDenied
}

// tcfLocked produces a deterministic placeholder consent string. The real
// SDK performs the TCF encoding; tests only need stability.
func (m *Memory) tcfLocked() string {
	if !m.choiceMade {
		return ""
	}
	granted := 0
	for _, status := range m.purposes {
		if status == consent.StatusGranted {
			granted++
		}
	}
	return fmt.Sprintf("CMFAKE.%d.%d", len(m.purposes), granted)
}

func cloneStatuses(in map[string]consent.ConsentStatus) map[string]consent.ConsentStatus {
	out := make(map[string]consent.ConsentStatus, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
