package events

import (
	"cmbridge/internal/consent/models"
)

// Type names the six bridge events.
type Type string

const (
	TypeConsentReceived  Type = "consent-received"
	TypeLayerShown       Type = "layer-shown"
	TypeLayerClosed      Type = "layer-closed"
	TypeError            Type = "error"
	TypeLinkClicked      Type = "link-clicked"
	TypeATTStatusChanged Type = "att-status-changed"
)

// ConsentReceived carries the raw consent string and its parsed form as
// delivered by the native SDK. Payload is relayed untouched.
type ConsentReceived struct {
	Consent string
	Payload map[string]any
}

// LayerShown marks the consent layer becoming visible. PresentationID
// correlates the shown/closed pair of one presentation in logs and metrics.
type LayerShown struct {
	PresentationID string
}

// LayerClosed marks the consent layer being dismissed.
type LayerClosed struct {
	PresentationID string
}

// Error carries a native-SDK error message verbatim.
type Error struct {
	Message string
}

// LinkClicked reports a link activated inside the consent layer.
type LinkClicked struct {
	URL string
}

// Listener consumes bridge events. The dispatcher invokes it from a single
// goroutine, so implementations need no internal synchronization against
// concurrent deliveries.
type Listener interface {
	OnConsentReceived(ConsentReceived)
	OnLayerShown(LayerShown)
	OnLayerClosed(LayerClosed)
	OnError(Error)
	OnLinkClicked(LinkClicked)
	OnATTStatusChanged(models.ATTStatusChange)
}

// ListenerFuncs adapts plain functions to the Listener interface. Nil fields
// drop the corresponding event.
type ListenerFuncs struct {
	ConsentReceived  func(ConsentReceived)
	LayerShown       func(LayerShown)
	LayerClosed      func(LayerClosed)
	Error            func(Error)
	LinkClicked      func(LinkClicked)
	ATTStatusChanged func(models.ATTStatusChange)
}

func (l ListenerFuncs) OnConsentReceived(e ConsentReceived) {
	if l.ConsentReceived != nil {
		l.ConsentReceived(e)
	}
}

func (l ListenerFuncs) OnLayerShown(e LayerShown) {
	if l.LayerShown != nil {
		l.LayerShown(e)
	}
}

func (l ListenerFuncs) OnLayerClosed(e LayerClosed) {
	if l.LayerClosed != nil {
		l.LayerClosed(e)
	}
}

func (l ListenerFuncs) OnError(e Error) {
	if l.Error != nil {
		l.Error(e)
	}
}

func (l ListenerFuncs) OnLinkClicked(e LinkClicked) {
	if l.LinkClicked != nil {
		l.LinkClicked(e)
	}
}

func (l ListenerFuncs) OnATTStatusChanged(e models.ATTStatusChange) {
	if l.ATTStatusChanged != nil {
		l.ATTStatusChanged(e)
	}
}

// envelope is the internal channel payload.
type envelope struct {
	kind    Type
	consent ConsentReceived
	shown   LayerShown
	closed  LayerClosed
	err     Error
	link    LinkClicked
	att     models.ATTStatusChange
}
