package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"cmbridge/internal/consent/models"
)

// Dispatcher relays native-SDK events to a single consumer. The native side
// is the only producer; delivery happens on one background goroutine so the
// listener observes events in emission order, at most once per native
// emission.
//
// The dispatcher owns the presentation gate: a layer-closed without a
// preceding layer-shown is suppressed rather than forwarded, and link-click
// forwarding is enabled only while a layer is shown.
type Dispatcher struct {
	listener Listener
	logger   *slog.Logger
	observer Observer

	events chan envelope
	wg     sync.WaitGroup

	mu             sync.Mutex
	shown          bool
	presentationID string
	closed         bool
}

// Observer receives delivery statistics. The bridge metrics type satisfies
// this; tests may substitute their own.
type Observer interface {
	EventDelivered(kind string)
	EventSuppressed(kind string)
	EventDropped(kind string)
}

const defaultBuffer = 64

// DispatcherOption configures the Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithBuffer overrides the event channel capacity.
func WithBuffer(size int) DispatcherOption {
	return func(d *Dispatcher) {
		if size > 0 {
			d.events = make(chan envelope, size)
		}
	}
}

// WithLogger sets a logger for suppression and drop reporting.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithObserver sets a delivery-statistics sink.
func WithObserver(o Observer) DispatcherOption {
	return func(d *Dispatcher) {
		d.observer = o
	}
}

// NewDispatcher starts a dispatcher delivering to listener.
func NewDispatcher(listener Listener, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		listener: listener,
		events:   make(chan envelope, defaultBuffer),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.wg.Add(1)
	go d.deliver()
	return d
}

// deliver runs on the single consumer goroutine.
func (d *Dispatcher) deliver() {
	defer d.wg.Done()
	for e := range d.events {
		switch e.kind {
		case TypeConsentReceived:
			d.listener.OnConsentReceived(e.consent)
		case TypeLayerShown:
			d.listener.OnLayerShown(e.shown)
		case TypeLayerClosed:
			d.listener.OnLayerClosed(e.closed)
		case TypeError:
			d.listener.OnError(e.err)
		case TypeLinkClicked:
			d.listener.OnLinkClicked(e.link)
		case TypeATTStatusChanged:
			d.listener.OnATTStatusChanged(e.att)
		}
		if d.observer != nil {
			d.observer.EventDelivered(string(e.kind))
		}
	}
}

// Close stops accepting events and waits for pending deliveries to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()
	close(d.events)
	d.wg.Wait()
}

// ShouldHandleLinkClicks reports whether the native layer should intercept
// navigation. Disabled by default so SDK-internal initialization traffic is
// never treated as a user click; enabled on layer-shown, disabled again on
// layer-closed.
func (d *Dispatcher) ShouldHandleLinkClicks() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// EmitConsentReceived relays a consent delivery.
func (d *Dispatcher) EmitConsentReceived(consent string, payload map[string]any) {
	d.send(envelope{kind: TypeConsentReceived, consent: ConsentReceived{Consent: consent, Payload: payload}})
}

// EmitLayerShown opens a presentation and enables link-click handling. It
// returns the presentation id correlating the eventual close.
func (d *Dispatcher) EmitLayerShown() string {
	d.mu.Lock()
	d.shown = true
	d.presentationID = uuid.New().String()
	id := d.presentationID
	d.mu.Unlock()

	d.send(envelope{kind: TypeLayerShown, shown: LayerShown{PresentationID: id}})
	return id
}

// EmitLayerClosed closes the current presentation. A close without a
// preceding shown is suppressed: the native delegate double-fires close
// during SDK-internal teardown, and forwarding the spurious one would break
// the shown-before-closed ordering contract.
func (d *Dispatcher) EmitLayerClosed() {
	d.mu.Lock()
	if !d.shown {
		d.mu.Unlock()
		if d.logger != nil {
			d.logger.Debug("suppressed layer-closed without a preceding layer-shown")
		}
		if d.observer != nil {
			d.observer.EventSuppressed(string(TypeLayerClosed))
		}
		return
	}
	d.shown = false
	id := d.presentationID
	d.presentationID = ""
	d.mu.Unlock()

	d.send(envelope{kind: TypeLayerClosed, closed: LayerClosed{PresentationID: id}})
}

// EmitError relays a native-SDK error message verbatim.
func (d *Dispatcher) EmitError(message string) {
	d.send(envelope{kind: TypeError, err: Error{Message: message}})
}

// EmitLinkClicked relays a link activation. Clicks arriving while no layer is
// shown are suppressed by the same gate that guards navigation interception.
func (d *Dispatcher) EmitLinkClicked(url string) {
	if !d.ShouldHandleLinkClicks() {
		if d.observer != nil {
			d.observer.EventSuppressed(string(TypeLinkClicked))
		}
		return
	}
	d.send(envelope{kind: TypeLinkClicked, link: LinkClicked{URL: url}})
}

// EmitATTStatusChanged relays a tracking-authorization transition.
func (d *Dispatcher) EmitATTStatusChanged(prev, next models.ATTStatus, lastUpdated time.Time) {
	d.send(envelope{kind: TypeATTStatusChanged, att: models.ATTStatusChange{Old: prev, New: next, LastUpdated: lastUpdated}})
}

// send enqueues without blocking the native side. A full buffer drops the
// event with a warning; event delivery is fire-and-forget by contract.
func (d *Dispatcher) send(e envelope) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	select {
	case d.events <- e:
		d.mu.Unlock()
	default:
		d.mu.Unlock()
		if d.logger != nil {
			d.logger.Warn("event buffer full, event dropped", "type", e.kind)
		}
		if d.observer != nil {
			d.observer.EventDropped(string(e.kind))
		}
	}
}
