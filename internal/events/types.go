// Package events defines the event taxonomy for the tap counter and the
// channel-based pub/sub plumbing that carries events from the counter to the
// TUI and the session log.
package events

import "time"

// EventType identifies the category and nature of an event.
type EventType string

// Event types emitted by the counter.
const (
	// Session lifecycle
	EventSessionStart EventType = "session.start"
	EventSessionReset EventType = "session.reset"

	// Tap events
	EventTapRecorded EventType = "tap.recorded"

	// State machine transitions
	EventStateChanged EventType = "state.changed"

	// Derived tempo updates
	EventTempoChanged EventType = "tempo.changed"

	// Selection changes
	EventMeterChanged  EventType = "meter.changed"
	EventMethodChanged EventType = "method.changed"
)

// Source constants identify the origin of events.
const (
	SourceCounter = "counter"
	SourceUI      = "ui"
)

// Event is the base interface for all events in the system.
type Event interface {
	Type() EventType
	Timestamp() time.Time
	Source() string
}

// BaseEvent provides the common fields for all events.
type BaseEvent struct {
	EventType EventType `json:"type"`
	Time      time.Time `json:"timestamp"`
	Src       string    `json:"source"`
}

// NewCounterEvent builds a BaseEvent stamped now and sourced to the counter.
func NewCounterEvent(t EventType) BaseEvent {
	return BaseEvent{EventType: t, Time: time.Now(), Src: SourceCounter}
}

// Type returns the event type.
func (e BaseEvent) Type() EventType {
	return e.EventType
}

// Timestamp returns when the event occurred.
func (e BaseEvent) Timestamp() time.Time {
	return e.Time
}

// Source returns the origin of the event.
func (e BaseEvent) Source() string {
	return e.Src
}

// SessionStartEvent is emitted on the session-starting tap.
type SessionStartEvent struct {
	BaseEvent
	Meter  string `json:"meter"`
	Method string `json:"method"`
}

// SessionResetEvent is emitted when the session returns to its initial
// state, either by idle timeout before any interval was recorded or by an
// explicit reset.
type SessionResetEvent struct {
	BaseEvent
	Reason string `json:"reason,omitempty"`
}

// TapRecordedEvent is emitted for every tap that records an interval.
type TapRecordedEvent struct {
	BaseEvent
	IntervalMs int64 `json:"interval_ms"`
	WindowLen  int   `json:"window_len"`
}

// StateChangedEvent is emitted on every state machine transition.
type StateChangedEvent struct {
	BaseEvent
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason,omitempty"`
}

// TempoChangedEvent carries the freshly derived rates after a tap or a
// selection change.
type TempoChangedEvent struct {
	BaseEvent
	CPM float64 `json:"cpm"`
	BPM float64 `json:"bpm"`
	MPM float64 `json:"mpm"`
}

// MeterChangedEvent is emitted when the user selects a new meter.
type MeterChangedEvent struct {
	BaseEvent
	Old      string `json:"old"`
	New      string `json:"new"`
	Rescaled bool   `json:"rescaled"`
}

// MethodChangedEvent is emitted when the user switches counting method.
type MethodChangedEvent struct {
	BaseEvent
	Old string `json:"old"`
	New string `json:"new"`
}
