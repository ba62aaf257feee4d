package tap

import (
	"log/slog"
	"sync"
	"time"

	"github.com/npratt/taptempo/internal/events"
	"github.com/npratt/taptempo/internal/tempo"
)

// State represents the counter's position in the tapping session.
type State string

// Counter states. Initial and Paused both mean "no active session";
// FirstTap and Tapping both mean "session active, interval data meaningful".
const (
	StateInitial  State = "initial"
	StateFirstTap State = "first_tap"
	StateTapping  State = "tapping"
	StatePaused   State = "paused"
)

// DefaultIdleTimeout is how long the counter waits after the last tap before
// ending or pausing the session.
const DefaultIdleTimeout = 5 * time.Second

// Reading is a consistent read-only view of the counter for rendering.
type Reading struct {
	State     State
	Label     string
	CPM       float64
	BPM       float64
	MPM       float64
	Meter     tempo.Meter
	Method    tempo.Method
	Intervals []int64
	LastTap   time.Time
}

// Counter is the tap-timing state machine plus the meter/method selection.
// All session state lives behind one mutex so the idle-timer callback always
// observes the latest state rather than a stale snapshot. Callers interact
// through Tap, SetMeter, SetMethod, Reset, and Snapshot only.
type Counter struct {
	router *events.Router
	logger *slog.Logger

	mu          sync.Mutex
	state       State
	window      *Window
	lastTap     time.Time
	meter       tempo.Meter
	method      tempo.Method
	idleTimeout time.Duration
	timer       *time.Timer
	timerGen    uint64
}

// Option configures a Counter.
type Option func(*Counter)

// WithIdleTimeout overrides the idle window after which a session pauses or
// resets.
func WithIdleTimeout(d time.Duration) Option {
	return func(c *Counter) {
		if d > 0 {
			c.idleTimeout = d
		}
	}
}

// WithWindowCapacity overrides the interval window capacity.
func WithWindowCapacity(n int) Option {
	return func(c *Counter) {
		c.window = NewWindow(n)
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Counter) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an idle Counter with the given selection and event router.
// A nil router disables event emission.
func New(meter tempo.Meter, method tempo.Method, router *events.Router, opts ...Option) *Counter {
	c := &Counter{
		router:      router,
		logger:      slog.Default(),
		state:       StateInitial,
		window:      NewWindow(DefaultWindowCapacity),
		meter:       meter,
		method:      method,
		idleTimeout: DefaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tap records a user tap at the given timestamp. A tap from Initial or
// Paused starts a fresh session (no interval recorded); a tap during an
// active session records the delta since the previous tap. Every tap
// supersedes the pending idle timer before the transition runs.
func (c *Counter) Tap(now time.Time) {
	c.mu.Lock()

	// Bumping the generation invalidates any in-flight idle callback
	// before the transition below runs.
	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
	}

	prev := c.state
	var emitted []events.Event

	switch prev {
	case StateInitial, StatePaused:
		c.window.Clear()
		c.lastTap = now
		c.state = StateFirstTap
		emitted = append(emitted, &events.SessionStartEvent{
			BaseEvent: events.NewCounterEvent(events.EventSessionStart),
			Meter:     c.meter.String(),
			Method:    c.method.String(),
		})
	case StateFirstTap, StateTapping:
		delta := now.Sub(c.lastTap).Milliseconds()
		c.window.Push(delta)
		c.lastTap = now
		c.state = StateTapping
		emitted = append(emitted, &events.TapRecordedEvent{
			BaseEvent:  events.NewCounterEvent(events.EventTapRecorded),
			IntervalMs: delta,
			WindowLen:  c.window.Len(),
		})
	}

	if c.state != prev {
		emitted = append(emitted, c.stateChangedLocked(prev, "tap"))
	}
	emitted = append(emitted, c.tempoChangedLocked())

	gen := c.timerGen
	c.timer = time.AfterFunc(c.idleTimeout, func() { c.idleExpired(gen) })

	c.logger.Debug("tap", "state", c.state, "window_len", c.window.Len())
	c.mu.Unlock()

	c.emit(emitted)
}

// idleExpired is the idle-timer callback. The generation check discards a
// timeout that lost the race against a tap landing in the same tick: the tap
// bumps the generation under the lock before its transition, so a stale
// callback observes the mismatch and returns without touching state.
func (c *Counter) idleExpired(gen uint64) {
	c.mu.Lock()

	if gen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.timer = nil

	prev := c.state
	var emitted []events.Event

	switch prev {
	case StateInitial, StateFirstTap:
		// Fewer than two taps: abort the session entirely.
		c.window.Clear()
		c.lastTap = time.Time{}
		c.state = StateInitial
		emitted = append(emitted, &events.SessionResetEvent{
			BaseEvent: events.NewCounterEvent(events.EventSessionReset),
			Reason:    "idle_timeout",
		})
	case StateTapping, StatePaused:
		// Keep the window so the last known tempo stays on display.
		c.state = StatePaused
	}

	if c.state != prev {
		emitted = append(emitted, c.stateChangedLocked(prev, "idle_timeout"))
	}

	c.logger.Debug("idle timeout", "from", prev, "to", c.state)
	c.mu.Unlock()

	c.emit(emitted)
}

// SetMeter selects a new meter. When the counting method is per-measure the
// stored intervals are rescaled so the displayed tempo is preserved.
// Selecting the already-active meter is an explicit no-op: rescaling would
// introduce rounding drift.
func (c *Counter) SetMeter(m tempo.Meter) {
	c.mu.Lock()

	if m == c.meter {
		c.mu.Unlock()
		return
	}

	old := c.meter
	rescaled := false
	if c.method == tempo.MethodMeasure && c.window.Len() > 0 {
		c.window.Replace(tempo.RescaleIntervals(c.window.Intervals(), old, m))
		rescaled = true
	}
	c.meter = m

	emitted := []events.Event{
		&events.MeterChangedEvent{
			BaseEvent: events.NewCounterEvent(events.EventMeterChanged),
			Old:       old.String(),
			New:       m.String(),
			Rescaled:  rescaled,
		},
		c.tempoChangedLocked(),
	}
	c.mu.Unlock()

	c.emit(emitted)
}

// SetMethod switches the counting method, converting the stored intervals
// through the per-beat unit: to Beat rescales by (meter, 1), to Measure by
// (1, meter). Switching to the current method is a no-op.
func (c *Counter) SetMethod(m tempo.Method) {
	c.mu.Lock()

	if m == c.method {
		c.mu.Unlock()
		return
	}

	old := c.method
	if c.window.Len() > 0 {
		if m == tempo.MethodBeat {
			c.window.Replace(tempo.RescaleIntervals(c.window.Intervals(), c.meter, tempo.Beat))
		} else {
			c.window.Replace(tempo.RescaleIntervals(c.window.Intervals(), tempo.Beat, c.meter))
		}
	}
	c.method = m

	emitted := []events.Event{
		&events.MethodChangedEvent{
			BaseEvent: events.NewCounterEvent(events.EventMethodChanged),
			Old:       old.String(),
			New:       m.String(),
		},
		c.tempoChangedLocked(),
	}
	c.mu.Unlock()

	c.emit(emitted)
}

// Reset abandons the session and returns to the initial state, canceling
// any pending idle timer.
func (c *Counter) Reset() {
	c.mu.Lock()

	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	prev := c.state
	c.window.Clear()
	c.lastTap = time.Time{}
	c.state = StateInitial

	emitted := []events.Event{&events.SessionResetEvent{
		BaseEvent: events.NewCounterEvent(events.EventSessionReset),
		Reason:    "user",
	}}
	if prev != StateInitial {
		emitted = append(emitted, c.stateChangedLocked(prev, "reset"))
	}
	emitted = append(emitted, c.tempoChangedLocked())
	c.mu.Unlock()

	c.emit(emitted)
}

// Close cancels the pending idle timer. Safe to call more than once.
func (c *Counter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Snapshot returns a consistent view of the counter for rendering.
func (c *Counter) Snapshot() Reading {
	c.mu.Lock()
	defer c.mu.Unlock()

	intervals := c.window.Intervals()
	cpm := tempo.ClicksPerMinute(intervals)
	return Reading{
		State:     c.state,
		Label:     c.labelLocked(),
		CPM:       cpm,
		BPM:       tempo.BeatsPerMinute(cpm, c.method, c.meter),
		MPM:       tempo.MeasuresPerMinute(cpm, c.method, c.meter),
		Meter:     c.meter,
		Method:    c.method,
		Intervals: intervals,
		LastTap:   c.lastTap,
	}
}

// SessionActive reports whether interval data is currently being collected.
func (s State) SessionActive() bool {
	return s == StateFirstTap || s == StateTapping
}

func (c *Counter) labelLocked() string {
	if c.state.SessionActive() {
		return "Again"
	}
	return tempo.InstructionLabel(c.method, c.meter)
}

func (c *Counter) stateChangedLocked(from State, reason string) events.Event {
	return &events.StateChangedEvent{
		BaseEvent: events.NewCounterEvent(events.EventStateChanged),
		From:      string(from),
		To:        string(c.state),
		Reason:    reason,
	}
}

func (c *Counter) tempoChangedLocked() events.Event {
	cpm := tempo.ClicksPerMinute(c.window.Intervals())
	return &events.TempoChangedEvent{
		BaseEvent: events.NewCounterEvent(events.EventTempoChanged),
		CPM:       cpm,
		BPM:       tempo.BeatsPerMinute(cpm, c.method, c.meter),
		MPM:       tempo.MeasuresPerMinute(cpm, c.method, c.meter),
	}
}

// emit publishes events outside the lock so a slow subscriber can never
// stall a transition.
func (c *Counter) emit(evts []events.Event) {
	if c.router == nil {
		return
	}
	for _, e := range evts {
		c.router.Emit(e)
	}
}
