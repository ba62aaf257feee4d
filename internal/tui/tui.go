// Package tui provides the terminal UI for taptempo using bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/taptempo/internal/events"
	"github.com/npratt/taptempo/internal/tap"
	"github.com/npratt/taptempo/internal/tempo"
)

// Counter is the slice of the tap counter the UI drives. The UI only ever
// taps, changes the selection, and reads snapshots; it never mutates session
// state directly.
type Counter interface {
	Tap(now time.Time)
	SetMeter(m tempo.Meter)
	SetMethod(m tempo.Method)
	Reset()
	Snapshot() tap.Reading
}

// TUI is the terminal UI for the tap counter.
type TUI struct {
	counter   Counter
	eventChan <-chan events.Event
	onQuit    func()
	version   string
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI over the given counter and event subscription.
func New(counter Counter, eventChan <-chan events.Event, opts ...Option) *TUI {
	t := &TUI{
		counter:   counter,
		eventChan: eventChan,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithOnQuit sets the callback invoked when the user quits.
func WithOnQuit(fn func()) Option {
	return func(t *TUI) {
		t.onQuit = fn
	}
}

// WithVersion sets the version string shown in the header.
func WithVersion(v string) Option {
	return func(t *TUI) {
		t.version = v
	}
}

// Run starts the TUI and blocks until it exits.
func (t *TUI) Run() error {
	m := newModel(t.counter, t.eventChan, t.onQuit, t.version)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
