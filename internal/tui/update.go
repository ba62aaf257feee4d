package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/taptempo/internal/events"
	"github.com/npratt/taptempo/internal/tempo"
)

// eventMsg wraps a counter event for the bubbletea message system.
type eventMsg struct {
	event events.Event
}

// channelClosedMsg signals that the event channel was closed.
type channelClosedMsg struct{}

// waitForEvent creates a command that waits for the next counter event.
// Returns channelClosedMsg if the channel is closed.
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return eventMsg{event: event}
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.Batch(
		waitForEvent(m.eventChan),
		tea.EnterAltScreen,
	)
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventMsg:
		m.handleEvent(msg.event)
		return m, waitForEvent(m.eventChan)

	case channelClosedMsg:
		// Router closed underneath us - clean exit.
		return m, tea.Quit

	default:
		return m, nil
	}
}

// handleKey processes keyboard input. Keys mutate the counter only through
// its operations; the snapshot is re-read afterwards.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.onQuit != nil {
			m.onQuit()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tap):
		m.counter.Tap(time.Now())

	case key.Matches(msg, m.keys.MeterBeat):
		m.counter.SetMeter(tempo.Beat)
	case key.Matches(msg, m.keys.MeterDouble):
		m.counter.SetMeter(tempo.Double)
	case key.Matches(msg, m.keys.MeterWaltz):
		m.counter.SetMeter(tempo.Waltz)
	case key.Matches(msg, m.keys.MeterCommon):
		m.counter.SetMeter(tempo.Common)

	case key.Matches(msg, m.keys.CycleMeter):
		m.counter.SetMeter(nextMeter(m.reading.Meter))

	case key.Matches(msg, m.keys.Method):
		if m.reading.Method == tempo.MethodBeat {
			m.counter.SetMethod(tempo.MethodMeasure)
		} else {
			m.counter.SetMethod(tempo.MethodBeat)
		}

	case key.Matches(msg, m.keys.Reset):
		m.counter.Reset()

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// nextMeter cycles through the selectable meters in display order.
func nextMeter(cur tempo.Meter) tempo.Meter {
	for i, mtr := range tempo.Meters {
		if mtr == cur {
			return tempo.Meters[(i+1)%len(tempo.Meters)]
		}
	}
	return tempo.Meters[0]
}

// handleEvent records counter events in the activity feed and refreshes the
// snapshot. Idle-timer transitions arrive here, which is what repaints the
// display without any keyboard input.
func (m *model) handleEvent(event events.Event) {
	if text := formatEvent(event); text != "" {
		m.pushFeed(event.Timestamp(), text)
	}
	m.refresh()
}

// formatEvent renders an event as a feed line. Tempo updates are visible in
// the readout already and are skipped.
func formatEvent(event events.Event) string {
	switch e := event.(type) {
	case *events.SessionStartEvent:
		return "session started"
	case *events.TapRecordedEvent:
		return fmt.Sprintf("tap  %d ms  (window %d)", e.IntervalMs, e.WindowLen)
	case *events.StateChangedEvent:
		if e.Reason == "idle_timeout" {
			return fmt.Sprintf("idle: %s", e.To)
		}
		return ""
	case *events.SessionResetEvent:
		if e.Reason == "user" {
			return "reset"
		}
		return "session abandoned"
	case *events.MeterChangedEvent:
		return fmt.Sprintf("meter: %s", e.New)
	case *events.MethodChangedEvent:
		return fmt.Sprintf("method: per %s", e.New)
	default:
		return ""
	}
}
