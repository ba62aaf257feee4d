package tui

import (
	"time"

	"github.com/npratt/taptempo/internal/events"
	"github.com/npratt/taptempo/internal/tap"
)

// feedLine is one entry in the recent-activity feed.
type feedLine struct {
	Time time.Time
	Text string
}

// maxFeedLines bounds the recent-activity feed.
const maxFeedLines = 50

// model is the bubbletea model for the tap counter UI.
type model struct {
	counter   Counter
	eventChan <-chan events.Event

	// Latest counter snapshot; refreshed on every key and event.
	reading tap.Reading

	// Recent activity feed, newest last.
	feed []feedLine

	// UI state
	width  int
	height int
	keys   keyMap

	onQuit  func()
	version string
}

// newModel creates a model over the given counter and event subscription.
func newModel(counter Counter, eventChan <-chan events.Event, onQuit func(), version string) model {
	m := model{
		counter:   counter,
		eventChan: eventChan,
		keys:      defaultKeyMap(),
		onQuit:    onQuit,
		version:   version,
	}
	if counter != nil {
		m.reading = counter.Snapshot()
	}
	return m
}

// refresh re-reads the counter snapshot.
func (m *model) refresh() {
	if m.counter != nil {
		m.reading = m.counter.Snapshot()
	}
}

// pushFeed appends a line to the activity feed, trimming the oldest entries
// past the cap.
func (m *model) pushFeed(t time.Time, text string) {
	m.feed = append(m.feed, feedLine{Time: t, Text: text})
	if len(m.feed) > maxFeedLines {
		m.feed = m.feed[len(m.feed)-maxFeedLines:]
	}
}
