package tui

import (
	"strings"
	"testing"

	"github.com/npratt/taptempo/internal/tap"
	"github.com/npratt/taptempo/internal/tempo"
)

func sizedModel(fc *fakeCounter) model {
	m := newModel(fc, nil, nil, "")
	m.width = 80
	m.height = 24
	return m
}

func TestView_Loading(t *testing.T) {
	m := newModel(newFakeCounter(), nil, nil, "")

	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before size = %q", got)
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newModel(newFakeCounter(), nil, nil, "")
	m.width = 30
	m.height = 8

	if got := m.View(); !strings.Contains(got, "Terminal too small") {
		t.Errorf("View() = %q, want too-small message", got)
	}
}

func TestView_InitialShowsInstructionAndPlaceholder(t *testing.T) {
	m := sizedModel(newFakeCounter())

	out := m.View()
	if !strings.Contains(out, "Click on each beat") {
		t.Errorf("view missing instruction label:\n%s", out)
	}
	if !strings.Contains(out, "--- bpm") {
		t.Errorf("view missing empty-tempo placeholder:\n%s", out)
	}
	if !strings.Contains(out, "Tap to begin") {
		t.Errorf("view missing feed placeholder:\n%s", out)
	}
}

func TestView_ActiveSessionShowsRates(t *testing.T) {
	fc := newFakeCounter()
	fc.reading = tap.Reading{
		State:     tap.StateTapping,
		Label:     "Again",
		CPM:       120,
		BPM:       480,
		MPM:       120,
		Meter:     tempo.Common,
		Method:    tempo.MethodMeasure,
		Intervals: []int64{500, 500, 500},
	}
	m := sizedModel(fc)
	m.refresh()

	out := m.View()
	if !strings.Contains(out, "480") {
		t.Errorf("view missing BPM:\n%s", out)
	}
	if !strings.Contains(out, "120.0 clicks/min") {
		t.Errorf("view missing CPM:\n%s", out)
	}
	if !strings.Contains(out, "120.0 measures/min") {
		t.Errorf("view missing MPM:\n%s", out)
	}
	if !strings.Contains(out, "Again") {
		t.Errorf("view missing tap label:\n%s", out)
	}
	if !strings.Contains(out, "TAPPING") {
		t.Errorf("view missing state:\n%s", out)
	}
}

// The measure rate is hidden when the meter is a single beat.
func TestView_BeatMeterHidesMeasureRate(t *testing.T) {
	fc := newFakeCounter()
	fc.reading = tap.Reading{
		State:     tap.StateTapping,
		Label:     "Again",
		CPM:       120,
		BPM:       120,
		MPM:       120,
		Meter:     tempo.Beat,
		Method:    tempo.MethodBeat,
		Intervals: []int64{500},
	}
	m := sizedModel(fc)
	m.refresh()

	out := m.View()
	if strings.Contains(out, "measures/min") {
		t.Errorf("measure rate should be hidden for the beat meter:\n%s", out)
	}
}

func TestView_SelectorsNameAllMeters(t *testing.T) {
	m := sizedModel(newFakeCounter())

	out := m.View()
	for _, want := range []string{"beat", "double", "waltz", "common", "per beat", "per measure"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing selector %q:\n%s", want, out)
		}
	}
}

func TestView_PausedState(t *testing.T) {
	fc := newFakeCounter()
	fc.reading = tap.Reading{
		State:     tap.StatePaused,
		Label:     "Click on each beat",
		CPM:       100,
		BPM:       100,
		MPM:       25,
		Meter:     tempo.Common,
		Method:    tempo.MethodBeat,
		Intervals: []int64{600, 600},
	}
	m := sizedModel(fc)
	m.refresh()

	out := m.View()
	if !strings.Contains(out, "PAUSED") {
		t.Errorf("view missing paused state:\n%s", out)
	}
	// Last known tempo keeps displaying while paused.
	if !strings.Contains(out, "100") {
		t.Errorf("view missing retained tempo:\n%s", out)
	}
}

func TestView_FooterHelp(t *testing.T) {
	m := sizedModel(newFakeCounter())

	out := m.View()
	if !strings.Contains(out, "space: tap") || !strings.Contains(out, "q: quit") {
		t.Errorf("view missing footer help:\n%s", out)
	}
}

func TestSafeWidth(t *testing.T) {
	if safeWidth(-5) != 1 || safeWidth(0) != 1 {
		t.Error("safeWidth should clamp to 1")
	}
	if safeWidth(42) != 42 {
		t.Error("safeWidth should pass positive values through")
	}
}
