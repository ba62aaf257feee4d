package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/taptempo/internal/tap"
	"github.com/npratt/taptempo/internal/tempo"
)

const (
	minWidth  = 48
	minHeight = 14
)

// View implements tea.Model. This renders the full display.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Need %dx%d minimum.",
			m.width, m.height, minWidth, minHeight)
	}

	w := safeWidth(m.width - 4) // Account for container borders

	var sections []string
	sections = append(sections, m.renderHeader(w))
	sections = append(sections, m.renderDivider(w))
	sections = append(sections, m.renderReadout(w))
	sections = append(sections, m.renderSelectors(w))
	sections = append(sections, m.renderDivider(w))
	sections = append(sections, m.renderFeed(w))
	sections = append(sections, m.renderDivider(w))
	sections = append(sections, m.renderFooter())

	content := strings.Join(sections, "\n")

	rendered := styles.Container.
		Width(safeWidth(m.width - 2)).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, rendered)
}

// renderHeader renders the title line with state indicator and version.
func (m model) renderHeader(w int) string {
	title := styles.Title.Render("taptempo")
	state := m.renderState()
	left := title + "  " + state

	right := ""
	if m.version != "" {
		right = styles.Version.Render(m.version)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		strings.Repeat(" ", max(1, w-lipgloss.Width(left)-lipgloss.Width(right))),
		right,
	)
}

// renderState renders the session state with appropriate styling.
func (m model) renderState() string {
	switch m.reading.State {
	case tap.StateFirstTap, tap.StateTapping:
		return styles.StateActive.Render(strings.ToUpper(string(m.reading.State)))
	case tap.StatePaused:
		return styles.StatePaused.Render("PAUSED")
	default:
		return styles.StateInitial.Render("READY")
	}
}

// renderReadout renders the derived tempo block and the tap prompt.
func (m model) renderReadout(w int) string {
	var lines []string

	if m.reading.CPM == 0 {
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Center,
			styles.NoTempo.Render("--- bpm")))
	} else {
		bpm := styles.BPM.Render(fmt.Sprintf("%.0f", m.reading.BPM)) +
			styles.BPMUnit.Render(" bpm")
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Center, bpm))

		sub := fmt.Sprintf("%.1f clicks/min", m.reading.CPM)
		// The measure rate is meaningless when a measure is a single beat.
		if m.reading.Meter != tempo.Beat {
			sub += fmt.Sprintf("   %.1f measures/min", m.reading.MPM)
		}
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Center,
			styles.Subrate.Render(sub)))
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Center,
		styles.TapLabel.Render("[ "+m.reading.Label+" ]")))

	return strings.Join(lines, "\n")
}

// renderSelectors renders the meter and method segmented controls.
func (m model) renderSelectors(w int) string {
	var segs []string
	for _, mtr := range tempo.Meters {
		text := fmt.Sprintf(" %d %s ", mtr.Beats(), mtr.String())
		if mtr == m.reading.Meter {
			segs = append(segs, styles.SegmentActive.Render(text))
		} else {
			segs = append(segs, styles.SegmentInactive.Render(text))
		}
	}
	meterLine := styles.SelectorName.Render("meter  ") + strings.Join(segs, " ")

	var methods []string
	for _, mth := range []tempo.Method{tempo.MethodBeat, tempo.MethodMeasure} {
		text := fmt.Sprintf(" per %s ", mth.String())
		if mth == m.reading.Method {
			methods = append(methods, styles.SegmentActive.Render(text))
		} else {
			methods = append(methods, styles.SegmentInactive.Render(text))
		}
	}
	methodLine := styles.SelectorName.Render("count  ") + strings.Join(methods, " ")

	return meterLine + "\n" + methodLine
}

// renderFeed renders the recent-activity feed, newest at the bottom.
func (m model) renderFeed(w int) string {
	visible := m.feedLines()

	if len(m.feed) == 0 {
		padding := strings.Repeat("\n", visible/2)
		return padding + lipgloss.PlaceHorizontal(w, lipgloss.Center,
			styles.NoTempo.Render("Tap to begin")) +
			strings.Repeat("\n", max(0, visible-visible/2-1))
	}

	start := 0
	if len(m.feed) > visible {
		start = len(m.feed) - visible
	}

	var lines []string
	for _, fl := range m.feed[start:] {
		prefix := styles.FeedTime.Render(fl.Time.Format("15:04:05") + " ")
		text := fl.Text
		if lipgloss.Width(prefix)+len(text) > w {
			text = text[:max(0, w-lipgloss.Width(prefix)-3)] + "..."
		}
		lines = append(lines, prefix+styles.FeedText.Render(text))
	}

	for len(lines) < visible {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// feedLines returns the number of feed lines that fit in the viewport.
// Height minus: border (2), header (1), readout (4), selectors (2),
// dividers (3), footer (1).
func (m model) feedLines() int {
	return max(1, m.height-13)
}

// renderDivider renders a horizontal divider line.
func (m model) renderDivider(w int) string {
	return styles.Divider.Render(strings.Repeat("─", w))
}

// renderFooter renders keyboard shortcuts help text.
func (m model) renderFooter() string {
	return styles.Footer.Render("space: tap  1-4/m: meter  c: method  r: reset  q: quit")
}

// safeWidth returns a width that is at least 1 to prevent negative values.
func safeWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}
