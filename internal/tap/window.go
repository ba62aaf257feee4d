// Package tap implements the tap-timing state machine: it tracks the user's
// tapping session, keeps a bounded rolling window of inter-tap intervals,
// and owns the meter/method selection that scales those intervals into a
// tempo.
package tap

// DefaultWindowCapacity is the number of recent inter-tap intervals the
// counter keeps.
const DefaultWindowCapacity = 10

// Window is a fixed-capacity ring buffer of inter-tap intervals in
// milliseconds. Push and evict are O(1); the oldest interval is evicted when
// a push exceeds capacity.
type Window struct {
	buf  []int64
	head int // index of the oldest interval
	size int
}

// NewWindow creates a window holding up to capacity intervals. Capacities
// below 1 fall back to DefaultWindowCapacity.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = DefaultWindowCapacity
	}
	return &Window{buf: make([]int64, capacity)}
}

// Push appends an interval, evicting the oldest when full.
func (w *Window) Push(intervalMs int64) {
	tail := (w.head + w.size) % len(w.buf)
	w.buf[tail] = intervalMs
	if w.size < len(w.buf) {
		w.size++
	} else {
		w.head = (w.head + 1) % len(w.buf)
	}
}

// Len returns the number of stored intervals.
func (w *Window) Len() int {
	return w.size
}

// Cap returns the window capacity.
func (w *Window) Cap() int {
	return len(w.buf)
}

// Intervals returns the stored intervals oldest-first as a fresh slice.
func (w *Window) Intervals() []int64 {
	out := make([]int64, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}
	return out
}

// Replace overwrites the window contents with the given intervals,
// oldest-first. Inputs longer than the capacity keep only the most recent
// entries.
func (w *Window) Replace(intervals []int64) {
	w.head = 0
	w.size = 0
	start := 0
	if len(intervals) > len(w.buf) {
		start = len(intervals) - len(w.buf)
	}
	for _, d := range intervals[start:] {
		w.buf[w.size] = d
		w.size++
	}
}

// Clear empties the window.
func (w *Window) Clear() {
	w.head = 0
	w.size = 0
}
