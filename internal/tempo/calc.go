package tempo

import (
	"fmt"
	"math"
)

// millisPerMinute converts a mean inter-tap interval into a per-minute rate.
const millisPerMinute = 60000

// ClicksPerMinute returns the raw tap rate for the given inter-tap intervals
// in milliseconds. An empty window yields 0 rather than an error; "no taps
// yet" is a defined reading, not a fault.
func ClicksPerMinute(intervals []int64) float64 {
	if len(intervals) == 0 {
		return 0
	}
	var sum int64
	for _, d := range intervals {
		sum += d
	}
	mean := float64(sum) / float64(len(intervals))
	return millisPerMinute / mean
}

// BeatsPerMinute derives the beat rate from the click rate. When the user
// taps per beat the click rate already is the beat rate; when they tap per
// measure each click covers a full measure of beats.
func BeatsPerMinute(cpm float64, method Method, meter Meter) float64 {
	if method == MethodBeat {
		return cpm
	}
	return cpm * float64(meter.Beats())
}

// MeasuresPerMinute derives the measure rate from the click rate.
func MeasuresPerMinute(cpm float64, method Method, meter Meter) float64 {
	if method == MethodMeasure {
		return cpm
	}
	return cpm / float64(meter.Beats())
}

// RescaleIntervals maps each stored interval x to round(x/old) * new, in
// milliseconds. This keeps the displayed tempo stable across a meter or
// method change by rescaling the raw tap history instead of recomputing it,
// so one history keeps informing both unit systems. The input slice is not
// modified. Callers skip the call entirely when old == new: round(x/m)*m can
// differ from x by rounding, and the no-op case must be exact.
func RescaleIntervals(intervals []int64, oldMeter, newMeter Meter) []int64 {
	out := make([]int64, len(intervals))
	for i, x := range intervals {
		perBeat := math.Round(float64(x) / float64(oldMeter.Beats()))
		out[i] = int64(perBeat) * int64(newMeter.Beats())
	}
	return out
}

// InstructionLabel is the tap-button prompt shown while no session is
// active. Under the measure method it names the selected meter's beat count.
func InstructionLabel(method Method, meter Meter) string {
	if method == MethodBeat || meter == Beat {
		return "Click on each beat"
	}
	return fmt.Sprintf("Click once every %d beats", meter.Beats())
}
