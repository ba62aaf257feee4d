package tempo

import (
	"math"
	"testing"
)

func TestClicksPerMinute_Empty(t *testing.T) {
	if got := ClicksPerMinute(nil); got != 0 {
		t.Errorf("ClicksPerMinute(nil) = %v, want 0", got)
	}
	if got := ClicksPerMinute([]int64{}); got != 0 {
		t.Errorf("ClicksPerMinute([]) = %v, want 0", got)
	}
}

func TestClicksPerMinute(t *testing.T) {
	tests := []struct {
		name      string
		intervals []int64
		want      float64
	}{
		{"single 500ms interval", []int64{500}, 120},
		{"steady 500ms", []int64{500, 500, 500}, 120},
		{"steady 1000ms", []int64{1000, 1000}, 60},
		{"mean of mixed intervals", []int64{400, 600}, 120},
		{"fast taps", []int64{250, 250, 250, 250}, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClicksPerMinute(tt.intervals)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ClicksPerMinute(%v) = %v, want %v", tt.intervals, got, tt.want)
			}
		})
	}
}

// Taps at t=0, 500, 1000, 1500 ms with method=measure and meter=common give
// intervals [500 500 500]: 120 clicks/min, 480 beats/min, 120 measures/min.
func TestDerivedRates_MeasureMethodCommonMeter(t *testing.T) {
	intervals := []int64{500, 500, 500}

	cpm := ClicksPerMinute(intervals)
	if cpm != 120 {
		t.Fatalf("CPM = %v, want 120", cpm)
	}

	if bpm := BeatsPerMinute(cpm, MethodMeasure, Common); bpm != 480 {
		t.Errorf("BPM = %v, want 480", bpm)
	}
	if mpm := MeasuresPerMinute(cpm, MethodMeasure, Common); mpm != 120 {
		t.Errorf("MPM = %v, want 120", mpm)
	}
}

func TestDerivedRates_BeatMethod(t *testing.T) {
	cpm := 120.0

	if bpm := BeatsPerMinute(cpm, MethodBeat, Waltz); bpm != 120 {
		t.Errorf("BPM = %v, want 120 (beat method leaves CPM unchanged)", bpm)
	}
	if mpm := MeasuresPerMinute(cpm, MethodBeat, Waltz); mpm != 40 {
		t.Errorf("MPM = %v, want 40", mpm)
	}
}

func TestMeasuresPerMinute_BeatMeterIsSafeDivisor(t *testing.T) {
	if mpm := MeasuresPerMinute(90, MethodBeat, Beat); mpm != 90 {
		t.Errorf("MPM = %v, want 90", mpm)
	}
}

func TestRescaleIntervals(t *testing.T) {
	tests := []struct {
		name     string
		in       []int64
		oldMeter Meter
		newMeter Meter
		want     []int64
	}{
		// Meter change common -> waltz with method=measure:
		// round(400/4)*3 = 300.
		{"common to waltz", []int64{400}, Common, Waltz, []int64{300}},
		{"measure to per-beat unit", []int64{2000, 2000}, Common, Beat, []int64{500, 500}},
		{"per-beat unit to measure", []int64{500, 500}, Beat, Waltz, []int64{1500, 1500}},
		{"rounding half up", []int64{501}, Double, Beat, []int64{251}},
		{"empty input", nil, Common, Waltz, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RescaleIntervals(tt.in, tt.oldMeter, tt.newMeter)
			if len(got) != len(tt.want) {
				t.Fatalf("RescaleIntervals = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("RescaleIntervals[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRescaleIntervals_DoesNotModifyInput(t *testing.T) {
	in := []int64{400, 600}
	_ = RescaleIntervals(in, Common, Waltz)
	if in[0] != 400 || in[1] != 600 {
		t.Errorf("input modified: %v", in)
	}
}

// Converting method beat -> measure -> beat with the same meter must
// reproduce the original intervals up to ±1ms per interval.
func TestRescaleIntervals_MethodRoundTrip(t *testing.T) {
	original := []int64{499, 500, 501, 333, 667}

	toMeasure := RescaleIntervals(original, Beat, Waltz)
	back := RescaleIntervals(toMeasure, Waltz, Beat)

	for i := range original {
		diff := back[i] - original[i]
		if diff < -1 || diff > 1 {
			t.Errorf("round-trip interval %d: got %d, want %d ±1", i, back[i], original[i])
		}
	}
}

func TestInstructionLabel(t *testing.T) {
	tests := []struct {
		method Method
		meter  Meter
		want   string
	}{
		{MethodBeat, Common, "Click on each beat"},
		{MethodBeat, Beat, "Click on each beat"},
		{MethodMeasure, Beat, "Click on each beat"},
		{MethodMeasure, Double, "Click once every 2 beats"},
		{MethodMeasure, Waltz, "Click once every 3 beats"},
		{MethodMeasure, Common, "Click once every 4 beats"},
	}

	for _, tt := range tests {
		got := InstructionLabel(tt.method, tt.meter)
		if got != tt.want {
			t.Errorf("InstructionLabel(%v, %v) = %q, want %q", tt.method, tt.meter, got, tt.want)
		}
	}
}
