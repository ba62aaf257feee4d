// Package tempo provides the meter and counting-method enumerations and the
// pure conversion arithmetic between click, beat, and measure rates.
package tempo

import (
	"fmt"
	"strings"
)

// Meter is the number of beats per measure for the selected time signature.
type Meter int

// Supported meters. The numeric value is the beat multiplier per measure,
// so Beat is always a safe divisor.
const (
	Beat   Meter = 1
	Double Meter = 2
	Waltz  Meter = 3
	Common Meter = 4
)

// Meters lists all selectable meters in display order.
var Meters = []Meter{Beat, Double, Waltz, Common}

// Beats returns the beat count per measure.
func (m Meter) Beats() int {
	return int(m)
}

// Valid reports whether m is one of the selectable meters.
func (m Meter) Valid() bool {
	return m >= Beat && m <= Common
}

// String returns the meter's configuration name.
func (m Meter) String() string {
	switch m {
	case Beat:
		return "beat"
	case Double:
		return "double"
	case Waltz:
		return "waltz"
	case Common:
		return "common"
	default:
		return fmt.Sprintf("meter(%d)", int(m))
	}
}

// ParseMeter converts a config or flag value into a Meter. It accepts both
// the names ("waltz") and the beat counts ("3").
func ParseMeter(s string) (Meter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beat", "1":
		return Beat, nil
	case "double", "2":
		return Double, nil
	case "waltz", "3":
		return Waltz, nil
	case "common", "4":
		return Common, nil
	default:
		return 0, fmt.Errorf("parse meter %q: expected beat, double, waltz, or common", s)
	}
}

// Method says what one tap stands for: a single beat or a full measure.
type Method int

// Counting methods.
const (
	MethodBeat Method = iota
	MethodMeasure
)

// String returns the method's configuration name.
func (m Method) String() string {
	switch m {
	case MethodBeat:
		return "beat"
	case MethodMeasure:
		return "measure"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod converts a config or flag value into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beat":
		return MethodBeat, nil
	case "measure":
		return MethodMeasure, nil
	default:
		return 0, fmt.Errorf("parse method %q: expected beat or measure", s)
	}
}
