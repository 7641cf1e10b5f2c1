package midi

import (
	"math"
	"strconv"

	"gitlab.com/gomidi/midi/v2"
)

// PitchName names a pitch value given in MIDI note numbers. Quarter tones
// get a "+" after the name of the note below; values off the MIDI range are
// printed as numbers.
func PitchName(v float64) string {
	if math.IsNaN(v) || v < 0 || v >= 128 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	note := math.Floor(v)
	name := midi.Note(uint8(note)).String()
	switch rest := v - note; {
	case rest == 0:
		return name
	case rest == 0.5:
		return name + "+"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func PitchNames(values []float64) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = PitchName(v)
	}
	return names
}
