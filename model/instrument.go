package model

import (
	"errors"
	"fmt"
)

var ErrInvalidInstrumentType = errors.New("invalid instrument type")

type InstrumentType string

const (
	Flute       InstrumentType = "Flute"
	Oboe        InstrumentType = "Oboe"
	Clarinet    InstrumentType = "Clarinet"
	Bassoon     InstrumentType = "Bassoon"
	Saxophone   InstrumentType = "Saxophone"
	Horn        InstrumentType = "Horn"
	Trumpet     InstrumentType = "Trumpet"
	Trombone    InstrumentType = "Trombone"
	Tuba        InstrumentType = "Tuba"
	Violin      InstrumentType = "Violin"
	Viola       InstrumentType = "Viola"
	Violoncello InstrumentType = "Violoncello"
	Contrabass  InstrumentType = "Contrabass"
	Guitar      InstrumentType = "Guitar"
	Harp        InstrumentType = "Harp"
	Piano       InstrumentType = "Piano"
	Percussion  InstrumentType = "Percussion"
	Voice       InstrumentType = "Voice"
)

var instrumentTypes = map[InstrumentType]bool{
	Flute: true, Oboe: true, Clarinet: true, Bassoon: true, Saxophone: true,
	Horn: true, Trumpet: true, Trombone: true, Tuba: true,
	Violin: true, Viola: true, Violoncello: true, Contrabass: true,
	Guitar: true, Harp: true, Piano: true, Percussion: true, Voice: true,
}

// ParseInstrumentType accepts only the exact names above.
func ParseInstrumentType(s string) (InstrumentType, error) {
	t := InstrumentType(s)
	if !instrumentTypes[t] {
		return "", fmt.Errorf("%w: %q", ErrInvalidInstrumentType, s)
	}
	return t, nil
}
