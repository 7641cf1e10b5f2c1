package model

import "fmt"

type Reason int

const (
	NoLeaf Reason = iota + 1
	NoPerformer
	NoInstrument
	StackUnderflow
	NoOpenContainer
	OrphanMetadataValue
	OrphanInstrumentType
	BeatWeight
	NegativeMeasureTime
)

var reasonNames = map[Reason]string{
	NoLeaf:               "no_leaf",
	NoPerformer:          "no_performer",
	NoInstrument:         "no_instrument",
	StackUnderflow:       "stack_underflow",
	NoOpenContainer:      "no_open_container",
	OrphanMetadataValue:  "orphan_metadata_value",
	OrphanInstrumentType: "orphan_instrument_type",
	BeatWeight:           "beat_weight",
	NegativeMeasureTime:  "negative_measure_time",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Diagnostic records input the parser skipped or could not place.
// Token is the index of the offending top-level token, or -1 when the
// problem was found after the scan.
type Diagnostic struct {
	Token      int    `json:"token"`
	Identifier string `json:"identifier"`
	Reason     Reason `json:"reason"`
	Detail     string `json:"detail,omitempty"`
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("token %d (%s): %v", d.Token, d.Identifier, d.Reason)
	if d.Detail != "" {
		s += ": " + d.Detail
	}
	return s
}
