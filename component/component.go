// Package component holds the musical events that decorate the leaves of a
// rhythm tree.
package component

import "encoding/json"

type Kind int

const (
	KindPitch Kind = iota + 1
	KindDynamicMarking
	KindDynamicMarkingSpannerStart
	KindDynamicMarkingSpannerStop
	KindArticulation
	KindSlurStart
	KindSlurStop
	KindExtensionStart
	KindExtensionStop
	KindRest
)

var kindNames = map[Kind]string{
	KindPitch:                      "pitch",
	KindDynamicMarking:             "dynamic_marking",
	KindDynamicMarkingSpannerStart: "dynamic_marking_spanner_start",
	KindDynamicMarkingSpannerStop:  "dynamic_marking_spanner_stop",
	KindArticulation:               "articulation",
	KindSlurStart:                  "slur_start",
	KindSlurStop:                   "slur_stop",
	KindExtensionStart:             "extension_start",
	KindExtensionStop:              "extension_stop",
	KindRest:                       "rest",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Component is implemented only by the types in this package.
type Component interface {
	Kind() Kind
	Performer() string
	Instrument() string
	component()
}

// Context identifies who plays an event.
type Context struct {
	PerformerID  string
	InstrumentID string
}

func (c Context) Performer() string  { return c.PerformerID }
func (c Context) Instrument() string { return c.InstrumentID }
func (Context) component()           {}

type Pitch struct {
	Context
	Values []float64
}

type DynamicMarking struct {
	Context
	Value string
}

type DynamicMarkingSpannerStart struct{ Context }
type DynamicMarkingSpannerStop struct{ Context }

type Articulation struct {
	Context
	Values []string
}

type SlurStart struct{ Context }
type SlurStop struct{ Context }
type ExtensionStart struct{ Context }
type ExtensionStop struct{ Context }
type Rest struct{ Context }

func (Pitch) Kind() Kind                      { return KindPitch }
func (DynamicMarking) Kind() Kind             { return KindDynamicMarking }
func (DynamicMarkingSpannerStart) Kind() Kind { return KindDynamicMarkingSpannerStart }
func (DynamicMarkingSpannerStop) Kind() Kind  { return KindDynamicMarkingSpannerStop }
func (Articulation) Kind() Kind               { return KindArticulation }
func (SlurStart) Kind() Kind                  { return KindSlurStart }
func (SlurStop) Kind() Kind                   { return KindSlurStop }
func (ExtensionStart) Kind() Kind             { return KindExtensionStart }
func (ExtensionStop) Kind() Kind              { return KindExtensionStop }
func (Rest) Kind() Kind                       { return KindRest }

type view struct {
	Kind         string    `json:"kind"`
	PerformerID  string    `json:"performer_id"`
	InstrumentID string    `json:"instrument_id"`
	Pitches      []float64 `json:"pitches,omitempty"`
	Values       []string  `json:"values,omitempty"`
	Value        string    `json:"value,omitempty"`
}

// Marshal encodes c with its kind name alongside the performer and
// instrument ids.
func Marshal(c Component) ([]byte, error) {
	v := view{Kind: c.Kind().String(), PerformerID: c.Performer(), InstrumentID: c.Instrument()}
	switch c := c.(type) {
	case Pitch:
		v.Pitches = c.Values
	case DynamicMarking:
		v.Value = c.Value
	case Articulation:
		v.Values = c.Values
	case DynamicMarkingSpannerStart, DynamicMarkingSpannerStop,
		SlurStart, SlurStop, ExtensionStart, ExtensionStop, Rest:
		// no payload
	}
	return json.Marshal(v)
}
