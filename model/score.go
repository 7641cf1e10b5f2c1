package model

import (
	"strconv"

	"github.com/jsphweid/scoretree/duration"
	"github.com/jsphweid/scoretree/node"
	"github.com/jsphweid/scoretree/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Instruments maps instrument ids to their type in declaration order.
type Instruments = orderedmap.OrderedMap[string, InstrumentType]

// Performers maps performer ids to their instruments in declaration order.
type Performers = orderedmap.OrderedMap[string, *Instruments]

func NewInstruments() *Instruments {
	return orderedmap.New[string, InstrumentType]()
}

func NewPerformers() *Performers {
	return orderedmap.New[string, *Instruments]()
}

type Measure struct {
	Number   int               `json:"number"`
	Offset   duration.Duration `json:"offset"`
	Duration duration.Duration `json:"duration"`
}

func (m Measure) Span() duration.Span {
	return duration.SpanOf(m.Duration, m.Offset)
}

type TempoMarking struct {
	Offset      duration.Duration `json:"offset"`
	Value       float64           `json:"value"`
	Subdivision int               `json:"subdivision"`
}

type RehearsalMarkingType string

const (
	Alphabetical RehearsalMarkingType = "Alphabetical"
	Numerical    RehearsalMarkingType = "Numerical"
)

type RehearsalMarking struct {
	Number int                  `json:"number"`
	Type   RehearsalMarkingType `json:"type"`
	Offset duration.Duration    `json:"offset"`
}

// Label is "A", "B", ... "Z", "AA", ... for alphabetical markings and the
// number itself otherwise.
func (r RehearsalMarking) Label() string {
	if r.Type != Alphabetical || r.Number < 1 {
		return strconv.Itoa(r.Number)
	}
	var label []byte
	for n := r.Number; n > 0; n = (n - 1) / 26 {
		label = append([]byte{byte('A' + (n-1)%26)}, label...)
	}
	return string(label)
}

// Score is the result of a parse. It is read-only once returned.
type Score struct {
	Title             string             `json:"title"`
	Metadata          map[string]string  `json:"metadata"`
	Measures          []Measure          `json:"measures"`
	Nodes             []*node.Node       `json:"nodes"`
	TempoMarkings     []TempoMarking     `json:"tempo_markings"`
	RehearsalMarkings []RehearsalMarking `json:"rehearsal_markings"`
	Instruments       *Performers        `json:"instruments"`
	Diagnostics       []Diagnostic       `json:"diagnostics,omitempty"`
}

func (s *Score) Performers() []string {
	return util.OrderedKeys(s.Instruments)
}

// InstrumentsOf returns the declared instruments of a performer, or an
// empty table when the performer was never declared.
func (s *Score) InstrumentsOf(performerID string) *Instruments {
	if s.Instruments != nil {
		if instruments, ok := s.Instruments.Get(performerID); ok && instruments != nil {
			return instruments
		}
	}
	return NewInstruments()
}

func (s *Score) Leaves() []*node.Node {
	var leaves []*node.Node
	for _, n := range s.Nodes {
		leaves = append(leaves, n.Leaves()...)
	}
	return leaves
}

// Duration is the later of the end of the last measure and the end of the
// latest root node.
func (s *Score) Duration() duration.Duration {
	end := duration.Zero
	if len(s.Measures) > 0 {
		end = s.Measures[len(s.Measures)-1].Span().Stop
	}
	if len(s.Nodes) > 0 {
		end = duration.Max(end, node.SpanOf(s.Nodes...).Stop)
	}
	return end
}
