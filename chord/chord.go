package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/scoretree/component"
	"github.com/jsphweid/scoretree/duration"
	"github.com/jsphweid/scoretree/model"
	"github.com/jsphweid/scoretree/node"
	"golang.org/x/exp/slices"
)

// Sounding is a pitch event together with the leaf span it lasts for.
type Sounding struct {
	Span  duration.Span   `json:"span"`
	Pitch component.Pitch `json:"pitch"`
}

// Sonority is everything sounding at one onset. Span covers the leaves that
// start at the onset.
type Sonority struct {
	Span    duration.Span `json:"span"`
	Pitches []float64     `json:"pitches"`
	Key     string        `json:"key"`
}

func Key(values []float64) string {
	sorted := append([]float64(nil), values...)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, "-")
}

func pitchesOf(score *model.Score) []Sounding {
	var res []Sounding
	for _, leaf := range score.Leaves() {
		for _, c := range leaf.Components() {
			if pitch, ok := c.(component.Pitch); ok {
				res = append(res, Sounding{Span: leaf.Span(), Pitch: pitch})
			}
		}
	}
	return res
}

// SoundingAt returns the pitch events whose leaf has started but not ended
// at t.
func SoundingAt(score *model.Score, t duration.Duration) []Sounding {
	var res []Sounding
	for _, s := range pitchesOf(score) {
		if s.Span.ContainsHalfOpen(t) {
			res = append(res, s)
		}
	}
	return res
}

// Sonorities walks every onset of a pitch event in time order and collects
// the pitches sounding there, including ones held over from earlier leaves.
func Sonorities(score *model.Score) []Sonority {
	all := pitchesOf(score)
	slices.SortStableFunc(all, func(a, b Sounding) bool {
		return a.Span.Start.Less(b.Span.Start)
	})

	var res []Sonority
	for i := 0; i < len(all); {
		onset := all[i].Span.Start
		var starting []duration.Span
		for ; i < len(all) && all[i].Span.Start == onset; i++ {
			starting = append(starting, all[i].Span)
		}
		span := duration.Union(starting...)

		var pitches []float64
		for _, s := range all {
			if onset.Less(s.Span.Start) {
				break
			}
			if s.Span.Relationship(span) == duration.Overlapping {
				pitches = append(pitches, s.Pitch.Values...)
			}
		}
		slices.Sort(pitches)
		pitches = slices.Compact(pitches)
		if len(pitches) == 0 {
			continue
		}
		res = append(res, Sonority{Span: span, Pitches: pitches, Key: Key(pitches)})
	}
	return res
}

// Leaves returns the leaves of the forest that carry at least one pitch.
func Leaves(score *model.Score) []*node.Node {
	var res []*node.Node
	for _, leaf := range score.Leaves() {
		if slices.IndexFunc(leaf.Components(), func(c component.Component) bool {
			return c.Kind() == component.KindPitch
		}) >= 0 {
			res = append(res, leaf)
		}
	}
	return res
}
