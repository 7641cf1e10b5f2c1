package duration

import "fmt"

type Relationship int

const (
	None Relationship = iota
	Adjacent
	Overlapping
)

func (r Relationship) String() string {
	switch r {
	case Adjacent:
		return "adjacent"
	case Overlapping:
		return "overlapping"
	}
	return "none"
}

// Span is the closed interval [Start, Stop]. Duration is always Stop - Start.
type Span struct {
	Start    Duration `json:"start"`
	Stop     Duration `json:"stop"`
	Duration Duration `json:"duration"`
}

// SpanBetween builds a span from two durations given in any order.
func SpanBetween(a, b Duration) Span {
	if b.Less(a) {
		a, b = b, a
	}
	return Span{Start: a, Stop: b, Duration: b.Sub(a)}
}

// SpanFromTo builds a span from start to stop. Reversed bounds are swapped.
func SpanFromTo(start, stop Duration) Span {
	return SpanBetween(start, stop)
}

// SpanOf builds a span of the given total duration beginning at start.
func SpanOf(total, start Duration) Span {
	return SpanBetween(start, start.Add(total))
}

// Relationship classifies how s and o touch. Sharing only a boundary point
// is Adjacent; spans with the same start always overlap.
func (s Span) Relationship(o Span) Relationship {
	switch {
	case s.Start.Less(o.Start):
		return classify(s.Stop, o.Start)
	case o.Start.Less(s.Start):
		return classify(o.Stop, s.Start)
	}
	return Overlapping
}

func classify(firstStop, secondStart Duration) Relationship {
	switch firstStop.Cmp(secondStart) {
	case -1:
		return None
	case 1:
		return Overlapping
	}
	return Adjacent
}

func (s Span) Contains(d Duration) bool {
	return !d.Less(s.Start) && !s.Stop.Less(d)
}

// ContainsHalfOpen reports whether Start <= d < Stop.
func (s Span) ContainsHalfOpen(d Duration) bool {
	return !d.Less(s.Start) && d.Less(s.Stop)
}

// Union returns the smallest span covering every given span, or the zero
// span when none are given.
func Union(spans ...Span) Span {
	if len(spans) == 0 {
		return Span{}
	}
	start, stop := spans[0].Start, spans[0].Stop
	for _, s := range spans[1:] {
		start = Min(start, s.Start)
		stop = Max(stop, s.Stop)
	}
	return SpanFromTo(start, stop)
}

func (s Span) String() string {
	return fmt.Sprintf("start: %v; stop: %v; total: %v", s.Start, s.Stop, s.Duration)
}
