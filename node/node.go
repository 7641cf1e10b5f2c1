// Package node implements the rhythm tree: nested duration groupings whose
// children divide their parent's duration in proportion to beat weights.
package node

import (
	"encoding/json"

	"github.com/jsphweid/scoretree/component"
	"github.com/jsphweid/scoretree/duration"
)

// Node is one grouping in a rhythm tree. A root carries an absolute
// duration and offset from construction; every other node carries a beat
// weight until Normalize has run on its root.
type Node struct {
	beats      int
	duration   duration.Duration
	offset     duration.Duration
	children   []*Node
	components []component.Component

	// not owning, only read while traversing
	parent *Node
}

func NewRoot(d, offset duration.Duration) *Node {
	return &Node{duration: d, offset: offset}
}

// AddChild appends a child with the given beat weight and returns it.
func (n *Node) AddChild(beats int) *Node {
	child := &Node{beats: beats, parent: n}
	n.children = append(n.children, child)
	return child
}

func (n *Node) AddComponent(c component.Component) {
	n.components = append(n.components, c)
}

func (n *Node) Beats() int                  { return n.beats }
func (n *Node) Duration() duration.Duration { return n.duration }
func (n *Node) Offset() duration.Duration   { return n.offset }
func (n *Node) Children() []*Node           { return n.children }
func (n *Node) Components() []component.Component {
	return n.components
}
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) IsRoot() bool  { return n.parent == nil }
func (n *Node) IsLeaf() bool  { return len(n.children) == 0 }

func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Depth is 0 for a root.
func (n *Node) Depth() int {
	var depth int
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

func (n *Node) Span() duration.Span {
	return duration.SpanOf(n.duration, n.offset)
}

// Walk visits n and its descendants depth first, parents before children.
// Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(d *Node) bool {
		if d.IsLeaf() {
			leaves = append(leaves, d)
		}
		return true
	})
	return leaves
}

// SpanOf returns the span from the earliest start to the latest stop of
// nodes.
func SpanOf(nodes ...*Node) duration.Span {
	spans := make([]duration.Span, 0, len(nodes))
	for _, n := range nodes {
		spans = append(spans, n.Span())
	}
	return duration.Union(spans...)
}

type jsonNode struct {
	Beats      int               `json:"beats,omitempty"`
	Duration   duration.Duration `json:"duration"`
	Offset     duration.Duration `json:"offset"`
	Components []json.RawMessage `json:"components,omitempty"`
	Children   []*Node           `json:"children,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	j := jsonNode{
		Beats:    n.beats,
		Duration: n.duration,
		Offset:   n.offset,
		Children: n.children,
	}
	for _, c := range n.components {
		data, err := component.Marshal(c)
		if err != nil {
			return nil, err
		}
		j.Components = append(j.Components, data)
	}
	return json.Marshal(j)
}
