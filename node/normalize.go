package node

import (
	"fmt"
	"math/big"

	"github.com/jsphweid/scoretree/util"
)

type IssueKind int

const (
	NonPositiveBeats IssueKind = iota + 1
	NonPositiveBeatSum
)

func (k IssueKind) String() string {
	switch k {
	case NonPositiveBeats:
		return "non-positive beat weight"
	case NonPositiveBeatSum:
		return "non-positive beat sum"
	}
	return "unknown"
}

// Issue is an inconsistency found by MatchDurationsOfTree.
type Issue struct {
	Kind IssueKind
	// child indexes from the root down to the offending node
	Path []int
}

func (i Issue) Error() string {
	return fmt.Sprintf("%v at %v", i.Kind, i.Path)
}

// Normalize runs the match, scale and offset passes on the tree under n and
// returns whatever the match pass reported.
func (n *Node) Normalize() []Issue {
	issues := n.MatchDurationsOfTree()
	n.ScaleDurationsOfChildren()
	n.SetOffsetDurationOfChildren()
	return issues
}

// MatchDurationsOfTree checks that every node's children carry beat weights
// their parent's duration can be divided by. It never changes the tree.
func (n *Node) MatchDurationsOfTree() []Issue {
	var issues []Issue
	n.match(nil, &issues)
	return issues
}

func (n *Node) match(path []int, issues *[]Issue) {
	if n.IsLeaf() {
		return
	}
	for i, child := range n.children {
		childPath := append(append([]int(nil), path...), i)
		if child.beats <= 0 {
			*issues = append(*issues, Issue{Kind: NonPositiveBeats, Path: childPath})
		}
		child.match(childPath, issues)
	}
	if n.childBeats().Sign() <= 0 {
		*issues = append(*issues, Issue{Kind: NonPositiveBeatSum, Path: append([]int(nil), path...)})
	}
}

func (n *Node) childBeats() *big.Int {
	beats := make([]int, len(n.children))
	for i, child := range n.children {
		beats[i] = child.beats
	}
	return util.Sum(beats)
}

// ScaleDurationsOfChildren gives every descendant the share of its parent's
// duration that its beat weight claims among its siblings.
func (n *Node) ScaleDurationsOfChildren() {
	if n.IsLeaf() {
		return
	}
	sum := n.childBeats()
	for _, child := range n.children {
		if sum.Sign() > 0 {
			child.duration = n.duration.MulFrac(big.NewInt(int64(child.beats)), sum)
		}
		child.ScaleDurationsOfChildren()
	}
}

// SetOffsetDurationOfChildren lays children end to end starting at their
// parent's offset.
func (n *Node) SetOffsetDurationOfChildren() {
	offset := n.offset
	for _, child := range n.children {
		child.offset = offset
		offset = offset.Add(child.duration)
		child.SetOffsetDurationOfChildren()
	}
}
