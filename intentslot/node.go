// Package intentslot computes hierarchical intent/slot metrics over
// semantic parse frames: frame accuracy, per-depth accuracy, and
// bracket/tree precision, recall and F1.
//
// A frame is a tree of labeled spans. Nodes with children are treated
// as intents, leaf nodes as slots; the root always counts as an intent.
package intentslot

import (
	"fmt"
	"sort"
	"strings"
)

// Span marks a labeled region of the source utterance, token indexed
// with an exclusive end.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Node is one node of a semantic parse frame.
type Node struct {
	Label    string  `json:"label"`
	Span     Span    `json:"span"`
	Children []*Node `json:"children,omitempty"`
}

// FramePredictionPair pairs a predicted frame with its gold frame.
type FramePredictionPair struct {
	Predicted *Node
	Expected  *Node
}

// Intent returns the root intent label, or "" for a nil frame.
func (n *Node) Intent() string {
	if n == nil {
		return ""
	}
	return n.Label
}

// Depth returns the number of levels in the frame; a nil frame has
// depth 0 and a single node has depth 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	max := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Equal reports whether two frames are identical: same labels, same
// spans, same children. Child order is not significant.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.canonical() == o.canonical()
}

// canonical serializes the subtree rooted at n into a stable string.
// Children are ordered by span and label so that frames that differ
// only in child order compare equal.
func (n *Node) canonical() string {
	var b strings.Builder
	n.writeCanonical(&b)
	return b.String()
}

func (n *Node) writeCanonical(b *strings.Builder) {
	fmt.Fprintf(b, "%s@%d:%d", n.Label, n.Span.Start, n.Span.End)
	if len(n.Children) == 0 {
		return
	}
	children := make([]*Node, len(n.Children))
	copy(children, n.Children)
	sort.Slice(children, func(i, j int) bool {
		a, c := children[i], children[j]
		if a.Span.Start != c.Span.Start {
			return a.Span.Start < c.Span.Start
		}
		if a.Span.End != c.Span.End {
			return a.Span.End < c.Span.End
		}
		return a.Label < c.Label
	})
	b.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		c.writeCanonical(b)
	}
	b.WriteByte(')')
}

// bracketItem identifies a node by label and span only, ignoring the
// subtree below it.
func (n *Node) bracketItem() string {
	return fmt.Sprintf("%s@%d:%d", n.Label, n.Span.Start, n.Span.End)
}

// treeItem identifies a node by its full subtree, so a node only
// matches when everything beneath it matches too.
func (n *Node) treeItem() string {
	return n.canonical()
}

// walk visits every node of the frame in depth-first order. The root
// flag is true only for the first visit.
func (n *Node) walk(visit func(node *Node, root bool)) {
	if n == nil {
		return
	}
	visit(n, true)
	var rec func(*Node)
	rec = func(m *Node) {
		for _, c := range m.Children {
			visit(c, false)
			rec(c)
		}
	}
	rec(n)
}
