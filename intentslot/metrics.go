package intentslot

import (
	"fmt"
	"io"
	"os"
)

// PRF1 holds confusion counts and the derived precision, recall and F1
// for one class of frame nodes.
type PRF1 struct {
	TruePositives  int     `json:"truePositives"`
	FalsePositives int     `json:"falsePositives"`
	FalseNegatives int     `json:"falseNegatives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

// Metrics holds bracket- or tree-level precision/recall/F1 split into
// intent nodes, slot nodes, and the two combined.
type Metrics struct {
	Intents PRF1 `json:"intents"`
	Slots   PRF1 `json:"slots"`
	Overall PRF1 `json:"overall"`
}

// DepthAccuracy is the frame accuracy over the examples whose gold
// frame has a given depth.
type DepthAccuracy struct {
	NumSamples    int     `json:"numSamples"`
	FrameAccuracy float64 `json:"frameAccuracy"`
}

// AllMetrics bundles every metric group this package can compute.
// A nil field means the group was not computed, not that it scored
// zero.
type AllMetrics struct {
	TopIntentAccuracy      *float64              `json:"topIntentAccuracy,omitempty"`
	FrameAccuracy          *float64              `json:"frameAccuracy,omitempty"`
	FrameAccuracyTopK      *float64              `json:"frameAccuracyTopK,omitempty"`
	FrameAccuraciesByDepth map[int]DepthAccuracy `json:"frameAccuraciesByDepth,omitempty"`
	BracketMetrics         *Metrics              `json:"bracketMetrics,omitempty"`
	TreeMetrics            *Metrics              `json:"treeMetrics,omitempty"`
	Loss                   *float64              `json:"loss,omitempty"`
}

// Options selects which metric groups ComputeAllMetrics produces.
// NewOptions returns the defaults; the zero value computes nothing.
type Options struct {
	// TopIntentAccuracy computes the fraction of examples whose root
	// intent label matches.
	TopIntentAccuracy bool
	// FrameAccuracy computes the fraction of exactly matching frames.
	FrameAccuracy bool
	// FrameAccuraciesByDepth buckets frame accuracy by gold frame depth.
	FrameAccuraciesByDepth bool
	// BracketMetrics computes span-level P/R/F1 ignoring hierarchy.
	BracketMetrics bool
	// TreeMetrics computes subtree-level P/R/F1.
	TreeMetrics bool
	// OverallMetrics forces the combined intent+slot breakdown inside
	// bracket and tree metrics.
	OverallMetrics bool
	// PredictedFrames, when set, holds the ranked candidate frames per
	// example and enables top-k frame accuracy.
	PredictedFrames [][]*Node
	// Loss is carried through to the result untouched.
	Loss *float64
}

// NewOptions returns the default option set: every group on except the
// overall breakdown.
func NewOptions() Options {
	return Options{
		TopIntentAccuracy:      true,
		FrameAccuracy:          true,
		FrameAccuraciesByDepth: true,
		BracketMetrics:         true,
		TreeMetrics:            true,
	}
}

// ComputeFrameAccuracy returns the fraction of pairs whose predicted
// frame exactly matches the gold frame. A nil or empty pair list
// yields 0.
func ComputeFrameAccuracy(pairs []FramePredictionPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	correct := 0
	for _, p := range pairs {
		if p.Predicted.Equal(p.Expected) {
			correct++
		}
	}
	return float64(correct) / float64(len(pairs))
}

// ComputeAllMetrics computes the metric groups selected by opts over
// the given prediction pairs. Groups whose toggle is off, or whose
// input is empty, are left nil in the result.
func ComputeAllMetrics(pairs []FramePredictionPair, opts Options) AllMetrics {
	var out AllMetrics
	out.Loss = opts.Loss
	if len(pairs) == 0 {
		return out
	}

	if opts.TopIntentAccuracy {
		correct := 0
		for _, p := range pairs {
			if p.Predicted.Intent() == p.Expected.Intent() {
				correct++
			}
		}
		acc := float64(correct) / float64(len(pairs))
		out.TopIntentAccuracy = &acc
	}

	if opts.FrameAccuracy {
		acc := ComputeFrameAccuracy(pairs)
		out.FrameAccuracy = &acc
	}

	if len(opts.PredictedFrames) == len(pairs) && len(opts.PredictedFrames) > 0 {
		acc := computeTopKAccuracy(pairs, opts.PredictedFrames)
		out.FrameAccuracyTopK = &acc
	}

	if opts.FrameAccuraciesByDepth {
		out.FrameAccuraciesByDepth = computeAccuraciesByDepth(pairs)
	}

	if opts.BracketMetrics {
		out.BracketMetrics = computeNodeMetrics(pairs, (*Node).bracketItem, opts.OverallMetrics)
	}
	if opts.TreeMetrics {
		out.TreeMetrics = computeNodeMetrics(pairs, (*Node).treeItem, opts.OverallMetrics)
	}
	return out
}

func computeTopKAccuracy(pairs []FramePredictionPair, candidates [][]*Node) float64 {
	correct := 0
	for i, p := range pairs {
		for _, cand := range candidates[i] {
			if cand.Equal(p.Expected) {
				correct++
				break
			}
		}
	}
	return float64(correct) / float64(len(pairs))
}

func computeAccuraciesByDepth(pairs []FramePredictionPair) map[int]DepthAccuracy {
	samples := make(map[int]int)
	correct := make(map[int]int)
	for _, p := range pairs {
		d := p.Expected.Depth()
		samples[d]++
		if p.Predicted.Equal(p.Expected) {
			correct[d]++
		}
	}
	out := make(map[int]DepthAccuracy, len(samples))
	for d, n := range samples {
		out[d] = DepthAccuracy{
			NumSamples:    n,
			FrameAccuracy: float64(correct[d]) / float64(n),
		}
	}
	return out
}

// nodeClass splits counted nodes into intents and slots.
type nodeClass int

const (
	classIntent nodeClass = iota
	classSlot
)

func classify(n *Node, root bool) nodeClass {
	if root || len(n.Children) > 0 {
		return classIntent
	}
	return classSlot
}

// computeNodeMetrics aggregates micro P/R/F1 over all pairs, counting
// node matches under the given item function (bracket or tree).
// When overall is false only the combined figure is populated.
func computeNodeMetrics(pairs []FramePredictionPair, item func(*Node) string, overall bool) *Metrics {
	var intents, slots counts
	for _, p := range pairs {
		expected := collectItems(p.Expected, item)
		predicted := collectItems(p.Predicted, item)
		intents.add(predicted[classIntent], expected[classIntent])
		slots.add(predicted[classSlot], expected[classSlot])
	}

	m := &Metrics{Overall: (counts{
		tp: intents.tp + slots.tp,
		fp: intents.fp + slots.fp,
		fn: intents.fn + slots.fn,
	}).prf1()}
	if overall {
		m.Intents = intents.prf1()
		m.Slots = slots.prf1()
	}
	return m
}

// collectItems gathers the multiset of item strings per node class.
func collectItems(frame *Node, item func(*Node) string) map[nodeClass]map[string]int {
	out := map[nodeClass]map[string]int{
		classIntent: make(map[string]int),
		classSlot:   make(map[string]int),
	}
	frame.walk(func(n *Node, root bool) {
		out[classify(n, root)][item(n)]++
	})
	return out
}

type counts struct {
	tp, fp, fn int
}

// add updates the counts with one frame's predicted and expected item
// multisets.
func (c *counts) add(predicted, expected map[string]int) {
	for it, np := range predicted {
		ne := expected[it]
		if np < ne {
			ne = np
		}
		c.tp += ne
		c.fp += np - ne
	}
	for it, ne := range expected {
		np := predicted[it]
		if np < ne {
			c.fn += ne - np
		}
	}
}

func (c counts) prf1() PRF1 {
	out := PRF1{
		TruePositives:  c.tp,
		FalsePositives: c.fp,
		FalseNegatives: c.fn,
	}
	if c.tp+c.fp > 0 {
		out.Precision = float64(c.tp) / float64(c.tp+c.fp)
	}
	if c.tp+c.fn > 0 {
		out.Recall = float64(c.tp) / float64(c.tp+c.fn)
	}
	if out.Precision+out.Recall > 0 {
		out.F1 = 2 * out.Precision * out.Recall / (out.Precision + out.Recall)
	}
	return out
}

// PrintMetrics writes the metrics to stdout.
func (m *Metrics) PrintMetrics() {
	m.WriteMetrics(os.Stdout)
}

// WriteMetrics writes a human-readable summary of the metrics to w.
func (m *Metrics) WriteMetrics(w io.Writer) {
	fmt.Fprintf(w, "Overall: P = %.2f R = %.2f F1 = %.2f\n",
		m.Overall.Precision*100, m.Overall.Recall*100, m.Overall.F1*100)
	if m.Intents != (PRF1{}) || m.Slots != (PRF1{}) {
		fmt.Fprintf(w, "Intents: P = %.2f R = %.2f F1 = %.2f\n",
			m.Intents.Precision*100, m.Intents.Recall*100, m.Intents.F1*100)
		fmt.Fprintf(w, "Slots:   P = %.2f R = %.2f F1 = %.2f\n",
			m.Slots.Precision*100, m.Slots.Recall*100, m.Slots.F1*100)
	}
}
