// Package testutils provides frame and prediction builders shared by
// the package tests.
package testutils

import (
	"github.com/archeval/maskeval/intentslot"
)

// Tree builds a frame node with the given label, span and children.
func Tree(label string, start, end int, children ...*intentslot.Node) *intentslot.Node {
	return &intentslot.Node{
		Label:    label,
		Span:     intentslot.Span{Start: start, End: end},
		Children: children,
	}
}

// Pair builds a prediction pair.
func Pair(predicted, expected *intentslot.Node) intentslot.FramePredictionPair {
	return intentslot.FramePredictionPair{Predicted: predicted, Expected: expected}
}

// MatchedPairs builds n pairs whose predicted frame equals the gold
// frame. Spans vary across examples so the frames are distinct.
func MatchedPairs(n int) []intentslot.FramePredictionPair {
	pairs := make([]intentslot.FramePredictionPair, n)
	for i := range pairs {
		gold := Tree("IN:GET_WEATHER", 0, 4+i, Tree("SL:LOCATION", 2, 4+i))
		pairs[i] = Pair(gold, gold)
	}
	return pairs
}

// MismatchedPairs builds n pairs whose predicted frame differs from
// the gold frame at the slot level.
func MismatchedPairs(n int) []intentslot.FramePredictionPair {
	pairs := make([]intentslot.FramePredictionPair, n)
	for i := range pairs {
		gold := Tree("IN:GET_WEATHER", 0, 4+i, Tree("SL:LOCATION", 2, 4+i))
		pred := Tree("IN:GET_WEATHER", 0, 4+i, Tree("SL:DATE_TIME", 2, 4+i))
		pairs[i] = Pair(pred, gold)
	}
	return pairs
}
