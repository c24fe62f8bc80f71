// Package maskeval aggregates evaluation metrics for masked seq2seq
// semantic parsing models: frame-level intent/slot metrics, target
// length prediction accuracy across beam widths, and a size-normalized
// objective for neural architecture search.
//
// All inputs are already materialized prediction lists; every result is
// a freshly built immutable record, so independent evaluations may run
// concurrently without synchronization.
package maskeval

import (
	"github.com/archeval/maskeval/classification"
	"github.com/archeval/maskeval/intentslot"
)

// LengthMetrics maps beam width (the slice index) to length prediction
// accuracy at that width. Accuracy is cumulative over beams, so it is
// monotonically non-decreasing in the index.
type LengthMetrics []float64

// Inputs carries the materialized predictions for one evaluation pass.
//
// Fields usage conventions:
//   - FramePairs:  predicted/gold frame pairs for the primary eval set
//   - TargetLens:  gold target length per example
//   - LengthPreds: ranked length candidates per example, best first;
//     every example must carry the same number of candidates
//   - SelectBeam:  beam width used for the length classification report
type Inputs struct {
	FramePairs  []intentslot.FramePredictionPair
	TargetLens  []int
	LengthPreds [][]int
	SelectBeam  int
}

// MetricsResult bundles every metric produced by one evaluation pass.
// Pointer fields are nil when the corresponding group was toggled off
// or its input was empty; nil means "not computed", never zero.
type MetricsResult struct {
	TopIntentAccuracy      *float64                         `json:"topIntentAccuracy,omitempty"`
	FrameAccuracy          *float64                         `json:"frameAccuracy,omitempty"`
	FrameAccuracyTopK      *float64                         `json:"frameAccuracyTopK,omitempty"`
	FrameAccuraciesByDepth map[int]intentslot.DepthAccuracy `json:"frameAccuraciesByDepth,omitempty"`
	BracketMetrics         *intentslot.Metrics              `json:"bracketMetrics,omitempty"`
	TreeMetrics            *intentslot.Metrics              `json:"treeMetrics,omitempty"`
	Loss                   *float64                         `json:"loss,omitempty"`
	LengthMetrics          LengthMetrics                    `json:"lengthMetrics,omitempty"`
	LengthReport           *classification.Report           `json:"lengthReport,omitempty"`

	// NonInvalidFrameAccuracy and ExtractedFrameAccuracy are frame
	// accuracies over the optional secondary subsets. A missing subset
	// scores 0.0; the value does not distinguish "no data" from a true
	// zero.
	NonInvalidFrameAccuracy float64 `json:"nonInvalidFrameAccuracy"`
	ExtractedFrameAccuracy  float64 `json:"extractedFrameAccuracy"`

	// PrintLengthMetrics gates the length report section of WriteMetrics.
	PrintLengthMetrics bool `json:"printLengthMetrics"`
}

// NASMetricsResult extends a MetricsResult with the model size and the
// size-normalized accuracy objective used to rank architectures.
type NASMetricsResult struct {
	MetricsResult

	// ModelNumParam is the candidate model's parameter count.
	ModelNumParam float64 `json:"modelNumParam"`
	// Objective is (frameAcc * refParams^alpha) / (refFrameAcc * params^alpha).
	// Higher is better: comparable accuracy from fewer parameters.
	Objective float64 `json:"objective"`
}
