package maskeval

import (
	"github.com/archeval/maskeval/intentslot"
)

// Option configures ComputeMaskedMetrics and ComputeNASMaskedMetrics.
type Option func(*evalOptions)

type evalOptions struct {
	group           intentslot.Options
	nonInvalidPairs []intentslot.FramePredictionPair
	extractedPairs  []intentslot.FramePredictionPair
	printLength     bool

	modelNumParam    float64
	refModelNumParam float64
	refFrameAccuracy float64
	paramImportance  float64
}

func newEvalOptions(opts []Option) evalOptions {
	o := evalOptions{
		group:            intentslot.NewOptions(),
		printLength:      true,
		modelNumParam:    1.0,
		refModelNumParam: 1.0,
		refFrameAccuracy: 1.0,
		paramImportance:  1.0,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithoutTopIntentAccuracy skips the top intent accuracy group.
func WithoutTopIntentAccuracy() Option {
	return func(o *evalOptions) { o.group.TopIntentAccuracy = false }
}

// WithoutFrameAccuracy skips the frame accuracy group.
func WithoutFrameAccuracy() Option {
	return func(o *evalOptions) { o.group.FrameAccuracy = false }
}

// WithoutFrameAccuraciesByDepth skips the per-depth frame accuracies.
func WithoutFrameAccuraciesByDepth() Option {
	return func(o *evalOptions) { o.group.FrameAccuraciesByDepth = false }
}

// WithoutBracketMetrics skips bracket precision/recall/F1.
func WithoutBracketMetrics() Option {
	return func(o *evalOptions) { o.group.BracketMetrics = false }
}

// WithoutTreeMetrics skips tree precision/recall/F1.
func WithoutTreeMetrics() Option {
	return func(o *evalOptions) { o.group.TreeMetrics = false }
}

// WithOverallMetrics adds the combined intent/slot breakdown to the
// bracket and tree metric groups.
func WithOverallMetrics() Option {
	return func(o *evalOptions) { o.group.OverallMetrics = true }
}

// WithPredictedFrames supplies the ranked candidate frames per example
// and enables top-k frame accuracy.
func WithPredictedFrames(frames [][]*intentslot.Node) Option {
	return func(o *evalOptions) { o.group.PredictedFrames = frames }
}

// WithLoss carries a pre-computed loss value into the result.
func WithLoss(loss float64) Option {
	return func(o *evalOptions) { o.group.Loss = &loss }
}

// WithNonInvalidPairs supplies the subset of prediction pairs that
// parsed to a valid frame. Without this option the subset's frame
// accuracy reports 0.
func WithNonInvalidPairs(pairs []intentslot.FramePredictionPair) Option {
	return func(o *evalOptions) { o.nonInvalidPairs = pairs }
}

// WithExtractedPairs supplies the subset of prediction pairs obtained
// by extraction. Without this option the subset's frame accuracy
// reports 0.
func WithExtractedPairs(pairs []intentslot.FramePredictionPair) Option {
	return func(o *evalOptions) { o.extractedPairs = pairs }
}

// WithoutLengthMetricsPrinting suppresses the length report section of
// WriteMetrics on the result.
func WithoutLengthMetricsPrinting() Option {
	return func(o *evalOptions) { o.printLength = false }
}

// ComputeMaskedMetrics aggregates frame and length metrics for one
// evaluation pass. Metric groups follow their toggles; length metrics
// are always computed.
func ComputeMaskedMetrics(in Inputs, opts ...Option) MetricsResult {
	return computeMaskedMetrics(in, newEvalOptions(opts))
}

func computeMaskedMetrics(in Inputs, o evalOptions) MetricsResult {
	all := intentslot.ComputeAllMetrics(in.FramePairs, o.group)
	lengthMetrics, lengthReport := ComputeLengthMetrics(in.TargetLens, in.LengthPreds, in.SelectBeam)

	result := MetricsResult{
		TopIntentAccuracy:      all.TopIntentAccuracy,
		FrameAccuracy:          all.FrameAccuracy,
		FrameAccuracyTopK:      all.FrameAccuracyTopK,
		FrameAccuraciesByDepth: all.FrameAccuraciesByDepth,
		BracketMetrics:         all.BracketMetrics,
		TreeMetrics:            all.TreeMetrics,
		Loss:                   all.Loss,
		LengthMetrics:          lengthMetrics,
		LengthReport:           lengthReport,
		PrintLengthMetrics:     o.printLength,
	}
	result.NonInvalidFrameAccuracy = intentslot.ComputeFrameAccuracy(o.nonInvalidPairs)
	result.ExtractedFrameAccuracy = intentslot.ComputeFrameAccuracy(o.extractedPairs)
	return result
}
