package maskeval

import (
	"fmt"
	"math"
)

// WithModelNumParam sets the candidate model's parameter count.
// Defaults to 1.
func WithModelNumParam(n float64) Option {
	return func(o *evalOptions) { o.modelNumParam = n }
}

// WithRefModelNumParam sets the reference model's parameter count.
// Defaults to 1.
func WithRefModelNumParam(n float64) Option {
	return func(o *evalOptions) { o.refModelNumParam = n }
}

// WithRefFrameAccuracy sets the reference model's frame accuracy.
// Defaults to 1.
func WithRefFrameAccuracy(a float64) Option {
	return func(o *evalOptions) { o.refFrameAccuracy = a }
}

// WithParamImportance sets the exponent alpha weighting parameter
// count against accuracy in the objective. Defaults to 1.
func WithParamImportance(alpha float64) Option {
	return func(o *evalOptions) { o.paramImportance = alpha }
}

// ComputeNASMaskedMetrics aggregates the full masked metrics and scores
// the candidate architecture against a reference model:
//
//	objective = (frameAcc * refParams^alpha) / (refFrameAcc * params^alpha)
//
// Higher is better: the candidate reaches comparable accuracy with
// fewer parameters. The overall metric breakdown is always computed.
//
// Frame accuracy must be available: toggling it off, or evaluating an
// empty pair set, yields ErrMissingMetric rather than a silently zeroed
// objective. A zero reference frame accuracy or parameter count is a
// precondition violation reported as ErrInvalidDivisor.
func ComputeNASMaskedMetrics(in Inputs, opts ...Option) (NASMetricsResult, error) {
	o := newEvalOptions(opts)
	o.group.OverallMetrics = true

	base := computeMaskedMetrics(in, o)
	if base.FrameAccuracy == nil {
		return NASMetricsResult{}, fmt.Errorf("%w: frame accuracy is required for the NAS objective", ErrMissingMetric)
	}
	if o.refFrameAccuracy <= 0 {
		return NASMetricsResult{}, fmt.Errorf("%w: reference frame accuracy %v", ErrInvalidDivisor, o.refFrameAccuracy)
	}
	if o.modelNumParam <= 0 {
		return NASMetricsResult{}, fmt.Errorf("%w: model parameter count %v", ErrInvalidDivisor, o.modelNumParam)
	}

	objective := (*base.FrameAccuracy * math.Pow(o.refModelNumParam, o.paramImportance)) /
		(o.refFrameAccuracy * math.Pow(o.modelNumParam, o.paramImportance))

	return NASMetricsResult{
		MetricsResult: base,
		ModelNumParam: o.modelNumParam,
		Objective:     objective,
	}, nil
}
