package maskeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeval/maskeval/intentslot"
	"github.com/archeval/maskeval/internal/testutils"
)

// nasInputs evaluates to a frame accuracy of 0.8.
func nasInputs() Inputs {
	pairs := append(testutils.MatchedPairs(4), testutils.MismatchedPairs(1)...)
	return Inputs{
		FramePairs:  pairs,
		TargetLens:  []int{3, 5, 4, 2, 6},
		LengthPreds: [][]int{{3, 2}, {4, 5}, {4, 1}, {2, 3}, {5, 6}},
		SelectBeam:  1,
	}
}

func TestComputeNASMaskedMetricsObjective(t *testing.T) {
	tests := []struct {
		name          string
		opts          []Option
		wantObjective float64
	}{
		{
			name: "matched reference is neutral",
			opts: []Option{
				WithModelNumParam(100),
				WithRefModelNumParam(100),
				WithRefFrameAccuracy(0.8),
				WithParamImportance(1.0),
			},
			wantObjective: 1.0,
		},
		{
			name: "halving parameters doubles the objective",
			opts: []Option{
				WithModelNumParam(50),
				WithRefModelNumParam(100),
				WithRefFrameAccuracy(0.8),
				WithParamImportance(1.0),
			},
			wantObjective: 2.0,
		},
		{
			name: "alpha squares the parameter ratio",
			opts: []Option{
				WithModelNumParam(50),
				WithRefModelNumParam(100),
				WithRefFrameAccuracy(0.8),
				WithParamImportance(2.0),
			},
			wantObjective: 4.0,
		},
		{
			name:          "all defaults",
			wantObjective: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeNASMaskedMetrics(nasInputs(), tt.opts...)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantObjective, result.Objective, 1e-12)

			require.NotNil(t, result.FrameAccuracy)
			assert.Equal(t, 0.8, *result.FrameAccuracy)
		})
	}
}

func TestComputeNASMaskedMetricsPreservesBase(t *testing.T) {
	base := ComputeMaskedMetrics(nasInputs(), WithOverallMetrics())
	result, err := ComputeNASMaskedMetrics(nasInputs(), WithModelNumParam(100))
	require.NoError(t, err)

	assert.Equal(t, base, result.MetricsResult)
	assert.Equal(t, 100.0, result.ModelNumParam)
}

func TestComputeNASMaskedMetricsMissingFrameAccuracy(t *testing.T) {
	_, err := ComputeNASMaskedMetrics(nasInputs(), WithoutFrameAccuracy())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingMetric)

	// An empty evaluation set leaves frame accuracy absent too.
	_, err = ComputeNASMaskedMetrics(Inputs{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingMetric)
}

func TestComputeNASMaskedMetricsInvalidDivisors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "zero reference frame accuracy", opt: WithRefFrameAccuracy(0)},
		{name: "zero model parameter count", opt: WithModelNumParam(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeNASMaskedMetrics(nasInputs(), tt.opt)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDivisor)
		})
	}
}

func TestComputeNASMaskedMetricsForwardsSubsets(t *testing.T) {
	subset := []intentslot.FramePredictionPair{testutils.MatchedPairs(1)[0]}
	result, err := ComputeNASMaskedMetrics(nasInputs(),
		WithNonInvalidPairs(subset),
		WithExtractedPairs(testutils.MismatchedPairs(2)),
		WithLoss(0.5),
	)
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.NonInvalidFrameAccuracy)
	assert.Equal(t, 0.0, result.ExtractedFrameAccuracy)
	require.NotNil(t, result.Loss)
	assert.Equal(t, 0.5, *result.Loss)
}
