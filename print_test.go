package maskeval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archeval/maskeval/internal/testutils"
)

func TestWriteMetricsGating(t *testing.T) {
	pairs := append(testutils.MatchedPairs(3), testutils.MismatchedPairs(1)...)

	var full bytes.Buffer
	ComputeMaskedMetrics(evalInputs(pairs)).WriteMetrics(&full)
	out := full.String()
	assert.Contains(t, out, "Frame accuracy = 75.00")
	assert.Contains(t, out, "Bracket Metrics")
	assert.Contains(t, out, "Tree Metrics")
	assert.Contains(t, out, "Length Metrics :")
	assert.Contains(t, out, "Length Reports :")
	// No subsets were supplied: zero-valued figures print nothing.
	assert.NotContains(t, out, "Non Invalid FA")
	assert.NotContains(t, out, "Extracted FA")
	assert.NotContains(t, out, "Top k frame accuracy")

	var sparse bytes.Buffer
	ComputeMaskedMetrics(evalInputs(pairs),
		WithoutFrameAccuracy(),
		WithoutBracketMetrics(),
		WithoutTreeMetrics(),
		WithoutLengthMetricsPrinting(),
		WithNonInvalidPairs(testutils.MatchedPairs(2)),
	).WriteMetrics(&sparse)
	out = sparse.String()
	assert.NotContains(t, out, "Frame accuracy")
	assert.NotContains(t, out, "Bracket Metrics")
	assert.NotContains(t, out, "Length Reports :")
	assert.Contains(t, out, "Length Metrics :")
	assert.Contains(t, out, "Non Invalid FA 1")
}

func TestNASWriteMetrics(t *testing.T) {
	result, err := ComputeNASMaskedMetrics(nasInputs(),
		WithModelNumParam(100),
		WithRefModelNumParam(100),
		WithRefFrameAccuracy(0.8),
	)
	if err != nil {
		t.Fatalf("ComputeNASMaskedMetrics() error = %v", err)
	}

	var buf bytes.Buffer
	result.WriteMetrics(&buf)
	out := buf.String()

	assert.Contains(t, out, "Number of Parameters 100")
	assert.Contains(t, out, "Normalized product of model parameter and frame accuracy 1")
	// The base sections still precede the NAS lines.
	assert.Less(t, strings.Index(out, "Frame accuracy"), strings.Index(out, "Number of Parameters"))
}
