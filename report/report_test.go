package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeval/maskeval"
	"github.com/archeval/maskeval/internal/testutils"
)

func sampleResult(t *testing.T) maskeval.NASMetricsResult {
	t.Helper()
	in := maskeval.Inputs{
		FramePairs:  append(testutils.MatchedPairs(4), testutils.MismatchedPairs(1)...),
		TargetLens:  []int{3, 5, 4, 2, 6},
		LengthPreds: [][]int{{3, 2}, {4, 5}, {4, 1}, {2, 3}, {5, 6}},
		SelectBeam:  1,
	}
	result, err := maskeval.ComputeNASMaskedMetrics(in,
		maskeval.WithModelNumParam(50),
		maskeval.WithRefModelNumParam(100),
		maskeval.WithRefFrameAccuracy(0.8),
	)
	require.NoError(t, err)
	return result
}

func TestRecordJSONRoundTrip(t *testing.T) {
	result := sampleResult(t)
	rec := NewNAS("candidate-a", result)

	assert.NotEmpty(t, rec.ResultID)
	assert.False(t, rec.CreatedAt.IsZero())
	require.NotNil(t, rec.NAS)
	assert.Equal(t, 50.0, rec.NAS.ModelNumParam)
	assert.Equal(t, 2.0, rec.NAS.Objective)

	var buf bytes.Buffer
	require.NoError(t, rec.Write(&buf))

	var decoded Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rec.ResultID, decoded.ResultID)
	assert.Equal(t, rec.Name, decoded.Name)
	require.NotNil(t, decoded.Metrics.FrameAccuracy)
	assert.Equal(t, *rec.Metrics.FrameAccuracy, *decoded.Metrics.FrameAccuracy)
	assert.Equal(t, rec.Metrics.LengthMetrics, decoded.Metrics.LengthMetrics)
	assert.Equal(t, rec.NAS.Objective, decoded.NAS.Objective)
}

func TestRecordIDsDistinct(t *testing.T) {
	m := maskeval.ComputeMaskedMetrics(maskeval.Inputs{
		TargetLens:  []int{2},
		LengthPreds: [][]int{{2}},
	})
	a := New("run", m)
	b := New("run", m)
	assert.NotEqual(t, a.ResultID, b.ResultID)
	assert.Nil(t, a.NAS)
}

func TestStore(t *testing.T) {
	s := NewStore()
	m := maskeval.ComputeMaskedMetrics(maskeval.Inputs{
		TargetLens:  []int{2, 3},
		LengthPreds: [][]int{{2, 1}, {1, 3}},
	})

	first := New("first", m)
	second := New("second", m)
	second.CreatedAt = first.CreatedAt.Add(1)

	s.Save(first)
	s.Save(second)

	got, ok := s.Get(first.ResultID)
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{first.ResultID, second.ResultID}, s.List())
}
