package maskeval

import (
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/archeval/maskeval/classification"
)

// ComputeLengthMetrics computes length prediction accuracy for every
// beam width, plus a full classification report at selectBeam.
//
// At width k an example counts as correct when its gold length appears
// among the top k+1 candidates; otherwise the top candidate stands as
// the prediction. Correctness is therefore cumulative across widths.
//
// An empty prediction list yields (nil, nil) with no error: the beam
// count is unknown and no metrics can be produced.
func ComputeLengthMetrics(targetLens []int, lengthPreds [][]int, selectBeam int) (LengthMetrics, *classification.Report) {
	if len(lengthPreds) == 0 || len(targetLens) == 0 {
		return nil, nil
	}

	// Examples beyond the shorter of the two sequences are dropped.
	n := len(targetLens)
	if len(lengthPreds) < n {
		n = len(lengthPreds)
	}
	targetLens = targetLens[:n]

	beams := len(lengthPreds[0])
	// effective[k][i] is the prediction charged to example i at width k.
	effective := make([][]int, beams)
	for k := range effective {
		effective[k] = make([]int, n)
	}
	for i, gold := range targetLens {
		preds := lengthPreds[i]
		for k := 0; k < beams; k++ {
			top := k + 1
			if top > len(preds) {
				top = len(preds)
			}
			effective[k][i] = preds[0]
			for _, p := range preds[:top] {
				if p == gold {
					effective[k][i] = gold
					break
				}
			}
		}
	}

	metrics := make(LengthMetrics, beams)
	hits := make([]float64, n)
	for k := 0; k < beams; k++ {
		for i, gold := range targetLens {
			if effective[k][i] == gold {
				hits[i] = 1
			} else {
				hits[i] = 0
			}
		}
		metrics[k] = stat.Mean(hits, nil)
	}

	return metrics, lengthReport(targetLens, effective[selectBeam])
}

// lengthReport treats each distinct length value as a class and builds
// a classification report over one-hot score vectors. Length metrics
// have no meaningful loss, so the report carries a placeholder of 0.
func lengthReport(targetLens, selected []int) *classification.Report {
	maxLen := 0
	for i, gold := range targetLens {
		if gold > maxLen {
			maxLen = gold
		}
		if selected[i] > maxLen {
			maxLen = selected[i]
		}
	}

	predictions := make([]classification.LabelPrediction, len(targetLens))
	for i, gold := range targetLens {
		scores := make([]float64, maxLen+1)
		scores[selected[i]] = 1
		predictions[i] = classification.LabelPrediction{
			LabelScores: scores,
			Predicted:   selected[i],
			Expected:    gold,
		}
	}

	names := make([]string, maxLen+1)
	for l := range names {
		names[l] = strconv.Itoa(l)
	}

	report, err := classification.Compute(predictions, names, 0.0)
	if err != nil {
		return nil
	}
	return report
}
