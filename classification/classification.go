// Package classification computes a classification report (accuracy
// plus per-label and averaged precision/recall/F1) from per-example
// label predictions.
package classification

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput is returned when a report is requested over zero
// predictions.
var ErrEmptyInput = errors.New("no predictions to aggregate")

// LabelPrediction is one scored example: a per-label score vector, the
// predicted label index and the expected label index.
type LabelPrediction struct {
	LabelScores []float64
	Predicted   int
	Expected    int
}

// LabelMetrics holds the confusion counts and derived figures for one
// label.
type LabelMetrics struct {
	Label          string  `json:"label"`
	Support        int     `json:"support"`
	TruePositives  int     `json:"truePositives"`
	FalsePositives int     `json:"falsePositives"`
	FalseNegatives int     `json:"falseNegatives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

// Report is a full classification report. PerLabel follows the order
// of the label names passed to Compute.
type Report struct {
	Accuracy          float64        `json:"accuracy"`
	Loss              float64        `json:"loss"`
	PerLabel          []LabelMetrics `json:"perLabel"`
	MacroPrecision    float64        `json:"macroPrecision"`
	MacroRecall       float64        `json:"macroRecall"`
	MacroF1           float64        `json:"macroF1"`
	WeightedPrecision float64        `json:"weightedPrecision"`
	WeightedRecall    float64        `json:"weightedRecall"`
	WeightedF1        float64        `json:"weightedF1"`
}

// Compute builds a classification report over the given predictions.
// labelNames maps label indices to display names and fixes the number
// of classes; predictions referencing labels outside it are rejected.
func Compute(predictions []LabelPrediction, labelNames []string, loss float64) (*Report, error) {
	if len(predictions) == 0 {
		return nil, fmt.Errorf("%w: classification report needs at least one prediction", ErrEmptyInput)
	}

	perLabel := make([]LabelMetrics, len(labelNames))
	for i, name := range labelNames {
		perLabel[i].Label = name
	}

	correct := 0
	for _, p := range predictions {
		if p.Predicted < 0 || p.Predicted >= len(labelNames) ||
			p.Expected < 0 || p.Expected >= len(labelNames) {
			return nil, fmt.Errorf("label index out of range: predicted %d, expected %d, %d labels",
				p.Predicted, p.Expected, len(labelNames))
		}
		perLabel[p.Expected].Support++
		if p.Predicted == p.Expected {
			correct++
			perLabel[p.Expected].TruePositives++
		} else {
			perLabel[p.Predicted].FalsePositives++
			perLabel[p.Expected].FalseNegatives++
		}
	}

	precisions := make([]float64, len(perLabel))
	recalls := make([]float64, len(perLabel))
	f1s := make([]float64, len(perLabel))
	supports := make([]float64, len(perLabel))
	for i := range perLabel {
		l := &perLabel[i]
		if l.TruePositives+l.FalsePositives > 0 {
			l.Precision = float64(l.TruePositives) / float64(l.TruePositives+l.FalsePositives)
		}
		if l.TruePositives+l.FalseNegatives > 0 {
			l.Recall = float64(l.TruePositives) / float64(l.TruePositives+l.FalseNegatives)
		}
		if l.Precision+l.Recall > 0 {
			l.F1 = 2 * l.Precision * l.Recall / (l.Precision + l.Recall)
		}
		precisions[i] = l.Precision
		recalls[i] = l.Recall
		f1s[i] = l.F1
		supports[i] = float64(l.Support)
	}

	r := &Report{
		Accuracy: float64(correct) / float64(len(predictions)),
		Loss:     loss,
		PerLabel: perLabel,
	}
	r.MacroPrecision = stat.Mean(precisions, nil)
	r.MacroRecall = stat.Mean(recalls, nil)
	r.MacroF1 = stat.Mean(f1s, nil)
	if total := floats.Sum(supports); total > 0 {
		r.WeightedPrecision = floats.Dot(precisions, supports) / total
		r.WeightedRecall = floats.Dot(recalls, supports) / total
		r.WeightedF1 = floats.Dot(f1s, supports) / total
	}
	return r, nil
}

// PrintMetrics writes the report to stdout.
func (r *Report) PrintMetrics() {
	r.WriteMetrics(os.Stdout)
}

// WriteMetrics writes a human-readable report to w. Labels with zero
// support and no predictions are skipped.
func (r *Report) WriteMetrics(w io.Writer) {
	fmt.Fprintf(w, "Accuracy = %.2f\n", r.Accuracy*100)
	fmt.Fprintf(w, "%-12s %9s %9s %9s %9s\n", "Label", "Precision", "Recall", "F1", "Support")
	for _, l := range r.PerLabel {
		if l.Support == 0 && l.FalsePositives == 0 {
			continue
		}
		fmt.Fprintf(w, "%-12s %9.2f %9.2f %9.2f %9d\n",
			l.Label, l.Precision*100, l.Recall*100, l.F1*100, l.Support)
	}
	fmt.Fprintf(w, "%-12s %9.2f %9.2f %9.2f\n", "Macro avg",
		r.MacroPrecision*100, r.MacroRecall*100, r.MacroF1*100)
	fmt.Fprintf(w, "%-12s %9.2f %9.2f %9.2f\n", "Weighted avg",
		r.WeightedPrecision*100, r.WeightedRecall*100, r.WeightedF1*100)
}
