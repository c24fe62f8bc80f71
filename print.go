package maskeval

import (
	"fmt"
	"io"
	"os"
)

// PrintMetrics writes the metrics summary to stdout.
func (r MetricsResult) PrintMetrics() {
	r.WriteMetrics(os.Stdout)
}

// WriteMetrics writes a human-readable metrics summary to w. Absent or
// zero-valued optional groups suppress their lines.
func (r MetricsResult) WriteMetrics(w io.Writer) {
	if r.FrameAccuracy != nil && *r.FrameAccuracy != 0 {
		fmt.Fprintf(w, "\n\nFrame accuracy = %.2f\n", *r.FrameAccuracy*100)
	}
	if r.FrameAccuracyTopK != nil && *r.FrameAccuracyTopK != 0 {
		fmt.Fprintf(w, "\n\nTop k frame accuracy = %.2f\n", *r.FrameAccuracyTopK*100)
	}
	if r.BracketMetrics != nil {
		fmt.Fprint(w, "\n\nBracket Metrics\n")
		r.BracketMetrics.WriteMetrics(w)
	}
	if r.TreeMetrics != nil {
		fmt.Fprint(w, "\n\nTree Metrics\n")
		r.TreeMetrics.WriteMetrics(w)
	}
	if len(r.LengthMetrics) > 0 && r.LengthReport != nil {
		fmt.Fprintf(w, "\n\nLength Metrics : %v\n", []float64(r.LengthMetrics))
		fmt.Fprintf(w, "Length Accuracy: %.2f\n", r.LengthReport.Accuracy*100)
	}
	if r.LengthReport != nil && r.PrintLengthMetrics {
		fmt.Fprint(w, "\n\nLength Reports :\n")
		r.LengthReport.WriteMetrics(w)
	}
	if r.NonInvalidFrameAccuracy != 0 {
		fmt.Fprintf(w, "Non Invalid FA %v\n", r.NonInvalidFrameAccuracy)
	}
	if r.ExtractedFrameAccuracy != 0 {
		fmt.Fprintf(w, "Extracted FA %v\n", r.ExtractedFrameAccuracy)
	}
}

// PrintMetrics writes the metrics summary, including the NAS figures,
// to stdout.
func (r NASMetricsResult) PrintMetrics() {
	r.WriteMetrics(os.Stdout)
}

// WriteMetrics writes the base metrics summary followed by the model
// size and objective lines.
func (r NASMetricsResult) WriteMetrics(w io.Writer) {
	r.MetricsResult.WriteMetrics(w)
	if r.ModelNumParam != 0 {
		fmt.Fprintf(w, "\nNumber of Parameters %v\n", r.ModelNumParam)
	}
	fmt.Fprintf(w, "Normalized product of model parameter and frame accuracy %v\n", r.Objective)
}
