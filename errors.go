package maskeval

import (
	"errors"

	"github.com/archeval/maskeval/classification"
)

var (
	// ErrMissingMetric is returned when a computation requires a metric
	// group that was toggled off or whose input was empty.
	ErrMissingMetric = errors.New("required metric was not computed")
	// ErrInvalidDivisor is returned when a reference accuracy or
	// parameter count used as a divisor is not positive.
	ErrInvalidDivisor = errors.New("divisor must be positive")
	// ErrEmptyInput is returned when a report is requested over zero
	// predictions. ComputeLengthMetrics recovers this condition itself
	// and degrades to empty results instead.
	ErrEmptyInput = classification.ErrEmptyInput
)
