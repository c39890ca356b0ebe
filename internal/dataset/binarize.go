package dataset

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateLabels reports a sample whose outcomes are all identical.
// Binarizing such a sample yields a single class, which makes the training
// loss uninformative; callers must treat this as a data-quality failure.
var ErrDegenerateLabels = errors.New("degenerate outcome column: all values identical, cannot derive two classes")

// Binarize derives binary damage labels from continuous outcomes: the
// minimum value maps to 0 (no damage), everything larger to 1. It returns
// the labels together with the threshold (the minimum) so the same boundary
// can be applied to a held-out split with BinarizeWith.
func Binarize(outcomes []float64) ([]float64, float64, error) {
	if len(outcomes) == 0 {
		return nil, 0, errors.New("binarize: empty outcome sequence")
	}

	threshold := floats.Min(outcomes)
	if floats.Max(outcomes) == threshold {
		return nil, 0, ErrDegenerateLabels
	}
	return BinarizeWith(outcomes, threshold), threshold, nil
}

// BinarizeWith applies a previously computed threshold: values at or below
// it map to 0, everything else to 1. Using the training threshold on the
// test split keeps the class boundary consistent across splits.
func BinarizeWith(outcomes []float64, threshold float64) []float64 {
	labels := make([]float64, len(outcomes))
	for i, v := range outcomes {
		if v > threshold {
			labels[i] = 1
		}
	}
	return labels
}

// LabelVec wraps binary labels in a gonum vector for the trainer.
func LabelVec(labels []float64) *mat.VecDense {
	return mat.NewVecDense(len(labels), append([]float64(nil), labels...))
}
