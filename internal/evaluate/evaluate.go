// Package evaluate scores a trained classifier on a held-out split:
// hard predictions by thresholding probabilities at 0.5, overall accuracy,
// and a 2x2 confusion matrix.
package evaluate

import (
	"gonum.org/v1/gonum/mat"

	"github.com/couchcryptid/tornado-damage-classifier/internal/model"
)

// Threshold is the probability cut for hard class predictions:
// p >= Threshold predicts damage (1), p < Threshold predicts no damage (0).
const Threshold = 0.5

// Result is the evaluation outcome for one model on one split.
// Confusion is indexed [predicted][actual]; its four counts sum to the
// number of evaluated records.
type Result struct {
	Accuracy    float64
	Confusion   [2][2]int
	Predictions []int
}

// Evaluate runs the model over the split and scores the hard predictions
// against the true labels. Read-only over both the model and the data.
func Evaluate(m model.Classifier, features mat.Matrix, labels *mat.VecDense) Result {
	probs := m.Forward(features)

	n := labels.Len()
	r := Result{Predictions: make([]int, n)}
	matches := 0
	for i := 0; i < n; i++ {
		predicted := Classify(probs.AtVec(i))
		actual := 0
		if labels.AtVec(i) >= 0.5 {
			actual = 1
		}

		r.Predictions[i] = predicted
		r.Confusion[predicted][actual]++
		if predicted == actual {
			matches++
		}
	}
	if n > 0 {
		r.Accuracy = float64(matches) / float64(n)
	}
	return r
}

// Classify maps a probability to a hard class label.
func Classify(p float64) int {
	if p >= Threshold {
		return 1
	}
	return 0
}
