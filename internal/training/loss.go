package training

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// probEps keeps probabilities away from the exact 0/1 boundary where the
// cross-entropy log terms diverge. Saturated predictions produce a large
// finite loss instead of Inf.
const probEps = 1e-12

// BCELoss is the mean binary cross-entropy between predicted probabilities
// and binary labels: -(y*log(p) + (1-y)*log(1-p)) averaged over records,
// with p clamped to [probEps, 1-probEps].
func BCELoss(probs, y *mat.VecDense) float64 {
	n := y.Len()
	sum := 0.0
	for i := 0; i < n; i++ {
		p := clampProb(probs.AtVec(i))
		if y.AtVec(i) >= 0.5 {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(n)
}

func clampProb(p float64) float64 {
	if p < probEps {
		return probEps
	}
	if p > 1-probEps {
		return 1 - probEps
	}
	return p
}
