// Package model implements the two damage classifiers: a logistic
// regression and a one-hidden-layer perceptron. Both map a predictor vector
// to a probability of property damage and expose analytic gradients of the
// mean binary cross-entropy loss, so the trainer and evaluator are written
// once against the Classifier interface.
package model

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Classifier maps predictor vectors to damage probabilities and accumulates
// loss gradients into its parameters. Forward is deterministic for fixed
// parameters; all randomness lives in the seeded construction.
type Classifier interface {
	// Forward returns one probability per row of x, each strictly in (0,1).
	Forward(x mat.Matrix) *mat.VecDense
	// Backward accumulates into the parameter gradients the gradient of the
	// mean binary cross-entropy between probs and labels y, for the same x
	// that produced probs.
	Backward(x mat.Matrix, y, probs *mat.VecDense)
	// Params exposes the trainable parameters for the optimizer.
	Params() []*Param
	// Name identifies the variant in logs, metrics, and reports.
	Name() string
}

// Param is one trainable weight tensor with its gradient buffer. Value is
// mutated in place by the optimizer; Grad is zeroed by the trainer before
// each backward pass.
type Param struct {
	Name  string
	Value *mat.Dense
	Grad  *mat.Dense
}

func newParam(name string, rows, cols int) *Param {
	return &Param{
		Name:  name,
		Value: mat.NewDense(rows, cols, nil),
		Grad:  mat.NewDense(rows, cols, nil),
	}
}

// ZeroGrad resets the gradient buffer.
func (p *Param) ZeroGrad() {
	p.Grad.Zero()
}

// initUniform fills a parameter with values drawn uniformly from
// [-1/sqrt(fanIn), 1/sqrt(fanIn)]. Biases stay zero; only weight matrices
// are initialized this way.
func initUniform(p *Param, fanIn int, rng *rand.Rand) {
	limit := 1 / math.Sqrt(float64(fanIn))
	rows, cols := p.Value.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p.Value.Set(i, j, (rng.Float64()*2-1)*limit)
		}
	}
}

// sigmoid is the numerically stable logistic function. The two-branch form
// never exponentiates a positive argument, so it cannot overflow; outputs
// approach 0 and 1 asymptotically but never reach them for finite input.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func relu(z float64) float64 {
	return math.Max(0, z)
}
