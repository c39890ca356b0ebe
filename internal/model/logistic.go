package model

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Logistic is the linear variant: one affine transform (features -> 1)
// followed by the logistic squashing function.
type Logistic struct {
	w *Param // features x 1
	b *Param // 1 x 1
}

// NewLogistic creates a seeded logistic regression over the given number of
// predictors. The same seed always produces the same initial weights.
func NewLogistic(features int, seed uint64) *Logistic {
	rng := rand.New(rand.NewPCG(seed, 0))
	m := &Logistic{
		w: newParam("w", features, 1),
		b: newParam("b", 1, 1),
	}
	initUniform(m.w, features, rng)
	return m
}

func (m *Logistic) Name() string { return "logistic" }

func (m *Logistic) Params() []*Param { return []*Param{m.w, m.b} }

// Forward computes sigmoid(x*w + b) per record.
func (m *Logistic) Forward(x mat.Matrix) *mat.VecDense {
	n, _ := x.Dims()
	var z mat.Dense
	z.Mul(x, m.w.Value)

	bias := m.b.Value.At(0, 0)
	probs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		probs.SetVec(i, sigmoid(z.At(i, 0)+bias))
	}
	return probs
}

// Backward accumulates the mean-BCE gradient. With a sigmoid output the
// gradient of the loss with respect to the pre-activation is (p-y)/n, so no
// separate sigmoid derivative appears here.
func (m *Logistic) Backward(x mat.Matrix, y, probs *mat.VecDense) {
	n := y.Len()
	dz := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		dz.Set(i, 0, (probs.AtVec(i)-y.AtVec(i))/float64(n))
	}

	var gw mat.Dense
	gw.Mul(x.T(), dz)
	m.w.Grad.Add(m.w.Grad, &gw)
	m.b.Grad.Set(0, 0, m.b.Grad.At(0, 0)+mat.Sum(dz))
}
