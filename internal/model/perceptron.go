package model

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Perceptron is the two-layer variant: affine (features -> hidden), ReLU,
// affine (hidden -> 1), sigmoid.
type Perceptron struct {
	w1 *Param // features x hidden
	b1 *Param // 1 x hidden
	w2 *Param // hidden x 1
	b2 *Param // 1 x 1

	// Activations cached by Forward for the matching Backward call.
	z1 *mat.Dense // pre-ReLU hidden, n x hidden
	a1 *mat.Dense // post-ReLU hidden, n x hidden
}

// NewPerceptron creates a seeded one-hidden-layer perceptron.
func NewPerceptron(features, hidden int, seed uint64) *Perceptron {
	rng := rand.New(rand.NewPCG(seed, 0))
	m := &Perceptron{
		w1: newParam("w1", features, hidden),
		b1: newParam("b1", 1, hidden),
		w2: newParam("w2", hidden, 1),
		b2: newParam("b2", 1, 1),
	}
	initUniform(m.w1, features, rng)
	initUniform(m.w2, hidden, rng)
	return m
}

func (m *Perceptron) Name() string { return "perceptron" }

func (m *Perceptron) Params() []*Param { return []*Param{m.w1, m.b1, m.w2, m.b2} }

// Forward computes sigmoid(relu(x*w1 + b1)*w2 + b2) per record and caches
// the hidden activations for Backward.
func (m *Perceptron) Forward(x mat.Matrix) *mat.VecDense {
	n, _ := x.Dims()
	_, hidden := m.w1.Value.Dims()

	z1 := mat.NewDense(n, hidden, nil)
	z1.Mul(x, m.w1.Value)
	a1 := mat.NewDense(n, hidden, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < hidden; j++ {
			z := z1.At(i, j) + m.b1.Value.At(0, j)
			z1.Set(i, j, z)
			a1.Set(i, j, relu(z))
		}
	}
	m.z1, m.a1 = z1, a1

	var z2 mat.Dense
	z2.Mul(a1, m.w2.Value)
	bias := m.b2.Value.At(0, 0)
	probs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		probs.SetVec(i, sigmoid(z2.At(i, 0)+bias))
	}
	return probs
}

// Backward accumulates mean-BCE gradients through both layers using the
// activations cached by the most recent Forward over the same x.
func (m *Perceptron) Backward(x mat.Matrix, y, probs *mat.VecDense) {
	n := y.Len()
	_, hidden := m.w1.Value.Dims()

	dz2 := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		dz2.Set(i, 0, (probs.AtVec(i)-y.AtVec(i))/float64(n))
	}

	var gw2 mat.Dense
	gw2.Mul(m.a1.T(), dz2)
	m.w2.Grad.Add(m.w2.Grad, &gw2)
	m.b2.Grad.Set(0, 0, m.b2.Grad.At(0, 0)+mat.Sum(dz2))

	// Backprop through ReLU: pass the gradient only where z1 was positive.
	dz1 := mat.NewDense(n, hidden, nil)
	var da1 mat.Dense
	da1.Mul(dz2, m.w2.Value.T())
	for i := 0; i < n; i++ {
		for j := 0; j < hidden; j++ {
			if m.z1.At(i, j) > 0 {
				dz1.Set(i, j, da1.At(i, j))
			}
		}
	}

	var gw1 mat.Dense
	gw1.Mul(x.T(), dz1)
	m.w1.Grad.Add(m.w1.Grad, &gw1)
	for j := 0; j < hidden; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += dz1.At(i, j)
		}
		m.b1.Grad.Set(0, j, m.b1.Grad.At(0, j)+sum)
	}
}
