package training

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/couchcryptid/tornado-damage-classifier/internal/model"
)

// Optimizer applies one parameter update from the gradients currently
// accumulated in the parameters. The update rule is injectable so the
// trainer never depends on a concrete optimizer.
type Optimizer interface {
	Step(params []*model.Param)
}

// Adam implements the Adam update rule: exponentially decayed first and
// second gradient moments per parameter element, with bias correction.
type Adam struct {
	LearningRate float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64

	step int
	m    map[*model.Param]*mat.Dense
	v    map[*model.Param]*mat.Dense
}

// NewAdam creates an Adam optimizer with the standard moment decay rates
// (beta1=0.9, beta2=0.999, eps=1e-8).
func NewAdam(learningRate float64) *Adam {
	return &Adam{
		LearningRate: learningRate,
		Beta1:        0.9,
		Beta2:        0.999,
		Epsilon:      1e-8,
		m:            make(map[*model.Param]*mat.Dense),
		v:            make(map[*model.Param]*mat.Dense),
	}
}

// Step consumes the accumulated gradients and updates every parameter in
// place. Moment buffers are allocated lazily on first sight of a parameter.
func (a *Adam) Step(params []*model.Param) {
	a.step++
	c1 := 1 - math.Pow(a.Beta1, float64(a.step))
	c2 := 1 - math.Pow(a.Beta2, float64(a.step))

	for _, p := range params {
		rows, cols := p.Value.Dims()
		m, ok := a.m[p]
		if !ok {
			m = mat.NewDense(rows, cols, nil)
			a.m[p] = m
		}
		v, ok := a.v[p]
		if !ok {
			v = mat.NewDense(rows, cols, nil)
			a.v[p] = v
		}

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				g := p.Grad.At(i, j)
				mij := a.Beta1*m.At(i, j) + (1-a.Beta1)*g
				vij := a.Beta2*v.At(i, j) + (1-a.Beta2)*g*g
				m.Set(i, j, mij)
				v.Set(i, j, vij)

				update := a.LearningRate * (mij / c1) / (math.Sqrt(vij/c2) + a.Epsilon)
				p.Value.Set(i, j, p.Value.At(i, j)-update)
			}
		}
	}
}
