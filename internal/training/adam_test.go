package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/couchcryptid/tornado-damage-classifier/internal/model"
)

func paramWithGrad(value, grad float64) *model.Param {
	return &model.Param{
		Name:  "p",
		Value: mat.NewDense(1, 1, []float64{value}),
		Grad:  mat.NewDense(1, 1, []float64{grad}),
	}
}

func TestAdamStep(t *testing.T) {
	t.Run("first step moves against the gradient by about the learning rate", func(t *testing.T) {
		a := NewAdam(0.01)
		p := paramWithGrad(1.0, 2.5)

		a.Step([]*model.Param{p})

		// With bias correction the first update is lr * g/(|g|+eps),
		// effectively lr * sign(g).
		assert.InDelta(t, 1.0-0.01, p.Value.At(0, 0), 1e-8)
	})

	t.Run("negative gradient moves the parameter up", func(t *testing.T) {
		a := NewAdam(0.01)
		p := paramWithGrad(0, -0.3)

		a.Step([]*model.Param{p})

		assert.InDelta(t, 0.01, p.Value.At(0, 0), 1e-8)
	})

	t.Run("zero gradient leaves the parameter unchanged", func(t *testing.T) {
		a := NewAdam(0.01)
		p := paramWithGrad(3.5, 0)

		a.Step([]*model.Param{p})

		assert.Equal(t, 3.5, p.Value.At(0, 0))
	})

	t.Run("converges on a quadratic bowl", func(t *testing.T) {
		// Minimize f(x) = (x-2)^2 with gradient 2(x-2).
		a := NewAdam(0.1)
		p := paramWithGrad(10, 0)

		for i := 0; i < 500; i++ {
			x := p.Value.At(0, 0)
			p.Grad.Set(0, 0, 2*(x-2))
			a.Step([]*model.Param{p})
		}

		assert.InDelta(t, 2.0, p.Value.At(0, 0), 0.1)
	})

	t.Run("per-parameter moments are independent", func(t *testing.T) {
		a := NewAdam(0.01)
		big := paramWithGrad(0, 100)
		small := paramWithGrad(0, 0.001)

		a.Step([]*model.Param{big, small})

		// Adam normalizes by the per-parameter second moment, so very
		// different gradient scales produce near-identical step sizes.
		stepBig := math.Abs(big.Value.At(0, 0))
		stepSmall := math.Abs(small.Value.At(0, 0))
		require.Positive(t, stepBig)
		require.Positive(t, stepSmall)
		assert.InDelta(t, stepBig, stepSmall, 1e-4)
	})
}
