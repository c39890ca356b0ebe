package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const testSeed = 42

func TestLogisticForward(t *testing.T) {
	t.Run("outputs strictly inside (0,1)", func(t *testing.T) {
		m := NewLogistic(4, testSeed)
		x := mat.NewDense(3, 4, []float64{
			10, -10, 5, -5,
			0, 0, 0, 0,
			8, 8, -8, -8,
		})

		probs := m.Forward(x)
		for i := 0; i < probs.Len(); i++ {
			p := probs.AtVec(i)
			assert.Greater(t, p, 0.0)
			assert.Less(t, p, 1.0)
		}
	})

	t.Run("zero inputs yield sigmoid of the bias for every record", func(t *testing.T) {
		m := NewLogistic(51, testSeed)
		x := mat.NewDense(4, 51, nil)

		probs := m.Forward(x)
		// Bias starts at zero, so every record predicts sigmoid(0) = 0.5.
		for i := 0; i < probs.Len(); i++ {
			assert.InDelta(t, 0.5, probs.AtVec(i), 1e-15)
		}
		for i := 1; i < probs.Len(); i++ {
			assert.Equal(t, probs.AtVec(0), probs.AtVec(i))
		}
	})

	t.Run("same seed, same predictions", func(t *testing.T) {
		x := mat.NewDense(2, 3, []float64{1, 2, 3, -1, -2, -3})
		a := NewLogistic(3, testSeed).Forward(x)
		b := NewLogistic(3, testSeed).Forward(x)

		assert.True(t, mat.Equal(a, b))
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		x := mat.NewDense(1, 3, []float64{1, 2, 3})
		a := NewLogistic(3, testSeed).Forward(x)
		b := NewLogistic(3, testSeed+1).Forward(x)

		assert.NotEqual(t, a.AtVec(0), b.AtVec(0))
	})
}

func TestLogisticBackward(t *testing.T) {
	t.Run("gradient direction for a single record", func(t *testing.T) {
		m := NewLogistic(2, testSeed)
		x := mat.NewDense(1, 2, []float64{1, 0})
		y := mat.NewVecDense(1, []float64{1})

		probs := m.Forward(x)
		m.Backward(x, y, probs)

		// For label 1, (p-y) is negative, so the gradient along the active
		// feature must push the weight upward.
		assert.Negative(t, m.w.Grad.At(0, 0))
		assert.Zero(t, m.w.Grad.At(1, 0))
		assert.Negative(t, m.b.Grad.At(0, 0))
	})

	t.Run("gradients accumulate until zeroed", func(t *testing.T) {
		m := NewLogistic(2, testSeed)
		x := mat.NewDense(1, 2, []float64{1, 1})
		y := mat.NewVecDense(1, []float64{0})

		probs := m.Forward(x)
		m.Backward(x, y, probs)
		once := mat.DenseCopyOf(m.w.Grad)

		m.Backward(x, y, probs)
		var twice mat.Dense
		twice.Scale(2, once)
		assert.True(t, mat.EqualApprox(&twice, m.w.Grad, 1e-12))

		for _, p := range m.Params() {
			p.ZeroGrad()
		}
		assert.True(t, mat.Equal(mat.NewDense(2, 1, nil), m.w.Grad))
	})
}

func TestPerceptron(t *testing.T) {
	t.Run("outputs strictly inside (0,1)", func(t *testing.T) {
		m := NewPerceptron(5, 8, testSeed)
		x := mat.NewDense(3, 5, []float64{
			2, -2, 1, -1, 0,
			0, 0, 0, 0, 0,
			1.5, -1.5, 1.5, -1.5, 1.5,
		})

		probs := m.Forward(x)
		for i := 0; i < probs.Len(); i++ {
			p := probs.AtVec(i)
			assert.Greater(t, p, 0.0)
			assert.Less(t, p, 1.0)
		}
	})

	t.Run("seeded construction is deterministic", func(t *testing.T) {
		x := mat.NewDense(2, 4, []float64{1, -2, 3, -4, 0.5, 0.5, -0.5, -0.5})
		a := NewPerceptron(4, 6, testSeed).Forward(x)
		b := NewPerceptron(4, 6, testSeed).Forward(x)

		assert.True(t, mat.Equal(a, b))
	})

	t.Run("parameter shapes", func(t *testing.T) {
		m := NewPerceptron(51, 16, testSeed)
		params := m.Params()
		require.Len(t, params, 4)

		r, c := params[0].Value.Dims()
		assert.Equal(t, [2]int{51, 16}, [2]int{r, c})
		r, c = params[2].Value.Dims()
		assert.Equal(t, [2]int{16, 1}, [2]int{r, c})
	})

	t.Run("backward fills every parameter gradient", func(t *testing.T) {
		m := NewPerceptron(3, 4, testSeed)
		x := mat.NewDense(2, 3, []float64{1, 2, 3, -1, -2, -3})
		y := mat.NewVecDense(2, []float64{1, 0})

		probs := m.Forward(x)
		m.Backward(x, y, probs)

		// At least the output layer must see a nonzero gradient; hidden
		// gradients can vanish only if ReLU killed every unit.
		assert.False(t, mat.Equal(m.w2.Grad, mat.NewDense(4, 1, nil)))
		assert.NotZero(t, m.b2.Grad.At(0, 0))
	})
}

func TestSigmoid(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"zero", 0, 0.5},
		{"large positive saturates high", 40, 1},
		{"large negative saturates low", -40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sigmoid(tt.z), 1e-9)
		})
	}

	t.Run("never exactly 0 or 1 for moderate input", func(t *testing.T) {
		assert.Greater(t, sigmoid(-700), 0.0)
		assert.Less(t, sigmoid(30), 1.0)
	})

	t.Run("symmetry", func(t *testing.T) {
		assert.InDelta(t, 1-sigmoid(1.7), sigmoid(-1.7), 1e-15)
	})
}
