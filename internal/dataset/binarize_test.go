package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarize(t *testing.T) {
	t.Run("minimum maps to zero, rest to one", func(t *testing.T) {
		labels, threshold, err := Binarize([]float64{500, 0, 1200, 0, 80000})

		require.NoError(t, err)
		assert.Equal(t, 0.0, threshold)
		assert.Equal(t, []float64{1, 0, 1, 0, 1}, labels)
	})

	t.Run("nonzero minimum", func(t *testing.T) {
		labels, threshold, err := Binarize([]float64{250, 100, 4000})

		require.NoError(t, err)
		assert.Equal(t, 100.0, threshold)
		assert.Equal(t, []float64{1, 0, 1}, labels)
	})

	t.Run("ties at the minimum all map to zero", func(t *testing.T) {
		labels, _, err := Binarize([]float64{5, 5, 9, 5})

		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 1, 0}, labels)
	})

	t.Run("output length matches input", func(t *testing.T) {
		outcomes := []float64{3, 1, 4, 1, 5, 9, 2, 6}
		labels, _, err := Binarize(outcomes)

		require.NoError(t, err)
		assert.Len(t, labels, len(outcomes))
		for _, l := range labels {
			assert.Contains(t, []float64{0, 1}, l)
		}
	})

	t.Run("all identical outcomes are degenerate", func(t *testing.T) {
		_, _, err := Binarize([]float64{7, 7, 7})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDegenerateLabels)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := Binarize(nil)
		require.Error(t, err)
	})
}

func TestBinarizeWith(t *testing.T) {
	t.Run("applies training threshold to test outcomes", func(t *testing.T) {
		labels := BinarizeWith([]float64{100, 250, 50, 4000}, 100)
		assert.Equal(t, []float64{0, 1, 0, 1}, labels)
	})

	t.Run("values below the threshold map to zero", func(t *testing.T) {
		// A test split can contain outcomes under the training minimum;
		// they still land in the no-damage class.
		labels := BinarizeWith([]float64{-5, 0, 5}, 0)
		assert.Equal(t, []float64{0, 0, 1}, labels)
	})
}

func TestLabelVec(t *testing.T) {
	v := LabelVec([]float64{0, 1, 1})
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 1.0, v.AtVec(1))
}
