package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/tornado-damage-classifier/internal/evaluate"
	"github.com/couchcryptid/tornado-damage-classifier/internal/training"
)

func TestFormat(t *testing.T) {
	r := evaluate.Result{
		Accuracy:  0.85,
		Confusion: [2][2]int{{17, 2}, {1, 80}},
	}

	out := Format("logistic", r)

	assert.Contains(t, out, "=== logistic ===")
	assert.Contains(t, out, "accuracy: 0.8500")
	assert.Contains(t, out, "17")
	assert.Contains(t, out, "80")
	assert.Contains(t, out, "predicted 0")
	assert.Contains(t, out, "actual 1")
}

func TestSaveLossCurves(t *testing.T) {
	t.Run("writes a non-empty PNG", func(t *testing.T) {
		h := &training.History{
			TrainLoss: []float64{0.7, 0.6, 0.5, 0.45, 0.42},
			TestLoss:  []float64{0.72, 0.63, 0.55, 0.5, 0.49},
		}
		path := filepath.Join(t.TempDir(), "loss.png")

		require.NoError(t, SaveLossCurves(h, "logistic loss", path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		h := &training.History{TrainLoss: []float64{0.5}, TestLoss: []float64{0.5}}
		err := SaveLossCurves(h, "x", filepath.Join(t.TempDir(), "missing-dir", "loss.png"))
		require.Error(t, err)
	})
}
