// Package training runs the fixed-iteration optimization loop shared by
// both classifier variants and provides the Adam optimizer and the
// numerically stable binary cross-entropy loss it minimizes.
package training

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/tornado-damage-classifier/internal/dataset"
	"github.com/couchcryptid/tornado-damage-classifier/internal/model"
	"github.com/couchcryptid/tornado-damage-classifier/internal/observability"
)

// History records the loss trace: one train and one test entry per
// iteration. Read-only after Train returns; consumed by plotting.
type History struct {
	TrainLoss []float64
	TestLoss  []float64
}

// Trainer drives a fixed number of optimizer iterations over one model.
// There is no early stopping or convergence check; the iteration count is
// the whole schedule.
type Trainer struct {
	optimizer  Optimizer
	iterations int
	logEvery   int
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
}

// New creates a Trainer. logEvery controls progress-log cadence; values
// below 1 disable progress logging.
func New(opt Optimizer, iterations, logEvery int, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Trainer {
	return &Trainer{
		optimizer:  opt,
		iterations: iterations,
		logEvery:   logEvery,
		logger:     logger,
		metrics:    metrics,
		clock:      clock,
	}
}

// Train runs exactly the configured number of iterations. Each iteration
// performs one forward pass on the training split, one backward pass, one
// test-split forward pass for monitoring with the same pre-update
// parameters, and exactly one optimizer step. Gradients are zeroed before
// every backward pass so they never accumulate across iterations. The
// context is checked between iterations so a signal aborts the run cleanly.
func (t *Trainer) Train(ctx context.Context, m model.Classifier, train, test *dataset.Labeled) (*History, error) {
	if t.iterations < 1 {
		return nil, fmt.Errorf("train %s: iteration count must be positive, got %d", m.Name(), t.iterations)
	}

	t.logger.Info("training started",
		"model", m.Name(),
		"iterations", t.iterations,
		"train_records", train.Records(),
		"test_records", test.Records(),
	)
	start := t.clock.Now()

	h := &History{
		TrainLoss: make([]float64, 0, t.iterations),
		TestLoss:  make([]float64, 0, t.iterations),
	}

	for i := 0; i < t.iterations; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("train %s: aborted at iteration %d: %w", m.Name(), i, ctx.Err())
		default:
		}

		trainProbs := m.Forward(train.X)

		// Backward must run before the test forward pass: the perceptron
		// caches hidden activations per Forward call.
		for _, p := range m.Params() {
			p.ZeroGrad()
		}
		m.Backward(train.X, train.Y, trainProbs)

		// Monitoring only, computed with the same pre-update parameters.
		testProbs := m.Forward(test.X)

		trainLoss := BCELoss(trainProbs, train.Y)
		testLoss := BCELoss(testProbs, test.Y)
		h.TrainLoss = append(h.TrainLoss, trainLoss)
		h.TestLoss = append(h.TestLoss, testLoss)

		t.optimizer.Step(m.Params())

		t.metrics.TrainingIterations.WithLabelValues(m.Name()).Inc()
		t.metrics.TrainLoss.WithLabelValues(m.Name()).Set(trainLoss)
		t.metrics.TestLoss.WithLabelValues(m.Name()).Set(testLoss)

		if t.logEvery > 0 && (i+1)%t.logEvery == 0 {
			t.logger.Info("training progress",
				"model", m.Name(),
				"iteration", i+1,
				"train_loss", trainLoss,
				"test_loss", testLoss,
			)
		}
	}

	elapsed := t.clock.Since(start)
	t.metrics.TrainingDuration.WithLabelValues(m.Name()).Observe(elapsed.Seconds())
	t.logger.Info("training finished",
		"model", m.Name(),
		"final_train_loss", h.TrainLoss[len(h.TrainLoss)-1],
		"final_test_loss", h.TestLoss[len(h.TestLoss)-1],
		"duration", elapsed,
	)

	return h, nil
}
