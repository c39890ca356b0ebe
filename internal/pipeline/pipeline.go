// Package pipeline orchestrates one classifier run: load and binarize the
// CSV splits once, then train and evaluate each model variant over the same
// data. The two variants are independent pipelines sharing the load and
// evaluation logic.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/tornado-damage-classifier/internal/dataset"
	"github.com/couchcryptid/tornado-damage-classifier/internal/evaluate"
	"github.com/couchcryptid/tornado-damage-classifier/internal/model"
	"github.com/couchcryptid/tornado-damage-classifier/internal/observability"
	"github.com/couchcryptid/tornado-damage-classifier/internal/training"
)

// Trainer runs the optimization loop for one model over fixed splits.
type Trainer interface {
	Train(ctx context.Context, m model.Classifier, train, test *dataset.Labeled) (*training.History, error)
}

// Outcome is the result of one variant's run: the loss trace from training
// and the held-out evaluation.
type Outcome struct {
	History *training.History
	Result  evaluate.Result
}

// Pipeline runs the train-then-evaluate flow for one model at a time.
type Pipeline struct {
	trainer Trainer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline with the given trainer and observability.
func New(trainer Trainer, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		trainer: trainer,
		logger:  logger,
		metrics: metrics,
	}
}

// Run trains the model on the prepared data and evaluates it on the test
// split. The model's parameters are frozen after Train returns; Evaluate
// only reads them.
func (p *Pipeline) Run(ctx context.Context, m model.Classifier, data *Data) (*Outcome, error) {
	history, err := p.trainer.Train(ctx, m, data.Train, data.Test)
	if err != nil {
		return nil, err
	}

	result := evaluate.Evaluate(m, data.Test.X, data.Test.Y)
	p.metrics.ModelAccuracy.WithLabelValues(m.Name()).Set(result.Accuracy)
	p.logger.Info("evaluation complete",
		"model", m.Name(),
		"accuracy", result.Accuracy,
		"test_records", data.Test.Records(),
	)

	return &Outcome{History: history, Result: result}, nil
}
