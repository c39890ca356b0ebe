package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/couchcryptid/tornado-damage-classifier/internal/dataset"
	"github.com/couchcryptid/tornado-damage-classifier/internal/observability"
)

// Data holds both labeled splits, binarized against one shared threshold
// derived from the training outcomes. Loaded once per run and shared by
// both model variants.
type Data struct {
	Train     *dataset.Labeled
	Test      *dataset.Labeled
	Features  int
	Threshold float64
}

// Prepare loads the train and test CSVs, validates that they share a
// predictor schema, derives the damage threshold from the training
// outcomes, and binarizes both splits with it. Schema mismatch and a
// degenerate training outcome column are fatal here, before any training.
func Prepare(trainPath, testPath string, opts dataset.Options, logger *slog.Logger, metrics *observability.Metrics) (*Data, error) {
	train, err := dataset.Load(trainPath, opts)
	if err != nil {
		return nil, fmt.Errorf("prepare train split: %w", err)
	}
	metrics.RecordsLoaded.WithLabelValues("train").Add(float64(train.Records()))

	test, err := dataset.Load(testPath, opts)
	if err != nil {
		return nil, fmt.Errorf("prepare test split: %w", err)
	}
	metrics.RecordsLoaded.WithLabelValues("test").Add(float64(test.Records()))

	if err := dataset.ValidateSchema(train, test); err != nil {
		return nil, err
	}

	trainLabels, threshold, err := dataset.Binarize(train.Outcomes)
	if err != nil {
		return nil, fmt.Errorf("prepare train labels: %w", err)
	}
	// The test split reuses the training threshold so both splits agree on
	// the class boundary even when their minima differ.
	testLabels := dataset.BinarizeWith(test.Outcomes, threshold)

	logger.Info("data prepared",
		"train_records", train.Records(),
		"test_records", test.Records(),
		"features", train.FeatureCount(),
		"damage_threshold", threshold,
		"train_positives", countOnes(trainLabels),
		"test_positives", countOnes(testLabels),
	)

	return &Data{
		Train:     &dataset.Labeled{X: train.Features, Y: dataset.LabelVec(trainLabels)},
		Test:      &dataset.Labeled{X: test.Features, Y: dataset.LabelVec(testLabels)},
		Features:  train.FeatureCount(),
		Threshold: threshold,
	}, nil
}

func countOnes(labels []float64) int {
	n := 0
	for _, l := range labels {
		if l == 1 {
			n++
		}
	}
	return n
}
