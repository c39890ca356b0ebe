// Command classify trains the two tornado damage classifiers (logistic
// regression and a one-hidden-layer perceptron) on a training CSV, evaluates
// both on a test CSV, writes train/test loss-curve PNGs, and prints accuracy
// and a confusion matrix per model.
//
// Configuration is taken from environment variables; TRAIN_CSV and TEST_CSV
// are required. See internal/config for the full list and defaults.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/couchcryptid/tornado-damage-classifier/internal/adapter/http"
	"github.com/couchcryptid/tornado-damage-classifier/internal/config"
	"github.com/couchcryptid/tornado-damage-classifier/internal/dataset"
	"github.com/couchcryptid/tornado-damage-classifier/internal/model"
	"github.com/couchcryptid/tornado-damage-classifier/internal/observability"
	"github.com/couchcryptid/tornado-damage-classifier/internal/pipeline"
	"github.com/couchcryptid/tornado-damage-classifier/internal/report"
	"github.com/couchcryptid/tornado-damage-classifier/internal/training"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional metrics server for long runs; disabled unless METRICS_ADDR set.
	var srv *httpadapter.Server
	if cfg.MetricsAddr != "" {
		srv = httpadapter.NewServer(cfg.MetricsAddr, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				logger.Error("metrics server shutdown error", "error", err)
			}
		}()
	}

	if err := run(ctx, cfg, logger, metrics); err != nil {
		logger.Error("classification run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) error {
	opts := dataset.Options{MetaColumns: cfg.MetaColumns, OutcomeColumn: cfg.OutcomeColumn}
	data, err := pipeline.Prepare(cfg.TrainCSV, cfg.TestCSV, opts, logger, metrics)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.PlotDir, 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}

	clock := clockwork.NewRealClock()
	variants := []model.Classifier{
		model.NewLogistic(data.Features, cfg.Seed),
		model.NewPerceptron(data.Features, cfg.HiddenSize, cfg.Seed),
	}

	for _, m := range variants {
		// Each variant gets its own optimizer: Adam moments are tied to one
		// model's parameters and must not leak across variants.
		trainer := training.New(training.NewAdam(cfg.LearningRate), cfg.Iterations, cfg.LogEvery, logger, metrics, clock)
		p := pipeline.New(trainer, logger, metrics)

		outcome, err := p.Run(ctx, m, data)
		if err != nil {
			return err
		}

		fmt.Print(report.Format(m.Name(), outcome.Result))

		plotPath := filepath.Join(cfg.PlotDir, m.Name()+"_loss.png")
		if err := report.SaveLossCurves(outcome.History, m.Name()+" loss", plotPath); err != nil {
			return err
		}
		logger.Info("loss curves written", "model", m.Name(), "path", plotPath)
	}

	return nil
}
