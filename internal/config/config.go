package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds all classifier settings, populated from environment variables.
type Config struct {
	TrainCSV string
	TestCSV  string

	Iterations    int
	LearningRate  float64
	HiddenSize    int
	Seed          uint64
	MetaColumns   int
	OutcomeColumn int

	PlotDir     string
	LogLevel    string
	LogFormat   string
	LogEvery    int
	MetricsAddr string // empty disables the metrics HTTP server
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	iterations, err := parsePositiveInt("ITERATIONS", 1000)
	if err != nil {
		return nil, err
	}
	hiddenSize, err := parsePositiveInt("HIDDEN_SIZE", 16)
	if err != nil {
		return nil, err
	}
	logEvery, err := parsePositiveInt("LOG_EVERY", 100)
	if err != nil {
		return nil, err
	}
	metaColumns, err := parsePositiveInt("META_COLUMNS", 3)
	if err != nil {
		return nil, err
	}

	learningRate, err := parseLearningRate()
	if err != nil {
		return nil, err
	}
	seed, err := parseSeed()
	if err != nil {
		return nil, err
	}
	outcomeColumn, err := parseOutcomeColumn()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TrainCSV:      os.Getenv("TRAIN_CSV"),
		TestCSV:       os.Getenv("TEST_CSV"),
		Iterations:    iterations,
		LearningRate:  learningRate,
		HiddenSize:    hiddenSize,
		Seed:          seed,
		MetaColumns:   metaColumns,
		OutcomeColumn: outcomeColumn,
		PlotDir:       envOrDefault("PLOT_DIR", "plots"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		LogEvery:      logEvery,
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
	}

	if cfg.TrainCSV == "" {
		return nil, errors.New("TRAIN_CSV is required")
	}
	if cfg.TestCSV == "" {
		return nil, errors.New("TEST_CSV is required")
	}
	if cfg.OutcomeColumn >= cfg.MetaColumns {
		return nil, fmt.Errorf("OUTCOME_COLUMN %d must be less than META_COLUMNS %d", cfg.OutcomeColumn, cfg.MetaColumns)
	}

	return cfg, nil
}

func envOrDefault(key, dflt string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return dflt
}

func parsePositiveInt(key string, dflt int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return dflt, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func parseLearningRate() (float64, error) {
	s := os.Getenv("LEARNING_RATE")
	if s == "" {
		return 0.01, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid LEARNING_RATE: %q", s)
	}
	return v, nil
}

func parseSeed() (uint64, error) {
	s := os.Getenv("SEED")
	if s == "" {
		return 42, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid SEED: %q", s)
	}
	return v, nil
}

func parseOutcomeColumn() (int, error) {
	s := os.Getenv("OUTCOME_COLUMN")
	if s == "" {
		return 2, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid OUTCOME_COLUMN: %q", s)
	}
	return n, nil
}
