package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Options controls how a CSV extract is split into outcome and predictors.
type Options struct {
	// MetaColumns is the number of leading non-predictor columns.
	MetaColumns int
	// OutcomeColumn is the index of the continuous damage outcome,
	// which must fall within the meta columns.
	OutcomeColumn int
}

// DefaultOptions matches the NOAA damage-survey extract: three leading meta
// columns with the outcome in the third.
func DefaultOptions() Options {
	return Options{MetaColumns: 3, OutcomeColumn: 2}
}

// Split is one loaded CSV file: the continuous outcome per record and the
// predictor matrix, one row per record. Immutable after loading.
type Split struct {
	Outcomes     []float64
	Features     *mat.Dense
	FeatureNames []string
}

// Records returns the number of records in the split.
func (s *Split) Records() int { return len(s.Outcomes) }

// FeatureCount returns the predictor vector length.
func (s *Split) FeatureCount() int { return len(s.FeatureNames) }

// Labeled pairs a predictor matrix with binary labels, ready for training
// or evaluation.
type Labeled struct {
	X *mat.Dense
	Y *mat.VecDense
}

// Records returns the number of labeled records.
func (l *Labeled) Records() int { return l.Y.Len() }

// Load reads a damage-survey CSV and splits its columns into the continuous
// outcome and the predictor matrix. Any malformed row or non-numeric cell is
// fatal; the pipeline has no use for a partially loaded split.
func Load(path string, opts Options) (*Split, error) {
	if opts.MetaColumns < 1 {
		return nil, fmt.Errorf("load %s: meta columns must be at least 1, got %d", path, opts.MetaColumns)
	}
	if opts.OutcomeColumn < 0 || opts.OutcomeColumn >= opts.MetaColumns {
		return nil, fmt.Errorf("load %s: outcome column %d outside meta columns [0,%d)", path, opts.OutcomeColumn, opts.MetaColumns)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load %s: read csv: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("load %s: no data rows", path)
	}

	header := rows[0]
	if len(header) <= opts.MetaColumns {
		return nil, fmt.Errorf("load %s: %d columns, need more than %d meta columns", path, len(header), opts.MetaColumns)
	}
	featureNames := append([]string(nil), header[opts.MetaColumns:]...)
	width := len(featureNames)

	records := len(rows) - 1
	outcomes := make([]float64, 0, records)
	features := mat.NewDense(records, width, nil)

	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		if len(row) != len(header) {
			return nil, fmt.Errorf("load %s: line %d has %d columns, header has %d", path, line, len(row), len(header))
		}

		outcome, err := strconv.ParseFloat(row[opts.OutcomeColumn], 64)
		if err != nil {
			return nil, fmt.Errorf("load %s: line %d: outcome %q: %w", path, line, row[opts.OutcomeColumn], err)
		}
		outcomes = append(outcomes, outcome)

		for j, cell := range row[opts.MetaColumns:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("load %s: line %d: column %q: %w", path, line, header[opts.MetaColumns+j], err)
			}
			features.Set(i, j, v)
		}
	}

	return &Split{Outcomes: outcomes, Features: features, FeatureNames: featureNames}, nil
}

// ValidateSchema checks that the train and test splits describe the same
// predictor layout. A width mismatch is fatal before any training starts.
func ValidateSchema(train, test *Split) error {
	if train.FeatureCount() != test.FeatureCount() {
		return fmt.Errorf("schema mismatch: train has %d predictors, test has %d", train.FeatureCount(), test.FeatureCount())
	}
	return nil
}
