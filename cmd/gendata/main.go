// Command gendata writes synthetic tornado damage-survey CSV fixtures with
// the NOAA-extract schema (three meta columns followed by float predictors),
// so the classify pipeline can be exercised without real survey data.
//
// The outcome is linearly separable from the predictors by construction:
// rows whose hidden score lands below zero report no damage (the minimum
// outcome value), the rest report a positive damage amount. A seeded RNG
// makes the fixtures reproducible.
//
// Usage:
//
//	go run ./cmd/gendata -train-out data/train.csv -test-out data/test.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	trainOut := flag.String("train-out", "", "output path for the training CSV")
	testOut := flag.String("test-out", "", "output path for the test CSV")
	trainRows := flag.Int("train-rows", 400, "training records to generate")
	testRows := flag.Int("test-rows", 100, "test records to generate")
	features := flag.Int("features", 51, "predictor columns per record")
	seed := flag.Uint64("seed", 7, "RNG seed")
	flag.Parse()

	if *trainOut == "" || *testOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -train-out, -test-out")
	}

	rng := rand.New(rand.NewPCG(*seed, 0))

	// One hidden weight vector drives both splits so train and test are
	// drawn from the same distribution.
	weights := make([]float64, *features)
	for i := range weights {
		weights[i] = rng.NormFloat64()
	}

	if err := writeCSV(*trainOut, *trainRows, weights, rng); err != nil {
		return fmt.Errorf("writing train fixture: %w", err)
	}
	log.Printf("wrote train fixture: %s (%d rows)", *trainOut, *trainRows)

	if err := writeCSV(*testOut, *testRows, weights, rng); err != nil {
		return fmt.Errorf("writing test fixture: %w", err)
	}
	log.Printf("wrote test fixture: %s (%d rows)", *testOut, *testRows)

	return nil
}

var states = []string{"TX", "OK", "KS", "NE", "MO", "AR", "IA", "AL"}

func writeCSV(path string, rows int, weights []float64, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"EventID", "State", "PropertyDamage"}
	for i := range weights {
		header = append(header, fmt.Sprintf("F%02d", i+1))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		predictors := make([]float64, len(weights))
		score := 0.0
		for j := range predictors {
			predictors[j] = rng.NormFloat64()
			score += predictors[j] * weights[j]
		}

		// Below-zero scores report the minimum outcome (no damage).
		damage := 0.0
		if score > 0 {
			damage = 1000 * (1 + score)
		}

		record := []string{
			fmt.Sprintf("evt-%04d", i+1),
			states[rng.IntN(len(states))],
			strconv.FormatFloat(damage, 'f', 2, 64),
		}
		for _, v := range predictors {
			record = append(record, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
