// Command inspect performs data-quality checks on a train/test CSV pair
// before a training run: schema agreement, outcome-column health, and the
// class balance the binarization rule would produce.
//
// Usage:
//
//	go run ./cmd/inspect -train data/train.csv -test data/test.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/couchcryptid/tornado-damage-classifier/internal/dataset"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	trainPath := flag.String("train", "", "path to the training CSV")
	testPath := flag.String("test", "", "path to the test CSV")
	metaColumns := flag.Int("meta-columns", 3, "leading non-predictor columns")
	outcomeColumn := flag.Int("outcome-column", 2, "index of the damage outcome column")
	flag.Parse()

	if *trainPath == "" || *testPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	opts := dataset.Options{MetaColumns: *metaColumns, OutcomeColumn: *outcomeColumn}
	if code := run(*trainPath, *testPath, opts); code != 0 {
		os.Exit(code)
	}
}

func run(trainPath, testPath string, opts dataset.Options) int {
	fmt.Println("=== Damage Survey Data Inspection ===")
	fmt.Println()

	train, err := dataset.Load(trainPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load train CSV: %v\n", err)
		return 1
	}
	test, err := dataset.Load(testPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load test CSV: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkSchema(train, test),
		checkOutcomes(train, test),
		checkBalance(train, test),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-40s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d train, %d test; %d predictors\n",
		train.Records(), test.Records(), train.FeatureCount())

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll checks passed.")
		return 0
	}
	fmt.Println("\nInspection FAILED.")
	return 1
}

func checkSchema(train, test *dataset.Split) *phase {
	p := &phase{name: "Phase 1: Schema agreement"}
	if err := dataset.ValidateSchema(train, test); err != nil {
		p.errorf("%v", err)
		return p
	}
	for i, name := range train.FeatureNames {
		if test.FeatureNames[i] != name {
			p.errorf("predictor %d: train column %q, test column %q", i, name, test.FeatureNames[i])
		}
	}
	return p
}

func checkOutcomes(train, test *dataset.Split) *phase {
	p := &phase{name: "Phase 2: Outcome column health"}
	if _, _, err := dataset.Binarize(train.Outcomes); err != nil {
		if errors.Is(err, dataset.ErrDegenerateLabels) {
			p.errorf("train outcomes are degenerate: %v", err)
		} else {
			p.errorf("train outcomes: %v", err)
		}
	}
	for i, v := range train.Outcomes {
		if v < 0 {
			p.errorf("train record %d: negative damage outcome %g", i, v)
		}
	}
	for i, v := range test.Outcomes {
		if v < 0 {
			p.errorf("test record %d: negative damage outcome %g", i, v)
		}
	}
	return p
}

func checkBalance(train, test *dataset.Split) *phase {
	p := &phase{name: "Phase 3: Class balance"}
	labels, threshold, err := dataset.Binarize(train.Outcomes)
	if err != nil {
		p.errorf("cannot derive labels: %v", err)
		return p
	}

	trainPos := int(floats.Sum(labels))
	testLabels := dataset.BinarizeWith(test.Outcomes, threshold)
	testPos := int(floats.Sum(testLabels))

	fmt.Printf("  damage threshold: %g\n", threshold)
	fmt.Printf("  train: %d/%d damage records\n", trainPos, len(labels))
	fmt.Printf("  test:  %d/%d damage records\n", testPos, len(testLabels))

	if trainPos == 0 || trainPos == len(labels) {
		p.errorf("training split has a single class (%d of %d positive)", trainPos, len(labels))
	}
	if testPos == 0 || testPos == len(testLabels) {
		p.errorf("test split has a single class (%d of %d positive)", testPos, len(testLabels))
	}
	// Below-training-minimum test outcomes land in class 0; surface them.
	if min := floats.Min(test.Outcomes); min < threshold {
		p.errorf("test split has outcomes below the training minimum (%g < %g)", min, threshold)
	}
	return p
}
