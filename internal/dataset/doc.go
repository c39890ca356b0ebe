// Package dataset loads tornado damage-survey CSV extracts and derives
// binary property-damage labels from the continuous outcome column.
//
// # CSV layout
//
// Each file starts with a header row followed by one row per surveyed storm
// report. The first MetaColumns columns (default 3) are non-predictor
// metadata; among them, the column at OutcomeColumn (default index 2) holds
// the continuous property-damage outcome. Every remaining column is a
// floating-point predictor. The NOAA extract this layout comes from carries
// 51 predictors, but the loader takes the width from the header rather than
// hardcoding it; train and test files must agree, which ValidateSchema
// checks before any training starts.
//
// # Label derivation
//
// The damage outcome is continuous, but the classifiers are binary. The rule
// is dataset-relative: the minimum outcome value observed in the training
// sample marks the "no damage" class (label 0) and every larger value is
// "damage" (label 1). Ties at the minimum all map to 0. The threshold is
// computed once, from the training split, and applied to both splits via
// BinarizeWith so the two never disagree on where the class boundary sits.
//
// A sample whose outcomes are all identical cannot be split into two classes;
// Binarize reports this as ErrDegenerateLabels instead of silently producing
// a single-class training set.
package dataset
