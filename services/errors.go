package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory signals a categorical value outside a column's vocabulary.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDimensionMismatch signals a feature vector of the wrong length.
	ErrDimensionMismatch = errors.New("feature vector dimension mismatch")
	// ErrInvalidK signals a neighbour count that cannot be served.
	ErrInvalidK = errors.New("invalid neighbour count")
	// ErrEmptyInput signals that a codec, normalizer or index was built from nothing.
	ErrEmptyInput = errors.New("empty input")
	// ErrCodeOutOfRange signals a decode of a code the codec never assigned.
	ErrCodeOutOfRange = errors.New("code out of range")
	// ErrInvalidBudget signals a monthly budget that is not a finite number.
	ErrInvalidBudget = errors.New("invalid monthly budget")
)

// UnknownCategoryError names the column and the value that failed to encode.
type UnknownCategoryError struct {
	Column string
	Value  string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("%s: %q is not a known value of %s", ErrUnknownCategory, e.Value, e.Column)
}

func (e *UnknownCategoryError) Unwrap() error { return ErrUnknownCategory }

// DimensionMismatchError reports the expected and received vector lengths.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: want %d, got %d", ErrDimensionMismatch, e.Want, e.Got)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// InvalidKError reports a requested neighbour count and how many rows exist.
type InvalidKError struct {
	K         int
	Available int
}

func (e *InvalidKError) Error() string {
	return fmt.Sprintf("%s: k must be at least 1, got %d (%d listings available)", ErrInvalidK, e.K, e.Available)
}

func (e *InvalidKError) Unwrap() error { return ErrInvalidK }

// InvalidBudgetError carries the rejected budget.
type InvalidBudgetError struct {
	Value float64
}

func (e *InvalidBudgetError) Error() string {
	return fmt.Sprintf("%s: %v is not a finite number", ErrInvalidBudget, e.Value)
}

func (e *InvalidBudgetError) Unwrap() error { return ErrInvalidBudget }
