package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrEstimation is returned when the sleep model cannot be built or fails during a prediction.
	ErrEstimation = errors.New("bedtime estimation failed")
)
