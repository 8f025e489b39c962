package query

import "errors"

var (
	// ErrPrimaryClientRequired is returned when a primary index client is
	// not provided.
	ErrPrimaryClientRequired = errors.New("primary index client required")
)
