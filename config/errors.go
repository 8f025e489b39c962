package config

import "errors"

var (
	// ErrMissingSetting is returned when a required setting has no value
	// in the file or the environment.
	ErrMissingSetting = errors.New("missing required setting")
)
