package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoInput is returned when no input path is configured.
	ErrNoInput = errors.New("no input specified: provide a JSON file path")

	// ErrNoOutput is returned when no output path is configured.
	ErrNoOutput = errors.New("no output specified: use --output")
)
