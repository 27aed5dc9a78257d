package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidDamping is returned when the damping factor is outside [0,1].
	ErrInvalidDamping = errors.New("invalid damping factor: must be within [0,1]")

	// ErrInvalidSamples is returned when the sample count is below 1.
	ErrInvalidSamples = errors.New("invalid sample count: must be at least 1")

	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("invalid format: must be text, markdown or ndjson")

	// ErrInvalidConcurrency is returned when the crawl concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the body size cap is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrNoTeleport is returned by ValidateRequest for a damping factor of
	// 1: without teleportation the iteration may never converge.
	ErrNoTeleport = errors.New("invalid damping factor: must be below 1 for served requests")

	// ErrTooManySamples is returned by ValidateRequest when the sample
	// count exceeds MaxSamples.
	ErrTooManySamples = errors.New("invalid sample count: exceeds the configured maximum")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
