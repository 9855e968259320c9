package storage

import "errors"

var (
	// ErrJobNotFound means no operation row carries the requested job.
	ErrJobNotFound = errors.New("job not found")
	// ErrUnknownMetric means the metric name is outside the catalog.
	ErrUnknownMetric = errors.New("unknown metric")
)
