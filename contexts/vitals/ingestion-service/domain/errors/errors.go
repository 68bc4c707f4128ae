package errors

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidSource     = errors.New("source data is invalid")
	ErrSourceUnavailable = errors.New("source is unavailable")
	ErrNoData            = errors.New("no measurement data available")
	ErrSnapshotNotFound  = errors.New("snapshot not found")
)
