package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownChart   = errors.New("unknown chart kind")
	ErrNoData         = errors.New("no measurement data available")
	ErrExportFailed   = errors.New("report export failed")
)
